package canvas

import (
	"strings"
	"time"

	"github.com/studyflow/studyflow/core/model"
)

// classifyType infers the task type from the assignment name and submission
// types.
func classifyType(name string, submissionTypes []string) model.TaskType {
	lower := strings.ToLower(name)
	has := func(s string) bool {
		for _, st := range submissionTypes {
			if st == s {
				return true
			}
		}
		return false
	}
	switch {
	case strings.Contains(lower, "quiz") || has("online_quiz"):
		return model.TaskQuiz
	case strings.Contains(lower, "exam") || strings.Contains(lower, "test"):
		return model.TaskExam
	case strings.Contains(lower, "project"):
		return model.TaskProject
	case strings.Contains(lower, "discussion") || has("discussion_topic"):
		return model.TaskDiscussion
	case strings.Contains(lower, "essay") || strings.Contains(lower, "paper"):
		return model.TaskEssay
	case strings.Contains(lower, "lab"):
		return model.TaskLabReport
	default:
		return model.TaskHomework
	}
}

// classifyPriority derives a priority from due-date proximity and point
// value.
func classifyPriority(due *time.Time, points float64, now time.Time) model.Priority {
	if due == nil {
		return model.PriorityMedium
	}
	days := int(due.Sub(now).Hours() / 24)
	switch {
	case days <= 2:
		return model.PriorityUrgent
	case days <= 7 || points >= 100:
		return model.PriorityHigh
	case days <= 14:
		return model.PriorityMedium
	default:
		return model.PriorityLow
	}
}

var baseDurations = map[model.TaskType]int{
	model.TaskQuiz:       30,
	model.TaskExam:       120,
	model.TaskProject:    180,
	model.TaskDiscussion: 45,
	model.TaskHomework:   90,
	model.TaskEssay:      120,
	model.TaskLabReport:  90,
}

// estimateDuration guesses the effort in minutes from assignment type, point
// value and name keywords, clamped to [30, 300].
func estimateDuration(name string, points float64, t model.TaskType) int {
	base, ok := baseDurations[t]
	if !ok {
		base = 90
	}
	if points > 0 {
		mult := points / 50
		if mult < 0.5 {
			mult = 0.5
		}
		if mult > 2.0 {
			mult = 2.0
		}
		base = int(float64(base) * mult)
	}
	lower := strings.ToLower(name)
	if containsAny(lower, "essay", "paper", "research") {
		base = int(float64(base) * 1.5)
	} else if containsAny(lower, "short", "quick", "simple") {
		base = int(float64(base) * 0.7)
	}
	if base < 30 {
		return 30
	}
	if base > 300 {
		return 300
	}
	return base
}

var baseDifficulty = map[model.TaskType]int{
	model.TaskQuiz:       2,
	model.TaskExam:       4,
	model.TaskProject:    4,
	model.TaskDiscussion: 2,
	model.TaskHomework:   3,
	model.TaskEssay:      4,
	model.TaskLabReport:  3,
}

// estimateDifficulty rates the assignment on the 1-5 scale.
func estimateDifficulty(name string, points float64, t model.TaskType) int {
	d, ok := baseDifficulty[t]
	if !ok {
		d = 3
	}
	if points >= 100 {
		d++
	} else if points > 0 && points <= 10 {
		d--
	}
	lower := strings.ToLower(name)
	if containsAny(lower, "advanced", "complex", "research") {
		d++
	} else if containsAny(lower, "basic", "simple", "intro") {
		d--
	}
	if d < 1 {
		return 1
	}
	if d > 5 {
		return 5
	}
	return d
}

var prepMinutes = map[model.TaskType]int{
	model.TaskExam:    60,
	model.TaskProject: 45,
	model.TaskEssay:   30,
}

// preparationMinutes returns prep time for the types that need it.
func preparationMinutes(t model.TaskType) int {
	return prepMinutes[t]
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
