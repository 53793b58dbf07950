package model

import (
	"fmt"
	"time"
)

// Priority is the declared importance of a task.
type Priority int

const (
	PriorityLow Priority = iota + 1
	PriorityMedium
	PriorityHigh
	PriorityUrgent
)

// String returns a human-readable representation of the priority.
func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "low"
	case PriorityMedium:
		return "medium"
	case PriorityHigh:
		return "high"
	case PriorityUrgent:
		return "urgent"
	default:
		return "unknown"
	}
}

// Weight returns the urgency base weight for the priority level.
func (p Priority) Weight() float64 {
	if p < PriorityLow || p > PriorityUrgent {
		return 0
	}
	return float64(p)
}

// TaskType classifies the kind of work a task represents.
type TaskType int

const (
	TaskHomework TaskType = iota
	TaskQuiz
	TaskExam
	TaskProject
	TaskDiscussion
	TaskEssay
	TaskLabReport
	TaskOther
)

// String returns a human-readable representation of the task type.
func (t TaskType) String() string {
	switch t {
	case TaskHomework:
		return "homework"
	case TaskQuiz:
		return "quiz"
	case TaskExam:
		return "exam"
	case TaskProject:
		return "project"
	case TaskDiscussion:
		return "discussion"
	case TaskEssay:
		return "essay"
	case TaskLabReport:
		return "lab_report"
	default:
		return "other"
	}
}

// Task is a flexible unit of work the planner is free to place into any
// eligible free slot. It is read-only input to the planner.
type Task struct {
	ID         int64
	Name       string
	CourseID   int64
	CourseName string

	DueDate *time.Time // nil when the task has no deadline

	EstimatedMinutes   int // estimated effort
	PreparationMinutes int // additional prep before the effort itself
	Difficulty         int // 1 (easy) to 5 (hard)

	Type     TaskType
	Priority Priority

	Completed bool
}

// Validate checks that the task fields are sound.
func (t Task) Validate() error {
	if t.EstimatedMinutes < 0 {
		return fmt.Errorf("task %d: estimated minutes must be non-negative", t.ID)
	}
	if t.PreparationMinutes < 0 {
		return fmt.Errorf("task %d: preparation minutes must be non-negative", t.ID)
	}
	if t.Difficulty < 1 || t.Difficulty > 5 {
		return fmt.Errorf("task %d: difficulty must be between 1 and 5", t.ID)
	}
	return nil
}

// TotalTimeNeeded returns estimated effort plus preparation in minutes.
func (t Task) TotalTimeNeeded() int {
	return t.EstimatedMinutes + t.PreparationMinutes
}

// DaysUntilDue returns the number of whole days until the due date, clamped
// to zero. The second return value is false when the task has no due date.
func (t Task) DaysUntilDue(now time.Time) (int, bool) {
	if t.DueDate == nil {
		return 0, false
	}
	days := int(t.DueDate.Sub(now).Hours() / 24)
	if days < 0 {
		days = 0
	}
	return days, true
}

// UrgencyScore combines due-date proximity and priority into a single
// ranking value. Tasks without a due date score zero; a task due today
// scores 10. Otherwise the priority weight is scaled by a step multiplier
// that grows as the deadline approaches.
func (t Task) UrgencyScore(now time.Time) float64 {
	days, ok := t.DaysUntilDue(now)
	if !ok {
		return 0
	}
	if days == 0 {
		return 10.0
	}
	var multiplier float64
	switch {
	case days <= 3:
		multiplier = 3.0
	case days <= 7:
		multiplier = 2.0
	case days <= 14:
		multiplier = 1.5
	default:
		multiplier = 1.0
	}
	return t.Priority.Weight() * multiplier
}

// String returns a short description of the task.
func (t Task) String() string {
	if t.DueDate == nil {
		return fmt.Sprintf("%s (%s)", t.Name, t.CourseName)
	}
	return fmt.Sprintf("%s (%s) - due %s", t.Name, t.CourseName, t.DueDate.Format("2006-01-02 15:04"))
}
