package planner

import (
	"math"
	"time"

	"github.com/studyflow/studyflow/core/metrics"
	"github.com/studyflow/studyflow/core/model"
	"github.com/studyflow/studyflow/core/schedule"
)

// Slot score weights: how tightly the slot fits the task versus how good the
// time of day is.
const (
	fitWeight  = 0.6
	timeWeight = 0.4
)

type placeStats struct {
	placed        int
	skippedNoSlot int
	skippedDue    int
}

// placeTasks walks the ranked tasks and commits each into its best-scoring
// free slot. The slot list shrinks as tasks land: a consumed slot is removed
// whole, remaining capacity of a partially-used slot is discarded for the
// run.
func (p *Planner) placeTasks(day *schedule.DailySchedule, ranked []model.Task, date, now time.Time) placeStats {
	var stats placeStats

	windowStart, windowEnd := p.cfg.windowFor(date)
	minDur := time.Duration(p.cfg.MinSessionMinutes) * time.Minute
	slots := day.FreeSlots(minDur, windowStart, windowEnd)

	for _, task := range ranked {
		if task.Completed {
			continue
		}
		if task.DueDate != nil {
			if beforeDay(*task.DueDate, date) || task.DueDate.Before(now) {
				stats.skippedDue++
				continue
			}
		}
		needed := task.TotalTimeNeeded()
		if needed <= 0 {
			continue
		}

		best := -1
		bestScore := -1.0
		for i, s := range slots {
			if s.Minutes() < needed {
				continue
			}
			score := fitWeight*fitScore(s.Minutes(), needed) + timeWeight*timeOfDayScore(s.Start)
			if score > bestScore {
				bestScore = score
				best = i
			}
		}
		if best < 0 {
			stats.skippedNoSlot++
			p.log.Debugf("no slot fits task %q (%d min) on %s", task.Name, needed, date.Format("2006-01-02"))
			continue
		}

		slot := slots[best]
		block, err := model.NewTimeBlock(slot.Start, slot.Start.Add(time.Duration(needed)*time.Minute), model.CategoryStudy, "Study: "+task.Name)
		if err != nil {
			stats.skippedNoSlot++
			continue
		}
		block.Description = "Course: " + task.CourseName
		block.TaskID = task.ID
		block.CourseID = task.CourseID
		block.Tags = []string{task.Type.String(), task.Priority.String()}

		if !day.AddBlock(block) {
			// Conflict rejection of a study block is a normal placement miss.
			stats.skippedNoSlot++
			p.log.Warnf("container refused study block for task %q on %s", task.Name, date.Format("2006-01-02"))
			continue
		}
		stats.placed++
		slots = append(slots[:best], slots[best+1:]...)
		p.log.Infof("scheduled %q at %s (%d min, score %.3f)", task.Name, block.Start.Format("15:04"), needed, bestScore)
		if err := p.sink.RecordPlacement(metrics.PlacementEvent{
			TaskID:   task.ID,
			TaskName: task.Name,
			Category: block.Category.String(),
			Date:     date,
			Start:    block.Start,
			Minutes:  needed,
			Score:    bestScore,
		}); err != nil {
			p.log.Errorf("record placement: %v", err)
		}
	}
	return stats
}

// fitScore is highest when the slot length matches the need exactly.
func fitScore(slotMinutes, needed int) float64 {
	return 1.0 - math.Abs(float64(slotMinutes-needed))/float64(needed)
}

// timeOfDayScore prefers morning slots, then afternoon, then evening.
func timeOfDayScore(start time.Time) float64 {
	switch hour := start.Hour(); {
	case hour >= 9 && hour < 12:
		return 1.0
	case hour >= 12 && hour < 17:
		return 0.8
	case hour >= 17 && hour < 22:
		return 0.6
	default:
		return 0.2
	}
}
