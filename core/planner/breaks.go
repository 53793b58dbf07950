package planner

import (
	"sort"
	"time"

	"github.com/studyflow/studyflow/core/model"
	"github.com/studyflow/studyflow/core/schedule"
)

// insertBreaks scans the day's study blocks pairwise by start time and adds a
// fixed-length break after each block whose gap to the next is large enough.
// The break starts at the first block's end and never fills the whole gap.
func (p *Planner) insertBreaks(day *schedule.DailySchedule) int {
	study := day.StudyBlocks()
	if len(study) < 2 {
		return 0
	}
	sort.Slice(study, func(i, j int) bool {
		return study[i].Start.Before(study[j].Start)
	})

	breakDur := time.Duration(p.cfg.BreakMinutes) * time.Minute
	added := 0
	for i := 0; i < len(study)-1; i++ {
		gap := study[i+1].Start.Sub(study[i].End)
		if gap < breakDur {
			continue
		}
		block, err := model.NewTimeBlock(study[i].End, study[i].End.Add(breakDur), model.CategoryBreak, "Break")
		if err != nil {
			continue
		}
		block.Description = "Study break"
		// The gap may hold a fixed block; the container's refusal is final.
		if day.AddBlock(block) {
			added++
		}
	}
	return added
}
