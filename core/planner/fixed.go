package planner

import (
	"fmt"
	"strings"
	"time"

	"github.com/studyflow/studyflow/core/model"
	"github.com/studyflow/studyflow/core/schedule"
)

// FixedConflict records a fixed block the day's container refused because it
// overlaps an already-installed fixed block.
type FixedConflict struct {
	Date  time.Time
	Block model.TimeBlock
}

// FixedConflictError reports fixed commitments that could not be installed.
// It signals a configuration problem in the supplied class schedule or work
// shifts, not a planning failure: the returned schedules are still valid.
type FixedConflictError struct {
	Conflicts []FixedConflict
}

func (e *FixedConflictError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d fixed block(s) rejected:", len(e.Conflicts))
	for _, c := range e.Conflicts {
		fmt.Fprintf(&sb, " [%s %s]", c.Date.Format("2006-01-02"), c.Block)
	}
	return sb.String()
}

// installFixed copies the class blocks and work shifts matching the target
// date into the day as fixed blocks, in input order. Refused blocks are
// returned as conflicts.
func installFixed(day *schedule.DailySchedule, classes []model.TimeBlock, shifts []model.WorkShift, date time.Time) []FixedConflict {
	var conflicts []FixedConflict
	for _, c := range classes {
		if !sameDay(c.Start, date) {
			continue
		}
		block := c
		block.Fixed = true
		if !day.AddBlock(block) {
			conflicts = append(conflicts, FixedConflict{Date: date, Block: block})
		}
	}
	for _, s := range shifts {
		if !sameDay(s.Start, date) {
			continue
		}
		block, err := model.NewTimeBlock(s.Start, s.End, model.CategoryWork, "Work - "+s.Role)
		if err != nil {
			conflicts = append(conflicts, FixedConflict{Date: date, Block: model.TimeBlock{Start: s.Start, End: s.End, Category: model.CategoryWork, Title: "Work - " + s.Role}})
			continue
		}
		block.Fixed = true
		block.Description = s.Location
		if !day.AddBlock(block) {
			conflicts = append(conflicts, FixedConflict{Date: date, Block: block})
		}
	}
	return conflicts
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

func beforeDay(a, b time.Time) bool {
	ad := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bd := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return ad.Before(bd)
}
