package schedule

import (
	"fmt"
	"sort"
	"time"

	"github.com/studyflow/studyflow/core/model"
)

// Slot is a free interval within a day's planning window.
type Slot struct {
	Start time.Time
	End   time.Time
}

// Minutes returns the slot length in whole minutes.
func (s Slot) Minutes() int {
	return int(s.End.Sub(s.Start).Minutes())
}

// Duration returns the slot length.
func (s Slot) Duration() time.Duration {
	return s.End.Sub(s.Start)
}

// DailySchedule holds the ordered, non-overlapping blocks for one calendar
// day. Derived metrics are re-computed on every mutation so they are never
// observed stale.
type DailySchedule struct {
	date   time.Time
	blocks []model.TimeBlock

	studyMinutes int
	breakMinutes int
	efficiency   float64
}

// New creates an empty schedule for the given day.
func New(date time.Time) *DailySchedule {
	return &DailySchedule{date: date}
}

// Date returns the calendar day this schedule covers.
func (d *DailySchedule) Date() time.Time {
	return d.date
}

// Blocks returns a copy of the contained blocks in insertion order.
func (d *DailySchedule) Blocks() []model.TimeBlock {
	out := make([]model.TimeBlock, len(d.blocks))
	copy(out, d.blocks)
	return out
}

// Len returns the number of blocks in the schedule.
func (d *DailySchedule) Len() int {
	return len(d.blocks)
}

// AddBlock appends the block if it does not overlap any existing block.
// It returns false when the block is refused.
func (d *DailySchedule) AddBlock(b model.TimeBlock) bool {
	for _, existing := range d.blocks {
		if b.Overlaps(existing) {
			return false
		}
	}
	d.blocks = append(d.blocks, b)
	d.recompute()
	return true
}

// RemoveBlock removes the block at the given insertion index.
func (d *DailySchedule) RemoveBlock(i int) bool {
	if i < 0 || i >= len(d.blocks) {
		return false
	}
	d.blocks = append(d.blocks[:i], d.blocks[i+1:]...)
	d.recompute()
	return true
}

// StudyMinutes returns the total minutes of study blocks.
func (d *DailySchedule) StudyMinutes() int {
	return d.studyMinutes
}

// BreakMinutes returns the total minutes of break blocks.
func (d *DailySchedule) BreakMinutes() int {
	return d.breakMinutes
}

// Efficiency returns study minutes over total scheduled minutes, or 0 for an
// empty day. The value is always within [0, 1].
func (d *DailySchedule) Efficiency() float64 {
	return d.efficiency
}

// BlocksByCategory returns all blocks with the given category.
func (d *DailySchedule) BlocksByCategory(c model.Category) []model.TimeBlock {
	var out []model.TimeBlock
	for _, b := range d.blocks {
		if b.Category == c {
			out = append(out, b)
		}
	}
	return out
}

// StudyBlocks returns all study blocks.
func (d *DailySchedule) StudyBlocks() []model.TimeBlock {
	return d.BlocksByCategory(model.CategoryStudy)
}

// FreeSlots walks the day's blocks in start order and returns every gap of at
// least minDuration inside [windowStart, windowEnd). The cursor only moves
// forward: a block starting before the cursor (nested inside an earlier one)
// never rewinds it.
func (d *DailySchedule) FreeSlots(minDuration time.Duration, windowStart, windowEnd time.Time) []Slot {
	sorted := make([]model.TimeBlock, len(d.blocks))
	copy(sorted, d.blocks)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})

	var slots []Slot
	cursor := windowStart
	for _, b := range sorted {
		if b.Start.Sub(cursor) >= minDuration {
			slots = append(slots, Slot{Start: cursor, End: b.Start})
		}
		if b.End.After(cursor) {
			cursor = b.End
		}
	}
	if windowEnd.Sub(cursor) >= minDuration {
		slots = append(slots, Slot{Start: cursor, End: windowEnd})
	}
	return slots
}

func (d *DailySchedule) recompute() {
	study, brk, total := 0, 0, 0
	for _, b := range d.blocks {
		m := b.Minutes()
		total += m
		switch b.Category {
		case model.CategoryStudy:
			study += m
		case model.CategoryBreak:
			brk += m
		}
	}
	d.studyMinutes = study
	d.breakMinutes = brk
	if total > 0 {
		d.efficiency = float64(study) / float64(total)
	} else {
		d.efficiency = 0
	}
}

// String lists the day's blocks, one per line.
func (d *DailySchedule) String() string {
	s := fmt.Sprintf("Schedule for %s:", d.date.Format("2006-01-02"))
	for _, b := range d.blocks {
		s += "\n  " + b.String()
	}
	return s
}
