package model

import (
	"errors"
	"fmt"
	"time"
)

// Category identifies what a time block is reserved for.
type Category int

const (
	CategoryStudy Category = iota
	CategoryBreak
	CategoryClass
	CategoryWork
	CategoryPersonal
	CategoryBuffer
)

// String returns a human-readable representation of the category.
func (c Category) String() string {
	switch c {
	case CategoryStudy:
		return "study"
	case CategoryBreak:
		return "break"
	case CategoryClass:
		return "class"
	case CategoryWork:
		return "work"
	case CategoryPersonal:
		return "personal"
	case CategoryBuffer:
		return "buffer"
	default:
		return "unknown"
	}
}

// ErrEndBeforeStart is returned when a block's end does not come strictly
// after its start.
var ErrEndBeforeStart = errors.New("time block end must be strictly after start")

// TimeBlock is a half-open [Start, End) span on a day's schedule. Blocks are
// created once and never mutated afterwards; they are owned by the
// DailySchedule that accepted them.
type TimeBlock struct {
	Start time.Time
	End   time.Time

	Category    Category
	Title       string
	Description string

	// Set for study blocks only.
	TaskID   int64
	CourseID int64

	// Fixed marks an immovable commitment (class, work shift).
	Fixed bool

	Tags []string
}

// NewTimeBlock builds a block and rejects an end that is not strictly after
// the start.
func NewTimeBlock(start, end time.Time, category Category, title string) (TimeBlock, error) {
	if !end.After(start) {
		return TimeBlock{}, fmt.Errorf("%w: %s .. %s", ErrEndBeforeStart, start.Format(time.RFC3339), end.Format(time.RFC3339))
	}
	return TimeBlock{Start: start, End: end, Category: category, Title: title}, nil
}

// Duration returns the length of the block.
func (b TimeBlock) Duration() time.Duration {
	return b.End.Sub(b.Start)
}

// Minutes returns the block length in whole minutes.
func (b TimeBlock) Minutes() int {
	return int(b.Duration().Minutes())
}

// Overlaps reports whether two blocks share any time. Touching endpoints do
// not count as overlap.
func (b TimeBlock) Overlaps(other TimeBlock) bool {
	return b.Start.Before(other.End) && b.End.After(other.Start)
}

// String returns a compact "09:00-10:30: Title (study)" form.
func (b TimeBlock) String() string {
	return fmt.Sprintf("%s-%s: %s (%s)", b.Start.Format("15:04"), b.End.Format("15:04"), b.Title, b.Category)
}
