package model

import (
	"fmt"
	"time"
)

// ShiftStatus is the lifecycle state of a work shift in the workforce
// scheduling service.
type ShiftStatus int

const (
	ShiftScheduled ShiftStatus = iota
	ShiftInProgress
	ShiftCompleted
	ShiftCancelled
)

// String returns a human-readable representation of the status.
func (s ShiftStatus) String() string {
	switch s {
	case ShiftScheduled:
		return "scheduled"
	case ShiftInProgress:
		return "in_progress"
	case ShiftCompleted:
		return "completed"
	case ShiftCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// WorkShift is an immovable external commitment the planner must schedule
// around. It is read-only input.
type WorkShift struct {
	ID       string
	Start    time.Time
	End      time.Time
	Role     string
	Location string
	Status   ShiftStatus
	Notes    string
}

// Minutes returns the shift length in whole minutes.
func (s WorkShift) Minutes() int {
	return int(s.End.Sub(s.Start).Minutes())
}

// Date returns the calendar day the shift starts on.
func (s WorkShift) Date() time.Time {
	return s.Start
}

// String returns a compact "17:00-21:00: Barista (Downtown)" form.
func (s WorkShift) String() string {
	loc := s.Location
	if loc == "" {
		loc = "no location"
	}
	return fmt.Sprintf("%s-%s: %s (%s)", s.Start.Format("15:04"), s.End.Format("15:04"), s.Role, loc)
}
