package metrics

import (
	"time"
)

// PlanDayResult summarises the outcome of planning one day.
type PlanDayResult struct {
	Date          time.Time
	BlocksPlaced  int
	StudyMinutes  int
	BreakMinutes  int
	Efficiency    float64
	SkippedNoSlot int
	SkippedDue    int
}

// PlanRecorder records per-day planning outcomes for observability purposes.
type PlanRecorder interface {
	RecordPlanDay(res PlanDayResult) error
}

// PlacementEvent captures a single study block committed to a day.
type PlacementEvent struct {
	TaskID   int64
	TaskName string
	Category string
	Date     time.Time
	Start    time.Time
	Minutes  int
	Score    float64
}

// PlacementRecorder records individual block placements.
type PlacementRecorder interface {
	RecordPlacement(ev PlacementEvent) error
}

// ExportEvent captures a calendar export batch.
type ExportEvent struct {
	BatchID string
	Events  int
	Failed  int
	Time    time.Time
}

// ExportRecorder records calendar export batches.
type ExportRecorder interface {
	RecordExport(ev ExportEvent) error
}

// Sink groups every recorder the planner and service may feed.
type Sink interface {
	PlanRecorder
	PlacementRecorder
	ExportRecorder
}

// NopSink implements Sink with no-op methods.
type NopSink struct{}

func (NopSink) RecordPlanDay(PlanDayResult) error    { return nil }
func (NopSink) RecordPlacement(PlacementEvent) error { return nil }
func (NopSink) RecordExport(ExportEvent) error       { return nil }
