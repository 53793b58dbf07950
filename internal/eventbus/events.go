package eventbus

import "time"

// DayPlanned is published after a day's schedule has been assembled.
type DayPlanned struct {
	Date         time.Time
	Blocks       int
	StudyMinutes int
	Efficiency   float64
}

// ExportDone is published after a calendar export batch finishes.
type ExportDone struct {
	BatchID string
	Events  int
	Failed  int
}
