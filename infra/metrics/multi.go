package metrics

import (
	"errors"

	coremetrics "github.com/studyflow/studyflow/core/metrics"
)

// MultiSink fans events out to several sinks and joins their errors.
type MultiSink struct {
	sinks []coremetrics.Sink
}

// NewMultiSink creates a sink that forwards every event to all given sinks.
func NewMultiSink(sinks ...coremetrics.Sink) *MultiSink {
	return &MultiSink{sinks: sinks}
}

func (m *MultiSink) RecordPlanDay(res coremetrics.PlanDayResult) error {
	var errs []error
	for _, s := range m.sinks {
		if err := s.RecordPlanDay(res); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m *MultiSink) RecordPlacement(ev coremetrics.PlacementEvent) error {
	var errs []error
	for _, s := range m.sinks {
		if err := s.RecordPlacement(ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m *MultiSink) RecordExport(ev coremetrics.ExportEvent) error {
	var errs []error
	for _, s := range m.sinks {
		if err := s.RecordExport(ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
