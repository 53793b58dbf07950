package metrics

import (
	coremetrics "github.com/studyflow/studyflow/core/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// PromSink records planning events in Prometheus metrics.
type PromSink struct {
	placed     *prometheus.CounterVec
	skipped    *prometheus.CounterVec
	exported   *prometheus.CounterVec
	study      prometheus.Gauge
	efficiency prometheus.Gauge
}

// NewPromSink registers planning metrics on the default Prometheus
// registerer. The Prometheus server should be started separately using
// cfg.PrometheusPort.
func NewPromSink(cfg coremetrics.Config) (coremetrics.Sink, error) {
	return NewPromSinkWithRegistry(cfg, prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(cfg coremetrics.Config, reg prometheus.Registerer) (coremetrics.Sink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	placed := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "plan_blocks_placed_total",
		Help: "Total number of study blocks committed by the planner",
	}, []string{"category"})
	skipped := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "plan_tasks_skipped_total",
		Help: "Total number of task placements skipped per day",
	}, []string{"reason"})
	exported := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "calendar_events_exported_total",
		Help: "Total number of calendar events created by the exporter",
	}, []string{"status"})
	study := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "plan_day_study_minutes",
		Help: "Study minutes scheduled for the most recently planned day",
	})
	efficiency := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "plan_day_efficiency",
		Help: "Efficiency ratio of the most recently planned day",
	})

	if err := reg.Register(placed); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			placed = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(skipped); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			skipped = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(exported); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			exported = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(study); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			study = are.ExistingCollector.(prometheus.Gauge)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(efficiency); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			efficiency = are.ExistingCollector.(prometheus.Gauge)
		} else {
			return nil, err
		}
	}

	return &PromSink{placed: placed, skipped: skipped, exported: exported, study: study, efficiency: efficiency}, nil
}

// RecordPlanDay updates the per-day gauges and skip counters.
func (s *PromSink) RecordPlanDay(res coremetrics.PlanDayResult) error {
	s.study.Set(float64(res.StudyMinutes))
	s.efficiency.Set(res.Efficiency)
	if res.SkippedNoSlot > 0 {
		s.skipped.WithLabelValues("no_slot").Add(float64(res.SkippedNoSlot))
	}
	if res.SkippedDue > 0 {
		s.skipped.WithLabelValues("past_due").Add(float64(res.SkippedDue))
	}
	return nil
}

// RecordPlacement increments the placed-block counter.
func (s *PromSink) RecordPlacement(ev coremetrics.PlacementEvent) error {
	s.placed.WithLabelValues(ev.Category).Inc()
	return nil
}

// RecordExport counts exported and failed calendar events.
func (s *PromSink) RecordExport(ev coremetrics.ExportEvent) error {
	if ev.Events > 0 {
		s.exported.WithLabelValues("created").Add(float64(ev.Events))
	}
	if ev.Failed > 0 {
		s.exported.WithLabelValues("failed").Add(float64(ev.Failed))
	}
	return nil
}
