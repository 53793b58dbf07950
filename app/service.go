package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/studyflow/studyflow/config"
	coremetrics "github.com/studyflow/studyflow/core/metrics"
	"github.com/studyflow/studyflow/core/model"
	"github.com/studyflow/studyflow/core/planner"
	"github.com/studyflow/studyflow/core/schedule"
	"github.com/studyflow/studyflow/infra/canvas"
	"github.com/studyflow/studyflow/infra/gcal"
	"github.com/studyflow/studyflow/infra/logger"
	"github.com/studyflow/studyflow/infra/metrics"
	"github.com/studyflow/studyflow/infra/sling"
	"github.com/studyflow/studyflow/internal/eventbus"
)

// Service wires the task sources, the planner, the metric sinks and the
// calendar exporter together.
type Service struct {
	cfg     *config.Config
	planner *planner.Planner
	canvas  *canvas.Client
	sling   *sling.Client
	sink    coremetrics.Sink
	closers []interface{ Close() }
	bus     *eventbus.Bus[eventbus.DayPlanned]
	log     logger.Logger

	promEnabled bool
	promPort    string
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.New("service")

	canvasClient, err := canvas.New(cfg.Canvas)
	if err != nil {
		return nil, fmt.Errorf("canvas client: %w", err)
	}
	var slingClient *sling.Client
	if cfg.Sling.Enabled {
		slingClient, err = sling.New(cfg.Sling)
		if err != nil {
			return nil, fmt.Errorf("sling client: %w", err)
		}
	}

	var sinks []coremetrics.Sink
	var closers []interface{ Close() }
	if cfg.Metrics.PrometheusEnabled {
		sink, err := metrics.NewPromSink(cfg.Metrics)
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sinks = append(sinks, sink)
	}
	if cfg.Metrics.InfluxEnabled {
		influx := metrics.NewInfluxSinkWithFallback(cfg.Metrics)
		sinks = append(sinks, influx)
		if closer, ok := influx.(interface{ Close() }); ok {
			closers = append(closers, closer)
		}
	}
	var sink coremetrics.Sink = coremetrics.NopSink{}
	if len(sinks) == 1 {
		sink = sinks[0]
	} else if len(sinks) > 1 {
		sink = metrics.NewMultiSink(sinks...)
	}

	p, err := planner.New(cfg.Planner, logger.New("planner"))
	if err != nil {
		return nil, fmt.Errorf("planner: %w", err)
	}
	p.SetSink(sink)

	return &Service{
		cfg:         cfg,
		planner:     p,
		canvas:      canvasClient,
		sling:       slingClient,
		sink:        sink,
		closers:     closers,
		bus:         eventbus.New[eventbus.DayPlanned](),
		log:         logg,
		promEnabled: cfg.Metrics.PrometheusEnabled,
		promPort:    cfg.Metrics.PrometheusPort,
	}, nil
}

// Bus exposes the day-planned event stream for observers.
func (s *Service) Bus() *eventbus.Bus[eventbus.DayPlanned] { return s.bus }

// Plan fetches tasks and shifts, expands the class timetable and builds the
// horizon. Schedules are returned even when fixed blocks were rejected; the
// conflict error is passed through for the caller to report.
func (s *Service) Plan(ctx context.Context) ([]*schedule.DailySchedule, error) {
	now := time.Now()
	startDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	days := s.cfg.Planner.DaysAhead

	tasks, err := s.canvas.Tasks(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("fetch tasks: %w", err)
	}
	var shifts []model.WorkShift
	if s.sling != nil {
		shifts, err = s.sling.Shifts(ctx, startDate, startDate.AddDate(0, 0, days))
		if err != nil {
			return nil, fmt.Errorf("fetch shifts: %w", err)
		}
	}
	classes, err := config.ExpandClasses(s.cfg.Classes, startDate, days)
	if err != nil {
		return nil, fmt.Errorf("expand classes: %w", err)
	}

	schedules, err := s.planner.BuildSchedule(tasks, classes, shifts, startDate, days)
	var conflicts *planner.FixedConflictError
	if err != nil && !errors.As(err, &conflicts) {
		return nil, err
	}
	if conflicts != nil {
		s.log.Warnf("%v", conflicts)
	}

	for _, day := range schedules {
		s.bus.Publish(eventbus.DayPlanned{
			Date:         day.Date(),
			Blocks:       day.Len(),
			StudyMinutes: day.StudyMinutes(),
			Efficiency:   day.Efficiency(),
		})
	}
	return schedules, err
}

// Export pushes the schedules to Google Calendar.
func (s *Service) Export(ctx context.Context, schedules []*schedule.DailySchedule) (int, error) {
	if !s.cfg.Calendar.Enabled {
		return 0, fmt.Errorf("calendar export is disabled in configuration")
	}
	exporter, err := gcal.New(ctx, s.cfg.Calendar, s.cfg.Planner.Timezone)
	if err != nil {
		return 0, fmt.Errorf("calendar exporter: %w", err)
	}
	exporter.SetSink(s.sink)
	return exporter.Export(ctx, schedules)
}

// StartMetricsServer runs the Prometheus endpoint until the context is
// cancelled. It returns immediately when Prometheus is disabled.
func (s *Service) StartMetricsServer(ctx context.Context) {
	if !s.promEnabled {
		return
	}
	go func() {
		if err := metrics.StartPromServer(ctx, s.promPort); err != nil {
			s.log.Errorf("prom server: %v", err)
		}
	}()
}

// Close releases resources held by the service.
func (s *Service) Close() {
	s.bus.Close()
	for _, closer := range s.closers {
		closer.Close()
	}
}
