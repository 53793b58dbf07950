package planner

import (
	"fmt"
	"time"

	"github.com/studyflow/studyflow/core/logger"
	"github.com/studyflow/studyflow/core/metrics"
	"github.com/studyflow/studyflow/core/model"
	"github.com/studyflow/studyflow/core/schedule"
)

// Planner builds multi-day study schedules. It is single-threaded and fully
// synchronous: each day is finalised before the next is started.
type Planner struct {
	cfg  Constraints
	log  logger.Logger
	sink metrics.Sink
	now  func() time.Time
}

// New creates a Planner with validated constraints. A nil logger disables
// logging.
func New(cfg Constraints, log logger.Logger) (*Planner, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("constraints: %w", err)
	}
	if log == nil {
		log = nopLogger{}
	}
	return &Planner{cfg: cfg, log: log, sink: metrics.NopSink{}, now: time.Now}, nil
}

// SetSink routes planning events to the given metrics sink.
func (p *Planner) SetSink(s metrics.Sink) {
	if s == nil {
		s = metrics.NopSink{}
	}
	p.sink = s
}

// SetNow overrides the clock used for urgency and eligibility decisions.
func (p *Planner) SetNow(fn func() time.Time) {
	if fn != nil {
		p.now = fn
	}
}

// Constraints returns the planner's effective constraints.
func (p *Planner) Constraints() Constraints {
	return p.cfg
}

// BuildSchedule allocates tasks over daysAhead consecutive days starting at
// startDate. Tasks are ranked once for the whole horizon. A task placed on an
// earlier day stays in the ranked list for later days.
//
// Schedules are always returned; the error is a *FixedConflictError when a
// class block or work shift was refused by its day's container, which the
// caller should surface as a configuration problem.
func (p *Planner) BuildSchedule(tasks []model.Task, classes []model.TimeBlock, shifts []model.WorkShift, startDate time.Time, daysAhead int) ([]*schedule.DailySchedule, error) {
	if daysAhead <= 0 {
		daysAhead = p.cfg.DaysAhead
	}
	now := p.now()
	p.log.Infof("planning %d day(s) starting %s for %d task(s)", daysAhead, startDate.Format("2006-01-02"), len(tasks))

	ranked := RankTasks(tasks, now)

	var conflicts []FixedConflict
	days := make([]*schedule.DailySchedule, 0, daysAhead)
	date := startDate
	for i := 0; i < daysAhead; i++ {
		day := schedule.New(date)
		conflicts = append(conflicts, installFixed(day, classes, shifts, date)...)

		stats := p.placeTasks(day, ranked, date, now)
		p.insertBreaks(day)

		if err := p.sink.RecordPlanDay(metrics.PlanDayResult{
			Date:          date,
			BlocksPlaced:  stats.placed,
			StudyMinutes:  day.StudyMinutes(),
			BreakMinutes:  day.BreakMinutes(),
			Efficiency:    day.Efficiency(),
			SkippedNoSlot: stats.skippedNoSlot,
			SkippedDue:    stats.skippedDue,
		}); err != nil {
			p.log.Errorf("record plan day: %v", err)
		}

		days = append(days, day)
		date = date.AddDate(0, 0, 1)
	}

	if len(conflicts) > 0 {
		return days, &FixedConflictError{Conflicts: conflicts}
	}
	return days, nil
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any)         {}
func (nopLogger) Debugw(string, map[string]any) {}
func (nopLogger) Infof(string, ...any)          {}
func (nopLogger) Warnf(string, ...any)          {}
func (nopLogger) Errorf(string, ...any)         {}
