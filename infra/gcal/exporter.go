package gcal

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/studyflow/studyflow/core/metrics"
	"github.com/studyflow/studyflow/core/model"
	"github.com/studyflow/studyflow/core/schedule"
	"github.com/studyflow/studyflow/infra/logger"
)

// exportMarker tags every event this exporter creates so a later run can find
// and replace them without touching the user's own events.
const exportMarker = "studyflow=1"

// Exporter pushes planned schedules to a Google Calendar.
type Exporter struct {
	cfg  Config
	svc  *calendar.Service
	tz   string
	log  logger.Logger
	sink metrics.ExportRecorder
}

// New builds an exporter with an authenticated calendar service. The timezone
// is an IANA name applied to every exported event.
func New(ctx context.Context, cfg Config, timezone string) (*Exporter, error) {
	cfg.SetDefaults()
	log := logger.New("gcal-exporter")

	httpClient, err := getClient(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("create calendar service: %w", err)
	}
	return NewWithService(svc, cfg, timezone), nil
}

// NewWithService builds an exporter around an existing calendar service.
func NewWithService(svc *calendar.Service, cfg Config, timezone string) *Exporter {
	cfg.SetDefaults()
	return &Exporter{
		cfg:  cfg,
		svc:  svc,
		tz:   timezone,
		log:  logger.New("gcal-exporter"),
		sink: metrics.NopSink{},
	}
}

// SetSink routes export batch metrics to the given recorder.
func (e *Exporter) SetSink(sink metrics.ExportRecorder) {
	if sink != nil {
		e.sink = sink
	}
}

// Export replaces previously exported events in the schedules' window and
// inserts one event per block. It returns the number of events created.
func (e *Exporter) Export(ctx context.Context, days []*schedule.DailySchedule) (int, error) {
	if len(days) == 0 {
		return 0, nil
	}

	from := days[0].Date()
	to := days[len(days)-1].Date().AddDate(0, 0, 1)
	if err := e.clearWindow(ctx, from, to); err != nil {
		return 0, err
	}

	batchID := uuid.NewString()
	created, failed := 0, 0
	for _, day := range days {
		for _, block := range day.Blocks() {
			ev := eventFromBlock(block, e.tz, batchID)
			if _, err := e.svc.Events.Insert(e.cfg.CalendarID, ev).Context(ctx).Do(); err != nil {
				e.log.Warnf("insert event %q: %v", ev.Summary, err)
				failed++
				continue
			}
			created++
		}
	}

	if err := e.sink.RecordExport(metrics.ExportEvent{
		BatchID: batchID,
		Events:  created,
		Failed:  failed,
		Time:    time.Now(),
	}); err != nil {
		e.log.Warnf("record export batch: %v", err)
	}
	e.log.Infof("exported %d event(s) to calendar %s (%d failed), batch %s", created, e.cfg.CalendarID, failed, batchID)
	if failed > 0 && created == 0 {
		return 0, fmt.Errorf("calendar export: all %d event(s) failed", failed)
	}
	return created, nil
}

// clearWindow deletes events created by a previous export inside [from, to).
func (e *Exporter) clearWindow(ctx context.Context, from, to time.Time) error {
	call := e.svc.Events.List(e.cfg.CalendarID).
		PrivateExtendedProperty(exportMarker).
		TimeMin(from.Format(time.RFC3339)).
		TimeMax(to.Format(time.RFC3339)).
		SingleEvents(true).
		Context(ctx)

	for {
		page, err := call.Do()
		if err != nil {
			return fmt.Errorf("list exported events: %w", err)
		}
		for _, ev := range page.Items {
			if err := e.svc.Events.Delete(e.cfg.CalendarID, ev.Id).Context(ctx).Do(); err != nil {
				e.log.Warnf("delete stale event %s: %v", ev.Id, err)
			}
		}
		if page.NextPageToken == "" {
			return nil
		}
		call = call.PageToken(page.NextPageToken)
	}
}

// colorForCategory maps block categories onto Google Calendar color ids.
func colorForCategory(c model.Category) string {
	switch c {
	case model.CategoryStudy:
		return "1"
	case model.CategoryClass:
		return "2"
	case model.CategoryWork:
		return "3"
	case model.CategoryBreak:
		return "4"
	case model.CategoryPersonal:
		return "5"
	case model.CategoryBuffer:
		return "6"
	default:
		return "1"
	}
}

func eventFromBlock(b model.TimeBlock, timezone, batchID string) *calendar.Event {
	desc := b.Description
	if len(b.Tags) > 0 {
		if desc != "" {
			desc += "\n"
		}
		desc += "Tags: " + strings.Join(b.Tags, ", ")
	}
	return &calendar.Event{
		Summary:     b.Title,
		Description: desc,
		ColorId:     colorForCategory(b.Category),
		Start: &calendar.EventDateTime{
			DateTime: b.Start.Format(time.RFC3339),
			TimeZone: timezone,
		},
		End: &calendar.EventDateTime{
			DateTime: b.End.Format(time.RFC3339),
			TimeZone: timezone,
		},
		ExtendedProperties: &calendar.EventExtendedProperties{
			Private: map[string]string{
				"studyflow":       "1",
				"studyflow_batch": batchID,
			},
		},
	}
}
