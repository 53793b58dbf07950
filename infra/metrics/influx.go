package metrics

import (
	"context"
	"math"
	"net/http"
	"strings"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	coremetrics "github.com/studyflow/studyflow/core/metrics"
	"github.com/studyflow/studyflow/infra/logger"
)

// InfluxSink writes planning events to an InfluxDB instance using the
// official client.
type InfluxSink struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	log      logger.Logger
}

// NewInfluxSink creates a new sink configured for the given InfluxDB endpoint.
func NewInfluxSink(cfg coremetrics.Config) *InfluxSink {
	base := strings.TrimSuffix(cfg.InfluxURL, "/api/v2/write")
	client := influxdb2.NewClientWithOptions(base, cfg.InfluxToken,
		influxdb2.DefaultOptions().SetHTTPClient(&http.Client{Timeout: 5 * time.Second}))
	return &InfluxSink{
		client:   client,
		writeAPI: client.WriteAPIBlocking(cfg.InfluxOrg, cfg.InfluxBucket),
		log:      logger.New("influx-sink"),
	}
}

// NewInfluxSinkWithFallback tries to ping the InfluxDB instance and returns a
// NopSink if the health check fails.
func NewInfluxSinkWithFallback(cfg coremetrics.Config) coremetrics.Sink {
	sink := NewInfluxSink(cfg)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	health, err := sink.client.Health(ctx)
	if err != nil || health.Status != "pass" {
		if err != nil {
			sink.log.Errorf("influx health check error: %v", err)
		} else {
			sink.log.Errorf("influx health status: %s", health.Status)
		}
		sink.client.Close()
		return coremetrics.NopSink{}
	}
	return sink
}

// RecordPlanDay writes one point per planned day.
func (s *InfluxSink) RecordPlanDay(res coremetrics.PlanDayResult) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("plan_day").
		AddTag("date", res.Date.Format("2006-01-02")).
		AddTag("component", "planner").
		AddField("blocks_placed", res.BlocksPlaced).
		AddField("study_minutes", res.StudyMinutes).
		AddField("break_minutes", res.BreakMinutes).
		AddField("efficiency", round3(res.Efficiency)).
		AddField("skipped_no_slot", res.SkippedNoSlot).
		AddField("skipped_past_due", res.SkippedDue).
		SetTime(res.Date)
	return s.writeAPI.WritePoint(ctx, p)
}

// RecordPlacement writes a point for each committed study block.
func (s *InfluxSink) RecordPlacement(ev coremetrics.PlacementEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("plan_placement").
		AddTag("category", ev.Category).
		AddTag("component", "planner").
		AddField("task_id", ev.TaskID).
		AddField("minutes", ev.Minutes).
		AddField("score", round3(ev.Score)).
		SetTime(ev.Start)
	return s.writeAPI.WritePoint(ctx, p)
}

// RecordExport writes a point per calendar export batch.
func (s *InfluxSink) RecordExport(ev coremetrics.ExportEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("calendar_export").
		AddTag("batch_id", ev.BatchID).
		AddTag("component", "exporter").
		AddField("events", ev.Events).
		AddField("failed", ev.Failed).
		SetTime(ev.Time)
	return s.writeAPI.WritePoint(ctx, p)
}

// Close releases the underlying client.
func (s *InfluxSink) Close() {
	s.client.Close()
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
