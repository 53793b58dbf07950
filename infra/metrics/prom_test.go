package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	coremetrics "github.com/studyflow/studyflow/core/metrics"
)

func TestPromSinkRecords(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink, err := NewPromSinkWithRegistry(coremetrics.Config{}, reg)
	require.NoError(t, err)

	require.NoError(t, sink.RecordPlacement(coremetrics.PlacementEvent{Category: "study", Minutes: 90}))
	require.NoError(t, sink.RecordPlacement(coremetrics.PlacementEvent{Category: "study", Minutes: 60}))
	require.NoError(t, sink.RecordPlanDay(coremetrics.PlanDayResult{
		Date: time.Now(), StudyMinutes: 150, Efficiency: 0.75, SkippedNoSlot: 1,
	}))

	ps := sink.(*PromSink)
	require.Equal(t, 2.0, testutil.ToFloat64(ps.placed.WithLabelValues("study")))
	require.Equal(t, 150.0, testutil.ToFloat64(ps.study))
	require.Equal(t, 0.75, testutil.ToFloat64(ps.efficiency))
	require.Equal(t, 1.0, testutil.ToFloat64(ps.skipped.WithLabelValues("no_slot")))
}

func TestPromSinkDoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewPromSinkWithRegistry(coremetrics.Config{}, reg)
	require.NoError(t, err)
	// Registering on the same registry reuses the existing collectors.
	_, err = NewPromSinkWithRegistry(coremetrics.Config{}, reg)
	require.NoError(t, err)
}

func TestPromSinkRecordExport(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink, err := NewPromSinkWithRegistry(coremetrics.Config{}, reg)
	require.NoError(t, err)
	require.NoError(t, sink.RecordExport(coremetrics.ExportEvent{BatchID: "b1", Events: 5, Failed: 1, Time: time.Now()}))
	ps := sink.(*PromSink)
	require.Equal(t, 5.0, testutil.ToFloat64(ps.exported.WithLabelValues("created")))
	require.Equal(t, 1.0, testutil.ToFloat64(ps.exported.WithLabelValues("failed")))
}
