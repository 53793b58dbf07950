package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	coremetrics "github.com/studyflow/studyflow/core/metrics"
)

type countingSink struct {
	coremetrics.NopSink
	days int
	err  error
}

func (c *countingSink) RecordPlanDay(coremetrics.PlanDayResult) error {
	c.days++
	return c.err
}

func TestMultiSinkFansOut(t *testing.T) {
	a, b := &countingSink{}, &countingSink{}
	m := NewMultiSink(a, b)
	require.NoError(t, m.RecordPlanDay(coremetrics.PlanDayResult{Date: time.Now()}))
	require.Equal(t, 1, a.days)
	require.Equal(t, 1, b.days)
}

func TestMultiSinkJoinsErrors(t *testing.T) {
	boom := errors.New("boom")
	a, b := &countingSink{err: boom}, &countingSink{}
	m := NewMultiSink(a, b)
	err := m.RecordPlanDay(coremetrics.PlanDayResult{Date: time.Now()})
	require.ErrorIs(t, err, boom)
	// The failing sink does not stop the others.
	require.Equal(t, 1, b.days)
}
