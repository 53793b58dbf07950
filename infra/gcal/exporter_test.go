package gcal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studyflow/studyflow/core/model"
)

func TestEventFromBlock(t *testing.T) {
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	block := model.TimeBlock{
		Start:       start,
		End:         start.Add(90 * time.Minute),
		Category:    model.CategoryStudy,
		Title:       "Study: Problem Set 4",
		Description: "Course: Calculus II",
		Tags:        []string{"homework", "high"},
	}

	ev := eventFromBlock(block, "America/New_York", "batch-1")
	assert.Equal(t, "Study: Problem Set 4", ev.Summary)
	assert.Equal(t, "1", ev.ColorId)
	assert.Equal(t, "Course: Calculus II\nTags: homework, high", ev.Description)
	assert.Equal(t, "2025-03-10T09:00:00Z", ev.Start.DateTime)
	assert.Equal(t, "2025-03-10T10:30:00Z", ev.End.DateTime)
	assert.Equal(t, "America/New_York", ev.Start.TimeZone)
	require.NotNil(t, ev.ExtendedProperties)
	assert.Equal(t, "1", ev.ExtendedProperties.Private["studyflow"])
	assert.Equal(t, "batch-1", ev.ExtendedProperties.Private["studyflow_batch"])
}

func TestColorForCategory(t *testing.T) {
	cases := map[model.Category]string{
		model.CategoryStudy:    "1",
		model.CategoryClass:    "2",
		model.CategoryWork:     "3",
		model.CategoryBreak:    "4",
		model.CategoryPersonal: "5",
		model.CategoryBuffer:   "6",
	}
	for category, want := range cases {
		assert.Equal(t, want, colorForCategory(category), category.String())
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg := Config{}
	cfg.SetDefaults()
	assert.Equal(t, "primary", cfg.CalendarID)
	assert.Equal(t, "token.json", cfg.TokenFile)
}
