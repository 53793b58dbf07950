package planner

import (
	"gonum.org/v1/gonum/stat"

	"github.com/studyflow/studyflow/core/schedule"
)

// Summary aggregates a planned horizon.
type Summary struct {
	Days                int
	TotalStudyMinutes   int
	TotalBreakMinutes   int
	AverageStudyMinutes float64
	MeanEfficiency      float64
}

// Summarize computes horizon-wide totals and averages.
func Summarize(days []*schedule.DailySchedule) Summary {
	s := Summary{Days: len(days)}
	if len(days) == 0 {
		return s
	}
	eff := make([]float64, 0, len(days))
	for _, d := range days {
		s.TotalStudyMinutes += d.StudyMinutes()
		s.TotalBreakMinutes += d.BreakMinutes()
		eff = append(eff, d.Efficiency())
	}
	s.AverageStudyMinutes = float64(s.TotalStudyMinutes) / float64(len(days))
	s.MeanEfficiency = stat.Mean(eff, nil)
	return s
}
