package planner

import (
	"sort"
	"time"

	"github.com/studyflow/studyflow/core/model"
)

// RankTasks orders tasks by descending urgency score, then by descending
// priority level. The sort is stable: tasks with identical keys keep their
// input order. The input slice is not modified.
func RankTasks(tasks []model.Task, now time.Time) []model.Task {
	ranked := make([]model.Task, len(tasks))
	copy(ranked, tasks)
	sort.SliceStable(ranked, func(i, j int) bool {
		ui, uj := ranked[i].UrgencyScore(now), ranked[j].UrgencyScore(now)
		if ui != uj {
			return ui > uj
		}
		return ranked[i].Priority > ranked[j].Priority
	})
	return ranked
}
