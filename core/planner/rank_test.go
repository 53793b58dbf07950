package planner

import (
	"testing"
	"time"

	"github.com/studyflow/studyflow/core/model"
)

func TestRankTasksByUrgency(t *testing.T) {
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	dueSoon := now.Add(2 * 24 * time.Hour)
	dueLater := now.Add(20 * 24 * time.Hour)

	tasks := []model.Task{
		{ID: 1, Name: "far away", DueDate: &dueLater, Priority: model.PriorityHigh},
		{ID: 2, Name: "soon", DueDate: &dueSoon, Priority: model.PriorityMedium},
		{ID: 3, Name: "no deadline", Priority: model.PriorityUrgent},
	}
	ranked := RankTasks(tasks, now)
	if ranked[0].ID != 2 {
		t.Fatalf("expected task 2 first, got %d", ranked[0].ID)
	}
	if ranked[1].ID != 1 {
		t.Fatalf("expected task 1 second, got %d", ranked[1].ID)
	}
	if ranked[2].ID != 3 {
		t.Fatalf("expected no-deadline task last, got %d", ranked[2].ID)
	}
}

func TestRankTasksPrioritySecondary(t *testing.T) {
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	// Same urgency score only when both have no due date (score 0).
	tasks := []model.Task{
		{ID: 1, Priority: model.PriorityLow},
		{ID: 2, Priority: model.PriorityUrgent},
	}
	ranked := RankTasks(tasks, now)
	if ranked[0].ID != 2 {
		t.Fatalf("expected urgent-priority task first, got %d", ranked[0].ID)
	}
}

func TestRankTasksStable(t *testing.T) {
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	due := now.Add(5 * 24 * time.Hour)
	tasks := []model.Task{
		{ID: 10, DueDate: &due, Priority: model.PriorityMedium},
		{ID: 11, DueDate: &due, Priority: model.PriorityMedium},
		{ID: 12, DueDate: &due, Priority: model.PriorityMedium},
	}
	ranked := RankTasks(tasks, now)
	for i, want := range []int64{10, 11, 12} {
		if ranked[i].ID != want {
			t.Fatalf("position %d: got %d want %d (stability broken)", i, ranked[i].ID, want)
		}
	}
}

func TestRankTasksDoesNotMutateInput(t *testing.T) {
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	due := now.Add(24 * time.Hour)
	tasks := []model.Task{
		{ID: 1, Priority: model.PriorityLow},
		{ID: 2, DueDate: &due, Priority: model.PriorityUrgent},
	}
	RankTasks(tasks, now)
	if tasks[0].ID != 1 || tasks[1].ID != 2 {
		t.Fatal("input slice was reordered")
	}
}
