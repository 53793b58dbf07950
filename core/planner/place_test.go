package planner

import (
	"testing"
	"time"

	"github.com/studyflow/studyflow/core/model"
)

var testNow = time.Date(2025, 3, 10, 7, 0, 0, 0, time.UTC)

func testPlanner(t *testing.T) *Planner {
	t.Helper()
	p, err := New(Constraints{}, nil)
	if err != nil {
		t.Fatalf("planner: %v", err)
	}
	p.SetNow(func() time.Time { return testNow })
	return p
}

func at(h, m int) time.Time {
	return time.Date(2025, 3, 10, h, m, 0, 0, time.UTC)
}

func fixedBlock(t *testing.T, start, end time.Time, title string) model.TimeBlock {
	t.Helper()
	b, err := model.NewTimeBlock(start, end, model.CategoryClass, title)
	if err != nil {
		t.Fatalf("fixed block: %v", err)
	}
	b.Fixed = true
	return b
}

func dueAt(tm time.Time) *time.Time { return &tm }

func TestPlaceSelectsOnlyFittingSlot(t *testing.T) {
	p := testPlanner(t)
	// Classes carve the window into slots (09:00,11:00) and (14:00,15:00).
	classes := []model.TimeBlock{
		fixedBlock(t, at(11, 0), at(14, 0), "Lecture"),
		fixedBlock(t, at(15, 0), at(22, 0), "Evening seminar"),
	}
	tasks := []model.Task{{
		ID: 1, Name: "Problem set", CourseName: "Math",
		EstimatedMinutes: 90, Difficulty: 3, Priority: model.PriorityMedium,
		DueDate: dueAt(testNow.Add(48 * time.Hour)),
	}}

	days, err := p.BuildSchedule(tasks, classes, nil, at(0, 0), 1)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	study := days[0].StudyBlocks()
	if len(study) != 1 {
		t.Fatalf("expected 1 study block, got %d", len(study))
	}
	if !study[0].Start.Equal(at(9, 0)) || !study[0].End.Equal(at(10, 30)) {
		t.Fatalf("study block %v-%v, want 09:00-10:30", study[0].Start, study[0].End)
	}
	if study[0].TaskID != 1 {
		t.Fatalf("study block task id %d, want 1", study[0].TaskID)
	}
}

func TestPlacePrefersMorningOnEqualFit(t *testing.T) {
	p := testPlanner(t)
	// Two 100-minute slots with identical fit; morning wins on time score.
	classes := []model.TimeBlock{
		fixedBlock(t, at(10, 40), at(18, 0), "Long lab"),
		fixedBlock(t, at(19, 40), at(22, 0), "Club"),
	}
	tasks := []model.Task{{
		ID: 1, Name: "Essay draft", CourseName: "English",
		EstimatedMinutes: 100, Difficulty: 3, Priority: model.PriorityMedium,
	}}

	days, err := p.BuildSchedule(tasks, classes, nil, at(0, 0), 1)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	study := days[0].StudyBlocks()
	if len(study) != 1 {
		t.Fatalf("expected 1 study block, got %d", len(study))
	}
	if !study[0].Start.Equal(at(9, 0)) {
		t.Fatalf("study starts %v, want morning slot 09:00", study[0].Start)
	}
}

func TestPlaceConsumedSlotDiscardedWhole(t *testing.T) {
	p := testPlanner(t)
	// One big free slot: the first task consumes it entirely even though it
	// only uses 60 minutes, so the second task finds nothing.
	tasks := []model.Task{
		{ID: 1, Name: "first", EstimatedMinutes: 60, Difficulty: 3, Priority: model.PriorityMedium},
		{ID: 2, Name: "second", EstimatedMinutes: 60, Difficulty: 3, Priority: model.PriorityMedium},
	}
	days, err := p.BuildSchedule(tasks, nil, nil, at(0, 0), 1)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	study := days[0].StudyBlocks()
	if len(study) != 1 {
		t.Fatalf("expected 1 study block (slot discarded whole), got %d", len(study))
	}
	if study[0].TaskID != 1 {
		t.Fatalf("placed task %d, want 1", study[0].TaskID)
	}
}

func TestPlaceSkipsPastDueTasks(t *testing.T) {
	p := testPlanner(t)
	target := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)
	tasks := []model.Task{
		{ID: 1, Name: "overdue", EstimatedMinutes: 60, Difficulty: 3,
			Priority: model.PriorityHigh, DueDate: dueAt(at(12, 0))},
	}
	days, err := p.BuildSchedule(tasks, nil, nil, target, 1)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if got := len(days[0].StudyBlocks()); got != 0 {
		t.Fatalf("task due before target day was placed (%d blocks)", got)
	}
}

func TestPlaceSkipsCompletedTasks(t *testing.T) {
	p := testPlanner(t)
	tasks := []model.Task{
		{ID: 1, Name: "done", EstimatedMinutes: 60, Difficulty: 3,
			Priority: model.PriorityHigh, Completed: true},
	}
	days, err := p.BuildSchedule(tasks, nil, nil, at(0, 0), 1)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if got := len(days[0].StudyBlocks()); got != 0 {
		t.Fatalf("completed task was placed (%d blocks)", got)
	}
}

func TestTimeOfDayScoreSteps(t *testing.T) {
	cases := map[int]float64{9: 1.0, 11: 1.0, 12: 0.8, 16: 0.8, 17: 0.6, 21: 0.6, 22: 0.2, 6: 0.2}
	for hour, want := range cases {
		if got := timeOfDayScore(at(hour, 0)); got != want {
			t.Errorf("hour %d: score %v, want %v", hour, got, want)
		}
	}
}

func TestFitScore(t *testing.T) {
	if got := fitScore(90, 90); got != 1.0 {
		t.Fatalf("exact fit score %v, want 1.0", got)
	}
	if got := fitScore(180, 90); got != 0.0 {
		t.Fatalf("double-size slot score %v, want 0.0", got)
	}
}
