package model

import (
	"errors"
	"testing"
	"time"
)

func TestTaskValidateSuccess(t *testing.T) {
	now := time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)
	task := Task{
		ID:        "task-1",
		Title:     "Fix crash bug",
		CreatedAt: now,
		Deadline:  now.Add(24 * time.Hour),
	}
	if err := task.Validate(); err != nil {
		t.Fatalf("expected valid task, got error: %v", err)
	}
}

func TestTaskValidateCompletionInvariant(t *testing.T) {
	now := time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)
	task := Task{
		ID:          "task-1",
		Title:       "Done quest",
		IsCompleted: true,
		CreatedAt:   now,
	}
	if err := task.Validate(); !errors.Is(err, ErrInvalidCompletion) {
		t.Fatalf("expected ErrInvalidCompletion, got: %v", err)
	}

	done := now.Add(time.Hour)
	task.CompletedAt = &done
	if err := task.Validate(); err != nil {
		t.Fatalf("expected valid completed task, got: %v", err)
	}

	task.IsCompleted = false
	if err := task.Validate(); !errors.Is(err, ErrInvalidCompletion) {
		t.Fatalf("expected ErrInvalidCompletion for stale completed_at, got: %v", err)
	}
}

func TestTaskValidateRequiredFields(t *testing.T) {
	now := time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)

	task := Task{Title: "No id", CreatedAt: now}
	if err := task.Validate(); !errors.Is(err, ErrMissingID) {
		t.Fatalf("expected ErrMissingID, got: %v", err)
	}

	task = Task{ID: "task-1", Title: "   ", CreatedAt: now}
	if err := task.Validate(); !errors.Is(err, ErrMissingTitle) {
		t.Fatalf("expected ErrMissingTitle, got: %v", err)
	}

	task = Task{ID: "task-1", Title: "No created_at"}
	if err := task.Validate(); !errors.Is(err, ErrMissingCreatedAt) {
		t.Fatalf("expected ErrMissingCreatedAt, got: %v", err)
	}
}

func TestQuadrantOfCoversAllCombinations(t *testing.T) {
	cases := []struct {
		urgent    bool
		important bool
		want      Quadrant
	}{
		{urgent: true, important: true, want: QuadrantDoNow},
		{urgent: false, important: true, want: QuadrantPlan},
		{urgent: true, important: false, want: QuadrantDelegate},
		{urgent: false, important: false, want: QuadrantLater},
	}
	for _, tc := range cases {
		got := QuadrantOf(tc.urgent, tc.important)
		if got != tc.want {
			t.Fatalf("QuadrantOf(%v, %v) = %q, want %q", tc.urgent, tc.important, got, tc.want)
		}
		if !got.IsValid() {
			t.Fatalf("QuadrantOf(%v, %v) returned invalid quadrant %q", tc.urgent, tc.important, got)
		}
		task := Task{IsUrgent: tc.urgent, IsImportant: tc.important}
		if task.Quadrant() != tc.want {
			t.Fatalf("Task.Quadrant() = %q, want %q", task.Quadrant(), tc.want)
		}
	}
}

func TestDeadlineDayIgnoresTimeOfDay(t *testing.T) {
	morning := Task{Deadline: time.Date(2026, 2, 9, 8, 15, 0, 0, time.UTC)}
	evening := Task{Deadline: time.Date(2026, 2, 9, 23, 45, 0, 0, time.UTC)}
	if !morning.DeadlineDay().Equal(evening.DeadlineDay()) {
		t.Fatalf("same calendar day should compare equal: %v vs %v", morning.DeadlineDay(), evening.DeadlineDay())
	}
}

func TestSortModeCycle(t *testing.T) {
	if !SortCreatedTime.IsValid() || !SortDueDate.IsValid() || !SortTaskName.IsValid() {
		t.Fatal("expected all sort modes to be valid")
	}
	if SortMode("Random").IsValid() {
		t.Fatal("expected unknown sort mode to be invalid")
	}
	if SortCreatedTime.Next() != SortDueDate || SortDueDate.Next() != SortTaskName || SortTaskName.Next() != SortCreatedTime {
		t.Fatal("sort mode cycle out of order")
	}
}
