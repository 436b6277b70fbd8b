package projection

import (
	"testing"
	"time"

	"github.com/questdo/questdo/internal/model"
)

var baseTime = time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)

func activeTask(id, title string, created time.Time, deadline time.Time, urgent, important bool) model.Task {
	return model.Task{
		ID:          id,
		Title:       title,
		CreatedAt:   created,
		Deadline:    deadline,
		IsUrgent:    urgent,
		IsImportant: important,
	}
}

func doneTask(id, title string, created, done time.Time) model.Task {
	return model.Task{
		ID:          id,
		Title:       title,
		IsCompleted: true,
		CreatedAt:   created,
		Deadline:    created.Add(24 * time.Hour),
		CompletedAt: &done,
	}
}

func idsOf(tasks []model.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return out
}

func sameIDs(got []model.Task, want ...string) bool {
	if len(got) != len(want) {
		return false
	}
	for i, t := range got {
		if t.ID != want[i] {
			return false
		}
	}
	return true
}

func TestActiveListFiltersCompleted(t *testing.T) {
	tasks := []model.Task{
		activeTask("a", "Active quest", baseTime, baseTime.Add(24*time.Hour), false, false),
		doneTask("d", "Done quest", baseTime, baseTime.Add(time.Hour)),
	}
	got := ActiveList(tasks, model.SortCreatedTime)
	if !sameIDs(got, "a") {
		t.Fatalf("expected only the active task, got %v", idsOf(got))
	}
	for _, task := range got {
		if task.IsCompleted {
			t.Fatalf("active list contains completed task %s", task.ID)
		}
	}
}

func TestActiveListSortCreatedTimeNewestFirst(t *testing.T) {
	tasks := []model.Task{
		activeTask("old", "Old", baseTime, baseTime.Add(24*time.Hour), false, false),
		activeTask("new", "New", baseTime.Add(2*time.Hour), baseTime.Add(24*time.Hour), false, false),
		activeTask("mid", "Mid", baseTime.Add(time.Hour), baseTime.Add(24*time.Hour), false, false),
	}
	got := ActiveList(tasks, model.SortCreatedTime)
	if !sameIDs(got, "new", "mid", "old") {
		t.Fatalf("unexpected created-time order: %v", idsOf(got))
	}
}

func TestActiveListSortDueDateSoonestFirst(t *testing.T) {
	day := 24 * time.Hour
	tasks := []model.Task{
		activeTask("p3", "Plus three", baseTime, baseTime.Add(3*day), false, false),
		activeTask("p1", "Plus one", baseTime, baseTime.Add(1*day), false, false),
		activeTask("p2", "Plus two", baseTime, baseTime.Add(2*day), false, false),
	}
	got := ActiveList(tasks, model.SortDueDate)
	if !sameIDs(got, "p1", "p2", "p3") {
		t.Fatalf("unexpected due-date order: %v", idsOf(got))
	}
}

func TestActiveListSortDueDateIgnoresTimeOfDay(t *testing.T) {
	tasks := []model.Task{
		activeTask("late", "Late in day", baseTime, time.Date(2026, 2, 10, 23, 0, 0, 0, time.UTC), false, false),
		activeTask("early", "Early in day", baseTime, time.Date(2026, 2, 10, 1, 0, 0, 0, time.UTC), false, false),
	}
	got := ActiveList(tasks, model.SortDueDate)
	// Same calendar day compares equal, so insertion order is kept.
	if !sameIDs(got, "late", "early") {
		t.Fatalf("expected stable order for same-day deadlines, got %v", idsOf(got))
	}
}

func TestActiveListSortTaskNameIsCaseInsensitive(t *testing.T) {
	tasks := []model.Task{
		activeTask("b", "banana", baseTime, baseTime.Add(24*time.Hour), false, false),
		activeTask("a", "Apple", baseTime, baseTime.Add(24*time.Hour), false, false),
		activeTask("c", "cherry", baseTime, baseTime.Add(24*time.Hour), false, false),
	}
	got := ActiveList(tasks, model.SortTaskName)
	if !sameIDs(got, "a", "b", "c") {
		t.Fatalf("expected Apple, banana, cherry; got %v", idsOf(got))
	}
}

func TestCompletedListSortsByCompletionTime(t *testing.T) {
	tasks := []model.Task{
		doneTask("first", "Finished first", baseTime, baseTime.Add(time.Hour)),
		doneTask("last", "Finished last", baseTime.Add(time.Minute), baseTime.Add(3*time.Hour)),
		doneTask("mid", "Finished mid", baseTime.Add(2*time.Minute), baseTime.Add(2*time.Hour)),
		activeTask("open", "Still open", baseTime, baseTime.Add(24*time.Hour), false, false),
	}
	got := CompletedList(tasks, model.SortCreatedTime)
	if !sameIDs(got, "last", "mid", "first") {
		t.Fatalf("unexpected done-log order: %v", idsOf(got))
	}
	for _, task := range got {
		if !task.IsCompleted {
			t.Fatalf("completed list contains active task %s", task.ID)
		}
	}
}

func TestActiveAndCompletedPartitionTheCollection(t *testing.T) {
	tasks := []model.Task{
		activeTask("a1", "One", baseTime, baseTime.Add(24*time.Hour), true, true),
		activeTask("a2", "Two", baseTime, baseTime.Add(24*time.Hour), false, true),
		doneTask("d1", "Three", baseTime, baseTime.Add(time.Hour)),
		doneTask("d2", "Four", baseTime, baseTime.Add(2*time.Hour)),
	}
	active := ActiveList(tasks, model.SortTaskName)
	done := CompletedList(tasks, model.SortTaskName)
	if len(active)+len(done) != len(tasks) {
		t.Fatalf("partition lost tasks: %d active + %d done != %d total", len(active), len(done), len(tasks))
	}
	seen := make(map[string]bool)
	for _, task := range append(active, done...) {
		if seen[task.ID] {
			t.Fatalf("task %s appears in both projections", task.ID)
		}
		seen[task.ID] = true
	}
}

func TestMatrixGroupsCoverAllQuadrants(t *testing.T) {
	day := 24 * time.Hour
	tasks := []model.Task{
		activeTask("do", "Fire", baseTime, baseTime.Add(day), true, true),
		activeTask("plan", "Think", baseTime, baseTime.Add(day), false, true),
		activeTask("delegate", "Ask", baseTime, baseTime.Add(day), true, false),
	}
	groups := MatrixGroups(tasks, model.SortCreatedTime)
	if len(groups) != 4 {
		t.Fatalf("expected 4 groups, got %d", len(groups))
	}

	sizes := make(map[model.Quadrant]int)
	for _, g := range groups {
		sizes[g.Quadrant] = len(g.Tasks)
	}
	if sizes[model.QuadrantDoNow] != 1 || sizes[model.QuadrantPlan] != 1 || sizes[model.QuadrantDelegate] != 1 {
		t.Fatalf("unexpected group sizes: %v", sizes)
	}
	if sizes[model.QuadrantLater] != 0 {
		t.Fatalf("expected empty Later group, got %d tasks", sizes[model.QuadrantLater])
	}

	// Non-empty groups come first in fixed order; empty ones trail.
	if groups[3].Quadrant != model.QuadrantLater {
		t.Fatalf("expected the empty Later group last, got %s", groups[3].Quadrant)
	}
}

func TestMatrixGroupsFloatNonEmptyFirst(t *testing.T) {
	tasks := []model.Task{
		activeTask("later", "Chill", baseTime, baseTime.Add(24*time.Hour), false, false),
	}
	groups := MatrixGroups(tasks, model.SortCreatedTime)
	want := []model.Quadrant{model.QuadrantLater, model.QuadrantDoNow, model.QuadrantPlan, model.QuadrantDelegate}
	for i, g := range groups {
		if g.Quadrant != want[i] {
			t.Fatalf("group %d: expected %s, got %s", i, want[i], g.Quadrant)
		}
	}
}

func TestMatrixGroupsUnionMatchesActiveList(t *testing.T) {
	day := 24 * time.Hour
	tasks := []model.Task{
		activeTask("a", "Alpha", baseTime, baseTime.Add(day), true, true),
		activeTask("b", "Beta", baseTime.Add(time.Hour), baseTime.Add(2*day), false, true),
		activeTask("c", "Gamma", baseTime.Add(2*time.Hour), baseTime.Add(3*day), false, false),
		doneTask("d", "Delta", baseTime, baseTime.Add(time.Hour)),
	}
	active := ActiveList(tasks, model.SortCreatedTime)
	activeIDs := make(map[string]bool, len(active))
	for _, task := range active {
		activeIDs[task.ID] = true
	}

	total := 0
	for _, g := range MatrixGroups(tasks, model.SortCreatedTime) {
		for _, task := range g.Tasks {
			if !activeIDs[task.ID] {
				t.Fatalf("matrix task %s missing from active list", task.ID)
			}
			total++
		}
	}
	if total != len(active) {
		t.Fatalf("matrix union has %d tasks, active list has %d", total, len(active))
	}
}

func TestProjectionsDoNotMutateInput(t *testing.T) {
	day := 24 * time.Hour
	tasks := []model.Task{
		activeTask("z", "Zeta", baseTime, baseTime.Add(3*day), false, false),
		activeTask("a", "Alpha", baseTime.Add(time.Hour), baseTime.Add(day), true, true),
	}
	ActiveList(tasks, model.SortTaskName)
	MatrixGroups(tasks, model.SortDueDate)
	if tasks[0].ID != "z" || tasks[1].ID != "a" {
		t.Fatalf("input slice was reordered: %v", idsOf(tasks))
	}
}
