// Package projection derives the three list presentations from a task
// collection snapshot. Every function is pure: inputs are never mutated and
// results are freshly allocated, so callers may re-evaluate on every render.
package projection

import (
	"sort"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/questdo/questdo/internal/model"
)

// QuadrantGroup is one matrix section. Tasks may be empty; the group is
// still emitted so the UI can render an empty placeholder.
type QuadrantGroup struct {
	Quadrant model.Quadrant
	Tasks    []model.Task
}

// ActiveList returns the incomplete tasks ordered by the given sort mode:
// CreatedTime newest first, DueDate soonest first, TaskName alphabetical.
func ActiveList(tasks []model.Task, mode model.SortMode) []model.Task {
	out := filterTasks(tasks, func(t model.Task) bool { return !t.IsCompleted })
	sortActive(out, mode)
	return out
}

// CompletedList returns the completed tasks. The CreatedTime mode orders the
// done log by completion time, most recently finished first; the other modes
// behave exactly as in ActiveList.
func CompletedList(tasks []model.Task, mode model.SortMode) []model.Task {
	out := filterTasks(tasks, func(t model.Task) bool { return t.IsCompleted })
	switch mode {
	case model.SortDueDate:
		sortByDeadline(out)
	case model.SortTaskName:
		sortByTitle(out)
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return finishedAt(out[i]).After(finishedAt(out[j]))
		})
	}
	return out
}

// MatrixGroups partitions the active tasks by quadrant, sorting within each
// group as ActiveList does. All four quadrants are always present; groups
// that currently hold tasks surface above empty ones, each run keeping the
// fixed quadrant enumeration order.
func MatrixGroups(tasks []model.Task, mode model.SortMode) []QuadrantGroup {
	buckets := make(map[model.Quadrant][]model.Task, len(model.Quadrants))
	for _, t := range tasks {
		if t.IsCompleted {
			continue
		}
		q := t.Quadrant()
		buckets[q] = append(buckets[q], t)
	}

	out := make([]QuadrantGroup, 0, len(model.Quadrants))
	for _, q := range model.Quadrants {
		if len(buckets[q]) == 0 {
			continue
		}
		group := buckets[q]
		sortActive(group, mode)
		out = append(out, QuadrantGroup{Quadrant: q, Tasks: group})
	}
	for _, q := range model.Quadrants {
		if len(buckets[q]) == 0 {
			out = append(out, QuadrantGroup{Quadrant: q, Tasks: []model.Task{}})
		}
	}
	return out
}

func filterTasks(tasks []model.Task, keep func(model.Task) bool) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

func sortActive(tasks []model.Task, mode model.SortMode) {
	switch mode {
	case model.SortDueDate:
		sortByDeadline(tasks)
	case model.SortTaskName:
		sortByTitle(tasks)
	default:
		sort.SliceStable(tasks, func(i, j int) bool {
			return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
		})
	}
}

func sortByDeadline(tasks []model.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].DeadlineDay().Before(tasks[j].DeadlineDay())
	})
}

func sortByTitle(tasks []model.Task) {
	// A collator is not safe for concurrent use, so each sort builds its own.
	c := collate.New(language.Und, collate.IgnoreCase)
	sort.SliceStable(tasks, func(i, j int) bool {
		return c.CompareString(tasks[i].Title, tasks[j].Title) < 0
	})
}

func finishedAt(t model.Task) time.Time {
	if t.CompletedAt != nil {
		return *t.CompletedAt
	}
	return t.CreatedAt
}
