package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/questdo/questdo/internal/model"
	"github.com/questdo/questdo/internal/projection"
	"github.com/questdo/questdo/internal/views"
)

// visibleTasks returns the current screen's tasks in display order, so the
// cursor, toggle, edit and delete actions all agree on targets.
func (m Model) visibleTasks() []model.Task {
	snapshot := m.Store.Tasks()
	switch m.CurrentView {
	case ViewQuests:
		return projection.ActiveList(snapshot, m.Sort[ViewQuests])
	case ViewMatrix:
		var out []model.Task
		for _, g := range projection.MatrixGroups(snapshot, m.Sort[ViewMatrix]) {
			out = append(out, g.Tasks...)
		}
		return out
	case ViewDone:
		return projection.CompletedList(snapshot, m.Sort[ViewDone])
	default:
		return nil
	}
}

func (m Model) selectedTask() (model.Task, bool) {
	tasks := m.visibleTasks()
	if len(tasks) == 0 || m.Cursor < 0 || m.Cursor >= len(tasks) {
		return model.Task{}, false
	}
	return tasks[m.Cursor], true
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if count := len(m.visibleTasks()); m.Cursor < count-1 {
			m.Cursor++
		}
		return m, nil
	case "k", "up":
		if m.Cursor > 0 {
			m.Cursor--
		}
		return m, nil
	case "a":
		return m.openEditor(nil), nil
	case "e":
		if task, ok := m.selectedTask(); ok {
			return m.openEditor(&task), nil
		}
		return m, nil
	case "x", " ":
		if task, ok := m.selectedTask(); ok {
			m.Store.ToggleCompletion(task.ID)
			m = m.clampCursor()
			if task.IsCompleted {
				m.Status = StatusBar{Text: fmt.Sprintf("quest reopened: %s", task.Title)}
			} else {
				m.Status = StatusBar{Text: fmt.Sprintf("quest complete: %s", task.Title)}
			}
		}
		return m, nil
	case "d":
		if task, ok := m.selectedTask(); ok {
			m.Store.Delete(task.ID)
			m = m.clampCursor()
			m.Status = StatusBar{Text: fmt.Sprintf("quest deleted: %s", task.Title)}
		}
		return m, nil
	case "s":
		m.Sort[m.CurrentView] = m.Sort[m.CurrentView].Next()
		m.Cursor = 0
		m.Status = StatusBar{Text: fmt.Sprintf("sorting by %s", m.Sort[m.CurrentView])}
		return m, nil
	}
	return m, nil
}

func (m Model) clampCursor() Model {
	count := len(m.visibleTasks())
	if m.Cursor >= count {
		m.Cursor = count - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
	return m
}

func (m Model) handleSettingsKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "S":
		m.Settings.SoundEnabled = !m.Settings.SoundEnabled
		m.Status = StatusBar{Text: fmt.Sprintf("sound effects: %s", onOff(m.Settings.SoundEnabled))}
	case "n":
		m.Settings.NotificationsAllowed = !m.Settings.NotificationsAllowed
		m.Status = StatusBar{Text: fmt.Sprintf("notifications: %s", onOff(m.Settings.NotificationsAllowed))}
	case "D":
		m.Settings.ConfirmingReset = true
		m.Status = StatusBar{Text: "delete ALL quests? press y to confirm, n to cancel", IsError: true}
	}
	return m
}

func (m Model) handleResetConfirmKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "y":
		m.Store.ResetAll()
		m.Settings.ConfirmingReset = false
		m.Cursor = 0
		m.Status = StatusBar{Text: "all quest data deleted"}
	case "n", "esc":
		m.Settings.ConfirmingReset = false
		m.Status = StatusBar{Text: "reset cancelled"}
	}
	return m
}

func questItems(tasks []model.Task) []views.QuestItemData {
	out := make([]views.QuestItemData, 0, len(tasks))
	for _, t := range tasks {
		item := views.QuestItemData{
			ID:        t.ID,
			Title:     t.Title,
			Quadrant:  string(t.Quadrant()),
			Due:       t.Deadline.Format("2006-01-02"),
			Completed: t.IsCompleted,
		}
		if t.CompletedAt != nil {
			item.DoneAt = t.CompletedAt.Format("2006-01-02 15:04")
		}
		out = append(out, item)
	}
	return out
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
