package update

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/questdo/questdo/internal/model"
	"github.com/questdo/questdo/internal/views"
)

// openEditor prepares the quest editor. With a nil task it starts a new
// quest due tomorrow; otherwise it loads the task's fields for editing.
func (m Model) openEditor(task *model.Task) Model {
	m.Editor = EditorState{Active: true, Field: editorFieldTitle}
	m.titleInput.SetValue("")
	m.daysInput.SetValue("1")
	if task != nil {
		m.Editor.EditingID = task.ID
		m.Editor.Urgent = task.IsUrgent
		m.Editor.Important = task.IsImportant
		m.titleInput.SetValue(task.Title)
		m.daysInput.SetValue(strconv.Itoa(daysUntil(task.Deadline, time.Now())))
	}
	m.titleInput.Focus()
	m.daysInput.Blur()
	return m
}

func (m Model) handleEditorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Editor = EditorState{}
		m.titleInput.Blur()
		m.daysInput.Blur()
		m.Status = StatusBar{Text: "editor closed"}
		return m, nil
	case "tab":
		return m.focusEditorField((m.Editor.Field + 1) % editorFieldCount), nil
	case "shift+tab":
		return m.focusEditorField((m.Editor.Field + editorFieldCount - 1) % editorFieldCount), nil
	case "enter":
		return m.submitEditor(), nil
	case " ":
		switch m.Editor.Field {
		case editorFieldUrgent:
			m.Editor.Urgent = !m.Editor.Urgent
			return m, nil
		case editorFieldImportant:
			m.Editor.Important = !m.Editor.Important
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.Editor.Field {
	case editorFieldTitle:
		m.titleInput, cmd = m.titleInput.Update(msg)
	case editorFieldDays:
		m.daysInput, cmd = m.daysInput.Update(msg)
	}
	return m, cmd
}

func (m Model) focusEditorField(field int) Model {
	m.Editor.Field = field
	m.titleInput.Blur()
	m.daysInput.Blur()
	switch field {
	case editorFieldTitle:
		m.titleInput.Focus()
	case editorFieldDays:
		m.daysInput.Focus()
	}
	return m
}

// submitEditor validates input and applies the add or update. Empty titles
// never reach the store; rejecting them is this layer's job.
func (m Model) submitEditor() Model {
	title := strings.TrimSpace(m.titleInput.Value())
	if title == "" {
		m.Editor.Err = "quest title must not be empty"
		return m
	}
	days, err := strconv.Atoi(strings.TrimSpace(m.daysInput.Value()))
	if err != nil {
		m.Editor.Err = "days until due must be a number"
		return m
	}
	deadline := time.Now().AddDate(0, 0, days)

	if m.Editor.EditingID != "" {
		m.Store.Update(m.Editor.EditingID, title, deadline, m.Editor.Urgent, m.Editor.Important)
		m.Status = StatusBar{Text: fmt.Sprintf("quest updated: %s", title)}
	} else {
		m.Store.Add(title, deadline, m.Editor.Urgent, m.Editor.Important)
		m.Status = StatusBar{Text: fmt.Sprintf("quest added: %s", title)}
	}
	m.Editor = EditorState{}
	m.titleInput.Blur()
	m.daysInput.Blur()
	return m.clampCursor()
}

func (m Model) renderEditorPanel() string {
	mode := "new quest"
	if m.Editor.EditingID != "" {
		mode = "edit quest"
	}
	return views.RenderEditorPanel(views.EditorPanelData{
		Mode:       mode,
		TitleView:  m.titleInput.View(),
		DaysView:   m.daysInput.View(),
		Urgent:     m.Editor.Urgent,
		Important:  m.Editor.Important,
		FocusIdx:   m.Editor.Field,
		Quadrant:   string(model.QuadrantOf(m.Editor.Urgent, m.Editor.Important)),
		ErrorText:  m.Editor.Err,
		KeysLegend: "keys: [tab] field [space] toggle [enter] save [esc] cancel",
	})
}

// daysUntil counts whole calendar days from now to the deadline, floored at
// zero for deadlines already past.
func daysUntil(deadline, now time.Time) int {
	y, mo, d := now.Date()
	today := time.Date(y, mo, d, 0, 0, 0, 0, now.Location())
	y, mo, d = deadline.Date()
	due := time.Date(y, mo, d, 0, 0, 0, 0, deadline.Location())
	days := int(due.Sub(today) / (24 * time.Hour))
	if days < 0 {
		return 0
	}
	return days
}
