package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/questdo/questdo/internal/projection"
	"github.com/questdo/questdo/internal/views"
)

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		if typed.String() == "ctrl+c" {
			m.Quitting = true
			return m, tea.Quit
		}
		if m.Palette.Active {
			return m.handlePaletteKey(typed)
		}
		if m.Editor.Active {
			return m.handleEditorKey(typed)
		}
		if m.Settings.ConfirmingReset {
			return m.handleResetConfirmKey(typed), nil
		}

		switch typed.String() {
		case "/":
			m.Palette.Active = true
			m.commandInput.SetValue("")
			m.commandInput.Focus()
			m.Status = StatusBar{Text: "command palette active"}
			return m, nil
		case m.Keys.Quests:
			return m.switchView(ViewQuests), nil
		case m.Keys.Matrix:
			return m.switchView(ViewMatrix), nil
		case m.Keys.Done:
			return m.switchView(ViewDone), nil
		case m.Keys.Settings:
			return m.switchView(ViewSettings), nil
		case m.Keys.Help:
			m.HelpVisible = !m.HelpVisible
			return m, nil
		case m.Keys.Quit:
			m.Quitting = true
			return m, tea.Quit
		}
		if m.CurrentView == ViewSettings {
			return m.handleSettingsKey(typed), nil
		}
		return m.handleListKey(typed)
	case SwitchViewMsg:
		if isKnownView(typed.View) {
			m = m.switchView(typed.View)
		}
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	}
	return m, nil
}

func (m Model) View() string {
	leftPane := ""
	rightPane := ""
	switch m.CurrentView {
	case ViewQuests:
		leftPane = m.renderQuestsPanel()
	case ViewMatrix:
		leftPane = m.renderMatrixPanel()
	case ViewDone:
		leftPane = m.renderDonePanel()
	case ViewSettings:
		leftPane = m.renderSettingsPanel()
	}
	rightPane = m.renderSidePanel()

	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	return views.RenderApp(views.AppData{
		Header:     fmt.Sprintf("questdo | screen: %s | sort: %s", m.CurrentView, m.Sort[m.CurrentView]),
		LeftPane:   leftPane,
		RightPane:  rightPane,
		StatusLine: status,
		Footer: fmt.Sprintf("keys: %s quests | %s matrix | %s done | %s settings | / cmd | %s help | %s quit",
			m.Keys.Quests, m.Keys.Matrix, m.Keys.Done, m.Keys.Settings, m.Keys.Help, m.Keys.Quit),
	})
}

func (m Model) switchView(v View) Model {
	m.CurrentView = v
	m.Cursor = 0
	return m
}

func (m Model) renderSidePanel() string {
	if m.Palette.Active {
		return views.RenderCommandPalette(m.commandInput.View())
	}
	if m.Editor.Active {
		return m.renderEditorPanel()
	}
	if m.HelpVisible {
		return views.RenderHelpPanel(views.HelpPanelData{
			CurrentView: string(m.CurrentView),
			HelpView:    m.helpModel.View(helpKeyMap{}),
		})
	}
	if m.CurrentView == ViewSettings {
		return views.RenderPersonaCard(m.Store.Personality().TitleKey, m.Store.Personality().VibeKey)
	}
	if task, ok := m.selectedTask(); ok {
		return views.RenderQuestDetail(views.QuestDetailData{
			ID:        task.ID,
			Title:     task.Title,
			Quadrant:  string(task.Quadrant()),
			Deadline:  task.Deadline.Format("2006-01-02"),
			Completed: task.IsCompleted,
		})
	}
	return "(no selection)"
}

func (m Model) renderQuestsPanel() string {
	tasks := projection.ActiveList(m.Store.Tasks(), m.Sort[ViewQuests])
	return views.RenderQuestsPanel(views.QuestsPanelData{
		Items:      questItems(tasks),
		CursorIdx:  m.Cursor,
		EmptyLabel: "No active quests!",
	})
}

func (m Model) renderMatrixPanel() string {
	groups := projection.MatrixGroups(m.Store.Tasks(), m.Sort[ViewMatrix])
	data := views.MatrixPanelData{CursorIdx: m.Cursor}
	for _, g := range groups {
		data.Groups = append(data.Groups, views.MatrixGroupData{
			Quadrant: string(g.Quadrant),
			Items:    questItems(g.Tasks),
		})
	}
	return views.RenderMatrixPanel(data)
}

func (m Model) renderDonePanel() string {
	tasks := projection.CompletedList(m.Store.Tasks(), m.Sort[ViewDone])
	return views.RenderDonePanel(views.QuestsPanelData{
		Items:      questItems(tasks),
		CursorIdx:  m.Cursor,
		EmptyLabel: "No completed quests yet!",
	})
}

func (m Model) renderSettingsPanel() string {
	return views.RenderSettingsPanel(views.SettingsPanelData{
		SoundEnabled:         m.Settings.SoundEnabled,
		NotificationsAllowed: m.Settings.NotificationsAllowed,
		ConfirmingReset:      m.Settings.ConfirmingReset,
	})
}

func isKnownView(v View) bool {
	switch v {
	case ViewQuests, ViewMatrix, ViewDone, ViewSettings:
		return true
	default:
		return false
	}
}
