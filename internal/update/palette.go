package update

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/questdo/questdo/internal/commands"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Palette.Active = false
		m.commandInput.Blur()
		m.Status = StatusBar{}
		return m, nil
	case "enter":
		input := m.commandInput.Value()
		m.Palette.Active = false
		m.commandInput.Blur()
		return m.executeCommand(input), nil
	}
	var cmd tea.Cmd
	m.commandInput, cmd = m.commandInput.Update(msg)
	return m, cmd
}

func (m Model) executeCommand(input string) Model {
	cmd, err := commands.Parse(input)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m
	}
	switch cmd.Type {
	case commands.TypeAdd:
		task := m.Store.Add(cmd.Add.Title, time.Now().AddDate(0, 0, 1), false, false)
		m.Status = StatusBar{Text: fmt.Sprintf("quest added: %s", task.Title)}
	case commands.TypeSort:
		m.Sort[m.CurrentView] = cmd.Sort.Mode
		m.Cursor = 0
		m.Status = StatusBar{Text: fmt.Sprintf("sorting by %s", cmd.Sort.Mode)}
	case commands.TypeShow:
		m = m.switchView(screenView(cmd.Show.Screen))
		m.Status = StatusBar{Text: fmt.Sprintf("showing %s", m.CurrentView)}
	case commands.TypeReset:
		m.Store.ResetAll()
		m.Cursor = 0
		m.Status = StatusBar{Text: "all quest data deleted"}
	}
	return m
}

func screenView(screen string) View {
	switch screen {
	case "matrix":
		return ViewMatrix
	case "done":
		return ViewDone
	case "settings":
		return ViewSettings
	default:
		return ViewQuests
	}
}
