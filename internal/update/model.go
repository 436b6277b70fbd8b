package update

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/questdo/questdo/internal/model"
	"github.com/questdo/questdo/internal/store"
)

type View string

const (
	ViewQuests   View = "Quests"
	ViewMatrix   View = "Matrix"
	ViewDone     View = "Done"
	ViewSettings View = "Settings"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Quests   string
	Matrix   string
	Done     string
	Settings string
	Help     string
	Quit     string
}

// editor field focus order: title, deadline days, urgent, important.
const (
	editorFieldTitle = iota
	editorFieldDays
	editorFieldUrgent
	editorFieldImportant
	editorFieldCount
)

type EditorState struct {
	Active    bool
	EditingID string
	Field     int
	Urgent    bool
	Important bool
	Err       string
}

type SettingsState struct {
	SoundEnabled         bool
	NotificationsAllowed bool
	ConfirmingReset      bool
}

type CommandPaletteState struct {
	Active bool
}

type Model struct {
	Store       *store.Store
	CurrentView View
	Sort        map[View]model.SortMode
	Cursor      int
	Editor      EditorState
	Settings    SettingsState
	Palette     CommandPaletteState
	HelpVisible bool
	Status      StatusBar
	Keys        GlobalKeyMap
	Quitting    bool

	titleInput   textinput.Model
	daysInput    textinput.Model
	commandInput textinput.Model
	helpModel    help.Model
}

type SwitchViewMsg struct {
	View View
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

func NewModel(s *store.Store) Model {
	return NewModelWithConfig(s, DefaultRuntimeConfig())
}

func NewModelWithConfig(s *store.Store, cfg RuntimeConfig) Model {
	sort := cfg.DefaultSort
	if !sort.IsValid() {
		sort = model.SortCreatedTime
	}

	title := textinput.New()
	title.Placeholder = "quest title"
	title.CharLimit = 120
	title.Width = 40

	days := textinput.New()
	days.Placeholder = "days until due"
	days.CharLimit = 4
	days.Width = 6

	command := textinput.New()
	command.Placeholder = "add | sort | show | reset"
	command.Width = 40

	m := Model{
		Store:       s,
		CurrentView: ViewQuests,
		Sort: map[View]model.SortMode{
			ViewQuests: sort,
			ViewMatrix: sort,
			ViewDone:   sort,
		},
		Settings: SettingsState{
			SoundEnabled:         cfg.SoundEnabled,
			NotificationsAllowed: cfg.NotificationsAllowed,
		},
		Keys: GlobalKeyMap{
			Quests:   "1",
			Matrix:   "2",
			Done:     "3",
			Settings: "4",
			Help:     "?",
			Quit:     "q",
		},
		titleInput:   title,
		daysInput:    days,
		commandInput: command,
		helpModel:    help.New(),
	}
	return m
}

// helpBindings feeds the bubbles help component.
type helpKeyMap struct{}

func (helpKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("j", "k"), key.WithHelp("j/k", "move")),
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add quest")),
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit quest")),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "toggle done")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "cycle sort")),
		key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "command")),
	}
}

func (k helpKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
