package views

import (
	"fmt"
	"strings"
)

type QuestItemData struct {
	ID        string
	Title     string
	Quadrant  string
	Due       string
	DoneAt    string
	Completed bool
}

type QuestsPanelData struct {
	Items      []QuestItemData
	CursorIdx  int
	EmptyLabel string
}

type MatrixGroupData struct {
	Quadrant string
	Items    []QuestItemData
}

type MatrixPanelData struct {
	Groups    []MatrixGroupData
	CursorIdx int
}

type QuestDetailData struct {
	ID        string
	Title     string
	Quadrant  string
	Deadline  string
	Completed bool
}

type SettingsPanelData struct {
	SoundEnabled         bool
	NotificationsAllowed bool
	ConfirmingReset      bool
}

type EditorPanelData struct {
	Mode       string
	TitleView  string
	DaysView   string
	Urgent     bool
	Important  bool
	FocusIdx   int
	Quadrant   string
	ErrorText  string
	KeysLegend string
}

type HelpPanelData struct {
	CurrentView string
	HelpView    string
}

func RenderQuestsPanel(data QuestsPanelData) string {
	var b strings.Builder
	b.WriteString("quests:\n")
	b.WriteString("actions: [j/k]move [a]add [e]edit [x]complete [d]delete [s]sort\n")
	if len(data.Items) == 0 {
		b.WriteString("\n" + data.EmptyLabel)
		return b.String()
	}
	for i, item := range data.Items {
		b.WriteString(renderQuestLine(item, i == data.CursorIdx, false))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func RenderMatrixPanel(data MatrixPanelData) string {
	var b strings.Builder
	b.WriteString("matrix:\n")
	b.WriteString("actions: [j/k]move [a]add [e]edit [x]complete [d]delete [s]sort\n")
	idx := 0
	for _, group := range data.Groups {
		b.WriteString(fmt.Sprintf("\n%s:\n", quadrantLabel(group.Quadrant)))
		if len(group.Items) == 0 {
			b.WriteString("  (empty)\n")
			continue
		}
		for _, item := range group.Items {
			b.WriteString(renderQuestLine(item, idx == data.CursorIdx, false))
			idx++
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func RenderDonePanel(data QuestsPanelData) string {
	var b strings.Builder
	b.WriteString("done:\n")
	b.WriteString("actions: [j/k]move [x]reopen [d]delete [s]sort\n")
	if len(data.Items) == 0 {
		b.WriteString("\n" + data.EmptyLabel)
		return b.String()
	}
	for i, item := range data.Items {
		b.WriteString(renderQuestLine(item, i == data.CursorIdx, true))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func RenderSettingsPanel(data SettingsPanelData) string {
	var b strings.Builder
	b.WriteString("settings:\n")
	b.WriteString(fmt.Sprintf("[S] sound effects: %s\n", checkbox(data.SoundEnabled)))
	b.WriteString(fmt.Sprintf("[n] notifications: %s\n", checkbox(data.NotificationsAllowed)))
	b.WriteString("[D] delete all data\n")
	if data.ConfirmingReset {
		b.WriteString("\ndelete ALL quests? this cannot be undone. [y]es / [n]o")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// RenderPersonaCard shows the player card for the given persona keys. The
// keys are opaque identifiers; this layer maps them to display copy.
func RenderPersonaCard(titleKey, vibeKey string) string {
	md := fmt.Sprintf("# %s\n\n> %s\n", personaCopy(titleKey), personaCopy(vibeKey))
	card := RenderMarkdown(md)
	if card == "" {
		card = personaCopy(titleKey)
	}
	return "player card:\n" + card
}

func RenderQuestDetail(data QuestDetailData) string {
	state := "active"
	if data.Completed {
		state = "completed"
	}
	return fmt.Sprintf("quest:\nid: %s\ntitle: %s\nquadrant: %s\ndue: %s\nstate: %s",
		data.ID, data.Title, quadrantLabel(data.Quadrant), data.Deadline, state)
}

func RenderEditorPanel(data EditorPanelData) string {
	var b strings.Builder
	b.WriteString(data.Mode + ":\n")
	b.WriteString(data.KeysLegend + "\n\n")
	b.WriteString(focusMarker(data.FocusIdx == 0) + "title: " + data.TitleView + "\n")
	b.WriteString(focusMarker(data.FocusIdx == 1) + "due in days: " + data.DaysView + "\n")
	b.WriteString(focusMarker(data.FocusIdx == 2) + "urgent: " + checkbox(data.Urgent) + "\n")
	b.WriteString(focusMarker(data.FocusIdx == 3) + "important: " + checkbox(data.Important) + "\n")
	b.WriteString("quadrant: " + quadrantLabel(data.Quadrant) + "\n")
	if data.ErrorText != "" {
		b.WriteString("error: " + data.ErrorText)
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func RenderCommandPalette(inputView string) string {
	return "command:\n/" + inputView + "\ncommands: add <title> | sort <created|due|name> | show <screen> | reset"
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("help (%s):\n%s", strings.ToLower(data.CurrentView), data.HelpView)
}

func renderQuestLine(item QuestItemData, selected bool, doneLog bool) string {
	cursor := " "
	if selected {
		cursor = cursorStyle.Render(">")
	}
	mark := "[ ]"
	if item.Completed {
		mark = "[x]"
	}
	line := fmt.Sprintf("%s %s %s %s", cursor, mark, quadrantBadge(item.Quadrant), item.Title)
	if doneLog && item.DoneAt != "" {
		line += " done:" + item.DoneAt
	} else {
		line += " due:" + item.Due
	}
	return line + "\n"
}

func quadrantLabel(quadrant string) string {
	switch quadrant {
	case "DoNow":
		return "DO NOW"
	case "Plan":
		return "PLAN"
	case "Delegate":
		return "DELEGATE"
	case "Later":
		return "LATER"
	default:
		return strings.ToUpper(quadrant)
	}
}

func quadrantBadge(quadrant string) string {
	switch quadrant {
	case "DoNow":
		return "[RED]"
	case "Plan":
		return "[BLUE]"
	case "Delegate":
		return "[AMBER]"
	default:
		return "[GRAY]"
	}
}

func checkbox(v bool) string {
	if v {
		return "[x]"
	}
	return "[ ]"
}

func focusMarker(focused bool) string {
	if focused {
		return "> "
	}
	return "  "
}

// personaCopy resolves persona localization keys to English display copy.
func personaCopy(key string) string {
	copyTable := map[string]string{
		"TITLE_ELITE_VANGUARD":     "Elite Vanguard",
		"VIBE_ELITE_VANGUARD":      "You charge the most important battles head on.",
		"TITLE_CHAOS_SURFER":       "Chaos Surfer",
		"VIBE_CHAOS_SURFER":        "Riding every wave the day throws at you.",
		"TITLE_DEADLINE_DAREDEVIL": "Deadline Daredevil",
		"VIBE_DEADLINE_DAREDEVIL":  "Nothing moves you like a clock running out.",
		"TITLE_GRANDMASTER":        "Grandmaster",
		"VIBE_GRANDMASTER":         "Every move planned three turns ahead.",
		"TITLE_BENEVOLENT_RULER":   "Benevolent Ruler",
		"VIBE_BENEVOLENT_RULER":    "Wise plans, gracefully delegated.",
		"TITLE_PHILOSOPHER_KING":   "Philosopher King",
		"VIBE_PHILOSOPHER_KING":    "Deep thought first, leisure close behind.",
		"TITLE_SPINNING_TOP":       "Spinning Top",
		"VIBE_SPINNING_TOP":        "Always in motion, mostly for others.",
		"TITLE_SIDE_QUEST_HERO":    "Side Quest Hero",
		"VIBE_SIDE_QUEST_HERO":     "The main quest can wait; someone needs help.",
		"TITLE_NPC_ENERGY":         "NPC Energy",
		"VIBE_NPC_ENERGY":          "Busy with everyone's errands but your own.",
		"TITLE_CLUTCH_GAMER":       "Clutch Gamer",
		"VIBE_CLUTCH_GAMER":        "Idle until the boss fight, then unstoppable.",
		"TITLE_DAYDREAM_BELIEVER":  "Daydream Believer",
		"VIBE_DAYDREAM_BELIEVER":   "Grand plans, viewed comfortably from the couch.",
		"TITLE_POTATO_MODE":        "Potato Mode",
		"VIBE_POTATO_MODE":         "Maximum comfort, minimum urgency.",
	}
	if text, ok := copyTable[key]; ok {
		return text
	}
	return key
}
