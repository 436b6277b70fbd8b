package model

import "sort"

// Persona is a flavor-text pair computed from the distribution of completed
// tasks across quadrants. Both fields are opaque localization keys; the UI
// layer resolves them to display strings.
type Persona struct {
	TitleKey string
	VibeKey  string
}

// DefaultPersona is returned while no task has been completed yet.
var DefaultPersona = Persona{TitleKey: "TITLE_ELITE_VANGUARD", VibeKey: "VIBE_ELITE_VANGUARD"}

type quadrantPair struct {
	first  Quadrant
	second Quadrant
}

// personaTable covers all 12 ordered (top-1, top-2) quadrant pairs.
var personaTable = map[quadrantPair]Persona{
	{QuadrantDoNow, QuadrantPlan}:     {TitleKey: "TITLE_ELITE_VANGUARD", VibeKey: "VIBE_ELITE_VANGUARD"},
	{QuadrantDoNow, QuadrantDelegate}: {TitleKey: "TITLE_CHAOS_SURFER", VibeKey: "VIBE_CHAOS_SURFER"},
	{QuadrantDoNow, QuadrantLater}:    {TitleKey: "TITLE_DEADLINE_DAREDEVIL", VibeKey: "VIBE_DEADLINE_DAREDEVIL"},

	{QuadrantPlan, QuadrantDoNow}:    {TitleKey: "TITLE_GRANDMASTER", VibeKey: "VIBE_GRANDMASTER"},
	{QuadrantPlan, QuadrantDelegate}: {TitleKey: "TITLE_BENEVOLENT_RULER", VibeKey: "VIBE_BENEVOLENT_RULER"},
	{QuadrantPlan, QuadrantLater}:    {TitleKey: "TITLE_PHILOSOPHER_KING", VibeKey: "VIBE_PHILOSOPHER_KING"},

	{QuadrantDelegate, QuadrantDoNow}: {TitleKey: "TITLE_SPINNING_TOP", VibeKey: "VIBE_SPINNING_TOP"},
	{QuadrantDelegate, QuadrantPlan}:  {TitleKey: "TITLE_SIDE_QUEST_HERO", VibeKey: "VIBE_SIDE_QUEST_HERO"},
	{QuadrantDelegate, QuadrantLater}: {TitleKey: "TITLE_NPC_ENERGY", VibeKey: "VIBE_NPC_ENERGY"},

	{QuadrantLater, QuadrantDoNow}:    {TitleKey: "TITLE_CLUTCH_GAMER", VibeKey: "VIBE_CLUTCH_GAMER"},
	{QuadrantLater, QuadrantPlan}:     {TitleKey: "TITLE_DAYDREAM_BELIEVER", VibeKey: "VIBE_DAYDREAM_BELIEVER"},
	{QuadrantLater, QuadrantDelegate}: {TitleKey: "TITLE_POTATO_MODE", VibeKey: "VIBE_POTATO_MODE"},
}

// tieBreakRank orders quadrants for equal counts: DoNow > Plan > Delegate > Later.
var tieBreakRank = map[Quadrant]int{
	QuadrantDoNow:    4,
	QuadrantPlan:     3,
	QuadrantDelegate: 2,
	QuadrantLater:    1,
}

// PersonaFor ranks the four quadrants by how many of the given tasks were
// completed in each and looks the (top-1, top-2) pair up in the persona
// table. Tasks that are not completed are ignored. The result is
// deterministic: all four buckets always participate, and equal counts fall
// back to the fixed tie-break order.
func PersonaFor(tasks []Task) Persona {
	counts := map[Quadrant]int{
		QuadrantDoNow:    0,
		QuadrantPlan:     0,
		QuadrantDelegate: 0,
		QuadrantLater:    0,
	}
	completed := 0
	for _, t := range tasks {
		if !t.IsCompleted {
			continue
		}
		counts[t.Quadrant()]++
		completed++
	}
	if completed == 0 {
		return DefaultPersona
	}

	ranked := Quadrants
	sort.SliceStable(ranked[:], func(i, j int) bool {
		if counts[ranked[i]] != counts[ranked[j]] {
			return counts[ranked[i]] > counts[ranked[j]]
		}
		return tieBreakRank[ranked[i]] > tieBreakRank[ranked[j]]
	})
	return personaTable[quadrantPair{first: ranked[0], second: ranked[1]}]
}
