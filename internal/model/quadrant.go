package model

// Quadrant is one Eisenhower-matrix category, derived from a task's urgent
// and important flags. It is never stored.
type Quadrant string

const (
	QuadrantDoNow    Quadrant = "DoNow"
	QuadrantPlan     Quadrant = "Plan"
	QuadrantDelegate Quadrant = "Delegate"
	QuadrantLater    Quadrant = "Later"
)

// Quadrants is the fixed enumeration order used for presentation and for
// persona tie-breaking.
var Quadrants = [4]Quadrant{QuadrantDoNow, QuadrantPlan, QuadrantDelegate, QuadrantLater}

// QuadrantOf maps the urgent/important pair to its matrix category:
// urgent+important is DoNow, important alone is Plan, urgent alone is
// Delegate, neither is Later.
func QuadrantOf(urgent, important bool) Quadrant {
	switch {
	case urgent && important:
		return QuadrantDoNow
	case important:
		return QuadrantPlan
	case urgent:
		return QuadrantDelegate
	default:
		return QuadrantLater
	}
}

func (q Quadrant) IsValid() bool {
	switch q {
	case QuadrantDoNow, QuadrantPlan, QuadrantDelegate, QuadrantLater:
		return true
	default:
		return false
	}
}
