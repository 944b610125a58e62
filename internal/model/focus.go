package model

// FocusLevel is the user-assigned attention rating of a task.
type FocusLevel string

const (
	FocusLow    FocusLevel = "low"
	FocusMedium FocusLevel = "medium"
	FocusHigh   FocusLevel = "high"
)

// FocusLevels lists the known levels in ascending order.
var FocusLevels = []FocusLevel{FocusLow, FocusMedium, FocusHigh}

// Valid reports whether f is one of the known levels.
func (f FocusLevel) Valid() bool {
	switch f {
	case FocusLow, FocusMedium, FocusHigh:
		return true
	}
	return false
}

// Normalize coerces unknown levels to medium.
func (f FocusLevel) Normalize() FocusLevel {
	if f.Valid() {
		return f
	}
	return FocusMedium
}

// Score maps low/medium/high to 1/2/3. Unknown levels score as medium.
func (f FocusLevel) Score() int {
	switch f.Normalize() {
	case FocusLow:
		return 1
	case FocusHigh:
		return 3
	default:
		return 2
	}
}

// FocusFromAverage maps an average score back to a level: <1.5 low, <2.5 medium, else high.
func FocusFromAverage(avg float64) FocusLevel {
	switch {
	case avg < 1.5:
		return FocusLow
	case avg < 2.5:
		return FocusMedium
	default:
		return FocusHigh
	}
}
