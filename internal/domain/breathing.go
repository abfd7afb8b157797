package domain

// Phase is one stage of a breathing cycle.
type Phase string

const (
	PhaseInhale          Phase = "inhale"
	PhaseHold            Phase = "hold"
	PhaseExhale          Phase = "exhale"
	PhaseHoldAfterExhale Phase = "holdAfterExhale"
)

// Technique is a named breathing configuration. Durations are whole seconds;
// zero Hold or HoldAfterExhale means the phase is not part of the cycle.
type Technique struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	Inhale          int    `json:"inhale"`
	Hold            int    `json:"hold,omitempty"`
	Exhale          int    `json:"exhale"`
	HoldAfterExhale int    `json:"holdAfterExhale,omitempty"`
}

// Duration returns the configured length of p, or 0 when p is absent.
func (t Technique) Duration(p Phase) int {
	switch p {
	case PhaseInhale:
		return t.Inhale
	case PhaseHold:
		return t.Hold
	case PhaseExhale:
		return t.Exhale
	case PhaseHoldAfterExhale:
		return t.HoldAfterExhale
	default:
		return 0
	}
}

// CycleLength is the number of seconds in one full cycle.
func (t Technique) CycleLength() int {
	return t.Inhale + t.Hold + t.Exhale + t.HoldAfterExhale
}

// CadenceState is the run-time state of a breathing exercise.
type CadenceState struct {
	Phase   Phase
	Counter int
	Running bool
}
