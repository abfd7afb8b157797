package breathing

import "github.com/PabloGalante/mindmesh/internal/domain"

// cycle is the fixed phase order.
var cycle = []domain.Phase{
	domain.PhaseInhale,
	domain.PhaseHold,
	domain.PhaseExhale,
	domain.PhaseHoldAfterExhale,
}

// Controller advances a breathing technique through its phases. It does no
// timing of its own: whoever owns the clock calls Tick once per second.
//
// A Controller is not safe for concurrent use.
type Controller struct {
	technique domain.Technique
	state     domain.CadenceState
}

// NewController returns a stopped controller at the start of an inhale.
func NewController(t domain.Technique) *Controller {
	c := &Controller{}
	c.Select(t)
	return c
}

// Select switches to t and resets to a stopped inhale.
func (c *Controller) Select(t domain.Technique) {
	c.technique = t
	c.state = domain.CadenceState{Phase: domain.PhaseInhale}
}

// Start resumes from the current phase and counter.
func (c *Controller) Start() { c.state.Running = true }

// Stop pauses without resetting phase or counter.
func (c *Controller) Stop() { c.state.Running = false }

func (c *Controller) Toggle() { c.state.Running = !c.state.Running }

// Tick consumes one second. It reports whether the phase changed. While
// stopped it does nothing.
func (c *Controller) Tick() bool {
	if !c.state.Running {
		return false
	}

	c.state.Counter++
	if c.state.Counter < c.technique.Duration(c.state.Phase) {
		return false
	}

	c.state.Counter = 0
	c.state.Phase = c.next(c.state.Phase)
	return true
}

// next returns the phase after p, skipping phases without a duration.
// Inhale and exhale always have one, so the search terminates.
func (c *Controller) next(p domain.Phase) domain.Phase {
	i := indexOf(p)
	for step := 1; step <= len(cycle); step++ {
		candidate := cycle[(i+step)%len(cycle)]
		if c.technique.Duration(candidate) > 0 {
			return candidate
		}
	}
	return domain.PhaseInhale
}

func (c *Controller) State() domain.CadenceState { return c.state }

func (c *Controller) Technique() domain.Technique { return c.technique }

func (c *Controller) Running() bool { return c.state.Running }

// Remaining is the number of seconds left in the current phase.
func (c *Controller) Remaining() int {
	return c.technique.Duration(c.state.Phase) - c.state.Counter
}

// Instruction is the cue shown for the current phase.
func (c *Controller) Instruction() string {
	return Instruction(c.state.Phase)
}

// Instruction returns the cue for p.
func Instruction(p domain.Phase) string {
	switch p {
	case domain.PhaseInhale:
		return "Breathe In"
	case domain.PhaseExhale:
		return "Breathe Out"
	default:
		return "Hold"
	}
}

func indexOf(p domain.Phase) int {
	for i, c := range cycle {
		if c == p {
			return i
		}
	}
	return 0
}
