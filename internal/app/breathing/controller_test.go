package breathing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PabloGalante/mindmesh/internal/app/breathing"
	"github.com/PabloGalante/mindmesh/internal/domain"
)

func technique(t *testing.T, id string) domain.Technique {
	t.Helper()
	tech, err := breathing.Lookup(id)
	require.NoError(t, err)
	return tech
}

func tickN(c *breathing.Controller, n int) {
	for i := 0; i < n; i++ {
		c.Tick()
	}
}

func TestCatalog(t *testing.T) {
	techs := breathing.Techniques()
	require.Len(t, techs, 3)

	box := technique(t, "box")
	assert.Equal(t, 16, box.CycleLength())

	relaxing := technique(t, "relaxing")
	assert.Zero(t, relaxing.Hold)
	assert.Zero(t, relaxing.HoldAfterExhale)

	_, err := breathing.Lookup("wim-hof")
	assert.ErrorIs(t, err, breathing.ErrUnknownTechnique)
}

func TestController_NewIsStoppedAtInhale(t *testing.T) {
	c := breathing.NewController(technique(t, "box"))
	assert.Equal(t, domain.CadenceState{Phase: domain.PhaseInhale}, c.State())
}

func TestController_BoxFullCycle(t *testing.T) {
	c := breathing.NewController(technique(t, "box"))
	c.Start()

	tickN(c, 3)
	assert.Equal(t, domain.PhaseInhale, c.State().Phase)
	assert.Equal(t, 3, c.State().Counter)

	assert.True(t, c.Tick())
	assert.Equal(t, domain.PhaseHold, c.State().Phase)
	assert.Equal(t, 0, c.State().Counter)

	tickN(c, 4)
	assert.Equal(t, domain.PhaseExhale, c.State().Phase)
	tickN(c, 4)
	assert.Equal(t, domain.PhaseHoldAfterExhale, c.State().Phase)
	tickN(c, 4)

	assert.Equal(t, domain.CadenceState{Phase: domain.PhaseInhale, Counter: 0, Running: true}, c.State())
}

func TestController_RelaxingSkipsHolds(t *testing.T) {
	c := breathing.NewController(technique(t, "relaxing"))
	c.Start()

	tickN(c, 4)
	assert.Equal(t, domain.PhaseExhale, c.State().Phase)
	assert.Equal(t, 0, c.State().Counter)

	tickN(c, 6)
	assert.Equal(t, domain.PhaseInhale, c.State().Phase)
	assert.Equal(t, 0, c.State().Counter)
}

func TestController_478SkipsHoldAfterExhale(t *testing.T) {
	c := breathing.NewController(technique(t, "4-7-8"))
	c.Start()

	tickN(c, 4)
	assert.Equal(t, domain.PhaseHold, c.State().Phase)
	tickN(c, 7)
	assert.Equal(t, domain.PhaseExhale, c.State().Phase)
	tickN(c, 8)
	assert.Equal(t, domain.PhaseInhale, c.State().Phase)
}

func TestController_TickWhileStoppedIsNoop(t *testing.T) {
	c := breathing.NewController(technique(t, "box"))

	for i := 0; i < 10; i++ {
		assert.False(t, c.Tick())
	}
	assert.Equal(t, domain.CadenceState{Phase: domain.PhaseInhale}, c.State())
}

func TestController_StopStartResumes(t *testing.T) {
	c := breathing.NewController(technique(t, "box"))
	c.Start()
	tickN(c, 6) // hold, counter 2

	c.Stop()
	tickN(c, 5)
	assert.Equal(t, domain.CadenceState{Phase: domain.PhaseHold, Counter: 2}, c.State())

	c.Toggle()
	assert.True(t, c.Running())
	c.Tick()
	assert.Equal(t, domain.PhaseHold, c.State().Phase)
	assert.Equal(t, 3, c.State().Counter)
}

func TestController_SelectResets(t *testing.T) {
	c := breathing.NewController(technique(t, "box"))
	c.Start()
	tickN(c, 9)

	c.Select(technique(t, "relaxing"))

	assert.Equal(t, domain.CadenceState{Phase: domain.PhaseInhale}, c.State())
	assert.Equal(t, "relaxing", c.Technique().ID)
}

func TestController_NeverDwellsInUndefinedPhase(t *testing.T) {
	for _, tech := range breathing.Techniques() {
		c := breathing.NewController(tech)
		c.Start()
		for i := 0; i < 500; i++ {
			c.Tick()
			s := c.State()
			d := tech.Duration(s.Phase)
			require.Positive(t, d, "%s dwelt in %s", tech.ID, s.Phase)
			require.Less(t, s.Counter, d)
		}
	}
}

func TestController_InstructionAndRemaining(t *testing.T) {
	c := breathing.NewController(technique(t, "4-7-8"))
	assert.Equal(t, "Breathe In", c.Instruction())
	assert.Equal(t, 4, c.Remaining())

	c.Start()
	tickN(c, 5)
	assert.Equal(t, "Hold", c.Instruction())
	assert.Equal(t, 6, c.Remaining())

	tickN(c, 6)
	assert.Equal(t, "Breathe Out", c.Instruction())
	assert.Equal(t, "Hold", breathing.Instruction(domain.PhaseHoldAfterExhale))
}
