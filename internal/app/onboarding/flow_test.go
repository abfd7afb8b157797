package onboarding_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PabloGalante/mindmesh/internal/app/onboarding"
	"github.com/PabloGalante/mindmesh/internal/domain"
)

func TestFlow_HappyPath(t *testing.T) {
	f := onboarding.NewFlow()
	assert.Equal(t, onboarding.StepSupport, f.Step())

	require.NoError(t, f.ChooseSupport(domain.StyleMindful))
	assert.Equal(t, onboarding.StepMood, f.Step())

	require.NoError(t, f.ChooseMood(domain.MoodAnxious))
	assert.Equal(t, onboarding.StepPrompt, f.Step())

	_, ok := f.Selection()
	assert.False(t, ok)

	prompt := onboarding.QuickStartPrompts()[2]
	require.NoError(t, f.ChoosePrompt(prompt))
	assert.Equal(t, onboarding.StepReady, f.Step())

	sel, ok := f.Selection()
	require.True(t, ok)
	assert.Equal(t, onboarding.Selection{
		Style:  domain.StyleMindful,
		Mood:   domain.MoodAnxious,
		Prompt: "Can we do a calming exercise?",
	}, sel)
	assert.Equal(t, "Your space is prepared with mindful support.", f.ReadyMessage())
}

func TestFlow_StepGuards(t *testing.T) {
	f := onboarding.NewFlow()

	assert.ErrorIs(t, f.ChooseMood(domain.MoodDown), onboarding.ErrWrongStep)
	assert.ErrorIs(t, f.ChoosePrompt("hi"), onboarding.ErrWrongStep)
	assert.ErrorIs(t, f.ChooseSupport("pushy"), onboarding.ErrUnknownChoice)
	assert.Equal(t, onboarding.StepSupport, f.Step())

	require.NoError(t, f.ChooseSupport(domain.StyleGentle))
	assert.ErrorIs(t, f.ChooseSupport(domain.StyleGentle), onboarding.ErrWrongStep)
	assert.ErrorIs(t, f.ChooseMood("ecstatic"), onboarding.ErrUnknownChoice)

	require.NoError(t, f.ChooseMood(domain.MoodDown))
	assert.ErrorIs(t, f.ChoosePrompt(""), onboarding.ErrUnknownChoice)
	require.NoError(t, f.ChoosePrompt("my own words"))
}

func TestOptions(t *testing.T) {
	assert.Len(t, onboarding.SupportOptions(), 4)
	assert.Len(t, onboarding.MoodOptions(), 5)
	assert.Len(t, onboarding.QuickStartPrompts(), 4)

	moods := onboarding.MoodOptions()
	moods[0].Emoji = "x"
	assert.Equal(t, "😐", onboarding.MoodOptions()[0].Emoji)
}
