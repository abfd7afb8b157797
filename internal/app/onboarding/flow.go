package onboarding

import (
	"errors"
	"fmt"
	"slices"

	"github.com/PabloGalante/mindmesh/internal/domain"
)

// Step is a screen of the landing flow.
type Step string

const (
	StepSupport Step = "support"
	StepMood    Step = "mood"
	StepPrompt  Step = "prompt"
	StepReady   Step = "ready"
)

var (
	ErrWrongStep     = errors.New("choice not allowed on this step")
	ErrUnknownChoice = errors.New("unknown choice")
)

const (
	SupportQuestion = "How would you like MindMesh to support you today?"
	MoodQuestion    = "How are you feeling right now?"
	PromptQuestion  = "What would you like to talk about?"

	PrivacyNote   = "Your chat is private and secure."
	PrivacyDetail = "We never store identifiable data or share your conversations. " +
		"All chats are encrypted and automatically deleted after your session ends."
	CrisisHelp = "I need urgent support"
)

// SupportOption pairs a style with its label.
type SupportOption struct {
	Style domain.SupportStyle
	Label string
}

var supportOptions = []SupportOption{
	{domain.StyleGentle, "🌿 Gentle Listener"},
	{domain.StyleMotivational, "💪 Motivational Boost"},
	{domain.StyleMindful, "🧘 Calm + Mindfulness"},
	{domain.StyleReflective, "🤔 Help Me Reflect"},
}

// MoodOption pairs a mood with its emoji.
type MoodOption struct {
	Mood  domain.Mood
	Emoji string
}

var moodOptions = []MoodOption{
	{domain.MoodNeutral, "😐"},
	{domain.MoodDown, "😢"},
	{domain.MoodAnxious, "😟"},
	{domain.MoodOkay, "🙂"},
	{domain.MoodGrateful, "😃"},
}

var quickStartPrompts = []string{
	"I've been feeling really anxious lately.",
	"I don't know what's wrong, just off.",
	"Can we do a calming exercise?",
	"I had a tough day.",
}

func SupportOptions() []SupportOption { return slices.Clone(supportOptions) }
func MoodOptions() []MoodOption       { return slices.Clone(moodOptions) }
func QuickStartPrompts() []string     { return slices.Clone(quickStartPrompts) }

// Flow is the landing sequence: support style, then mood, then an opening
// prompt. Each choice is only accepted on its own step.
type Flow struct {
	step   Step
	style  domain.SupportStyle
	mood   domain.Mood
	prompt string
}

func NewFlow() *Flow {
	return &Flow{step: StepSupport}
}

func (f *Flow) Step() Step { return f.step }

func (f *Flow) ChooseSupport(style domain.SupportStyle) error {
	if f.step != StepSupport {
		return fmt.Errorf("%w: support on %s", ErrWrongStep, f.step)
	}
	if !slices.ContainsFunc(supportOptions, func(o SupportOption) bool { return o.Style == style }) {
		return fmt.Errorf("%w: support style %q", ErrUnknownChoice, style)
	}
	f.style = style
	f.step = StepMood
	return nil
}

func (f *Flow) ChooseMood(mood domain.Mood) error {
	if f.step != StepMood {
		return fmt.Errorf("%w: mood on %s", ErrWrongStep, f.step)
	}
	if !slices.ContainsFunc(moodOptions, func(o MoodOption) bool { return o.Mood == mood }) {
		return fmt.Errorf("%w: mood %q", ErrUnknownChoice, mood)
	}
	f.mood = mood
	f.step = StepPrompt
	return nil
}

// ChoosePrompt takes one of the quick-start prompts, or any non-empty text.
func (f *Flow) ChoosePrompt(prompt string) error {
	if f.step != StepPrompt {
		return fmt.Errorf("%w: prompt on %s", ErrWrongStep, f.step)
	}
	if prompt == "" {
		return fmt.Errorf("%w: empty prompt", ErrUnknownChoice)
	}
	f.prompt = prompt
	f.step = StepReady
	return nil
}

// Selection is what the flow collected, ready to open a chat with.
type Selection struct {
	Style  domain.SupportStyle
	Mood   domain.Mood
	Prompt string
}

// Selection returns the choices so far. ok is false before StepReady.
func (f *Flow) Selection() (Selection, bool) {
	return Selection{Style: f.style, Mood: f.mood, Prompt: f.prompt}, f.step == StepReady
}

// ReadyMessage is shown on the last step.
func (f *Flow) ReadyMessage() string {
	return fmt.Sprintf("Your space is prepared with %s support.", styleWord(f.style))
}

func styleWord(s domain.SupportStyle) string {
	switch s {
	case domain.StyleGentle, domain.StyleMotivational, domain.StyleMindful:
		return string(s)
	default:
		return string(domain.StyleReflective)
	}
}
