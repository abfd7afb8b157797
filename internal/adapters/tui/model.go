package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/glamour"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/PabloGalante/mindmesh/internal/app/assessment"
	"github.com/PabloGalante/mindmesh/internal/app/breathing"
	"github.com/PabloGalante/mindmesh/internal/app/conversation"
	"github.com/PabloGalante/mindmesh/internal/app/music"
	"github.com/PabloGalante/mindmesh/internal/app/onboarding"
	"github.com/PabloGalante/mindmesh/internal/domain"
	"github.com/PabloGalante/mindmesh/internal/observability"
)

// Screen is the page currently shown.
type Screen int

const (
	ScreenHome Screen = iota
	ScreenOnboarding
	ScreenChat
	ScreenBreathing
	ScreenCheckin
	ScreenMusic
)

type menuItem struct {
	label  string
	screen Screen
}

var menu = []menuItem{
	{"Talk to MindMesh", ScreenOnboarding},
	{"Breathing exercise", ScreenBreathing},
	{"Mental health check-in", ScreenCheckin},
	{"Ambient sounds", ScreenMusic},
}

// Deps are the services the TUI drives.
type Deps struct {
	Chat   *conversation.Service
	Music  *music.Player
	UserID domain.UserID

	// Context is used for chat and audio calls made from the UI.
	Context context.Context
}

// Model is the root bubbletea model for the MindMesh TUI.
type Model struct {
	deps Deps

	screen Screen
	cursor int
	width  int
	height int

	// Onboarding
	flow *onboarding.Flow

	// Chat
	session  *domain.Session
	chatGen  int
	messages []*domain.Message
	pending  string
	waiting  bool
	input    textinput.Model
	viewport viewport.Model
	spinner  spinner.Model
	renderer *glamour.TermRenderer

	// shared by the breathing, check-in and sounds screens
	progress progress.Model

	// Breathing
	breath    *breathing.Controller
	techIndex int
	tickGen   int

	// Ambient sounds
	musicTicking bool

	// Check-in
	checkin *assessment.Checkin

	errorMessage string
}

// New creates a Model on the home screen.
func New(deps Deps) Model {
	if deps.Context == nil {
		deps.Context = context.Background()
	}

	ti := textinput.New()
	ti.Prompt = "│ "
	ti.CharLimit = 2000
	ti.Width = 76

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = SpinnerStyle

	vp := viewport.New(78, 14)

	renderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(76),
	)

	bar := progress.New(
		progress.WithGradient(string(ColorViolet), string(ColorTeal)),
		progress.WithWidth(24),
		progress.WithoutPercentage(),
	)

	techniques := breathing.Techniques()

	return Model{
		deps:     deps,
		width:    80,
		height:   24,
		flow:     onboarding.NewFlow(),
		input:    ti,
		viewport: vp,
		spinner:  sp,
		renderer: renderer,
		progress: bar,
		breath:   breathing.NewController(techniques[0]),
		checkin:  assessment.NewCheckin(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Screen reports the page currently shown.
func (m Model) Screen() Screen { return m.screen }

// startSessionCmd opens a chat session off the UI loop.
func startSessionCmd(ctx context.Context, svc *conversation.Service, gen int, in conversation.StartSessionInput, prompt string) tea.Cmd {
	return func() tea.Msg {
		out, err := svc.StartSession(ctx, in)
		return SessionStartedMsg{Gen: gen, Out: out, Prompt: prompt, Err: err}
	}
}

// sendMessageCmd runs one chat turn off the UI loop.
func sendMessageCmd(ctx context.Context, svc *conversation.Service, gen int, in conversation.SendMessageInput) tea.Cmd {
	return func() tea.Msg {
		out, err := svc.SendMessage(ctx, in)
		return ReplyMsg{Gen: gen, Out: out, Err: err}
	}
}

// breathTickCmd fires once a second while the exercise runs.
func breathTickCmd(gen int) tea.Cmd {
	return tea.Tick(breathing.DefaultInterval, func(time.Time) tea.Msg {
		return BreathTickMsg{Gen: gen}
	})
}

func musicTickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return MusicTickMsg{}
	})
}

// Update processes messages and returns the updated model and any commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case SessionStartedMsg:
		if msg.Gen != m.chatGen {
			return m, nil
		}
		if msg.Err != nil {
			m.waiting = false
			m.errorMessage = msg.Err.Error()
			return m, nil
		}
		m.session = msg.Out.Session
		m.messages = []*domain.Message{msg.Out.Welcome}
		if msg.Prompt == "" {
			m.waiting = false
			m.refreshChat()
			return m, nil
		}
		m.pending = msg.Prompt
		m.refreshChat()
		return m, m.send(msg.Prompt)

	case ReplyMsg:
		if msg.Gen != m.chatGen {
			return m, nil
		}
		m.waiting = false
		m.pending = ""
		if msg.Err != nil {
			m.errorMessage = msg.Err.Error()
			m.refreshChat()
			return m, nil
		}
		m.messages = append(m.messages, msg.Out.UserMessage, msg.Out.AgentMessage)
		m.refreshChat()
		return m, nil

	case BreathTickMsg:
		if msg.Gen != m.tickGen || !m.breath.Running() {
			return m, nil
		}
		m.breath.Tick()
		return m, breathTickCmd(m.tickGen)

	case MusicTickMsg:
		m.musicTicking = false
		if m.deps.Music == nil {
			return m, nil
		}
		if _, err := m.deps.Music.Advance(m.deps.Context); err != nil {
			m.musicError(err)
		}
		if m.screen != ScreenMusic && !m.deps.Music.Playing() {
			return m, nil
		}
		return m, m.musicTicks()

	case spinner.TickMsg:
		if !m.waiting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height

	// header, input and footer take about ten lines
	m.viewport.Width = max(20, width-2)
	m.viewport.Height = max(5, height-10)
	m.input.Width = max(10, width-4)

	if m.renderer != nil {
		if r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(max(20, width-4)),
		); err == nil {
			m.renderer = r
		}
	}
	m.refreshChat()
}

// handleKey dispatches key presses to the current screen.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == KeyCtrlC {
		m.breath.Stop()
		return m, tea.Quit
	}

	switch m.screen {
	case ScreenOnboarding:
		return m.handleOnboardingKey(msg)
	case ScreenChat:
		return m.handleChatKey(msg)
	case ScreenBreathing:
		return m.handleBreathingKey(msg)
	case ScreenCheckin:
		return m.handleCheckinKey(msg)
	case ScreenMusic:
		return m.handleMusicKey(msg)
	default:
		return m.handleHomeKey(msg)
	}
}

func (m Model) handleHomeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case KeyQuit:
		return m, tea.Quit
	case KeyUp, KeyK:
		m.cursor = (m.cursor - 1 + len(menu)) % len(menu)
	case KeyDown, KeyJ, KeyTab:
		m.cursor = (m.cursor + 1) % len(menu)
	case KeyEnter:
		return m.open(menu[m.cursor].screen)
	case "1", "2", "3", "4":
		return m.open(menu[int(key[0]-'1')].screen)
	}
	return m, nil
}

// open switches to screen and prepares its state.
func (m Model) open(screen Screen) (tea.Model, tea.Cmd) {
	m.screen = screen
	m.errorMessage = ""

	switch screen {
	case ScreenOnboarding:
		m.flow = onboarding.NewFlow()
		m.cursor = 0
	case ScreenCheckin:
		m.checkin.Reset()
		m.input.Reset()
		m.input.Placeholder = ""
		return m, m.input.Focus()
	case ScreenMusic:
		return m, m.musicTicks()
	}
	return m, nil
}

func (m Model) home() (tea.Model, tea.Cmd) {
	if m.screen == ScreenChat {
		// drop whatever the chat still has in flight
		m.chatGen++
		m.waiting = false
		m.pending = ""
	}
	m.screen = ScreenHome
	m.cursor = 0
	m.errorMessage = ""
	m.input.Blur()
	return m, nil
}

// ─────────────────────────────────────────────
// Onboarding
// ─────────────────────────────────────────────

func (m Model) optionCount() int {
	switch m.flow.Step() {
	case onboarding.StepSupport:
		return len(onboarding.SupportOptions())
	case onboarding.StepMood:
		return len(onboarding.MoodOptions())
	case onboarding.StepPrompt:
		return len(onboarding.QuickStartPrompts())
	default:
		return 0
	}
}

func (m Model) handleOnboardingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := m.optionCount()

	switch msg.String() {
	case KeyEsc:
		return m.home()
	case KeyUp, KeyK, KeyLeft:
		if n > 0 {
			m.cursor = (m.cursor - 1 + n) % n
		}
	case KeyDown, KeyJ, KeyRight, KeyTab:
		if n > 0 {
			m.cursor = (m.cursor + 1) % n
		}
	case KeyEnter:
		return m.chooseOnboarding()
	}
	return m, nil
}

func (m Model) chooseOnboarding() (tea.Model, tea.Cmd) {
	var err error
	switch m.flow.Step() {
	case onboarding.StepSupport:
		err = m.flow.ChooseSupport(onboarding.SupportOptions()[m.cursor].Style)
	case onboarding.StepMood:
		err = m.flow.ChooseMood(onboarding.MoodOptions()[m.cursor].Mood)
	case onboarding.StepPrompt:
		err = m.flow.ChoosePrompt(onboarding.QuickStartPrompts()[m.cursor])
	case onboarding.StepReady:
		return m.startChat()
	}
	if err != nil {
		m.errorMessage = err.Error()
		return m, nil
	}
	m.cursor = 0
	return m, nil
}

func (m Model) startChat() (tea.Model, tea.Cmd) {
	sel, ok := m.flow.Selection()
	if !ok || m.deps.Chat == nil {
		return m, nil
	}

	m.screen = ScreenChat
	m.chatGen++
	m.session = nil
	m.messages = nil
	m.pending = ""
	m.waiting = true
	m.errorMessage = ""
	m.input.Reset()
	m.input.Placeholder = "Share what's on your mind... (Enter to send, Esc to leave)"
	m.refreshChat()

	observability.LoggerFromContext(m.deps.Context).Info("opening chat from tui",
		"style", sel.Style, "mood", sel.Mood)

	in := conversation.StartSessionInput{
		UserID: m.deps.UserID,
		Style:  sel.Style,
		Mood:   sel.Mood,
		Title:  sel.Prompt,
	}
	return m, tea.Batch(
		m.input.Focus(),
		m.spinner.Tick,
		startSessionCmd(m.deps.Context, m.deps.Chat, m.chatGen, in, sel.Prompt),
	)
}

// ─────────────────────────────────────────────
// Chat
// ─────────────────────────────────────────────

func (m Model) handleChatKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case KeyEsc:
		return m.home()
	case KeyPageUp, KeyPageDown:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	case KeyEnter:
		text := strings.TrimSpace(m.input.Value())
		if text == "" || m.waiting || m.session == nil {
			return m, nil
		}
		m.input.Reset()
		m.pending = text
		m.errorMessage = ""
		m.refreshChat()
		return m, tea.Batch(m.send(text), m.spinner.Tick)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// send marks the model busy and returns the command for one chat turn.
func (m *Model) send(text string) tea.Cmd {
	m.waiting = true
	return sendMessageCmd(m.deps.Context, m.deps.Chat, m.chatGen, conversation.SendMessageInput{
		SessionID: m.session.ID,
		UserID:    m.session.UserID,
		Text:      text,
	})
}

func (m *Model) refreshChat() {
	m.viewport.SetContent(m.renderChat())
	m.viewport.GotoBottom()
}

// ─────────────────────────────────────────────
// Breathing
// ─────────────────────────────────────────────

func (m Model) handleBreathingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case KeyEsc, KeyQuit:
		m.breath.Stop()
		m.tickGen++
		return m.home()
	case KeySpace, KeyEnter:
		m.breath.Toggle()
		m.tickGen++
		if m.breath.Running() {
			return m, breathTickCmd(m.tickGen)
		}
	case KeyTab, KeyRight, KeyDown, KeyJ:
		m.selectTechnique(m.techIndex + 1)
	case KeyLeft, KeyUp, KeyK:
		m.selectTechnique(m.techIndex - 1)
	}
	return m, nil
}

// selectTechnique switches preset, which also stops the exercise.
func (m *Model) selectTechnique(i int) {
	techniques := breathing.Techniques()
	m.techIndex = (i + len(techniques)) % len(techniques)
	m.breath.Select(techniques[m.techIndex])
	m.tickGen++
}

// ─────────────────────────────────────────────
// Check-in
// ─────────────────────────────────────────────

func (m Model) handleCheckinKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.checkin.Done() {
		switch msg.String() {
		case KeyRestart:
			return m.open(ScreenCheckin)
		case KeyEnter, KeyEsc, KeyQuit:
			return m.home()
		}
		return m, nil
	}

	switch msg.String() {
	case KeyEsc:
		return m.home()
	case KeyEnter:
		err := m.checkin.AnswerInput(m.input.Value())
		if err != nil {
			if errors.Is(err, assessment.ErrInvalidAnswer) {
				m.errorMessage = "Please pick one of the options."
				if q, ok := m.checkin.Current(); ok && q.Kind == domain.KindScale {
					m.errorMessage = "Please enter a number from 1 to 10."
				}
			} else {
				m.errorMessage = err.Error()
			}
			return m, nil
		}
		m.errorMessage = ""
		m.input.Reset()
		if m.checkin.Done() {
			m.input.Blur()
			result := m.checkin.Result()
			observability.LoggerFromContext(m.deps.Context).Info("check-in complete",
				"total", result.Total, "tier", result.Tier.String())
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// ─────────────────────────────────────────────
// Ambient sounds
// ─────────────────────────────────────────────

func (m Model) handleMusicKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.deps.Music == nil {
		if k := msg.String(); k == KeyEsc || k == KeyQuit {
			return m.home()
		}
		return m, nil
	}

	var err error
	switch key := msg.String(); key {
	case KeyEsc, KeyQuit:
		return m.home()
	case KeySpace, KeyEnter:
		err = m.deps.Music.Toggle(m.deps.Context)
	case KeyNext, KeyRight, KeyDown, KeyJ:
		err = m.deps.Music.Next(m.deps.Context)
	case KeyPrev, KeyLeft, KeyUp, KeyK:
		err = m.deps.Music.Prev(m.deps.Context)
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		err = m.deps.Music.PlayAt(m.deps.Context, int(key[0]-'1'))
	default:
		return m, nil
	}

	m.errorMessage = ""
	if err != nil {
		m.musicError(err)
	}
	return m, m.musicTicks()
}

// musicTicks starts the refresh loop unless one is already pending. The loop
// runs while the sounds screen is open or a track plays, so playback moves
// on to the next track from any screen.
func (m *Model) musicTicks() tea.Cmd {
	if m.musicTicking {
		return nil
	}
	m.musicTicking = true
	return musicTickCmd()
}

func (m *Model) musicError(err error) {
	observability.LoggerFromContext(m.deps.Context).Error("audio failed", "error", err)
	m.errorMessage = err.Error()
}
