package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/PabloGalante/mindmesh/internal/app/assessment"
	"github.com/PabloGalante/mindmesh/internal/app/breathing"
	"github.com/PabloGalante/mindmesh/internal/app/onboarding"
	"github.com/PabloGalante/mindmesh/internal/domain"
)

// View renders the current screen.
func (m Model) View() string {
	var body, keys string

	switch m.screen {
	case ScreenOnboarding:
		body, keys = m.viewOnboarding(), "↑/↓ choose • enter select • esc back"
	case ScreenChat:
		body, keys = m.viewChat(), "enter send • pgup/pgdown scroll • esc leave"
	case ScreenBreathing:
		body, keys = m.viewBreathing(), "space start/pause • tab technique • esc back"
	case ScreenCheckin:
		body, keys = m.viewCheckin(), "enter answer • esc back"
		if m.checkin.Done() {
			keys = "r retake • enter done"
		}
	case ScreenMusic:
		body, keys = m.viewMusic(), "space play/pause • n next • p previous • 1-5 pick • esc back"
	default:
		body, keys = m.viewHome(), "↑/↓ move • enter open • q quit"
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render("🧠 MindMesh"))
	b.WriteString(DimStyle.Render("  your mental wellness companion"))
	b.WriteString("\n\n")
	b.WriteString(body)
	b.WriteString("\n")
	if m.errorMessage != "" {
		b.WriteString(ErrorStyle.Render(m.errorMessage))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(footer(keys))
	return b.String()
}

func footer(keys string) string {
	parts := strings.Split(keys, " • ")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		key, desc, _ := strings.Cut(p, " ")
		out = append(out, FooterKeyStyle.Render(key)+" "+FooterDescStyle.Render(desc))
	}
	return strings.Join(out, DimStyle.Render("  "))
}

func choice(selected bool, label string) string {
	if selected {
		return SelectedStyle.Render("› " + label)
	}
	return "  " + label
}

func (m Model) viewHome() string {
	var b strings.Builder
	b.WriteString(SubtitleStyle.Render("What would you like to do?"))
	b.WriteString("\n\n")
	for i, item := range menu {
		b.WriteString(choice(i == m.cursor, fmt.Sprintf("%d. %s", i+1, item.label)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(DimStyle.Render("🔒 " + onboarding.PrivacyNote))
	return b.String()
}

func (m Model) viewOnboarding() string {
	var b strings.Builder

	switch m.flow.Step() {
	case onboarding.StepSupport:
		b.WriteString(SubtitleStyle.Render(onboarding.SupportQuestion) + "\n\n")
		for i, o := range onboarding.SupportOptions() {
			b.WriteString(choice(i == m.cursor, o.Label) + "\n")
		}
	case onboarding.StepMood:
		b.WriteString(SubtitleStyle.Render(onboarding.MoodQuestion) + "\n\n")
		for i, o := range onboarding.MoodOptions() {
			b.WriteString(choice(i == m.cursor, o.Emoji+" "+string(o.Mood)) + "\n")
		}
	case onboarding.StepPrompt:
		b.WriteString(SubtitleStyle.Render(onboarding.PromptQuestion) + "\n\n")
		for i, p := range onboarding.QuickStartPrompts() {
			b.WriteString(choice(i == m.cursor, p) + "\n")
		}
	case onboarding.StepReady:
		b.WriteString(SubtitleStyle.Render(m.flow.ReadyMessage()) + "\n\n")
		b.WriteString(DimStyle.Render(onboarding.PrivacyDetail) + "\n\n")
		b.WriteString(SelectedStyle.Render("Press enter to begin your conversation"))
	}

	b.WriteString("\n")
	b.WriteString(DimStyle.Render("🆘 " + onboarding.CrisisHelp + ": contact your local emergency number or a crisis line."))
	return b.String()
}

func (m Model) viewChat() string {
	var b strings.Builder
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	if m.waiting {
		b.WriteString(m.spinner.View() + DimStyle.Render(" MindMesh is typing..."))
		b.WriteString("\n")
	}
	b.WriteString(m.input.View())
	return b.String()
}

// renderChat is the viewport content: the timeline plus the pending turn.
func (m Model) renderChat() string {
	var b strings.Builder
	for _, msg := range m.messages {
		if msg.Author == domain.RoleUser {
			b.WriteString(UserLabelStyle.Render("You") + "\n")
			b.WriteString(msg.Text + "\n\n")
			continue
		}
		b.WriteString(AgentLabelStyle.Render("MindMesh") + "\n")
		b.WriteString(m.markdown(msg.Text) + "\n")
	}
	if m.pending != "" {
		b.WriteString(UserLabelStyle.Render("You") + "\n")
		b.WriteString(m.pending + "\n")
	}
	return b.String()
}

func (m Model) markdown(text string) string {
	if m.renderer == nil {
		return text + "\n"
	}
	out, err := m.renderer.Render(text)
	if err != nil {
		return text + "\n"
	}
	return strings.Trim(out, "\n") + "\n"
}

func (m Model) viewBreathing() string {
	tech := m.breath.Technique()
	state := m.breath.State()

	var b strings.Builder
	tabs := make([]string, 0, 3)
	for i, t := range breathing.Techniques() {
		if i == m.techIndex {
			tabs = append(tabs, SelectedStyle.Render("["+t.Name+"]"))
		} else {
			tabs = append(tabs, DimStyle.Render(" "+t.Name+" "))
		}
	}
	b.WriteString(strings.Join(tabs, " ") + "\n")
	b.WriteString(DimStyle.Render(tech.Description) + "\n\n")

	b.WriteString(InstructionStyle.Render(m.breath.Instruction()) + "\n\n")
	b.WriteString(CountStyle.Render(fmt.Sprintf("%d", m.breath.Remaining())))
	b.WriteString(DimStyle.Render(fmt.Sprintf("  %s for %ds", state.Phase, tech.Duration(state.Phase))))
	b.WriteString("\n")
	b.WriteString(m.bar(state.Counter, tech.Duration(state.Phase)))
	b.WriteString("\n\n")

	if state.Running {
		b.WriteString(SelectedStyle.Render("● running"))
	} else {
		b.WriteString(DimStyle.Render("○ paused, press space to start"))
	}
	return b.String()
}

// bar renders filled out of total on the shared progress bar.
func (m Model) bar(filled, total int) string {
	if total <= 0 {
		return m.progress.ViewAs(0)
	}
	return m.progress.ViewAs(min(1, float64(filled)/float64(total)))
}

func (m Model) viewCheckin() string {
	var b strings.Builder

	if m.checkin.Done() {
		result := m.checkin.Result()
		b.WriteString(SubtitleStyle.Render("Your check-in result") + "\n\n")
		b.WriteString(PanelStyle.Render(
			TitleStyle.Render(result.Title) + "\n\n" + result.Guidance,
		))
		b.WriteString("\n")
		b.WriteString(DimStyle.Render(fmt.Sprintf("Score %d", result.Total)))
		return b.String()
	}

	answered, total := m.checkin.Progress()
	if answered == 0 {
		b.WriteString(DimStyle.Render(assessment.Intro) + "\n\n")
	}
	b.WriteString(DimStyle.Render(fmt.Sprintf("Question %d of %d", answered+1, total)) + "\n")
	b.WriteString(m.bar(answered, total) + "\n\n")

	q, _ := m.checkin.Current()
	b.WriteString(SubtitleStyle.Render(q.Prompt) + "\n\n")
	switch q.Kind {
	case domain.KindScale:
		b.WriteString(DimStyle.Render("1 = very low, 10 = great") + "\n")
	case domain.KindChoice:
		for i, o := range q.Options {
			b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, o))
		}
	case domain.KindText:
		b.WriteString(DimStyle.Render("Optional, press enter to skip") + "\n")
	}
	b.WriteString("\n")
	b.WriteString(m.input.View())
	return b.String()
}

func (m Model) viewMusic() string {
	player := m.deps.Music
	if player == nil {
		return DimStyle.Render("Ambient sounds are not available.")
	}

	var b strings.Builder
	b.WriteString(SubtitleStyle.Render("Ambient sounds") + "\n\n")
	for i, t := range player.Tracks() {
		label := t.Title
		if i == player.Index() && player.Playing() {
			label += "  ♪"
		}
		b.WriteString(choice(i == player.Index(), label) + "\n")
	}
	b.WriteString("\n")
	if elapsed, total := player.Position(); total > 0 {
		b.WriteString(m.progress.ViewAs(player.Progress() / 100))
	} else {
		// length unknown, a bar would sit at zero
		b.WriteString(DimStyle.Render(clock(elapsed)))
	}
	if player.Playing() {
		b.WriteString(SelectedStyle.Render("  playing"))
	} else {
		b.WriteString(DimStyle.Render("  paused"))
	}
	return b.String()
}

// clock formats d as m:ss.
func clock(d time.Duration) string {
	d = d.Truncate(time.Second)
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}
