// Package welcome is the starter screen: a header, three getting-started
// steps and a floating button that raises an acknowledgement.
package welcome

import (
	"runtime"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"tableflip.dev/tasklist/pkg/tui/theme"
)

const (
	waveFrames   = 8
	waveInterval = 150 * time.Millisecond

	ackMessage = "Button Pressed!"
)

type waveMsg struct{}

// Model is the Bubble Tea model for the welcome screen.
type Model struct {
	theme  theme.Theme
	devKey string

	wave int
	ack  bool

	width  int
	height int
}

// New creates the screen for the running platform.
func New() Model {
	return Model{
		theme:  theme.Default(),
		devKey: DevToolsKey(runtime.GOOS),
	}
}

// DevToolsKey names the key that opens developer tools on goos.
func DevToolsKey(goos string) string {
	switch goos {
	case "darwin", "ios":
		return "cmd + d"
	case "android":
		return "cmd + m"
	default:
		return "F12"
	}
}

func waveTick() tea.Cmd {
	return tea.Tick(waveInterval, func(time.Time) tea.Msg { return waveMsg{} })
}

// Init starts the hand waving.
func (m Model) Init() tea.Cmd {
	return waveTick()
}

// Update handles messages and keybindings.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case waveMsg:
		m.wave++
		if m.wave < waveFrames {
			return m, waveTick()
		}
	case tea.KeyMsg:
		k := msg.String()
		if k == "ctrl+c" {
			return m, tea.Quit
		}
		// The acknowledgement swallows every other key until dismissed.
		if m.ack {
			if k == "enter" || k == "esc" || k == " " {
				m.ack = false
			}
			return m, nil
		}
		switch k {
		case "+", "enter":
			m.ack = true
		case "q", "esc":
			return m, tea.Quit
		}
	}
	return m, nil
}

// Acknowledging reports whether the button's acknowledgement is showing.
func (m Model) Acknowledging() bool { return m.ack }

// View renders the screen, or the acknowledgement on top of it.
func (m Model) View() string {
	if m.ack {
		return m.renderAck()
	}

	h := m.theme.Header
	title := gradient("Welcome!", "#6200ee", "#A1CEDC") + " " + m.hand()

	steps := []string{
		h.Subtitle.Render("Step 1: Try it"),
		h.Text.Render("Edit ") + h.Strong.Render("pkg/tui/screens/welcome/model.go") + h.Text.Render(" to see changes."),
		h.Text.Render("Press ") + h.Strong.Render(m.devKey) + h.Text.Render(" to open developer tools."),
		"",
		h.Subtitle.Render("Step 2: Explore"),
		h.Text.Render("Run tasklist ui to try the to-do list included in this starter app."),
		"",
		h.Subtitle.Render("Step 3: Get a fresh start"),
	}

	band := h.Band
	if m.width > 0 {
		band = band.Width(m.width)
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		band.Render(title),
		"",
		lipgloss.NewStyle().Padding(0, 2).Render(strings.Join(steps, "\n")),
	)

	button := m.theme.Button.Render("+")
	if m.width <= 0 || m.height <= 0 {
		return body + "\n\n" + button
	}

	gap := m.height - lipgloss.Height(body) - lipgloss.Height(button)
	if gap < 1 {
		gap = 1
	}
	return body + strings.Repeat("\n", gap) + lipgloss.PlaceHorizontal(m.width, lipgloss.Right, button)
}

func (m Model) hand() string {
	if m.wave < waveFrames && m.wave%2 == 1 {
		return " 👋"
	}
	return "👋"
}

func (m Model) renderAck() string {
	box := m.theme.Modal.Frame.Render(lipgloss.JoinVertical(lipgloss.Center,
		m.theme.Modal.Title.Render(ackMessage),
		"",
		m.theme.Modal.Key.Render("[ OK ]"),
	))
	if m.width <= 0 || m.height <= 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// gradient colors each rune of s along a blend from one hex color to another.
func gradient(s, from, to string) string {
	a, errA := colorful.Hex(from)
	b, errB := colorful.Hex(to)
	runes := []rune(s)
	if errA != nil || errB != nil || len(runes) < 2 {
		return lipgloss.NewStyle().Bold(true).Render(s)
	}
	var out strings.Builder
	for i, r := range runes {
		c := a.BlendLuv(b, float64(i)/float64(len(runes)-1)).Clamped()
		out.WriteString(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.Hex())).Render(string(r)))
	}
	return out.String()
}
