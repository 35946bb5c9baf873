package welcome

import (
	"regexp"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

var ansi = regexp.MustCompile(`\x1b\[[0-9;?]*[A-Za-z]`)

func stripANSI(s string) string {
	return ansi.ReplaceAllString(s, "")
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func sized() Model {
	next, _ := New().Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	return next.(Model)
}

func TestViewShowsTemplate(t *testing.T) {
	view := stripANSI(sized().View())
	for _, want := range []string{"Welcome!", "Step 1: Try it", "Step 2: Explore", "Step 3: Get a fresh start", "+"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view; view=%q", want, view)
		}
	}
	if strings.Contains(view, ackMessage) {
		t.Fatalf("acknowledgement should not show before the button is pressed")
	}
}

func TestButtonShowsBlockingAcknowledgement(t *testing.T) {
	m := sized()

	next, _ := m.Update(key("+"))
	m = next.(Model)
	if !m.Acknowledging() {
		t.Fatalf("expected acknowledgement after +")
	}
	if view := stripANSI(m.View()); !strings.Contains(view, ackMessage) {
		t.Fatalf("expected %q in view; view=%q", ackMessage, view)
	}

	// Other keys, including quit, are swallowed while it shows.
	for _, k := range []string{"q", "+", "x"} {
		next, cmd := m.Update(key(k))
		m = next.(Model)
		if cmd != nil {
			t.Fatalf("key %q should be ignored while acknowledging", k)
		}
		if !m.Acknowledging() {
			t.Fatalf("key %q dismissed the acknowledgement", k)
		}
	}

	next, _ = m.Update(key("enter"))
	m = next.(Model)
	if m.Acknowledging() {
		t.Fatalf("expected enter to dismiss")
	}
}

func TestQuit(t *testing.T) {
	_, cmd := sized().Update(key("q"))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestWaveStops(t *testing.T) {
	m := sized()
	var cmd tea.Cmd
	for i := 0; i < waveFrames; i++ {
		var next tea.Model
		next, cmd = m.Update(waveMsg{})
		m = next.(Model)
	}
	if cmd != nil {
		t.Fatalf("expected waving to stop after %d frames", waveFrames)
	}
}

func TestDevToolsKey(t *testing.T) {
	cases := map[string]string{
		"darwin":  "cmd + d",
		"android": "cmd + m",
		"linux":   "F12",
		"windows": "F12",
	}
	for goos, want := range cases {
		if got := DevToolsKey(goos); got != want {
			t.Errorf("DevToolsKey(%q) = %q, want %q", goos, got, want)
		}
	}
}
