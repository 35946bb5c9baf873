// Package tasklist is the to-do list screen: a list of tasks, an action menu
// for the highlighted task, and an input panel for composing.
package tasklist

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/tasklist/pkg/tasks"
	"tableflip.dev/tasklist/pkg/tui/theme"
)

type mode int

const (
	modeList mode = iota
	modeOptions
	modeInput
)

// Options wire the screen to its controller and hydration source.
type Options struct {
	Controller *tasks.Controller
	// Store is read once by Init. Nil skips hydration.
	Store tasks.Reader
	Key   string
	Log   *log.Logger
}

type hydratedMsg struct{ tasks []string }

// Model is the Bubble Tea model for the task list screen.
type Model struct {
	ctrl  *tasks.Controller
	store tasks.Reader
	key   string
	log   *log.Logger

	keys  keyMap
	help  help.Model
	input textinput.Model
	theme theme.Theme

	highlight int
	hydrated  bool

	width  int
	height int
}

// New creates the screen. The controller is driven only from Update.
func New(o Options) Model {
	ctrl := o.Controller
	if ctrl == nil {
		ctrl = tasks.NewController(tasks.Options{Log: o.Log})
	}

	ti := textinput.New()
	ti.Placeholder = "What needs doing?"
	ti.CharLimit = 0
	ti.Prompt = "> "

	return Model{
		ctrl:     ctrl,
		store:    o.Store,
		key:      o.Key,
		log:      o.Log,
		keys:     defaultKeys(),
		help:     help.New(),
		input:    ti,
		theme:    theme.Default(),
		hydrated: o.Store == nil,
	}
}

// Init reads the stored list off the event loop.
func (m Model) Init() tea.Cmd {
	if m.store == nil {
		return nil
	}
	st, k, logger := m.store, m.key, m.log
	return func() tea.Msg {
		return hydratedMsg{tasks: tasks.Load(context.Background(), st, k, logger)}
	}
}

func (m Model) mode() mode {
	switch {
	case m.ctrl.InputOpen():
		return modeInput
	case m.ctrl.OptionsOpen():
		return modeOptions
	default:
		return modeList
	}
}

// Update handles messages and keybindings.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.input.Width = max(msg.Width-8, 10)
	case hydratedMsg:
		if msg.tasks != nil {
			m.ctrl.Restore(msg.tasks)
		}
		m.hydrated = true
		m.clampHighlight()
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		// Edits before the stored list arrives would overwrite it.
		if !m.hydrated {
			if key.Matches(msg, m.keys.Quit) {
				return m, tea.Quit
			}
			return m, nil
		}
		switch m.mode() {
		case modeInput:
			return m.updateInput(msg)
		case modeOptions:
			return m.updateOptions(msg)
		default:
			return m.updateList(msg)
		}
	}
	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.highlight > 0 {
			m.highlight--
		}
	case key.Matches(msg, m.keys.Down):
		if m.highlight < m.ctrl.Len()-1 {
			m.highlight++
		}
	case key.Matches(msg, m.keys.Options):
		m.ctrl.OpenTaskOptions(m.highlight)
	case key.Matches(msg, m.keys.Add):
		m.ctrl.OpenInput()
		return m, m.focusInput()
	}
	return m, nil
}

func (m Model) updateOptions(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Edit):
		if m.ctrl.EditTask() {
			return m, m.focusInput()
		}
	case key.Matches(msg, m.keys.Delete):
		m.ctrl.DeleteTask()
		m.clampHighlight()
	case key.Matches(msg, m.keys.Close):
		m.ctrl.CloseOptions()
	}
	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		m.ctrl.SetDraft(m.input.Value())
		if m.ctrl.Submit() {
			m.input.Reset()
			m.input.Blur()
			m.highlight = m.ctrl.Len() - 1
		}
		return m, nil
	case key.Matches(msg, m.keys.Cancel):
		m.ctrl.CancelInput()
		m.input.Reset()
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.ctrl.SetDraft(m.input.Value())
	return m, cmd
}

func (m *Model) focusInput() tea.Cmd {
	m.input.SetValue(m.ctrl.Draft())
	m.input.CursorEnd()
	return tea.Batch(m.input.Focus(), textinput.Blink)
}

func (m *Model) clampHighlight() {
	if m.highlight >= m.ctrl.Len() {
		m.highlight = m.ctrl.Len() - 1
	}
	if m.highlight < 0 {
		m.highlight = 0
	}
}

// View renders the list with the menu or input panel beneath it.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.theme.List.Title.Render("Tasks"))
	b.WriteString("\n\n")
	b.WriteString(m.renderRows())

	switch m.mode() {
	case modeOptions:
		b.WriteString("\n\n")
		b.WriteString(m.renderOptions())
	case modeInput:
		b.WriteString("\n\n")
		b.WriteString(m.renderInput())
	}

	b.WriteString("\n\n")
	b.WriteString(m.theme.Footer.Help.Render(m.help.View(m.keys.helpFor(m.mode()))))
	return b.String()
}

func (m Model) renderRows() string {
	if !m.hydrated {
		return m.theme.List.Empty.Render("Loading…")
	}
	list := m.ctrl.Tasks()
	if len(list) == 0 {
		return m.theme.List.Empty.Render("No tasks yet. Press a to add one.")
	}

	digits := len(fmt.Sprint(len(list)))
	rows := make([]string, 0, len(list))
	for i, text := range list {
		marker := "  "
		style := m.theme.List.Row
		if i == m.highlight {
			marker = "› "
			style = m.theme.List.Selected
		}
		index := m.theme.List.Index.Render(fmt.Sprintf("%*d.", digits, i+1))
		prefixWidth := lipgloss.Width(marker) + digits + 2
		rows = append(rows, marker+index+" "+style.Render(m.clip(text, prefixWidth)))
	}
	return strings.Join(rows, "\n")
}

// clip shortens text that would run past the terminal edge.
func (m Model) clip(text string, used int) string {
	if m.width <= 0 {
		return text
	}
	room := m.width - used
	if room < 4 {
		room = 4
	}
	return truncate.StringWithTail(text, uint(room), "…")
}

func (m Model) renderOptions() string {
	i, ok := m.ctrl.Cursor()
	if !ok {
		return ""
	}
	task := m.ctrl.Tasks()[i]
	k := m.theme.Modal.Key.Render
	body := lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Modal.Title.Render("Task Options"),
		m.theme.Modal.Body.Render(m.clip(task, 10)),
		"",
		k("[e]")+" Edit Task  "+k("[d]")+" Delete Task  "+k("[esc]")+" Cancel",
	)
	return m.theme.Modal.Frame.Render(body)
}

func (m Model) renderInput() string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Panel.Title.Render("New Task"),
		m.input.View(),
	)
	return m.theme.Panel.Frame.Render(body)
}
