package theme

import "github.com/charmbracelet/lipgloss"

// Accent is the floating button color.
const Accent = "#6200ee"

// Theme centralizes Lip Gloss styles for both screens.
type Theme struct {
	Footer FooterTheme
	List   ListTheme
	Panel  PanelTheme
	Modal  ModalTheme
	Header HeaderTheme
	Button lipgloss.Style
}

// FooterTheme groups styles used by the bottom help line.
type FooterTheme struct {
	Help lipgloss.Style
}

// ListTheme styles task rows.
type ListTheme struct {
	Title    lipgloss.Style
	Row      lipgloss.Style
	Selected lipgloss.Style
	Index    lipgloss.Style
	Empty    lipgloss.Style
}

// PanelTheme styles the framed input panel.
type PanelTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
}

// ModalTheme styles the action menu and the acknowledgement dialog.
type ModalTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
	Key   lipgloss.Style
}

// HeaderTheme styles the welcome screen's header band and steps.
type HeaderTheme struct {
	Band     lipgloss.Style
	Subtitle lipgloss.Style
	Strong   lipgloss.Style
	Text     lipgloss.Style
}

// Default returns the built-in theme.
func Default() Theme {
	return Theme{
		Footer: FooterTheme{
			Help: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		},
		List: ListTheme{
			Title:    lipgloss.NewStyle().Bold(true).Underline(true),
			Row:      lipgloss.NewStyle(),
			Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
			Index:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
			Empty:    lipgloss.NewStyle().Faint(true).Italic(true),
		},
		Panel: PanelTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(0, 1),
			Title: lipgloss.NewStyle().Bold(true),
		},
		Modal: ModalTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("212")).
				Padding(1, 2),
			Title: lipgloss.NewStyle().Bold(true),
			Body:  lipgloss.NewStyle(),
			Key:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
		},
		Header: HeaderTheme{
			Band: lipgloss.NewStyle().
				Background(lipgloss.AdaptiveColor{Light: "#A1CEDC", Dark: "#1D3D47"}).
				Padding(1, 2),
			Subtitle: lipgloss.NewStyle().Bold(true),
			Strong:   lipgloss.NewStyle().Bold(true),
			Text:     lipgloss.NewStyle(),
		},
		Button: lipgloss.NewStyle().
			Background(lipgloss.Color(Accent)).
			Foreground(lipgloss.Color("#ffffff")).
			Bold(true).
			Padding(1, 3),
	}
}
