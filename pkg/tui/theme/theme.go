package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the menu overlay.
type Theme struct {
	Item    ItemTheme
	Callout CalloutTheme
	Frame   lipgloss.Style
	Footer  FooterTheme
}

// ItemTheme styles menu rows by overlay state.
type ItemTheme struct {
	Normal      lipgloss.Style
	Clicked     lipgloss.Style
	Active      lipgloss.Style
	Highlighted lipgloss.Style
	Emphasized  lipgloss.Style
	Persist     lipgloss.Style
	Cursor      lipgloss.Style
	Check       lipgloss.Style
	Marker      lipgloss.Style
}

// CalloutTheme styles the arrow and shortcut callouts.
type CalloutTheme struct {
	Arrow             lipgloss.Style
	Shortcut          lipgloss.Style
	ShortcutCalledOut lipgloss.Style
}

// FooterTheme groups styles used by the bottom status and search line.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
}

// Options select the theme variant from the persisted preferences.
type Options struct {
	Dark bool
	// Framed draws a border around the menu, standing in for the
	// background image.
	Framed bool
}

// New returns the theme for opts.
func New(opts Options) Theme {
	text, dim, accent := lipgloss.Color("236"), lipgloss.Color("244"), lipgloss.Color("25")
	if opts.Dark {
		text, dim, accent = lipgloss.Color("252"), lipgloss.Color("242"), lipgloss.Color("117")
	}

	normal := lipgloss.NewStyle().Foreground(text)
	clicked := normal.Bold(true)

	frame := lipgloss.NewStyle().Padding(0, 1)
	if opts.Framed {
		frame = frame.
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))
	}

	return Theme{
		Item: ItemTheme{
			Normal:      normal,
			Clicked:     clicked,
			Active:      clicked.Foreground(accent),
			Highlighted: normal.Underline(true).Foreground(lipgloss.Color("214")),
			Emphasized:  clicked.Foreground(lipgloss.Color("212")).Reverse(true),
			Persist:     normal.Italic(true),
			Cursor:      lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
			Check:       lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
			Marker:      lipgloss.NewStyle().Foreground(dim),
		},
		Callout: CalloutTheme{
			Arrow:             lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
			Shortcut:          lipgloss.NewStyle().Foreground(dim),
			ShortcutCalledOut: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true).Reverse(true),
		},
		Frame: frame,
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("214")),
			Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		},
	}
}
