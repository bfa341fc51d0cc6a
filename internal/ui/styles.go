package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - for titles, highlights
	ColorHighlight = "205" // Magenta - for selected items, focused borders
	ColorDanger    = "196" // Red - for warnings
	ColorMuted     = "241" // Gray - for dimmed text, hints
	ColorText      = "252" // Light gray - for normal text
	ColorWarning   = "208" // Orange - for warning details
)

// Styles contains shared style definitions used across widgets and overlays.
var Styles = struct {
	Title        lipgloss.Style // Bold accent color - for panel titles
	TitleWarning lipgloss.Style // Bold danger color - for dialog titles

	Box        lipgloss.Style // Unfocused panel border
	BoxFocused lipgloss.Style // Focused panel border
	BoxDanger  lipgloss.Style // Dialog box
	BoxMenu    lipgloss.Style // Popup menu box

	Selected lipgloss.Style // Highlighted/selected rows
	Normal   lipgloss.Style // Normal text
	Muted    lipgloss.Style // Dimmed text
	Status   lipgloss.Style // Status bar
	HelpBar  lipgloss.Style // Leader-key help bar
	Details  lipgloss.Style // Warning details
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	TitleWarning: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorDanger)),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)),
	BoxFocused: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)),
	BoxDanger: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorDanger)).
		Padding(0, 1),
	BoxMenu: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)),
	Selected: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorHighlight)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)).
		Reverse(true),
	HelpBar: lipgloss.NewStyle().
		Padding(0, 1),
	Details: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorWarning)),
}

// boxed renders content inside a bordered box of exactly width×height cells.
func boxed(style lipgloss.Style, title, content string, width, height int) string {
	innerW := max(width-style.GetHorizontalBorderSize(), 0)
	innerH := max(height-style.GetVerticalBorderSize(), 0)
	body := content
	if title != "" {
		body = Styles.Title.Render(title) + "\n" + content
	}
	return style.
		Width(innerW).
		Height(innerH).
		MaxHeight(height).
		Render(body)
}
