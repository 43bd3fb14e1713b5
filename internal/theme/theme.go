package theme

import "github.com/charmbracelet/lipgloss"

// Styles holds the chrome drawn underneath stylesheet rules. A rule from the
// markup always wins over these.
type Styles struct {
	Box        *lipgloss.Style
	Border     *lipgloss.Style
	Title      *lipgloss.Style
	Text       *lipgloss.Style
	Button     *lipgloss.Style
	Dialog     *lipgloss.Style
	TabBorders *lipgloss.Style
	TabItem    *lipgloss.Style
	Focused    *lipgloss.Style
	Active     *lipgloss.Style
	Error      *lipgloss.Style
	Info       *lipgloss.Style
	Header     *lipgloss.Style
}

var defaultStyles = Styles{
	Box: ptr(
		lipgloss.NewStyle(),
	),
	Border: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	Title: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
	),
	Text: ptr(
		lipgloss.NewStyle(),
	),
	Button: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	),
	Dialog: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	),
	TabBorders: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	TabItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Focused: ptr(
		lipgloss.NewStyle().Reverse(true),
	),
	Active: ptr(
		lipgloss.NewStyle().Bold(true).Underline(true),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
}

// Default exposes the standard chrome.
func Default() *Styles {
	return &defaultStyles
}

// ForTag returns the base style for a markup tag.
func (s *Styles) ForTag(tag string) lipgloss.Style {
	switch tag {
	case "p":
		return *s.Text
	case "button":
		return *s.Button
	case "dialog":
		return *s.Dialog
	case "tab-borders":
		return *s.TabBorders
	case "tab-item":
		return *s.TabItem
	default:
		return *s.Box
	}
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
