package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name      string
	Base      lipgloss.Style
	Border    lipgloss.Color
	Header    lipgloss.Style
	Label     lipgloss.Style
	Value     lipgloss.Style
	Positive  lipgloss.Style
	Negative  lipgloss.Style
	Button    lipgloss.Style
	Input     lipgloss.Style
	Focused   lipgloss.Style
	Dim       lipgloss.Style
	Highlight lipgloss.Style
	Error     lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:      "Default",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Border:    lipgloss.Color("63"),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Align(lipgloss.Center),
		Label:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Value:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
		Positive:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		Negative:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Button:    lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("63")).Padding(0, 2),
		Input:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1).Width(50),
		Focused:   lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	},
	"dracula": {
		Name:      "Dracula",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Border:    lipgloss.Color("62"),                                                                   // Purple
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true).Align(lipgloss.Center), // Cyan
		Label:     lipgloss.NewStyle().Foreground(lipgloss.Color("60")),                                   // Comment
		Value:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),                       // White
		Positive:  lipgloss.NewStyle().Foreground(lipgloss.Color("120")).Bold(true),                       // Green
		Negative:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),                       // Red
		Button:    lipgloss.NewStyle().Foreground(lipgloss.Color("236")).Background(lipgloss.Color("141")).Padding(0, 2),
		Input:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("50")).Padding(0, 1).Width(50),
		Focused:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true), // Pink
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("62")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("210")),
	},
}

// CurrentTheme holds the active theme. It starts at default so rendering
// before SetTheme is safe.
var CurrentTheme = Themes["default"]

func SetTheme(name string) {
	if t, ok := Themes[name]; ok {
		CurrentTheme = t
	}
}

// BalanceStyle picks the style for a balance's colour class.
func (t Theme) BalanceStyle(class Class) lipgloss.Style {
	switch class {
	case ColorPositive:
		return t.Positive
	case ColorNegative:
		return t.Negative
	default:
		return t.Value
	}
}
