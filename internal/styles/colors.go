package styles

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// Monokai Pro palette
const (
	Background = "#2D2A2E"
	Foreground = "#FCFCFA"

	Red    = "#FF6188" // errors, failed pages
	Orange = "#FC9867" // drafts, warnings
	Yellow = "#FFD866"
	Green  = "#A9DC76" // generated pages
	Cyan   = "#78DCE8"
	Purple = "#AB9DF2" // titles

	Comment = "#727072"
	Border  = "#5B595C"
)

var (
	SuccessStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(Green))
	ErrorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(Red))
	WarningStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(Orange))
	DimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color(Comment))
	HelpStyle      = DimStyle
	TitleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(Purple))
	HighlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(Yellow)).Bold(true)
	SpinnerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(Cyan))
	LabelStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(Comment)).Bold(true)
	ValueStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(Foreground))

	BoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(Border))
)

// TableStyles returns the styles shared by every table view
func TableStyles() table.Styles {
	ts := table.DefaultStyles()
	ts.Header = ts.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(Border)).
		BorderBottom(true).
		Foreground(lipgloss.Color(Purple)).
		Bold(true)
	ts.Selected = ts.Selected.
		Foreground(lipgloss.Color(Background)).
		Background(lipgloss.Color(Yellow)).
		Bold(false)
	return ts
}
