package viz

import "github.com/charmbracelet/lipgloss"

// Shared lipgloss styles for the TUI panels.
var (
	HeaderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	CanvasStyle = lipgloss.NewStyle().Padding(0, 1)
	StatsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(0, 2)

	LabelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	ValueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	ActiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	EditStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)

	StatusRunning = lipgloss.NewStyle().Foreground(lipgloss.Color("82")).Bold(true)
	StatusStopped = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
	StatusIdle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	TableHeaderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	TableRowStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	PagerStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	ModalStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("86")).Padding(1, 2)

	GraphStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("49"))
	HelpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)
