package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title          lipgloss.Style
	Label          lipgloss.Style
	FocusedLabel   lipgloss.Style
	Dim            lipgloss.Style
	Status         lipgloss.Style
	Input          lipgloss.Style
	Help           lipgloss.Style
	Main           lipgloss.Style
	Button         lipgloss.Style
	ButtonSelected lipgloss.Style
	ButtonCursor   lipgloss.Style
	ButtonDisabled lipgloss.Style
	StatusError    lipgloss.Style
	StatusWarning  lipgloss.Style
	StatusSuccess  lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Label:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		FocusedLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Dim:          lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		Input: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Help:  lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Button: lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("252")),
		ButtonSelected: lipgloss.NewStyle().
			Padding(0, 1).
			Bold(true).
			Foreground(lipgloss.Color("231")).
			Background(lipgloss.Color("63")),
		ButtonCursor:   lipgloss.NewStyle().Underline(true),
		ButtonDisabled: lipgloss.NewStyle().Padding(0, 1).Faint(true),
		StatusError:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusWarning:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		StatusSuccess:  lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
	}
}
