package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280")).
			Width(14)

	valueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#06B6D4"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#8B5CF6")).
			MarginBottom(1)
)

// field renders one "label value" output line
func field(label string, value interface{}) string {
	return labelStyle.Render(label) + valueStyle.Render(fmt.Sprint(value)) + "\n"
}
