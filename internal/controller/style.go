package controller

import (
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/blocks/internal/model"
)

var (
	blockStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	passStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	skipStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	detailStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func statusStyle(status m.Status) lipgloss.Style {
	switch status {
	case m.StatusPassed:
		return passStyle
	case m.StatusFailed:
		return failStyle
	case m.StatusSkipped:
		return skipStyle
	default:
		return pendingStyle
	}
}

func statusMarker(status m.Status) string {
	switch status {
	case m.StatusPassed:
		return "[+]"
	case m.StatusFailed:
		return "[-]"
	case m.StatusSkipped:
		return "[!]"
	default:
		return "[?]"
	}
}
