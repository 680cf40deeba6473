package tui

import (
	"github.com/MKhiriev/go-user-directory/models"
	"github.com/charmbracelet/lipgloss"
)

var (
	appStyle          = lipgloss.NewStyle().Padding(1, 2)
	titleStyle        = lipgloss.NewStyle().Bold(true)
	helpStyle         = lipgloss.NewStyle().Faint(true)
	overlayBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	cardStyle         = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1).Width(56)
	selectedCardStyle = cardStyle.BorderForeground(lipgloss.Color("12")).Border(lipgloss.ThickBorder())
	favoriteStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	filterStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)

	noticeStyles = map[models.Severity]lipgloss.Style{
		models.SeverityPrimary: lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("12")),
		models.SeveritySuccess: lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("10")),
		models.SeverityWarning: lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("11")),
		models.SeverityDanger:  lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("9")),
	}
)

func noticeStyle(s models.Severity) lipgloss.Style {
	if style, ok := noticeStyles[s]; ok {
		return style
	}
	return noticeStyles[models.SeverityPrimary]
}
