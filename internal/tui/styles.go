package tui

import (
	"github.com/MKhiriev/okto-client/models"
	"github.com/charmbracelet/lipgloss"
)

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
	statusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))
	selectedStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	pillStyle       = lipgloss.NewStyle().Padding(0, 1)
	activePillStyle = pillStyle.Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("212"))
)

var insightStyles = map[models.InsightKind]lipgloss.Style{
	models.InsightOpportunity: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
	models.InsightBenefit:     lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
	models.InsightMarket:      lipgloss.NewStyle().Foreground(lipgloss.Color("221")),
	models.InsightAlert:       lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
}

func insightBadge(kind models.InsightKind) string {
	style, ok := insightStyles[kind]
	if !ok {
		style = lipgloss.NewStyle()
	}
	return style.Render("[" + string(kind) + "]")
}
