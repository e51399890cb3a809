package tui

import (
	"github.com/charmbracelet/lipgloss"

	"portafoglio/internal/core"
)

// styles holds the lipgloss styles for the active theme. Rebuilt
// whenever the theme flips.
type styles struct {
	app          lipgloss.Style
	title        lipgloss.Style
	tabActive    lipgloss.Style
	tabInactive  lipgloss.Style
	balanceCard  lipgloss.Style
	balancePos   lipgloss.Style
	balanceNeg   lipgloss.Style
	income       lipgloss.Style
	expense      lipgloss.Style
	listItem     lipgloss.Style
	listSelected lipgloss.Style
	muted        lipgloss.Style
	insightCard  lipgloss.Style
	statusOK     lipgloss.Style
	statusErr    lipgloss.Style
	formLabel    lipgloss.Style
	unreadDot    lipgloss.Style
}

func newStyles(theme core.Theme) styles {
	fg := lipgloss.Color("236")
	mutedFg := lipgloss.Color("245")
	cardBorder := lipgloss.Color("252")
	if theme == core.Dark {
		fg = lipgloss.Color("252")
		mutedFg = lipgloss.Color("243")
		cardBorder = lipgloss.Color("238")
	}

	accent := lipgloss.Color("135") // purple, the app's brand color
	green := lipgloss.Color("42")
	red := lipgloss.Color("204")

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(cardBorder).
		Padding(0, 2)

	return styles{
		app:          lipgloss.NewStyle().Foreground(fg).Padding(1, 2),
		title:        lipgloss.NewStyle().Foreground(accent).Bold(true),
		tabActive:    lipgloss.NewStyle().Foreground(accent).Bold(true).Underline(true),
		tabInactive:  lipgloss.NewStyle().Foreground(mutedFg),
		balanceCard:  card.BorderForeground(accent),
		balancePos:   lipgloss.NewStyle().Foreground(green).Bold(true),
		balanceNeg:   lipgloss.NewStyle().Foreground(red).Bold(true),
		income:       lipgloss.NewStyle().Foreground(green),
		expense:      lipgloss.NewStyle().Foreground(red),
		listItem:     lipgloss.NewStyle(),
		listSelected: lipgloss.NewStyle().Foreground(accent).Bold(true),
		muted:        lipgloss.NewStyle().Foreground(mutedFg),
		insightCard:  card,
		statusOK:     lipgloss.NewStyle().Foreground(green),
		statusErr:    lipgloss.NewStyle().Foreground(red),
		formLabel:    lipgloss.NewStyle().Foreground(mutedFg).Width(12),
		unreadDot:    lipgloss.NewStyle().Foreground(accent).Bold(true),
	}
}
