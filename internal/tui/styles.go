package tui

import (
	"github.com/charmbracelet/lipgloss"

	"pokedex/internal/present"
)

var (
	accent    = lipgloss.Color("#ef5350")
	muted     = lipgloss.Color("#8a8f98")
	border    = lipgloss.Color("#3b4252")
	highlight = lipgloss.Color("#f4d35e")
)

var typeColors = map[string]lipgloss.Color{
	"normal":   lipgloss.Color("#A8A77A"),
	"fire":     lipgloss.Color("#EE8130"),
	"water":    lipgloss.Color("#6390F0"),
	"electric": lipgloss.Color("#F7D02C"),
	"grass":    lipgloss.Color("#7AC74C"),
	"ice":      lipgloss.Color("#96D9D6"),
	"fighting": lipgloss.Color("#C22E28"),
	"poison":   lipgloss.Color("#A33EA1"),
	"ground":   lipgloss.Color("#E2BF65"),
	"flying":   lipgloss.Color("#A98FF3"),
	"psychic":  lipgloss.Color("#F95587"),
	"bug":      lipgloss.Color("#A6B91A"),
	"rock":     lipgloss.Color("#B6A136"),
	"ghost":    lipgloss.Color("#735797"),
	"dragon":   lipgloss.Color("#6F35FC"),
	"dark":     lipgloss.Color("#705746"),
	"steel":    lipgloss.Color("#B7B7CE"),
	"fairy":    lipgloss.Color("#D685AD"),
}

// Styles holds every style the browser draws with.
type Styles struct {
	Title        lipgloss.Style
	Muted        lipgloss.Style
	Bold         lipgloss.Style
	Category     lipgloss.Style
	Card         lipgloss.Style
	SelectedCard lipgloss.Style
	Panel        lipgloss.Style
	CloseButton  lipgloss.Style
	Message      lipgloss.Style
	Ability      lipgloss.Style
}

func DefaultStyles() Styles {
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(cardWidth - 2).
		Height(cardHeight - 2)

	return Styles{
		Title:        lipgloss.NewStyle().Bold(true).Foreground(accent),
		Muted:        lipgloss.NewStyle().Foreground(muted),
		Bold:         lipgloss.NewStyle().Bold(true),
		Category:     lipgloss.NewStyle().Bold(true).Foreground(highlight),
		Card:         card,
		SelectedCard: card.BorderForeground(highlight),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(panelPadY, panelPadX),
		CloseButton: lipgloss.NewStyle().Bold(true).Foreground(accent),
		Message:     lipgloss.NewStyle().Foreground(muted).Italic(true),
		Ability:     lipgloss.NewStyle().Foreground(lipgloss.Color("#dfe6e9")).Background(border).Padding(0, 1),
	}
}

// Badge renders a type label in its type color. Unknown types fall back to
// the muted color.
func (s Styles) Badge(b present.Badge) string {
	color, ok := typeColors[b.Label]
	if !ok {
		color = muted
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#ffffff")).
		Background(color).
		Padding(0, 1).
		Render(b.Label)
}

func (s Styles) Bar(bar present.StatBar, width int) string {
	filled := int(bar.Fill*float64(width) + 0.5)
	if filled > width {
		filled = width
	}
	fill := lipgloss.NewStyle().Foreground(lipgloss.Color(bar.Band.Color()))
	return fill.Render(repeat("█", filled)) + s.Muted.Render(repeat("░", width-filled))
}
