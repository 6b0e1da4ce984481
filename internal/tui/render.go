package tui

import (
	"fmt"
	"path"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"pokedex/internal/present"
)

const (
	cardWidth  = 24
	cardHeight = 6

	panelWidth = 56
	panelPadX  = 2
	panelPadY  = 1
	barWidth   = 20

	closeLabel = "[ close ]"
)

func repeat(s string, n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(s, n)
}

func (m *Model) columns() int {
	cols := m.width / cardWidth
	if cols < 1 {
		return 1
	}
	return cols
}

func (m *Model) renderCard(c present.Card, selected bool) string {
	inner := lipgloss.NewStyle().MaxWidth(cardWidth - 2)
	badges := make([]string, 0, len(c.Badges))
	for _, b := range c.Badges {
		badges = append(badges, m.styles.Badge(b))
	}
	lines := []string{
		inner.Render(m.styles.Muted.Render(c.Number)),
		inner.Render(m.styles.Bold.Render(c.Name)),
		inner.Render(strings.Join(badges, " ")),
		inner.Render(m.styles.Muted.Render(path.Base(c.Image))),
	}
	style := m.styles.Card
	if selected {
		style = m.styles.SelectedCard
	}
	return style.Render(strings.Join(lines, "\n"))
}

func (m *Model) renderGrid() {
	if m.failed {
		m.grid.SetContent(m.styles.Message.Render(present.FailedMessage))
		return
	}
	if m.list.Empty {
		content := m.styles.Message.Render(m.list.Message)
		if m.list.Hint != "" {
			content += "\n" + m.styles.Muted.Render(m.list.Hint)
		}
		m.grid.SetContent(content)
		return
	}

	cols := m.columns()
	rows := make([]string, 0, len(m.list.Cards)/cols+1)
	for start := 0; start < len(m.list.Cards); start += cols {
		end := min(start+cols, len(m.list.Cards))
		cards := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			cards = append(cards, m.renderCard(m.list.Cards[i], i == m.selected && m.focus == focusGrid))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	m.grid.SetContent(strings.Join(rows, "\n"))
}

func (m *Model) renderPanel(p present.Panel) string {
	var sb strings.Builder

	badges := make([]string, 0, len(p.Badges))
	for _, b := range p.Badges {
		badges = append(badges, m.styles.Badge(b))
	}

	sb.WriteString(m.styles.CloseButton.Render(closeLabel))
	sb.WriteString("\n\n")
	sb.WriteString(m.styles.Muted.Render(p.Number) + "  " + m.styles.Title.Render(p.Name))
	sb.WriteString("\n")
	sb.WriteString(strings.Join(badges, " "))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Muted.Render(p.Image))
	sb.WriteString("\n\n")

	sb.WriteString(m.styles.Bold.Render("Base Stats"))
	sb.WriteString("\n")
	for _, s := range p.Stats {
		sb.WriteString(fmt.Sprintf("%-8s %s %3d\n", s.Label, m.styles.Bar(s, barWidth), s.Value))
	}
	sb.WriteString("\n")

	info := [][2]string{
		{"Height", p.Height},
		{"Weight", p.Weight},
		{"Base Experience", p.Experience},
		{"Species", p.Species},
	}
	for _, row := range info {
		sb.WriteString(fmt.Sprintf("%s %s\n", m.styles.Muted.Render(fmt.Sprintf("%-16s", row[0])), row[1]))
	}
	sb.WriteString("\n")

	sb.WriteString(m.styles.Bold.Render("Abilities"))
	sb.WriteString("\n")
	abilities := make([]string, 0, len(p.Abilities))
	for _, a := range p.Abilities {
		abilities = append(abilities, m.styles.Ability.Render(a))
	}
	sb.WriteString(strings.Join(abilities, " "))

	width := panelWidth
	if m.width > 0 && m.width-2 < width {
		width = m.width - 2
	}
	return m.styles.Panel.Width(width).Render(sb.String())
}

// overlayRect is the screen area the detail panel occupies.
type overlayRect struct {
	x, y, w, h int
}

func (r overlayRect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

func (m *Model) overlayBounds() overlayRect {
	w := lipgloss.Width(m.overlay)
	h := lipgloss.Height(m.overlay)
	return overlayRect{
		x: max(0, (m.width-w)/2),
		y: max(0, (m.height-h)/2),
		w: w,
		h: h,
	}
}

// closeButtonRect is where the close control sits on screen: the first
// content row inside the panel's border and padding.
func (m *Model) closeButtonRect() overlayRect {
	b := m.overlayBounds()
	return overlayRect{
		x: b.x + 1 + panelPadX,
		y: b.y + 1 + panelPadY,
		w: lipgloss.Width(closeLabel),
		h: 1,
	}
}

func (m *Model) overlayView() string {
	b := m.overlayBounds()
	pad := repeat(" ", b.x)
	lines := strings.Split(m.overlay, "\n")
	for i, line := range lines {
		lines[i] = pad + line
	}
	return repeat("\n", b.y) + strings.Join(lines, "\n")
}
