package main

import (
	"fmt"
	"io"
	"strings"

	"pokedex/internal/catalog"
	"pokedex/internal/present"
)

const textBarWidth = 20

func printGrid(out io.Writer, g present.Grid) {
	if g.Empty {
		fmt.Fprintln(out, g.Message)
		if g.Hint != "" {
			fmt.Fprintln(out, g.Hint)
		}
		return
	}
	for _, card := range g.Cards {
		fmt.Fprintf(out, "%s  %-12s %s\n", card.Number, card.Name, badgeLabels(card.Badges))
	}
}

func printPanel(out io.Writer, p present.Panel) {
	fmt.Fprintf(out, "%s %s\n", p.Number, p.Name)
	fmt.Fprintf(out, "Types: %s\n", badgeLabels(p.Badges))
	fmt.Fprintf(out, "Image: %s\n\n", p.Image)
	for _, bar := range p.Stats {
		filled := int(bar.Fill*textBarWidth + 0.5)
		fmt.Fprintf(out, "%-8s %3d %s%s\n", bar.Label, bar.Value,
			strings.Repeat("#", filled), strings.Repeat(".", textBarWidth-filled))
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Height:          %s\n", p.Height)
	fmt.Fprintf(out, "Weight:          %s\n", p.Weight)
	fmt.Fprintf(out, "Base Experience: %s\n", p.Experience)
	fmt.Fprintf(out, "Species:         %s\n", p.Species)
	fmt.Fprintf(out, "Abilities:       %s\n", strings.Join(p.Abilities, ", "))
}

func printOptions(out io.Writer, opts []catalog.Option) {
	for _, o := range opts {
		fmt.Fprintf(out, "%-10s %s\n", o.Value, o.Label)
	}
}

func badgeLabels(badges []present.Badge) string {
	labels := make([]string, 0, len(badges))
	for _, b := range badges {
		labels = append(labels, b.Label)
	}
	return strings.Join(labels, " ")
}
