// Package present turns catalog records into display structures and keeps
// the viewer's ephemeral state. Nothing here performs I/O; hosts receive the
// structures through the Surface interface and draw them however they like.
package present

import (
	"fmt"
	"strconv"
	"strings"

	"pokedex/internal/catalog"
)

const (
	NoResultsMessage = "No Pokemon found matching your search."
	FailedMessage    = "Failed to load Pokemon. Please try again later."

	// MissingImage stands in when a record has neither artwork nor sprite.
	MissingImage = "about:blank#no-image"
)

type Badge struct {
	Label string
	Class string
}

type Card struct {
	ID     int
	Number string
	Name   string
	Image  string
	Badges []Badge
}

// Grid is the summary view. When Empty is set, Cards is nil and Message
// holds the placeholder text.
type Grid struct {
	Cards   []Card
	Empty   bool
	Message string
	Hint    string
}

func RenderList(records []catalog.Record) Grid {
	if len(records) == 0 {
		return Grid{Empty: true, Message: NoResultsMessage}
	}
	cards := make([]Card, 0, len(records))
	for _, r := range records {
		cards = append(cards, RenderCard(r))
	}
	return Grid{Cards: cards}
}

// RenderResults filters cat and renders the matches. An empty result carries
// a spelling hint when some name is close to search.
func RenderResults(cat *catalog.Catalog, search, category string) ([]catalog.Record, Grid) {
	matches := catalog.Filter(cat.Records(), search, category)
	grid := RenderList(matches)
	if grid.Empty {
		if name, ok := catalog.Suggest(cat.Records(), search); ok {
			grid.Hint = "Did you mean " + name + "?"
		}
	}
	return matches, grid
}

func RenderCard(r catalog.Record) Card {
	return Card{
		ID:     r.ID,
		Number: Number(r.ID),
		Name:   r.Name,
		Image:  ImageFor(r),
		Badges: typeBadges(r.Types),
	}
}

// Number formats an id as "#007".
func Number(id int) string {
	return "#" + catalog.PaddedID(id)
}

func ImageFor(r catalog.Record) string {
	if ref := r.Image.Preferred(); ref != "" {
		return ref
	}
	return MissingImage
}

func typeBadges(types []string) []Badge {
	badges := make([]Badge, 0, len(types))
	for _, t := range types {
		badges = append(badges, Badge{Label: t, Class: "type-" + t})
	}
	return badges
}

type StatBar struct {
	Key   string
	Label string
	Value int
	Fill  float64
	Band  Band
}

type Panel struct {
	Card
	Stats      []StatBar
	Height     string
	Weight     string
	Experience string
	Species    string
	Abilities  []string
}

func RenderDetail(r catalog.Record) Panel {
	p := Panel{
		Card:       RenderCard(r),
		Stats:      make([]StatBar, 0, len(r.Stats)),
		Height:     tenths(r.Height) + " m",
		Weight:     tenths(r.Weight) + " kg",
		Experience: experience(r.BaseExperience),
		Species:    r.Species,
		Abilities:  make([]string, 0, len(r.Abilities)),
	}
	for _, s := range r.Stats {
		p.Stats = append(p.Stats, StatBar{
			Key:   s.Name,
			Label: StatLabel(s.Name),
			Value: s.Base,
			Fill:  Fill(s.Base),
			Band:  BandFor(s.Base),
		})
	}
	for _, a := range r.Abilities {
		p.Abilities = append(p.Abilities, strings.ReplaceAll(a, "-", " "))
	}
	return p
}

// Fill is the proportion of a stat bar to draw, clamped to [0, 1].
func Fill(value int) float64 {
	f := float64(value) / MaxStat
	switch {
	case f > 1:
		return 1
	case f < 0:
		return 0
	}
	return f
}

func tenths(v int) string {
	return strconv.FormatFloat(float64(v)/10, 'f', 1, 64)
}

func experience(v int) string {
	if v <= 0 {
		return "N/A"
	}
	return fmt.Sprint(v)
}
