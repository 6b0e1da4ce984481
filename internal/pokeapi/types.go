package pokeapi

import "pokedex/internal/catalog"

// Pokemon mirrors the subset of the /pokemon/{id} payload the catalog uses.
type Pokemon struct {
	ID             int           `json:"id"`
	Name           string        `json:"name"`
	BaseExperience *int          `json:"base_experience"`
	Height         int           `json:"height"`
	Weight         int           `json:"weight"`
	Types          []TypeSlot    `json:"types"`
	Stats          []StatEntry   `json:"stats"`
	Abilities      []AbilitySlot `json:"abilities"`
	Sprites        Sprites       `json:"sprites"`
	Species        NamedResource `json:"species"`
}

type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type TypeSlot struct {
	Slot int           `json:"slot"`
	Type NamedResource `json:"type"`
}

type StatEntry struct {
	BaseStat int           `json:"base_stat"`
	Effort   int           `json:"effort"`
	Stat     NamedResource `json:"stat"`
}

type AbilitySlot struct {
	Ability  NamedResource `json:"ability"`
	IsHidden bool          `json:"is_hidden"`
	Slot     int           `json:"slot"`
}

type Sprites struct {
	FrontDefault *string      `json:"front_default"`
	Other        OtherSprites `json:"other"`
}

type OtherSprites struct {
	OfficialArtwork ArtworkSprites `json:"official-artwork"`
}

type ArtworkSprites struct {
	FrontDefault *string `json:"front_default"`
}

// Record converts the payload into a catalog record, keeping the provider's
// ordering of types, stats and abilities.
func (p *Pokemon) Record() catalog.Record {
	r := catalog.Record{
		ID:      p.ID,
		Name:    p.Name,
		Height:  p.Height,
		Weight:  p.Weight,
		Species: p.Species.Name,
		Image: catalog.ImageRefs{
			Artwork: deref(p.Sprites.Other.OfficialArtwork.FrontDefault),
			Sprite:  deref(p.Sprites.FrontDefault),
		},
		Types:     make([]string, 0, len(p.Types)),
		Stats:     make([]catalog.Stat, 0, len(p.Stats)),
		Abilities: make([]string, 0, len(p.Abilities)),
	}
	if p.BaseExperience != nil {
		r.BaseExperience = *p.BaseExperience
	}
	for _, t := range p.Types {
		r.Types = append(r.Types, t.Type.Name)
	}
	for _, s := range p.Stats {
		r.Stats = append(r.Stats, catalog.Stat{Name: s.Stat.Name, Base: s.BaseStat})
	}
	for _, a := range p.Abilities {
		r.Abilities = append(r.Abilities, a.Ability.Name)
	}
	return r
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
