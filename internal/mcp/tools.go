package mcp

import (
	"context"
	"fmt"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"pokedex/internal/catalog"
	"pokedex/internal/present"
)

type SearchPokemonInput struct {
	Search string `json:"search,omitempty" jsonschema:"substring of the name or id, case-insensitive"`
	Type   string `json:"type,omitempty" jsonschema:"exact type label, or all"`
}

type GetPokemonInput struct {
	ID int `json:"id" jsonschema:"national dex number"`
}

type ListTypesInput struct{}

type CardOutput struct {
	ID     int      `json:"id"`
	Number string   `json:"number"`
	Name   string   `json:"name"`
	Image  string   `json:"image"`
	Types  []string `json:"types"`
}

type SearchPokemonOutput struct {
	Results []CardOutput `json:"results"`
	Message string       `json:"message,omitempty"`
	Hint    string       `json:"hint,omitempty"`
}

type StatOutput struct {
	Key   string  `json:"key"`
	Label string  `json:"label"`
	Value int     `json:"value"`
	Fill  float64 `json:"fill"`
	Band  string  `json:"band"`
	Color string  `json:"color"`
}

type PokemonOutput struct {
	ID         int          `json:"id"`
	Number     string       `json:"number"`
	Name       string       `json:"name"`
	Image      string       `json:"image"`
	Types      []string     `json:"types"`
	Stats      []StatOutput `json:"stats"`
	Height     string       `json:"height"`
	Weight     string       `json:"weight"`
	Experience string       `json:"base_experience"`
	Species    string       `json:"species"`
	Abilities  []string     `json:"abilities"`
}

type TypeOptionOutput struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type ListTypesOutput struct {
	Types []TypeOptionOutput `json:"types"`
}

func (s *Server) registerTools() {
	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "search_pokemon",
		Description: "Filter the catalog by name or number and by type",
	}, s.handleSearchPokemon)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "get_pokemon",
		Description: "Retrieve the detail view of one record by id",
	}, s.handleGetPokemon)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "list_types",
		Description: "List the type options, starting with the all-types sentinel",
	}, s.handleListTypes)
}

func (s *Server) handleSearchPokemon(ctx context.Context, req *sdk.CallToolRequest, input SearchPokemonInput) (*sdk.CallToolResult, SearchPokemonOutput, error) {
	category := input.Type
	if category == "" {
		category = catalog.AllTypes
	}
	if category != catalog.AllTypes && !s.cat.Facets().Has(category) {
		return nil, SearchPokemonOutput{}, fmt.Errorf("unknown type %q", category)
	}

	matches, grid := present.RenderResults(s.cat, input.Search, category)
	s.logger.Debug("search_pokemon",
		zap.String("search", input.Search),
		zap.String("type", category),
		zap.Int("matches", len(matches)),
	)

	out := SearchPokemonOutput{Results: make([]CardOutput, 0, len(grid.Cards))}
	for _, card := range grid.Cards {
		out.Results = append(out.Results, cardOutput(card))
	}
	if grid.Empty {
		out.Message = grid.Message
		out.Hint = grid.Hint
	}
	return nil, out, nil
}

func (s *Server) handleGetPokemon(ctx context.Context, req *sdk.CallToolRequest, input GetPokemonInput) (*sdk.CallToolResult, PokemonOutput, error) {
	if input.ID <= 0 {
		return nil, PokemonOutput{}, fmt.Errorf("id is required")
	}
	rec, ok := s.cat.Lookup(input.ID)
	if !ok {
		return nil, PokemonOutput{}, fmt.Errorf("pokemon %d not found", input.ID)
	}
	return nil, pokemonOutput(present.RenderDetail(rec)), nil
}

func (s *Server) handleListTypes(ctx context.Context, req *sdk.CallToolRequest, input ListTypesInput) (*sdk.CallToolResult, ListTypesOutput, error) {
	opts := s.cat.Options()
	out := ListTypesOutput{Types: make([]TypeOptionOutput, 0, len(opts))}
	for _, o := range opts {
		out.Types = append(out.Types, TypeOptionOutput{Value: o.Value, Label: o.Label})
	}
	return nil, out, nil
}

func cardOutput(card present.Card) CardOutput {
	types := make([]string, 0, len(card.Badges))
	for _, b := range card.Badges {
		types = append(types, b.Label)
	}
	return CardOutput{
		ID:     card.ID,
		Number: card.Number,
		Name:   card.Name,
		Image:  card.Image,
		Types:  types,
	}
}

func pokemonOutput(p present.Panel) PokemonOutput {
	stats := make([]StatOutput, 0, len(p.Stats))
	for _, bar := range p.Stats {
		stats = append(stats, StatOutput{
			Key:   bar.Key,
			Label: bar.Label,
			Value: bar.Value,
			Fill:  bar.Fill,
			Band:  bar.Band.String(),
			Color: bar.Band.Color(),
		})
	}
	card := cardOutput(p.Card)
	return PokemonOutput{
		ID:         card.ID,
		Number:     card.Number,
		Name:       card.Name,
		Image:      card.Image,
		Types:      card.Types,
		Stats:      stats,
		Height:     p.Height,
		Weight:     p.Weight,
		Experience: p.Experience,
		Species:    p.Species,
		Abilities:  append([]string{}, p.Abilities...),
	}
}
