package main

import (
	"github.com/spf13/cobra"

	"pokedex/internal/tui"
)

func browseCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "browse",
		Short:       "Open the interactive catalog viewer",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"interactive": "true"},
		RunE:        runBrowse,
	}
}

func runBrowse(cmd *cobra.Command, args []string) error {
	load, err := newLoader(cfg, logger)
	if err != nil {
		return err
	}
	return tui.Run(cmd.Context(), tui.LoadFunc(load), logger)
}
