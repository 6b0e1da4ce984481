package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pokedex/internal/catalog"
	"pokedex/internal/present"
)

func listCmd() *cobra.Command {
	var search string
	var category string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the catalog, optionally filtered",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, search, category)
		},
	}
	cmd.Flags().StringVar(&search, "search", "", "Name or number substring")
	cmd.Flags().StringVar(&category, "type", catalog.AllTypes, "Type label to filter")
	return cmd
}

func runList(cmd *cobra.Command, search, category string) error {
	cat, err := loadCatalog(cmd.Context())
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), present.FailedMessage)
		return err
	}

	_, grid := present.RenderResults(cat, search, category)
	printGrid(cmd.OutOrStdout(), grid)
	return nil
}
