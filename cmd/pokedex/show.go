package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"pokedex/internal/present"
)

func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print the detail view of one record",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}
}

func runShow(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(strings.TrimPrefix(args[0], "#"))
	if err != nil {
		return fmt.Errorf("invalid id %q", args[0])
	}

	cat, err := loadCatalog(cmd.Context())
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), present.FailedMessage)
		return err
	}

	rec, ok := cat.Lookup(id)
	if !ok {
		return fmt.Errorf("pokemon %d not found", id)
	}
	printPanel(cmd.OutOrStdout(), present.RenderDetail(rec))
	return nil
}
