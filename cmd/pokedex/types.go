package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pokedex/internal/present"
)

func typesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "Print the type options",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog(cmd.Context())
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), present.FailedMessage)
				return err
			}
			printOptions(cmd.OutOrStdout(), cat.Options())
			return nil
		},
	}
}
