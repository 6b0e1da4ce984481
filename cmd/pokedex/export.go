package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pokedex/internal/export"
)

func exportCmd() *cobra.Command {
	var dsn string
	var full bool
	var prune bool
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Snapshot the loaded catalog into sqlite or postgres",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, storeDSN(dsn), export.Options{Full: full, Prune: prune, Logger: logger})
		},
	}
	cmd.Flags().StringVar(&dsn, "dsn", "", "Target database (defaults to export.dsn)")
	cmd.Flags().BoolVar(&full, "full", false, "Rewrite every record (ignore stored hashes)")
	cmd.Flags().BoolVar(&prune, "prune", false, "Delete stored records the catalog no longer holds")
	return cmd
}

func runExport(cmd *cobra.Command, dsn string, opts export.Options) error {
	ctx := cmd.Context()

	cat, err := loadCatalog(ctx)
	if err != nil {
		return err
	}

	db, err := openStore(ctx, dsn)
	if err != nil {
		return err
	}
	defer db.Close(ctx)

	result, err := export.Run(ctx, cat, db, opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Export complete.")
	fmt.Fprintf(out, "  Records upserted: %d\n", result.RecordsUpserted)
	fmt.Fprintf(out, "  Records skipped:  %d\n", result.RecordsSkipped)
	fmt.Fprintf(out, "  Records removed:  %d\n", result.RecordsRemoved)

	if len(result.Errors) > 0 {
		fmt.Fprintf(out, "\nErrors (%d):\n", len(result.Errors))
		for _, item := range result.Errors {
			fmt.Fprintf(out, "  - %v\n", item)
		}
		return fmt.Errorf("export completed with errors")
	}
	return nil
}
