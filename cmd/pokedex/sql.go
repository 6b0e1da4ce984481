package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func sqlCmd() *cobra.Command {
	var dsn string
	var rawArgs []string
	cmd := &cobra.Command{
		Use:   "sql <query>",
		Short: "Run a raw SQL query against an exported snapshot",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			return runSQL(cmd, storeDSN(dsn), query, queryArgs(rawArgs))
		},
	}
	cmd.Flags().StringVar(&dsn, "dsn", "", "Database to query (defaults to export.dsn)")
	cmd.Flags().StringArrayVar(&rawArgs, "arg", nil, "Positional query argument (repeatable)")
	return cmd
}

func runSQL(cmd *cobra.Command, dsn, query string, args []any) error {
	ctx := cmd.Context()

	db, err := openStore(ctx, dsn)
	if err != nil {
		return err
	}
	defer db.Close(ctx)

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return err
	}

	payload, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(payload))
	return nil
}

func queryArgs(raw []string) []any {
	args := make([]any, 0, len(raw))
	for _, v := range raw {
		args = append(args, strings.TrimSpace(v))
	}
	return args
}
