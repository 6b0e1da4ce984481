package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"pokedex/internal/audit"
)

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Load the catalog and audit every record",
		Args:  cobra.NoArgs,
		RunE:  runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog(cmd.Context())
	if err != nil {
		return err
	}

	report, err := audit.Run(cat, cfg.API.Count)
	if err != nil {
		return err
	}
	if printReport(cmd.OutOrStdout(), report) {
		return fmt.Errorf("validation found errors")
	}
	return nil
}

// printReport writes report grouped by severity and reports whether it held
// any errors.
func printReport(out io.Writer, report *audit.Report) bool {
	var errorIssues []audit.Issue
	var warnIssues []audit.Issue
	for _, issue := range report.Issues {
		switch issue.Severity {
		case audit.SeverityError:
			errorIssues = append(errorIssues, issue)
		case audit.SeverityWarn:
			warnIssues = append(warnIssues, issue)
		}
	}

	if len(errorIssues) == 0 && len(warnIssues) == 0 {
		fmt.Fprintln(out, "No issues found.")
		return false
	}

	if len(errorIssues) > 0 {
		fmt.Fprintf(out, "Errors (%d):\n", len(errorIssues))
		printIssues(out, errorIssues)
	}
	if len(warnIssues) > 0 {
		if len(errorIssues) > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "Warnings (%d):\n", len(warnIssues))
		printIssues(out, warnIssues)
	}
	return len(errorIssues) > 0
}

func printIssues(out io.Writer, issues []audit.Issue) {
	for _, issue := range issues {
		location := fmt.Sprintf("#%03d", issue.ID)
		if issue.Name != "" {
			location = fmt.Sprintf("%s %s", location, issue.Name)
		}
		fmt.Fprintf(out, "  - %s: %s (%s)\n", location, issue.Message, issue.Code)
	}
}
