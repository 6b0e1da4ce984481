// Package audit checks a loaded catalog for records the presenters would
// have to paper over.
package audit

import (
	"fmt"

	"pokedex/internal/catalog"
	"pokedex/internal/present"
)

type Severity string

const (
	SeverityError Severity = "error"
	SeverityWarn  Severity = "warning"
)

const (
	codeDuplicateID  = "duplicate_id"
	codeIDRange      = "id_out_of_range"
	codeNoTypes      = "no_types"
	codeEmptyName    = "empty_name"
	codeStatRange    = "stat_out_of_range"
	codeUnknownStat  = "unknown_stat"
	codeMissingImage = "missing_image"
	codeZeroMeasure  = "zero_measurement"
)

type Issue struct {
	Severity Severity
	Code     string
	Message  string
	ID       int
	Name     string
}

type Report struct {
	Issues []Issue
}

func (r *Report) Errors() int {
	return r.count(SeverityError)
}

func (r *Report) Warnings() int {
	return r.count(SeverityWarn)
}

func (r *Report) count(sev Severity) int {
	n := 0
	for _, issue := range r.Issues {
		if issue.Severity == sev {
			n++
		}
	}
	return n
}

// Run audits every record in cat. expected is the configured load count;
// ids must fall in 1..expected.
func Run(cat *catalog.Catalog, expected int) (*Report, error) {
	if cat == nil {
		return nil, fmt.Errorf("catalog is required")
	}

	issues := make([]Issue, 0)
	seen := make(map[int]bool, cat.Len())
	for _, r := range cat.Records() {
		if seen[r.ID] {
			issues = append(issues, issueFor(r, SeverityError, codeDuplicateID, fmt.Sprintf("id %d appears more than once", r.ID)))
		}
		seen[r.ID] = true

		if r.ID < 1 || r.ID > expected {
			issues = append(issues, issueFor(r, SeverityError, codeIDRange, fmt.Sprintf("id %d outside 1..%d", r.ID, expected)))
		}
		issues = append(issues, checkIdentity(r)...)
		issues = append(issues, checkStats(r)...)
		issues = append(issues, checkPresentation(r)...)
	}

	return &Report{Issues: issues}, nil
}

func checkIdentity(r catalog.Record) []Issue {
	var issues []Issue
	if r.Name == "" {
		issues = append(issues, issueFor(r, SeverityError, codeEmptyName, "record has no name"))
	}
	if len(r.Types) == 0 {
		issues = append(issues, issueFor(r, SeverityError, codeNoTypes, "record has no types"))
	}
	return issues
}

func checkStats(r catalog.Record) []Issue {
	var issues []Issue
	for _, s := range r.Stats {
		if s.Base < 0 || s.Base > present.MaxStat {
			issues = append(issues, issueFor(r, SeverityError, codeStatRange,
				fmt.Sprintf("stat %s=%d outside 0..%d", s.Name, s.Base, present.MaxStat)))
		}
		if !present.KnownStat(s.Name) {
			issues = append(issues, issueFor(r, SeverityWarn, codeUnknownStat,
				fmt.Sprintf("stat %q has no display label", s.Name)))
		}
	}
	return issues
}

func checkPresentation(r catalog.Record) []Issue {
	var issues []Issue
	if r.Image.Preferred() == "" {
		issues = append(issues, issueFor(r, SeverityWarn, codeMissingImage, "no artwork or sprite; placeholder shown"))
	}
	if r.Height == 0 {
		issues = append(issues, issueFor(r, SeverityWarn, codeZeroMeasure, "height is zero"))
	}
	if r.Weight == 0 {
		issues = append(issues, issueFor(r, SeverityWarn, codeZeroMeasure, "weight is zero"))
	}
	return issues
}

func issueFor(r catalog.Record, sev Severity, code, msg string) Issue {
	return Issue{Severity: sev, Code: code, Message: msg, ID: r.ID, Name: r.Name}
}
