// analyze.go summarizes a research submission before import.
package research

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// Analysis is the pre-import summary of a research submission.
type Analysis struct {
	TotalFindings       int            `json:"totalFindings"`
	UniqueControls      int            `json:"uniqueControls"`
	UniqueSolutions     int            `json:"uniqueSolutions"`
	StatusBreakdown     map[string]int `json:"statusBreakdown"`
	ZoneBreakdown       map[string]int `json:"zoneBreakdown"`
	ConfidenceBreakdown map[string]int `json:"confidenceBreakdown"`
	ControlIDs          []string       `json:"controlIds"`
	SolutionIDs         []string       `json:"solutionIds"`
	JurisdictionIDs     []string       `json:"jurisdictionIds"`
	FindingsBySolution  map[string]int `json:"findingsBySolution"`
	FindingsByControl   map[string]int `json:"findingsByControl"`
	WithEvidence        int            `json:"withEvidence"`
	MissingEvidence     int            `json:"missingEvidence"`
}

// Analyze tallies the findings by status, zone, confidence, and entity.
func (in *Input) Analyze() *Analysis {
	a := &Analysis{
		TotalFindings:       len(in.Findings),
		StatusBreakdown:     make(map[string]int),
		ZoneBreakdown:       make(map[string]int),
		ConfidenceBreakdown: make(map[string]int),
		FindingsBySolution:  make(map[string]int),
		FindingsByControl:   make(map[string]int),
	}

	controls := make(map[string]struct{})
	solutions := make(map[string]struct{})
	jurisdictions := make(map[string]struct{})

	for _, f := range in.Findings {
		a.StatusBreakdown[f.Status]++
		if f.Zone != "" {
			a.ZoneBreakdown[string(f.Zone)]++
		}
		if f.Confidence != "" {
			a.ConfidenceBreakdown[string(f.Confidence)]++
		} else {
			a.ConfidenceBreakdown["unspecified"]++
		}

		controls[f.ControlID] = struct{}{}
		solutions[f.SolutionID] = struct{}{}
		for _, j := range f.JurisdictionIDs {
			jurisdictions[j] = struct{}{}
		}

		a.FindingsBySolution[f.SolutionID]++
		a.FindingsByControl[f.ControlID]++

		if len(f.Evidence) > 0 {
			a.WithEvidence++
		} else {
			a.MissingEvidence++
		}
	}

	a.UniqueControls = len(controls)
	a.UniqueSolutions = len(solutions)
	a.ControlIDs = sortedKeys(controls)
	a.SolutionIDs = sortedKeys(solutions)
	a.JurisdictionIDs = sortedKeys(jurisdictions)
	return a
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// WriteReport writes a human-readable analysis report.
func (a *Analysis) WriteReport(w io.Writer) {
	fmt.Fprintln(w, "Research Analysis Report")
	fmt.Fprintln(w, "========================")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Total Findings:   %d\n", a.TotalFindings)
	fmt.Fprintf(w, "Unique Controls:  %d\n", a.UniqueControls)
	fmt.Fprintf(w, "Unique Solutions: %d\n", a.UniqueSolutions)
	fmt.Fprintf(w, "Jurisdictions:    %s\n", strings.Join(a.JurisdictionIDs, ", "))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Status Breakdown:")
	for _, status := range sortedCountKeys(a.StatusBreakdown) {
		count := a.StatusBreakdown[status]
		fmt.Fprintf(w, "  %-15s %d (%.1f%%)\n", status, count, percent(count, a.TotalFindings))
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Zone Breakdown:")
	for _, zone := range sortedCountKeys(a.ZoneBreakdown) {
		count := a.ZoneBreakdown[zone]
		fmt.Fprintf(w, "  %-10s %d (%.1f%%)\n", zone, count, percent(count, a.TotalFindings))
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Evidence Coverage:")
	fmt.Fprintf(w, "  With Evidence:    %d (%.1f%%)\n", a.WithEvidence, percent(a.WithEvidence, a.TotalFindings))
	fmt.Fprintf(w, "  Missing Evidence: %d (%.1f%%)\n", a.MissingEvidence, percent(a.MissingEvidence, a.TotalFindings))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Findings by Solution:")
	for _, sol := range sortedCountKeys(a.FindingsBySolution) {
		fmt.Fprintf(w, "  %-25s %d\n", sol, a.FindingsBySolution[sol])
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Control IDs (%d):\n", len(a.ControlIDs))
	for _, c := range a.ControlIDs {
		fmt.Fprintf(w, "  %s\n", c)
	}
}

func sortedCountKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func percent(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total) * 100
}
