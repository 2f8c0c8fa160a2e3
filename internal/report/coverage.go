// coverage.go computes how much of the requirement/solution matrix has been
// assessed, overall and per jurisdiction.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/example/comply/internal/model"
)

// CoverageStats summarizes assessment coverage across the whole framework.
type CoverageStats struct {
	TotalRequirements    int                             `json:"totalRequirements"`
	TotalSolutions       int                             `json:"totalSolutions"`
	TotalMappings        int                             `json:"totalMappings"`
	MappingsWithEvidence int                             `json:"mappingsWithEvidence"`
	EvidencePercent      float64                         `json:"evidencePercent"`
	Jurisdictions        []string                        `json:"jurisdictions"`
	ByJurisdiction       map[string]JurisdictionCoverage `json:"byJurisdiction"`
}

// JurisdictionCoverage reports coverage for one jurisdiction. A cell is a
// (requirement, solution) pair where the solution operates in the
// jurisdiction; it counts as covered when some mapping names the pair and
// the jurisdiction explicitly. Wildcard mappings are deliberately left out:
// a blanket assessment is not evidence that a jurisdiction was looked at.
type JurisdictionCoverage struct {
	JurisdictionID  string  `json:"jurisdictionId"`
	SolutionCount   int     `json:"solutionCount"`
	MaxCells        int     `json:"maxCells"`
	CoveredCells    int     `json:"coveredCells"`
	CoveragePercent float64 `json:"coveragePercent"`
	WithEvidence    int     `json:"withEvidence"`
	EvidencePercent float64 `json:"evidencePercent"`
	MissingCells    int     `json:"missingCells"`
}

type cellKey struct {
	requirementID string
	solutionID    string
}

// Coverage computes coverage statistics for the framework. Jurisdictions are
// evaluated in the order given; when the list is empty the framework's own
// jurisdiction order is used.
func Coverage(fw *model.Framework, jurisdictions []string) *CoverageStats {
	if len(jurisdictions) == 0 {
		for _, j := range fw.Jurisdictions {
			jurisdictions = append(jurisdictions, j.ID)
		}
	}

	stats := &CoverageStats{
		TotalRequirements: len(fw.Requirements),
		TotalSolutions:    len(fw.Solutions),
		TotalMappings:     len(fw.Mappings),
		Jurisdictions:     jurisdictions,
		ByJurisdiction:    make(map[string]JurisdictionCoverage, len(jurisdictions)),
	}

	for _, m := range fw.Mappings {
		if len(m.Evidence) > 0 {
			stats.MappingsWithEvidence++
		}
	}
	if stats.TotalMappings > 0 {
		stats.EvidencePercent = float64(stats.MappingsWithEvidence) / float64(stats.TotalMappings) * 100
	}

	coveredByJur := make(map[string]map[cellKey]bool)
	evidenceByJur := make(map[string]map[cellKey]bool)
	for _, m := range fw.Mappings {
		hasEvidence := len(m.Evidence) > 0
		for _, jurID := range m.JurisdictionIDs {
			if coveredByJur[jurID] == nil {
				coveredByJur[jurID] = make(map[cellKey]bool)
				evidenceByJur[jurID] = make(map[cellKey]bool)
			}
			key := cellKey{m.RequirementID, m.SolutionID}
			coveredByJur[jurID][key] = true
			if hasEvidence {
				evidenceByJur[jurID][key] = true
			}
		}
	}

	for _, jurID := range jurisdictions {
		solutionCount := 0
		for _, s := range fw.Solutions {
			for _, id := range s.JurisdictionIDs {
				if id == jurID {
					solutionCount++
					break
				}
			}
		}

		maxCells := len(fw.Requirements) * solutionCount
		coveredCells := len(coveredByJur[jurID])
		withEvidence := len(evidenceByJur[jurID])

		jc := JurisdictionCoverage{
			JurisdictionID: jurID,
			SolutionCount:  solutionCount,
			MaxCells:       maxCells,
			CoveredCells:   coveredCells,
			MissingCells:   maxCells - coveredCells,
			WithEvidence:   withEvidence,
		}
		if maxCells > 0 {
			jc.CoveragePercent = float64(coveredCells) / float64(maxCells) * 100
		}
		if coveredCells > 0 {
			jc.EvidencePercent = float64(withEvidence) / float64(coveredCells) * 100
		}
		stats.ByJurisdiction[jurID] = jc
	}

	return stats
}

// WriteReport writes a human-readable coverage report.
func WriteReport(w io.Writer, stats *CoverageStats) {
	heading := color.New(color.Bold)

	heading.Fprintln(w, "Compliance Coverage Report")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Summary:")
	fmt.Fprintf(w, "  Requirements:   %d\n", stats.TotalRequirements)
	fmt.Fprintf(w, "  Solutions:      %d\n", stats.TotalSolutions)
	fmt.Fprintf(w, "  Total Mappings: %d\n", stats.TotalMappings)
	fmt.Fprintf(w, "  With Evidence:  %d (%.1f%%)\n", stats.MappingsWithEvidence, stats.EvidencePercent)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Coverage by Jurisdiction:")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%-8s %8s %8s %8s %10s %10s %10s\n",
		"JUR", "SOLS", "MAX", "COVERED", "COVERAGE%", "EVIDENCE", "EVIDENCE%")
	fmt.Fprintln(w, strings.Repeat("-", 72))

	var totalMax, totalCovered, totalEvidence int
	for _, jurID := range stats.Jurisdictions {
		jc, ok := stats.ByJurisdiction[jurID]
		if !ok {
			continue
		}
		fmt.Fprintf(w, "%-8s %8d %8d %8d %9.1f%% %10d %9.1f%%\n",
			jc.JurisdictionID, jc.SolutionCount, jc.MaxCells, jc.CoveredCells,
			jc.CoveragePercent, jc.WithEvidence, jc.EvidencePercent)
		totalMax += jc.MaxCells
		totalCovered += jc.CoveredCells
		totalEvidence += jc.WithEvidence
	}

	fmt.Fprintln(w, strings.Repeat("-", 72))
	var overallCoverage, overallEvidence float64
	if totalMax > 0 {
		overallCoverage = float64(totalCovered) / float64(totalMax) * 100
	}
	if totalCovered > 0 {
		overallEvidence = float64(totalEvidence) / float64(totalCovered) * 100
	}
	fmt.Fprintf(w, "%-8s %8s %8d %8d %9.1f%% %10d %9.1f%%\n",
		"TOTAL", "-", totalMax, totalCovered, overallCoverage, totalEvidence, overallEvidence)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Gap Analysis:")
	for _, jurID := range stats.Jurisdictions {
		jc, ok := stats.ByJurisdiction[jurID]
		if !ok {
			continue
		}
		line := fmt.Sprintf("  %s: %d cells missing (%.1f%% gap)", jurID, jc.MissingCells, 100-jc.CoveragePercent)
		if jc.MissingCells > 0 {
			color.New(color.FgYellow).Fprintln(w, line)
		} else {
			fmt.Fprintln(w, line)
		}
	}
}
