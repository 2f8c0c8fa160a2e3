// filters.go implements the pure derivation functions of the filter engine.
// Filters compose with logical AND; the empty string means "no filter" and
// is a no-op for every collection. Search is a case-insensitive substring
// match over a fixed per-entity field set, and an empty field never matches
// a non-empty term.
package state

import (
	"strings"

	"github.com/example/comply/internal/model"
)

// Filters is the scalar filter set shared by every collection view. The
// field set is fixed; do not grow it into a dynamic map.
type Filters struct {
	Jurisdiction string
	Regulation   string
	Solution     string
	Zone         string
	Search       string
}

// IsZero reports whether no filter is active.
func (f Filters) IsZero() bool {
	return f == Filters{}
}

func matchesSearch(term string, fields ...string) bool {
	term = strings.ToLower(term)
	for _, field := range fields {
		if field == "" {
			continue
		}
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// FilterRegulations returns the regulations passing the jurisdiction and
// search filters. Jurisdiction matches exact equality on JurisdictionID.
func FilterRegulations(fw *model.Framework, f Filters) []model.Regulation {
	out := make([]model.Regulation, 0, len(fw.Regulations))
	for _, r := range fw.Regulations {
		if f.Jurisdiction != "" && r.JurisdictionID != f.Jurisdiction {
			continue
		}
		if f.Search != "" && !matchesSearch(f.Search, r.Name, r.ShortName, r.ID, r.Description) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// FilterRequirements returns the requirements passing the regulation and
// search filters. Requirements carry no jurisdiction field and are never
// filtered by jurisdiction directly.
func FilterRequirements(fw *model.Framework, f Filters) []model.Requirement {
	out := make([]model.Requirement, 0, len(fw.Requirements))
	for _, r := range fw.Requirements {
		if f.Regulation != "" && r.RegulationID != f.Regulation {
			continue
		}
		if f.Search != "" && !matchesSearch(f.Search, r.Name, r.ID, r.Description, r.Category) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// FilterSolutions returns the solutions passing the jurisdiction and search
// filters. Unlike mappings, a solution with no JurisdictionIDs never matches
// a jurisdiction filter.
func FilterSolutions(fw *model.Framework, f Filters) []model.Solution {
	out := make([]model.Solution, 0, len(fw.Solutions))
	for _, s := range fw.Solutions {
		if f.Jurisdiction != "" && !containsString(s.JurisdictionIDs, f.Jurisdiction) {
			continue
		}
		if f.Search != "" && !matchesSearch(f.Search, s.Name, s.ID, s.Provider, s.Description) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// FilterMappings returns the mappings passing all active filters.
// Jurisdiction honors the wildcard convention: a mapping with an empty or
// absent JurisdictionIDs list passes any jurisdiction filter. Regulation is
// an indirect two-hop join through the regulation's requirement set.
func FilterMappings(fw *model.Framework, f Filters) []model.RequirementMapping {
	var regRequirements map[string]struct{}
	if f.Regulation != "" {
		regRequirements = make(map[string]struct{})
		for _, r := range fw.Requirements {
			if r.RegulationID == f.Regulation {
				regRequirements[r.ID] = struct{}{}
			}
		}
	}

	out := make([]model.RequirementMapping, 0, len(fw.Mappings))
	for _, m := range fw.Mappings {
		if f.Jurisdiction != "" && !m.AppliesToJurisdiction(f.Jurisdiction) {
			continue
		}
		if regRequirements != nil {
			if _, ok := regRequirements[m.RequirementID]; !ok {
				continue
			}
		}
		if f.Solution != "" && m.SolutionID != f.Solution {
			continue
		}
		if f.Zone != "" && string(m.Zone) != f.Zone {
			continue
		}
		if f.Search != "" && !matchesSearch(f.Search, m.RequirementID, m.SolutionID, m.Notes) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// FilterZoneAssignments returns the zone assignments passing the
// jurisdiction, solution, zone, and search filters, all exact matches on the
// assignment's own fields. The zone filter compares the assignment's own
// Zone, which is independent of any mapping-level zone.
func FilterZoneAssignments(fw *model.Framework, f Filters) []model.ZoneAssignment {
	out := make([]model.ZoneAssignment, 0, len(fw.ZoneAssignments))
	for _, z := range fw.ZoneAssignments {
		if f.Jurisdiction != "" && z.JurisdictionID != f.Jurisdiction {
			continue
		}
		if f.Solution != "" && z.SolutionID != f.Solution {
			continue
		}
		if f.Zone != "" && string(z.Zone) != f.Zone {
			continue
		}
		if f.Search != "" && !matchesSearch(f.Search, z.SolutionID, z.DataCategory, z.Rationale) {
			continue
		}
		out = append(out, z)
	}
	return out
}

// FilterEnforcement returns the enforcement assessments passing the
// jurisdiction, regulation, and search filters. The regulation filter
// compares the assessment's own RegulationID, not a join.
func FilterEnforcement(fw *model.Framework, f Filters) []model.EnforcementAssessment {
	out := make([]model.EnforcementAssessment, 0, len(fw.EnforcementAssessments))
	for _, e := range fw.EnforcementAssessments {
		if f.Jurisdiction != "" && e.JurisdictionID != f.Jurisdiction {
			continue
		}
		if f.Regulation != "" && e.RegulationID != f.Regulation {
			continue
		}
		if f.Search != "" && !matchesSearch(f.Search, e.RegulationID, e.Rationale) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func containsString(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
