package server

import (
	"strings"

	"github.com/example/comply/internal/model"
	"github.com/example/comply/internal/state"
)

// Column describes one grid column to the table widget.
type Column struct {
	Title string `json:"title"`
	Field string `json:"field"`
	Width int    `json:"width,omitempty"`
	Kind  string `json:"kind,omitempty"`
}

// Grid is the table widget's wire payload: column descriptors plus row
// data. Rows are flat field maps keyed by Column.Field; the widget reports
// row clicks back by the "id" field.
type Grid struct {
	Columns     []Column         `json:"columns"`
	Rows        []map[string]any `json:"rows"`
	Placeholder string           `json:"placeholder"`
}

// BuildGrid assembles the grid for one collection from the store's current
// filtered view. Unknown collections return ok=false.
func BuildGrid(st *state.Store, collection string) (Grid, bool) {
	switch collection {
	case "regulations":
		return regulationsGrid(st.FilteredRegulations()), true
	case "requirements":
		return requirementsGrid(st.FilteredRequirements()), true
	case "solutions":
		return solutionsGrid(st.FilteredSolutions()), true
	case "mappings":
		return mappingsGrid(st.FilteredMappings()), true
	case "zones":
		return zonesGrid(st.FilteredZoneAssignments()), true
	case "enforcement":
		return enforcementGrid(st.FilteredEnforcement()), true
	}
	return Grid{}, false
}

func regulationsGrid(regs []model.Regulation) Grid {
	g := Grid{
		Columns: []Column{
			{Title: "ID", Field: "id", Width: 180},
			{Title: "Short Name", Field: "shortName", Width: 150},
			{Title: "Jurisdiction", Field: "jurisdictionId", Width: 100},
			{Title: "Status", Field: "status", Width: 120, Kind: "badge"},
			{Title: "Effective Date", Field: "effectiveDate", Width: 130},
			{Title: "Description", Field: "description"},
		},
		Placeholder: "No regulations found matching your filters.",
	}
	for _, r := range regs {
		g.Rows = append(g.Rows, map[string]any{
			"id":             r.ID,
			"shortName":      r.ShortName,
			"jurisdictionId": r.JurisdictionID,
			"status":         string(r.Status),
			"effectiveDate":  r.EffectiveDate,
			"description":    r.Description,
		})
	}
	return g
}

func requirementsGrid(reqs []model.Requirement) Grid {
	g := Grid{
		Columns: []Column{
			{Title: "ID", Field: "id", Width: 180},
			{Title: "Name", Field: "name", Width: 220},
			{Title: "Category", Field: "category", Width: 130},
			{Title: "Severity", Field: "severity", Width: 90, Kind: "badge"},
			{Title: "Regulation", Field: "regulationId", Width: 160},
			{Title: "Description", Field: "description", Kind: "truncate"},
		},
		Placeholder: "No requirements found matching your filters.",
	}
	for _, r := range reqs {
		g.Rows = append(g.Rows, map[string]any{
			"id":           r.ID,
			"name":         r.Name,
			"category":     r.Category,
			"severity":     string(r.Severity),
			"regulationId": r.RegulationID,
			"description":  r.Description,
		})
	}
	return g
}

func solutionsGrid(sols []model.Solution) Grid {
	g := Grid{
		Columns: []Column{
			{Title: "ID", Field: "id", Width: 180},
			{Title: "Name", Field: "name", Width: 200},
			{Title: "Provider", Field: "provider", Width: 120},
			{Title: "Type", Field: "type", Width: 130, Kind: "badge"},
			{Title: "EU Ownership %", Field: "euOwnershipPercent", Width: 130},
			{Title: "Extraterritorial", Field: "extraterritorial", Width: 110, Kind: "badge"},
			{Title: "Certifications", Field: "certifications"},
		},
		Placeholder: "No solutions found matching your filters.",
	}
	for _, s := range sols {
		row := map[string]any{
			"id":             s.ID,
			"name":           s.Name,
			"provider":       s.Provider,
			"type":           string(s.Type),
			"certifications": strings.Join(s.Certifications, ", "),
		}
		if own := s.OwnershipStructure; own != nil {
			row["euOwnershipPercent"] = own.EUOwnershipPercent
			row["extraterritorial"] = own.SubjectToExtraTerritorialLaw
		}
		g.Rows = append(g.Rows, row)
	}
	return g
}

func mappingsGrid(mappings []model.RequirementMapping) Grid {
	g := Grid{
		Columns: []Column{
			{Title: "Requirement", Field: "requirementId", Width: 220},
			{Title: "Solution", Field: "solutionId", Width: 180},
			{Title: "Compliance", Field: "complianceLevel", Width: 130, Kind: "badge"},
			{Title: "Zone", Field: "zone", Width: 100, Kind: "badge"},
			{Title: "Jurisdictions", Field: "jurisdictions", Width: 140},
			{Title: "Notes", Field: "notes"},
		},
		Placeholder: "No mappings found matching your filters.",
	}
	for _, m := range mappings {
		g.Rows = append(g.Rows, map[string]any{
			"id":              m.ID,
			"requirementId":   m.RequirementID,
			"solutionId":      m.SolutionID,
			"complianceLevel": string(m.ComplianceLevel),
			"zone":            string(m.Zone),
			"jurisdictions":   jurisdictionList(m.JurisdictionIDs),
			"notes":           m.Notes,
		})
	}
	return g
}

// jurisdictionList renders a mapping's jurisdiction scope; the wildcard
// shows as "All".
func jurisdictionList(ids []string) string {
	if len(ids) == 0 {
		return "All"
	}
	return strings.Join(ids, ", ")
}

func zonesGrid(zones []model.ZoneAssignment) Grid {
	g := Grid{
		Columns: []Column{
			{Title: "Solution", Field: "solutionId", Width: 180},
			{Title: "Jurisdiction", Field: "jurisdictionId", Width: 120},
			{Title: "Zone", Field: "zone", Width: 100, Kind: "badge"},
			{Title: "Data Category", Field: "dataCategory", Width: 150},
			{Title: "Entity Type", Field: "entityType", Width: 150},
			{Title: "Rationale", Field: "rationale"},
		},
		Placeholder: "No zone assignments found matching your filters.",
	}
	for _, z := range zones {
		g.Rows = append(g.Rows, map[string]any{
			"id":             z.ID,
			"solutionId":     z.SolutionID,
			"jurisdictionId": z.JurisdictionID,
			"zone":           string(z.Zone),
			"dataCategory":   z.DataCategory,
			"entityType":     z.EntityType,
			"rationale":      z.Rationale,
		})
	}
	return g
}

func enforcementGrid(assessments []model.EnforcementAssessment) Grid {
	g := Grid{
		Columns: []Column{
			{Title: "Jurisdiction", Field: "jurisdictionId", Width: 120},
			{Title: "Regulation", Field: "regulationId", Width: 180},
			{Title: "Likelihood", Field: "likelihood", Width: 120, Kind: "badge"},
			{Title: "Assessment Date", Field: "assessmentDate", Width: 140},
			{Title: "Rationale", Field: "rationale"},
		},
		Placeholder: "No enforcement assessments found matching your filters.",
	}
	for _, e := range assessments {
		g.Rows = append(g.Rows, map[string]any{
			"id":             e.ID,
			"jurisdictionId": e.JurisdictionID,
			"regulationId":   e.RegulationID,
			"likelihood":     string(e.Likelihood),
			"assessmentDate": e.AssessmentDate,
			"rationale":      e.Rationale,
		})
	}
	return g
}
