// validate.go checks referential integrity across the framework's
// cross-entity links.
package report

import "github.com/example/comply/internal/model"

// ReferenceError records a cross-reference that points at an entity the
// framework does not contain.
type ReferenceError struct {
	Entity string `json:"entity"`
	ID     string `json:"id"`
	Field  string `json:"field"`
	Ref    string `json:"ref"`
}

func (e ReferenceError) String() string {
	return e.Entity + " " + e.ID + " references unknown " + e.Field + ": " + e.Ref
}

// CheckReferences verifies every cross-entity reference in the framework
// resolves. A requirement with an empty regulationId is legal and skipped;
// mappings and zone assignments must always resolve both sides.
func CheckReferences(fw *model.Framework) []ReferenceError {
	regulationIDs := make(map[string]bool, len(fw.Regulations))
	for _, r := range fw.Regulations {
		regulationIDs[r.ID] = true
	}
	requirementIDs := make(map[string]bool, len(fw.Requirements))
	for _, r := range fw.Requirements {
		requirementIDs[r.ID] = true
	}
	solutionIDs := make(map[string]bool, len(fw.Solutions))
	for _, s := range fw.Solutions {
		solutionIDs[s.ID] = true
	}
	jurisdictionIDs := make(map[string]bool, len(fw.Jurisdictions))
	for _, j := range fw.Jurisdictions {
		jurisdictionIDs[j.ID] = true
	}

	var errs []ReferenceError

	for _, req := range fw.Requirements {
		if req.RegulationID != "" && !regulationIDs[req.RegulationID] {
			errs = append(errs, ReferenceError{"requirement", req.ID, "regulation", req.RegulationID})
		}
	}

	for _, m := range fw.Mappings {
		if !solutionIDs[m.SolutionID] {
			errs = append(errs, ReferenceError{"mapping", m.ID, "solution", m.SolutionID})
		}
		if !requirementIDs[m.RequirementID] {
			errs = append(errs, ReferenceError{"mapping", m.ID, "requirement", m.RequirementID})
		}
		for _, jurID := range m.JurisdictionIDs {
			if !jurisdictionIDs[jurID] {
				errs = append(errs, ReferenceError{"mapping", m.ID, "jurisdiction", jurID})
			}
		}
	}

	for _, za := range fw.ZoneAssignments {
		if !solutionIDs[za.SolutionID] {
			errs = append(errs, ReferenceError{"zone assignment", za.ID, "solution", za.SolutionID})
		}
		if !jurisdictionIDs[za.JurisdictionID] {
			errs = append(errs, ReferenceError{"zone assignment", za.ID, "jurisdiction", za.JurisdictionID})
		}
	}

	return errs
}
