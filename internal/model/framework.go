// framework.go defines the aggregate root and its lookup helpers. Datasets
// are small (hundreds of records), so lookups are linear scans; no index is
// maintained and none is needed.
package model

// Metadata describes a framework dataset as a whole.
type Metadata struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Description string `json:"description,omitempty"`
	LastUpdated string `json:"lastUpdated,omitempty"`
}

// Framework is the top-level container for a loaded compliance dataset. A
// load builds a complete Framework and swaps it in atomically; partial
// updates never happen.
type Framework struct {
	Metadata               Metadata                `json:"metadata"`
	Jurisdictions          []Jurisdiction          `json:"jurisdictions"`
	Regulations            []Regulation            `json:"regulations"`
	Requirements           []Requirement           `json:"requirements"`
	RegulatedEntities      []RegulatedEntity       `json:"regulatedEntities"`
	Solutions              []Solution              `json:"solutions"`
	ZoneAssignments        []ZoneAssignment        `json:"zoneAssignments"`
	Mappings               []RequirementMapping    `json:"mappings"`
	EnforcementAssessments []EnforcementAssessment `json:"enforcementAssessments"`
}

// Empty returns a framework with no data, the state before any load.
func Empty() *Framework {
	return &Framework{}
}

// Jurisdiction returns the jurisdiction with the given id, or nil.
func (f *Framework) Jurisdiction(id string) *Jurisdiction {
	for i := range f.Jurisdictions {
		if f.Jurisdictions[i].ID == id {
			return &f.Jurisdictions[i]
		}
	}
	return nil
}

// Regulation returns the regulation with the given id, or nil.
func (f *Framework) Regulation(id string) *Regulation {
	for i := range f.Regulations {
		if f.Regulations[i].ID == id {
			return &f.Regulations[i]
		}
	}
	return nil
}

// Requirement returns the requirement with the given id, or nil.
func (f *Framework) Requirement(id string) *Requirement {
	for i := range f.Requirements {
		if f.Requirements[i].ID == id {
			return &f.Requirements[i]
		}
	}
	return nil
}

// Solution returns the solution with the given id, or nil.
func (f *Framework) Solution(id string) *Solution {
	for i := range f.Solutions {
		if f.Solutions[i].ID == id {
			return &f.Solutions[i]
		}
	}
	return nil
}

// MappingsForRequirement returns every mapping that assesses the given
// requirement.
func (f *Framework) MappingsForRequirement(requirementID string) []RequirementMapping {
	var out []RequirementMapping
	for _, m := range f.Mappings {
		if m.RequirementID == requirementID {
			out = append(out, m)
		}
	}
	return out
}

// MappingsForSolution returns every mapping that assesses the given
// solution.
func (f *Framework) MappingsForSolution(solutionID string) []RequirementMapping {
	var out []RequirementMapping
	for _, m := range f.Mappings {
		if m.SolutionID == solutionID {
			out = append(out, m)
		}
	}
	return out
}

// ZonesForSolution returns the zone assignments recorded for a solution.
func (f *Framework) ZonesForSolution(solutionID string) []ZoneAssignment {
	var out []ZoneAssignment
	for _, z := range f.ZoneAssignments {
		if z.SolutionID == solutionID {
			out = append(out, z)
		}
	}
	return out
}

// RequirementsForRegulation returns the requirements belonging to the given
// regulation.
func (f *Framework) RequirementsForRegulation(regulationID string) []Requirement {
	var out []Requirement
	for _, r := range f.Requirements {
		if r.RegulationID == regulationID {
			out = append(out, r)
		}
	}
	return out
}

// SolutionName resolves a solution id to its display name, falling back to
// the raw id when the solution is unknown. Dangling references degrade to
// the id everywhere, by contract.
func (f *Framework) SolutionName(id string) string {
	if s := f.Solution(id); s != nil && s.Name != "" {
		return s.Name
	}
	return id
}

// RegulationShortName resolves a regulation id to its short name, falling
// back to the raw id.
func (f *Framework) RegulationShortName(id string) string {
	if r := f.Regulation(id); r != nil && r.ShortName != "" {
		return r.ShortName
	}
	return id
}

// JurisdictionName resolves a jurisdiction id to its display name, falling
// back to the raw id.
func (f *Framework) JurisdictionName(id string) string {
	if j := f.Jurisdiction(id); j != nil && j.Name != "" {
		return j.Name
	}
	return id
}
