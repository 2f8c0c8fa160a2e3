// merge.go validates a submission against the framework and converts or
// merges its findings into requirement mappings.
package research

import (
	"fmt"
	"time"

	"github.com/example/comply/internal/model"
)

// ValidationIssue describes one problem with a finding.
type ValidationIssue struct {
	Index   int    `json:"index"`
	Field   string `json:"field"`
	Value   string `json:"value,omitempty"`
	Message string `json:"message"`
}

// ValidationResult separates hard errors from advisory warnings. A
// submission with only warnings is still importable.
type ValidationResult struct {
	Valid        bool              `json:"valid"`
	Errors       []ValidationIssue `json:"errors,omitempty"`
	Warnings     []ValidationIssue `json:"warnings,omitempty"`
	TotalChecked int               `json:"totalChecked"`
}

// Validate checks findings for required fields, legal enum values, and
// whether referenced entities exist in the framework. Unknown solutions,
// controls, and jurisdictions are warnings: research often arrives before
// the entities it covers are authored.
func (in *Input) Validate(fw *model.Framework) *ValidationResult {
	result := &ValidationResult{Valid: true, TotalChecked: len(in.Findings)}

	solutionIDs := make(map[string]struct{}, len(fw.Solutions))
	for _, s := range fw.Solutions {
		solutionIDs[s.ID] = struct{}{}
	}
	requirementIDs := make(map[string]struct{}, len(fw.Requirements))
	for _, r := range fw.Requirements {
		requirementIDs[r.ID] = struct{}{}
	}
	jurisdictionIDs := make(map[string]struct{}, len(fw.Jurisdictions))
	for _, j := range fw.Jurisdictions {
		jurisdictionIDs[j.ID] = struct{}{}
	}

	fail := func(issue ValidationIssue) {
		result.Errors = append(result.Errors, issue)
		result.Valid = false
	}
	warn := func(issue ValidationIssue) {
		result.Warnings = append(result.Warnings, issue)
	}

	for i, f := range in.Findings {
		if f.ControlID == "" {
			fail(ValidationIssue{Index: i, Field: "controlId", Message: "controlId is required"})
		}
		if f.SolutionID == "" {
			fail(ValidationIssue{Index: i, Field: "solutionId", Message: "solutionId is required"})
		}
		if len(f.JurisdictionIDs) == 0 {
			fail(ValidationIssue{Index: i, Field: "jurisdictionIds", Message: "at least one jurisdictionId is required"})
		}

		if _, ok := solutionIDs[f.SolutionID]; !ok && f.SolutionID != "" {
			warn(ValidationIssue{Index: i, Field: "solutionId", Value: f.SolutionID,
				Message: "solution not found in framework (may need to add it)"})
		}
		if _, ok := requirementIDs[f.ControlID]; !ok && f.ControlID != "" {
			warn(ValidationIssue{Index: i, Field: "controlId", Value: f.ControlID,
				Message: "control not found in requirements (may need to add it)"})
		}
		for _, j := range f.JurisdictionIDs {
			if _, ok := jurisdictionIDs[j]; !ok {
				warn(ValidationIssue{Index: i, Field: "jurisdictionIds", Value: j,
					Message: "jurisdiction not found in framework"})
			}
		}

		if f.Status != "unknown" && !model.ComplianceLevel(f.Status).Valid() {
			fail(ValidationIssue{Index: i, Field: "status", Value: f.Status, Message: "invalid status value"})
		}
		if f.Zone != "" && !f.Zone.Valid() {
			fail(ValidationIssue{Index: i, Field: "zone", Value: string(f.Zone), Message: "invalid zone value"})
		}

		if len(f.Evidence) == 0 {
			warn(ValidationIssue{Index: i, Field: "evidence", Message: "no evidence URLs provided"})
		}
	}

	return result
}

// ToMappings converts every finding into a fresh requirement mapping,
// numbered in submission order.
func (in *Input) ToMappings() []model.RequirementMapping {
	mappings := make([]model.RequirementMapping, 0, len(in.Findings))
	for i, f := range in.Findings {
		mappings = append(mappings, model.RequirementMapping{
			ID:              fmt.Sprintf("MAP-RESEARCH-%04d", i+1),
			RequirementID:   f.ControlID,
			SolutionID:      f.SolutionID,
			JurisdictionIDs: f.JurisdictionIDs,
			ComplianceLevel: f.level(),
			Zone:            f.Zone,
			Notes:           f.Notes,
			Evidence:        f.Evidence,
			ETA:             f.ETA,
			AssessmentDate:  in.Metadata.ResearchDate,
		})
	}
	return mappings
}

// MergeResult partitions the outcome of merging findings into an existing
// mapping set.
type MergeResult struct {
	New       []model.RequirementMapping `json:"new"`
	Updated   []model.RequirementMapping `json:"updated"`
	Unchanged []model.RequirementMapping `json:"unchanged"`
}

// Merge folds findings into the existing mappings. A finding that matches
// an existing mapping on (requirement, solution, jurisdiction) updates it in
// place; wildcard mappings match any jurisdiction of the finding. Findings
// with no match become new mappings; existing mappings no finding touched
// are returned unchanged.
func (in *Input) Merge(existing []model.RequirementMapping) MergeResult {
	byKey := make(map[string]*model.RequirementMapping)
	for i := range existing {
		m := &existing[i]
		for _, j := range m.JurisdictionIDs {
			byKey[mergeKey(m.RequirementID, m.SolutionID, j)] = m
		}
		if len(m.JurisdictionIDs) == 0 {
			byKey[mergeKey(m.RequirementID, m.SolutionID, "*")] = m
		}
	}

	var result MergeResult
	touched := make(map[string]bool)

	for _, f := range in.Findings {
		var match *model.RequirementMapping
		for _, j := range f.JurisdictionIDs {
			if m, ok := byKey[mergeKey(f.ControlID, f.SolutionID, j)]; ok {
				match = m
				break
			}
		}
		if match == nil {
			match = byKey[mergeKey(f.ControlID, f.SolutionID, "*")]
		}

		if match != nil {
			touched[match.ID] = true
			updated := *match
			updated.ComplianceLevel = f.level()
			updated.Zone = f.Zone
			updated.Notes = f.Notes
			updated.Evidence = f.Evidence
			updated.ETA = f.ETA
			updated.AssessmentDate = in.Metadata.ResearchDate
			result.Updated = append(result.Updated, updated)
			continue
		}

		result.New = append(result.New, model.RequirementMapping{
			ID:              fmt.Sprintf("MAP-NEW-%s-%s", f.ControlID, f.SolutionID),
			RequirementID:   f.ControlID,
			SolutionID:      f.SolutionID,
			JurisdictionIDs: f.JurisdictionIDs,
			ComplianceLevel: f.level(),
			Zone:            f.Zone,
			Notes:           f.Notes,
			Evidence:        f.Evidence,
			ETA:             f.ETA,
			AssessmentDate:  in.Metadata.ResearchDate,
		})
	}

	for i := range existing {
		if !touched[existing[i].ID] {
			result.Unchanged = append(result.Unchanged, existing[i])
		}
	}
	return result
}

func mergeKey(requirementID, solutionID, jurisdictionID string) string {
	return requirementID + "|" + solutionID + "|" + jurisdictionID
}

// GenerateMappingID builds a dated mapping ID for manual authoring flows.
func GenerateMappingID(prefix string, index int) string {
	return fmt.Sprintf("MAP-%s-%s-%04d", prefix, time.Now().Format("20060102"), index)
}
