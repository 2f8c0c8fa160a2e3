// assessments.go holds the join and assessment records: zone assignments,
// requirement/solution mappings, and enforcement assessments.
package model

// ZoneAssignment classifies a solution within a jurisdiction into a
// residency zone, independently of any requirement-level mapping. A mapping
// may carry its own Zone that disagrees with an assignment here; the two are
// authored separately and never reconciled.
type ZoneAssignment struct {
	ID             string   `json:"id"`
	SolutionID     string   `json:"solutionId"`
	JurisdictionID string   `json:"jurisdictionId"`
	Zone           Zone     `json:"zone"`
	DataCategory   string   `json:"dataCategory,omitempty"`
	EntityType     string   `json:"entityType,omitempty"`
	Rationale      string   `json:"rationale,omitempty"`
	RegulationIDs  []string `json:"regulationIds,omitempty"`
}

// RequirementMapping is the central many-to-many join between a requirement
// and a solution. An empty or absent JurisdictionIDs list means the mapping
// applies to every jurisdiction; filtering relies on that convention.
type RequirementMapping struct {
	ID              string          `json:"id"`
	RequirementID   string          `json:"requirementId"`
	SolutionID      string          `json:"solutionId"`
	JurisdictionIDs []string        `json:"jurisdictionIds,omitempty"`
	ComplianceLevel ComplianceLevel `json:"complianceLevel"`
	Zone            Zone            `json:"zone,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	Evidence        []string        `json:"evidence,omitempty"`
	Conditions      string          `json:"conditions,omitempty"`
	ETA             string          `json:"eta,omitempty"`
	AssessmentDate  string          `json:"assessmentDate,omitempty"`
}

// AppliesToJurisdiction reports whether the mapping is in scope for the
// given jurisdiction. An empty JurisdictionIDs list is a wildcard and
// matches everything.
func (m RequirementMapping) AppliesToJurisdiction(jurisdictionID string) bool {
	if len(m.JurisdictionIDs) == 0 {
		return true
	}
	for _, id := range m.JurisdictionIDs {
		if id == jurisdictionID {
			return true
		}
	}
	return false
}

// EnforcementAssessment evaluates how likely a jurisdiction is to enforce a
// regulation or requirement.
type EnforcementAssessment struct {
	ID               string              `json:"id"`
	RequirementID    string              `json:"requirementId,omitempty"`
	RegulationID     string              `json:"regulationId,omitempty"`
	JurisdictionID   string              `json:"jurisdictionId"`
	Likelihood       Likelihood          `json:"likelihood"`
	Rationale        string              `json:"rationale"`
	RecentActions    []EnforcementAction `json:"recentActions,omitempty"`
	RegulatoryTrends string              `json:"regulatoryTrends,omitempty"`
	AssessmentDate   string              `json:"assessmentDate"`
	Assessor         string              `json:"assessor,omitempty"`
}

// EnforcementAction is a concrete enforcement event that has occurred.
type EnforcementAction struct {
	Date        string `json:"date"`
	Entity      string `json:"entity"`
	Description string `json:"description"`
	Penalty     string `json:"penalty,omitempty"`
	Source      string `json:"source,omitempty"`
}
