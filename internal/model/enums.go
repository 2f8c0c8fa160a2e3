// enums.go defines the closed string enumerations used across the framework
// data model. Source data is authored by hand, so every enumeration keeps its
// raw wire value and exposes Valid/Known helpers instead of rejecting unknown
// values at decode time; formatters branch on the recognized set and style
// anything else as unrecognized.
package model

// JurisdictionType classifies a jurisdiction.
type JurisdictionType string

const (
	JurisdictionCountry       JurisdictionType = "country"
	JurisdictionRegion        JurisdictionType = "region"
	JurisdictionSupranational JurisdictionType = "supranational"
)

// Valid reports whether t is one of the recognized jurisdiction types.
func (t JurisdictionType) Valid() bool {
	switch t {
	case JurisdictionCountry, JurisdictionRegion, JurisdictionSupranational:
		return true
	}
	return false
}

// RegulationStatus tracks where a regulation sits in its lifecycle.
type RegulationStatus string

const (
	RegulationDraft       RegulationStatus = "draft"
	RegulationAdopted     RegulationStatus = "adopted"
	RegulationEnforceable RegulationStatus = "enforceable"
	RegulationSuperseded  RegulationStatus = "superseded"
)

// Valid reports whether s is one of the recognized statuses.
func (s RegulationStatus) Valid() bool {
	switch s {
	case RegulationDraft, RegulationAdopted, RegulationEnforceable, RegulationSuperseded:
		return true
	}
	return false
}

// Severity ranks how serious a requirement is.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// Valid reports whether s is one of the recognized severities.
func (s Severity) Valid() bool {
	switch s {
	case SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow:
		return true
	}
	return false
}

// SolutionType classifies a cloud solution offering.
type SolutionType string

const (
	SolutionCommercial      SolutionType = "commercial"
	SolutionGovCloud        SolutionType = "govcloud"
	SolutionSovereign       SolutionType = "sovereign"
	SolutionNationalPartner SolutionType = "national-partner"
	SolutionPrivate         SolutionType = "private"
)

// Valid reports whether t is one of the recognized solution types.
func (t SolutionType) Valid() bool {
	switch t {
	case SolutionCommercial, SolutionGovCloud, SolutionSovereign, SolutionNationalPartner, SolutionPrivate:
		return true
	}
	return false
}

// Priority returns the heatmap column ordering rank for the type: sovereign
// offerings sort first, private clouds last. Unrecognized or missing types
// rank alongside commercial.
func (t SolutionType) Priority() int {
	switch t {
	case SolutionSovereign:
		return 0
	case SolutionNationalPartner:
		return 1
	case SolutionGovCloud:
		return 2
	case SolutionCommercial:
		return 3
	case SolutionPrivate:
		return 4
	default:
		return 3
	}
}

// Zone is the red/yellow/green data-residency classification applied to a
// solution within a jurisdiction.
type Zone string

const (
	ZoneRed    Zone = "red"
	ZoneYellow Zone = "yellow"
	ZoneGreen  Zone = "green"
)

// Valid reports whether z is one of the recognized zones.
func (z Zone) Valid() bool {
	switch z {
	case ZoneRed, ZoneYellow, ZoneGreen:
		return true
	}
	return false
}

// ComplianceLevel is the assessed fit of a solution against a requirement.
type ComplianceLevel string

const (
	ComplianceFull        ComplianceLevel = "compliant"
	CompliancePartial     ComplianceLevel = "partial"
	ComplianceNone        ComplianceLevel = "non-compliant"
	ComplianceConditional ComplianceLevel = "conditional"
	ComplianceBanned      ComplianceLevel = "banned"
)

// Valid reports whether l is one of the recognized compliance levels.
func (l ComplianceLevel) Valid() bool {
	switch l {
	case ComplianceFull, CompliancePartial, ComplianceNone, ComplianceConditional, ComplianceBanned:
		return true
	}
	return false
}

// Bucket groups compliance levels for the heatmap drill-down panel.
type Bucket int

const (
	BucketCompliant Bucket = iota
	BucketConditional
	BucketBanned
	BucketUnrecognized
)

func (b Bucket) String() string {
	switch b {
	case BucketCompliant:
		return "compliant"
	case BucketConditional:
		return "conditional"
	case BucketBanned:
		return "banned"
	default:
		return "unrecognized"
	}
}

// Bucket returns the drill-down group for the level: full compliance stands
// alone, partial and conditional share the middle group, and non-compliant
// joins banned. Unrecognized levels get their own bucket so they are never
// silently presented as one of the real groups.
func (l ComplianceLevel) Bucket() Bucket {
	switch l {
	case ComplianceFull:
		return BucketCompliant
	case CompliancePartial, ComplianceConditional:
		return BucketConditional
	case ComplianceNone, ComplianceBanned:
		return BucketBanned
	default:
		return BucketUnrecognized
	}
}

// Icon returns the single-character indicator rendered in heatmap cells.
func (l ComplianceLevel) Icon() string {
	switch l {
	case ComplianceFull:
		return "✓"
	case CompliancePartial:
		return "◐"
	case ComplianceConditional:
		return "?"
	case ComplianceNone:
		return "✗"
	case ComplianceBanned:
		return "⊘"
	default:
		return "-"
	}
}

// Likelihood estimates how probable enforcement action is.
type Likelihood string

const (
	LikelihoodHigh      Likelihood = "high"
	LikelihoodMedium    Likelihood = "medium"
	LikelihoodLow       Likelihood = "low"
	LikelihoodUncertain Likelihood = "uncertain"
)

// Valid reports whether l is one of the recognized likelihoods.
func (l Likelihood) Valid() bool {
	switch l {
	case LikelihoodHigh, LikelihoodMedium, LikelihoodLow, LikelihoodUncertain:
		return true
	}
	return false
}
