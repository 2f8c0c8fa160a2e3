// overview.go models the executive-overview aggregate. It is loaded
// independently of the framework and its absence is a displayed state, not
// an error.
package model

// ExecutiveOverview carries market-segment analysis and provider-readiness
// data for the overview tab.
type ExecutiveOverview struct {
	Metadata          OverviewMetadata   `json:"metadata"`
	Segments          []MarketSegment    `json:"segments"`
	ProviderReadiness []ProviderReadiness `json:"providerReadiness,omitempty"`
	RegulatoryContext *RegulatoryContext `json:"regulatoryContext,omitempty"`
	Outlook           *Outlook           `json:"outlook,omitempty"`
	KeyTakeaways      []string           `json:"keyTakeaways,omitempty"`
	Glossary          map[string]string  `json:"glossary,omitempty"`
}

// OverviewMetadata describes the overview document itself.
type OverviewMetadata struct {
	Title       string `json:"title"`
	Version     string `json:"version"`
	LastUpdated string `json:"lastUpdated"`
	Analyst     string `json:"analyst,omitempty"`
	Scope       string `json:"scope,omitempty"`
}

// SegmentType classifies a market segment.
type SegmentType string

const (
	SegmentCommercial SegmentType = "commercial"
	SegmentRegulated  SegmentType = "regulated"
	SegmentGovernment SegmentType = "government"
)

// Priority ranks a key requirement within a segment.
type Priority string

const (
	PriorityMustHave   Priority = "must-have"
	PriorityShouldHave Priority = "should-have"
	PriorityNiceToHave Priority = "nice-to-have"
)

// EnforcementStatus tracks whether a key requirement is already enforced.
type EnforcementStatus string

const (
	EnforcementEnforced EnforcementStatus = "enforced"
	EnforcementUpcoming EnforcementStatus = "upcoming"
	EnforcementProposed EnforcementStatus = "proposed"
	EnforcementGuidance EnforcementStatus = "guidance"
)

// ProviderStatus summarizes a provider's readiness.
type ProviderStatus string

const (
	ProviderReady     ProviderStatus = "ready"
	ProviderPartial   ProviderStatus = "partial"
	ProviderPlanned   ProviderStatus = "planned"
	ProviderNotViable ProviderStatus = "not-viable"
)

// RiskLevel grades a segment's compliance risk.
type RiskLevel string

const (
	RiskCritical RiskLevel = "critical"
	RiskHigh     RiskLevel = "high"
	RiskMedium   RiskLevel = "medium"
	RiskLow      RiskLevel = "low"
)

// MarketSegment is one slice of the market with its own requirement and
// provider picture.
type MarketSegment struct {
	ID                    string               `json:"id"`
	Name                  string               `json:"name"`
	Type                  SegmentType          `json:"type"`
	Description           string               `json:"description,omitempty"`
	Industries            []string             `json:"industries,omitempty"`
	Jurisdictions         []string             `json:"jurisdictions"`
	ApplicableRegulations []string             `json:"applicableRegulations,omitempty"`
	RiskLevel             RiskLevel            `json:"riskLevel,omitempty"`
	Summary               string               `json:"summary,omitempty"`
	KeyRequirements       []KeyRequirement     `json:"keyRequirements"`
	ProviderAssessments   []SegmentAssessment  `json:"providerAssessments,omitempty"`
}

// KeyRequirement highlights a requirement that drives the segment.
type KeyRequirement struct {
	ID                string            `json:"id"`
	Name              string            `json:"name"`
	Description       string            `json:"description,omitempty"`
	Priority          Priority          `json:"priority"`
	Status            EnforcementStatus `json:"status"`
	EffectiveDate     string            `json:"effectiveDate,omitempty"`
	SourceRegulations []string          `json:"sourceRegulations,omitempty"`
	ControlIDs        []string          `json:"controlIds,omitempty"`
	Impact            string            `json:"impact,omitempty"`
}

// SegmentAssessment is one provider's standing within a segment.
type SegmentAssessment struct {
	SolutionID    string         `json:"solutionId"`
	OverallStatus ProviderStatus `json:"overallStatus"`
	Zone          Zone           `json:"zone,omitempty"`
	Gaps          []string       `json:"gaps,omitempty"`
	Strengths     []string       `json:"strengths,omitempty"`
	ETA           string         `json:"eta,omitempty"`
	Notes         string         `json:"notes,omitempty"`
}

// ProviderReadiness summarizes one provider across all segments.
type ProviderReadiness struct {
	SolutionID        string             `json:"solutionId"`
	Provider          string             `json:"provider"`
	Type              string             `json:"type,omitempty"`
	SegmentReadiness  *SegmentReadiness  `json:"segmentReadiness,omitempty"`
	Certifications    []string           `json:"certifications,omitempty"`
	SovereigntyStatus *SovereigntyStatus `json:"sovereigntyStatus,omitempty"`
	KeyStrengths      []string           `json:"keyStrengths,omitempty"`
	KeyLimitations    []string           `json:"keyLimitations,omitempty"`
}

// SegmentReadiness is readiness broken down by segment type.
type SegmentReadiness struct {
	Commercial ProviderStatus `json:"commercial,omitempty"`
	Regulated  ProviderStatus `json:"regulated,omitempty"`
	Government ProviderStatus `json:"government,omitempty"`
}

// SovereigntyStatus captures a provider's sovereignty posture.
type SovereigntyStatus struct {
	EUOwned              bool   `json:"euOwned,omitempty"`
	CloudActImmune       bool   `json:"cloudActImmune,omitempty"`
	SecNumCloudCertified bool   `json:"secNumCloudCertified,omitempty"`
	SecNumCloudPlanned   bool   `json:"secNumCloudPlanned,omitempty"`
	SecNumCloudETA       string `json:"secNumCloudEta,omitempty"`
}

// RegulatoryContext explains the landscape behind the dataset.
type RegulatoryContext struct {
	Overview     string             `json:"overview,omitempty"`
	KeyDrivers   []RegulatoryDriver `json:"keyDrivers,omitempty"`
	Implications []string           `json:"implications,omitempty"`
}

// RegulatoryDriver is one force shaping the regulatory landscape.
type RegulatoryDriver struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	Impact        string `json:"impact,omitempty"`
	EffectiveDate string `json:"effectiveDate,omitempty"`
}

// Outlook projects expected developments over time.
type Outlook struct {
	Summary    string         `json:"summary,omitempty"`
	ShortTerm  *OutlookPeriod `json:"shortTerm,omitempty"`
	MediumTerm *OutlookPeriod `json:"mediumTerm,omitempty"`
	LongTerm   *OutlookPeriod `json:"longTerm,omitempty"`
}

// OutlookPeriod lists developments expected within one time horizon.
type OutlookPeriod struct {
	Timeframe    string   `json:"timeframe,omitempty"`
	Developments []string `json:"developments,omitempty"`
}
