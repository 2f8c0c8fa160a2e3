// entities.go holds the catalog entities of a compliance framework:
// jurisdictions, regulations and their sections, requirements, regulated
// entities, and solutions. All cross-references are soft string ids; nothing
// here enforces referential integrity, consumers resolve ids and fall back to
// the raw value when the target is missing.
package model

// Jurisdiction is a legal jurisdiction: a country, a sub-national region, or
// a supranational body such as the EU. ParentID and MemberIDs are both
// authored fields; neither is derived from the other and they are not kept
// consistent.
type Jurisdiction struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Type        JurisdictionType `json:"type"`
	ISO3166     string           `json:"iso3166,omitempty"`
	ParentID    string           `json:"parentId,omitempty"`
	MemberIDs   []string         `json:"memberIds,omitempty"`
	Description string           `json:"description,omitempty"`
}

// Regulation is a compliance regulation or directive.
type Regulation struct {
	ID                string            `json:"id"`
	Name              string            `json:"name"`
	ShortName         string            `json:"shortName"`
	Description       string            `json:"description"`
	JurisdictionID    string            `json:"jurisdictionId"`
	Status            RegulationStatus  `json:"status"`
	AdoptedDate       string            `json:"adoptedDate,omitempty"`
	EffectiveDate     string            `json:"effectiveDate,omitempty"`
	EnforcementDate   string            `json:"enforcementDate,omitempty"`
	OfficialURL       string            `json:"officialUrl,omitempty"`
	Sections          []Section         `json:"sections,omitempty"`
	RegulatedEntities []RegulatedEntity `json:"regulatedEntities,omitempty"`
	ExternalRefs      []ExternalRef     `json:"externalRefs,omitempty"`
	Tags              []string          `json:"tags,omitempty"`
}

// Section is an article or chapter within a regulation. RequirementIDs is a
// denormalized convenience; the authoritative requirement→regulation link
// lives on Requirement.RegulationID.
type Section struct {
	ID             string   `json:"id"`
	RegulationID   string   `json:"regulationId"`
	Number         string   `json:"number"`
	Name           string   `json:"name"`
	Description    string   `json:"description,omitempty"`
	ParentID       string   `json:"parentId,omitempty"`
	RequirementIDs []string `json:"requirementIds,omitempty"`
}

// Requirement is a single compliance obligation extracted from a regulation.
type Requirement struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	RegulationID  string         `json:"regulationId"`
	SectionID     string         `json:"sectionId,omitempty"`
	Category      string         `json:"category,omitempty"`
	Subcategory   string         `json:"subcategory,omitempty"`
	Severity      Severity       `json:"severity,omitempty"`
	Keywords      []string       `json:"keywords,omitempty"`
	RelatedIDs    []string       `json:"relatedIds,omitempty"`
	ExternalRefs  []ExternalRef  `json:"externalRefs,omitempty"`
	EffectiveDate string         `json:"effectiveDate,omitempty"`
	Applicability *Applicability `json:"applicability,omitempty"`
}

// Applicability narrows when a requirement applies.
type Applicability struct {
	EntityTypes []string `json:"entityTypes,omitempty"`
	Sectors     []string `json:"sectors,omitempty"`
	DataTypes   []string `json:"dataTypes,omitempty"`
	Conditions  string   `json:"conditions,omitempty"`
}

// RegulatedEntity describes a class of organization a regulation applies to.
type RegulatedEntity struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	RegulationID string   `json:"regulationId"`
	Sectors      []string `json:"sectors,omitempty"`
	Criteria     string   `json:"criteria,omitempty"`
	Examples     []string `json:"examples,omitempty"`
}

// Solution is a cloud solution or service offering under assessment.
type Solution struct {
	ID                 string              `json:"id"`
	Name               string              `json:"name"`
	Provider           string              `json:"provider"`
	Type               SolutionType        `json:"type"`
	Description        string              `json:"description,omitempty"`
	AvailableRegions   []string            `json:"availableRegions,omitempty"`
	Certifications     []string            `json:"certifications,omitempty"`
	OwnershipStructure *OwnershipStructure `json:"ownershipStructure,omitempty"`
	JurisdictionIDs    []string            `json:"jurisdictionIds,omitempty"`
	ExternalRefs       []ExternalRef       `json:"externalRefs,omitempty"`
}

// OwnershipStructure captures the ownership facts sovereignty assessments
// hinge on: EU ownership share, the largest single non-EU shareholder, and
// exposure to extraterritorial law such as the CLOUD Act.
type OwnershipStructure struct {
	EUOwnershipPercent           float64 `json:"euOwnershipPercent"`
	LargestNonEUPercent          float64 `json:"largestNonEuPercent"`
	SubjectToExtraTerritorialLaw bool    `json:"subjectToExtraTerritorialLaw"`
	ControllingEntity            string  `json:"controllingEntity,omitempty"`
	Notes                        string  `json:"notes,omitempty"`
}

// ExternalRefType classifies an external reference.
type ExternalRefType string

const (
	RefTypeURL        ExternalRefType = "url"
	RefTypeCitation   ExternalRefType = "citation"
	RefTypeRegulation ExternalRefType = "regulation"
	RefTypeStandard   ExternalRefType = "standard"
)

// ExternalRef points at supporting material outside the dataset.
type ExternalRef struct {
	Type  ExternalRefType `json:"type"`
	Value string          `json:"value"`
	Name  string          `json:"name,omitempty"`
	Notes string          `json:"notes,omitempty"`
}
