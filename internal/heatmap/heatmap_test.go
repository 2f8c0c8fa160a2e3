package heatmap

import (
	"reflect"
	"testing"

	"github.com/example/comply/internal/model"
	"github.com/example/comply/internal/state"
)

var (
	testRequirements = []model.Requirement{
		{ID: "gdpr-44", Name: "Transfers", RegulationID: "gdpr", Category: "transfer", SectionID: "ART-44"},
		{ID: "gdpr-32", Name: "Security of processing", RegulationID: "gdpr", Category: "security"},
		{ID: "bdsg-22", Name: "Special categories", RegulationID: "bdsg", Category: "security"},
	}
	testSolutions = []model.Solution{
		{ID: "hyper-x", Name: "HyperX Cloud", Type: model.SolutionCommercial},
		{ID: "sov-cloud", Name: "SovCloud", Type: model.SolutionSovereign},
		{ID: "gov-y", Name: "GovY", Type: model.SolutionGovCloud},
	}
	testRegulations = []model.Regulation{
		{ID: "gdpr", Name: "General Data Protection Regulation", ShortName: "GDPR"},
		{ID: "bdsg", Name: "Bundesdatenschutzgesetz", ShortName: "BDSG"},
	}
)

func rowIDs(m Matrix) []string {
	ids := make([]string, len(m.Rows))
	for i, r := range m.Rows {
		ids[i] = r.RequirementID
	}
	return ids
}

func colIDs(m Matrix) []string {
	ids := make([]string, len(m.Columns))
	for i, c := range m.Columns {
		ids[i] = c.SolutionID
	}
	return ids
}

func TestBuildRowAndColumnOrder(t *testing.T) {
	mappings := []model.RequirementMapping{
		{ID: "m-1", RequirementID: "gdpr-44", SolutionID: "hyper-x", ComplianceLevel: model.ComplianceNone},
		{ID: "m-2", RequirementID: "bdsg-22", SolutionID: "sov-cloud", ComplianceLevel: model.ComplianceFull},
		{ID: "m-3", RequirementID: "gdpr-32", SolutionID: "gov-y", ComplianceLevel: model.CompliancePartial},
	}
	m := Build(mappings, testRequirements, testSolutions, testRegulations, nil)

	// Rows sort by regulation, then category, then id.
	if got, want := rowIDs(m), []string{"bdsg-22", "gdpr-32", "gdpr-44"}; !reflect.DeepEqual(got, want) {
		t.Errorf("rows: got %v, want %v", got, want)
	}
	// Columns sort sovereign before govcloud before commercial.
	if got, want := colIDs(m), []string{"sov-cloud", "gov-y", "hyper-x"}; !reflect.DeepEqual(got, want) {
		t.Errorf("columns: got %v, want %v", got, want)
	}
}

func TestBuildOnlyMappedIDsAppear(t *testing.T) {
	mappings := []model.RequirementMapping{
		{ID: "m-1", RequirementID: "gdpr-32", SolutionID: "sov-cloud", ComplianceLevel: model.ComplianceFull},
	}
	m := Build(mappings, testRequirements, testSolutions, testRegulations, nil)
	if len(m.Rows) != 1 || len(m.Columns) != 1 {
		t.Fatalf("got %d rows and %d columns, want 1 and 1", len(m.Rows), len(m.Columns))
	}
}

func TestBuildDanglingIDsGetFallbacks(t *testing.T) {
	mappings := []model.RequirementMapping{
		{ID: "m-1", RequirementID: "ghost-req", SolutionID: "ghost-sol-alpha", ComplianceLevel: model.ComplianceFull},
	}
	m := Build(mappings, testRequirements, testSolutions, testRegulations, nil)
	row := m.Rows[0]
	if row.RegulationID != "unknown" || row.RegulationShort != "unknown" {
		t.Errorf("dangling requirement: got regulation %q/%q", row.RegulationID, row.RegulationShort)
	}
	if row.ControlDisplay != "ghost-req" {
		t.Errorf("control display: got %q, want raw id", row.ControlDisplay)
	}
	col := m.Columns[0]
	if col.Title != "ghost-sol-alpha" {
		t.Errorf("column title: got %q, want raw id", col.Title)
	}
	// Short name falls back to the last dash segment of the id.
	if col.ShortName != "alpha" {
		t.Errorf("column short name: got %q, want alpha", col.ShortName)
	}
}

func TestBuildLastWriteWinsOnDuplicateCell(t *testing.T) {
	mappings := []model.RequirementMapping{
		{ID: "m-old", RequirementID: "gdpr-32", SolutionID: "sov-cloud", ComplianceLevel: model.ComplianceNone},
		{ID: "m-new", RequirementID: "gdpr-32", SolutionID: "sov-cloud", ComplianceLevel: model.ComplianceFull},
	}
	m := Build(mappings, testRequirements, testSolutions, testRegulations, nil)
	cell := m.Rows[0].Cells[0]
	if cell.Level != model.ComplianceFull {
		t.Fatalf("got level %q, want the later mapping to win", cell.Level)
	}
}

func TestBuildAbsentCellIsExplicitUnknown(t *testing.T) {
	mappings := []model.RequirementMapping{
		{ID: "m-1", RequirementID: "gdpr-32", SolutionID: "sov-cloud", ComplianceLevel: model.ComplianceFull},
		{ID: "m-2", RequirementID: "gdpr-44", SolutionID: "hyper-x", ComplianceLevel: model.ComplianceNone},
	}
	m := Build(mappings, testRequirements, testSolutions, testRegulations, nil)
	for _, row := range m.Rows {
		if len(row.Cells) != len(m.Columns) {
			t.Fatalf("row %s: %d cells for %d columns", row.RequirementID, len(row.Cells), len(m.Columns))
		}
	}
	// gdpr-32 × hyper-x has no mapping.
	var found bool
	for i, col := range m.Columns {
		if col.SolutionID != "hyper-x" {
			continue
		}
		for _, row := range m.Rows {
			if row.RequirementID == "gdpr-32" {
				cell := row.Cells[i]
				if cell.Known {
					t.Error("unmapped pair marked known")
				}
				if cell.Icon != "?" {
					t.Errorf("unknown cell icon: got %q", cell.Icon)
				}
				found = true
			}
		}
	}
	if !found {
		t.Fatal("pair under test not present in matrix")
	}
}

func TestBuildRowJurisdictionUnion(t *testing.T) {
	mappings := []model.RequirementMapping{
		{ID: "m-1", RequirementID: "gdpr-32", SolutionID: "sov-cloud", JurisdictionIDs: []string{"FR", "DE"}, ComplianceLevel: model.ComplianceFull},
		{ID: "m-2", RequirementID: "gdpr-32", SolutionID: "hyper-x", JurisdictionIDs: []string{"DE", "US"}, ComplianceLevel: model.ComplianceNone},
	}
	m := Build(mappings, testRequirements, testSolutions, testRegulations, nil)
	if got, want := m.Rows[0].Jurisdictions, []string{"DE", "FR", "US"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestBuildDetailBuckets(t *testing.T) {
	mappings := []model.RequirementMapping{
		{ID: "m-1", RequirementID: "gdpr-32", SolutionID: "sov-cloud", ComplianceLevel: model.ComplianceFull},
		{ID: "m-2", RequirementID: "gdpr-32", SolutionID: "hyper-x", ComplianceLevel: model.ComplianceBanned},
		{ID: "m-3", RequirementID: "gdpr-32", SolutionID: "gov-y", ComplianceLevel: model.ComplianceConditional},
	}
	m := Build(mappings, testRequirements, testSolutions, testRegulations, nil)
	d := m.Rows[0].Detail
	if len(d.Compliant) != 1 || d.Compliant[0].SolutionName != "SovCloud" {
		t.Errorf("compliant bucket: %+v", d.Compliant)
	}
	if len(d.Conditional) != 1 || d.Conditional[0].SolutionName != "GovY" {
		t.Errorf("conditional bucket: %+v", d.Conditional)
	}
	if len(d.Banned) != 1 || d.Banned[0].SolutionName != "HyperX Cloud" {
		t.Errorf("banned bucket: %+v", d.Banned)
	}
}

func TestBuildExpandedMembership(t *testing.T) {
	mappings := []model.RequirementMapping{
		{ID: "m-1", RequirementID: "gdpr-32", SolutionID: "sov-cloud", ComplianceLevel: model.ComplianceFull},
		{ID: "m-2", RequirementID: "gdpr-44", SolutionID: "sov-cloud", ComplianceLevel: model.ComplianceFull},
	}
	m := Build(mappings, testRequirements, testSolutions, testRegulations, state.NewSelection([]string{"gdpr-44"}))
	for _, row := range m.Rows {
		want := row.RequirementID == "gdpr-44"
		if row.Expanded != want {
			t.Errorf("row %s: expanded=%v, want %v", row.RequirementID, row.Expanded, want)
		}
	}
}

func TestControlDisplay(t *testing.T) {
	tests := []struct {
		req  *model.Requirement
		id   string
		want string
	}{
		{&model.Requirement{SectionID: "GDPR-ART-44"}, "gdpr-44", "GDPR Art. 44"},
		{&model.Requirement{SectionID: "art-9"}, "x", "Art. 9"},
		{&model.Requirement{Name: "Security of processing"}, "gdpr-32", "Security of processing"},
		{&model.Requirement{}, "gdpr-32", "gdpr-32"},
		{nil, "ghost", "ghost"},
	}
	for _, tt := range tests {
		if got := ControlDisplay(tt.req, tt.id); got != tt.want {
			t.Errorf("ControlDisplay(%+v, %q) = %q, want %q", tt.req, tt.id, got, tt.want)
		}
	}
}

func TestShortColumnName(t *testing.T) {
	tests := []struct {
		sol  *model.Solution
		id   string
		want string
	}{
		{&model.Solution{Name: "HyperX Cloud Platform"}, "hyper-x", "HyperX"},
		{&model.Solution{}, "acme-sov-cloud", "cloud"},
		{nil, "standalone", "standalone"},
	}
	for _, tt := range tests {
		if got := ShortColumnName(tt.sol, tt.id); got != tt.want {
			t.Errorf("ShortColumnName(%+v, %q) = %q, want %q", tt.sol, tt.id, got, tt.want)
		}
	}
}

func TestZoneViewSections(t *testing.T) {
	mappings := []model.RequirementMapping{
		{ID: "m-1", Zone: model.ZoneRed},
		{ID: "m-2", Zone: model.ZoneGreen},
		{ID: "m-3", Zone: model.ZoneGreen},
		{ID: "m-4"},
	}
	sections := ZoneView(mappings)
	if len(sections) != 3 {
		t.Fatalf("got %d sections, want 3", len(sections))
	}
	if sections[0].Zone != model.ZoneGreen || len(sections[0].Mappings) != 2 {
		t.Errorf("green: %+v", sections[0])
	}
	if sections[1].Zone != model.ZoneYellow || len(sections[1].Mappings) != 0 {
		t.Errorf("yellow: %+v", sections[1])
	}
	if sections[2].Zone != model.ZoneRed || len(sections[2].Mappings) != 1 {
		t.Errorf("red: %+v", sections[2])
	}
}
