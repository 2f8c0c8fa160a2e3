package research

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/example/comply/internal/model"
)

func testInput() *Input {
	return &Input{
		Metadata: Metadata{ResearchDate: "2026-08-01", Researcher: "analyst"},
		Findings: []Finding{
			{
				ControlID: "req-1", SolutionID: "sov-cloud",
				JurisdictionIDs: []string{"EU"},
				Status:          "compliant", Zone: model.ZoneGreen,
				Evidence:   []string{"https://example.com/a"},
				Confidence: ConfidenceHigh,
			},
			{
				ControlID: "req-2", SolutionID: "sov-cloud",
				JurisdictionIDs: []string{"DE"},
				Status:          "partial", Zone: model.ZoneYellow,
				Notes: "pending attestation",
			},
			{
				ControlID: "req-1", SolutionID: "hyper-x",
				JurisdictionIDs: []string{"EU", "DE"},
				Status:          "banned", Zone: model.ZoneRed,
				Evidence: []string{"https://example.com/b"},
			},
		},
	}
}

func testFramework() *model.Framework {
	return &model.Framework{
		Jurisdictions: []model.Jurisdiction{{ID: "EU"}, {ID: "DE", ParentID: "EU"}},
		Requirements:  []model.Requirement{{ID: "req-1"}, {ID: "req-2"}},
		Solutions: []model.Solution{
			{ID: "sov-cloud", JurisdictionIDs: []string{"EU", "DE"}},
			{ID: "hyper-x", JurisdictionIDs: []string{"EU"}},
		},
	}
}

func TestLoadInput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "research.json")
	data, err := json.Marshal(testInput())
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	in, err := LoadInput(path)
	if err != nil {
		t.Fatalf("LoadInput: %v", err)
	}
	if len(in.Findings) != 3 || in.Metadata.Researcher != "analyst" {
		t.Fatalf("unexpected input: %+v", in)
	}

	if _, err := LoadInput(filepath.Join(dir, "missing.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestAnalyze(t *testing.T) {
	a := testInput().Analyze()

	if a.TotalFindings != 3 || a.UniqueControls != 2 || a.UniqueSolutions != 2 {
		t.Fatalf("unexpected analysis: %+v", a)
	}
	if a.StatusBreakdown["compliant"] != 1 || a.StatusBreakdown["partial"] != 1 || a.StatusBreakdown["banned"] != 1 {
		t.Fatalf("unexpected status breakdown: %v", a.StatusBreakdown)
	}
	if a.ConfidenceBreakdown["high"] != 1 || a.ConfidenceBreakdown["unspecified"] != 2 {
		t.Fatalf("unexpected confidence breakdown: %v", a.ConfidenceBreakdown)
	}
	if !reflect.DeepEqual(a.JurisdictionIDs, []string{"DE", "EU"}) {
		t.Fatalf("unexpected jurisdictions: %v", a.JurisdictionIDs)
	}
	if a.WithEvidence != 2 || a.MissingEvidence != 1 {
		t.Fatalf("unexpected evidence counts: %+v", a)
	}
}

func TestAnalysisWriteReport(t *testing.T) {
	var buf bytes.Buffer
	testInput().Analyze().WriteReport(&buf)

	out := buf.String()
	for _, want := range []string{"Total Findings:   3", "Status Breakdown:", "sov-cloud", "req-2"} {
		if !strings.Contains(out, want) {
			t.Fatalf("report missing %q:\n%s", want, out)
		}
	}
}

func TestValidateClean(t *testing.T) {
	result := testInput().Validate(testFramework())

	if !result.Valid || len(result.Errors) != 0 {
		t.Fatalf("expected valid result, got %+v", result)
	}
	// One finding lacks evidence.
	if len(result.Warnings) != 1 || result.Warnings[0].Field != "evidence" {
		t.Fatalf("unexpected warnings: %v", result.Warnings)
	}
	if result.TotalChecked != 3 {
		t.Fatalf("expected 3 checked, got %d", result.TotalChecked)
	}
}

func TestValidateErrors(t *testing.T) {
	in := &Input{Findings: []Finding{
		{SolutionID: "sov-cloud", JurisdictionIDs: []string{"EU"}, Status: "compliant", Evidence: []string{"e"}},
		{ControlID: "req-1", SolutionID: "sov-cloud", JurisdictionIDs: []string{"EU"}, Status: "sorta", Evidence: []string{"e"}},
		{ControlID: "req-1", SolutionID: "sov-cloud", JurisdictionIDs: []string{"EU"}, Status: "compliant", Zone: "purple", Evidence: []string{"e"}},
		{ControlID: "req-1", SolutionID: "sov-cloud", Status: "compliant", Evidence: []string{"e"}},
	}}

	result := in.Validate(testFramework())
	if result.Valid {
		t.Fatal("expected invalid result")
	}

	fields := make(map[string]int)
	for _, e := range result.Errors {
		fields[e.Field]++
	}
	want := map[string]int{"controlId": 1, "status": 1, "zone": 1, "jurisdictionIds": 1}
	if !reflect.DeepEqual(fields, want) {
		t.Fatalf("unexpected error fields: %v", fields)
	}
}

func TestValidateWarnsOnUnknownEntities(t *testing.T) {
	in := &Input{Findings: []Finding{{
		ControlID: "req-new", SolutionID: "sol-new",
		JurisdictionIDs: []string{"XX"},
		Status:          "unknown", Evidence: []string{"e"},
	}}}

	result := in.Validate(testFramework())
	if !result.Valid {
		t.Fatalf("unknown entities must warn, not fail: %+v", result.Errors)
	}
	if len(result.Warnings) != 3 {
		t.Fatalf("expected 3 warnings, got %v", result.Warnings)
	}
}

func TestToMappings(t *testing.T) {
	mappings := testInput().ToMappings()

	if len(mappings) != 3 {
		t.Fatalf("expected 3 mappings, got %d", len(mappings))
	}
	first := mappings[0]
	if first.ID != "MAP-RESEARCH-0001" {
		t.Fatalf("unexpected mapping ID %q", first.ID)
	}
	if first.ComplianceLevel != model.ComplianceFull || first.Zone != model.ZoneGreen {
		t.Fatalf("unexpected mapping: %+v", first)
	}
	if first.AssessmentDate != "2026-08-01" {
		t.Fatalf("assessment date not carried over: %q", first.AssessmentDate)
	}
	if mappings[2].ComplianceLevel != model.ComplianceBanned {
		t.Fatalf("status not converted: %+v", mappings[2])
	}
}

func TestMerge(t *testing.T) {
	existing := []model.RequirementMapping{
		{
			ID: "m-1", RequirementID: "req-1", SolutionID: "sov-cloud",
			JurisdictionIDs: []string{"EU"},
			ComplianceLevel: model.CompliancePartial,
		},
		// Wildcard mapping matches any jurisdiction.
		{
			ID: "m-2", RequirementID: "req-2", SolutionID: "sov-cloud",
			ComplianceLevel: model.ComplianceNone,
		},
		{
			ID: "m-3", RequirementID: "req-9", SolutionID: "hyper-x",
			JurisdictionIDs: []string{"EU"},
		},
	}

	result := testInput().Merge(existing)

	if len(result.Updated) != 2 {
		t.Fatalf("expected 2 updated, got %+v", result.Updated)
	}
	if result.Updated[0].ID != "m-1" || result.Updated[0].ComplianceLevel != model.ComplianceFull {
		t.Fatalf("exact match not updated: %+v", result.Updated[0])
	}
	if result.Updated[1].ID != "m-2" || result.Updated[1].ComplianceLevel != model.CompliancePartial {
		t.Fatalf("wildcard match not updated: %+v", result.Updated[1])
	}

	if len(result.New) != 1 || result.New[0].ID != "MAP-NEW-req-1-hyper-x" {
		t.Fatalf("unexpected new mappings: %+v", result.New)
	}
	if len(result.Unchanged) != 1 || result.Unchanged[0].ID != "m-3" {
		t.Fatalf("unexpected unchanged mappings: %+v", result.Unchanged)
	}
}
