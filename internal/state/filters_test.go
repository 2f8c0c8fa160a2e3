package state

import (
	"testing"

	"github.com/example/comply/internal/model"
)

func testFramework() *model.Framework {
	return &model.Framework{
		Metadata: model.Metadata{Name: "Test Framework", Version: "1.0.0"},
		Jurisdictions: []model.Jurisdiction{
			{ID: "EU", Name: "European Union", Type: model.JurisdictionSupranational},
			{ID: "DE", Name: "Germany", Type: model.JurisdictionCountry, ParentID: "EU"},
			{ID: "FR", Name: "France", Type: model.JurisdictionCountry, ParentID: "EU"},
			{ID: "US", Name: "United States", Type: model.JurisdictionCountry},
		},
		Regulations: []model.Regulation{
			{ID: "gdpr", Name: "General Data Protection Regulation", ShortName: "GDPR", JurisdictionID: "EU"},
			{ID: "bdsg", Name: "Bundesdatenschutzgesetz", ShortName: "BDSG", JurisdictionID: "DE"},
			{ID: "cloud-act", Name: "CLOUD Act", JurisdictionID: "US", Description: "extraterritorial access"},
		},
		Requirements: []model.Requirement{
			{ID: "gdpr-32", RegulationID: "gdpr", Name: "Security of processing", Category: "security"},
			{ID: "gdpr-44", RegulationID: "gdpr", Name: "Transfers", Category: "transfer"},
			{ID: "bdsg-22", RegulationID: "bdsg", Name: "Special categories", Category: "security"},
		},
		Solutions: []model.Solution{
			{ID: "sov-cloud", Name: "SovCloud", Provider: "Acme", Type: model.SolutionSovereign, JurisdictionIDs: []string{"DE", "EU"}},
			{ID: "hyper-x", Name: "HyperX", Provider: "Globex", Type: model.SolutionCommercial},
		},
		ZoneAssignments: []model.ZoneAssignment{
			{ID: "za-1", SolutionID: "sov-cloud", JurisdictionID: "DE", Zone: model.ZoneGreen, DataCategory: "health"},
			{ID: "za-2", SolutionID: "hyper-x", JurisdictionID: "US", Zone: model.ZoneRed, Rationale: "subject to disclosure orders"},
		},
		Mappings: []model.RequirementMapping{
			{ID: "m-1", RequirementID: "gdpr-32", SolutionID: "sov-cloud", ComplianceLevel: model.ComplianceFull, Zone: model.ZoneGreen},
			{ID: "m-2", RequirementID: "gdpr-44", SolutionID: "hyper-x", JurisdictionIDs: []string{"US"}, ComplianceLevel: model.ComplianceNone, Zone: model.ZoneRed, Notes: "transfer blocked"},
			{ID: "m-3", RequirementID: "bdsg-22", SolutionID: "sov-cloud", JurisdictionIDs: []string{"DE"}, ComplianceLevel: model.CompliancePartial, Zone: model.ZoneYellow},
		},
		EnforcementAssessments: []model.EnforcementAssessment{
			{ID: "e-1", RegulationID: "gdpr", JurisdictionID: "DE", Likelihood: model.LikelihoodHigh, Rationale: "active DPA"},
			{ID: "e-2", RegulationID: "cloud-act", JurisdictionID: "US", Likelihood: model.LikelihoodMedium, Rationale: "warrant activity"},
		},
	}
}

func mappingIDs(ms []model.RequirementMapping) []string {
	ids := make([]string, len(ms))
	for i, m := range ms {
		ids[i] = m.ID
	}
	return ids
}

func TestEmptyFiltersReturnEverything(t *testing.T) {
	fw := testFramework()
	f := Filters{}
	if got := len(FilterRegulations(fw, f)); got != 3 {
		t.Errorf("regulations: got %d, want 3", got)
	}
	if got := len(FilterRequirements(fw, f)); got != 3 {
		t.Errorf("requirements: got %d, want 3", got)
	}
	if got := len(FilterSolutions(fw, f)); got != 2 {
		t.Errorf("solutions: got %d, want 2", got)
	}
	if got := len(FilterMappings(fw, f)); got != 3 {
		t.Errorf("mappings: got %d, want 3", got)
	}
	if got := len(FilterEnforcement(fw, f)); got != 2 {
		t.Errorf("enforcement: got %d, want 2", got)
	}
}

func TestWildcardMappingPassesAnyJurisdiction(t *testing.T) {
	fw := testFramework()
	for _, jur := range []string{"DE", "US", "FR"} {
		got := FilterMappings(fw, Filters{Jurisdiction: jur})
		found := false
		for _, m := range got {
			if m.ID == "m-1" {
				found = true
			}
		}
		if !found {
			t.Errorf("jurisdiction %q: wildcard mapping m-1 not in %v", jur, mappingIDs(got))
		}
	}
}

func TestMappingRegulationFilterIsTwoHop(t *testing.T) {
	fw := testFramework()
	got := FilterMappings(fw, Filters{Regulation: "gdpr"})
	if len(got) != 2 || got[0].ID != "m-1" || got[1].ID != "m-2" {
		t.Fatalf("got %v, want [m-1 m-2]", mappingIDs(got))
	}
	got = FilterMappings(fw, Filters{Regulation: "bdsg"})
	if len(got) != 1 || got[0].ID != "m-3" {
		t.Fatalf("got %v, want [m-3]", mappingIDs(got))
	}
}

func TestFiltersCompose(t *testing.T) {
	fw := testFramework()
	got := FilterMappings(fw, Filters{Regulation: "gdpr", Jurisdiction: "DE"})
	// m-2 is scoped to US, m-3 belongs to bdsg; only the wildcard survives.
	if len(got) != 1 || got[0].ID != "m-1" {
		t.Fatalf("got %v, want [m-1]", mappingIDs(got))
	}
}

func TestSearchIsCaseInsensitiveSubstring(t *testing.T) {
	fw := testFramework()
	tests := []struct {
		search string
		want   []string
	}{
		{"GDPR", []string{"gdpr"}},
		{"gdpr", []string{"gdpr"}},
		{"datenschutz", []string{"bdsg"}},
		{"EXTRATERRITORIAL", []string{"cloud-act"}},
		{"no such regulation", nil},
	}
	for _, tt := range tests {
		got := FilterRegulations(fw, Filters{Search: tt.search})
		if len(got) != len(tt.want) {
			t.Errorf("search %q: got %d regulations, want %d", tt.search, len(got), len(tt.want))
			continue
		}
		for i := range got {
			if got[i].ID != tt.want[i] {
				t.Errorf("search %q: got %s, want %s", tt.search, got[i].ID, tt.want[i])
			}
		}
	}
}

func TestSearchFieldsPerEntity(t *testing.T) {
	fw := testFramework()
	// Requirements match on category, solutions on provider, mappings on
	// notes, enforcement on rationale.
	if got := FilterRequirements(fw, Filters{Search: "transfer"}); len(got) != 1 || got[0].ID != "gdpr-44" {
		t.Errorf("requirements by category: got %d", len(got))
	}
	if got := FilterSolutions(fw, Filters{Search: "globex"}); len(got) != 1 || got[0].ID != "hyper-x" {
		t.Errorf("solutions by provider: got %d", len(got))
	}
	if got := FilterMappings(fw, Filters{Search: "blocked"}); len(got) != 1 || got[0].ID != "m-2" {
		t.Errorf("mappings by notes: got %d", len(got))
	}
	if got := FilterEnforcement(fw, Filters{Search: "warrant"}); len(got) != 1 || got[0].ID != "e-2" {
		t.Errorf("enforcement by rationale: got %d", len(got))
	}
}

func TestSolutionJurisdictionRequiresMembership(t *testing.T) {
	fw := testFramework()
	// hyper-x has no jurisdictionIds and, unlike a mapping, never matches
	// a jurisdiction filter.
	got := FilterSolutions(fw, Filters{Jurisdiction: "US"})
	if len(got) != 0 {
		t.Fatalf("got %d solutions, want 0", len(got))
	}
	got = FilterSolutions(fw, Filters{Jurisdiction: "DE"})
	if len(got) != 1 || got[0].ID != "sov-cloud" {
		t.Fatalf("got %d solutions, want sov-cloud only", len(got))
	}
}

func TestZoneAssignmentFilters(t *testing.T) {
	fw := testFramework()
	got := FilterZoneAssignments(fw, Filters{Zone: "red"})
	if len(got) != 1 || got[0].ID != "za-2" {
		t.Fatalf("zone filter: got %d", len(got))
	}
	got = FilterZoneAssignments(fw, Filters{Search: "health"})
	if len(got) != 1 || got[0].ID != "za-1" {
		t.Fatalf("search by data category: got %d", len(got))
	}
}
