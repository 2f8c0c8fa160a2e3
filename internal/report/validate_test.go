package report

import (
	"testing"

	"github.com/example/comply/internal/model"
)

func TestCheckReferencesClean(t *testing.T) {
	if errs := CheckReferences(coverageFramework()); len(errs) != 0 {
		t.Fatalf("expected no reference errors, got %v", errs)
	}
}

func TestCheckReferencesDangling(t *testing.T) {
	fw := coverageFramework()
	fw.Requirements = append(fw.Requirements, model.Requirement{ID: "req-ghost", RegulationID: "no-such-reg"})
	fw.Mappings = append(fw.Mappings,
		model.RequirementMapping{ID: "m-bad-sol", RequirementID: "req-1", SolutionID: "no-such-sol"},
		model.RequirementMapping{ID: "m-bad-jur", RequirementID: "req-1", SolutionID: "sov-cloud", JurisdictionIDs: []string{"ZZ"}},
	)
	fw.ZoneAssignments = append(fw.ZoneAssignments,
		model.ZoneAssignment{ID: "z-bad", SolutionID: "sov-cloud", JurisdictionID: "ZZ"},
	)

	errs := CheckReferences(fw)

	want := map[string]bool{
		"requirement req-ghost references unknown regulation: no-such-reg": false,
		"mapping m-bad-sol references unknown solution: no-such-sol":       false,
		"mapping m-bad-jur references unknown jurisdiction: ZZ":            false,
		"zone assignment z-bad references unknown jurisdiction: ZZ":        false,
	}
	for _, e := range errs {
		if _, ok := want[e.String()]; ok {
			want[e.String()] = true
		}
	}
	for msg, seen := range want {
		if !seen {
			t.Fatalf("missing reference error %q in %v", msg, errs)
		}
	}
}

func TestCheckReferencesEmptyRegulationAllowed(t *testing.T) {
	fw := coverageFramework()
	fw.Requirements = append(fw.Requirements, model.Requirement{ID: "req-free"})

	if errs := CheckReferences(fw); len(errs) != 0 {
		t.Fatalf("requirement without regulation should be legal, got %v", errs)
	}
}
