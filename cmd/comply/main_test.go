package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/comply/internal/model"
)

func writeDataset(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]any{
		"framework.json": map[string]string{"name": "Test Framework", "version": "1.0.0"},
		"jurisdictions.json": []model.Jurisdiction{
			{ID: "EU", Name: "European Union"},
		},
		"regulations.json": []model.Regulation{
			{ID: "gdpr", Name: "GDPR", ShortName: "GDPR", JurisdictionID: "EU"},
		},
		"requirements.json": []model.Requirement{
			{ID: "req-1", Name: "Encryption at rest", RegulationID: "gdpr"},
		},
		"solutions.json": []model.Solution{
			{ID: "sov-cloud", Name: "SovCloud", JurisdictionIDs: []string{"EU"}},
		},
		"mappings.json": []model.RequirementMapping{
			{ID: "m-1", RequirementID: "req-1", SolutionID: "sov-cloud", ComplianceLevel: model.ComplianceFull},
		},
	}
	for name, v := range files {
		data, err := json.Marshal(v)
		if err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestRootCommandWiring(t *testing.T) {
	cmd := newRootCommand()

	want := []string{
		"serve", "load", "list", "query", "validate", "coverage",
		"heatmap", "overview", "export", "import-research", "version",
	}
	have := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		have[sub.Name()] = true
	}
	for _, name := range want {
		if !have[name] {
			t.Fatalf("missing subcommand %q", name)
		}
	}

	if cmd.PersistentFlags().Lookup("data") == nil {
		t.Fatal("missing persistent --data flag")
	}
	if cmd.PersistentFlags().Lookup("log-level") == nil {
		t.Fatal("missing persistent --log-level flag")
	}
}

func TestValidateCommandRuns(t *testing.T) {
	dir := writeDataset(t)

	cmd := newRootCommand()
	cmd.SetArgs([]string{"validate", "--data", dir, "--log-level", "error"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestValidateCommandFailsOnDanglingRef(t *testing.T) {
	dir := writeDataset(t)
	bad := []model.RequirementMapping{
		{ID: "m-bad", RequirementID: "req-1", SolutionID: "no-such-sol"},
	}
	data, err := json.Marshal(bad)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "mappings.json"), data, 0o644); err != nil {
		t.Fatal(err)
	}

	cmd := newRootCommand()
	cmd.SetArgs([]string{"validate", "--data", dir, "--log-level", "error"})
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected validation failure")
	}
}

func TestExportCommandWritesDatabase(t *testing.T) {
	dir := writeDataset(t)
	out := filepath.Join(t.TempDir(), "framework.db")

	cmd := newRootCommand()
	cmd.SetArgs([]string{"export", "--data", dir, "--output", out, "--log-level", "error"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("export: %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Fatalf("database not written: %v", err)
	}
}

func TestImportResearchRequiresInput(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetArgs([]string{"import-research"})
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected missing --input error")
	}
}

func TestOverviewMarkdown(t *testing.T) {
	ov := &model.ExecutiveOverview{
		Metadata: model.OverviewMetadata{Title: "EU Cloud Landscape", Version: "2.0", LastUpdated: "2026-08-01"},
		Segments: []model.MarketSegment{
			{
				Name: "Government", RiskLevel: model.RiskCritical,
				Jurisdictions: []string{"FR"},
				KeyRequirements: []model.KeyRequirement{
					{Name: "SecNumCloud", Priority: model.PriorityMustHave, Status: model.EnforcementEnforced},
				},
			},
		},
		KeyTakeaways: []string{"Sovereign offers trail hyperscalers on features"},
	}

	md := overviewMarkdown(ov)
	for _, want := range []string{"# EU Cloud Landscape", "## Key Takeaways", "## Government", "SecNumCloud", "must-have"} {
		if !strings.Contains(md, want) {
			t.Fatalf("markdown missing %q:\n%s", want, md)
		}
	}
}
