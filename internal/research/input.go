// Package research ingests externally-researched compliance findings and
// folds them into the framework's mapping set. Input files are authored by
// analysts, so validation is tolerant: unknown entities produce warnings
// rather than rejects, since a finding may legitimately precede the entity
// it describes.
package research

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/example/comply/internal/model"
)

// Input is the research submission file format.
type Input struct {
	Metadata Metadata  `json:"metadata"`
	Findings []Finding `json:"findings"`
}

// Metadata describes who produced the submission and when.
type Metadata struct {
	ResearchDate string `json:"researchDate"`
	Researcher   string `json:"researcher,omitempty"`
	Version      string `json:"version,omitempty"`
}

// Confidence grades how sure the researcher is about a finding.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Finding is a single researched compliance observation: a control/solution
// pair, the jurisdictions it was checked in, and the assessed status.
type Finding struct {
	RegulationID    string     `json:"regulationId,omitempty"`
	ControlID       string     `json:"controlId"`
	ControlName     string     `json:"controlName,omitempty"`
	SolutionID      string     `json:"solutionId"`
	JurisdictionIDs []string   `json:"jurisdictionIds"`
	Status          string     `json:"status"`
	Zone            model.Zone `json:"zone,omitempty"`
	Notes           string     `json:"notes"`
	Evidence        []string   `json:"evidence,omitempty"`
	ETA             string     `json:"eta,omitempty"`
	Confidence      Confidence `json:"confidence,omitempty"`
}

// LoadInput reads and parses a research submission file.
func LoadInput(path string) (*Input, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read research file: %w", err)
	}
	var in Input
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("parse research file %s: %w", path, err)
	}
	return &in, nil
}

// level maps a finding status onto the mapping compliance level. Status
// strings share the compliance level wire values, so unrecognized statuses
// pass through and render as unrecognized downstream.
func (f Finding) level() model.ComplianceLevel {
	return model.ComplianceLevel(f.Status)
}
