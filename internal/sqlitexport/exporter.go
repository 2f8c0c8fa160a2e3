// exporter.go persists a framework snapshot into an on-disk SQLite database
// so the dataset can be queried with plain SQL.
package sqlitexport

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/example/comply/internal/model"
)

const schemaStmt = `
CREATE TABLE IF NOT EXISTS metadata (
    name TEXT NOT NULL,
    version TEXT,
    description TEXT,
    last_updated TEXT,
    exported_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS jurisdictions (
    id TEXT PRIMARY KEY,
    name TEXT,
    type TEXT,
    iso3166 TEXT,
    parent_id TEXT,
    description TEXT
);
CREATE TABLE IF NOT EXISTS regulations (
    id TEXT PRIMARY KEY,
    name TEXT,
    short_name TEXT,
    jurisdiction_id TEXT,
    status TEXT,
    effective_date TEXT,
    description TEXT
);
CREATE TABLE IF NOT EXISTS requirements (
    id TEXT PRIMARY KEY,
    regulation_id TEXT,
    name TEXT,
    category TEXT,
    severity TEXT,
    description TEXT
);
CREATE TABLE IF NOT EXISTS solutions (
    id TEXT PRIMARY KEY,
    name TEXT,
    provider TEXT,
    type TEXT,
    jurisdiction_ids TEXT,
    description TEXT
);
CREATE TABLE IF NOT EXISTS mappings (
    id TEXT PRIMARY KEY,
    requirement_id TEXT NOT NULL,
    solution_id TEXT NOT NULL,
    jurisdiction_ids TEXT,
    compliance_level TEXT,
    zone TEXT,
    notes TEXT,
    evidence TEXT,
    eta TEXT,
    assessment_date TEXT
);
CREATE TABLE IF NOT EXISTS zone_assignments (
    id TEXT PRIMARY KEY,
    solution_id TEXT NOT NULL,
    jurisdiction_id TEXT NOT NULL,
    zone TEXT,
    data_category TEXT,
    rationale TEXT
);
CREATE TABLE IF NOT EXISTS enforcement (
    id TEXT PRIMARY KEY,
    regulation_id TEXT,
    requirement_id TEXT,
    jurisdiction_id TEXT,
    likelihood TEXT,
    rationale TEXT,
    assessment_date TEXT
);
CREATE INDEX IF NOT EXISTS idx_mappings_req_sol ON mappings(requirement_id, solution_id);
CREATE INDEX IF NOT EXISTS idx_requirements_reg ON requirements(regulation_id);
CREATE INDEX IF NOT EXISTS idx_zones_sol_jur ON zone_assignments(solution_id, jurisdiction_id);`

// Exporter writes framework snapshots into a SQLite database.
type Exporter struct {
	db *sql.DB
}

// New opens (or creates) the SQLite file at path and ensures the schema.
func New(path string) (*Exporter, error) {
	p := strings.TrimSpace(path)
	if p == "" {
		return nil, errors.New("sqlite path cannot be empty")
	}
	dir := filepath.Dir(p)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create sqlite directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", p)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := db.ExecContext(ctx, schemaStmt); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure export schema: %w", err)
	}
	return &Exporter{db: db}, nil
}

// Close releases database resources.
func (e *Exporter) Close() error {
	if e == nil || e.db == nil {
		return nil
	}
	return e.db.Close()
}

// Export replaces the database contents with the given framework. The whole
// snapshot is written in one transaction so readers never see a mix of two
// exports.
func (e *Exporter) Export(ctx context.Context, fw *model.Framework) error {
	tx, err := e.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin export transaction: %w", err)
	}
	defer tx.Rollback()

	tables := []string{
		"metadata", "jurisdictions", "regulations", "requirements",
		"solutions", "mappings", "zone_assignments", "enforcement",
	}
	for _, table := range tables {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear table %s: %w", table, err)
		}
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO metadata(name, version, description, last_updated, exported_at) VALUES(?, ?, ?, ?, ?)`,
		fw.Metadata.Name, fw.Metadata.Version, fw.Metadata.Description,
		fw.Metadata.LastUpdated, time.Now().UTC().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("insert metadata: %w", err)
	}

	for _, j := range fw.Jurisdictions {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO jurisdictions(id, name, type, iso3166, parent_id, description) VALUES(?, ?, ?, ?, ?, ?)`,
			j.ID, j.Name, string(j.Type), j.ISO3166, j.ParentID, j.Description); err != nil {
			return fmt.Errorf("insert jurisdiction %s: %w", j.ID, err)
		}
	}
	for _, r := range fw.Regulations {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO regulations(id, name, short_name, jurisdiction_id, status, effective_date, description) VALUES(?, ?, ?, ?, ?, ?, ?)`,
			r.ID, r.Name, r.ShortName, r.JurisdictionID, string(r.Status), r.EffectiveDate, r.Description); err != nil {
			return fmt.Errorf("insert regulation %s: %w", r.ID, err)
		}
	}
	for _, r := range fw.Requirements {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO requirements(id, regulation_id, name, category, severity, description) VALUES(?, ?, ?, ?, ?, ?)`,
			r.ID, r.RegulationID, r.Name, r.Category, string(r.Severity), r.Description); err != nil {
			return fmt.Errorf("insert requirement %s: %w", r.ID, err)
		}
	}
	for _, s := range fw.Solutions {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO solutions(id, name, provider, type, jurisdiction_ids, description) VALUES(?, ?, ?, ?, ?, ?)`,
			s.ID, s.Name, s.Provider, string(s.Type), jsonList(s.JurisdictionIDs), s.Description); err != nil {
			return fmt.Errorf("insert solution %s: %w", s.ID, err)
		}
	}
	for _, m := range fw.Mappings {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO mappings(id, requirement_id, solution_id, jurisdiction_ids, compliance_level, zone, notes, evidence, eta, assessment_date)
			 VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			m.ID, m.RequirementID, m.SolutionID, jsonList(m.JurisdictionIDs),
			string(m.ComplianceLevel), string(m.Zone), m.Notes, jsonList(m.Evidence),
			m.ETA, m.AssessmentDate); err != nil {
			return fmt.Errorf("insert mapping %s: %w", m.ID, err)
		}
	}
	for _, za := range fw.ZoneAssignments {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO zone_assignments(id, solution_id, jurisdiction_id, zone, data_category, rationale) VALUES(?, ?, ?, ?, ?, ?)`,
			za.ID, za.SolutionID, za.JurisdictionID, string(za.Zone), za.DataCategory, za.Rationale); err != nil {
			return fmt.Errorf("insert zone assignment %s: %w", za.ID, err)
		}
	}
	for _, ea := range fw.EnforcementAssessments {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO enforcement(id, regulation_id, requirement_id, jurisdiction_id, likelihood, rationale, assessment_date) VALUES(?, ?, ?, ?, ?, ?, ?)`,
			ea.ID, ea.RegulationID, ea.RequirementID, ea.JurisdictionID,
			string(ea.Likelihood), ea.Rationale, ea.AssessmentDate); err != nil {
			return fmt.Errorf("insert enforcement %s: %w", ea.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit export: %w", err)
	}
	return nil
}

// jsonList encodes a string list as JSON text, keeping NULL for an empty
// list so wildcard mappings stay distinguishable in SQL.
func jsonList(values []string) any {
	if len(values) == 0 {
		return nil
	}
	data, err := json.Marshal(values)
	if err != nil {
		return nil
	}
	return string(data)
}
