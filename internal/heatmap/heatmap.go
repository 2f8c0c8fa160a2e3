// Package heatmap builds the requirement×solution matrix view from a
// filtered mapping list. Rows and columns come from the mappings alone: a
// requirement or solution with no visible mapping does not appear, and a
// dangling id still produces a row or column with display fallbacks.
package heatmap

import (
	"regexp"
	"sort"
	"strings"

	"github.com/example/comply/internal/model"
	"github.com/example/comply/internal/state"
)

// Matrix is the fully ordered heatmap. Cells is row-major and parallel to
// Columns.
type Matrix struct {
	Rows    []Row
	Columns []Column
}

// Column is one solution column, ordered sovereign-first.
type Column struct {
	SolutionID string
	Title      string
	ShortName  string
	Type       model.SolutionType
}

// Row is one requirement row with its cells and expandable detail.
type Row struct {
	RequirementID   string
	Name            string
	Description     string
	RegulationID    string
	RegulationShort string
	RegulationName  string
	ControlDisplay  string
	Jurisdictions   []string
	Expanded        bool
	Cells           []Cell
	Detail          Detail
}

// Cell is a single requirement×solution intersection. Known is false when
// no mapping covers the pair; such a cell renders as an explicit unknown,
// not as an omission.
type Cell struct {
	Known   bool
	Level   model.ComplianceLevel
	Zone    model.Zone
	ETA     string
	Notes   string
	Icon    string
	Tooltip string
}

// Detail groups a row's mappings into the three compliance buckets, each
// sorted by resolved solution name.
type Detail struct {
	Compliant   []DetailEntry
	Conditional []DetailEntry
	Banned      []DetailEntry
}

// DetailEntry is one mapping inside a detail bucket.
type DetailEntry struct {
	SolutionName string
	Mapping      model.RequirementMapping
}

var artPattern = regexp.MustCompile(`(?i)ART`)

// ControlDisplay renders the row's control label: the section id with
// dashes as spaces and the first "ART" as "Art.", falling back to the
// requirement name, then the raw id.
func ControlDisplay(req *model.Requirement, id string) string {
	if req == nil {
		return id
	}
	if req.SectionID != "" {
		s := strings.ReplaceAll(req.SectionID, "-", " ")
		if loc := artPattern.FindStringIndex(s); loc != nil {
			s = s[:loc[0]] + "Art." + s[loc[1]:]
		}
		return s
	}
	if req.Name != "" {
		return req.Name
	}
	return id
}

// ShortColumnName renders the column header: the first word of the solution
// name, or the last dash-separated segment of the id when the name is
// unavailable.
func ShortColumnName(sol *model.Solution, id string) string {
	if sol != nil && sol.Name != "" {
		return strings.Fields(sol.Name)[0]
	}
	parts := strings.Split(id, "-")
	return parts[len(parts)-1]
}

// Build assembles the matrix. Duplicate mappings for the same
// requirement×solution pair resolve last-write-wins in input order. The
// expanded set is owned by the caller; rows only record membership.
func Build(
	mappings []model.RequirementMapping,
	requirements []model.Requirement,
	solutions []model.Solution,
	regulations []model.Regulation,
	expanded state.Selection,
) Matrix {
	reqByID := make(map[string]*model.Requirement, len(requirements))
	for i := range requirements {
		reqByID[requirements[i].ID] = &requirements[i]
	}
	solByID := make(map[string]*model.Solution, len(solutions))
	for i := range solutions {
		solByID[solutions[i].ID] = &solutions[i]
	}
	regByID := make(map[string]*model.Regulation, len(regulations))
	for i := range regulations {
		regByID[regulations[i].ID] = &regulations[i]
	}

	cellByPair := make(map[string]map[string]model.RequirementMapping)
	perRow := make(map[string][]model.RequirementMapping)
	rowJurisdictions := make(map[string]map[string]struct{})
	var rowIDs, colIDs []string
	seenRow := make(map[string]struct{})
	seenCol := make(map[string]struct{})
	for _, m := range mappings {
		if _, ok := seenRow[m.RequirementID]; !ok {
			seenRow[m.RequirementID] = struct{}{}
			rowIDs = append(rowIDs, m.RequirementID)
		}
		if _, ok := seenCol[m.SolutionID]; !ok {
			seenCol[m.SolutionID] = struct{}{}
			colIDs = append(colIDs, m.SolutionID)
		}
		if cellByPair[m.RequirementID] == nil {
			cellByPair[m.RequirementID] = make(map[string]model.RequirementMapping)
		}
		cellByPair[m.RequirementID][m.SolutionID] = m
		perRow[m.RequirementID] = append(perRow[m.RequirementID], m)
		if rowJurisdictions[m.RequirementID] == nil {
			rowJurisdictions[m.RequirementID] = make(map[string]struct{})
		}
		for _, j := range m.JurisdictionIDs {
			rowJurisdictions[m.RequirementID][j] = struct{}{}
		}
	}

	sort.SliceStable(rowIDs, func(i, j int) bool {
		return lessRequirement(rowIDs[i], rowIDs[j], reqByID)
	})
	sort.SliceStable(colIDs, func(i, j int) bool {
		return lessSolution(colIDs[i], colIDs[j], solByID)
	})

	m := Matrix{Columns: make([]Column, 0, len(colIDs)), Rows: make([]Row, 0, len(rowIDs))}
	for _, id := range colIDs {
		sol := solByID[id]
		title := id
		var typ model.SolutionType
		if sol != nil {
			if sol.Name != "" {
				title = sol.Name
			}
			typ = sol.Type
		}
		m.Columns = append(m.Columns, Column{
			SolutionID: id,
			Title:      title,
			ShortName:  ShortColumnName(sol, id),
			Type:       typ,
		})
	}

	for _, id := range rowIDs {
		req := reqByID[id]
		row := Row{
			RequirementID:  id,
			Name:           id,
			RegulationID:   "unknown",
			ControlDisplay: ControlDisplay(req, id),
			Expanded:       expanded.Has(id),
		}
		if req != nil {
			if req.Name != "" {
				row.Name = req.Name
			}
			row.Description = req.Description
			if req.RegulationID != "" {
				row.RegulationID = req.RegulationID
			}
		}
		row.RegulationShort = row.RegulationID
		row.RegulationName = row.RegulationID
		if reg := regByID[row.RegulationID]; reg != nil {
			if reg.ShortName != "" {
				row.RegulationShort = reg.ShortName
			}
			if reg.Name != "" {
				row.RegulationName = reg.Name
			}
		}
		for j := range rowJurisdictions[id] {
			row.Jurisdictions = append(row.Jurisdictions, j)
		}
		sort.Strings(row.Jurisdictions)

		row.Cells = make([]Cell, len(m.Columns))
		for i, col := range m.Columns {
			mapping, ok := cellByPair[id][col.SolutionID]
			if !ok {
				row.Cells[i] = Cell{Icon: "?", Tooltip: row.Name + "\n" + col.Title + "\n\nNo assessment data available"}
				continue
			}
			row.Cells[i] = Cell{
				Known:   true,
				Level:   mapping.ComplianceLevel,
				Zone:    mapping.Zone,
				ETA:     mapping.ETA,
				Notes:   mapping.Notes,
				Icon:    mapping.ComplianceLevel.Icon(),
				Tooltip: cellTooltip(row.Name, col.Title, mapping),
			}
		}

		row.Detail = buildDetail(perRow[id], solByID)
		m.Rows = append(m.Rows, row)
	}
	return m
}

func cellTooltip(reqName, solName string, m model.RequirementMapping) string {
	var b strings.Builder
	b.WriteString(reqName)
	b.WriteString("\n")
	b.WriteString(solName)
	b.WriteString("\n\nCompliance: ")
	b.WriteString(string(m.ComplianceLevel))
	b.WriteString("\nZone: ")
	b.WriteString(string(m.Zone))
	if m.ETA != "" {
		b.WriteString("\nETA: ")
		b.WriteString(m.ETA)
	}
	b.WriteString("\n")
	b.WriteString(m.Notes)
	return b.String()
}

func lessRequirement(a, b string, reqByID map[string]*model.Requirement) bool {
	regA, catA := "", ""
	if r := reqByID[a]; r != nil {
		regA, catA = r.RegulationID, r.Category
	}
	regB, catB := "", ""
	if r := reqByID[b]; r != nil {
		regB, catB = r.RegulationID, r.Category
	}
	if regA != regB {
		return regA < regB
	}
	if catA != catB {
		return catA < catB
	}
	return a < b
}

func lessSolution(a, b string, solByID map[string]*model.Solution) bool {
	pa, pb := unknownPriority, unknownPriority
	if s := solByID[a]; s != nil {
		pa = s.Type.Priority()
	}
	if s := solByID[b]; s != nil {
		pb = s.Type.Priority()
	}
	if pa != pb {
		return pa < pb
	}
	return a < b
}

// unknownPriority matches SolutionType.Priority's fallback for types it
// does not recognize; a missing solution sorts with the commercial tier.
const unknownPriority = 3

func buildDetail(rowMappings []model.RequirementMapping, solByID map[string]*model.Solution) Detail {
	var d Detail
	for _, m := range rowMappings {
		entry := DetailEntry{SolutionName: m.SolutionID, Mapping: m}
		if sol := solByID[m.SolutionID]; sol != nil && sol.Name != "" {
			entry.SolutionName = sol.Name
		}
		switch m.ComplianceLevel.Bucket() {
		case model.BucketCompliant:
			d.Compliant = append(d.Compliant, entry)
		case model.BucketConditional:
			d.Conditional = append(d.Conditional, entry)
		case model.BucketBanned:
			d.Banned = append(d.Banned, entry)
		}
	}
	for _, bucket := range [][]DetailEntry{d.Compliant, d.Conditional, d.Banned} {
		sort.SliceStable(bucket, func(i, j int) bool {
			return bucket[i].SolutionName < bucket[j].SolutionName
		})
	}
	return d
}
