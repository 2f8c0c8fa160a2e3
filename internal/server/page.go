package server

import (
	"fmt"
	"strings"

	"github.com/example/comply/internal/heatmap"
	"github.com/example/comply/internal/model"
	"github.com/example/comply/internal/state"
	"github.com/example/comply/internal/viewstate"
)

type navLink struct {
	Label  string
	URL    string
	Active bool
}

type option struct {
	Value    string
	Label    string
	Selected bool
}

type checkbox struct {
	ID      string
	Label   string
	Checked bool
	URL     string
}

type card struct {
	Title     string
	Subtitle  string
	Badge     string
	BadgeKind string
	Lines     []string
	Detail    string
}

type matrixView struct {
	Columns    []heatmap.Column
	Rows       []matrixRow
	DetailSpan int
}

type matrixRow struct {
	heatmap.Row
	ExpandURL        string
	JurisdictionList string
}

type zoneSectionView struct {
	Zone        string
	Description string
	Rows        []zoneRow
}

type zoneRow struct {
	SolutionName    string
	RequirementID   string
	ComplianceLevel string
	Jurisdictions   string
	Notes           string
}

type datasetCounts struct {
	Jurisdictions int
	Regulations   int
	Requirements  int
	Solutions     int
	Mappings      int
	Zones         int
	Enforcement   int
}

type pageData struct {
	Title     string
	Meta      model.Metadata
	View      viewstate.View
	TabParam  string
	ViewParam string
	Search    string
	Tabs      []navLink
	Modes     []navLink
	Loading   bool
	LastError string

	ShowFilters   bool
	Jurisdictions []option
	Regulations   []option
	Solutions     []option
	ZoneOptions   []option

	Counts  *datasetCounts
	Cards   []card
	GridURL string

	Matrix            *matrixView
	JurisdictionBoxes []checkbox
	ZoneBoxes         []checkbox
	ZoneSections      []zoneSectionView

	Overview       *model.ExecutiveOverview
	ExecutiveEmpty bool
}

var tabOrder = []struct {
	Tab   state.Tab
	Label string
}{
	{state.TabOverview, "Overview"},
	{state.TabRegulations, "Regulations"},
	{state.TabRequirements, "Requirements"},
	{state.TabSolutions, "Solutions"},
	{state.TabMappings, "Mappings"},
	{state.TabHeatmap, "Heatmap"},
	{state.TabZones, "Zones"},
	{state.TabEnforcement, "Enforcement"},
	{state.TabExecutive, "Executive"},
}

// cardTabs lists the tabs that offer the cards/table mode switch.
var cardTabs = map[state.Tab]bool{
	state.TabRegulations:  true,
	state.TabRequirements: true,
	state.TabSolutions:    true,
	state.TabMappings:     true,
	state.TabEnforcement:  true,
}

func (s *Server) buildPage(v viewstate.View) pageData {
	fw := s.store.Framework()
	data := pageData{
		Title:   fw.Metadata.Name,
		Meta:    fw.Metadata,
		View:    v,
		Loading: s.store.Loading(),
	}
	if data.Title == "" {
		data.Title = "Compliance Viewer"
	}
	if err := s.store.LastError(); err != nil {
		data.LastError = err.Error()
	}

	for _, t := range tabOrder {
		data.Tabs = append(data.Tabs, navLink{
			Label:  t.Label,
			URL:    "/" + v.WithTab(t.Tab).Query(),
			Active: v.Tab == t.Tab,
		})
	}
	if v.Tab != state.TabOverview {
		data.TabParam = string(v.Tab)
	}
	if v.Mode != state.ViewCards {
		data.ViewParam = string(v.Mode)
	}
	data.Search = v.Filters.Search
	if cardTabs[v.Tab] {
		data.Modes = []navLink{
			{Label: "Cards", URL: "/" + v.WithMode(state.ViewCards).Query(), Active: v.Mode == state.ViewCards},
			{Label: "Table", URL: "/" + v.WithMode(state.ViewTable).Query(), Active: v.Mode == state.ViewTable},
		}
		data.ShowFilters = true
		data.Jurisdictions = jurisdictionOptions(fw, v.Filters.Jurisdiction)
		data.Regulations = regulationOptions(fw, v.Filters.Regulation)
		data.Solutions = solutionOptions(fw, v.Filters.Solution)
		data.ZoneOptions = zoneOptions(v.Filters.Zone)
	}

	switch v.Tab {
	case state.TabOverview:
		data.Counts = &datasetCounts{
			Jurisdictions: len(fw.Jurisdictions),
			Regulations:   len(fw.Regulations),
			Requirements:  len(fw.Requirements),
			Solutions:     len(fw.Solutions),
			Mappings:      len(fw.Mappings),
			Zones:         len(fw.ZoneAssignments),
			Enforcement:   len(fw.EnforcementAssessments),
		}
	case state.TabRegulations:
		data.Cards = regulationCards(fw, s.store.FilteredRegulations())
	case state.TabRequirements:
		data.Cards = requirementCards(s.store.FilteredRequirements())
	case state.TabSolutions:
		data.Cards = solutionCards(s.store.FilteredSolutions())
	case state.TabMappings:
		data.Cards = mappingCards(fw, s.store.FilteredMappings())
	case state.TabEnforcement:
		data.Cards = enforcementCards(fw, s.store.FilteredEnforcement())
	case state.TabHeatmap, state.TabZones:
		s.buildMapTab(&data, v, fw)
	case state.TabExecutive:
		data.Overview = s.store.Overview()
		data.ExecutiveEmpty = data.Overview == nil
	}

	if v.Mode == state.ViewTable && cardTabs[v.Tab] {
		data.Cards = nil
		data.GridURL = "/api/rows/" + string(v.Tab) + ".json" + v.Query()
	}
	return data
}

// buildMapTab assembles the heatmap matrix or zone sections. The checkbox
// defaults live here, not in the engine: with no zones in the URL the page
// shows all three zones checked, while an explicit empty engine selection
// still means "show nothing".
func (s *Server) buildMapTab(data *pageData, v viewstate.View, fw *model.Framework) {
	zones := v.MapZones
	if len(zones) == 0 {
		zones = state.NewSelection([]string{
			string(model.ZoneGreen), string(model.ZoneYellow), string(model.ZoneRed),
		})
	}
	visible := state.VisibleMappings(s.store.FilteredMappings(), v.MapJurisdictions, zones)

	for _, j := range fw.Jurisdictions {
		data.JurisdictionBoxes = append(data.JurisdictionBoxes, checkbox{
			ID:      j.ID,
			Label:   j.Name,
			Checked: v.MapJurisdictions.Has(j.ID),
			URL:     toggleURL(v, "jurisdiction", j.ID),
		})
	}
	for _, z := range []model.Zone{model.ZoneGreen, model.ZoneYellow, model.ZoneRed} {
		data.ZoneBoxes = append(data.ZoneBoxes, checkbox{
			ID:      string(z),
			Label:   string(z),
			Checked: zones.Has(string(z)),
			URL:     toggleURL(v, "zone", string(z)),
		})
	}

	switch v.Tab {
	case state.TabHeatmap:
		m := heatmap.Build(visible, fw.Requirements, fw.Solutions, fw.Regulations, v.Expanded)
		mv := &matrixView{Columns: m.Columns, DetailSpan: len(m.Columns) + 3}
		for _, row := range m.Rows {
			mv.Rows = append(mv.Rows, matrixRow{
				Row:              row,
				ExpandURL:        toggleURL(v, "expanded", row.RequirementID),
				JurisdictionList: strings.Join(row.Jurisdictions, ", "),
			})
		}
		data.Matrix = mv
	case state.TabZones:
		for _, section := range heatmap.ZoneView(visible) {
			sv := zoneSectionView{
				Zone:        string(section.Zone),
				Description: zoneDescription(section.Zone),
			}
			for _, m := range section.Mappings {
				sv.Rows = append(sv.Rows, zoneRow{
					SolutionName:    fw.SolutionName(m.SolutionID),
					RequirementID:   m.RequirementID,
					ComplianceLevel: string(m.ComplianceLevel),
					Jurisdictions:   jurisdictionList(m.JurisdictionIDs),
					Notes:           m.Notes,
				})
			}
			data.ZoneSections = append(data.ZoneSections, sv)
		}
	}
}

func zoneDescription(z model.Zone) string {
	switch z {
	case model.ZoneGreen:
		return "Solutions that meet requirements with standard controls."
	case model.ZoneYellow:
		return "Solutions that require additional controls or contractual terms."
	case model.ZoneRed:
		return "Solutions that cannot meet requirements for these workloads."
	default:
		return ""
	}
}

func toggleURL(v viewstate.View, kind, id string) string {
	q := v.Encode()
	q.Set("kind", kind)
	q.Set("id", id)
	return "/toggle?" + q.Encode()
}

func jurisdictionOptions(fw *model.Framework, selected string) []option {
	opts := []option{{Value: "", Label: "All jurisdictions", Selected: selected == ""}}
	for _, j := range fw.Jurisdictions {
		opts = append(opts, option{Value: j.ID, Label: j.Name, Selected: j.ID == selected})
	}
	return opts
}

func regulationOptions(fw *model.Framework, selected string) []option {
	opts := []option{{Value: "", Label: "All regulations", Selected: selected == ""}}
	for _, r := range fw.Regulations {
		label := r.ShortName
		if label == "" {
			label = r.Name
		}
		opts = append(opts, option{Value: r.ID, Label: label, Selected: r.ID == selected})
	}
	return opts
}

func solutionOptions(fw *model.Framework, selected string) []option {
	opts := []option{{Value: "", Label: "All solutions", Selected: selected == ""}}
	for _, sol := range fw.Solutions {
		opts = append(opts, option{Value: sol.ID, Label: sol.Name, Selected: sol.ID == selected})
	}
	return opts
}

func zoneOptions(selected string) []option {
	opts := []option{{Value: "", Label: "All zones", Selected: selected == ""}}
	for _, z := range []model.Zone{model.ZoneGreen, model.ZoneYellow, model.ZoneRed} {
		opts = append(opts, option{Value: string(z), Label: string(z), Selected: string(z) == selected})
	}
	return opts
}

func regulationCards(fw *model.Framework, regs []model.Regulation) []card {
	cards := make([]card, 0, len(regs))
	for _, r := range regs {
		title := r.ShortName
		if title == "" {
			title = r.Name
		}
		cards = append(cards, card{
			Title:     title,
			Subtitle:  r.Name,
			Badge:     string(r.Status),
			BadgeKind: statusBadge(r.Status),
			Lines: []string{
				"Jurisdiction: " + fw.JurisdictionName(r.JurisdictionID),
				r.Description,
			},
			Detail: "/api/detail?collection=regulations&id=" + r.ID,
		})
	}
	return cards
}

func requirementCards(reqs []model.Requirement) []card {
	cards := make([]card, 0, len(reqs))
	for _, r := range reqs {
		cards = append(cards, card{
			Title:     r.Name,
			Subtitle:  r.ID,
			Badge:     string(r.Severity),
			BadgeKind: severityBadge(r.Severity),
			Lines: []string{
				"Regulation: " + r.RegulationID,
				"Category: " + r.Category,
				r.Description,
			},
			Detail: "/api/detail?collection=requirements&id=" + r.ID,
		})
	}
	return cards
}

func solutionCards(sols []model.Solution) []card {
	cards := make([]card, 0, len(sols))
	for _, sol := range sols {
		c := card{
			Title:     sol.Name,
			Subtitle:  sol.Provider,
			Badge:     string(sol.Type),
			BadgeKind: typeBadge(sol.Type),
			Lines:     []string{sol.Description},
			Detail:    "/api/detail?collection=solutions&id=" + sol.ID,
		}
		if own := sol.OwnershipStructure; own != nil {
			c.Lines = append(c.Lines, fmt.Sprintf("EU ownership: %.0f%%", own.EUOwnershipPercent))
			if own.SubjectToExtraTerritorialLaw {
				c.Lines = append(c.Lines, "Subject to extraterritorial law")
			}
		}
		cards = append(cards, c)
	}
	return cards
}

func mappingCards(fw *model.Framework, mappings []model.RequirementMapping) []card {
	cards := make([]card, 0, len(mappings))
	for _, m := range mappings {
		cards = append(cards, card{
			Title:     fw.SolutionName(m.SolutionID),
			Subtitle:  m.RequirementID,
			Badge:     string(m.ComplianceLevel),
			BadgeKind: complianceBadge(m.ComplianceLevel),
			Lines: []string{
				"Zone: " + string(m.Zone),
				"Jurisdictions: " + jurisdictionList(m.JurisdictionIDs),
				m.Notes,
			},
			Detail: "/api/detail?collection=mappings&id=" + m.ID,
		})
	}
	return cards
}

func enforcementCards(fw *model.Framework, assessments []model.EnforcementAssessment) []card {
	cards := make([]card, 0, len(assessments))
	for _, e := range assessments {
		cards = append(cards, card{
			Title:     fw.RegulationShortName(e.RegulationID),
			Subtitle:  fw.JurisdictionName(e.JurisdictionID),
			Badge:     string(e.Likelihood),
			BadgeKind: likelihoodBadge(e.Likelihood),
			Lines: []string{
				"Assessed: " + e.AssessmentDate,
				e.Rationale,
			},
			Detail: "/api/detail?collection=enforcement&id=" + e.ID,
		})
	}
	return cards
}

func statusBadge(s model.RegulationStatus) string {
	switch s {
	case model.RegulationEnforceable:
		return "success"
	case model.RegulationAdopted:
		return "warning"
	case model.RegulationDraft:
		return "secondary"
	default:
		return "danger"
	}
}

func severityBadge(s model.Severity) string {
	switch s {
	case model.SeverityCritical:
		return "danger"
	case model.SeverityHigh:
		return "warning"
	case model.SeverityMedium:
		return "primary"
	default:
		return "secondary"
	}
}

func typeBadge(t model.SolutionType) string {
	switch t {
	case model.SolutionSovereign, model.SolutionNationalPartner:
		return "success"
	case model.SolutionGovCloud:
		return "warning"
	case model.SolutionPrivate:
		return "primary"
	default:
		return "secondary"
	}
}

func complianceBadge(l model.ComplianceLevel) string {
	switch l.Bucket() {
	case model.BucketCompliant:
		return "success"
	case model.BucketConditional:
		return "warning"
	case model.BucketBanned:
		return "danger"
	default:
		return "secondary"
	}
}

func likelihoodBadge(l model.Likelihood) string {
	switch l {
	case model.LikelihoodHigh:
		return "danger"
	case model.LikelihoodMedium:
		return "warning"
	case model.LikelihoodLow:
		return "success"
	default:
		return "secondary"
	}
}
