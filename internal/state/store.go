package state

import (
	"sync"

	"github.com/example/comply/internal/model"
)

// Tab identifies the active collection view.
type Tab string

const (
	TabOverview     Tab = "overview"
	TabRegulations  Tab = "regulations"
	TabRequirements Tab = "requirements"
	TabSolutions    Tab = "solutions"
	TabMappings     Tab = "mappings"
	TabZones        Tab = "zones"
	TabEnforcement  Tab = "enforcement"
	TabHeatmap      Tab = "heatmap"
	TabExecutive    Tab = "executive"
)

// Valid reports whether t is a known tab.
func (t Tab) Valid() bool {
	switch t {
	case TabOverview, TabRegulations, TabRequirements, TabSolutions,
		TabMappings, TabZones, TabEnforcement, TabHeatmap, TabExecutive:
		return true
	}
	return false
}

// ViewMode selects the rendering of a collection tab.
type ViewMode string

const (
	ViewCards ViewMode = "cards"
	ViewTable ViewMode = "table"
)

// Valid reports whether v is a known view mode.
func (v ViewMode) Valid() bool {
	return v == ViewCards || v == ViewTable
}

// Store is the owned state container for one viewer instance. It holds the
// current dataset, the active UI mode, and the filter selections, and hands
// out filtered views through the pure functions in this package. A Store is
// constructed explicitly and passed around; there is no package-level
// instance. All methods are safe for concurrent use.
type Store struct {
	mu sync.RWMutex

	framework *model.Framework
	overview  *model.ExecutiveOverview

	tab     Tab
	view    ViewMode
	filters Filters

	mapJurisdictions Selection
	mapZones         Selection
	expanded         Selection

	loading bool
	lastErr error
}

// New returns an empty Store with default UI state.
func New() *Store {
	return &Store{
		framework:        model.Empty(),
		tab:              TabOverview,
		view:             ViewCards,
		mapJurisdictions: Selection{},
		mapZones:         Selection{},
		expanded:         Selection{},
	}
}

// SetDataset atomically replaces both aggregates. Filters and UI mode
// persist across the swap; stale filter values that no longer reference an
// existing entity are left in place and simply match nothing.
func (s *Store) SetDataset(fw *model.Framework, ov *model.ExecutiveOverview) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if fw == nil {
		fw = model.Empty()
	}
	s.framework = fw
	s.overview = ov
	s.lastErr = nil
}

// Framework returns the current framework aggregate, never nil.
func (s *Store) Framework() *model.Framework {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.framework
}

// Overview returns the current executive overview, or nil when the dataset
// has none.
func (s *Store) Overview() *model.ExecutiveOverview {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.overview
}

// SetLoading records whether a load is in flight.
func (s *Store) SetLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

// Loading reports whether a load is in flight.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// SetError records the outcome of the last load attempt.
func (s *Store) SetError(err error) {
	s.mu.Lock()
	s.lastErr = err
	s.mu.Unlock()
}

// LastError returns the error from the last failed load, or nil.
func (s *Store) LastError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// SetTab switches the active tab; unknown values fall back to the overview.
func (s *Store) SetTab(t Tab) {
	if !t.Valid() {
		t = TabOverview
	}
	s.mu.Lock()
	s.tab = t
	s.mu.Unlock()
}

// Tab returns the active tab.
func (s *Store) Tab() Tab {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tab
}

// SetView switches the view mode; unknown values fall back to cards.
func (s *Store) SetView(v ViewMode) {
	if !v.Valid() {
		v = ViewCards
	}
	s.mu.Lock()
	s.view = v
	s.mu.Unlock()
}

// View returns the active view mode.
func (s *Store) View() ViewMode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.view
}

// SetFilters replaces the whole filter set.
func (s *Store) SetFilters(f Filters) {
	s.mu.Lock()
	s.filters = f
	s.mu.Unlock()
}

// Filters returns the current filter set.
func (s *Store) Filters() Filters {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filters
}

// ClearFilters resets every filter while leaving tab, view, and checkbox
// selections untouched.
func (s *Store) ClearFilters() {
	s.mu.Lock()
	s.filters = Filters{}
	s.mu.Unlock()
}

// SetMapSelections replaces the heatmap checkbox sets.
func (s *Store) SetMapSelections(jurisdictions, zones Selection) {
	s.mu.Lock()
	if jurisdictions == nil {
		jurisdictions = Selection{}
	}
	if zones == nil {
		zones = Selection{}
	}
	s.mapJurisdictions = jurisdictions
	s.mapZones = zones
	s.mu.Unlock()
}

// MapSelections returns the heatmap checkbox sets.
func (s *Store) MapSelections() (jurisdictions, zones Selection) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mapJurisdictions, s.mapZones
}

// ToggleJurisdiction flips a heatmap jurisdiction checkbox. Selecting
// implies the immediate parent; deselecting touches only the given id.
func (s *Store) ToggleJurisdiction(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mapJurisdictions.Has(id) {
		delete(s.mapJurisdictions, id)
		return
	}
	SelectJurisdiction(s.framework, s.mapJurisdictions, id)
}

// ToggleZone flips a heatmap zone checkbox.
func (s *Store) ToggleZone(id string) {
	s.mu.Lock()
	s.mapZones.Toggle(id)
	s.mu.Unlock()
}

// SetExpanded replaces the expanded-row set.
func (s *Store) SetExpanded(sel Selection) {
	if sel == nil {
		sel = Selection{}
	}
	s.mu.Lock()
	s.expanded = sel
	s.mu.Unlock()
}

// Expanded returns the expanded-row set.
func (s *Store) Expanded() Selection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.expanded
}

// ToggleExpanded flips a heatmap row's expanded state.
func (s *Store) ToggleExpanded(id string) {
	s.mu.Lock()
	s.expanded.Toggle(id)
	s.mu.Unlock()
}

// FilteredRegulations applies the current filters to the regulation list.
func (s *Store) FilteredRegulations() []model.Regulation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return FilterRegulations(s.framework, s.filters)
}

// FilteredRequirements applies the current filters to the requirement list.
func (s *Store) FilteredRequirements() []model.Requirement {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return FilterRequirements(s.framework, s.filters)
}

// FilteredSolutions applies the current filters to the solution list.
func (s *Store) FilteredSolutions() []model.Solution {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return FilterSolutions(s.framework, s.filters)
}

// FilteredMappings applies the current filters to the mapping list.
func (s *Store) FilteredMappings() []model.RequirementMapping {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return FilterMappings(s.framework, s.filters)
}

// FilteredZoneAssignments applies the current filters to the zone
// assignment list.
func (s *Store) FilteredZoneAssignments() []model.ZoneAssignment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return FilterZoneAssignments(s.framework, s.filters)
}

// FilteredEnforcement applies the current filters to the enforcement list.
func (s *Store) FilteredEnforcement() []model.EnforcementAssessment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return FilterEnforcement(s.framework, s.filters)
}

// HeatmapMappings returns the filtered mappings further narrowed to the
// heatmap checkbox selections.
func (s *Store) HeatmapMappings() []model.RequirementMapping {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return VisibleMappings(FilterMappings(s.framework, s.filters), s.mapJurisdictions, s.mapZones)
}
