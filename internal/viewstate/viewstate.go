// Package viewstate maps viewer UI state to and from URL query parameters,
// so that every view is a shareable link. Encoding omits parameters whose
// value is the default; decoding treats an absent parameter as the default
// and silently falls back on unknown tab or view values.
package viewstate

import (
	"net/url"
	"strings"

	"github.com/example/comply/internal/state"
)

const (
	paramSource           = "url"
	paramSourceAlt        = "data"
	paramTab              = "tab"
	paramView             = "view"
	paramJurisdiction     = "jurisdiction"
	paramRegulation       = "regulation"
	paramSolution         = "solution"
	paramZone             = "zone"
	paramSearch           = "search"
	paramMapJurisdictions = "mapJurisdictions"
	paramMapZones         = "mapZones"
	paramExpanded         = "expanded"
)

// View is the complete URL-addressable UI state.
type View struct {
	Source string
	Tab    state.Tab
	Mode   state.ViewMode

	Filters state.Filters

	MapJurisdictions state.Selection
	MapZones         state.Selection
	Expanded         state.Selection
}

// Default returns the view state an unparameterized URL denotes.
func Default() View {
	return View{
		Tab:              state.TabOverview,
		Mode:             state.ViewCards,
		MapJurisdictions: state.Selection{},
		MapZones:         state.Selection{},
		Expanded:         state.Selection{},
	}
}

// Decode parses query parameters into a View. The "url" parameter wins over
// its legacy "data" alias; unknown tab and view values fall back to the
// defaults rather than erroring.
func Decode(q url.Values) View {
	v := Default()

	v.Source = q.Get(paramSource)
	if v.Source == "" {
		v.Source = q.Get(paramSourceAlt)
	}
	if tab := state.Tab(q.Get(paramTab)); tab.Valid() {
		v.Tab = tab
	}
	if mode := state.ViewMode(q.Get(paramView)); mode.Valid() {
		v.Mode = mode
	}

	v.Filters = state.Filters{
		Jurisdiction: q.Get(paramJurisdiction),
		Regulation:   q.Get(paramRegulation),
		Solution:     q.Get(paramSolution),
		Zone:         q.Get(paramZone),
		Search:       q.Get(paramSearch),
	}

	v.MapJurisdictions = decodeList(q.Get(paramMapJurisdictions))
	v.MapZones = decodeList(q.Get(paramMapZones))
	v.Expanded = decodeList(q.Get(paramExpanded))
	return v
}

// Encode renders the View as query parameters. Parameters at their default
// value are absent, not present-but-empty, so encoding the default view
// yields an empty query string.
func (v View) Encode() url.Values {
	q := url.Values{}
	setNonEmpty(q, paramSource, v.Source)
	if v.Tab != state.TabOverview {
		q.Set(paramTab, string(v.Tab))
	}
	if v.Mode != state.ViewCards {
		q.Set(paramView, string(v.Mode))
	}
	setNonEmpty(q, paramJurisdiction, v.Filters.Jurisdiction)
	setNonEmpty(q, paramRegulation, v.Filters.Regulation)
	setNonEmpty(q, paramSolution, v.Filters.Solution)
	setNonEmpty(q, paramZone, v.Filters.Zone)
	setNonEmpty(q, paramSearch, v.Filters.Search)
	setNonEmpty(q, paramMapJurisdictions, encodeList(v.MapJurisdictions))
	setNonEmpty(q, paramMapZones, encodeList(v.MapZones))
	setNonEmpty(q, paramExpanded, encodeList(v.Expanded))
	return q
}

// Query renders the View as a query string prefixed with "?", or "" for the
// default view. Templates use it to build navigation links.
func (v View) Query() string {
	q := v.Encode()
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

// WithTab returns a copy of the view on a different tab.
func (v View) WithTab(t state.Tab) View {
	v.Tab = t
	return v
}

// WithMode returns a copy of the view in a different view mode.
func (v View) WithMode(m state.ViewMode) View {
	v.Mode = m
	return v
}

// WithFilters returns a copy of the view with the filter set replaced.
func (v View) WithFilters(f state.Filters) View {
	v.Filters = f
	return v
}

func decodeList(raw string) state.Selection {
	if raw == "" {
		return state.Selection{}
	}
	return state.NewSelection(strings.Split(raw, ","))
}

func encodeList(sel state.Selection) string {
	return strings.Join(sel.Sorted(), ",")
}

func setNonEmpty(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}
