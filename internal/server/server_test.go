package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/example/comply/internal/model"
	"github.com/example/comply/internal/state"
)

func testFramework() *model.Framework {
	return &model.Framework{
		Metadata: model.Metadata{Name: "Test Framework", Version: "1.0.0"},
		Jurisdictions: []model.Jurisdiction{
			{ID: "EU", Name: "European Union", Type: model.JurisdictionSupranational},
			{ID: "DE", Name: "Germany", Type: model.JurisdictionCountry, ParentID: "EU"},
		},
		Regulations: []model.Regulation{
			{ID: "gdpr", Name: "General Data Protection Regulation", ShortName: "GDPR", JurisdictionID: "EU", Status: model.RegulationEnforceable},
		},
		Requirements: []model.Requirement{
			{ID: "gdpr-32", RegulationID: "gdpr", Name: "Security of processing", Category: "security"},
		},
		Solutions: []model.Solution{
			{ID: "sov-cloud", Name: "SovCloud", Provider: "Acme", Type: model.SolutionSovereign},
		},
		Mappings: []model.RequirementMapping{
			{ID: "m-1", RequirementID: "gdpr-32", SolutionID: "sov-cloud", ComplianceLevel: model.ComplianceFull, Zone: model.ZoneGreen},
		},
	}
}

func newTestServer(t *testing.T, reload ReloadFunc) *Server {
	t.Helper()
	st := state.New()
	st.SetDataset(testFramework(), nil)
	srv, err := New(":0", st, reload, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return srv
}

func TestIndexRendersFrameworkName(t *testing.T) {
	srv := newTestServer(t, nil)
	rr := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rr, httptest.NewRequest("GET", "http://example/", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Test Framework") {
		t.Fatal("page does not include the framework name")
	}
}

func TestIndexHeatmapTab(t *testing.T) {
	srv := newTestServer(t, nil)
	rr := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rr, httptest.NewRequest("GET", "http://example/?tab=heatmap", nil))
	body := rr.Body.String()
	// The single mapping is green-zone and the zone default is all-checked,
	// so the matrix contains the requirement's control label.
	if !strings.Contains(body, "Security of processing") {
		t.Fatalf("heatmap row missing from page:\n%s", body)
	}
	if !strings.Contains(body, "✓") {
		t.Fatal("compliant cell icon missing")
	}
}

func TestRowsEndpointServesGrid(t *testing.T) {
	srv := newTestServer(t, nil)
	rr := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rr, httptest.NewRequest("GET", "http://example/api/rows/regulations.json", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status %d", rr.Code)
	}
	var grid Grid
	if err := json.Unmarshal(rr.Body.Bytes(), &grid); err != nil {
		t.Fatalf("decode grid: %v", err)
	}
	if len(grid.Rows) != 1 || grid.Rows[0]["id"] != "gdpr" {
		t.Fatalf("rows: %+v", grid.Rows)
	}
	if len(grid.Columns) == 0 || grid.Columns[0].Field != "id" {
		t.Fatalf("columns: %+v", grid.Columns)
	}
}

func TestRowsEndpointAppliesFilters(t *testing.T) {
	srv := newTestServer(t, nil)
	rr := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rr, httptest.NewRequest("GET", "http://example/api/rows/regulations.json?search=nothing-matches", nil))
	var grid Grid
	if err := json.Unmarshal(rr.Body.Bytes(), &grid); err != nil {
		t.Fatalf("decode grid: %v", err)
	}
	if len(grid.Rows) != 0 {
		t.Fatalf("got %d rows, want 0", len(grid.Rows))
	}
}

func TestRowsEndpointUnknownCollection(t *testing.T) {
	srv := newTestServer(t, nil)
	rr := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rr, httptest.NewRequest("GET", "http://example/api/rows/nonsense.json", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status %d, want 404", rr.Code)
	}
}

func TestToggleJurisdictionRedirectImpliesParent(t *testing.T) {
	srv := newTestServer(t, nil)
	rr := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rr, httptest.NewRequest("GET", "http://example/toggle?kind=jurisdiction&id=DE&tab=heatmap", nil))
	if rr.Code != http.StatusSeeOther {
		t.Fatalf("status %d, want 303", rr.Code)
	}
	loc, err := url.Parse(rr.Header().Get("Location"))
	if err != nil {
		t.Fatalf("parse redirect: %v", err)
	}
	if got := loc.Query().Get("mapJurisdictions"); got != "DE,EU" {
		t.Fatalf("mapJurisdictions=%q, want DE,EU", got)
	}
}

func TestToggleUnknownKind(t *testing.T) {
	srv := newTestServer(t, nil)
	rr := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rr, httptest.NewRequest("GET", "http://example/toggle?kind=bogus&id=x", nil))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", rr.Code)
	}
}

func TestReloadSwapsDataset(t *testing.T) {
	next := testFramework()
	next.Metadata.Name = "Reloaded Framework"
	srv := newTestServer(t, func(context.Context) (*model.Framework, *model.ExecutiveOverview, error) {
		return next, nil, nil
	})
	rr := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rr, httptest.NewRequest("POST", "http://example/reload", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rr.Code, rr.Body.String())
	}
	if got := srv.store.Framework().Metadata.Name; got != "Reloaded Framework" {
		t.Fatalf("framework after reload: %q", got)
	}
}

func TestReloadFailureKeepsDataset(t *testing.T) {
	srv := newTestServer(t, func(context.Context) (*model.Framework, *model.ExecutiveOverview, error) {
		return nil, nil, errors.New("source unreachable")
	})
	rr := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rr, httptest.NewRequest("POST", "http://example/reload", nil))
	if rr.Code != http.StatusBadGateway {
		t.Fatalf("status %d, want 502", rr.Code)
	}
	if got := srv.store.Framework().Metadata.Name; got != "Test Framework" {
		t.Fatalf("framework replaced on failed reload: %q", got)
	}
	if srv.store.LastError() == nil {
		t.Fatal("last error not recorded")
	}
}

func TestReloadRequiresPost(t *testing.T) {
	srv := newTestServer(t, nil)
	rr := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rr, httptest.NewRequest("GET", "http://example/reload", nil))
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status %d, want 405", rr.Code)
	}
}

func TestDetailEndpoint(t *testing.T) {
	srv := newTestServer(t, nil)
	rr := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rr, httptest.NewRequest("GET", "http://example/api/detail?collection=solutions&id=sov-cloud", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status %d", rr.Code)
	}
	var sol model.Solution
	if err := json.Unmarshal(rr.Body.Bytes(), &sol); err != nil {
		t.Fatalf("decode solution: %v", err)
	}
	if sol.Name != "SovCloud" {
		t.Fatalf("got %+v", sol)
	}

	rr = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rr, httptest.NewRequest("GET", "http://example/api/detail?collection=solutions&id=ghost", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("missing entity: status %d, want 404", rr.Code)
	}
}
