package viewstate

import (
	"net/url"
	"reflect"
	"testing"

	"github.com/example/comply/internal/state"
)

func TestDecodeDefaults(t *testing.T) {
	v := Decode(url.Values{})
	if v.Tab != state.TabOverview {
		t.Errorf("tab: got %q, want overview", v.Tab)
	}
	if v.Mode != state.ViewCards {
		t.Errorf("view: got %q, want cards", v.Mode)
	}
	if !v.Filters.IsZero() {
		t.Errorf("filters: got %+v, want zero", v.Filters)
	}
	if len(v.MapJurisdictions) != 0 || len(v.MapZones) != 0 || len(v.Expanded) != 0 {
		t.Error("selections: want all empty")
	}
}

func TestDecodeUnknownValuesFallBack(t *testing.T) {
	q := url.Values{"tab": {"bogus"}, "view": {"spreadsheet"}}
	v := Decode(q)
	if v.Tab != state.TabOverview || v.Mode != state.ViewCards {
		t.Fatalf("got tab=%q view=%q, want defaults", v.Tab, v.Mode)
	}
}

func TestDecodeSourceAlias(t *testing.T) {
	if v := Decode(url.Values{"data": {"./data"}}); v.Source != "./data" {
		t.Errorf("data alias: got %q", v.Source)
	}
	// The url parameter wins over the alias.
	q := url.Values{"url": {"https://example.com/fw"}, "data": {"./data"}}
	if v := Decode(q); v.Source != "https://example.com/fw" {
		t.Errorf("precedence: got %q", v.Source)
	}
}

func TestEncodeOmitsDefaults(t *testing.T) {
	q := Default().Encode()
	if len(q) != 0 {
		t.Fatalf("default view encoded to %v, want empty", q)
	}
	if got := Default().Query(); got != "" {
		t.Fatalf("Query() = %q, want empty", got)
	}
}

func TestEncodeOmitsClearedFilter(t *testing.T) {
	v := Default()
	v.Filters.Jurisdiction = "DE"
	if got := v.Encode().Get("jurisdiction"); got != "DE" {
		t.Fatalf("got %q", got)
	}
	v.Filters.Jurisdiction = ""
	if _, ok := v.Encode()["jurisdiction"]; ok {
		t.Fatal("cleared filter still present in query")
	}
}

func TestRoundTrip(t *testing.T) {
	v := View{
		Source: "https://example.com/frameworks/eu",
		Tab:    state.TabHeatmap,
		Mode:   state.ViewTable,
		Filters: state.Filters{
			Jurisdiction: "DE",
			Regulation:   "gdpr",
			Search:       "data transfer",
		},
		MapJurisdictions: state.NewSelection([]string{"DE", "EU"}),
		MapZones:         state.NewSelection([]string{"green", "yellow"}),
		Expanded:         state.NewSelection([]string{"gdpr-32"}),
	}
	got := Decode(v.Encode())
	if !reflect.DeepEqual(got, v) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, v)
	}
}

func TestDecodeListSkipsEmptySegments(t *testing.T) {
	v := Decode(url.Values{"mapZones": {"green,,red,"}})
	if got := v.MapZones.Sorted(); !reflect.DeepEqual(got, []string{"green", "red"}) {
		t.Fatalf("got %v", got)
	}
}

func TestWithHelpersDoNotMutate(t *testing.T) {
	base := Default()
	modified := base.WithTab(state.TabZones).WithMode(state.ViewTable).
		WithFilters(state.Filters{Zone: "red"})
	if base.Tab != state.TabOverview || base.Mode != state.ViewCards || !base.Filters.IsZero() {
		t.Fatal("base view mutated")
	}
	if modified.Tab != state.TabZones || modified.Mode != state.ViewTable || modified.Filters.Zone != "red" {
		t.Fatalf("got %+v", modified)
	}
}
