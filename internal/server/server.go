// Package server hosts the browser viewer: server-rendered cards, tables,
// zones, and the requirement×solution heatmap over the in-memory dataset,
// with every piece of UI state carried in the URL. A JSON endpoint feeds
// the table widget, and a websocket feed tells connected browsers when the
// dataset has been reloaded.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/example/comply/internal/model"
	"github.com/example/comply/internal/state"
	"github.com/example/comply/internal/viewstate"
)

// ReloadFunc re-fetches both aggregates from the configured source.
type ReloadFunc func(ctx context.Context) (*model.Framework, *model.ExecutiveOverview, error)

type Server struct {
	addr     string
	store    *state.Store
	reload   ReloadFunc
	log      *zap.Logger
	tmpl     *template.Template
	hub      *hub
	upgrader websocket.Upgrader

	reloadMu sync.Mutex
}

// New builds a viewer for the given store. reload may be nil, in which case
// the reload endpoint reports failure. addr defaults to :8080.
func New(addr string, store *state.Store, reload ReloadFunc, log *zap.Logger) (*Server, error) {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		addr = ":8080"
	}
	if log == nil {
		log = zap.NewNop()
	}
	tmpl, err := template.New("viewer").Parse(viewerHTML)
	if err != nil {
		return nil, fmt.Errorf("parse viewer template: %w", err)
	}
	return &Server{
		addr:   addr,
		store:  store,
		reload: reload,
		log:    log,
		tmpl:   tmpl,
		hub:    newHub(log),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}, nil
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	if s == nil {
		return ""
	}
	return s.addr
}

// Handler returns the full route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/toggle", s.handleToggle)
	mux.HandleFunc("/reload", s.handleReload)
	mux.HandleFunc("/ws", s.handleWS)
	mux.HandleFunc("/api/framework.json", s.handleFramework)
	mux.HandleFunc("/api/overview.json", s.handleOverview)
	mux.HandleFunc("/api/rows/", s.handleRows)
	mux.HandleFunc("/api/detail", s.handleDetail)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = fmt.Fprint(w, "ok")
	})
	return mux
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{Addr: s.addr, Handler: s.Handler()}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		s.hub.Close()
	}()
	s.log.Info("viewer ready", zap.String("addr", s.addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// applyView mirrors the request's URL state into the store, so that all
// derivations for this render see the same selections.
func (s *Server) applyView(v viewstate.View) {
	s.store.SetTab(v.Tab)
	s.store.SetView(v.Mode)
	s.store.SetFilters(v.Filters)
	s.store.SetMapSelections(v.MapJurisdictions, v.MapZones)
	s.store.SetExpanded(v.Expanded)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	v := viewstate.Decode(r.URL.Query())
	s.applyView(v)
	data := s.buildPage(v)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.Execute(w, data); err != nil {
		s.log.Error("render viewer page", zap.Error(err))
	}
}

// handleToggle flips one checkbox or expandable row and redirects back to
// the page with the new state in the URL. Jurisdiction selection implies
// the immediate parent; all other toggles touch only the given id.
func (s *Server) handleToggle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	v := viewstate.Decode(q)
	s.applyView(v)

	id := q.Get("id")
	if id == "" {
		http.Error(w, "missing id", http.StatusBadRequest)
		return
	}
	switch q.Get("kind") {
	case "jurisdiction":
		s.store.ToggleJurisdiction(id)
	case "zone":
		s.store.ToggleZone(id)
	case "expanded":
		s.store.ToggleExpanded(id)
	default:
		http.Error(w, "unknown toggle kind", http.StatusBadRequest)
		return
	}

	v.MapJurisdictions, v.MapZones = s.store.MapSelections()
	v.Expanded = s.store.Expanded()
	http.Redirect(w, r, "/"+v.Query(), http.StatusSeeOther)
}

func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "POST required", http.StatusMethodNotAllowed)
		return
	}
	if s.reload == nil {
		http.Error(w, "no data source configured", http.StatusServiceUnavailable)
		return
	}
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	s.store.SetLoading(true)
	defer s.store.SetLoading(false)

	fw, ov, err := s.reload(r.Context())
	if err != nil {
		s.store.SetError(err)
		s.log.Error("reload dataset", zap.Error(err))
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	s.store.SetDataset(fw, ov)
	s.log.Info("dataset reloaded",
		zap.String("framework", fw.Metadata.Name),
		zap.Int("mappings", len(fw.Mappings)))

	event, _ := json.Marshal(map[string]any{
		"event":     "reload",
		"framework": fw.Metadata.Name,
		"version":   fw.Metadata.Version,
		"mappings":  len(fw.Mappings),
	})
	s.hub.Broadcast(event)

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_, _ = w.Write(event)
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Error("upgrade viewer websocket", zap.Error(err))
		return
	}
	client := newClient(conn, s.log)
	s.hub.Register(client)
	go client.writeLoop()
	client.readLoop(func() {
		s.hub.Unregister(client)
	})
}

func (s *Server) handleFramework(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, s.store.Framework())
}

func (s *Server) handleOverview(w http.ResponseWriter, _ *http.Request) {
	ov := s.store.Overview()
	if ov == nil {
		http.Error(w, "no executive overview in dataset", http.StatusNotFound)
		return
	}
	writeJSON(w, ov)
}

// handleRows serves the table widget: /api/rows/{collection}.json with the
// request's filters applied.
func (s *Server) handleRows(w http.ResponseWriter, r *http.Request) {
	v := viewstate.Decode(r.URL.Query())
	s.applyView(v)

	name := strings.TrimPrefix(r.URL.Path, "/api/rows/")
	name = strings.TrimSuffix(name, ".json")
	grid, ok := BuildGrid(s.store, name)
	if !ok {
		http.Error(w, "unknown collection", http.StatusNotFound)
		return
	}
	writeJSON(w, grid)
}

// handleDetail serves one entity by id; the table widget's row-click
// handler fetches it for the modal.
func (s *Server) handleDetail(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	collection, id := q.Get("collection"), q.Get("id")
	entity, ok := lookupEntity(s.store.Framework(), collection, id)
	if !ok {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	writeJSON(w, entity)
}

func lookupEntity(fw *model.Framework, collection, id string) (any, bool) {
	switch collection {
	case "regulations":
		if r := fw.Regulation(id); r != nil {
			return r, true
		}
	case "requirements":
		if r := fw.Requirement(id); r != nil {
			return r, true
		}
	case "solutions":
		if sol := fw.Solution(id); sol != nil {
			return sol, true
		}
	case "jurisdictions":
		if j := fw.Jurisdiction(id); j != nil {
			return j, true
		}
	case "mappings":
		for i := range fw.Mappings {
			if fw.Mappings[i].ID == id {
				return &fw.Mappings[i], true
			}
		}
	case "zones":
		for i := range fw.ZoneAssignments {
			if fw.ZoneAssignments[i].ID == id {
				return &fw.ZoneAssignments[i], true
			}
		}
	case "enforcement":
		for i := range fw.EnforcementAssessments {
			if fw.EnforcementAssessments[i].ID == id {
				return &fw.EnforcementAssessments[i], true
			}
		}
	}
	return nil, false
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
