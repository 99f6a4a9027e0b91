// Package api exposes the snapshot store over HTTP with live updates
// pushed to websocket clients.
package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/neuroforge/forge/internal/runner"
	"github.com/neuroforge/forge/internal/statstore"
)

// Store interface for snapshot queries
type Store interface {
	Latest() (*statstore.Record, error)
	ListSnapshots(limit int) ([]*statstore.Record, error)
}

// Server is the HTTP API server
type Server struct {
	store Store
	addr  string
	mux   *http.ServeMux
	hub   *Hub
}

// NewServer creates a new API server
func NewServer(store Store, addr string) *Server {
	s := &Server{
		store: store,
		addr:  addr,
		mux:   http.NewServeMux(),
		hub:   NewHub(),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.mux.HandleFunc("/api/result", s.resultHandler())
	s.mux.HandleFunc("/api/stats/latest", s.latestHandler())
	s.mux.HandleFunc("/api/snapshots", s.snapshotsHandler())
	s.mux.HandleFunc("/ws", s.wsHandler())
}

// Handler returns the server's root handler
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Start starts the HTTP server
func (s *Server) Start() error {
	go s.hub.Run()
	return http.ListenAndServe(s.addr, s.mux)
}

// Broadcast sends an event to all websocket clients
func (s *Server) Broadcast(event Event) {
	s.hub.Broadcast(event)
}

func (s *Server) resultHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, runner.Run())
	}
}

func (s *Server) latestHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := s.store.Latest()
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		if rec == nil {
			writeError(w, http.StatusNotFound, "no snapshots recorded")
			return
		}
		writeJSON(w, rec)
	}
}

func (s *Server) snapshotsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 0
		if v := r.URL.Query().Get("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				writeError(w, http.StatusBadRequest, "invalid limit")
				return
			}
			limit = n
		}

		records, err := s.store.ListSnapshots(limit)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		if records == nil {
			records = []*statstore.Record{}
		}
		writeJSON(w, records)
	}
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
