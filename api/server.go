package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/MegaCode111REAL/mancala-web/relay"
	"github.com/MegaCode111REAL/mancala-web/transport/websocket"
)

// Server is the HTTP server: WebSocket endpoint, read-only room listing,
// and static assets.
type Server struct {
	store     *relay.Store
	hub       *websocket.Hub
	router    *mux.Router
	staticDir string
}

// NewServer creates an API server over the given store and hub, serving
// static assets from staticDir.
func NewServer(store *relay.Store, hub *websocket.Hub, staticDir string) *Server {
	s := &Server{
		store:     store,
		hub:       hub,
		router:    mux.NewRouter(),
		staticDir: staticDir,
	}

	s.setupRoutes()
	return s
}

// setupRoutes configures all routes.
func (s *Server) setupRoutes() {
	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/rooms", s.handleListRooms).Methods("GET")
	api.HandleFunc("/health", s.handleHealth).Methods("GET")

	s.router.HandleFunc("/ws", s.hub.ServeWS)

	s.router.PathPrefix("/").Handler(http.FileServer(http.Dir(s.staticDir)))
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// handleListRooms returns the current lobby snapshot.
func (s *Server) handleListRooms(w http.ResponseWriter, r *http.Request) {
	snapshot := s.store.Snapshot()
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"count": len(snapshot),
		"rooms": snapshot,
	})
}

// handleHealth reports liveness and the size of the room registry.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"rooms":  s.store.Len(),
	})
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
