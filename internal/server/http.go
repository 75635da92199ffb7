package server

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/mtreloar/souschef/internal/logging"
)

// registerRoutes wires the companion API onto the mux.
func (s *Server) registerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/healthz", s.withLogging(s.handleHealth))
	mux.HandleFunc("/api/recipe", s.withLogging(s.handleRecipe))
	mux.HandleFunc("/api/state", s.withLogging(s.handleState))
	mux.HandleFunc("/ws", s.handleWebSocket)
}

// withLogging logs each request before dispatching it.
func (s *Server) withLogging(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logging.LogHTTPRequest(r.RemoteAddr, r.Method, r.URL.Path)
		next(w, r)
	}
}

// handleHealth reports liveness and the companion count.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":     "ok",
		"companions": s.hub.count(),
	})
}

// handleRecipe returns the full recipe being cooked, so companions can
// render ingredients and upcoming steps without a cookbook of their own.
func (s *Server) handleRecipe(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, s.session.Recipe())
}

// handleState returns the current session snapshot. Companions that
// only poll (no WebSocket) use this.
func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, s.session.Snapshot())
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Error("Failed to encode response", zap.Error(err))
	}
}
