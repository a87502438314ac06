// Package api exposes the renaming pipeline over HTTP: upload a bulk
// workbook, adjust the naming scheme, preview renames, and download the
// exports.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ignite/ads-renamer/internal/config"
	"github.com/ignite/ads-renamer/internal/session"
)

// Handlers contains all HTTP handlers
type Handlers struct {
	store  *session.Store
	config *config.Config
}

// NewHandlers creates a new Handlers instance
func NewHandlers(store *session.Store, cfg *config.Config) *Handlers {
	return &Handlers{store: store, config: cfg}
}

// HealthCheck reports service liveness and the live session count.
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":   "ok",
		"sessions": h.store.Len(),
	})
}

// sessionFromRequest resolves the {sessionID} URL parameter. A nil
// session means the response has already been written.
func (h *Handlers) sessionFromRequest(w http.ResponseWriter, r *http.Request) *session.Session {
	id, err := uuid.Parse(chi.URLParam(r, "sessionID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid session id")
		return nil
	}
	sess, ok := h.store.Get(id)
	if !ok {
		respondError(w, http.StatusNotFound, "session not found or expired")
		return nil
	}
	return sess
}

// Response helpers

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
