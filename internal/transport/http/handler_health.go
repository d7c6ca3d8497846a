package httptransport

import (
	"net/http"

	"github.com/apoorvrathore077/high-stake-dice-backend/internal/store"
)

type HealthHandlers struct {
	store *store.Store
}

func NewHealthHandlers(st *store.Store) *HealthHandlers {
	return &HealthHandlers{store: st}
}

func (h *HealthHandlers) Health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.store.Ping(r.Context()); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]any{"ok": false, "db": "down"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"ok": true, "db": "up"})
	}
}

func (h *HealthHandlers) Root() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"service": "high-stake-dice-backend",
			"status":  "running",
		})
	}
}
