package httptransport

import (
	"encoding/json"
	"errors"
	"net/http"

	appgame "github.com/apoorvrathore077/high-stake-dice-backend/internal/app/game"
)

type GameHandlers struct {
	svc *appgame.Service
}

func NewGameHandlers(svc *appgame.Service) *GameHandlers {
	return &GameHandlers{svc: svc}
}

type placeBetRequest struct {
	// json.Number keeps "100", 100 and 100.0 distinguishable from junk
	// without losing precision
	BetAmount json.Number `json:"bet_amount"`
}

func (h *GameHandlers) PlaceBet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := UserIDFromContext(r.Context())
		if !ok {
			WriteHTTPError(w, http.StatusUnauthorized, "authentication_required")
			return
		}
		var req placeBetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_amount")
			return
		}
		resp, err := h.svc.PlaceBet(r.Context(), userID, req.BetAmount.String())
		if err != nil {
			writeGameError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func (h *GameHandlers) History() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := UserIDFromContext(r.Context())
		if !ok {
			WriteHTTPError(w, http.StatusUnauthorized, "authentication_required")
			return
		}
		page, limit := ParsePageLimit(r)
		resp, err := h.svc.History(r.Context(), userID, page, limit)
		if err != nil {
			writeGameError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func (h *GameHandlers) Stats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := UserIDFromContext(r.Context())
		if !ok {
			WriteHTTPError(w, http.StatusUnauthorized, "authentication_required")
			return
		}
		resp, err := h.svc.Stats(r.Context(), userID)
		if err != nil {
			writeGameError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func writeGameError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, appgame.ErrAuthenticationRequired):
		WriteHTTPError(w, http.StatusUnauthorized, "authentication_required")
	case errors.Is(err, appgame.ErrInvalidAmount):
		WriteHTTPError(w, http.StatusBadRequest, "invalid_amount")
	case errors.Is(err, appgame.ErrUserNotFound):
		WriteHTTPError(w, http.StatusNotFound, "user_not_found")
	case errors.Is(err, appgame.ErrInsufficientFunds):
		WriteHTTPError(w, http.StatusBadRequest, "insufficient_funds")
	case errors.Is(err, appgame.ErrStoreUnavailable):
		WriteHTTPError(w, http.StatusServiceUnavailable, "store_unavailable")
	default:
		WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
	}
}
