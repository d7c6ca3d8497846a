package httptransport

import (
	"encoding/json"
	"errors"
	"net/http"

	appaccount "github.com/apoorvrathore077/high-stake-dice-backend/internal/app/account"
)

type UserHandlers struct {
	svc *appaccount.Service
}

func NewUserHandlers(svc *appaccount.Service) *UserHandlers {
	return &UserHandlers{svc: svc}
}

type signupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *UserHandlers) Signup() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req signupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_request")
			return
		}
		resp, err := h.svc.Signup(r.Context(), req.Username, req.Email, req.Password)
		if err != nil {
			writeAccountError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, resp)
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *UserHandlers) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteHTTPError(w, http.StatusBadRequest, "invalid_request")
			return
		}
		resp, err := h.svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			writeAccountError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func (h *UserHandlers) Profile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := UserIDFromContext(r.Context())
		if !ok {
			WriteHTTPError(w, http.StatusUnauthorized, "authentication_required")
			return
		}
		resp, err := h.svc.Profile(r.Context(), userID)
		if err != nil {
			writeAccountError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func writeAccountError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, appaccount.ErrMissingFields):
		WriteHTTPError(w, http.StatusBadRequest, "missing_fields")
	case errors.Is(err, appaccount.ErrEmailTaken):
		WriteHTTPError(w, http.StatusConflict, "email_taken")
	case errors.Is(err, appaccount.ErrUsernameTaken):
		WriteHTTPError(w, http.StatusConflict, "username_taken")
	case errors.Is(err, appaccount.ErrInvalidCredentials):
		WriteHTTPError(w, http.StatusBadRequest, "invalid_credentials")
	case errors.Is(err, appaccount.ErrUserNotFound):
		WriteHTTPError(w, http.StatusNotFound, "user_not_found")
	case errors.Is(err, appaccount.ErrAuthenticationRequired):
		WriteHTTPError(w, http.StatusUnauthorized, "authentication_required")
	default:
		WriteHTTPError(w, http.StatusInternalServerError, "internal_error")
	}
}
