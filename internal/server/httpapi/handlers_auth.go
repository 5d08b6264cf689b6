package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/Sadia492/portfolio-server/internal/common"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	token, user, err := s.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrCredentialsRequired):
			writeFailure(w, http.StatusBadRequest, "Email and password are required")
		case errors.Is(err, common.ErrInvalidEmailFormat):
			writeFailure(w, http.StatusUnauthorized, "Invalid email format")
		case errors.Is(err, common.ErrorUnauthorized):
			writeFailure(w, http.StatusUnauthorized, msgInvalidCredentials)
		default:
			s.logger.Error(r.Context(), "login failed", "error", err.Error())
			writeFailure(w, http.StatusInternalServerError, msgServerError)
		}
		return
	}

	s.logger.Info(r.Context(), "login", "userId", user.ID)

	http.SetCookie(w, s.sessionCookie(token))
	writeSuccess(w, http.StatusOK, map[string]any{"user": user})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFrom(r.Context())
	if !ok {
		writeFailure(w, http.StatusUnauthorized, msgNotAuthorized)
		return
	}

	user, err := s.auth.GetCurrentUser(r.Context(), identity.UserID)
	if err != nil {
		s.writeServiceError(w, r, err, "User not found", "")
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{"user": user})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, s.clearedSessionCookie())
	writeSuccess(w, http.StatusOK, map[string]any{"message": "Logged out successfully"})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, http.StatusOK, map[string]any{
		"message":   "API is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
