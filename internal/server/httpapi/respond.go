package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Sadia492/portfolio-server/internal/common"
	"github.com/Sadia492/portfolio-server/internal/server/services"
)

// Canonical response messages. The 401 texts are deliberately uninformative:
// missing, malformed and expired tokens all produce the same body, and a
// wrong password reads the same as an unknown email.
const (
	msgNotAuthorized      = "Not authorized to access this route"
	msgInvalidCredentials = "Invalid credentials"
	msgServerError        = "Internal server error"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeSuccess(w http.ResponseWriter, status int, body map[string]any) {
	payload := map[string]any{"success": true}
	for k, v := range body {
		payload[k] = v
	}
	writeJSON(w, status, payload)
}

func writeFailure(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{"success": false, "message": message})
}

// writeServiceError maps service-layer outcomes onto the error taxonomy:
// validation 400, unauthorized 401, forbidden 403, not-found 404, slug
// conflict 409, everything else 500. notFoundMsg and conflictMsg carry the
// resource-specific wording.
func (s *Server) writeServiceError(w http.ResponseWriter, r *http.Request, err error, notFoundMsg, conflictMsg string) {
	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		writeFailure(w, http.StatusBadRequest, ve.Message)
	case errors.Is(err, common.ErrorUnauthorized):
		writeFailure(w, http.StatusUnauthorized, msgInvalidCredentials)
	case errors.Is(err, common.ErrorForbidden):
		writeFailure(w, http.StatusForbidden, msgNotAuthorized)
	case errors.Is(err, common.ErrorNotFound):
		writeFailure(w, http.StatusNotFound, notFoundMsg)
	case errors.Is(err, common.ErrorAlreadyExists):
		writeFailure(w, http.StatusConflict, conflictMsg)
	default:
		s.logger.Error(r.Context(), "request failed", "path", r.URL.Path, "error", err.Error())
		writeFailure(w, http.StatusInternalServerError, msgServerError)
	}
}
