package httpapi

import (
	"net/http"
	"strings"

	"github.com/Sadia492/portfolio-server/internal/server/models"
)

// extractToken pulls a session token from the Authorization header, falling
// back to the session cookie. The header takes precedence when both carriers
// are present.
func extractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			if token := strings.TrimSpace(parts[1]); token != "" {
				return token
			}
		}
	}

	cookie, err := r.Cookie(sessionCookieName)
	if err == nil && cookie.Value != "" {
		return cookie.Value
	}

	return ""
}

// protect is the access gate: it resolves the session token and attaches the
// identity to the request context, or rejects with 401 before any handler
// runs. A missing token and an invalid one produce identical responses.
func (s *Server) protect(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractToken(r)
		if token == "" {
			writeFailure(w, http.StatusUnauthorized, msgNotAuthorized)
			return
		}

		claims, err := s.auth.VerifyToken(token)
		if err != nil {
			// Internal-only diagnostics; the response stays ambiguous.
			s.logger.Debug(r.Context(), "token rejected", "error", err.Error())
			writeFailure(w, http.StatusUnauthorized, msgNotAuthorized)
			return
		}

		identity := &Identity{UserID: claims.UserID, Email: claims.Email, Role: claims.Role}
		next.ServeHTTP(w, r.WithContext(withIdentity(r.Context(), identity)))
	})
}

// requireOwner passes only an OWNER identity. Fails closed with 403 when no
// identity is attached at all.
func (s *Server) requireOwner(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := IdentityFrom(r.Context())
		if !ok || id.Role != models.RoleOwner {
			writeFailure(w, http.StatusForbidden, msgNotAuthorized+" - Owner access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requireAdmin passes OWNER and ADMIN identities. Fails closed with 403 when
// no identity is attached at all.
func (s *Server) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := IdentityFrom(r.Context())
		if !ok || (id.Role != models.RoleOwner && id.Role != models.RoleAdmin) {
			writeFailure(w, http.StatusForbidden, msgNotAuthorized+" - Admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// recoverPanics is the outermost boundary: any escaped panic becomes the
// generic 500, with the fault logged for operators.
func (s *Server) recoverPanics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				s.logger.Error(r.Context(), "panic recovered", "path", r.URL.Path, "panic", rec)
				writeFailure(w, http.StatusInternalServerError, msgServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// cors allows the single configured browser origin, with credentials so the
// session cookie is sent.
func (s *Server) cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", s.corsOrigin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
