package httpapi

import "net/http"

const sessionCookieName = "token"

// sessionCookie carries the session token to the browser. MaxAge matches the
// token's own expiry so cookie and token die together. Secure is set only in
// production so local development over plain HTTP keeps working.
func (s *Server) sessionCookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.auth.TokenValidity().Seconds()),
		HttpOnly: true,
		Secure:   s.production,
		SameSite: http.SameSiteStrictMode,
	}
}

// clearedSessionCookie removes the session cookie. The attributes must match
// the ones used at set time or some clients will not remove it.
func (s *Server) clearedSessionCookie() *http.Cookie {
	return &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.production,
		SameSite: http.SameSiteStrictMode,
	}
}
