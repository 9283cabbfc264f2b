// Package middleware provides the HTTP cross-cutting layers: session
// identity, Redis response caching and distributed rate limiting.
package middleware

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// sessionCookie is the cookie carrying the signed session token.
const sessionCookie = "booking_session"

// sessionContextKey is where the verified session id is stored on the
// Echo context.
const sessionContextKey = "session_id"

// Session binds every caller to a stable session id.  Each draft
// belongs to exactly one session, so the id is what keys the draft
// registry.  The id travels in an HS256-signed token (cookie, or the
// X-Session-Token header for non-browser clients); a missing or
// invalid token silently starts a fresh session rather than failing
// the request.  There are no accounts and no passwords here; the
// token only proves "same caller as before".
func Session(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sid := ""
			if raw := rawSessionToken(c); raw != "" {
				sid = parseSessionToken(secret, raw)
			}
			if sid == "" {
				sid = uuid.NewString()
				token, err := newSessionToken(secret, sid)
				if err != nil {
					return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create session"})
				}
				c.SetCookie(&http.Cookie{
					Name:     sessionCookie,
					Value:    token,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
				c.Response().Header().Set("X-Session-Token", token)
			}
			c.Set(sessionContextKey, sid)
			return next(c)
		}
	}
}

// SessionID returns the session id placed on the context by Session.
// It is empty only when the middleware did not run.
func SessionID(c echo.Context) string {
	if v, ok := c.Get(sessionContextKey).(string); ok {
		return v
	}
	return ""
}

// currentSessionID is the identity hook used by the rate limiter key
// builder.  Guests without a running session group under "guest".
func currentSessionID(c echo.Context) string {
	if sid := SessionID(c); sid != "" {
		return sid
	}
	return "guest"
}

func rawSessionToken(c echo.Context) string {
	if ck, err := c.Cookie(sessionCookie); err == nil && ck.Value != "" {
		return ck.Value
	}
	return c.Request().Header.Get("X-Session-Token")
}

// newSessionToken signs an HS256 token whose subject is the session
// id.  Tokens carry iat only; sessions do not expire server-side, the
// draft registry simply forgets idle sessions on restart.
func newSessionToken(secret, sid string) (string, error) {
	claims := jwt.MapClaims{
		"sub": sid,
		"iat": time.Now().UTC().Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

// parseSessionToken verifies the signature and extracts the session
// id.  Any failure yields "" so the caller mints a fresh session.
func parseSessionToken(secret, raw string) string {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return ""
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}
	sid, _ := claims["sub"].(string)
	return sid
}
