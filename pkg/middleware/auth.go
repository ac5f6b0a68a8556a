package middleware

import (
	"log"
	"time"

	"event-marketplace/internal/core"

	"github.com/golang-jwt/jwt/v5"
	pbCore "github.com/pocketbase/pocketbase/core"
)

const (
	// AuthCookie carries the PocketBase auth token of the signed-in profile
	AuthCookie = "pb_auth"

	identityKey = "identity"
)

// LoadIdentity resolves the session cookie into a *core.Identity.
// It never blocks a request; pages decide what to show without one.
func LoadIdentity(auth core.AuthGateway) func(e *pbCore.RequestEvent) error {
	return func(e *pbCore.RequestEvent) error {
		cookie, err := e.Request.Cookie(AuthCookie)
		if err != nil || cookie.Value == "" {
			return e.Next()
		}

		if tokenExpired(cookie.Value, time.Now()) {
			return e.Next()
		}

		identity, err := auth.IdentityFromToken(cookie.Value)
		if err != nil {
			log.Printf("[AUTH] rejected session token: %v", err)
			return e.Next()
		}

		e.Set(identityKey, identity)
		return e.Next()
	}
}

// IdentityFrom returns the identity loaded for this request, or nil
func IdentityFrom(e *pbCore.RequestEvent) *core.Identity {
	identity, _ := e.Get(identityKey).(*core.Identity)
	return identity
}

// tokenExpired reads the exp claim without verifying the signature.
// Malformed tokens count as expired; signature checks stay with the backend.
func tokenExpired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return true
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return true
	}
	if exp == nil {
		return false
	}
	return exp.Before(now)
}
