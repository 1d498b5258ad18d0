package api

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiresAt reads the expiry claim out of a JWT without verifying its
// signature. The token is opaque to the client as far as trust goes; this
// is display/housekeeping information only (e.g. prompting a refresh).
// Returns ok=false for non-JWT tokens or tokens without an exp claim.
func TokenExpiresAt(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
