package out

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	authout "aiact/internal/modules/auth/port/out"
)

// JWTInspector decodes the token payload without verifying the signature.
// The client has no key material; the expiry is display metadata only and
// the server remains the authority on token validity.
type JWTInspector struct{}

func NewJWTInspector() authout.TokenInspector {
	return JWTInspector{}
}

func (JWTInspector) Expiry(token string) (time.Time, bool) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
