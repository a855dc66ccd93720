package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenService validates access tokens minted by the external identity
// provider. The platform never issues tokens itself; it only verifies the
// shared-secret HMAC signature and reads the claims.
type TokenService interface {
	// ValidateToken checks the validity of a token string against a secret.
	ValidateToken(tokenString string, secret string) (*jwt.Token, error)
}
