// Package auth provides the concrete token validation used to resolve the
// authenticated identity. Tokens are minted by the external identity
// provider; this service only verifies the shared-secret HMAC signature.
package auth

import (
	"makan/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct{}

// NewJWTService is the constructor for jwtService.
func NewJWTService() service.TokenService {
	return &jwtService{}
}

// ValidateToken checks the validity of a token string against a secret.
func (s *jwtService) ValidateToken(tokenString string, secret string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(secret), nil
	})
}
