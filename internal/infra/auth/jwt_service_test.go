package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-access-secret"

func mintToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)

	return signed
}

func TestJWTService_ValidateToken(t *testing.T) {
	svc := NewJWTService()
	userID := uuid.New()

	signed := mintToken(t, testSecret, jwt.MapClaims{
		"sub":   userID.String(),
		"roles": []string{"admin"},
		"exp":   time.Now().Add(time.Minute).Unix(),
	})

	token, err := svc.ValidateToken(signed, testSecret)
	require.NoError(t, err)
	assert.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, userID.String(), claims["sub"])
}

func TestJWTService_ValidateToken_WrongSecret(t *testing.T) {
	svc := NewJWTService()

	signed := mintToken(t, "some-other-secret", jwt.MapClaims{
		"sub": uuid.New().String(),
		"exp": time.Now().Add(time.Minute).Unix(),
	})

	_, err := svc.ValidateToken(signed, testSecret)
	assert.Error(t, err)
}

func TestJWTService_ValidateToken_Expired(t *testing.T) {
	svc := NewJWTService()

	signed := mintToken(t, testSecret, jwt.MapClaims{
		"sub": uuid.New().String(),
		"exp": time.Now().Add(-time.Minute).Unix(),
	})

	_, err := svc.ValidateToken(signed, testSecret)
	assert.Error(t, err)
}

func TestJWTService_ValidateToken_RejectsNonHMAC(t *testing.T) {
	svc := NewJWTService()

	// alg=none style tokens must never validate.
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": uuid.New().String(),
	})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.ValidateToken(signed, testSecret)
	assert.Error(t, err)
}
