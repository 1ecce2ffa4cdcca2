package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signSessionToken(t *testing.T, secret []byte, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)
	return token
}

func TestParseSessionIDRoundtrip(t *testing.T) {
	service := &SessionService{secret: []byte("test-secret")}
	sessionID := uuid.Must(uuid.NewV7())

	token := signSessionToken(t, service.secret, jwt.MapClaims{
		"sid": sessionID.String(),
		"sub": uuid.Must(uuid.NewV7()).String(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	parsed, err := service.parseSessionID(token)
	require.NoError(t, err)
	assert.Equal(t, sessionID, parsed)
}

func TestParseSessionIDRejectsWrongSecret(t *testing.T) {
	service := &SessionService{secret: []byte("test-secret")}

	token := signSessionToken(t, []byte("other-secret"), jwt.MapClaims{
		"sid": uuid.Must(uuid.NewV7()).String(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := service.parseSessionID(token)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestParseSessionIDRejectsExpiredToken(t *testing.T) {
	service := &SessionService{secret: []byte("test-secret")}

	token := signSessionToken(t, service.secret, jwt.MapClaims{
		"sid": uuid.Must(uuid.NewV7()).String(),
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	_, err := service.parseSessionID(token)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestParseSessionIDRejectsGarbage(t *testing.T) {
	service := &SessionService{secret: []byte("test-secret")}

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		_, err := service.parseSessionID(token)
		assert.ErrorIs(t, err, ErrInvalidSession)
	}
}

func TestParseSessionIDRejectsMissingSid(t *testing.T) {
	service := &SessionService{secret: []byte("test-secret")}

	token := signSessionToken(t, service.secret, jwt.MapClaims{
		"sub": uuid.Must(uuid.NewV7()).String(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := service.parseSessionID(token)
	assert.ErrorIs(t, err, ErrInvalidSession)
}
