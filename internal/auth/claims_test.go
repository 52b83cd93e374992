package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte("any-secret"))
	require.NoError(t, err)
	return token
}

func TestPeekClaimsReadsWithoutVerification(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := signedToken(t, jwt.MapClaims{
		"userID": "u-1",
		"email":  "owner@nush.dev",
		"role":   RoleRestaurantOwner,
		"exp":    exp.Unix(),
	})

	claims, err := PeekClaims(token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "owner@nush.dev", claims.Email)
	assert.Equal(t, RoleRestaurantOwner, claims.Role)
	assert.WithinDuration(t, exp, claims.ExpiresAt, time.Second)
	assert.False(t, claims.Expired(time.Now()))
}

func TestPeekClaimsRejectsGarbage(t *testing.T) {
	_, err := PeekClaims("")
	assert.Error(t, err)

	_, err = PeekClaims("not.a.jwt")
	assert.Error(t, err)
}

func TestExpired(t *testing.T) {
	past := signedToken(t, jwt.MapClaims{
		"userID": "u-1",
		"exp":    time.Now().Add(-time.Hour).Unix(),
	})
	claims, err := PeekClaims(past)
	require.NoError(t, err)
	assert.True(t, claims.Expired(time.Now()))

	// No expiry claim at all never reads as expired.
	forever, err := PeekClaims(signedToken(t, jwt.MapClaims{"userID": "u-1"}))
	require.NoError(t, err)
	assert.False(t, forever.Expired(time.Now()))
}
