package jwtauth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifier_RoundTrip(t *testing.T) {
	v := NewVerifier("secret", "venue-booking")

	token, err := v.Issue("staff-1", "admin", time.Hour)
	require.NoError(t, err)

	claims, err := v.RequireRole(token, "admin")
	require.NoError(t, err)
	assert.Equal(t, "staff-1", claims.Subject)
}

func TestVerifier_Rejects(t *testing.T) {
	v := NewVerifier("secret", "")

	expired, err := v.Issue("staff-1", "admin", -time.Minute)
	require.NoError(t, err)

	otherSecret, err := NewVerifier("other", "").Issue("staff-1", "admin", time.Hour)
	require.NoError(t, err)

	viewer, err := v.Issue("staff-2", "viewer", time.Hour)
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		Role: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = v.RequireRole("", "admin")
	assert.ErrorIs(t, err, ErrMissingToken)

	_, err = v.RequireRole(expired, "admin")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = v.RequireRole(otherSecret, "admin")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = v.RequireRole(none, "admin")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = v.RequireRole(viewer, "admin")
	assert.ErrorIs(t, err, ErrInsufficientRole)
}

func TestVerifier_IssuerMismatch(t *testing.T) {
	token, err := NewVerifier("secret", "someone-else").Issue("staff-1", "admin", time.Hour)
	require.NoError(t, err)

	_, err = NewVerifier("secret", "venue-booking").Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
