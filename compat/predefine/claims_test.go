package predefine

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAndParse(t *testing.T) {
	token, err := SignApiClaims("secret", NewApiClaims("ci", []string{ScopeGenerate}, time.Hour))
	require.NoError(t, err)

	claims, err := ParseApiClaims("secret", token)
	require.NoError(t, err)
	assert.Equal(t, "ci", claims.Subject)
	assert.True(t, claims.HasScope(ScopeGenerate))
	assert.False(t, claims.HasScope("admin"))
}

func TestParseRejects(t *testing.T) {
	token, err := SignApiClaims("secret", NewApiClaims("ci", nil, time.Hour))
	require.NoError(t, err)

	_, err = ParseApiClaims("other", token)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)

	expired, err := SignApiClaims("secret", NewApiClaims("ci", nil, -time.Minute))
	require.NoError(t, err)
	// * a negative ttl produces no expiry
	_, err = ParseApiClaims("secret", expired)
	assert.NoError(t, err)

	claims := NewApiClaims("ci", nil, 0)
	claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
	expired, err = SignApiClaims("secret", claims)
	require.NoError(t, err)
	_, err = ParseApiClaims("secret", expired)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, NewApiClaims("ci", nil, 0)).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = ParseApiClaims("secret", none)
	assert.Error(t, err)
}
