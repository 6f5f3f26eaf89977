package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTIssueAndParse(t *testing.T) {
	j := &JWTer{Secret: []byte("test-secret"), Issuer: "micropost", TTL: time.Hour}

	tok, err := j.Issue("u-123")
	require.NoError(t, err)

	claims, err := j.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, "u-123", claims.UID)
	assert.Equal(t, "micropost", claims.Issuer)
}

func TestJWTRejectsWrongSecret(t *testing.T) {
	j := &JWTer{Secret: []byte("test-secret"), Issuer: "micropost", TTL: time.Hour}
	other := &JWTer{Secret: []byte("other-secret"), Issuer: "micropost", TTL: time.Hour}

	tok, err := j.Issue("u-123")
	require.NoError(t, err)

	_, err = other.Parse(tok)
	assert.Error(t, err)
}

func TestJWTRejectsExpired(t *testing.T) {
	// leeway 是 60s，要过期得超出这个窗口
	j := &JWTer{Secret: []byte("test-secret"), Issuer: "micropost", TTL: -2 * time.Minute}

	tok, err := j.Issue("u-123")
	require.NoError(t, err)

	_, err = j.Parse(tok)
	assert.Error(t, err)
}
