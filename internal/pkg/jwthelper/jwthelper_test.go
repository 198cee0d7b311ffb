package jwthelper_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/events-api/internal/pkg/jwthelper"
)

func TestTokenRoundTrip(t *testing.T) {
	key := []byte("test-signing-key")

	token, err := jwthelper.GenerateToken(key, "student-1", "test-agent")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := jwthelper.ParseToken(key, token, "test-agent")
	require.NoError(t, err)
	assert.Equal(t, "student-1", claims.UserID)
	assert.Equal(t, "test-agent", claims.UserAgent)
}

func TestParseToken_WrongKey(t *testing.T) {
	token, err := jwthelper.GenerateToken([]byte("key-a"), "student-1", "test-agent")
	require.NoError(t, err)

	_, err = jwthelper.ParseToken([]byte("key-b"), token, "test-agent")
	assert.Error(t, err)
}

func TestParseToken_WrongUserAgent(t *testing.T) {
	key := []byte("test-signing-key")

	token, err := jwthelper.GenerateToken(key, "student-1", "test-agent")
	require.NoError(t, err)

	_, err = jwthelper.ParseToken(key, token, "another-agent")
	assert.ErrorIs(t, err, jwthelper.ErrInvalidToken)
}

func TestParseToken_Garbage(t *testing.T) {
	_, err := jwthelper.ParseToken([]byte("test-signing-key"), "not-a-token", "test-agent")
	assert.Error(t, err)
}
