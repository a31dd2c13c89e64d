package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokensRoundTrip(t *testing.T) {
	tokens := NewTokens([]byte("test-secret"))

	sess, token, err := tokens.Issue()
	require.NoError(t, err)
	assert.True(t, sess.Authenticated)
	assert.NotEmpty(t, sess.ID)

	parsed, err := tokens.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, sess, parsed)
}

func TestTokensRejectForeignSignature(t *testing.T) {
	_, token, err := NewTokens([]byte("one")).Issue()
	require.NoError(t, err)

	sess, err := NewTokens([]byte("two")).Parse(token)
	assert.Error(t, err)
	assert.False(t, sess.Authenticated)
}

func TestTokensRejectGarbage(t *testing.T) {
	tokens := NewTokens([]byte("test-secret"))

	_, err := tokens.Parse("")
	assert.Error(t, err)

	_, err = tokens.Parse("not-a-token")
	assert.Error(t, err)
}
