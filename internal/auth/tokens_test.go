package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratedCredentialFormats(t *testing.T) {
	state, err := generateState()
	require.NoError(t, err)
	assert.Regexp(t, `^[0-9a-f]{32}$`, state)

	code, err := generateCode()
	require.NoError(t, err)
	assert.Regexp(t, `^yf_[0-9a-f]{32}$`, code)

	token, err := generateAccessToken()
	require.NoError(t, err)
	assert.Regexp(t, `^yf_[0-9a-f]{64}$`, token)

	other, err := generateAccessToken()
	require.NoError(t, err)
	assert.NotEqual(t, token, other)
}

func TestTokenPrefixForLogs(t *testing.T) {
	assert.Equal(t, "yf_01234", tokenPrefix("yf_0123456789"))
	assert.Equal(t, "short", tokenPrefix("short"))
}
