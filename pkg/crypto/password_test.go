package crypto

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.NoError(t, CheckPassword("correct horse battery staple", hash))
	assert.Error(t, CheckPassword("wrong password", hash))
}

func TestGenerateResetToken(t *testing.T) {
	token, err := GenerateResetToken()
	require.NoError(t, err)
	assert.Len(t, token, 64)

	other, err := GenerateResetToken()
	require.NoError(t, err)
	assert.NotEqual(t, token, other)
}

func TestGenerateInviteToken(t *testing.T) {
	token, err := GenerateInviteToken()
	require.NoError(t, err)
	assert.Len(t, token, 32)
}

func TestGenerateConfirmationCode(t *testing.T) {
	for i := 0; i < 50; i++ {
		code, err := GenerateConfirmationCode()
		require.NoError(t, err)
		require.Len(t, code, 6)

		n, err := strconv.Atoi(code)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 100000)
		assert.LessOrEqual(t, n, 999999)
	}
}
