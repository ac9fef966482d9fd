package usecases_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"petty-shelter.backend/pkg/crypto"
)

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := crypto.HashPassword(password)
	require.NoError(t, err)
	return hash
}
