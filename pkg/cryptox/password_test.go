package cryptox_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/classtrackhq/classtrack/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// Use a throwaway pepper so tests never touch a real pepper file.
	dir, err := os.MkdirTemp("", "cryptox-test-*")
	if err != nil {
		panic(err)
	}

	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))
	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

func TestHashAndVerifyPassword(t *testing.T) {
	t.Parallel()

	hash, err := cryptox.HashPassword("Correct-Horse-9")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(hash, "$argon2id$v=19$"))

	require.NoError(t, cryptox.VerifyPassword("Correct-Horse-9", hash))
	require.ErrorIs(t, cryptox.VerifyPassword("wrong", hash), cryptox.ErrPasswordMismatch)
}

func TestHashesAreSalted(t *testing.T) {
	t.Parallel()

	h1, err := cryptox.HashPassword("same-password")
	require.NoError(t, err)
	h2, err := cryptox.HashPassword("same-password")
	require.NoError(t, err)
	require.NotEqual(t, h1, h2, "each hash must use a fresh salt")
}

func TestVerifyRejectsMalformedHashes(t *testing.T) {
	t.Parallel()

	require.Error(t, cryptox.VerifyPassword("pw", "not-a-hash"))
	require.Error(t, cryptox.VerifyPassword("pw", "$bcrypt$v=19$m=1,t=1,p=1$a$b"))
}
