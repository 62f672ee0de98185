package cryptox_test

import (
	"encoding/base64"
	"testing"

	"github.com/classtrackhq/classtrack/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestGenerateToken(t *testing.T) {
	t.Parallel()

	t.Run("produces url-safe tokens of the right entropy", func(t *testing.T) {
		token, err := cryptox.GenerateToken(cryptox.TokenSize256)
		require.NoError(t, err)

		raw, err := base64.RawURLEncoding.DecodeString(token)
		require.NoError(t, err)
		require.Len(t, raw, cryptox.TokenSize256)
	})

	t.Run("tokens are unique", func(t *testing.T) {
		seen := make(map[string]struct{})
		for i := 0; i < 100; i++ {
			token, err := cryptox.GenerateToken(cryptox.TokenSize128)
			require.NoError(t, err)
			_, dup := seen[token]
			require.False(t, dup)
			seen[token] = struct{}{}
		}
	})

	t.Run("rejects non-positive sizes", func(t *testing.T) {
		_, err := cryptox.GenerateToken(0)
		require.Error(t, err)
		_, err = cryptox.GenerateToken(-4)
		require.Error(t, err)
	})
}

func TestFingerprintToken(t *testing.T) {
	t.Parallel()

	a := cryptox.FingerprintToken("token-a")
	b := cryptox.FingerprintToken("token-b")

	require.NotEqual(t, a, b)
	require.Equal(t, a, cryptox.FingerprintToken("token-a"), "fingerprint must be deterministic")
	require.Len(t, a, 43, "base64url sha256 is 43 chars")
}

func TestVerifyFingerprint(t *testing.T) {
	t.Parallel()

	fp := cryptox.FingerprintToken("secret")
	require.True(t, cryptox.VerifyFingerprint("secret", fp))
	require.False(t, cryptox.VerifyFingerprint("wrong", fp))
}
