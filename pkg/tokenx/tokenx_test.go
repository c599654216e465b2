package tokenx

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	t.Parallel()

	t.Run("encodes the requested entropy", func(t *testing.T) {
		token, err := Generate(Size256)
		require.NoError(t, err)
		require.Len(t, token, 43)

		raw, err := base64.RawURLEncoding.DecodeString(token)
		require.NoError(t, err)
		require.Len(t, raw, Size256)
	})

	t.Run("128-bit size", func(t *testing.T) {
		token, err := Generate(Size128)
		require.NoError(t, err)
		require.Len(t, token, 22)
	})

	t.Run("rejects non-positive sizes", func(t *testing.T) {
		_, err := Generate(0)
		require.Error(t, err)
		_, err = Generate(-1)
		require.Error(t, err)
	})

	t.Run("values do not repeat", func(t *testing.T) {
		seen := map[string]bool{}
		for i := 0; i < 1000; i++ {
			token := MustGenerate(Size128)
			require.False(t, seen[token])
			seen[token] = true
		}
	})
}
