package idx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("generates valid ids", func(t *testing.T) {
		id := New()
		require.Len(t, id.String(), 26)
		require.True(t, IsValid(id.String()))
	})

	t.Run("monotonic within a batch", func(t *testing.T) {
		prev := New().String()
		for i := 0; i < 100; i++ {
			next := New().String()
			require.Greater(t, next, prev)
			prev = next
		}
	})

	t.Run("embeds creation time", func(t *testing.T) {
		at := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
		id := NewAt(at)
		require.Equal(t, at.UnixMilli(), id.Time().UnixMilli())
	})
}

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		id := New()
		parsed, err := Parse(id.String())
		require.NoError(t, err)
		require.Equal(t, id, parsed)
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		for _, s := range []string{"", "abc", "not-a-ulid-but-26-chars!!", "01ARZ3NDEKTSV4RRFFQ69G5FA"} {
			_, err := Parse(s)
			require.ErrorIs(t, err, ErrInvalid, "input %q", s)
			require.False(t, IsValid(s))
		}
	})

	t.Run("accepts canonical form only", func(t *testing.T) {
		require.True(t, IsValid(New().String()))
		// clientId-looking strings must not pass, they route to the other key
		require.False(t, IsValid("my-service-client"))
	})
}
