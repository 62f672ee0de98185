package idx_test

import (
	"testing"
	"time"

	"github.com/classtrackhq/classtrack/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestNewProducesUniqueSortedIDs(t *testing.T) {
	t.Parallel()

	const n = 1000
	seen := make(map[idx.ID]struct{}, n)
	var prev idx.ID
	for i := 0; i < n; i++ {
		id := idx.New()
		require.NotEmpty(t, id)
		_, dup := seen[id]
		require.False(t, dup, "duplicate id generated")
		seen[id] = struct{}{}

		if !prev.IsZero() {
			require.Less(t, prev.String(), id.String(), "ids should sort in creation order")
		}
		prev = id
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("round trips a generated id", func(t *testing.T) {
		id := idx.New()
		parsed, err := idx.Parse(id.String())
		require.NoError(t, err)
		require.Equal(t, id, parsed)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := idx.Parse("not-a-ulid")
		require.ErrorIs(t, err, idx.ErrInvalid)
	})

	t.Run("rejects empty", func(t *testing.T) {
		_, err := idx.Parse("   ")
		require.ErrorIs(t, err, idx.ErrInvalid)
	})
}

func TestTimeExtraction(t *testing.T) {
	t.Parallel()

	at := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	id := idx.NewAt(at)
	require.WithinDuration(t, at, id.Time(), time.Millisecond)
}
