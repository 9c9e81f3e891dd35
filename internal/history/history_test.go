package history

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordAndRecent(t *testing.T) {
	store, err := Open(":memory:")
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	for i, outcome := range []string{"success", "warning", "success"} {
		require.NoError(t, store.Record(ctx, Entry{
			BuildID:  string(rune('a' + i)),
			Started:  base.Add(time.Duration(i) * time.Hour),
			Duration: 120 * time.Millisecond,
			Pages:    6,
			Posts:    2,
			Outcome:  outcome,
		}))
	}

	entries, err := store.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "c", entries[0].BuildID, "newest first")
	assert.Equal(t, "warning", entries[1].Outcome)
	assert.Equal(t, 120*time.Millisecond, entries[0].Duration)
}

func TestRecentEmpty(t *testing.T) {
	store, err := Open(":memory:")
	require.NoError(t, err)
	defer store.Close()

	entries, err := store.Recent(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
