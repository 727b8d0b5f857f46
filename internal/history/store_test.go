package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func testResult(id string) Result {
	return Result{
		ID:        id,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
		Level:     "quick",
		Correct:   8,
		Total:     10,
		Misses: []Miss{
			{English: "bird", Correct: "burung", Answered: "kucing"},
			{English: "rain", Correct: "hujan", Answered: "angin"},
		},
	}
}

func TestStore_AppendAndLoad(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	want := testResult("r1")
	require.NoError(t, s.Append(ctx, want))

	results, skipped, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Zero(t, skipped)
	require.Len(t, results, 1)

	got := results[0]
	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.Level, got.Level)
	assert.Equal(t, want.Correct, got.Correct)
	assert.Equal(t, want.Total, got.Total)
	assert.Equal(t, want.Misses, got.Misses)
	assert.True(t, want.CreatedAt.Equal(got.CreatedAt))
}

func TestStore_LoadInsertionOrder(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, s.Append(ctx, testResult(id)))
	}

	results, _, err := s.Load(ctx)
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "a", results[0].ID)
	assert.Equal(t, "b", results[1].ID)
	assert.Equal(t, "c", results[2].ID)
}

func TestStore_LoadEmpty(t *testing.T) {
	s := openTestStore(t)

	results, skipped, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Zero(t, skipped)
	assert.Empty(t, results)
}

func TestStore_LoadSkipsCorruptRows(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Append(ctx, testResult("good")))

	// Corrupt rows by hand: bad misses JSON and an unparsable timestamp.
	_, err := s.db.Exec(
		`INSERT INTO results (id, created_at, level, correct, total, misses) VALUES (?, ?, ?, ?, ?, ?)`,
		"bad-json", time.Now().UTC().Format(time.RFC3339Nano), "quick", 1, 10, "{not json",
	)
	require.NoError(t, err)
	_, err = s.db.Exec(
		`INSERT INTO results (id, created_at, level, correct, total, misses) VALUES (?, ?, ?, ?, ?, ?)`,
		"bad-time", "yesterday", "quick", 1, 10, "[]",
	)
	require.NoError(t, err)

	results, skipped, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, skipped)
	require.Len(t, results, 1)
	assert.Equal(t, "good", results[0].ID)
}

func TestStore_Clear(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Append(ctx, testResult("r1")))
	require.NoError(t, s.Append(ctx, testResult("r2")))
	require.NoError(t, s.Clear(ctx))

	results, skipped, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Zero(t, skipped)
	assert.Empty(t, results)
}

func TestStore_EmptyMissesRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	r := testResult("perfect")
	r.Misses = nil
	require.NoError(t, s.Append(ctx, r))

	results, _, err := s.Load(ctx)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Empty(t, results[0].Misses)
}
