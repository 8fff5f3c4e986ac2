package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryJournal(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	j := NewMemoryJournal()

	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, j.Append(ctx, Entry{Move: 1, Time: at, GameID: "a", Seat: "p1", Command: "QWE"}))
	require.NoError(t, j.Append(ctx, Entry{Move: 1, Time: at, GameID: "b", Seat: "p1", Command: "A1"}))
	require.NoError(t, j.Append(ctx, Entry{Move: 2, Time: at, GameID: "a", Seat: "p2", Command: "RR"}))

	got, err := j.List(ctx, "a")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "QWE", got[0].Command)
	assert.Equal(t, "RR", got[1].Command)

	got[0].Command = "changed"
	again, _ := j.List(ctx, "a")
	assert.Equal(t, "QWE", again[0].Command)

	empty, err := j.List(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestMemoryJournalOrdersByMove(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	j := NewMemoryJournal()

	// appends from concurrent requests may land out of order
	for _, move := range []int{2, 1, 4, 3} {
		require.NoError(t, j.Append(ctx, Entry{Move: move, GameID: "g"}))
	}
	got, err := j.List(ctx, "g")
	require.NoError(t, err)
	moves := make([]int, 0, len(got))
	for _, e := range got {
		moves = append(moves, e.Move)
	}
	assert.Equal(t, []int{1, 2, 3, 4}, moves)
}

func TestJournalKeyScopedByRun(t *testing.T) {
	t.Parallel()
	first := RunID(time.Date(2024, 1, 2, 3, 4, 5, 6, time.UTC))
	second := RunID(time.Date(2024, 1, 2, 3, 4, 5, 7, time.UTC))
	assert.Equal(t, "20240102_030405.000000006", first)

	assert.Equal(t, "room:abc:journal:"+first, journalKey(first, "abc"))
	assert.NotEqual(t, journalKey(first, "abc"), journalKey(second, "abc"))
	assert.NotEqual(t, journalKey(first, "abc"), journalKey(first, "abd"))
}
