package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"go-splendor/engine"
	"go-splendor/entities"
	"go-splendor/repository"
)

type failingJournal struct{}

func (failingJournal) Append(context.Context, repository.Entry) error {
	return errors.New("disk full")
}

func (failingJournal) List(context.Context, string) ([]repository.Entry, error) {
	return nil, errors.New("disk full")
}

func newTestService(t *testing.T, journal repository.Journal) (*GameService, *quartz.Mock) {
	clock := quartz.NewMock(t)
	logger := zaptest.NewLogger(t)
	registry := engine.NewRegistry(engine.NewMemoryStore(), engine.DefaultCatalog(), 11, logger)
	return NewGameService(registry, journal, engine.DefaultSettings(), clock, logger), clock
}

func TestPlayJournalsAppliedActions(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	journal := repository.NewMemoryJournal()
	svc, clock := newTestService(t, journal)
	now := clock.Now()

	res := svc.Play(ctx, "g", "alice", "QWE")
	assert.ErrorIs(t, res.Err, engine.ErrInsufficientPlayers)

	res = svc.Play(ctx, "g", "bob", "help")
	require.NoError(t, res.Err)
	assert.False(t, res.Applied)

	res = svc.Play(ctx, "g", "alice", "qwe;s")
	require.NoError(t, res.Err)
	require.True(t, res.Applied)

	res = svc.Play(ctx, "g", "alice", "RT")
	assert.ErrorIs(t, res.Err, engine.ErrNotYourTurn)

	entries, err := svc.Journal(ctx, "g")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, repository.Entry{
		Move:     1,
		Time:     now,
		GameID:   "g",
		Seat:     "p1",
		Identity: "alice",
		Command:  "qwe;s",
		Summary:  "Acquired QWE.",
	}, entries[0])
}

func TestPlayUsesGameIDSettings(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t, repository.NewMemoryJournal())

	res := svc.Play(context.Background(), ":minplayers=1:solo", "alice", "QWE")
	require.NoError(t, res.Err)
	assert.True(t, res.Applied)
	assert.Equal(t, entities.SeatP1, res.Turn)

	res = svc.Play(context.Background(), ":minplayers=x:solo", "alice", "QWE")
	assert.ErrorIs(t, res.Err, engine.ErrInsufficientPlayers)
}

func TestPlaySurvivesJournalFailure(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t, failingJournal{})

	svc.Play(context.Background(), "g", "alice", "s")
	svc.Play(context.Background(), "g", "bob", "s")
	res := svc.Play(context.Background(), "g", "alice", "QWE")
	require.NoError(t, res.Err)
	assert.True(t, res.Applied)
	assert.Equal(t, entities.SeatP2, res.Turn)
}

func TestCreateGame(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t, repository.NewMemoryJournal())

	id, seat := svc.CreateGame("alice", nil)
	assert.Len(t, id, 8)
	assert.Equal(t, entities.SeatP1, seat)

	solo, seat := svc.CreateGame("bob", &engine.Settings{MinPlayers: 1, Nobles: 5})
	assert.True(t, strings.HasPrefix(solo, ":minplayers=1:nobles=5:"), solo)
	assert.Equal(t, entities.SeatP1, seat)

	summary, err := svc.GetGame(solo)
	require.NoError(t, err)
	assert.Equal(t, "bob", summary.Seats[entities.SeatP1])
	assert.Equal(t, entities.GameStatusWaiting, summary.Status)

	assert.Len(t, svc.ListGames(), 2)

	_, err = svc.GetGame("nope")
	assert.ErrorIs(t, err, ErrGameNotFound)
	_, err = svc.Journal(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrGameNotFound)
}
