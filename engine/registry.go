package engine

import (
	"sync"
	"time"

	"go-splendor/entities"

	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

// Registry maps game ids to games, creating a game the first time its id is
// seen and seating identities as they arrive.
type Registry struct {
	store   Store
	catalog Catalog
	logger  *zap.Logger

	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewRegistry builds a registry over store. A zero seed picks one from the clock.
func NewRegistry(store Store, catalog Catalog, seed uint64, logger *zap.Logger) *Registry {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		store:   store,
		catalog: catalog,
		logger:  logger,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// Resolve returns the game for gameID and the caller's seat in it. settings
// only matter when this call creates the game.
func (r *Registry) Resolve(gameID, identity string, settings Settings) (*Game, entities.Seat) {
	g, created := r.store.GetOrCreate(gameID, func() *Game {
		r.rngMu.Lock()
		defer r.rngMu.Unlock()
		return newGame(gameID, r.catalog, settings, r.rng)
	})
	if created {
		s := g.Settings()
		r.logger.Info("✅ game created",
			zap.String("gameID", gameID),
			zap.Int("minPlayers", s.MinPlayers),
			zap.Int("nobles", s.Nobles))
	}

	seat, joined := g.Join(identity)
	if joined {
		r.logger.Info("✅ seat assigned",
			zap.String("gameID", gameID),
			zap.String("identity", identity),
			zap.String("seat", string(seat)))
	}
	return g, seat
}

// ApplyCommand resolves the caller's seat and runs one command against the game.
func (r *Registry) ApplyCommand(gameID, identity, raw string, settings Settings) Result {
	g, seat := r.Resolve(gameID, identity, settings)
	res := g.Apply(seat, raw)

	fields := []zap.Field{
		zap.String("gameID", gameID),
		zap.String("seat", string(seat)),
		zap.String("command", raw),
		zap.String("turn", string(res.Turn)),
	}
	switch {
	case res.Err != nil:
		r.logger.Info("❌ command rejected", append(fields, zap.Error(res.Err))...)
	case res.Applied:
		r.logger.Info("✅ action applied", append(fields, zap.String("summary", res.Message))...)
	default:
		r.logger.Debug("query", fields...)
	}
	return res
}

// Lookup returns an existing game without creating one.
func (r *Registry) Lookup(gameID string) (*Game, bool) {
	return r.store.Get(gameID)
}

// Games summarises every live game.
func (r *Registry) Games() []Summary {
	games := r.store.List()
	out := make([]Summary, 0, len(games))
	for _, g := range games {
		out = append(out, g.Summary())
	}
	return out
}
