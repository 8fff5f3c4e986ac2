package engine

import (
	"sort"
	"sync"
)

// Store holds the live games by id. It is injected into the Registry so a
// different backing can replace the in-process map.
type Store interface {
	// GetOrCreate returns the game for id, calling create under the store's
	// lock when none exists yet.
	GetOrCreate(id string, create func() *Game) (g *Game, created bool)
	Get(id string) (*Game, bool)
	// List returns every game ordered by id.
	List() []*Game
}

// MemoryStore keeps games for the lifetime of the process. Abandoned games
// are never evicted.
type MemoryStore struct {
	mu    sync.Mutex
	games map[string]*Game
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{games: make(map[string]*Game)}
}

func (s *MemoryStore) GetOrCreate(id string, create func() *Game) (*Game, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if g, ok := s.games[id]; ok {
		return g, false
	}
	g := create()
	s.games[id] = g
	return g, true
}

func (s *MemoryStore) Get(id string) (*Game, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.games[id]
	return g, ok
}

func (s *MemoryStore) List() []*Game {
	s.mu.Lock()
	games := make([]*Game, 0, len(s.games))
	for _, g := range s.games {
		games = append(games, g)
	}
	s.mu.Unlock()

	sort.Slice(games, func(i, j int) bool { return games[i].id < games[j].id })
	return games
}
