package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/coder/quartz"
	"go.uber.org/zap"

	"go-splendor/engine"
	"go-splendor/entities"
	"go-splendor/repository"
)

var ErrGameNotFound = errors.New("game not found")

// GameService sits between the HTTP glue and the engine: it turns a raw game
// id into settings, runs commands and journals what was applied.
type GameService struct {
	registry *engine.Registry
	journal  repository.Journal
	defaults engine.Settings
	clock    quartz.Clock
	logger   *zap.Logger
}

func NewGameService(registry *engine.Registry, journal repository.Journal, defaults engine.Settings, clock quartz.Clock, logger *zap.Logger) *GameService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GameService{
		registry: registry,
		journal:  journal,
		defaults: defaults.Normalize(),
		clock:    clock,
		logger:   logger,
	}
}

func (s *GameService) settingsFor(gameID string) engine.Settings {
	settings, err := ParseGameSettings(gameID, s.defaults)
	if err != nil {
		s.logger.Warn("❌ bad game settings, using defaults", zap.String("gameID", gameID), zap.Error(err))
	}
	return settings
}

// Play runs one command for identity in gameID. A rejected command is a
// normal result; the journal is only written for applied actions.
func (s *GameService) Play(ctx context.Context, gameID, identity, command string) engine.Result {
	res := s.registry.ApplyCommand(gameID, identity, command, s.settingsFor(gameID))
	if !res.Applied {
		return res
	}

	entry := repository.Entry{
		Move:     res.Move,
		Time:     s.clock.Now(),
		GameID:   gameID,
		Seat:     string(res.Seat),
		Identity: identity,
		Command:  command,
		Summary:  res.Message,
	}
	if err := s.journal.Append(ctx, entry); err != nil {
		// the move stays committed even when the journal write fails
		s.logger.Error("❌ journal append failed", zap.String("gameID", gameID), zap.Error(err))
	}
	return res
}

// CreateGame opens a fresh game with a random id and seats identity as p1.
func (s *GameService) CreateGame(identity string, settings *engine.Settings) (string, entities.Seat) {
	gameID := newGameID()
	effective := s.defaults
	if settings != nil {
		effective = settings.Normalize()
		if effective != s.defaults {
			gameID = SettingsPrefix(effective) + gameID
		}
	}
	_, seat := s.registry.Resolve(gameID, identity, effective)
	return gameID, seat
}

func (s *GameService) ListGames() []engine.Summary {
	return s.registry.Games()
}

func (s *GameService) GetGame(gameID string) (engine.Summary, error) {
	g, ok := s.registry.Lookup(gameID)
	if !ok {
		return engine.Summary{}, fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}
	return g.Summary(), nil
}

// Journal returns the applied actions of gameID, oldest first.
func (s *GameService) Journal(ctx context.Context, gameID string) ([]repository.Entry, error) {
	if _, ok := s.registry.Lookup(gameID); !ok {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}
	entries, err := s.journal.List(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("读取 journal 失败: %w", err)
	}
	return entries, nil
}
