package service

import (
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"

	"go-splendor/engine"
)

// ParseGameSettings reads the ":key=value:key=value:" prefix of a game id
// over defaults. The id itself stays the game's key, prefix included. On any
// bad pair it returns defaults alongside the error.
func ParseGameSettings(gameID string, defaults engine.Settings) (engine.Settings, error) {
	pairs := settingsPrefix(gameID)
	if len(pairs) == 0 {
		return defaults, nil
	}

	settings := defaults
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:  stringToIntHookFunc(),
		ErrorUnused: true,
		Result:      &settings,
	})
	if err != nil {
		return defaults, fmt.Errorf("settings decoder: %w", err)
	}
	if err := decoder.Decode(pairs); err != nil {
		return defaults, fmt.Errorf("game %q settings: %w", gameID, err)
	}

	normalized := settings.Normalize()
	if normalized != settings {
		return normalized, fmt.Errorf("game %q settings out of range: %+v", gameID, settings)
	}
	return settings, nil
}

func settingsPrefix(gameID string) map[string]interface{} {
	if !strings.HasPrefix(gameID, ":") {
		return nil
	}
	pairs := map[string]interface{}{}
	for _, part := range strings.Split(gameID[1:], ":") {
		key, value, ok := strings.Cut(part, "=")
		if !ok || key == "" {
			break
		}
		pairs[strings.ToLower(key)] = value
	}
	return pairs
}

// SettingsPrefix renders settings in the form ParseGameSettings reads.
func SettingsPrefix(s engine.Settings) string {
	return fmt.Sprintf(":minplayers=%d:nobles=%d:", s.MinPlayers, s.Nobles)
}
