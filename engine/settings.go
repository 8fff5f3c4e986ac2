package engine

const (
	DefaultMinPlayers = 2
	DefaultNobles     = 3
)

// Settings are fixed when a game is created. Later requests carrying
// different settings for the same game id do not change them.
type Settings struct {
	// MinPlayers is 2 unless a single player is allowed to act alone.
	MinPlayers int `mapstructure:"minplayers"`
	// Nobles on the table, 3 or 5.
	Nobles int `mapstructure:"nobles"`
}

func DefaultSettings() Settings {
	return Settings{MinPlayers: DefaultMinPlayers, Nobles: DefaultNobles}
}

// Normalize replaces unsupported values with defaults.
func (s Settings) Normalize() Settings {
	if s.MinPlayers != 1 && s.MinPlayers != 2 {
		s.MinPlayers = DefaultMinPlayers
	}
	if s.Nobles != 3 && s.Nobles != 5 {
		s.Nobles = DefaultNobles
	}
	return s
}
