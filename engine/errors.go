package engine

import (
	"errors"
	"fmt"
)

// Every rejected command wraps exactly one of these. A rejected command never
// changes game state.
var (
	ErrInvalidCommand      = errors.New("invalid command, try help")
	ErrNotYourTurn         = errors.New("not your turn")
	ErrInsufficientPlayers = errors.New("waiting for a second player")
	ErrIllegalAction       = errors.New("illegal action")

	ErrGameFinished = fmt.Errorf("%w: the game is over", ErrIllegalAction)
)

func illegal(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrIllegalAction, fmt.Sprintf(format, args...))
}
