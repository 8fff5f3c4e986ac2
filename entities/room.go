package entities

// Seat is a turn-taking role in a game, distinct from the identity holding it.
type Seat string

const (
	SeatP1        Seat = "p1"
	SeatP2        Seat = "p2"
	SeatSpectator Seat = "spectator"
	// SeatFinished is the terminal turn marker.
	SeatFinished Seat = "finished"
)

// Other returns the opposing active seat.
func (s Seat) Other() Seat {
	switch s {
	case SeatP1:
		return SeatP2
	case SeatP2:
		return SeatP1
	}
	return s
}

// Active reports whether the seat can ever take a turn.
func (s Seat) Active() bool {
	return s == SeatP1 || s == SeatP2
}

type GameStatus string

const (
	GameStatusWaiting  GameStatus = "waiting" // 等待第二个玩家加入
	GameStatusPlaying  GameStatus = "playing"
	GameStatusFinished GameStatus = "finished"
)
