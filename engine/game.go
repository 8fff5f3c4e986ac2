package engine

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"go-splendor/entities"
)

// WinningPoints ends the game when reached by a purchase.
const WinningPoints = 15

// historyLimit bounds the moves kept for the history view.
const historyLimit = 50

type playerState struct {
	identity   string
	gems       entities.Gems
	production entities.Bonus
	points     int
	reserves   []entities.Card
	purchased  []entities.Card
	nobles     []string
}

// Move is one applied action.
type Move struct {
	Number  int           `json:"number"`
	Seat    entities.Seat `json:"seat"`
	Command string        `json:"command"`
	Summary string        `json:"summary"`
}

// Game is the authoritative state of one game. All access goes through its
// exported methods, which serialise on mu.
type Game struct {
	mu sync.Mutex

	id       string
	settings Settings

	turn    entities.Seat
	winner  entities.Seat
	players map[entities.Seat]*playerState
	bank    entities.Gems
	decks   [entities.NumTiers][]entities.Card
	market  [numSlots]*entities.Card
	nobles  []*Noble
	history []Move
	moves   int
}

// Result is what one command produced.
type Result struct {
	GameID   string              `json:"gameID"`
	Seat     entities.Seat       `json:"seat"`
	Command  string              `json:"command"`
	Applied  bool                `json:"applied"`
	Move     int                 `json:"move,omitempty"` // number of the applied move
	Message  string              `json:"message,omitempty"`
	Sections []Section           `json:"sections"`
	Turn     entities.Seat       `json:"turn"`
	Status   entities.GameStatus `json:"status"`
	Winner   entities.Seat       `json:"winner,omitempty"`
	Errors   []string            `json:"errors"`

	// Err is the rejection cause, nil when the command succeeded.
	Err error `json:"-"`
}

func (g *Game) ID() string { return g.id }

func (g *Game) Settings() Settings { return g.settings }

// Join returns the seat held by identity, assigning the first free seat to a
// newcomer. Once both seats are taken newcomers are spectators, and so is an
// empty identity, which can never hold a seat.
func (g *Game) Join(identity string) (entities.Seat, bool) {
	if identity == "" {
		return entities.SeatSpectator, false
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if seat, ok := g.seatOf(identity); ok {
		return seat, false
	}
	for _, seat := range []entities.Seat{entities.SeatP1, entities.SeatP2} {
		if g.players[seat].identity == "" {
			g.players[seat].identity = identity
			return seat, true
		}
	}
	return entities.SeatSpectator, false
}

func (g *Game) seatOf(identity string) (entities.Seat, bool) {
	if identity == "" {
		return "", false
	}
	for _, seat := range []entities.Seat{entities.SeatP1, entities.SeatP2} {
		if g.players[seat].identity == identity {
			return seat, true
		}
	}
	return "", false
}

func (g *Game) occupied(seat entities.Seat) bool {
	p, ok := g.players[seat]
	return ok && p.identity != ""
}

func (g *Game) status() entities.GameStatus {
	switch {
	case g.turn == entities.SeatFinished:
		return entities.GameStatusFinished
	case !g.occupied(entities.SeatP2):
		return entities.GameStatusWaiting
	default:
		return entities.GameStatusPlaying
	}
}

// Apply runs one command for seat. Queries never need the turn. An action is
// validated in full before anything changes, so a rejected action leaves the
// game exactly as it was.
func (g *Game) Apply(seat entities.Seat, raw string) Result {
	g.mu.Lock()
	defer g.mu.Unlock()

	res := Result{GameID: g.id, Seat: seat, Command: raw, Errors: []string{}}

	cmd, err := ParseCommand(raw)
	if err != nil {
		return g.reject(res, err)
	}

	if cmd.Action != nil {
		summary, err := g.act(seat, cmd.Action)
		if err != nil {
			return g.reject(res, err)
		}
		res.Applied = true
		res.Message = summary
		res.Move = g.moves
	}

	res.Sections = g.render(seat, cmd.Views)
	g.stamp(&res)
	return res
}

func (g *Game) reject(res Result, err error) Result {
	res.Err = err
	res.Errors = append(res.Errors, err.Error())
	res.Sections = []Section{}
	g.stamp(&res)
	return res
}

func (g *Game) stamp(res *Result) {
	res.Turn = g.turn
	res.Status = g.status()
	res.Winner = g.winner
	if res.Sections == nil {
		res.Sections = []Section{}
	}
}

func (g *Game) act(seat entities.Seat, action Action) (string, error) {
	if g.turn == entities.SeatFinished {
		return "", ErrGameFinished
	}
	if !seat.Active() {
		return "", fmt.Errorf("%w: spectators cannot act", ErrNotYourTurn)
	}
	if seat != g.turn {
		return "", fmt.Errorf("%w: it is %s's turn", ErrNotYourTurn, g.turn)
	}
	if !g.occupied(entities.SeatP2) && g.settings.MinPlayers > 1 {
		return "", ErrInsufficientPlayers
	}

	var (
		summary string
		err     error
	)
	switch a := action.(type) {
	case TakeGems:
		summary, err = g.takeGems(seat, a)
	case Purchase:
		summary, err = g.purchase(seat, a)
	case Reserve:
		summary, err = g.reserve(seat, a)
	default:
		err = fmt.Errorf("%w: unsupported action %T", ErrInvalidCommand, action)
	}
	if err != nil {
		return "", err
	}

	g.record(seat, action, summary)

	if g.turn != entities.SeatFinished {
		// single-player games keep the turn until someone takes p2
		if next := seat.Other(); g.occupied(next) {
			g.turn = next
		}
	}
	return summary, nil
}

func (g *Game) takeGems(seat entities.Seat, a TakeGems) (string, error) {
	p := g.players[seat]
	var amount entities.Gems
	if a.Double {
		if len(a.Colors) != 1 {
			return "", fmt.Errorf("%w: a double take names one color", ErrInvalidCommand)
		}
		if err := checkTakeDouble(g.bank, p.gems, a.Colors[0]); err != nil {
			return "", err
		}
		amount[a.Colors[0]] = 2
	} else {
		if err := checkTakeDistinct(g.bank, p.gems, a.Colors); err != nil {
			return "", err
		}
		for _, c := range a.Colors {
			amount[c] = 1
		}
	}
	transfer(&g.bank, &p.gems, amount)
	return fmt.Sprintf("Acquired %s.", a), nil
}

func (g *Game) purchase(seat entities.Seat, a Purchase) (string, error) {
	p := g.players[seat]

	var card entities.Card
	if a.Slot != nil {
		c := g.cardAt(*a.Slot)
		if c == nil {
			return "", illegal("market slot %s is empty", a.Slot)
		}
		card = *c
	} else {
		if a.Reserved < 1 || a.Reserved > len(p.reserves) {
			return "", illegal("you have no reserved card X%d", a.Reserved)
		}
		card = p.reserves[a.Reserved-1]
	}

	pay, err := planPayment(p.gems, p.production, card.Cost)
	if err != nil {
		return "", err
	}

	// validated, apply
	transfer(&p.gems, &g.bank, pay)
	p.production[card.Produces]++
	p.points += card.Points
	p.purchased = append(p.purchased, card)

	var summary string
	if a.Slot != nil {
		g.dealInto(*a.Slot)
		summary = fmt.Sprintf("Purchased card %s.", a.Slot)
	} else {
		p.reserves = append(p.reserves[:a.Reserved-1], p.reserves[a.Reserved:]...)
		summary = fmt.Sprintf("Purchased card X%d from own reserve.", a.Reserved)
	}

	if claimed := g.claimNobles(seat); len(claimed) > 0 {
		ids := make([]string, 0, len(claimed))
		for _, n := range claimed {
			ids = append(ids, n.ID)
		}
		summary += fmt.Sprintf(" Claimed noble %s.", strings.Join(ids, ", "))
	}

	if p.points >= WinningPoints {
		g.turn = entities.SeatFinished
		g.winner = seat
		summary += fmt.Sprintf(" %s wins with %d points!", seat, p.points)
	}
	return summary, nil
}

func (g *Game) reserve(seat entities.Seat, a Reserve) (string, error) {
	p := g.players[seat]
	if err := checkReserve(p.gems, len(p.reserves)); err != nil {
		return "", err
	}

	var card entities.Card
	if a.Slot != nil {
		c := g.cardAt(*a.Slot)
		if c == nil {
			return "", illegal("market slot %s is empty", a.Slot)
		}
		card = *c
		g.dealInto(*a.Slot)
	} else {
		c, ok := g.drawBlind(a.Tier)
		if !ok {
			return "", illegal("deck %s is empty", a.Tier)
		}
		card = c
	}

	if g.bank[entities.Gold] > 0 {
		var gold entities.Gems
		gold[entities.Gold] = 1
		transfer(&g.bank, &p.gems, gold)
	}
	p.reserves = append(p.reserves, card)

	if a.Slot == nil {
		return fmt.Sprintf("Reserved a card from deck %s to slot X%d.", a.Tier, len(p.reserves)), nil
	}
	return fmt.Sprintf("Reserved card %s to slot X%d.", a.Slot, len(p.reserves)), nil
}

func (g *Game) record(seat entities.Seat, action Action, summary string) {
	g.moves++
	g.history = append(g.history, Move{
		Number:  g.moves,
		Seat:    seat,
		Command: action.String(),
		Summary: summary,
	})
	if len(g.history) > historyLimit {
		g.history = g.history[len(g.history)-historyLimit:]
	}
}

// Summary is a snapshot of a game for listings.
type Summary struct {
	ID     string                   `json:"id"`
	Seats  map[entities.Seat]string `json:"seats"`
	Points map[entities.Seat]int    `json:"points"`
	Turn   entities.Seat            `json:"turn"`
	Status entities.GameStatus      `json:"status"`
	Winner entities.Seat            `json:"winner,omitempty"`
	Moves  int                      `json:"moves"`
}

func (g *Game) Summary() Summary {
	g.mu.Lock()
	defer g.mu.Unlock()

	s := Summary{
		ID:     g.id,
		Seats:  map[entities.Seat]string{},
		Points: map[entities.Seat]int{},
		Turn:   g.turn,
		Status: g.status(),
		Winner: g.winner,
		Moves:  g.moves,
	}
	for seat, p := range g.players {
		if p.identity != "" {
			s.Seats[seat] = p.identity
		}
		s.Points[seat] = p.points
	}
	return s
}

// IsRejection reports whether err is one of the engine's rejection kinds.
func IsRejection(err error) bool {
	return errors.Is(err, ErrInvalidCommand) ||
		errors.Is(err, ErrNotYourTurn) ||
		errors.Is(err, ErrInsufficientPlayers) ||
		errors.Is(err, ErrIllegalAction)
}
