package engine

import (
	"fmt"
	"strings"
	"unicode"

	"go-splendor/entities"
)

// Action is a state-changing command. The set is closed: TakeGems, Purchase, Reserve.
type Action interface {
	Name() string
	String() string
	isAction()
}

// TakeGems takes two of one color (Double) or up to three distinct colors.
type TakeGems struct {
	Colors []entities.Color
	Double bool
	token  string
}

func (TakeGems) Name() string     { return "take" }
func (a TakeGems) String() string { return a.token }
func (TakeGems) isAction()        {}

// Purchase buys a market card (Slot) or one of the seat's own reserved cards
// (Reserved, 1-based).
type Purchase struct {
	Slot     *Slot
	Reserved int
}

func (Purchase) Name() string { return "purchase" }
func (a Purchase) String() string {
	if a.Slot != nil {
		return a.Slot.ID
	}
	return fmt.Sprintf("X%d", a.Reserved)
}
func (Purchase) isAction() {}

// Reserve takes a market card (Slot) or the top of a tier deck face down.
type Reserve struct {
	Tier entities.Tier
	Slot *Slot // nil for a blind draw
}

func (Reserve) Name() string { return "reserve" }
func (a Reserve) String() string {
	if a.Slot != nil {
		return "G" + a.Slot.ID
	}
	return "G" + a.Tier.String() + "0"
}
func (Reserve) isAction() {}

// View selects one read-only status section.
type View byte

const (
	ViewHelp      View = 'H'
	ViewInventory View = 'I'
	ViewJewels    View = 'J'
	ViewHistory   View = 'K'
	ViewBuyable   View = 'L'
	ViewMarket    View = 'M'
	ViewOpponent  View = 'O'
	ViewTurn      View = 'P'
	ViewStocks    View = 'S'
	ViewVictory   View = 'V'
)

var knownViews = map[byte]View{
	'H': ViewHelp, 'I': ViewInventory, 'J': ViewJewels, 'K': ViewHistory, 'L': ViewBuyable,
	'M': ViewMarket, 'O': ViewOpponent, 'P': ViewTurn, 'S': ViewStocks, 'V': ViewVictory,
}

// Command is one parsed request: an optional action, then the views to
// render against the state after it.
type Command struct {
	Action Action
	Views  []View
}

// IsQuery reports whether the command is read-only.
func (c Command) IsQuery() bool { return c.Action == nil }

// ParseCommand turns raw request text into a Command. Whitespace anywhere is
// ignored, letters are case-insensitive and empty text asks for help.
func ParseCommand(raw string) (Command, error) {
	text := strings.ToUpper(strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw))

	if text == "" {
		return Command{Views: []View{ViewHelp}}, nil
	}

	head, tail, compound := strings.Cut(text, ";")
	if compound {
		action, ok := parseAction(head)
		if !ok {
			return Command{}, fmt.Errorf("%w: %q", ErrInvalidCommand, raw)
		}
		cmd := Command{Action: action}
		if tail != "" {
			views, ok := parseQuery(tail)
			if !ok {
				return Command{}, fmt.Errorf("%w: %q", ErrInvalidCommand, raw)
			}
			cmd.Views = views
		}
		return cmd, nil
	}

	if action, ok := parseAction(text); ok {
		return Command{Action: action}, nil
	}
	if views, ok := parseQuery(text); ok {
		return Command{Views: views}, nil
	}
	return Command{}, fmt.Errorf("%w: %q", ErrInvalidCommand, raw)
}

func parseAction(s string) (Action, bool) {
	if a, ok := parseTake(s); ok {
		return a, true
	}
	if a, ok := parsePurchase(s); ok {
		return a, true
	}
	if a, ok := parseReserve(s); ok {
		return a, true
	}
	return nil, false
}

// parseTake accepts [QWERT-]{2,3}. A repeated color is only allowed as a
// two-letter double; '-' skips a slot.
func parseTake(s string) (Action, bool) {
	if len(s) != 2 && len(s) != 3 {
		return nil, false
	}
	var colors []entities.Color
	seen := map[entities.Color]bool{}
	repeated := false
	for i := 0; i < len(s); i++ {
		if s[i] == '-' {
			continue
		}
		c, ok := entities.ColorFromLetter(s[i])
		if !ok {
			return nil, false
		}
		if seen[c] {
			repeated = true
			continue
		}
		seen[c] = true
		colors = append(colors, c)
	}
	if len(colors) == 0 {
		return nil, false
	}
	if repeated {
		// only "XX" is a double
		if len(s) != 2 {
			return nil, false
		}
		return TakeGems{Colors: colors, Double: true, token: s}, true
	}
	return TakeGems{Colors: colors, token: s}, true
}

// parsePurchase accepts [A-C][1-4] or X[1-3].
func parsePurchase(s string) (Action, bool) {
	if len(s) != 2 {
		return nil, false
	}
	if s[0] == 'X' {
		if s[1] < '1' || s[1] > '0'+MaxReserved {
			return nil, false
		}
		return Purchase{Reserved: int(s[1] - '0')}, true
	}
	slot, ok := LookupSlot(s)
	if !ok {
		return nil, false
	}
	return Purchase{Slot: &slot}, true
}

// parseReserve accepts G[A-C][0-4], where 0 draws blind from the deck.
func parseReserve(s string) (Action, bool) {
	if len(s) != 3 || s[0] != 'G' {
		return nil, false
	}
	tier, ok := entities.TierFromLetter(s[1])
	if !ok {
		return nil, false
	}
	if s[2] == '0' {
		return Reserve{Tier: tier}, true
	}
	slot, ok := LookupSlot(s[1:])
	if !ok {
		return nil, false
	}
	return Reserve{Tier: tier, Slot: &slot}, true
}

func parseQuery(s string) ([]View, bool) {
	if s == "HELP" {
		return []View{ViewHelp}, true
	}
	views := make([]View, 0, len(s))
	for i := 0; i < len(s); i++ {
		v, ok := knownViews[s[i]]
		if !ok {
			return nil, false
		}
		views = append(views, v)
	}
	return views, len(views) > 0
}
