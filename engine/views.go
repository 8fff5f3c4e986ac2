package engine

import (
	"fmt"
	"sort"
	"strconv"

	"go-splendor/entities"
)

// Section is one rendered status view, laid out as a table for the caller.
type Section struct {
	View    string     `json:"view"`
	Title   string     `json:"title"`
	Columns []string   `json:"columns,omitempty"`
	Rows    [][]string `json:"rows,omitempty"`
	Notes   []string   `json:"notes,omitempty"`
}

const historyShown = 10

var helpRows = [][]string{
	{"Take jewels", "[QqWwEeRrTt-]{2,3}"},
	{"Buy cards", "[A-Ca-c][1-4]|[Xx][1-3]"},
	{"Reserve cards", "[Gg][A-Ca-c][0-4]"},
	{"Show [h]elp", "h"},
	{"Show [i]nventory", "i"},
	{"Show [o]pponent inventory", "o"},
	{"Show cards on [m]arket", "m"},
	{"Show cards by [j]ewels provided", "j"},
	{"[L]ist buyable cards sorted by price", "l"},
	{"Show [s]tocks of resources", "s"},
	{"Show currently accessible [V]P sources", "v"},
	{"Show which [p]layer's turn it is", "p"},
	{"Show recent moves", "k"},
	{"(Show commands can be combined)", ""},
	{"Act then show", "<action>;<show letters>"},
}

func colorColumns(first string, extra ...string) []string {
	cols := []string{first}
	for _, c := range entities.CardColors() {
		cols = append(cols, c.String())
	}
	return append(cols, extra...)
}

func (g *Game) render(seat entities.Seat, views []View) []Section {
	sections := make([]Section, 0, len(views))
	for _, v := range views {
		var s Section
		switch v {
		case ViewHelp:
			s = Section{Title: "Commands", Columns: []string{"Action", "Command"}, Rows: helpRows}
		case ViewInventory:
			s = g.inventoryView(g.perspective(seat), "You")
		case ViewOpponent:
			s = g.inventoryView(g.perspective(seat).Other(), "Opponent")
		case ViewMarket:
			s = g.marketView(seat)
		case ViewJewels:
			s = g.jewelsView(seat)
		case ViewBuyable:
			s = g.buyableView(seat)
		case ViewStocks:
			s = g.stocksView()
		case ViewVictory:
			s = g.victoryView()
		case ViewTurn:
			s = g.turnView(seat)
		case ViewHistory:
			s = g.historyView()
		default:
			continue
		}
		s.View = string(v)
		sections = append(sections, s)
	}
	return sections
}

// perspective maps spectators onto p1 so "own" views still show something.
func (g *Game) perspective(seat entities.Seat) entities.Seat {
	if seat.Active() {
		return seat
	}
	return entities.SeatP1
}

func (g *Game) inventoryView(seat entities.Seat, who string) Section {
	p := g.players[seat]
	inv := []string{"Inventory"}
	buildings := []string{"Buildings"}
	power := []string{"Buying power"}
	for _, c := range entities.CardColors() {
		inv = append(inv, strconv.Itoa(p.gems[c]))
		buildings = append(buildings, strconv.Itoa(p.production[c]))
		power = append(power, strconv.Itoa(p.gems[c]+p.production[c]))
	}
	gold := strconv.Itoa(p.gems[entities.Gold])
	inv = append(inv, gold)
	buildings = append(buildings, "")
	power = append(power, gold)

	s := Section{
		Title:   fmt.Sprintf("%s (%s)", who, seat),
		Columns: colorColumns(who, entities.Gold.String()),
		Rows:    [][]string{inv, buildings, power},
		Notes: []string{
			fmt.Sprintf("VP so far: %d", p.points),
			fmt.Sprintf("Gems held: %d/%d", p.gems.Total(), MaxHeldGems),
			fmt.Sprintf("Reserved cards: %d/%d", len(p.reserves), MaxReserved),
		},
	}
	if who == "You" {
		for i, card := range p.reserves {
			s.Notes = append(s.Notes, fmt.Sprintf("X%d: %s", i+1, describeCard(card)))
		}
	}
	if len(p.nobles) > 0 {
		s.Notes = append(s.Notes, fmt.Sprintf("Nobles: %v", p.nobles))
	}
	return s
}

func describeCard(c entities.Card) string {
	return fmt.Sprintf("cost Q%d W%d E%d R%d T%d, provides %s, %d VP",
		c.Cost[entities.Quartz], c.Cost[entities.Wolframite], c.Cost[entities.Emerald],
		c.Cost[entities.Ruby], c.Cost[entities.Turquoise], c.Produces.Letter(), c.Points)
}

func cardRow(id string, c entities.Card, extra ...string) []string {
	row := []string{id}
	for _, color := range entities.CardColors() {
		row = append(row, strconv.Itoa(c.Cost[color]))
	}
	row = append(row, c.Produces.Letter(), strconv.Itoa(c.Points))
	return append(row, extra...)
}

type visibleCard struct {
	id   string
	card entities.Card
}

// visibleCards lists the seat's own reserves followed by the market.
func (g *Game) visibleCards(seat entities.Seat) []visibleCard {
	var out []visibleCard
	if seat.Active() {
		for i, c := range g.players[seat].reserves {
			out = append(out, visibleCard{id: fmt.Sprintf("X%d", i+1), card: c})
		}
	}
	for _, slot := range marketSlots {
		if c := g.cardAt(slot); c != nil {
			out = append(out, visibleCard{id: slot.ID, card: *c})
		}
	}
	return out
}

func (g *Game) marketView(seat entities.Seat) Section {
	s := Section{
		Title:   "Market",
		Columns: colorColumns("Card ID", "Provides", "VP"),
	}
	for _, vc := range g.visibleCards(seat) {
		s.Rows = append(s.Rows, cardRow(vc.id, vc.card))
	}
	for tier, deck := range g.decks {
		s.Notes = append(s.Notes, fmt.Sprintf("Deck %s: %d cards left", entities.Tier(tier), len(deck)))
	}
	return s
}

func (g *Game) jewelsView(seat entities.Seat) Section {
	cards := g.visibleCards(seat)
	sort.SliceStable(cards, func(i, j int) bool {
		return cards[i].card.Produces < cards[j].card.Produces
	})
	s := Section{
		Title:   "Cards by jewel provided",
		Columns: colorColumns("Card ID", "Provides", "VP"),
	}
	for _, vc := range cards {
		s.Rows = append(s.Rows, cardRow(vc.id, vc.card))
	}
	return s
}

func (g *Game) buyableView(seat entities.Seat) Section {
	s := Section{
		Title:   "Buyable cards",
		Columns: colorColumns("Card ID", "Provides", "VP", "Gems paid", "Gold paid"),
	}
	if !seat.Active() {
		s.Notes = []string{"Spectators cannot buy cards."}
		return s
	}
	p := g.players[seat]
	type option struct {
		visibleCard
		pay entities.Gems
	}
	var options []option
	for _, vc := range g.visibleCards(seat) {
		pay, err := planPayment(p.gems, p.production, vc.card.Cost)
		if err != nil {
			continue
		}
		options = append(options, option{visibleCard: vc, pay: pay})
	}
	sort.SliceStable(options, func(i, j int) bool {
		return options[i].pay.Total() < options[j].pay.Total()
	})
	for _, o := range options {
		s.Rows = append(s.Rows, cardRow(o.id, o.card,
			strconv.Itoa(o.pay.Total()), strconv.Itoa(o.pay[entities.Gold])))
	}
	if len(options) == 0 {
		s.Notes = []string{"Nothing is affordable right now."}
	}
	return s
}

func (g *Game) stocksView() Section {
	row := []string{"Stocks"}
	for _, c := range entities.GemColors() {
		row = append(row, strconv.Itoa(g.bank[c]))
	}
	return Section{
		Title:   "Stocks",
		Columns: colorColumns("", entities.Gold.String()),
		Rows:    [][]string{row},
	}
}

func (g *Game) victoryView() Section {
	s := Section{
		Title:   "VP sources",
		Columns: colorColumns("Noble", "Available?", "VP"),
	}
	for _, n := range g.nobles {
		row := []string{n.ID}
		for _, c := range entities.CardColors() {
			row = append(row, strconv.Itoa(n.Requirement[c]))
		}
		avail := "Yes"
		if n.Claimed() {
			avail = "No, " + string(n.Owner)
		}
		s.Rows = append(s.Rows, append(row, avail, strconv.Itoa(n.Points)))
	}
	for _, slot := range marketSlots {
		if c := g.cardAt(slot); c != nil && c.Points > 0 {
			s.Notes = append(s.Notes, fmt.Sprintf("%s: %d VP", slot.ID, c.Points))
		}
	}
	s.Notes = append(s.Notes, fmt.Sprintf("p1 %d VP, p2 %d VP, %d to win",
		g.players[entities.SeatP1].points, g.players[entities.SeatP2].points, WinningPoints))
	return s
}

func (g *Game) turnView(seat entities.Seat) Section {
	s := Section{Title: "Turn"}
	switch g.status() {
	case entities.GameStatusFinished:
		s.Notes = append(s.Notes, fmt.Sprintf("Game over, %s wins.", g.winner))
	case entities.GameStatusWaiting:
		if g.settings.MinPlayers > 1 {
			s.Notes = append(s.Notes, "Waiting for a second player.")
		} else {
			s.Notes = append(s.Notes, fmt.Sprintf("It is %s's turn.", g.turn))
		}
	default:
		s.Notes = append(s.Notes, fmt.Sprintf("It is %s's turn.", g.turn))
	}
	if seat.Active() {
		s.Notes = append(s.Notes, fmt.Sprintf("You are %s.", seat))
	} else {
		s.Notes = append(s.Notes, "You are watching.")
	}
	return s
}

func (g *Game) historyView() Section {
	s := Section{
		Title:   "Recent moves",
		Columns: []string{"#", "Player", "Command", "Result"},
	}
	moves := g.history
	if len(moves) > historyShown {
		moves = moves[len(moves)-historyShown:]
	}
	for _, m := range moves {
		s.Rows = append(s.Rows, []string{strconv.Itoa(m.Number), string(m.Seat), m.Command, m.Summary})
	}
	if len(moves) == 0 {
		s.Notes = []string{"No moves yet."}
	}
	return s
}

// History returns a copy of the recorded moves, oldest first.
func (g *Game) History() []Move {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]Move(nil), g.history...)
}
