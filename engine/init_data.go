package engine

import (
	"go-splendor/entities"

	"golang.org/x/exp/rand"
)

// newGame deals a fresh game: each tier deck is shuffled on its own, four
// cards per tier go to the market and the nobles are sampled without
// replacement. The first identity to arrive is seated by Join.
func newGame(id string, catalog Catalog, settings Settings, rng *rand.Rand) *Game {
	settings = settings.Normalize()
	g := &Game{
		id:       id,
		settings: settings,
		turn:     entities.SeatP1,
		bank:     InitialBank,
		players: map[entities.Seat]*playerState{
			entities.SeatP1: {},
			entities.SeatP2: {},
		},
	}

	// 打乱每一级牌堆
	for tier, cards := range catalog.Cards {
		deck := make([]entities.Card, len(cards))
		copy(deck, cards)
		rng.Shuffle(len(deck), func(i, j int) {
			deck[i], deck[j] = deck[j], deck[i]
		})
		g.decks[tier] = deck
	}
	for _, slot := range marketSlots {
		g.dealInto(slot)
	}

	// 随机贵族
	order := rng.Perm(len(catalog.Nobles))
	count := min(settings.Nobles, len(order))
	g.nobles = make([]*Noble, 0, count)
	for _, idx := range order[:count] {
		g.nobles = append(g.nobles, &Noble{NobleTile: catalog.Nobles[idx]})
	}
	return g
}
