package engine

import (
	"go-splendor/entities"
)

const (
	slotsPerTier = 4
	numSlots     = entities.NumTiers * slotsPerTier
)

// Slot is one of the twelve fixed market positions.
type Slot struct {
	ID   string
	Tier entities.Tier
	// index into Game.market
	index int
}

func (s Slot) String() string { return s.ID }

// marketSlots is the fixed slot table; a slot is only ever refilled from its own tier.
var marketSlots = [numSlots]Slot{
	{ID: "A1", Tier: entities.TierA, index: 0},
	{ID: "A2", Tier: entities.TierA, index: 1},
	{ID: "A3", Tier: entities.TierA, index: 2},
	{ID: "A4", Tier: entities.TierA, index: 3},
	{ID: "B1", Tier: entities.TierB, index: 4},
	{ID: "B2", Tier: entities.TierB, index: 5},
	{ID: "B3", Tier: entities.TierB, index: 6},
	{ID: "B4", Tier: entities.TierB, index: 7},
	{ID: "C1", Tier: entities.TierC, index: 8},
	{ID: "C2", Tier: entities.TierC, index: 9},
	{ID: "C3", Tier: entities.TierC, index: 10},
	{ID: "C4", Tier: entities.TierC, index: 11},
}

var slotByID = func() map[string]Slot {
	m := make(map[string]Slot, numSlots)
	for _, s := range marketSlots {
		m[s.ID] = s
	}
	return m
}()

// LookupSlot resolves an upper-case slot id such as "B3".
func LookupSlot(id string) (Slot, bool) {
	s, ok := slotByID[id]
	return s, ok
}

// dealInto pops the top of the slot's tier deck into the slot, or leaves the
// slot empty when the deck is exhausted.
func (g *Game) dealInto(slot Slot) {
	deck := g.decks[slot.Tier]
	if len(deck) == 0 {
		g.market[slot.index] = nil
		return
	}
	card := deck[len(deck)-1]
	g.decks[slot.Tier] = deck[:len(deck)-1]
	g.market[slot.index] = &card
}

// drawBlind pops the top of a tier deck without touching the market.
func (g *Game) drawBlind(tier entities.Tier) (entities.Card, bool) {
	deck := g.decks[tier]
	if len(deck) == 0 {
		return entities.Card{}, false
	}
	card := deck[len(deck)-1]
	g.decks[tier] = deck[:len(deck)-1]
	return card, true
}

func (g *Game) cardAt(slot Slot) *entities.Card {
	return g.market[slot.index]
}
