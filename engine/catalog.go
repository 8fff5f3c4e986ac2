package engine

import (
	"fmt"

	"go-splendor/const_data"
	"go-splendor/entities"
)

// Catalog is the read-only card and noble data every game is dealt from.
type Catalog struct {
	Cards  [entities.NumTiers][]entities.Card
	Nobles []entities.NobleTile
}

// DefaultCatalog returns the built-in 90 cards and 10 nobles.
func DefaultCatalog() Catalog {
	var c Catalog
	for tier := range c.Cards {
		c.Cards[tier] = append([]entities.Card(nil), const_data.SplendorCards[tier]...)
	}
	c.Nobles = append([]entities.NobleTile(nil), const_data.NobleTilesList...)
	return c
}

// Validate checks the catalog can seed a game with the given settings.
func (c Catalog) Validate(s Settings) error {
	for tier, cards := range c.Cards {
		for _, card := range cards {
			if card.Tier != entities.Tier(tier) {
				return fmt.Errorf("card %d listed under tier %s but marked %s", card.ID, entities.Tier(tier), card.Tier)
			}
			if card.Produces < entities.Quartz || card.Produces > entities.Turquoise {
				return fmt.Errorf("card %d produces %s", card.ID, card.Produces)
			}
		}
	}
	if len(c.Nobles) < s.Nobles {
		return fmt.Errorf("catalog has %d nobles, game needs %d", len(c.Nobles), s.Nobles)
	}
	return nil
}
