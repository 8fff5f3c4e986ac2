package engine

import (
	"go-splendor/entities"
)

const (
	// MaxHeldGems is checked whenever gems are taken.
	MaxHeldGems = 10
	// MaxReserved cards per seat.
	MaxReserved = 3
	// doubleTakeMin is the pile size required to take two of one color.
	doubleTakeMin = 4
)

// InitialBank is the token supply of a two-player game.
var InitialBank = entities.Gems{4, 4, 4, 4, 4, 5}

func checkTakeDouble(bank, held entities.Gems, color entities.Color) error {
	if color == entities.Gold {
		return illegal("gold cannot be taken")
	}
	if bank[color] < doubleTakeMin {
		return illegal("you can only take two %s while the pile holds %d, it holds %d", color, doubleTakeMin, bank[color])
	}
	if held.Total()+2 > MaxHeldGems {
		return illegal("you would hold %d gems, the limit is %d", held.Total()+2, MaxHeldGems)
	}
	return nil
}

func checkTakeDistinct(bank, held entities.Gems, colors []entities.Color) error {
	seen := map[entities.Color]bool{}
	for _, c := range colors {
		if c == entities.Gold {
			return illegal("gold cannot be taken")
		}
		if seen[c] {
			return illegal("%s named twice", c)
		}
		seen[c] = true
		if bank[c] <= 0 {
			return illegal("no %s left in the bank", c)
		}
	}
	if held.Total()+len(colors) > MaxHeldGems {
		return illegal("you would hold %d gems, the limit is %d", held.Total()+len(colors), MaxHeldGems)
	}
	return nil
}

// planPayment works out which tokens pay for cost. Production discounts each
// color, held gems cover what they can and gold covers the rest.
func planPayment(held entities.Gems, production entities.Bonus, cost entities.Bonus) (entities.Gems, error) {
	var pay entities.Gems
	shortfall := 0
	for _, c := range entities.CardColors() {
		owed := cost[c] - production[c]
		if owed <= 0 {
			continue
		}
		pay[c] = min(held[c], owed)
		shortfall += owed - pay[c]
	}
	if shortfall > held[entities.Gold] {
		return entities.Gems{}, illegal("you are %d gold short", shortfall-held[entities.Gold])
	}
	pay[entities.Gold] = shortfall
	return pay, nil
}

func checkReserve(held entities.Gems, reserved int) error {
	if reserved >= MaxReserved {
		return illegal("you already hold %d reserved cards", MaxReserved)
	}
	if held.Total() >= MaxHeldGems {
		return illegal("you hold %d gems and could not take the gold", held.Total())
	}
	return nil
}

// transfer moves amount from one pile to another. Callers validate first.
func transfer(from, to *entities.Gems, amount entities.Gems) {
	for i, n := range amount {
		from[i] -= n
		to[i] += n
	}
}
