package const_data

import "go-splendor/entities"

// cost 按 Q W E R T 顺序
func cost(q, w, e, r, t int) entities.Bonus {
	return entities.Bonus{q, w, e, r, t}
}

type cardRow struct {
	points   int
	produces entities.Color
	cost     entities.Bonus
}

const (
	q = entities.Quartz
	w = entities.Wolframite
	e = entities.Emerald
	r = entities.Ruby
	t = entities.Turquoise
)

var tierARows = []cardRow{
	{0, w, cost(1, 0, 1, 1, 1)},
	{0, w, cost(1, 0, 1, 1, 2)},
	{0, w, cost(2, 0, 0, 1, 2)},
	{0, w, cost(0, 1, 1, 3, 0)},
	{0, w, cost(0, 0, 2, 1, 0)},
	{0, w, cost(2, 0, 2, 0, 0)},
	{0, w, cost(0, 0, 3, 0, 0)},
	{1, w, cost(0, 0, 0, 0, 4)},

	{0, t, cost(1, 1, 1, 1, 0)},
	{0, t, cost(1, 1, 1, 2, 0)},
	{0, t, cost(1, 0, 2, 2, 0)},
	{0, t, cost(0, 0, 3, 1, 1)},
	{0, t, cost(1, 2, 0, 0, 0)},
	{0, t, cost(0, 2, 2, 0, 0)},
	{0, t, cost(0, 3, 0, 0, 0)},
	{1, t, cost(0, 0, 0, 4, 0)},

	{0, q, cost(0, 1, 1, 1, 1)},
	{0, q, cost(0, 1, 2, 1, 1)},
	{0, q, cost(0, 1, 2, 0, 2)},
	{0, q, cost(3, 1, 0, 0, 1)},
	{0, q, cost(0, 1, 0, 2, 0)},
	{0, q, cost(0, 2, 0, 0, 2)},
	{0, q, cost(0, 0, 0, 0, 3)},
	{1, q, cost(0, 0, 4, 0, 0)},

	{0, e, cost(1, 1, 0, 1, 1)},
	{0, e, cost(1, 2, 0, 1, 1)},
	{0, e, cost(0, 2, 0, 2, 1)},
	{0, e, cost(1, 0, 1, 0, 3)},
	{0, e, cost(2, 0, 0, 0, 1)},
	{0, e, cost(0, 0, 0, 2, 2)},
	{0, e, cost(0, 0, 0, 3, 0)},
	{1, e, cost(0, 4, 0, 0, 0)},

	{0, r, cost(1, 1, 1, 0, 1)},
	{0, r, cost(2, 1, 1, 0, 1)},
	{0, r, cost(2, 2, 1, 0, 0)},
	{0, r, cost(1, 3, 0, 1, 0)},
	{0, r, cost(0, 0, 1, 0, 2)},
	{0, r, cost(2, 0, 0, 2, 0)},
	{0, r, cost(3, 0, 0, 0, 0)},
	{1, r, cost(4, 0, 0, 0, 0)},
}

var tierBRows = []cardRow{
	{1, w, cost(3, 0, 2, 0, 2)},
	{1, w, cost(3, 2, 3, 0, 0)},
	{2, w, cost(0, 0, 4, 2, 1)},
	{2, w, cost(0, 0, 5, 3, 0)},
	{2, w, cost(5, 0, 0, 0, 0)},
	{3, w, cost(0, 6, 0, 0, 0)},

	{1, t, cost(0, 0, 2, 3, 2)},
	{1, t, cost(0, 3, 3, 0, 2)},
	{2, t, cost(5, 0, 0, 0, 3)},
	{2, t, cost(2, 4, 0, 1, 0)},
	{2, t, cost(0, 0, 0, 0, 5)},
	{3, t, cost(0, 0, 0, 0, 6)},

	{1, q, cost(0, 2, 3, 2, 0)},
	{1, q, cost(2, 0, 0, 3, 3)},
	{2, q, cost(0, 2, 1, 4, 0)},
	{2, q, cost(0, 3, 0, 5, 0)},
	{2, q, cost(0, 0, 0, 5, 0)},
	{3, q, cost(6, 0, 0, 0, 0)},

	{1, e, cost(3, 0, 2, 3, 0)},
	{1, e, cost(2, 2, 0, 0, 3)},
	{2, e, cost(4, 1, 0, 0, 2)},
	{2, e, cost(0, 0, 3, 0, 5)},
	{2, e, cost(0, 0, 5, 0, 0)},
	{3, e, cost(0, 0, 6, 0, 0)},

	{1, r, cost(2, 3, 0, 2, 0)},
	{1, r, cost(0, 3, 0, 2, 3)},
	{2, r, cost(1, 0, 2, 0, 4)},
	{2, r, cost(3, 5, 0, 0, 0)},
	{2, r, cost(0, 5, 0, 0, 0)},
	{3, r, cost(0, 0, 0, 6, 0)},
}

var tierCRows = []cardRow{
	{3, w, cost(3, 0, 5, 3, 3)},
	{4, w, cost(0, 0, 0, 7, 0)},
	{4, w, cost(0, 3, 3, 6, 0)},
	{5, w, cost(0, 3, 0, 7, 0)},

	{3, t, cost(3, 5, 3, 3, 0)},
	{4, t, cost(7, 0, 0, 0, 0)},
	{4, t, cost(6, 3, 0, 0, 3)},
	{5, t, cost(7, 0, 0, 0, 3)},

	{3, q, cost(0, 3, 3, 5, 3)},
	{4, q, cost(0, 7, 0, 0, 0)},
	{4, q, cost(3, 6, 0, 3, 0)},
	{5, q, cost(3, 7, 0, 0, 0)},

	{3, e, cost(5, 3, 0, 3, 3)},
	{4, e, cost(0, 0, 0, 0, 7)},
	{4, e, cost(3, 0, 3, 0, 6)},
	{5, e, cost(0, 0, 3, 0, 7)},

	{3, r, cost(3, 3, 3, 0, 5)},
	{4, r, cost(0, 0, 7, 0, 0)},
	{4, r, cost(0, 0, 6, 3, 3)},
	{5, r, cost(0, 0, 7, 3, 0)},
}

// SplendorCards 全部发展卡, indexed by tier. IDs are unique across tiers.
var SplendorCards = buildCards(tierARows, tierBRows, tierCRows)

func buildCards(tiers ...[]cardRow) [][]entities.Card {
	out := make([][]entities.Card, len(tiers))
	id := 1
	for tier, rows := range tiers {
		cards := make([]entities.Card, 0, len(rows))
		for _, row := range rows {
			cards = append(cards, entities.Card{
				ID:       id,
				Tier:     entities.Tier(tier),
				Cost:     row.cost,
				Produces: row.produces,
				Points:   row.points,
			})
			id++
		}
		out[tier] = cards
	}
	return out
}
