package engine

import (
	"go-splendor/entities"
)

// Noble is a noble tile placed in a game.
type Noble struct {
	entities.NobleTile
	// Owner is empty while unclaimed. Once set it never changes.
	Owner entities.Seat `json:"owner,omitempty"`
}

func (n *Noble) Claimed() bool { return n.Owner != "" }

// claimNobles hands every unclaimed noble whose requirement the seat's
// production meets to that seat. Several may be claimed by one purchase.
func (g *Game) claimNobles(seat entities.Seat) []*Noble {
	p := g.players[seat]
	var claimed []*Noble
	for _, n := range g.nobles {
		if n.Claimed() {
			continue
		}
		if p.production.Covers(n.Requirement) {
			n.Owner = seat
			p.points += n.Points
			p.nobles = append(p.nobles, n.ID)
			claimed = append(claimed, n)
		}
	}
	return claimed
}
