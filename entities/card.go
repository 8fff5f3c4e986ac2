package entities

import "strings"

// Color 宝石颜色. The first five are card colors, Gold is only ever a token.
type Color int

const (
	Quartz Color = iota
	Wolframite
	Emerald
	Ruby
	Turquoise
	Gold
)

const (
	NumCardColors = 5 // colors a card can cost or produce
	NumGemColors  = 6 // card colors plus gold
)

var colorNames = [NumGemColors]string{"Quartz", "Wolframite", "Emerald", "Ruby", "Turquoise", "Gold"}
var colorLetters = [NumGemColors]byte{'Q', 'W', 'E', 'R', 'T', 'G'}

func (c Color) String() string {
	if c < 0 || int(c) >= NumGemColors {
		return "Unknown"
	}
	return colorNames[c]
}

// Letter is the single-letter command alias of the color.
func (c Color) Letter() string {
	if c < 0 || int(c) >= NumGemColors {
		return "?"
	}
	return string(colorLetters[c])
}

// ColorFromLetter maps Q/W/E/R/T (any case) to a card color. Gold is not selectable.
func ColorFromLetter(b byte) (Color, bool) {
	up := strings.ToUpper(string(b))
	for i := 0; i < NumCardColors; i++ {
		if string(colorLetters[i]) == up {
			return Color(i), true
		}
	}
	return 0, false
}

// CardColors lists the five colors in table order.
func CardColors() []Color {
	return []Color{Quartz, Wolframite, Emerald, Ruby, Turquoise}
}

// GemColors lists all six token colors in table order.
func GemColors() []Color {
	return []Color{Quartz, Wolframite, Emerald, Ruby, Turquoise, Gold}
}

// Gems 银行 / 玩家手上的宝石, indexed by Color including Gold.
type Gems [NumGemColors]int

func (g Gems) Total() int {
	total := 0
	for _, n := range g {
		total += n
	}
	return total
}

// Bonus 折扣向量, indexed by card Color (no gold).
type Bonus [NumCardColors]int

// Covers reports whether every component of b is at least the matching one in req.
func (b Bonus) Covers(req Bonus) bool {
	for i := range req {
		if b[i] < req[i] {
			return false
		}
	}
	return true
}

func (b Bonus) Total() int {
	total := 0
	for _, n := range b {
		total += n
	}
	return total
}

type Tier int

const (
	TierA Tier = iota
	TierB
	TierC
)

const NumTiers = 3

var tierLetters = [NumTiers]string{"A", "B", "C"}

func (t Tier) String() string {
	if t < 0 || int(t) >= NumTiers {
		return "?"
	}
	return tierLetters[t]
}

// TierFromLetter maps A/B/C (any case) to a tier.
func TierFromLetter(b byte) (Tier, bool) {
	up := strings.ToUpper(string(b))
	for i, l := range tierLetters {
		if l == up {
			return Tier(i), true
		}
	}
	return 0, false
}

// Card 发展卡. Immutable once dealt.
type Card struct {
	ID       int   `json:"id"`
	Tier     Tier  `json:"tier"`
	Cost     Bonus `json:"cost"`
	Produces Color `json:"produces"`
	Points   int   `json:"points"`
}

// NobleTile 贵族 in the catalog, before it is placed in a game.
type NobleTile struct {
	ID          string `json:"id"`
	Requirement Bonus  `json:"requirement"`
	Points      int    `json:"points"` // 固定 3 分
}
