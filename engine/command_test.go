package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-splendor/entities"
)

func TestParseCommandTake(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input  string
		colors []entities.Color
		double bool
	}{
		{"QWE", []entities.Color{entities.Quartz, entities.Wolframite, entities.Emerald}, false},
		{"qwe", []entities.Color{entities.Quartz, entities.Wolframite, entities.Emerald}, false},
		{" q w\ne ", []entities.Color{entities.Quartz, entities.Wolframite, entities.Emerald}, false},
		{"Q--", []entities.Color{entities.Quartz}, false},
		{"-R-", []entities.Color{entities.Ruby}, false},
		{"WE-", []entities.Color{entities.Wolframite, entities.Emerald}, false},
		{"RT", []entities.Color{entities.Ruby, entities.Turquoise}, false},
		{"T-", []entities.Color{entities.Turquoise}, false},
		{"WW", []entities.Color{entities.Wolframite}, true},
		{"tt", []entities.Color{entities.Turquoise}, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			cmd, err := ParseCommand(tt.input)
			require.NoError(t, err)
			take, ok := cmd.Action.(TakeGems)
			require.True(t, ok, "got %T", cmd.Action)
			assert.Equal(t, tt.colors, take.Colors)
			assert.Equal(t, tt.double, take.Double)
			assert.Empty(t, cmd.Views)
		})
	}
}

func TestParseCommandPurchaseAndReserve(t *testing.T) {
	t.Parallel()

	cmd, err := ParseCommand("b3")
	require.NoError(t, err)
	buy, ok := cmd.Action.(Purchase)
	require.True(t, ok)
	require.NotNil(t, buy.Slot)
	assert.Equal(t, "B3", buy.Slot.ID)
	assert.Equal(t, entities.TierB, buy.Slot.Tier)

	cmd, err = ParseCommand("X2")
	require.NoError(t, err)
	buy = cmd.Action.(Purchase)
	assert.Nil(t, buy.Slot)
	assert.Equal(t, 2, buy.Reserved)
	assert.Equal(t, "X2", buy.String())

	cmd, err = ParseCommand("gc4")
	require.NoError(t, err)
	res, ok := cmd.Action.(Reserve)
	require.True(t, ok)
	require.NotNil(t, res.Slot)
	assert.Equal(t, "C4", res.Slot.ID)
	assert.Equal(t, "GC4", res.String())

	cmd, err = ParseCommand("GA0")
	require.NoError(t, err)
	res = cmd.Action.(Reserve)
	assert.Nil(t, res.Slot)
	assert.Equal(t, entities.TierA, res.Tier)
}

func TestParseCommandQueries(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input string
		views []View
	}{
		{"", []View{ViewHelp}},
		{"   ", []View{ViewHelp}},
		{"help", []View{ViewHelp}},
		{"h", []View{ViewHelp}},
		{"IMS", []View{ViewInventory, ViewMarket, ViewStocks}},
		{"vpo", []View{ViewVictory, ViewTurn, ViewOpponent}},
		{"JKL", []View{ViewJewels, ViewHistory, ViewBuyable}},
		{"ss", []View{ViewStocks, ViewStocks}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			cmd, err := ParseCommand(tt.input)
			require.NoError(t, err)
			assert.True(t, cmd.IsQuery())
			assert.Equal(t, tt.views, cmd.Views)
		})
	}
}

func TestParseCommandCompound(t *testing.T) {
	t.Parallel()

	cmd, err := ParseCommand("QWE;SI")
	require.NoError(t, err)
	assert.IsType(t, TakeGems{}, cmd.Action)
	assert.Equal(t, []View{ViewStocks, ViewInventory}, cmd.Views)

	cmd, err = ParseCommand("A1;")
	require.NoError(t, err)
	assert.IsType(t, Purchase{}, cmd.Action)
	assert.Empty(t, cmd.Views)

	cmd, err = ParseCommand("ga0 ; help")
	require.NoError(t, err)
	assert.IsType(t, Reserve{}, cmd.Action)
	assert.Equal(t, []View{ViewHelp}, cmd.Views)
}

func TestParseCommandInvalid(t *testing.T) {
	t.Parallel()
	for _, input := range []string{
		"QQE", "Q-Q", "QQQ", "--", "---", "QWER", "Q", "GQ1", "G", "A5", "A0", "D1",
		"X0", "X4", "GA5", "GD1", "I;S", "S;QWE", "QWE;QWE", "QWE;S;I", "hello", "Z", "QG",
	} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseCommand(input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidCommand)
		})
	}
}
