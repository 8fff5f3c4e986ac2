package engine

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-splendor/entities"
)

func TestCheckTakeDoubleThreshold(t *testing.T) {
	t.Parallel()
	for stock := 0; stock <= 4; stock++ {
		t.Run(fmt.Sprintf("stock %d", stock), func(t *testing.T) {
			bank := InitialBank
			bank[entities.Ruby] = stock
			err := checkTakeDouble(bank, entities.Gems{}, entities.Ruby)
			if stock == 4 {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrIllegalAction)
			}
		})
	}

	t.Run("gold", func(t *testing.T) {
		assert.ErrorIs(t, checkTakeDouble(InitialBank, entities.Gems{}, entities.Gold), ErrIllegalAction)
	})
	t.Run("cap", func(t *testing.T) {
		held := entities.Gems{2, 2, 2, 2, 0, 0}
		assert.NoError(t, checkTakeDouble(InitialBank, held, entities.Turquoise))
		held[entities.Gold] = 1
		assert.ErrorIs(t, checkTakeDouble(InitialBank, held, entities.Turquoise), ErrIllegalAction)
	})
}

func TestCheckTakeDistinct(t *testing.T) {
	t.Parallel()
	three := []entities.Color{entities.Quartz, entities.Wolframite, entities.Emerald}

	assert.NoError(t, checkTakeDistinct(InitialBank, entities.Gems{}, three))

	bank := InitialBank
	bank[entities.Emerald] = 0
	assert.ErrorIs(t, checkTakeDistinct(bank, entities.Gems{}, three), ErrIllegalAction)
	assert.NoError(t, checkTakeDistinct(bank, entities.Gems{}, three[:2]))

	held := entities.Gems{2, 2, 2, 1, 0, 0}
	assert.NoError(t, checkTakeDistinct(InitialBank, held, three))
	held[entities.Turquoise] = 1
	assert.ErrorIs(t, checkTakeDistinct(InitialBank, held, three), ErrIllegalAction)
	assert.NoError(t, checkTakeDistinct(InitialBank, held, three[:2]))

	assert.ErrorIs(t, checkTakeDistinct(InitialBank, entities.Gems{}, []entities.Color{entities.Ruby, entities.Ruby}), ErrIllegalAction)
	assert.ErrorIs(t, checkTakeDistinct(InitialBank, entities.Gems{}, []entities.Color{entities.Gold}), ErrIllegalAction)
}

func TestPlanPayment(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name       string
		held       entities.Gems
		production entities.Bonus
		cost       entities.Bonus
		want       entities.Gems
		wantErr    bool
	}{
		{
			name: "exact gems",
			held: entities.Gems{1, 1, 1, 1, 0, 0},
			cost: entities.Bonus{1, 1, 1, 1, 0},
			want: entities.Gems{1, 1, 1, 1, 0, 0},
		},
		{
			name:       "production discounts",
			held:       entities.Gems{1, 3, 0, 0, 0, 2},
			production: entities.Bonus{1, 0, 0, 0, 0},
			cost:       entities.Bonus{3, 2, 0, 0, 0},
			want:       entities.Gems{1, 2, 0, 0, 0, 1},
		},
		{
			name:       "production exceeds cost",
			held:       entities.Gems{},
			production: entities.Bonus{5, 0, 0, 0, 0},
			cost:       entities.Bonus{3, 0, 0, 0, 0},
			want:       entities.Gems{},
		},
		{
			name: "gold covers several colors",
			held: entities.Gems{0, 0, 0, 0, 0, 3},
			cost: entities.Bonus{1, 0, 1, 0, 1},
			want: entities.Gems{0, 0, 0, 0, 0, 3},
		},
		{
			name:    "gold short",
			held:    entities.Gems{0, 0, 0, 0, 0, 2},
			cost:    entities.Bonus{1, 0, 1, 0, 1},
			wantErr: true,
		},
		{
			name:    "nothing held",
			cost:    entities.Bonus{0, 0, 0, 7, 0},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := planPayment(tt.held, tt.production, tt.cost)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrIllegalAction)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			for i := range got {
				assert.LessOrEqual(t, got[i], tt.held[i])
			}
		})
	}
}

func TestCheckReserve(t *testing.T) {
	t.Parallel()
	assert.NoError(t, checkReserve(entities.Gems{}, 0))
	assert.NoError(t, checkReserve(entities.Gems{3, 3, 3, 0, 0, 0}, 2))
	assert.ErrorIs(t, checkReserve(entities.Gems{}, 3), ErrIllegalAction)
	assert.ErrorIs(t, checkReserve(entities.Gems{3, 3, 3, 1, 0, 0}, 0), ErrIllegalAction)
}

func TestTransfer(t *testing.T) {
	t.Parallel()
	from := entities.Gems{4, 4, 4, 4, 4, 5}
	var to entities.Gems
	transfer(&from, &to, entities.Gems{1, 0, 2, 0, 0, 1})
	assert.Equal(t, entities.Gems{3, 4, 2, 4, 4, 4}, from)
	assert.Equal(t, entities.Gems{1, 0, 2, 0, 0, 1}, to)
}
