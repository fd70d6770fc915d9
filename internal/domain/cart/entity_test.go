//go:build unit

package cart_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecommerce-api/internal/domain/cart"
)

func TestNewLine(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		l, err := cart.NewLine(uuid.New(), uuid.New(), 3)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, l.ID())
		assert.EqualValues(t, 3, l.Quantity())
	})

	t.Run("non-positive quantity rejected", func(t *testing.T) {
		_, err := cart.NewLine(uuid.New(), uuid.New(), 0)
		assert.ErrorIs(t, err, cart.ErrNonPositiveQuantity)
	})
}

func TestClampToStock(t *testing.T) {
	l, err := cart.NewLine(uuid.New(), uuid.New(), 10)
	require.NoError(t, err)

	l.ClampToStock(4)
	assert.EqualValues(t, 4, l.Quantity())

	l.ClampToStock(100)
	assert.EqualValues(t, 4, l.Quantity())
}
