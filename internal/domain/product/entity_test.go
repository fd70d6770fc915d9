//go:build unit

package product_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecommerce-api/internal/domain/product"
)

func newProduct(t *testing.T, stock int32) *product.Product {
	t.Helper()
	code, err := product.NewCode("kb-001")
	require.NoError(t, err)
	p, err := product.NewProduct(code, "Keyboard", "A mechanical keyboard", 1000, "", stock, uuid.New())
	require.NoError(t, err)
	return p
}

func TestNewCode(t *testing.T) {
	code, err := product.NewCode(" kb-001 ")
	require.NoError(t, err)
	assert.Equal(t, "KB-001", code.String())

	_, err = product.NewCode("a")
	assert.ErrorIs(t, err, product.ErrInvalidProductCode)

	_, err = product.NewCode("has space")
	assert.ErrorIs(t, err, product.ErrInvalidProductCode)
}

func TestNewProduct(t *testing.T) {
	code, _ := product.NewCode("KB-001")
	categoryID := uuid.New()

	cases := []struct {
		name        string
		productName string
		description string
		priceCents  int64
		stockQty    int32
		errIs       error
	}{
		{name: "valid product", productName: "Keyboard", description: "desc", priceCents: 1000, stockQty: 5},
		{name: "empty name", productName: "  ", description: "desc", priceCents: 1000, stockQty: 5, errIs: product.ErrEmptyName},
		{name: "empty description", productName: "Keyboard", description: " ", priceCents: 1000, stockQty: 5, errIs: product.ErrEmptyDescription},
		{name: "zero price", productName: "Keyboard", description: "desc", priceCents: 0, stockQty: 5, errIs: product.ErrNonPositivePrice},
		{name: "negative stock", productName: "Keyboard", description: "desc", priceCents: 1000, stockQty: -1, errIs: product.ErrNegativeStock},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := product.NewProduct(code, tc.productName, tc.description, tc.priceCents, "", tc.stockQty, categoryID)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSell(t *testing.T) {
	t.Run("moves stock to sold", func(t *testing.T) {
		p := newProduct(t, 5)
		require.NoError(t, p.Sell(3))
		assert.EqualValues(t, 2, p.StockQty())
		assert.EqualValues(t, 3, p.SoldQty())
	})

	t.Run("zero stock", func(t *testing.T) {
		p := newProduct(t, 0)
		assert.ErrorIs(t, p.Sell(1), product.ErrOutOfStock)
	})

	t.Run("more than stock", func(t *testing.T) {
		p := newProduct(t, 2)
		assert.ErrorIs(t, p.Sell(3), product.ErrInsufficientStock)
		assert.EqualValues(t, 2, p.StockQty())
	})

	t.Run("non-positive quantity", func(t *testing.T) {
		p := newProduct(t, 2)
		assert.ErrorIs(t, p.Sell(0), product.ErrNegativeQuantity)
	})
}

func TestRestock(t *testing.T) {
	t.Run("inverts a sale", func(t *testing.T) {
		p := newProduct(t, 5)
		require.NoError(t, p.Sell(3))
		require.NoError(t, p.Restock(3))
		assert.EqualValues(t, 5, p.StockQty())
		assert.EqualValues(t, 0, p.SoldQty())
	})

	t.Run("non-positive quantity", func(t *testing.T) {
		p := newProduct(t, 5)
		assert.ErrorIs(t, p.Restock(0), product.ErrNegativeQuantity)
	})
}

func TestUpdateDetails(t *testing.T) {
	p := newProduct(t, 5)
	require.NoError(t, p.Sell(2))

	code, _ := product.NewCode("KB-002")
	newCategory := uuid.New()
	require.NoError(t, p.UpdateDetails(code, "Keyboard v2", "updated", 1500, "https://cdn/img.png", 10, newCategory))

	assert.Equal(t, "KB-002", p.Code().String())
	assert.EqualValues(t, 1500, p.PriceCents())
	assert.EqualValues(t, 10, p.StockQty())
	assert.EqualValues(t, 2, p.SoldQty())
	assert.Equal(t, newCategory, p.CategoryID())

	assert.ErrorIs(t, p.UpdateDetails(code, "", "desc", 1500, "", 10, newCategory), product.ErrEmptyName)
}
