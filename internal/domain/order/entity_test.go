//go:build unit

package order_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecommerce-api/internal/domain/order"
)

func newPaidOrder(t *testing.T) *order.Order {
	t.Helper()
	lines := []order.Line{
		{ProductID: uuid.New(), ProductName: "Keyboard", Quantity: 2, UnitPriceCents: 1000},
		{ProductID: uuid.New(), ProductName: "Mouse", Quantity: 1, UnitPriceCents: 2500},
	}
	o, err := order.NewPaidOrder(uuid.New(), "1 Main St, Springfield", 4500, nil, lines)
	require.NoError(t, err)
	return o
}

func TestNewPaidOrder(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		o := newPaidOrder(t)
		assert.NotEqual(t, uuid.Nil, o.ID())
		assert.Equal(t, order.StatusPaid, o.Status())
		assert.EqualValues(t, 4500, o.TotalCents())
		assert.Len(t, o.Lines(), 2)
	})

	t.Run("empty shipping address rejected", func(t *testing.T) {
		_, err := order.NewPaidOrder(uuid.New(), "   ", 100, nil, []order.Line{{Quantity: 1, UnitPriceCents: 100}})
		assert.ErrorIs(t, err, order.ErrEmptyShippingAddress)
	})

	t.Run("no lines rejected", func(t *testing.T) {
		_, err := order.NewPaidOrder(uuid.New(), "1 Main St", 0, nil, nil)
		assert.ErrorIs(t, err, order.ErrNoLines)
	})
}

func TestLineSubtotal(t *testing.T) {
	l := order.Line{Quantity: 3, UnitPriceCents: 1250}
	assert.EqualValues(t, 3750, l.SubtotalCents())
}

func TestUpdateStatus(t *testing.T) {
	cases := []struct {
		name        string
		from        order.Status
		to          order.Status
		wantRestock bool
		errIs       error
	}{
		{name: "paid to shipped", from: order.StatusPaid, to: order.StatusShipped},
		{name: "shipped to delivered", from: order.StatusShipped, to: order.StatusDelivered},
		{name: "paid to cancelled restocks", from: order.StatusPaid, to: order.StatusCancelled, wantRestock: true},
		{name: "shipped to cancelled restocks", from: order.StatusShipped, to: order.StatusCancelled, wantRestock: true},
		{name: "same status rejected", from: order.StatusPaid, to: order.StatusPaid, errIs: order.ErrSameStatus},
		{name: "shipping before payment rejected", from: order.StatusPending, to: order.StatusShipped, errIs: order.ErrNotPaidYet},
		{name: "delivered cannot ship again", from: order.StatusDelivered, to: order.StatusShipped, errIs: order.ErrNotPaidYet},
		{name: "cancelled is terminal", from: order.StatusCancelled, to: order.StatusPaid, errIs: order.ErrAlreadyCancelled},
		{name: "no return to pending", from: order.StatusPaid, to: order.StatusPending, errIs: order.ErrPendingReentry},
		{name: "unknown status rejected", from: order.StatusPaid, to: order.Status("refunded"), errIs: order.ErrInvalidStatus},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			o := order.ReconstructOrder(uuid.New(), uuid.New(), 1000, "1 Main St", tc.from, nil,
				[]order.Line{{ProductID: uuid.New(), ProductName: "Widget", Quantity: 1, UnitPriceCents: 1000}},
				time.Time{}, time.Time{})

			restock, err := o.UpdateStatus(tc.to)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				assert.Equal(t, tc.from, o.Status())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.to, o.Status())
			assert.Equal(t, tc.wantRestock, restock)
		})
	}
}

func TestCancelByCustomer(t *testing.T) {
	cases := []struct {
		name  string
		from  order.Status
		errIs error
	}{
		{name: "pending order", from: order.StatusPending},
		{name: "paid order", from: order.StatusPaid},
		{name: "shipped order rejected", from: order.StatusShipped, errIs: order.ErrNotCancellable},
		{name: "delivered order rejected", from: order.StatusDelivered, errIs: order.ErrNotCancellable},
		{name: "cancelled order rejected", from: order.StatusCancelled, errIs: order.ErrNotCancellable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			o := order.ReconstructOrder(uuid.New(), uuid.New(), 1000, "1 Main St", tc.from, nil,
				[]order.Line{{ProductID: uuid.New(), ProductName: "Widget", Quantity: 1, UnitPriceCents: 1000}},
				time.Time{}, time.Time{})

			err := o.CancelByCustomer()
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				assert.Equal(t, tc.from, o.Status())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, order.StatusCancelled, o.Status())
		})
	}
}

func TestNewStatus(t *testing.T) {
	s, err := order.NewStatus("  Shipped ")
	require.NoError(t, err)
	assert.Equal(t, order.StatusShipped, s)

	_, err = order.NewStatus("refunded")
	assert.ErrorIs(t, err, order.ErrInvalidStatus)
}
