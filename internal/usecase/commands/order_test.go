//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecommerce-api/internal/domain/order"
	"ecommerce-api/internal/usecase/commands"
)

var orderNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func seedOrder(uow *fakeUoW, userID uuid.UUID, status order.Status, lines []order.Line) uuid.UUID {
	id := uuid.New()
	var total int64
	for _, l := range lines {
		total += l.SubtotalCents()
	}
	uow.tx.orders.byID[id] = order.ReconstructOrder(
		id, userID, total, "1 Main St", status, nil, lines, orderNow, orderNow,
	)
	return id
}

func TestUpdateStatus_ShipPaidOrder(t *testing.T) {
	uow := newFakeUoW()
	p := seedProduct(t, uow.tx.products, "MUG-01", 1000, 3)
	orderID := seedOrder(uow, uuid.New(), order.StatusPaid, []order.Line{
		{ProductID: p.ID(), ProductName: p.Name(), Quantity: 2, UnitPriceCents: 1000},
	})

	uc := commands.NewOrderUseCase(uow)
	err := uc.UpdateStatus(context.Background(), orderID, "shipped")
	require.NoError(t, err)

	require.Len(t, uow.tx.orders.updates, 1)
	assert.Equal(t, order.StatusShipped, uow.tx.orders.updates[0])
	assert.Empty(t, uow.tx.products.stockSaves)
}

func TestUpdateStatus_CancelRestocks(t *testing.T) {
	uow := newFakeUoW()
	p := seedProduct(t, uow.tx.products, "MUG-01", 1000, 3)
	require.NoError(t, p.Sell(2))
	orderID := seedOrder(uow, uuid.New(), order.StatusPaid, []order.Line{
		{ProductID: p.ID(), ProductName: p.Name(), Quantity: 2, UnitPriceCents: 1000},
	})

	uc := commands.NewOrderUseCase(uow)
	err := uc.UpdateStatus(context.Background(), orderID, "cancelled")
	require.NoError(t, err)

	assert.Equal(t, int32(3), p.StockQty())
	assert.Equal(t, int32(0), p.SoldQty())
	assert.Equal(t, []uuid.UUID{p.ID()}, uow.tx.products.stockSaves)
	require.Len(t, uow.tx.orders.updates, 1)
	assert.Equal(t, order.StatusCancelled, uow.tx.orders.updates[0])
}

func TestUpdateStatus_CancelSkipsDeletedProducts(t *testing.T) {
	uow := newFakeUoW()
	p := seedProduct(t, uow.tx.products, "MUG-01", 1000, 3)
	orderID := seedOrder(uow, uuid.New(), order.StatusPaid, []order.Line{
		{ProductID: p.ID(), ProductName: p.Name(), Quantity: 2, UnitPriceCents: 1000},
	})
	delete(uow.tx.products.byID, p.ID())

	uc := commands.NewOrderUseCase(uow)
	err := uc.UpdateStatus(context.Background(), orderID, "cancelled")
	require.NoError(t, err)

	assert.Empty(t, uow.tx.products.stockSaves)
	require.Len(t, uow.tx.orders.updates, 1)
	assert.Equal(t, order.StatusCancelled, uow.tx.orders.updates[0])
}

func TestUpdateStatus_InvalidTransition(t *testing.T) {
	uow := newFakeUoW()
	p := seedProduct(t, uow.tx.products, "MUG-01", 1000, 3)
	orderID := seedOrder(uow, uuid.New(), order.StatusPending, []order.Line{
		{ProductID: p.ID(), ProductName: p.Name(), Quantity: 1, UnitPriceCents: 1000},
	})

	uc := commands.NewOrderUseCase(uow)
	err := uc.UpdateStatus(context.Background(), orderID, "shipped")

	assert.ErrorIs(t, err, order.ErrNotPaidYet)
	assert.Empty(t, uow.tx.orders.updates)
}

func TestUpdateStatus_UnknownOrder(t *testing.T) {
	uow := newFakeUoW()
	uc := commands.NewOrderUseCase(uow)

	err := uc.UpdateStatus(context.Background(), uuid.New(), "shipped")

	assert.ErrorIs(t, err, commands.ErrOrderNotFoundWrite)
}

func TestUpdateStatus_UnknownStatus(t *testing.T) {
	uow := newFakeUoW()
	uc := commands.NewOrderUseCase(uow)

	err := uc.UpdateStatus(context.Background(), uuid.New(), "teleported")

	assert.ErrorIs(t, err, order.ErrInvalidStatus)
}

func TestCancel_ByOwner(t *testing.T) {
	uow := newFakeUoW()
	userID := uuid.New()
	p := seedProduct(t, uow.tx.products, "MUG-01", 1000, 5)
	require.NoError(t, p.Sell(1))
	orderID := seedOrder(uow, userID, order.StatusPending, []order.Line{
		{ProductID: p.ID(), ProductName: p.Name(), Quantity: 1, UnitPriceCents: 1000},
	})

	uc := commands.NewOrderUseCase(uow)
	err := uc.Cancel(context.Background(), orderID, userID)
	require.NoError(t, err)

	assert.Equal(t, int32(5), p.StockQty())
	require.Len(t, uow.tx.orders.updates, 1)
	assert.Equal(t, order.StatusCancelled, uow.tx.orders.updates[0])
}

func TestCancel_SomeoneElsesOrder(t *testing.T) {
	uow := newFakeUoW()
	p := seedProduct(t, uow.tx.products, "MUG-01", 1000, 5)
	orderID := seedOrder(uow, uuid.New(), order.StatusPaid, []order.Line{
		{ProductID: p.ID(), ProductName: p.Name(), Quantity: 1, UnitPriceCents: 1000},
	})

	uc := commands.NewOrderUseCase(uow)
	err := uc.Cancel(context.Background(), orderID, uuid.New())

	assert.ErrorIs(t, err, commands.ErrOrderNotFoundWrite)
}

func TestCancel_AlreadyShipped(t *testing.T) {
	uow := newFakeUoW()
	userID := uuid.New()
	p := seedProduct(t, uow.tx.products, "MUG-01", 1000, 5)
	orderID := seedOrder(uow, userID, order.StatusShipped, []order.Line{
		{ProductID: p.ID(), ProductName: p.Name(), Quantity: 1, UnitPriceCents: 1000},
	})

	uc := commands.NewOrderUseCase(uow)
	err := uc.Cancel(context.Background(), orderID, userID)

	assert.ErrorIs(t, err, order.ErrNotCancellable)
	assert.Empty(t, uow.tx.orders.updates)
}
