//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecommerce-api/internal/domain/coupon"
	"ecommerce-api/internal/domain/order"
	"ecommerce-api/internal/domain/product"
	"ecommerce-api/internal/pkg/clock"
	"ecommerce-api/internal/usecase/commands"
	"ecommerce-api/internal/usecase/shared"
)

var checkoutNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func seedProduct(t *testing.T, repo *fakeProductRepo, rawCode string, priceCents int64, stock int32) *product.Product {
	t.Helper()
	code, err := product.NewCode(rawCode)
	require.NoError(t, err)
	p := product.ReconstructProduct(
		uuid.New(), code, rawCode, "test product", priceCents, "",
		stock, 0, uuid.New(), checkoutNow, checkoutNow,
	)
	repo.byID[p.ID()] = p
	return p
}

func seedCartLine(carts *fakeCartRepo, p *product.Product, qty int32) {
	carts.lines = append(carts.lines, shared.CartLineSnapshot{
		LineID:         uuid.New(),
		ProductID:      p.ID(),
		ProductName:    p.Name(),
		Quantity:       qty,
		UnitPriceCents: p.PriceCents(),
		StockQty:       p.StockQty(),
	})
}

func seedCoupon(t *testing.T, repo *fakeCouponRepo, rawCode string, discountCents int64, maxTotal, maxPerUser int32) *coupon.Coupon {
	t.Helper()
	code, err := coupon.NewCode(rawCode)
	require.NoError(t, err)
	c, err := coupon.NewCoupon(code, discountCents, checkoutNow.Add(24*time.Hour), maxTotal, maxPerUser, checkoutNow)
	require.NoError(t, err)
	repo.byCode[code.String()] = c
	return c
}

func strPtr(s string) *string { return &s }

func TestCheckout_EmptyCart(t *testing.T) {
	uow := newFakeUoW()
	uc := commands.NewCheckoutUseCase(uow, clock.NewMockClock(checkoutNow))

	_, err := uc.Checkout(context.Background(), uuid.New(), commands.CheckoutRequest{ShippingAddress: "1 Main St"})

	assert.ErrorIs(t, err, commands.ErrEmptyCart)
	assert.Empty(t, uow.tx.orders.created)
}

func TestCheckout_TotalWithCoupon(t *testing.T) {
	uow := newFakeUoW()
	userID := uuid.New()

	mug := seedProduct(t, uow.tx.products, "MUG-01", 1000, 5)
	lamp := seedProduct(t, uow.tx.products, "LAMP-01", 2500, 3)
	seedCartLine(uow.tx.carts, mug, 2)
	seedCartLine(uow.tx.carts, lamp, 1)
	c := seedCoupon(t, uow.tx.coupons, "SAVE5", 500, 10, 1)

	uc := commands.NewCheckoutUseCase(uow, clock.NewMockClock(checkoutNow))
	res, err := uc.Checkout(context.Background(), userID, commands.CheckoutRequest{
		ShippingAddress: "1 Main St",
		CouponCode:      strPtr("save5"),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(4500), res.SubtotalCents)
	assert.Equal(t, int64(500), res.DiscountCents)
	assert.Equal(t, int64(4000), res.TotalCents)
	require.NotNil(t, res.CouponCode)
	assert.Equal(t, "SAVE5", *res.CouponCode)

	// stock moved to sold under the same transaction
	assert.Equal(t, int32(3), mug.StockQty())
	assert.Equal(t, int32(2), mug.SoldQty())
	assert.Equal(t, int32(2), lamp.StockQty())
	assert.Len(t, uow.tx.products.stockSaves, 2)

	require.Len(t, uow.tx.orders.created, 1)
	o := uow.tx.orders.created[0]
	assert.Equal(t, order.StatusPaid, o.Status())
	assert.Equal(t, int64(4000), o.TotalCents())
	assert.Len(t, o.Lines(), 2)

	require.Len(t, uow.tx.coupons.redemptions, 1)
	assert.Equal(t, c.ID(), uow.tx.coupons.redemptions[0].couponID)
	assert.Equal(t, userID, uow.tx.coupons.redemptions[0].userID)
	assert.True(t, uow.tx.carts.cleared)
}

func TestCheckout_UnknownCouponIgnored(t *testing.T) {
	uow := newFakeUoW()
	mug := seedProduct(t, uow.tx.products, "MUG-01", 1000, 5)
	seedCartLine(uow.tx.carts, mug, 2)

	uc := commands.NewCheckoutUseCase(uow, clock.NewMockClock(checkoutNow))
	res, err := uc.Checkout(context.Background(), uuid.New(), commands.CheckoutRequest{
		ShippingAddress: "1 Main St",
		CouponCode:      strPtr("NOSUCH"),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(2000), res.TotalCents)
	assert.Zero(t, res.DiscountCents)
	assert.Nil(t, res.CouponCode)
	assert.Empty(t, uow.tx.coupons.redemptions)
	require.Len(t, uow.tx.orders.created, 1)
	assert.Nil(t, uow.tx.orders.created[0].CouponCode())
}

func TestCheckout_ExpiredCouponIgnored(t *testing.T) {
	uow := newFakeUoW()
	mug := seedProduct(t, uow.tx.products, "MUG-01", 1000, 5)
	seedCartLine(uow.tx.carts, mug, 1)

	code, err := coupon.NewCode("OLD10")
	require.NoError(t, err)
	expired := coupon.ReconstructCoupon(
		uuid.New(), code, 500, checkoutNow.Add(-time.Hour), true, 10, 1, 0,
		checkoutNow, checkoutNow,
	)
	uow.tx.coupons.byCode[code.String()] = expired

	uc := commands.NewCheckoutUseCase(uow, clock.NewMockClock(checkoutNow))
	res, err := uc.Checkout(context.Background(), uuid.New(), commands.CheckoutRequest{
		ShippingAddress: "1 Main St",
		CouponCode:      strPtr("OLD10"),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1000), res.TotalCents)
	assert.Nil(t, res.CouponCode)
	assert.Empty(t, uow.tx.coupons.redemptions)
}

func TestCheckout_CouponUsageLimitFails(t *testing.T) {
	uow := newFakeUoW()
	mug := seedProduct(t, uow.tx.products, "MUG-01", 1000, 5)
	seedCartLine(uow.tx.carts, mug, 1)

	code, err := coupon.NewCode("FULL")
	require.NoError(t, err)
	exhausted := coupon.ReconstructCoupon(
		uuid.New(), code, 500, checkoutNow.Add(time.Hour), true, 3, 1, 3,
		checkoutNow, checkoutNow,
	)
	uow.tx.coupons.byCode[code.String()] = exhausted

	uc := commands.NewCheckoutUseCase(uow, clock.NewMockClock(checkoutNow))
	_, err = uc.Checkout(context.Background(), uuid.New(), commands.CheckoutRequest{
		ShippingAddress: "1 Main St",
		CouponCode:      strPtr("FULL"),
	})

	assert.ErrorIs(t, err, commands.ErrCouponUsageLimit)
	assert.Empty(t, uow.tx.orders.created)
	assert.False(t, uow.tx.carts.cleared)
}

func TestCheckout_CouponPerUserLimitFails(t *testing.T) {
	uow := newFakeUoW()
	userID := uuid.New()
	mug := seedProduct(t, uow.tx.products, "MUG-01", 1000, 5)
	seedCartLine(uow.tx.carts, mug, 1)
	seedCoupon(t, uow.tx.coupons, "ONCE", 500, 10, 1)
	uow.tx.coupons.userUsed[userID] = 1

	uc := commands.NewCheckoutUseCase(uow, clock.NewMockClock(checkoutNow))
	_, err := uc.Checkout(context.Background(), userID, commands.CheckoutRequest{
		ShippingAddress: "1 Main St",
		CouponCode:      strPtr("ONCE"),
	})

	assert.ErrorIs(t, err, commands.ErrCouponPerUserLimit)
	assert.Empty(t, uow.tx.orders.created)
}

func TestCheckout_InsufficientStock(t *testing.T) {
	uow := newFakeUoW()
	mug := seedProduct(t, uow.tx.products, "MUG-01", 1000, 1)
	seedCartLine(uow.tx.carts, mug, 2)

	uc := commands.NewCheckoutUseCase(uow, clock.NewMockClock(checkoutNow))
	_, err := uc.Checkout(context.Background(), uuid.New(), commands.CheckoutRequest{ShippingAddress: "1 Main St"})

	assert.ErrorIs(t, err, commands.ErrInsufficientStock)
	assert.Empty(t, uow.tx.orders.created)
}

func TestCheckout_ProductRemovedFromCatalog(t *testing.T) {
	uow := newFakeUoW()
	mug := seedProduct(t, uow.tx.products, "MUG-01", 1000, 5)
	seedCartLine(uow.tx.carts, mug, 1)
	delete(uow.tx.products.byID, mug.ID())

	uc := commands.NewCheckoutUseCase(uow, clock.NewMockClock(checkoutNow))
	_, err := uc.Checkout(context.Background(), uuid.New(), commands.CheckoutRequest{ShippingAddress: "1 Main St"})

	assert.ErrorIs(t, err, commands.ErrProductUnavailable)
}
