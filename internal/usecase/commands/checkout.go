package commands

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"ecommerce-api/internal/domain/coupon"
	"ecommerce-api/internal/domain/order"
	"ecommerce-api/internal/domain/product"
	"ecommerce-api/internal/infra"
	"ecommerce-api/internal/pkg/clock"
	"ecommerce-api/internal/pkg/errs"
	"ecommerce-api/internal/usecase/shared"
)

var (
	ErrEmptyCart          = errs.New("cart is empty")
	ErrProductUnavailable = errs.New("product is no longer available")
	ErrOutOfStock         = errs.New("product is out of stock")
	ErrInsufficientStock  = errs.New("insufficient stock for requested quantity")
	ErrCouponUsageLimit   = errs.New("coupon usage limit reached")
	ErrCouponPerUserLimit = errs.New("coupon per-user limit reached")
)

type CheckoutRequest struct {
	ShippingAddress string
	CouponCode      *string
}

type CheckoutResult struct {
	OrderID       uuid.UUID
	TotalCents    int64
	SubtotalCents int64
	DiscountCents int64
	CouponCode    *string
}

type CheckoutCommands interface {
	Checkout(ctx context.Context, userID uuid.UUID, req CheckoutRequest) (*CheckoutResult, error)
}

type checkoutUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCheckoutUseCase(uow shared.UnitOfWork, clk clock.Clock) CheckoutCommands {
	return &checkoutUseCaseImpl{uow: uow, clock: clk}
}

// Checkout turns the user's cart into a paid order in a single transaction:
// price the cart, optionally apply a coupon, move stock to sold under row
// locks, snapshot the lines, and clear the cart. A coupon code that does not
// resolve to a redeemable coupon is ignored; a redeemable coupon whose usage
// caps are exhausted aborts the checkout.
func (uc *checkoutUseCaseImpl) Checkout(ctx context.Context, userID uuid.UUID, req CheckoutRequest) (*CheckoutResult, error) {
	var result *CheckoutResult

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		lines, err := tx.Carts().LinesWithProducts(ctx, userID)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return ErrEmptyCart
		}

		var subtotal int64
		orderLines := make([]order.Line, 0, len(lines))
		for _, l := range lines {
			subtotal += int64(l.Quantity) * l.UnitPriceCents
			orderLines = append(orderLines, order.Line{
				ProductID:      l.ProductID,
				ProductName:    l.ProductName,
				Quantity:       l.Quantity,
				UnitPriceCents: l.UnitPriceCents,
			})
		}

		total := subtotal
		var applied *coupon.Coupon
		if req.CouponCode != nil {
			applied, err = uc.resolveCoupon(ctx, tx, userID, *req.CouponCode)
			if err != nil {
				return err
			}
			if applied != nil {
				total = applied.ApplyDiscount(subtotal)
			}
		}

		for _, l := range lines {
			p, err := tx.Products().FindByIDForUpdate(ctx, l.ProductID)
			if err != nil {
				if infra.IsKind(err, infra.KindNotFound) {
					return errs.Mark(err, ErrProductUnavailable)
				}
				return err
			}
			if err := p.Sell(l.Quantity); err != nil {
				switch {
				case errors.Is(err, product.ErrOutOfStock):
					return errs.Mark(err, ErrOutOfStock)
				case errors.Is(err, product.ErrInsufficientStock):
					return errs.Mark(err, ErrInsufficientStock)
				default:
					return err
				}
			}
			if err := tx.Products().SaveStock(ctx, p); err != nil {
				return err
			}
		}

		var appliedCode *string
		if applied != nil {
			code := applied.Code().String()
			appliedCode = &code
		}

		o, err := order.NewPaidOrder(userID, req.ShippingAddress, total, appliedCode, orderLines)
		if err != nil {
			return err
		}
		orderID, err := tx.Orders().Create(ctx, o)
		if err != nil {
			return err
		}

		if applied != nil {
			if err := tx.Coupons().RecordRedemption(ctx, applied.ID(), userID); err != nil {
				return err
			}
		}

		if err := tx.Carts().Clear(ctx, userID); err != nil {
			return err
		}

		result = &CheckoutResult{
			OrderID:       orderID,
			TotalCents:    total,
			SubtotalCents: subtotal,
			DiscountCents: subtotal - total,
			CouponCode:    appliedCode,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// resolveCoupon returns the coupon to apply, or nil when the code should be
// silently ignored (malformed, unknown, inactive or expired). Exhausted usage
// caps are the one condition that fails the whole checkout.
func (uc *checkoutUseCaseImpl) resolveCoupon(ctx context.Context, tx shared.Tx, userID uuid.UUID, rawCode string) (*coupon.Coupon, error) {
	code, err := coupon.NewCode(rawCode)
	if err != nil {
		return nil, nil
	}

	c, err := tx.Coupons().FindByCodeForUpdate(ctx, code.String())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if !c.IsRedeemableAt(uc.clock.Now()) {
		return nil, nil
	}

	userUsed, err := tx.Coupons().UserRedemptions(ctx, c.ID(), userID)
	if err != nil {
		return nil, err
	}
	if err := c.ValidateRedemption(userUsed); err != nil {
		switch {
		case errors.Is(err, coupon.ErrUsageLimitReached):
			return nil, errs.Mark(err, ErrCouponUsageLimit)
		case errors.Is(err, coupon.ErrPerUserLimitReached):
			return nil, errs.Mark(err, ErrCouponPerUserLimit)
		default:
			return nil, err
		}
	}
	return c, nil
}
