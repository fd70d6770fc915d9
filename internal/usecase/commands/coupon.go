package commands

import (
	"context"
	"time"

	"github.com/google/uuid"

	"ecommerce-api/internal/domain/coupon"
	"ecommerce-api/internal/infra"
	"ecommerce-api/internal/pkg/clock"
	"ecommerce-api/internal/pkg/errs"
	"ecommerce-api/internal/usecase/shared"
)

var (
	ErrDuplicateCouponCode = errs.New("coupon code already in use")
	ErrCouponNotFoundWrite = errs.New("coupon not found")
)

type CreateCouponRequest struct {
	Code          string
	DiscountCents int64
	ExpiresAt     time.Time
	MaxTotal      int32
	MaxPerUser    int32
}

type UpdateCouponRequest struct {
	DiscountCents int64
	ExpiresAt     time.Time
	Active        bool
	MaxTotal      int32
	MaxPerUser    int32
}

type CouponCommands interface {
	Create(ctx context.Context, req CreateCouponRequest) (uuid.UUID, error)
	Update(ctx context.Context, couponID uuid.UUID, req UpdateCouponRequest) error
	Delete(ctx context.Context, couponID uuid.UUID) error
}

type couponUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCouponUseCase(uow shared.UnitOfWork, clk clock.Clock) CouponCommands {
	return &couponUseCaseImpl{uow: uow, clock: clk}
}

func (uc *couponUseCaseImpl) Create(ctx context.Context, req CreateCouponRequest) (uuid.UUID, error) {
	code, err := coupon.NewCode(req.Code)
	if err != nil {
		return uuid.Nil, err
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		exists, err := tx.Coupons().CodeExists(ctx, code.String(), nil)
		if err != nil {
			return err
		}
		if exists {
			return ErrDuplicateCouponCode
		}

		c, err := coupon.NewCoupon(code, req.DiscountCents, req.ExpiresAt, req.MaxTotal, req.MaxPerUser, uc.clock.Now())
		if err != nil {
			return err
		}
		if err := tx.Coupons().Create(ctx, c); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrDuplicateCouponCode)
			}
			return err
		}
		createdID = c.ID()
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return createdID, nil
}

func (uc *couponUseCaseImpl) Update(ctx context.Context, couponID uuid.UUID, req UpdateCouponRequest) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, err := tx.Coupons().FindByID(ctx, couponID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrCouponNotFoundWrite)
			}
			return err
		}

		if err := c.UpdateDetails(req.DiscountCents, req.ExpiresAt, req.Active, req.MaxTotal, req.MaxPerUser, uc.clock.Now()); err != nil {
			return err
		}
		return tx.Coupons().Update(ctx, c)
	})
}

func (uc *couponUseCaseImpl) Delete(ctx context.Context, couponID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Coupons().SoftDelete(ctx, couponID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrCouponNotFoundWrite)
			}
			return err
		}
		return nil
	})
}
