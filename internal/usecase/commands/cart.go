package commands

import (
	"context"

	"github.com/google/uuid"

	"ecommerce-api/internal/domain/cart"
	"ecommerce-api/internal/infra"
	"ecommerce-api/internal/pkg/errs"
	"ecommerce-api/internal/usecase/shared"
)

var (
	ErrCartProductNotFound = errs.New("product not found")
	ErrCartLineNotFound    = errs.New("cart line not found")
	ErrCartOutOfStock      = errs.New("product is out of stock")
)

type AddCartLineRequest struct {
	ProductID uuid.UUID
	Quantity  int32
}

type CartCommands interface {
	// AddOrUpdate sets the quantity for a product, clamped to available stock.
	AddOrUpdate(ctx context.Context, userID uuid.UUID, req AddCartLineRequest) error
	Remove(ctx context.Context, userID, lineID uuid.UUID) error
	Clear(ctx context.Context, userID uuid.UUID) error
}

type cartUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewCartUseCase(uow shared.UnitOfWork) CartCommands {
	return &cartUseCaseImpl{uow: uow}
}

func (uc *cartUseCaseImpl) AddOrUpdate(ctx context.Context, userID uuid.UUID, req AddCartLineRequest) error {
	line, err := cart.NewLine(userID, req.ProductID, req.Quantity)
	if err != nil {
		return err
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := tx.Products().FindByID(ctx, req.ProductID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrCartProductNotFound)
			}
			return err
		}

		if p.StockQty() == 0 {
			return ErrCartOutOfStock
		}
		line.ClampToStock(p.StockQty())
		return tx.Carts().Upsert(ctx, line)
	})
}

func (uc *cartUseCaseImpl) Remove(ctx context.Context, userID, lineID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Carts().Remove(ctx, userID, lineID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrCartLineNotFound)
			}
			return err
		}
		return nil
	})
}

func (uc *cartUseCaseImpl) Clear(ctx context.Context, userID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Carts().Clear(ctx, userID)
	})
}
