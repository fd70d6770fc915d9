package commands

import (
	"context"

	"github.com/google/uuid"

	"ecommerce-api/internal/domain/order"
	"ecommerce-api/internal/infra"
	"ecommerce-api/internal/pkg/errs"
	"ecommerce-api/internal/usecase/shared"
)

var ErrOrderNotFoundWrite = errs.New("order not found")

type OrderCommands interface {
	// UpdateStatus applies a staff-side transition and restocks on cancel.
	UpdateStatus(ctx context.Context, orderID uuid.UUID, status string) error
	// Cancel applies the customer-side cancellation of their own order.
	Cancel(ctx context.Context, orderID, userID uuid.UUID) error
}

type orderUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewOrderUseCase(uow shared.UnitOfWork) OrderCommands {
	return &orderUseCaseImpl{uow: uow}
}

func (uc *orderUseCaseImpl) UpdateStatus(ctx context.Context, orderID uuid.UUID, status string) error {
	next, err := order.NewStatus(status)
	if err != nil {
		return err
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, err := tx.Orders().FindByID(ctx, orderID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrOrderNotFoundWrite)
			}
			return err
		}

		restock, err := o.UpdateStatus(next)
		if err != nil {
			return err
		}
		if restock {
			if err := restockLines(ctx, tx, o.Lines()); err != nil {
				return err
			}
		}
		return tx.Orders().UpdateStatus(ctx, o.ID(), o.Status())
	})
}

func (uc *orderUseCaseImpl) Cancel(ctx context.Context, orderID, userID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, err := tx.Orders().FindByIDForUser(ctx, orderID, userID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrOrderNotFoundWrite)
			}
			return err
		}

		if err := o.CancelByCustomer(); err != nil {
			return err
		}
		if err := restockLines(ctx, tx, o.Lines()); err != nil {
			return err
		}
		return tx.Orders().UpdateStatus(ctx, o.ID(), o.Status())
	})
}

// restockLines returns every line's quantity to stock. Products deleted since
// the order was placed are skipped.
func restockLines(ctx context.Context, tx shared.Tx, lines []order.Line) error {
	for _, l := range lines {
		p, err := tx.Products().FindByIDForUpdate(ctx, l.ProductID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				continue
			}
			return err
		}
		if err := p.Restock(l.Quantity); err != nil {
			return err
		}
		if err := tx.Products().SaveStock(ctx, p); err != nil {
			return err
		}
	}
	return nil
}
