package commands

import (
	"context"

	"github.com/google/uuid"

	"ecommerce-api/internal/domain/product"
	"ecommerce-api/internal/infra"
	"ecommerce-api/internal/pkg/errs"
	"ecommerce-api/internal/usecase/shared"
)

var (
	ErrDuplicateProductCode = errs.New("product code already in use")
	ErrProductNotFoundWrite = errs.New("product not found")
	ErrCategoryMissing      = errs.New("category does not exist")
)

type ProductRequest struct {
	Code        string
	Name        string
	Description string
	PriceCents  int64
	ImageURL    string
	StockQty    int32
	CategoryID  uuid.UUID
}

type ProductCommands interface {
	Create(ctx context.Context, req ProductRequest) (uuid.UUID, error)
	Update(ctx context.Context, productID uuid.UUID, req ProductRequest) error
	Delete(ctx context.Context, productID uuid.UUID) error
}

type productUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewProductUseCase(uow shared.UnitOfWork) ProductCommands {
	return &productUseCaseImpl{uow: uow}
}

func (uc *productUseCaseImpl) Create(ctx context.Context, req ProductRequest) (uuid.UUID, error) {
	code, err := product.NewCode(req.Code)
	if err != nil {
		return uuid.Nil, err
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		exists, err := tx.Products().CodeExists(ctx, code.String(), nil)
		if err != nil {
			return err
		}
		if exists {
			return ErrDuplicateProductCode
		}

		p, err := product.NewProduct(code, req.Name, req.Description, req.PriceCents, req.ImageURL, req.StockQty, req.CategoryID)
		if err != nil {
			return err
		}
		if err := tx.Products().Create(ctx, p); err != nil {
			switch {
			case infra.IsKind(err, infra.KindDuplicateKey):
				return errs.Mark(err, ErrDuplicateProductCode)
			case infra.IsKind(err, infra.KindForeignKeyViolated):
				return errs.Mark(err, ErrCategoryMissing)
			default:
				return err
			}
		}
		createdID = p.ID()
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return createdID, nil
}

func (uc *productUseCaseImpl) Update(ctx context.Context, productID uuid.UUID, req ProductRequest) error {
	code, err := product.NewCode(req.Code)
	if err != nil {
		return err
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := tx.Products().FindByID(ctx, productID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrProductNotFoundWrite)
			}
			return err
		}

		exists, err := tx.Products().CodeExists(ctx, code.String(), &productID)
		if err != nil {
			return err
		}
		if exists {
			return ErrDuplicateProductCode
		}

		if err := p.UpdateDetails(code, req.Name, req.Description, req.PriceCents, req.ImageURL, req.StockQty, req.CategoryID); err != nil {
			return err
		}
		if err := tx.Products().Update(ctx, p); err != nil {
			switch {
			case infra.IsKind(err, infra.KindNotFound):
				return errs.Mark(err, ErrProductNotFoundWrite)
			case infra.IsKind(err, infra.KindForeignKeyViolated):
				return errs.Mark(err, ErrCategoryMissing)
			default:
				return err
			}
		}
		return nil
	})
}

func (uc *productUseCaseImpl) Delete(ctx context.Context, productID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Products().SoftDelete(ctx, productID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrProductNotFoundWrite)
			}
			return err
		}
		return nil
	})
}
