package commands

import (
	"context"

	"github.com/google/uuid"

	"ecommerce-api/internal/infra"
	"ecommerce-api/internal/pkg/errs"
)

var (
	ErrFavoriteProductMissing = errs.New("product not found")
	ErrFavoriteNotFound       = errs.New("favorite not found")
)

type FavoriteCommands interface {
	Add(ctx context.Context, userID, productID uuid.UUID) error
	Remove(ctx context.Context, userID, productID uuid.UUID) error
}

type favoriteUseCaseImpl struct {
	repo FavoriteRepository
}

func NewFavoriteUseCase(repo FavoriteRepository) FavoriteCommands {
	return &favoriteUseCaseImpl{repo: repo}
}

func (uc *favoriteUseCaseImpl) Add(ctx context.Context, userID, productID uuid.UUID) error {
	if err := uc.repo.Add(ctx, userID, productID); err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return errs.Mark(err, ErrFavoriteProductMissing)
		}
		return err
	}
	return nil
}

func (uc *favoriteUseCaseImpl) Remove(ctx context.Context, userID, productID uuid.UUID) error {
	if err := uc.repo.Remove(ctx, userID, productID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrFavoriteNotFound)
		}
		return err
	}
	return nil
}
