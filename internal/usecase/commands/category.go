package commands

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"ecommerce-api/internal/infra"
	"ecommerce-api/internal/pkg/errs"
)

var (
	ErrEmptyCategoryName     = errs.New("category name cannot be empty")
	ErrDuplicateCategoryName = errs.New("category name already in use")
	ErrCategoryNotFoundWrite = errs.New("category not found")
)

type CategoryCommands interface {
	Create(ctx context.Context, name string) (uuid.UUID, error)
	Update(ctx context.Context, categoryID uuid.UUID, name string) error
	Delete(ctx context.Context, categoryID uuid.UUID) error
}

type categoryUseCaseImpl struct {
	repo CategoryRepository
}

func NewCategoryUseCase(repo CategoryRepository) CategoryCommands {
	return &categoryUseCaseImpl{repo: repo}
}

func (uc *categoryUseCaseImpl) Create(ctx context.Context, name string) (uuid.UUID, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return uuid.Nil, ErrEmptyCategoryName
	}

	exists, err := uc.repo.NameExists(ctx, name, nil)
	if err != nil {
		return uuid.Nil, err
	}
	if exists {
		return uuid.Nil, ErrDuplicateCategoryName
	}

	created, err := uc.repo.Create(ctx, name)
	if err != nil {
		return uuid.Nil, err
	}
	return created.ID, nil
}

func (uc *categoryUseCaseImpl) Update(ctx context.Context, categoryID uuid.UUID, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyCategoryName
	}

	exists, err := uc.repo.NameExists(ctx, name, &categoryID)
	if err != nil {
		return err
	}
	if exists {
		return ErrDuplicateCategoryName
	}

	if err := uc.repo.Update(ctx, categoryID, name); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrCategoryNotFoundWrite)
		}
		return err
	}
	return nil
}

func (uc *categoryUseCaseImpl) Delete(ctx context.Context, categoryID uuid.UUID) error {
	if err := uc.repo.SoftDelete(ctx, categoryID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrCategoryNotFoundWrite)
		}
		return err
	}
	return nil
}
