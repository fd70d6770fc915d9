package commands

import (
	"context"

	"github.com/google/uuid"

	"ecommerce-api/internal/domain/user"
	"ecommerce-api/internal/infra/repository"
)

// Ports for repositories that run outside the unit of work; the concrete
// pgx implementations in internal/infra/repository satisfy them directly.

type CategoryRepository interface {
	Create(ctx context.Context, name string) (*repository.Category, error)
	Update(ctx context.Context, id uuid.UUID, name string) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*repository.Category, error)
	NameExists(ctx context.Context, name string, excludeID *uuid.UUID) (bool, error)
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
}

type AddressRepository interface {
	Create(ctx context.Context, userID uuid.UUID, title, fullText, city string) (*repository.Address, error)
	Update(ctx context.Context, id, userID uuid.UUID, title, fullText, city string) error
	SoftDelete(ctx context.Context, id, userID uuid.UUID) error
}

type FavoriteRepository interface {
	Add(ctx context.Context, userID, productID uuid.UUID) error
	Remove(ctx context.Context, userID, productID uuid.UUID) error
}
