package components

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"

	"ecommerce-api/internal/infra/db"
	"ecommerce-api/internal/infra/repository"
	"ecommerce-api/internal/infra/uow"
	"ecommerce-api/internal/usecase/commands"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		// UnitOfWork
		uow.NewPostgresUoW,
		// Repositories outside the unit of work
		fx.Annotate(
			repository.NewCategoryRepository,
			fx.As(new(commands.CategoryRepository)),
		),
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(commands.UserRepository)),
		),
		fx.Annotate(
			repository.NewAddressRepository,
			fx.As(new(commands.AddressRepository)),
		),
		fx.Annotate(
			repository.NewFavoriteRepository,
			fx.As(new(commands.FavoriteRepository)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
