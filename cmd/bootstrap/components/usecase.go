package components

import (
	"go.uber.org/fx"

	"ecommerce-api/internal/invoice"
	"ecommerce-api/internal/pkg/clock"
	"ecommerce-api/internal/usecase"
	"ecommerce-api/internal/usecase/commands"
	"ecommerce-api/internal/usecase/queries"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	invoice.NewGenerator,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewProductQueries,
		queries.NewCategoryQueries,
		queries.NewCartQueries,
		queries.NewCouponQueries,
		queries.NewOrderQueries,
		queries.NewAddressQueries,
		queries.NewFavoriteQueries,
		queries.NewUserQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthUseCase,
		commands.NewProductUseCase,
		commands.NewCategoryUseCase,
		commands.NewCartUseCase,
		commands.NewCouponUseCase,
		commands.NewCheckoutUseCase,
		commands.NewOrderUseCase,
		commands.NewAddressUseCase,
		commands.NewFavoriteUseCase,
	),
)
