package components

import (
	"go.uber.org/fx"

	"ecommerce-api/internal/handler"
	"ecommerce-api/internal/handler/api"
	"ecommerce-api/internal/handler/middleware"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewProductHandler,
		api.NewCategoryHandler,
		api.NewCartHandler,
		api.NewCouponHandler,
		api.NewOrderHandler,
		api.NewAddressHandler,
		api.NewFavoriteHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	auth *api.AuthHandler,
	product *api.ProductHandler,
	category *api.CategoryHandler,
	cart *api.CartHandler,
	coupon *api.CouponHandler,
	order *api.OrderHandler,
	address *api.AddressHandler,
	favorite *api.FavoriteHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:     auth,
		Product:  product,
		Category: category,
		Cart:     cart,
		Coupon:   coupon,
		Order:    order,
		Address:  address,
		Favorite: favorite,
	}
}
