package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"ecommerce-api/internal/handler/api"
	"ecommerce-api/internal/handler/middleware"
	"ecommerce-api/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth     *api.AuthHandler
	Product  *api.ProductHandler
	Category *api.CategoryHandler
	Cart     *api.CartHandler
	Coupon   *api.CouponHandler
	Order    *api.OrderHandler
	Address  *api.AddressHandler
	Favorite *api.FavoriteHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, cfg, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
	engine.Use(middleware.NewRateLimitMiddleware(cfg.Rate))
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers, auth *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		authGroup := apiGroup.Group("/auth")
		{
			// Credential endpoints get a tighter window than the global limit.
			authLimit := middleware.NewAuthRateLimitMiddleware(cfg.Rate)
			addRoutes(authGroup, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register, Mw: []gin.HandlerFunc{authLimit}},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login, Mw: []gin.HandlerFunc{authLimit}},
			})

			authRequired := authGroup.Group("")
			authRequired.Use(auth.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		products := apiGroup.Group("/products")
		{
			addRoutes(products, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Product.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Product.Get},
			})

			admin := products.Group("")
			admin.Use(auth.RequireAuth(), auth.RequireAdmin())
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Product.Create},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Product.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Product.Delete},
			})
		}

		categories := apiGroup.Group("/categories")
		{
			addRoutes(categories, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Category.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Category.Get},
			})

			admin := categories.Group("")
			admin.Use(auth.RequireAuth(), auth.RequireAdmin())
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Category.Create},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Category.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Category.Delete},
			})
		}

		cart := apiGroup.Group("/cart")
		cart.Use(auth.RequireAuth())
		{
			addRoutes(cart, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Cart.Get},
				{Method: http.MethodDelete, Path: "", Handler: h.Cart.Clear},
				{Method: http.MethodPost, Path: "/items", Handler: h.Cart.AddOrUpdate},
				{Method: http.MethodDelete, Path: "/items/:id", Handler: h.Cart.Remove},
			})
		}

		coupons := apiGroup.Group("/coupons")
		coupons.Use(auth.RequireAuth())
		{
			addRoutes(coupons, []route{
				{Method: http.MethodPost, Path: "/apply", Handler: h.Coupon.Apply},
			})

			admin := coupons.Group("")
			admin.Use(auth.RequireAdmin())
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Coupon.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Coupon.Get},
				{Method: http.MethodPost, Path: "", Handler: h.Coupon.Create},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Coupon.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Coupon.Delete},
			})
		}

		orders := apiGroup.Group("/orders")
		orders.Use(auth.RequireAuth())
		{
			addRoutes(orders, []route{
				{Method: http.MethodPost, Path: "/checkout", Handler: h.Order.Checkout},
				{Method: http.MethodGet, Path: "", Handler: h.Order.ListMine},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Order.Get},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Order.Cancel},
				{Method: http.MethodGet, Path: "/:id/invoice", Handler: h.Order.Invoice},
			})
		}

		adminOrders := apiGroup.Group("/admin/orders")
		adminOrders.Use(auth.RequireAuth(), auth.RequireAdmin())
		{
			addRoutes(adminOrders, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Order.ListAll},
				{Method: http.MethodPut, Path: "/:id/status", Handler: h.Order.UpdateStatus},
			})
		}

		addresses := apiGroup.Group("/addresses")
		addresses.Use(auth.RequireAuth())
		{
			addRoutes(addresses, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Address.List},
				{Method: http.MethodPost, Path: "", Handler: h.Address.Create},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Address.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Address.Delete},
			})
		}

		favorites := apiGroup.Group("/favorites")
		favorites.Use(auth.RequireAuth())
		{
			addRoutes(favorites, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Favorite.List},
				{Method: http.MethodPost, Path: "/:productId", Handler: h.Favorite.Add},
				{Method: http.MethodDelete, Path: "/:productId", Handler: h.Favorite.Remove},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
