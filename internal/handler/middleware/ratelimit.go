package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"ecommerce-api/internal/handler/httperr"
	"ecommerce-api/internal/pkg/config"
	"ecommerce-api/internal/pkg/errs"
)

// NewRateLimitMiddleware applies the global fixed-window limit keyed by
// client IP.
func NewRateLimitMiddleware(cfg config.RateLimitConfig) gin.HandlerFunc {
	return newLimiterMiddleware(limiter.Rate{Period: cfg.Window, Limit: cfg.Requests})
}

// NewAuthRateLimitMiddleware is the stricter window for the credential
// endpoints (register/login).
func NewAuthRateLimitMiddleware(cfg config.RateLimitConfig) gin.HandlerFunc {
	return newLimiterMiddleware(limiter.Rate{Period: cfg.AuthWindow, Limit: cfg.AuthRequests})
}

func newLimiterMiddleware(rate limiter.Rate) gin.HandlerFunc {
	l := limiter.New(memory.NewStore(), rate)
	return mgin.NewMiddleware(l,
		mgin.WithLimitReachedHandler(limitReached),
		mgin.WithErrorHandler(limitError),
	)
}

func limitReached(c *gin.Context) {
	httperr.AbortWithError(c, http.StatusTooManyRequests, errs.New("rate limit exceeded"), "Too many requests")
}

func limitError(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Rate limiter failed")
}
