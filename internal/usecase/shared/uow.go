package shared

import (
	"context"
	"time"

	"ecommerce-api/internal/domain/cart"
	"ecommerce-api/internal/domain/coupon"
	"ecommerce-api/internal/domain/order"
	"ecommerce-api/internal/domain/product"
	"ecommerce-api/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
}

type Tx interface {
	Products() ProductRepository
	Carts() CartRepository
	Coupons() CouponRepository
	Orders() OrderRepository
	DB() db.DBTX
}

type ProductRepository interface {
	Create(ctx context.Context, p *product.Product) error
	Update(ctx context.Context, p *product.Product) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*product.Product, error)
	// FindByIDForUpdate locks the row until the surrounding transaction ends.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*product.Product, error)
	CodeExists(ctx context.Context, code string, excludeID *uuid.UUID) (bool, error)
	// SaveStock persists the stock/sold counters after domain arithmetic.
	SaveStock(ctx context.Context, p *product.Product) error
}

type CartRepository interface {
	LinesWithProducts(ctx context.Context, userID uuid.UUID) ([]CartLineSnapshot, error)
	Upsert(ctx context.Context, line *cart.Line) error
	Remove(ctx context.Context, userID, lineID uuid.UUID) error
	Clear(ctx context.Context, userID uuid.UUID) error
}

type CouponRepository interface {
	Create(ctx context.Context, c *coupon.Coupon) error
	Update(ctx context.Context, c *coupon.Coupon) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*coupon.Coupon, error)
	FindByCode(ctx context.Context, code string) (*coupon.Coupon, error)
	// FindByCodeForUpdate locks the coupon row while checkout bumps counters.
	FindByCodeForUpdate(ctx context.Context, code string) (*coupon.Coupon, error)
	CodeExists(ctx context.Context, code string, excludeID *uuid.UUID) (bool, error)
	UserRedemptions(ctx context.Context, couponID, userID uuid.UUID) (int32, error)
	// RecordRedemption bumps the global counter and the per-user row together.
	RecordRedemption(ctx context.Context, couponID, userID uuid.UUID) error
	DeactivateExpired(ctx context.Context, now time.Time) (int64, error)
}

type OrderRepository interface {
	Create(ctx context.Context, o *order.Order) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error)
	FindByIDForUser(ctx context.Context, id, userID uuid.UUID) (*order.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status order.Status) error
}

// CartLineSnapshot joins a cart line with the product fields checkout needs.
type CartLineSnapshot struct {
	LineID         uuid.UUID
	ProductID      uuid.UUID
	ProductName    string
	Quantity       int32
	UnitPriceCents int64
	StockQty       int32
}
