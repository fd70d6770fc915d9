package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"ecommerce-api/internal/domain/coupon"
	"ecommerce-api/internal/pkg/clock"
	"ecommerce-api/internal/pkg/errs"
)

var (
	ErrCouponNotFound      = errs.New("coupon not found")
	ErrCouponNotRedeemable = errs.New("coupon is inactive or expired")
	ErrCouponUsageLimit    = errs.New("coupon usage limit reached")
	ErrCouponPerUserLimit  = errs.New("coupon per-user limit reached")
)

type CouponView struct {
	ID            uuid.UUID
	Code          string
	DiscountCents int64
	ExpiresAt     time.Time
	Active        bool
	MaxTotal      int32
	MaxPerUser    int32
	TotalUsed     int32
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type AppliedCouponView struct {
	Code          string
	DiscountCents int64
	SubtotalCents int64
	TotalCents    int64
}

type CouponQueries interface {
	List(ctx context.Context) ([]CouponView, error)
	GetByID(ctx context.Context, couponID uuid.UUID) (*CouponView, error)
	// Apply previews a coupon against the user's current cart subtotal
	// without consuming a redemption.
	Apply(ctx context.Context, userID uuid.UUID, code string) (*AppliedCouponView, error)
}

type couponQueriesImpl struct {
	pool  *pgxpool.Pool
	carts CartQueries
	clk   clock.Clock
}

func NewCouponQueries(pool *pgxpool.Pool, carts CartQueries, clk clock.Clock) CouponQueries {
	return &couponQueriesImpl{pool: pool, carts: carts, clk: clk}
}

const couponSelect = `
SELECT id, code, discount_cents, expires_at, is_active, max_total, max_per_user, total_used, created_at, updated_at
FROM coupons
WHERE NOT is_deleted
`

func (q *couponQueriesImpl) List(ctx context.Context) ([]CouponView, error) {
	rows, err := q.pool.Query(ctx, couponSelect+"ORDER BY created_at DESC")
	if err != nil {
		return nil, errs.Wrap(err, "failed to query coupons")
	}
	defer rows.Close()

	views := make([]CouponView, 0)
	for rows.Next() {
		var v CouponView
		if err := rows.Scan(&v.ID, &v.Code, &v.DiscountCents, &v.ExpiresAt, &v.Active, &v.MaxTotal, &v.MaxPerUser, &v.TotalUsed, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, errs.Wrap(err, "failed to scan coupon")
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Wrap(err, "failed to iterate coupons")
	}
	return views, nil
}

func (q *couponQueriesImpl) GetByID(ctx context.Context, couponID uuid.UUID) (*CouponView, error) {
	var v CouponView
	err := q.pool.QueryRow(ctx, couponSelect+"AND id = $1", couponID).
		Scan(&v.ID, &v.Code, &v.DiscountCents, &v.ExpiresAt, &v.Active, &v.MaxTotal, &v.MaxPerUser, &v.TotalUsed, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, errs.Mark(err, ErrCouponNotFound)
		}
		return nil, errs.Wrap(err, "failed to query coupon")
	}
	return &v, nil
}

func (q *couponQueriesImpl) Apply(ctx context.Context, userID uuid.UUID, code string) (*AppliedCouponView, error) {
	normalized, err := coupon.NewCode(code)
	if err != nil {
		return nil, errs.Mark(err, ErrCouponNotFound)
	}

	var v CouponView
	err = q.pool.QueryRow(ctx, couponSelect+"AND code = $1", normalized.String()).
		Scan(&v.ID, &v.Code, &v.DiscountCents, &v.ExpiresAt, &v.Active, &v.MaxTotal, &v.MaxPerUser, &v.TotalUsed, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, errs.Mark(err, ErrCouponNotFound)
		}
		return nil, errs.Wrap(err, "failed to query coupon")
	}

	c := coupon.ReconstructCoupon(v.ID, normalized, v.DiscountCents, v.ExpiresAt, v.Active, v.MaxTotal, v.MaxPerUser, v.TotalUsed, v.CreatedAt, v.UpdatedAt)
	if !c.IsRedeemableAt(q.clk.Now()) {
		return nil, ErrCouponNotRedeemable
	}

	var userUsed int32
	err = q.pool.QueryRow(ctx,
		"SELECT used_count FROM coupon_redemptions WHERE coupon_id = $1 AND user_id = $2",
		c.ID(), userID,
	).Scan(&userUsed)
	if err != nil && !isNoRows(err) {
		return nil, errs.Wrap(err, "failed to query coupon redemptions")
	}
	if err := c.ValidateRedemption(userUsed); err != nil {
		switch err {
		case coupon.ErrUsageLimitReached:
			return nil, errs.Mark(err, ErrCouponUsageLimit)
		case coupon.ErrPerUserLimitReached:
			return nil, errs.Mark(err, ErrCouponPerUserLimit)
		default:
			return nil, errs.Wrap(err, "failed to validate coupon")
		}
	}

	cart, err := q.carts.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &AppliedCouponView{
		Code:          c.Code().String(),
		DiscountCents: c.DiscountCents(),
		SubtotalCents: cart.SubtotalCents,
		TotalCents:    c.ApplyDiscount(cart.SubtotalCents),
	}, nil
}
