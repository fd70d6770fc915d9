package repository

import (
	"context"
	"time"

	"ecommerce-api/internal/domain/coupon"
	"ecommerce-api/internal/infra"
	"ecommerce-api/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type CouponRepository struct {
	db db.DBTX
}

func NewCouponRepository(db db.DBTX) *CouponRepository {
	return &CouponRepository{db: db}
}

const couponColumns = `id, code, discount_cents, expires_at, is_active, max_total, max_per_user, total_used, created_at, updated_at`

func (r *CouponRepository) Create(ctx context.Context, c *coupon.Coupon) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO coupons (id, code, discount_cents, expires_at, is_active, max_total, max_per_user, total_used)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		c.ID(), c.Code().String(), c.DiscountCents(), c.ExpiresAt(), c.IsActive(), c.MaxTotal(), c.MaxPerUser(), c.TotalUsed(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create coupon", err)
	}
	return nil
}

func (r *CouponRepository) Update(ctx context.Context, c *coupon.Coupon) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE coupons
		SET code = $2, discount_cents = $3, expires_at = $4, is_active = $5,
		    max_total = $6, max_per_user = $7, updated_at = now()
		WHERE id = $1 AND NOT is_deleted`,
		c.ID(), c.Code().String(), c.DiscountCents(), c.ExpiresAt(), c.IsActive(), c.MaxTotal(), c.MaxPerUser(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update coupon", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("coupon not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *CouponRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE coupons SET is_deleted = true, updated_at = now()
		WHERE id = $1 AND NOT is_deleted`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete coupon", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("coupon not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *CouponRepository) FindByID(ctx context.Context, id uuid.UUID) (*coupon.Coupon, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+couponColumns+`
		FROM coupons WHERE id = $1 AND NOT is_deleted`, id)
	return scanCoupon(row)
}

func (r *CouponRepository) FindByCode(ctx context.Context, code string) (*coupon.Coupon, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+couponColumns+`
		FROM coupons WHERE code = $1 AND NOT is_deleted`, code)
	return scanCoupon(row)
}

func (r *CouponRepository) FindByCodeForUpdate(ctx context.Context, code string) (*coupon.Coupon, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+couponColumns+`
		FROM coupons WHERE code = $1 AND NOT is_deleted
		FOR UPDATE`, code)
	return scanCoupon(row)
}

func (r *CouponRepository) CodeExists(ctx context.Context, code string, excludeID *uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM coupons
			WHERE code = $1 AND NOT is_deleted AND ($2::uuid IS NULL OR id <> $2)
		)`, code, excludeID).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check coupon code", err)
	}
	return exists, nil
}

func (r *CouponRepository) UserRedemptions(ctx context.Context, couponID, userID uuid.UUID) (int32, error) {
	var count int32
	err := r.db.QueryRow(ctx, `
		SELECT used_count FROM coupon_redemptions
		WHERE coupon_id = $1 AND user_id = $2`, couponID, userID).Scan(&count)
	if err != nil {
		if isNoRows(err) {
			return 0, nil
		}
		return 0, infra.WrapRepoErr("failed to read coupon redemptions", err)
	}
	return count, nil
}

func (r *CouponRepository) RecordRedemption(ctx context.Context, couponID, userID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `
		UPDATE coupons SET total_used = total_used + 1, updated_at = now()
		WHERE id = $1`, couponID)
	if err != nil {
		return infra.WrapRepoErr("failed to bump coupon usage", err)
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO coupon_redemptions (coupon_id, user_id, used_count)
		VALUES ($1, $2, 1)
		ON CONFLICT (coupon_id, user_id)
		DO UPDATE SET used_count = coupon_redemptions.used_count + 1, updated_at = now()`,
		couponID, userID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to record coupon redemption", err)
	}
	return nil
}

func (r *CouponRepository) DeactivateExpired(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE coupons SET is_active = false, updated_at = now()
		WHERE is_active AND NOT is_deleted AND expires_at <= $1`, now)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to deactivate expired coupons", err)
	}
	return tag.RowsAffected(), nil
}

func scanCoupon(row pgx.Row) (*coupon.Coupon, error) {
	var (
		id                             uuid.UUID
		code                           string
		discountCents                  int64
		expiresAt, createdAt, updAt    time.Time
		active                         bool
		maxTotal, maxPerUser, totalUsed int32
	)
	err := row.Scan(&id, &code, &discountCents, &expiresAt, &active, &maxTotal, &maxPerUser, &totalUsed, &createdAt, &updAt)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan coupon", err)
	}

	return coupon.ReconstructCoupon(
		id, coupon.Code(code), discountCents, expiresAt, active,
		maxTotal, maxPerUser, totalUsed, createdAt, updAt,
	), nil
}
