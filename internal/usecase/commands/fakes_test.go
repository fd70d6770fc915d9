//go:build unit

package commands_test

import (
	"context"
	"time"

	"github.com/google/uuid"

	"ecommerce-api/internal/domain/cart"
	"ecommerce-api/internal/domain/coupon"
	"ecommerce-api/internal/domain/order"
	"ecommerce-api/internal/domain/product"
	"ecommerce-api/internal/infra"
	"ecommerce-api/internal/infra/db"
	"ecommerce-api/internal/pkg/errs"
	"ecommerce-api/internal/usecase/shared"
)

func notFoundErr() error {
	return infra.WrapRepoErr("not found", errs.New("no rows"), infra.KindNotFound)
}

// fakeUoW runs the callback directly against an in-memory Tx, no database.
type fakeUoW struct {
	tx *fakeTx
}

func newFakeUoW() *fakeUoW {
	return &fakeUoW{tx: &fakeTx{
		products: &fakeProductRepo{byID: map[uuid.UUID]*product.Product{}},
		carts:    &fakeCartRepo{},
		coupons:  &fakeCouponRepo{byCode: map[string]*coupon.Coupon{}, userUsed: map[uuid.UUID]int32{}},
		orders:   &fakeOrderRepo{byID: map[uuid.UUID]*order.Order{}},
	}}
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, u.tx)
}

func (u *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error {
	return fn(ctx, nil)
}

type fakeTx struct {
	products *fakeProductRepo
	carts    *fakeCartRepo
	coupons  *fakeCouponRepo
	orders   *fakeOrderRepo
}

func (t *fakeTx) Products() shared.ProductRepository { return t.products }
func (t *fakeTx) Carts() shared.CartRepository       { return t.carts }
func (t *fakeTx) Coupons() shared.CouponRepository   { return t.coupons }
func (t *fakeTx) Orders() shared.OrderRepository     { return t.orders }
func (t *fakeTx) DB() db.DBTX                        { return nil }

type fakeProductRepo struct {
	byID       map[uuid.UUID]*product.Product
	stockSaves []uuid.UUID
}

func (r *fakeProductRepo) Create(_ context.Context, p *product.Product) error {
	r.byID[p.ID()] = p
	return nil
}

func (r *fakeProductRepo) Update(_ context.Context, p *product.Product) error {
	r.byID[p.ID()] = p
	return nil
}

func (r *fakeProductRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	delete(r.byID, id)
	return nil
}

func (r *fakeProductRepo) FindByID(ctx context.Context, id uuid.UUID) (*product.Product, error) {
	return r.FindByIDForUpdate(ctx, id)
}

func (r *fakeProductRepo) FindByIDForUpdate(_ context.Context, id uuid.UUID) (*product.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, notFoundErr()
	}
	return p, nil
}

func (r *fakeProductRepo) CodeExists(_ context.Context, _ string, _ *uuid.UUID) (bool, error) {
	return false, nil
}

func (r *fakeProductRepo) SaveStock(_ context.Context, p *product.Product) error {
	r.stockSaves = append(r.stockSaves, p.ID())
	return nil
}

type fakeCartRepo struct {
	lines   []shared.CartLineSnapshot
	cleared bool
}

func (r *fakeCartRepo) LinesWithProducts(_ context.Context, _ uuid.UUID) ([]shared.CartLineSnapshot, error) {
	return r.lines, nil
}

func (r *fakeCartRepo) Upsert(_ context.Context, _ *cart.Line) error { return nil }

func (r *fakeCartRepo) Remove(_ context.Context, _, _ uuid.UUID) error { return nil }

func (r *fakeCartRepo) Clear(_ context.Context, _ uuid.UUID) error {
	r.cleared = true
	return nil
}

type redemption struct {
	couponID uuid.UUID
	userID   uuid.UUID
}

type fakeCouponRepo struct {
	byCode      map[string]*coupon.Coupon
	userUsed    map[uuid.UUID]int32
	redemptions []redemption
}

func (r *fakeCouponRepo) Create(_ context.Context, c *coupon.Coupon) error {
	r.byCode[c.Code().String()] = c
	return nil
}

func (r *fakeCouponRepo) Update(_ context.Context, c *coupon.Coupon) error {
	r.byCode[c.Code().String()] = c
	return nil
}

func (r *fakeCouponRepo) SoftDelete(_ context.Context, _ uuid.UUID) error { return nil }

func (r *fakeCouponRepo) FindByID(_ context.Context, id uuid.UUID) (*coupon.Coupon, error) {
	for _, c := range r.byCode {
		if c.ID() == id {
			return c, nil
		}
	}
	return nil, notFoundErr()
}

func (r *fakeCouponRepo) FindByCode(ctx context.Context, code string) (*coupon.Coupon, error) {
	return r.FindByCodeForUpdate(ctx, code)
}

func (r *fakeCouponRepo) FindByCodeForUpdate(_ context.Context, code string) (*coupon.Coupon, error) {
	c, ok := r.byCode[code]
	if !ok {
		return nil, notFoundErr()
	}
	return c, nil
}

func (r *fakeCouponRepo) CodeExists(_ context.Context, code string, _ *uuid.UUID) (bool, error) {
	_, ok := r.byCode[code]
	return ok, nil
}

func (r *fakeCouponRepo) UserRedemptions(_ context.Context, _ uuid.UUID, userID uuid.UUID) (int32, error) {
	return r.userUsed[userID], nil
}

func (r *fakeCouponRepo) RecordRedemption(_ context.Context, couponID, userID uuid.UUID) error {
	r.redemptions = append(r.redemptions, redemption{couponID: couponID, userID: userID})
	return nil
}

func (r *fakeCouponRepo) DeactivateExpired(_ context.Context, _ time.Time) (int64, error) {
	return 0, nil
}

type fakeOrderRepo struct {
	byID    map[uuid.UUID]*order.Order
	created []*order.Order
	updates []order.Status
}

func (r *fakeOrderRepo) Create(_ context.Context, o *order.Order) (uuid.UUID, error) {
	id := uuid.New()
	r.byID[id] = o
	r.created = append(r.created, o)
	return id, nil
}

func (r *fakeOrderRepo) FindByID(_ context.Context, id uuid.UUID) (*order.Order, error) {
	o, ok := r.byID[id]
	if !ok {
		return nil, notFoundErr()
	}
	return o, nil
}

func (r *fakeOrderRepo) FindByIDForUser(_ context.Context, id, userID uuid.UUID) (*order.Order, error) {
	o, ok := r.byID[id]
	if !ok || o.UserID() != userID {
		return nil, notFoundErr()
	}
	return o, nil
}

func (r *fakeOrderRepo) UpdateStatus(_ context.Context, _ uuid.UUID, status order.Status) error {
	r.updates = append(r.updates, status)
	return nil
}
