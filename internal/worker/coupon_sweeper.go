package worker

import (
	"context"
	"log/slog"
	"time"

	"ecommerce-api/internal/pkg/clock"
	"ecommerce-api/internal/usecase/shared"
)

// CouponSweeper periodically deactivates coupons whose expiry has passed so
// that listings and previews stop offering them between redemptions.
type CouponSweeper struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	interval time.Duration
}

func NewCouponSweeper(uow shared.UnitOfWork, clk clock.Clock, interval time.Duration) *CouponSweeper {
	return &CouponSweeper{uow: uow, clock: clk, interval: interval}
}

// Run blocks until ctx is cancelled, sweeping once per interval.
func (s *CouponSweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	slog.Info("coupon sweeper started", "interval", s.interval.String())
	for {
		select {
		case <-ctx.Done():
			slog.Info("coupon sweeper stopped")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *CouponSweeper) sweep(ctx context.Context) {
	var deactivated int64
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Coupons().DeactivateExpired(ctx, s.clock.Now())
		if err != nil {
			return err
		}
		deactivated = n
		return nil
	})
	if err != nil {
		slog.Error("coupon sweep failed", "error", err.Error())
		return
	}
	if deactivated > 0 {
		slog.Info("expired coupons deactivated", "count", deactivated)
	}
}
