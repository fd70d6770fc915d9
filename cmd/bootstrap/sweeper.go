package bootstrap

import (
	"context"

	"go.uber.org/fx"

	"ecommerce-api/internal/pkg/clock"
	"ecommerce-api/internal/pkg/config"
	"ecommerce-api/internal/usecase/shared"
	"ecommerce-api/internal/worker"
)

var SweeperModule = fx.Module("sweeper",
	fx.Provide(
		NewCouponSweeper,
	),
	fx.Invoke(startCouponSweeper),
)

func NewCouponSweeper(cfg config.Config, uow shared.UnitOfWork, clk clock.Clock) *worker.CouponSweeper {
	return worker.NewCouponSweeper(uow, clk, cfg.Sweep.Interval)
}

func startCouponSweeper(lc fx.Lifecycle, sweeper *worker.CouponSweeper) {
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go sweeper.Run(ctx)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return nil
		},
	})
}
