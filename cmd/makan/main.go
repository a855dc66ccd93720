package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"makan/config"
	"makan/internal/delivery"
	"makan/internal/delivery/http"
	"makan/internal/delivery/http/middleware"
	"makan/internal/delivery/http/router/handler"
	"makan/internal/domain/points"
	"makan/internal/infra/auth"
	"makan/internal/infra/catalog"
	logs "makan/internal/infra/log"
	"makan/internal/infra/payment"
	"makan/internal/infra/persistence/postgres"
	"makan/internal/infra/pubsub"
	"makan/internal/usecase/impl"

	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewPointBalanceRepository,
			postgres.NewOrderRepository,
			postgres.NewPaymentRepository,
			postgres.NewRefundRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		pubsub.Module,
		fx.Provide(
			auth.NewJWTService,
			catalog.NewHTTPCatalogService,
			newConverter,
			fx.Annotate(
				payment.NewGrabPayRail,
				fx.ResultTags(`group:"payment_rails"`),
			),
			fx.Annotate(
				payment.NewTouchNGoRail,
				fx.ResultTags(`group:"payment_rails"`),
			),
			fx.Annotate(
				payment.NewBankTransferRail,
				fx.ResultTags(`group:"payment_rails"`),
			),
		),
	)
}

// newConverter builds the points-to-currency converter from config. The rate
// comes into force at process start.
func newConverter(cfg *config.Config) (*points.Converter, error) {
	rate := points.DefaultRate
	prefix := "RM"
	if cfg.Rewards != nil {
		parsed, err := decimal.NewFromString(cfg.Rewards.PointsConversionRate)
		if err != nil {
			return nil, fmt.Errorf("invalid points conversion rate: %w", err)
		}
		rate = parsed
		prefix = cfg.Rewards.CurrencyPrefix
	}

	return points.NewConverter(rate, prefix, time.Now())
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewRewardsService,
			impl.NewCheckoutService,
			impl.NewRefundService,
			impl.NewAdminService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewRewardsHandler,
			handler.NewOrderHandler,
			handler.NewAdminHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
