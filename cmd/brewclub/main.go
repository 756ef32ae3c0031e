package main

import (
	"context"
	"log/slog"
	"os"

	"brewclub/config"
	"brewclub/internal/delivery"
	"brewclub/internal/delivery/http"
	"brewclub/internal/delivery/http/middleware"
	"brewclub/internal/delivery/http/router/handler"
	"brewclub/internal/domain/catalog"
	"brewclub/internal/infra/archive"
	"brewclub/internal/infra/auth"
	logs "brewclub/internal/infra/log"
	"brewclub/internal/infra/mail"
	"brewclub/internal/infra/persistence/postgres"
	"brewclub/internal/usecase/impl"

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
			postgres.NewUserRepository,
			postgres.NewOrderRepository,
			postgres.NewReceiptRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			mail.NewSMTPMailer,
			archive.New,
			newMenu,
		),
	)
}

// newMenu builds the coffee catalog from configuration.
func newMenu(cfg *config.Config) *catalog.Catalog {
	items := make([]catalog.Item, 0, len(cfg.Catalog))
	for _, item := range cfg.Catalog {
		items = append(items, catalog.Item{
			Name:  item.Name,
			Price: decimal.NewFromInt(int64(item.Price)),
		})
	}

	return catalog.New(items)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewOrderService,
			impl.NewReceiptService,
			impl.NewMessageService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewOrderHandler,
			handler.NewReceiptHandler,
			handler.NewMessageHandler,
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
