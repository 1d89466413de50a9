package di

import (
	"go.uber.org/fx"

	"github.com/itlabs/orderflow/internal/adapter/mailer"
	"github.com/itlabs/orderflow/internal/app"
	"github.com/itlabs/orderflow/internal/config"
	"github.com/itlabs/orderflow/internal/logger"
	"github.com/itlabs/orderflow/internal/pkg/auth"
	"github.com/itlabs/orderflow/internal/pkg/ratelimit"
	"github.com/itlabs/orderflow/internal/pkg/sequence"
	"github.com/itlabs/orderflow/internal/server/http/handlers"
	"github.com/itlabs/orderflow/internal/server/http/router"
	"github.com/itlabs/orderflow/internal/storage/postgres"
	"github.com/itlabs/orderflow/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		ratelimit.Module,
		sequence.Module,
		postgres.Module,
		mailer.Module,
		usecase.Module,
		fx.Provide(func(facade *app.OrderFlowFacade) handlers.OrderFlowFacade { return facade }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
