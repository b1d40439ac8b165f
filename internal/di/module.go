package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/gopherauth/internal/app"
	"github.com/polkiloo/gopherauth/internal/config"
	"github.com/polkiloo/gopherauth/internal/logger"
	"github.com/polkiloo/gopherauth/internal/pkg/auth"
	"github.com/polkiloo/gopherauth/internal/server/http/handlers"
	"github.com/polkiloo/gopherauth/internal/server/http/router"
	"github.com/polkiloo/gopherauth/internal/storage/postgres"
	"github.com/polkiloo/gopherauth/internal/usecase"
)

// Module composes the application graph. Extra options are appended last so
// tests can replace any dependency.
func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		usecase.Module,
		fx.Provide(func(s *postgres.Storage) app.HealthProber { return s }),
		fx.Provide(func(f *app.AccountFacade) handlers.AccountFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
