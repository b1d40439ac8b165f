package router

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/polkiloo/gopherauth/internal/config"
	"github.com/polkiloo/gopherauth/internal/server/http/handlers"
)

// Module provides the gin engine serving the auth API.
var Module = fx.Provide(newEngine)

type engineParams struct {
	fx.In

	Facade handlers.AccountFacade
	Config *config.Config
	Logger *slog.Logger
}

func newEngine(p engineParams) *gin.Engine {
	return Setup(p.Facade, p.Config, p.Logger)
}
