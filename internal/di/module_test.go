package di

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/polkiloo/gopherauth/internal/app"
	"github.com/polkiloo/gopherauth/internal/config"
	"github.com/polkiloo/gopherauth/internal/domain/repository"
	"github.com/polkiloo/gopherauth/internal/server/http/handlers"
	"github.com/polkiloo/gopherauth/internal/storage/postgres"
	"github.com/polkiloo/gopherauth/internal/test"
)

func TestModuleComposesGraphWithReplacements(t *testing.T) {
	cfg := &config.Config{
		RunAddress:         ":0",
		DatabaseURI:        "postgres://stub",
		JWTSecret:          "secret",
		TokenTTL:           time.Hour,
		BcryptCost:         4,
		ShutdownTimeout:    time.Millisecond,
		LogLevel:           "info",
		CORSAllowedOrigins: []string{"*"},
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	userRepo := test.NewUserRepositoryStub()

	var (
		facade  *app.AccountFacade
		exposed handlers.AccountFacade
		engine  *gin.Engine
	)
	fxApp := fx.New(
		fx.NopLogger,
		fx.Supply(context.Background()),
		Module(
			fx.Replace(cfg),
			fx.Replace(logger),
			fx.Replace(&postgres.Storage{}),
			fx.Replace(repository.UserRepository(userRepo)),
		),
		fx.Populate(&facade, &exposed, &engine),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })
	if facade == nil {
		t.Fatal("expected account facade instance")
	}
	if exposed != handlers.AccountFacade(facade) {
		t.Fatal("expected handlers to receive the application facade")
	}
	if engine == nil {
		t.Fatal("expected router instance")
	}
}
