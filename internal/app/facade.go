package app

import (
	"context"

	"github.com/polkiloo/gopherauth/internal/domain/model"
	"github.com/polkiloo/gopherauth/internal/usecase"
)

// HealthProber checks that the backing store is reachable.
type HealthProber interface {
	HealthCheck(ctx context.Context) error
}

// AccountFacade exposes authentication and health operations to transport adapters.
type AccountFacade struct {
	auth   *usecase.AuthUseCase
	health HealthProber
}

func NewAccountFacade(auth *usecase.AuthUseCase, health HealthProber) *AccountFacade {
	return &AccountFacade{auth: auth, health: health}
}

func (f *AccountFacade) Register(ctx context.Context, input model.RegisterInput) (*model.Session, error) {
	return f.auth.Register(ctx, input)
}

func (f *AccountFacade) Login(ctx context.Context, email, password string) (*model.Session, error) {
	return f.auth.Login(ctx, email, password)
}

func (f *AccountFacade) VerifyToken(token string) (*model.Claims, error) {
	return f.auth.VerifyToken(token)
}

func (f *AccountFacade) Profile(ctx context.Context, userID string) (*model.PublicUser, error) {
	return f.auth.Profile(ctx, userID)
}

func (f *AccountFacade) Healthy(ctx context.Context) error {
	return f.health.HealthCheck(ctx)
}
