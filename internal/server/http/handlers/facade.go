package handlers

import (
	"context"

	"github.com/polkiloo/gopherauth/internal/domain/model"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, input model.RegisterInput) (*model.Session, error)
	Login(ctx context.Context, email, password string) (*model.Session, error)
	VerifyToken(token string) (*model.Claims, error)
	Profile(ctx context.Context, userID string) (*model.PublicUser, error)
}

// HealthFacade reports whether backing services are reachable.
type HealthFacade interface {
	Healthy(ctx context.Context) error
}

// AccountFacade aggregates the full set of operations used across handlers.
type AccountFacade interface {
	AuthFacade
	HealthFacade
}
