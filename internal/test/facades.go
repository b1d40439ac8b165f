package test

import (
	"context"
	"time"

	"github.com/polkiloo/gopherauth/internal/domain/model"
)

// AuthFacadeStub simulates authentication facade interactions.
type AuthFacadeStub struct {
	RegisterFn func(context.Context, model.RegisterInput) (*model.Session, error)
	LoginFn    func(context.Context, string, string) (*model.Session, error)
	VerifyFn   func(string) (*model.Claims, error)
	ProfileFn  func(context.Context, string) (*model.PublicUser, error)
}

// Register returns a session for successful registration scenarios.
func (s AuthFacadeStub) Register(ctx context.Context, input model.RegisterInput) (*model.Session, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, input)
	}
	return &model.Session{
		User: model.PublicUser{
			ID:        "user-1",
			Email:     input.Email,
			FirstName: input.FirstName,
			LastName:  input.LastName,
			Phone:     input.Phone,
			IsActive:  true,
		},
		Token: "token",
	}, nil
}

// Login returns a session for successful authentication scenarios.
func (s AuthFacadeStub) Login(ctx context.Context, email, password string) (*model.Session, error) {
	if s.LoginFn != nil {
		return s.LoginFn(ctx, email, password)
	}
	return &model.Session{User: model.PublicUser{ID: "user-1", Email: email, IsActive: true}, Token: "token"}, nil
}

// VerifyToken returns claims for the authenticated user.
func (s AuthFacadeStub) VerifyToken(token string) (*model.Claims, error) {
	if s.VerifyFn != nil {
		return s.VerifyFn(token)
	}
	now := time.Now()
	return &model.Claims{UserID: "user-1", Email: "a@b.com", IssuedAt: now, ExpiresAt: now.Add(time.Hour)}, nil
}

// Profile returns the public user for the given identifier.
func (s AuthFacadeStub) Profile(ctx context.Context, userID string) (*model.PublicUser, error) {
	if s.ProfileFn != nil {
		return s.ProfileFn(ctx, userID)
	}
	return &model.PublicUser{ID: userID, Email: "a@b.com", IsActive: true}, nil
}

// HealthFacadeStub simulates storage health probing.
type HealthFacadeStub struct {
	Err error
}

// Healthy returns the configured error.
func (s HealthFacadeStub) Healthy(context.Context) error {
	return s.Err
}

// AccountFacadeStub aggregates facade dependencies for HTTP layer tests.
type AccountFacadeStub struct {
	AuthFacadeStub
	HealthFacadeStub
}
