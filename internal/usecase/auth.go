package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	domainErrors "github.com/polkiloo/gopherauth/internal/domain/errors"
	"github.com/polkiloo/gopherauth/internal/domain/model"
	pkgAuth "github.com/polkiloo/gopherauth/internal/pkg/auth"
)

// AuthUseCase handles registration, login and token verification.
type AuthUseCase struct {
	users  *UserGateway
	hasher pkgAuth.PasswordHasher
	tokens pkgAuth.TokenCodec
	logger *slog.Logger
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users *UserGateway, hasher pkgAuth.PasswordHasher, tokens pkgAuth.TokenCodec, logger *slog.Logger) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, tokens: tokens, logger: logger}
}

// NormalizeEmail trims and lowercases an email for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register validates input, creates an active user and returns a session for it.
func (u *AuthUseCase) Register(ctx context.Context, input model.RegisterInput) (*model.Session, error) {
	session, err := u.register(ctx, input)
	if err != nil {
		return nil, u.fail("registration failed", err, domainErrors.ErrRegistrationFailed)
	}
	u.logger.Info("registration succeeded", slog.String("user_id", session.User.ID))
	return session, nil
}

func (u *AuthUseCase) register(ctx context.Context, input model.RegisterInput) (*model.Session, error) {
	input.Email = strings.TrimSpace(input.Email)
	if err := ValidateRegistration(input); err != nil {
		return nil, err
	}

	email := NormalizeEmail(input.Email)
	existing, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if existing != nil {
		return nil, domainErrors.ErrEmailTaken
	}

	hash, err := u.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	usr, err := u.users.Insert(ctx, model.NewUser{
		Email:        email,
		PasswordHash: hash,
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		Phone:        strings.TrimSpace(input.Phone),
		IsActive:     true,
	})
	if err != nil {
		return nil, err
	}

	return u.issueSession(usr)
}

// Login authenticates by email and password.
func (u *AuthUseCase) Login(ctx context.Context, email, password string) (*model.Session, error) {
	session, err := u.login(ctx, email, password)
	if err != nil {
		return nil, u.fail("login failed", err, domainErrors.ErrLoginFailed)
	}
	u.logger.Info("login succeeded", slog.String("user_id", session.User.ID))
	return session, nil
}

func (u *AuthUseCase) login(ctx context.Context, email, password string) (*model.Session, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, domainErrors.ErrCredentialsRequired
	}

	usr, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if usr == nil {
		u.users.VerifyPassword(nil, password)
		return nil, domainErrors.ErrInvalidCredentials
	}

	if !usr.IsActive {
		return nil, domainErrors.ErrAccountDeactivated
	}

	if !u.users.VerifyPassword(usr, password) {
		return nil, domainErrors.ErrInvalidCredentials
	}

	return u.issueSession(usr)
}

// VerifyToken decodes a session token. Any codec failure is reported as unauthorized.
func (u *AuthUseCase) VerifyToken(token string) (*model.Claims, error) {
	claims, err := u.tokens.Verify(token)
	if err != nil {
		return nil, domainErrors.ErrInvalidToken
	}
	return claims, nil
}

// Profile loads the public view of an authenticated user.
func (u *AuthUseCase) Profile(ctx context.Context, userID string) (*model.PublicUser, error) {
	usr, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return nil, u.fail("profile lookup failed", fmt.Errorf("lookup user: %w", err), domainErrors.ErrProfileUnavailable)
	}
	if usr == nil {
		return nil, domainErrors.ErrInvalidToken
	}
	if !usr.IsActive {
		return nil, domainErrors.ErrAccountDeactivated
	}
	pub := usr.Public()
	return &pub, nil
}

func (u *AuthUseCase) issueSession(usr *model.User) (*model.Session, error) {
	token, err := u.tokens.Issue(usr.ID, usr.Email)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &model.Session{User: usr.Public(), Token: token}, nil
}

// fail logs err and hides anything that is not a domain error behind fallback.
func (u *AuthUseCase) fail(event string, err error, fallback *domainErrors.Error) error {
	if domainErr, ok := domainErrors.AsError(err); ok {
		u.logger.Warn(event, slog.String("reason", domainErr.Message))
		return domainErr
	}
	u.logger.Error(event, slog.String("error", err.Error()))
	return fallback
}
