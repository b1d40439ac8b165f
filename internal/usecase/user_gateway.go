package usecase

import (
	"context"
	"errors"
	"sync"

	domainErrors "github.com/polkiloo/gopherauth/internal/domain/errors"
	"github.com/polkiloo/gopherauth/internal/domain/model"
	"github.com/polkiloo/gopherauth/internal/domain/repository"
	pkgAuth "github.com/polkiloo/gopherauth/internal/pkg/auth"
)

// UserGateway is the persistence boundary of the authentication service.
type UserGateway struct {
	users  repository.UserRepository
	hasher pkgAuth.PasswordHasher

	decoyOnce sync.Once
	decoyHash string
}

const decoyPassword = "decoy-Passw0rd!-never-issued"

// NewUserGateway constructs UserGateway.
func NewUserGateway(users repository.UserRepository, hasher pkgAuth.PasswordHasher) *UserGateway {
	return &UserGateway{users: users, hasher: hasher}
}

// FindByEmail returns nil without error when no user has the given normalized email.
func (g *UserGateway) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	usr, err := g.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return usr, nil
}

// FindByID returns nil without error when the user does not exist.
func (g *UserGateway) FindByID(ctx context.Context, id string) (*model.User, error) {
	usr, err := g.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return usr, nil
}

// Insert stores a new user. The store's unique index decides duplicates.
func (g *UserGateway) Insert(ctx context.Context, user model.NewUser) (*model.User, error) {
	created, err := g.users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, domainErrors.ErrAlreadyExists) {
			return nil, domainErrors.ErrEmailTaken
		}
		return nil, err
	}
	return created, nil
}

// VerifyPassword checks plaintext against the user's stored hash. A nil user
// never matches but still pays for one comparison against a decoy hash, so
// unknown emails take as long as wrong passwords.
func (g *UserGateway) VerifyPassword(user *model.User, password string) bool {
	if user == nil {
		g.hasher.Verify(g.decoy(), password)
		return false
	}
	return g.hasher.Verify(user.PasswordHash, password)
}

func (g *UserGateway) decoy() string {
	g.decoyOnce.Do(func() {
		g.decoyHash, _ = g.hasher.Hash(decoyPassword)
	})
	return g.decoyHash
}
