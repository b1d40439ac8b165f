package test

import (
	"context"
	"fmt"
	"sync"
	"time"

	domainErrors "github.com/polkiloo/gopherauth/internal/domain/errors"
	"github.com/polkiloo/gopherauth/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests. Email uniqueness is
// enforced inside Create, the way a unique index would.
type UserRepositoryStub struct {
	mu sync.Mutex

	Users map[string]*model.User
	ByID  map[string]*model.User
	Next  int
	Err   error
	// CreateErr fails Create only, leaving lookups working.
	CreateErr error
	// GetByEmailFn overrides lookups, e.g. to simulate a lost pre-check race.
	GetByEmailFn func(context.Context, string) (*model.User, error)
	Creates      int
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[string]*model.User),
		Next:  1,
	}
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, user model.NewUser) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return nil, s.Err
	}
	if s.CreateErr != nil {
		return nil, s.CreateErr
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	if s.ByID == nil {
		s.ByID = make(map[string]*model.User)
	}
	if _, exists := s.Users[user.Email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	now := time.Now()
	created := &model.User{
		ID:           fmt.Sprintf("user-%d", s.Next),
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Phone:        user.Phone,
		IsActive:     user.IsActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.Next++
	s.Creates++
	s.Users[created.Email] = created
	s.ByID[created.ID] = created
	return created, nil
}

// GetByEmail fetches user by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.GetByEmailFn != nil {
		return s.GetByEmailFn(ctx, email)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[email]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// Count returns the number of stored users.
func (s *UserRepositoryStub) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Users)
}

// HealthProberStub reports a configurable storage health result.
type HealthProberStub struct {
	Err error
}

// HealthCheck returns the configured error.
func (s HealthProberStub) HealthCheck(context.Context) error {
	return s.Err
}
