package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/polkiloo/gopherauth/internal/domain/errors"
	"github.com/polkiloo/gopherauth/internal/domain/model"
	"github.com/polkiloo/gopherauth/internal/domain/repository"
)

type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type userRepository struct {
	storage *Storage
}

// New connects to the database, verifies the connection and initializes the schema.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	logger.Info("storage ready", slog.String("host", cfg.ConnConfig.Host), slog.String("database", cfg.ConnConfig.Database))
	return storage, nil
}

var _ repository.Factory = (*Storage)(nil)

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Users returns the user repository.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id UUID PRIMARY KEY,
            email TEXT NOT NULL UNIQUE CHECK (email = lower(email)),
            password_hash TEXT NOT NULL,
            first_name TEXT NOT NULL,
            last_name TEXT NOT NULL,
            phone TEXT NOT NULL,
            is_active BOOLEAN NOT NULL DEFAULT TRUE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// --- UserRepository implementation ---

const userColumns = `id::text, email, password_hash, first_name, last_name, phone, is_active, created_at, updated_at`

func (r *userRepository) Create(ctx context.Context, user model.NewUser) (*model.User, error) {
	const query = `INSERT INTO users (id, email, password_hash, first_name, last_name, phone, is_active)
                   VALUES ($1, $2, $3, $4, $5, $6, $7)
                   RETURNING created_at, updated_at`
	u := model.User{
		ID:           uuid.NewString(),
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Phone:        user.Phone,
		IsActive:     user.IsActive,
	}
	err := r.storage.pool.QueryRow(ctx, query,
		u.ID, u.Email, u.PasswordHash, u.FirstName, u.LastName, u.Phone, u.IsActive,
	).Scan(&u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE email=$1`
	return r.scanOne(r.storage.pool.QueryRow(ctx, query, email))
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domainErrors.ErrNotFound
	}
	const query = `SELECT ` + userColumns + ` FROM users WHERE id=$1`
	return r.scanOne(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *userRepository) scanOne(row pgx.Row) (*model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName, &u.Phone, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}
