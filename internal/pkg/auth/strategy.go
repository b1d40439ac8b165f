package auth

import (
	"time"

	"github.com/polkiloo/gopherauth/internal/domain/model"
)

// TokenCodec issues and verifies signed session tokens.
type TokenCodec interface {
	Issue(userID, email string) (string, error)
	Verify(token string) (*model.Claims, error)
	Name() string
}

type Options struct {
	TTL time.Duration
}
