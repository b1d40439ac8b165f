package auth

import (
	"github.com/polkiloo/gopherauth/internal/config"
	"go.uber.org/fx"
)

// Module provides authentication primitives via fx.
var Module = fx.Options(
	fx.Provide(newPasswordHasher),
	fx.Provide(newTokenCodec),
)

type hasherParams struct {
	fx.In

	Config *config.Config
}

func newPasswordHasher(p hasherParams) PasswordHasher {
	return NewBcryptHasher(p.Config.BcryptCost)
}

type codecParams struct {
	fx.In

	Config *config.Config
}

func newTokenCodec(p codecParams) TokenCodec {
	return NewJWTStrategy(p.Config.JWTSecret, Options{TTL: p.Config.TokenTTL})
}
