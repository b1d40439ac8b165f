package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/polkiloo/gopherauth/internal/domain/model"
)

var ErrInvalidToken = errors.New("invalid auth token")

const defaultTokenTTL = 24 * time.Hour

type sessionClaims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// JWTStrategy signs session tokens as HS256 JWTs.
type JWTStrategy struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
	parser *jwt.Parser
}

// NewJWTStrategy builds JWTStrategy with provided secret and options.
func NewJWTStrategy(secret string, opts Options) *JWTStrategy {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	s := &JWTStrategy{secret: []byte(secret), ttl: ttl, now: time.Now}
	s.parser = jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(func() time.Time { return s.now() }),
	)
	return s
}

// Issue generates a signed token for the user.
func (s *JWTStrategy) Issue(userID, email string) (string, error) {
	now := s.now()
	claims := sessionClaims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify checks signature and expiry and returns the embedded claims.
// Every failure is reported as ErrInvalidToken.
func (s *JWTStrategy) Verify(token string) (*model.Claims, error) {
	if token == "" {
		return nil, ErrInvalidToken
	}

	claims := &sessionClaims{}
	parsed, err := s.parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	if claims.UserID == "" || claims.IssuedAt == nil {
		return nil, ErrInvalidToken
	}

	return &model.Claims{
		UserID:    claims.UserID,
		Email:     claims.Email,
		IssuedAt:  claims.IssuedAt.Time,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

func (s *JWTStrategy) Name() string {
	return "jwt-hs256"
}
