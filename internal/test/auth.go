package test

import (
	"time"

	"github.com/polkiloo/gopherauth/internal/domain/model"
	pkgAuth "github.com/polkiloo/gopherauth/internal/pkg/auth"
)

// HasherStub provides deterministic hashing for tests.
type HasherStub struct {
	HashFn   func(string) (string, error)
	VerifyFn func(string, string) bool
}

// Hash returns a predictable hash for the supplied password.
func (h HasherStub) Hash(password string) (string, error) {
	if h.HashFn != nil {
		return h.HashFn(password)
	}
	return "hash:" + password, nil
}

// Verify validates password against stored hash.
func (h HasherStub) Verify(hash string, password string) bool {
	if h.VerifyFn != nil {
		return h.VerifyFn(hash, password)
	}
	return hash == "hash:"+password
}

// CodecStub issues and verifies tokens via function overrides.
type CodecStub struct {
	IssueFn  func(string, string) (string, error)
	VerifyFn func(string) (*model.Claims, error)
	NameVal  string
}

// Issue returns deterministic tokens for tests.
func (s CodecStub) Issue(userID, email string) (string, error) {
	if s.IssueFn != nil {
		return s.IssueFn(userID, email)
	}
	return "token", nil
}

// Verify parses previously issued token strings.
func (s CodecStub) Verify(token string) (*model.Claims, error) {
	if s.VerifyFn != nil {
		return s.VerifyFn(token)
	}
	now := time.Now()
	return &model.Claims{UserID: "user-1", Email: "a@b.com", IssuedAt: now, ExpiresAt: now.Add(time.Hour)}, nil
}

// Name returns the codec identifier used in tests.
func (s CodecStub) Name() string {
	if s.NameVal != "" {
		return s.NameVal
	}
	return "stub"
}

// TokenVerifierStub implements middleware token verification contract.
type TokenVerifierStub struct {
	Claims   *model.Claims
	Err      error
	VerifyFn func(string) (*model.Claims, error)
}

// VerifyToken either delegates to override or returns predefined result.
func (s TokenVerifierStub) VerifyToken(token string) (*model.Claims, error) {
	if s.VerifyFn != nil {
		return s.VerifyFn(token)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Claims, nil
}

var _ pkgAuth.PasswordHasher = HasherStub{}
var _ pkgAuth.TokenCodec = CodecStub{}
