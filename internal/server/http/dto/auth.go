package dto

import "github.com/polkiloo/gopherauth/internal/domain/model"

// RegisterRequest describes the registration payload.
type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
}

// Input converts the request into the use case input.
func (r RegisterRequest) Input() model.RegisterInput {
	return model.RegisterInput{
		Email:     r.Email,
		Password:  r.Password,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Phone:     r.Phone,
	}
}

// LoginRequest describes email/password payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionResponse is returned after successful registration or login.
type SessionResponse struct {
	User  model.PublicUser `json:"user"`
	Token string           `json:"token"`
}

// NewSessionResponse builds SessionResponse from a session.
func NewSessionResponse(s *model.Session) SessionResponse {
	return SessionResponse{User: s.User, Token: s.Token}
}

// VerifyResponse carries the identity decoded from a valid token.
type VerifyResponse struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
}

// ProfileResponse wraps the authenticated user's public profile.
type ProfileResponse struct {
	User model.PublicUser `json:"user"`
}
