package model

import "time"

// Claims are the identity assertions carried by a session token.
type Claims struct {
	UserID    string
	Email     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Session is the result of a successful registration or login.
type Session struct {
	User  PublicUser
	Token string
}
