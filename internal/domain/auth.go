package domain

import (
	"context"
	"time"
)

// TokenIssuer mints session tokens for an authenticated user
type TokenIssuer interface {
	Issue(userID int64, role string) (string, error)
}

// SessionRevoker invalidates previously issued tokens for a user. Tokens
// issued before the recorded revocation instant are rejected by the auth
// middleware.
type SessionRevoker interface {
	RevokeAll(ctx context.Context, userID int64) error
	RevokedAt(ctx context.Context, userID int64) (time.Time, error)
}

type AuthUsecase interface {
	Register(ctx context.Context, user *User, plainPassword string) (*User, string, error)
	Login(ctx context.Context, email, password string) (*User, string, error)
	GetCurrentUser(ctx context.Context, id int64) (*User, error)
}
