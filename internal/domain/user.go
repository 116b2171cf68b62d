package domain

import (
	"context"
	"time"
)

// User roles
const (
	RoleCandidate = "CANDIDATE"
	RoleRecruiter = "RECRUITER"
	RoleAdmin     = "ADMIN"
)

type User struct {
	ID              int64      `json:"id"`
	FirstName       string     `json:"first_name"`
	LastName        string     `json:"last_name"`
	Username        string     `json:"username"`
	Email           string     `json:"email"`
	Password        string     `json:"-"` // bcrypt hash, never serialized
	Role            string     `json:"role"`
	IsEmailVerified bool       `json:"is_email_verified"`
	DeletedAt       *time.Time `json:"deleted_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// UserFilter narrows user listings
type UserFilter struct {
	Name string
	Role string
}

// UserUpdate is a partial update; nil fields are left unchanged
type UserUpdate struct {
	FirstName *string
	LastName  *string
	Username  *string
	Email     *string
	Password  *string // plaintext from the caller; hashed by the usecase before persistence
}

// AnonymizedIdentity holds the generated placeholder written over a
// soft-deleted recruiter account
type AnonymizedIdentity struct {
	FirstName string
	LastName  string
	Username  string
	Email     string
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	Fetch(ctx context.Context, filter UserFilter, opts ListOptions) ([]User, int64, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	// GetByEmail and GetByUsername include the password hash; they back
	// credential checks and uniqueness lookups only.
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	Update(ctx context.Context, id int64, patch *UserUpdate) (*User, error)
	SoftDelete(ctx context.Context, id int64, identity AnonymizedIdentity) (*User, error)
	HardDelete(ctx context.Context, id int64) error
}

type UserUsecase interface {
	CreateUser(ctx context.Context, user *User, plainPassword string) (*User, error)
	ListUsers(ctx context.Context, filter UserFilter, opts ListOptions) ([]User, int64, error)
	GetUser(ctx context.Context, id int64) (*User, error)
	UpdateUser(ctx context.Context, id int64, patch *UserUpdate) (*User, error)
	DeleteUser(ctx context.Context, id int64) (*User, error)
}
