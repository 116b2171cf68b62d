package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"job-board-backend/internal/domain"
	"job-board-backend/pkg/apperror"
	"job-board-backend/pkg/logger"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

type userUsecase struct {
	userRepo domain.UserRepository
	sessions domain.SessionRevoker
}

func NewUserUsecase(userRepo domain.UserRepository, sessions domain.SessionRevoker) domain.UserUsecase {
	return &userUsecase{userRepo: userRepo, sessions: sessions}
}

// CreateUser stores a new account. The username/email pre-checks give a
// friendly Conflict early; the storage-level unique constraint remains the
// source of truth for concurrent signups.
func (u *userUsecase) CreateUser(ctx context.Context, user *domain.User, plainPassword string) (*domain.User, error) {
	switch user.Role {
	case domain.RoleCandidate, domain.RoleRecruiter, domain.RoleAdmin:
	default:
		return nil, apperror.BadRequest("Invalid role")
	}

	if err := u.checkIdentityFree(ctx, user.Username, user.Email, 0); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plainPassword), bcryptCost)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	user.Password = string(hash)
	user.IsEmailVerified = false
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()

	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	user.Password = ""
	return user, nil
}

func (u *userUsecase) ListUsers(ctx context.Context, filter domain.UserFilter, opts domain.ListOptions) ([]domain.User, int64, error) {
	return u.userRepo.Fetch(ctx, filter, opts)
}

func (u *userUsecase) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}
	return user, nil
}

func (u *userUsecase) UpdateUser(ctx context.Context, id int64, patch *domain.UserUpdate) (*domain.User, error) {
	if _, err := u.userRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}

	var username, email string
	if patch.Username != nil {
		username = *patch.Username
	}
	if patch.Email != nil {
		email = *patch.Email
	}
	if err := u.checkIdentityFree(ctx, username, email, id); err != nil {
		return nil, err
	}

	if patch.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*patch.Password), bcryptCost)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		hashed := string(hash)
		patch.Password = &hashed
	}

	user, err := u.userRepo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, err
	}
	return user, nil
}

// DeleteUser applies the role-tagged deletion policy:
//   - RECRUITER: soft delete, anonymize in place, revoke all sessions
//   - CANDIDATE: hard delete together with resumes and applications
//   - ADMIN: refused outright
func (u *userUsecase) DeleteUser(ctx context.Context, id int64) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}

	switch user.Role {
	case domain.RoleRecruiter:
		suffix := uuid.NewString()[:8]
		identity := domain.AnonymizedIdentity{
			FirstName: fmt.Sprintf("Recruiter %s", suffix),
			LastName:  fmt.Sprintf("Recruiter %s", suffix),
			Username:  fmt.Sprintf("Recruiter%d%s", user.ID, suffix),
			Email:     fmt.Sprintf("recruiter%d%s@example.com", user.ID, suffix),
		}
		anonymized, err := u.userRepo.SoftDelete(ctx, id, identity)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		if err := u.sessions.RevokeAll(ctx, id); err != nil {
			// The account is already anonymized; a revocation persistence
			// failure must not undo that.
			logger.Log.Warn("Failed to persist session revocation", "user_id", id, "error", err)
		}
		return anonymized, nil

	case domain.RoleCandidate:
		if err := u.userRepo.HardDelete(ctx, id); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, apperror.NotFound("User not found")
			}
			return nil, apperror.Internal(err)
		}
		return user, nil

	default:
		return nil, apperror.BadRequest("Admin accounts cannot be deleted")
	}
}

// checkIdentityFree rejects a username/email already held by a different
// account. Pass excludeID = 0 for signup.
func (u *userUsecase) checkIdentityFree(ctx context.Context, username, email string, excludeID int64) error {
	if username != "" {
		existing, err := u.userRepo.GetByUsername(ctx, username)
		if err == nil && existing.ID != excludeID {
			return apperror.Conflict("Username already taken")
		}
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return apperror.Internal(err)
		}
	}
	if email != "" {
		existing, err := u.userRepo.GetByEmail(ctx, email)
		if err == nil && existing.ID != excludeID {
			return apperror.Conflict("Email already taken")
		}
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return apperror.Internal(err)
		}
	}
	return nil
}
