package usecase

import (
	"context"
	"errors"

	"job-board-backend/internal/domain"
	"job-board-backend/pkg/apperror"

	"golang.org/x/crypto/bcrypt"
)

type authUsecase struct {
	userRepo domain.UserRepository
	userUC   domain.UserUsecase
	tokens   domain.TokenIssuer
}

func NewAuthUsecase(userRepo domain.UserRepository, userUC domain.UserUsecase, tokens domain.TokenIssuer) domain.AuthUsecase {
	return &authUsecase{userRepo: userRepo, userUC: userUC, tokens: tokens}
}

// Register self-signs-up a candidate or recruiter and returns a session
// token. Admin accounts are only provisioned through the user management
// endpoints.
func (u *authUsecase) Register(ctx context.Context, user *domain.User, plainPassword string) (*domain.User, string, error) {
	if user.Role != domain.RoleCandidate && user.Role != domain.RoleRecruiter {
		return nil, "", apperror.BadRequest("Role must be CANDIDATE or RECRUITER")
	}

	created, err := u.userUC.CreateUser(ctx, user, plainPassword)
	if err != nil {
		return nil, "", err
	}

	token, err := u.tokens.Issue(created.ID, created.Role)
	if err != nil {
		return nil, "", apperror.Internal(err)
	}
	return created, token, nil
}

func (u *authUsecase) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", apperror.Unauthorized("Incorrect email or password")
		}
		return nil, "", apperror.Internal(err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, "", apperror.Unauthorized("Incorrect email or password")
	}

	token, err := u.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return nil, "", apperror.Internal(err)
	}

	user.Password = ""
	return user, token, nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, id int64) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Unauthorized("User not found")
		}
		return nil, apperror.Internal(err)
	}
	return user, nil
}
