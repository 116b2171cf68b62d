package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"job-board-backend/internal/domain"
	"job-board-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func TestRegister(t *testing.T) {
	t.Run("Should refuse self-signup as admin", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		tokens := new(MockTokenIssuer)
		userUC := usecase.NewUserUsecase(mockRepo, new(MockSessionRevoker))
		uc := usecase.NewAuthUsecase(mockRepo, userUC, tokens)

		user := &domain.User{Username: "root", Email: "root@example.com", Role: domain.RoleAdmin}
		_, _, err := uc.Register(context.Background(), user, "s3cret-pass")
		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, appErrCode(t, err))
		tokens.AssertNotCalled(t, "Issue")
	})

	t.Run("Should create the account and issue a token", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		tokens := new(MockTokenIssuer)
		userUC := usecase.NewUserUsecase(mockRepo, new(MockSessionRevoker))
		uc := usecase.NewAuthUsecase(mockRepo, userUC, tokens)

		mockRepo.On("GetByUsername", mock.Anything, "jdoe").Return(nil, domain.ErrNotFound)
		mockRepo.On("GetByEmail", mock.Anything, "jdoe@example.com").Return(nil, domain.ErrNotFound)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil).
			Run(func(args mock.Arguments) {
				args.Get(1).(*domain.User).ID = 7
			})
		tokens.On("Issue", int64(7), domain.RoleCandidate).Return("signed.jwt.token", nil)

		user := &domain.User{Username: "jdoe", Email: "jdoe@example.com", Role: domain.RoleCandidate}
		created, token, err := uc.Register(context.Background(), user, "s3cret-pass")
		assert.NoError(t, err)
		assert.Equal(t, "signed.jwt.token", token)
		assert.Empty(t, created.Password)
		tokens.AssertExpectations(t)
	})
}

func TestLogin(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("right-pass"), bcrypt.MinCost)
	stored := &domain.User{ID: 7, Email: "jdoe@example.com", Password: string(hash), Role: domain.RoleCandidate}

	t.Run("Should return the user and a token for valid credentials", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		tokens := new(MockTokenIssuer)
		uc := usecase.NewAuthUsecase(mockRepo, nil, tokens)

		u := *stored
		mockRepo.On("GetByEmail", mock.Anything, "jdoe@example.com").Return(&u, nil)
		tokens.On("Issue", int64(7), domain.RoleCandidate).Return("signed.jwt.token", nil)

		user, token, err := uc.Login(context.Background(), "jdoe@example.com", "right-pass")
		assert.NoError(t, err)
		assert.Equal(t, "signed.jwt.token", token)
		assert.Empty(t, user.Password)
	})

	t.Run("Should not reveal whether the email exists", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		tokens := new(MockTokenIssuer)
		uc := usecase.NewAuthUsecase(mockRepo, nil, tokens)

		u := *stored
		mockRepo.On("GetByEmail", mock.Anything, "jdoe@example.com").Return(&u, nil)
		mockRepo.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, domain.ErrNotFound)

		_, _, wrongPass := uc.Login(context.Background(), "jdoe@example.com", "wrong-pass")
		_, _, wrongMail := uc.Login(context.Background(), "nobody@example.com", "right-pass")

		assert.Error(t, wrongPass)
		assert.Error(t, wrongMail)
		assert.Equal(t, wrongPass.Error(), wrongMail.Error())
		assert.Equal(t, http.StatusUnauthorized, appErrCode(t, wrongPass))
		tokens.AssertNotCalled(t, "Issue")
	})
}

func TestGetCurrentUser(t *testing.T) {
	t.Run("Should map a deleted-and-purged account to unauthorized", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, nil, new(MockTokenIssuer))

		mockRepo.On("GetByID", mock.Anything, int64(7)).Return(nil, domain.ErrNotFound)

		_, err := uc.GetCurrentUser(context.Background(), 7)
		assert.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, appErrCode(t, err))
	})
}
