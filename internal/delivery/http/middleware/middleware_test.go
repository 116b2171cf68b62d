package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"job-board-backend/internal/delivery/http/middleware"
	"job-board-backend/internal/domain"
	"job-board-backend/internal/rbac"
	"job-board-backend/pkg/apperror"
	"job-board-backend/pkg/auth"
	"job-board-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.Init()
	os.Exit(m.Run())
}

// Stubs

type stubAuthUsecase struct {
	user *domain.User
}

func (s *stubAuthUsecase) Register(ctx context.Context, user *domain.User, plainPassword string) (*domain.User, string, error) {
	return nil, "", apperror.Internal(nil)
}

func (s *stubAuthUsecase) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	return nil, "", apperror.Internal(nil)
}

func (s *stubAuthUsecase) GetCurrentUser(ctx context.Context, id int64) (*domain.User, error) {
	if s.user == nil {
		return nil, apperror.Unauthorized("User not found")
	}
	return s.user, nil
}

type stubRevoker struct {
	at time.Time
}

func (s *stubRevoker) RevokeAll(ctx context.Context, userID int64) error {
	return nil
}

func (s *stubRevoker) RevokedAt(ctx context.Context, userID int64) (time.Time, error) {
	return s.at, nil
}

func authTestServer(user *domain.User, revokedAt time.Time, tokens *auth.TokenManager) *gin.Engine {
	r := gin.New()
	r.Use(middleware.AuthMiddleware(tokens, &stubAuthUsecase{user: user}, &stubRevoker{at: revokedAt}))
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetInt64(string(domain.KeyUserID))})
	})
	return r
}

func doAuthRequest(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareRevocation(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	user := &domain.User{ID: 7, Email: "r@example.com", Role: domain.RoleRecruiter}

	token, err := tokens.Issue(user.ID, user.Role)
	assert.NoError(t, err)

	t.Run("Should pass when no revocation is recorded", func(t *testing.T) {
		r := authTestServer(user, time.Time{}, tokens)
		w := doAuthRequest(r, token)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Should reject a token issued before the revocation instant", func(t *testing.T) {
		r := authTestServer(user, time.Now().Add(time.Hour), tokens)
		w := doAuthRequest(r, token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "revoked")
	})

	t.Run("Should pass a token issued after the revocation instant", func(t *testing.T) {
		r := authTestServer(user, time.Now().Add(-time.Hour), tokens)
		w := doAuthRequest(r, token)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Should reject a soft-deleted account", func(t *testing.T) {
		now := time.Now()
		deleted := &domain.User{ID: 7, Role: domain.RoleRecruiter, DeletedAt: &now}
		r := authTestServer(deleted, time.Time{}, tokens)
		w := doAuthRequest(r, token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Should reject a missing token", func(t *testing.T) {
		r := authTestServer(user, time.Time{}, tokens)
		w := doAuthRequest(r, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func rightsTestServer(role string, right string) *gin.Engine {
	table := rbac.Load("")
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.Use(func(c *gin.Context) {
		c.Set(string(domain.KeyUserRole), role)
	})
	r.GET("/guarded", middleware.RequireRight(table, right), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestRequireRight(t *testing.T) {
	t.Run("Should allow a role holding the right", func(t *testing.T) {
		r := rightsTestServer(domain.RoleRecruiter, rbac.RightManageJobs)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/guarded", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Should deny a role without the right", func(t *testing.T) {
		r := rightsTestServer(domain.RoleCandidate, rbac.RightManageJobs)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/guarded", nil))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Should deny when no role is set", func(t *testing.T) {
		r := rightsTestServer("", rbac.RightGetJobs)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/guarded", nil))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
