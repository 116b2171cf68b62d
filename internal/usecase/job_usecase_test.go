package usecase_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"job-board-backend/internal/domain"
	"job-board-backend/internal/usecase"
	"job-board-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func appErrCode(t *testing.T, err error) int {
	t.Helper()
	appErr, ok := err.(*apperror.AppError)
	if !ok {
		t.Fatalf("expected *apperror.AppError, got %T: %v", err, err)
	}
	return appErr.Code
}

func TestCreateJob(t *testing.T) {
	t.Run("Should set recruiter and open state on the new job", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo)

		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Job")).Return(nil).Run(func(args mock.Arguments) {
			job := args.Get(1).(*domain.Job)
			assert.Equal(t, int64(42), job.RecruiterID)
			assert.False(t, job.IsClosed)
		})

		job := &domain.Job{
			Title:       "Backend Engineer",
			RecruiterID: 999, // must be overwritten from the actor
			IsClosed:    true,
			Deadline:    time.Now().Add(72 * time.Hour),
		}
		err := uc.CreateJob(context.Background(), 42, job)
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Should fail without a title", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo)

		err := uc.CreateJob(context.Background(), 42, &domain.Job{})
		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, appErrCode(t, err))
		mockRepo.AssertNotCalled(t, "Create")
	})
}

func TestListJobsCandidateFiltering(t *testing.T) {
	t.Run("Should force open-only filtering for candidates", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo)

		mockRepo.On("Fetch", mock.Anything, mock.AnythingOfType("domain.JobFilter"), mock.Anything).
			Return([]domain.Job{}, int64(0), nil).
			Run(func(args mock.Arguments) {
				f := args.Get(1).(domain.JobFilter)
				assert.True(t, f.OpenOnly)
				assert.Nil(t, f.IsClosed)
			})

		// A candidate explicitly asking for closed jobs
		closed := true
		filter := domain.JobFilter{IsClosed: &closed}
		_, _, err := uc.ListJobs(context.Background(), filter, domain.RoleCandidate, domain.ListOptions{})
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Should pass the filter through unchanged for recruiters", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo)

		closed := true
		mockRepo.On("Fetch", mock.Anything, mock.AnythingOfType("domain.JobFilter"), mock.Anything).
			Return([]domain.Job{}, int64(0), nil).
			Run(func(args mock.Arguments) {
				f := args.Get(1).(domain.JobFilter)
				assert.False(t, f.OpenOnly)
				assert.NotNil(t, f.IsClosed)
			})

		filter := domain.JobFilter{IsClosed: &closed}
		_, _, err := uc.ListJobs(context.Background(), filter, domain.RoleRecruiter, domain.ListOptions{})
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})
}

func TestGetJobDetails(t *testing.T) {
	t.Run("Should return closed jobs to any caller", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo)

		mockRepo.On("GetByID", mock.Anything, int64(7)).Return(&domain.Job{ID: 7, IsClosed: true}, nil)

		job, err := uc.GetJobDetails(context.Background(), 7)
		assert.NoError(t, err)
		assert.True(t, job.IsClosed)
	})

	t.Run("Should map a missing job to not found", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo)

		mockRepo.On("GetByID", mock.Anything, int64(7)).Return(nil, domain.ErrNotFound)

		_, err := uc.GetJobDetails(context.Background(), 7)
		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, appErrCode(t, err))
	})
}

func TestJobOwnership(t *testing.T) {
	t.Run("Should refuse update by a non-owner", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo)

		mockRepo.On("GetOwnership", mock.Anything, int64(7)).Return(&domain.JobOwnership{ID: 7, RecruiterID: 1}, nil)

		title := "New title"
		_, err := uc.UpdateJob(context.Background(), 7, &domain.JobUpdate{Title: &title}, 2)
		assert.Error(t, err)
		assert.Equal(t, http.StatusForbidden, appErrCode(t, err))
		mockRepo.AssertNotCalled(t, "Update")
	})

	t.Run("Should update for the owning recruiter", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo)

		title := "New title"
		mockRepo.On("GetOwnership", mock.Anything, int64(7)).Return(&domain.JobOwnership{ID: 7, RecruiterID: 1}, nil)
		mockRepo.On("Update", mock.Anything, int64(7), mock.AnythingOfType("*domain.JobUpdate")).
			Return(&domain.Job{ID: 7, Title: title}, nil)

		job, err := uc.UpdateJob(context.Background(), 7, &domain.JobUpdate{Title: &title}, 1)
		assert.NoError(t, err)
		assert.Equal(t, title, job.Title)
	})

	t.Run("Should refuse delete by a non-owner", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo)

		mockRepo.On("GetOwnership", mock.Anything, int64(7)).Return(&domain.JobOwnership{ID: 7, RecruiterID: 1}, nil)

		err := uc.DeleteJob(context.Background(), 7, 2)
		assert.Error(t, err)
		assert.Equal(t, http.StatusForbidden, appErrCode(t, err))
		mockRepo.AssertNotCalled(t, "Delete")
	})

	t.Run("Should surface not found before the ownership check", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo)

		mockRepo.On("GetOwnership", mock.Anything, int64(99)).Return(nil, domain.ErrNotFound)

		err := uc.DeleteJob(context.Background(), 99, 1)
		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, appErrCode(t, err))
	})
}
