package usecase

import (
	"context"
	"errors"
	"time"

	"job-board-backend/internal/domain"
	"job-board-backend/pkg/apperror"
)

type jobUsecase struct {
	jobRepo domain.JobRepository
}

func NewJobUsecase(jobRepo domain.JobRepository) domain.JobUsecase {
	return &jobUsecase{jobRepo: jobRepo}
}

func (u *jobUsecase) CreateJob(ctx context.Context, recruiterID int64, job *domain.Job) error {
	// Business Validation. Deadline-in-future is enforced at the binding
	// boundary, not here.
	if job.Title == "" {
		return apperror.BadRequest("Title is required")
	}

	job.RecruiterID = recruiterID
	job.IsClosed = false
	job.CreatedAt = time.Now()
	job.UpdatedAt = time.Now()

	if err := u.jobRepo.Create(ctx, job); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

// ListJobs returns a page of jobs. For candidates the filter is intersected
// with `is_closed = FALSE AND deadline > now()` server-side; the caller's
// own is_closed parameter is discarded so it cannot opt out.
func (u *jobUsecase) ListJobs(ctx context.Context, filter domain.JobFilter, actorRole string, opts domain.ListOptions) ([]domain.Job, int64, error) {
	if actorRole == domain.RoleCandidate {
		filter.IsClosed = nil
		filter.OpenOnly = true
	}
	return u.jobRepo.Fetch(ctx, filter, opts)
}

// GetJobDetails returns a job by id without role filtering; any
// authenticated caller may fetch closed or expired jobs directly.
func (u *jobUsecase) GetJobDetails(ctx context.Context, id int64) (*domain.Job, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}
	return job, nil
}

func (u *jobUsecase) UpdateJob(ctx context.Context, id int64, patch *domain.JobUpdate, actorID int64) (*domain.Job, error) {
	// Load only the ownership projection before mutating
	own, err := u.jobRepo.GetOwnership(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}
	if own.RecruiterID != actorID {
		return nil, apperror.Forbidden("You are not authorized to update this job")
	}

	job, err := u.jobRepo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}
	return job, nil
}

func (u *jobUsecase) DeleteJob(ctx context.Context, id int64, actorID int64) error {
	own, err := u.jobRepo.GetOwnership(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job not found")
		}
		return apperror.Internal(err)
	}
	if own.RecruiterID != actorID {
		return apperror.Forbidden("You are not authorized to delete this job")
	}

	if err := u.jobRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job not found")
		}
		return apperror.Internal(err)
	}
	return nil
}
