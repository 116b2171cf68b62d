package usecase

import (
	"context"
	"errors"
	"time"

	"job-board-backend/internal/domain"
	"job-board-backend/pkg/apperror"
)

type applicationUsecase struct {
	applicationRepo domain.ApplicationRepository
	resumeRepo      domain.ResumeRepository
	jobRepo         domain.JobRepository
	store           domain.ResumeStore
}

func NewApplicationUsecase(
	appRepo domain.ApplicationRepository,
	resumeRepo domain.ResumeRepository,
	jobRepo domain.JobRepository,
	store domain.ResumeStore,
) domain.ApplicationUsecase {
	return &applicationUsecase{
		applicationRepo: appRepo,
		resumeRepo:      resumeRepo,
		jobRepo:         jobRepo,
		store:           store,
	}
}

// Apply submits an application for a job. The résumé upload happens before
// any row is written: a store failure aborts the whole operation so no
// Application/Resume pair can ever reference a missing file.
func (uc *applicationUsecase) Apply(ctx context.Context, jobID, candidateID int64, coverLetter string, upload *domain.ResumeUpload) (*domain.Application, error) {
	if upload == nil || len(upload.Data) == 0 {
		return nil, apperror.BadRequest("A resume file is required to submit an application")
	}

	status, err := uc.jobRepo.GetStatus(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}
	if status.IsClosed || status.Deadline.Before(time.Now()) {
		return nil, apperror.BadRequest("This job application is closed")
	}

	storedPath, err := uc.store.Save(ctx, "resume", upload.Filename, upload.Data)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	resume := &domain.Resume{
		CandidateID: candidateID,
		Filename:    storedPath,
		CreatedAt:   time.Now(),
	}
	if err := uc.resumeRepo.Create(ctx, resume); err != nil {
		return nil, apperror.Internal(err)
	}

	var coverLetterPtr *string
	if coverLetter != "" {
		coverLetterPtr = &coverLetter
	}

	app := &domain.Application{
		JobID:       jobID,
		CandidateID: candidateID,
		ResumeID:    resume.ID,
		CoverLetter: coverLetterPtr,
		Status:      domain.ApplicationStatusPending,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := uc.applicationRepo.Create(ctx, app); err != nil {
		return nil, apperror.Internal(err)
	}

	return app, nil
}

func (uc *applicationUsecase) ListByJob(ctx context.Context, jobID int64, filter domain.ApplicationFilter, opts domain.ListOptions) ([]domain.Application, int64, error) {
	if filter.Status != "" && !domain.ValidApplicationStatus(filter.Status) {
		return nil, 0, apperror.BadRequest("Invalid status filter. Must be: pending, accepted, or rejected")
	}
	return uc.applicationRepo.FetchByJobID(ctx, jobID, filter, opts)
}

func (uc *applicationUsecase) GetByJob(ctx context.Context, jobID, applicationID int64) (*domain.Application, error) {
	// Job existence first, so a wrong job id reads as a missing job rather
	// than a missing application.
	if _, err := uc.jobRepo.GetStatus(ctx, jobID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}

	app, err := uc.applicationRepo.GetByJobAndID(ctx, jobID, applicationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Application not found")
		}
		return nil, apperror.Internal(err)
	}
	return app, nil
}

// Review applies a partial status/evaluation update. Any recruiter holding
// the review right may review; there is no job-ownership assertion here.
func (uc *applicationUsecase) Review(ctx context.Context, jobID, applicationID int64, review *domain.ApplicationReview) (*domain.Application, error) {
	if review.Status != "" && !domain.ValidApplicationStatus(review.Status) {
		return nil, apperror.BadRequest("Invalid status. Must be: pending, accepted, or rejected")
	}

	if _, err := uc.applicationRepo.GetByJobAndID(ctx, jobID, applicationID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Application not found")
		}
		return nil, apperror.Internal(err)
	}

	app, err := uc.applicationRepo.Review(ctx, applicationID, review)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Application not found")
		}
		return nil, apperror.Internal(err)
	}
	return app, nil
}
