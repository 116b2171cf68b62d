package domain

import (
	"context"
	"time"
)

// Application status constants
const (
	ApplicationStatusPending  = "pending"
	ApplicationStatusAccepted = "accepted"
	ApplicationStatusRejected = "rejected"
)

// ValidApplicationStatus reports whether s is a known review status
func ValidApplicationStatus(s string) bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusAccepted, ApplicationStatusRejected:
		return true
	}
	return false
}

// Resume is the stored reference to an uploaded résumé file. It is created
// once per submission and never updated; it outlives its application row.
type Resume struct {
	ID          int64     `json:"id"`
	CandidateID int64     `json:"candidate_id"`
	Filename    string    `json:"filename"`
	CreatedAt   time.Time `json:"created_at"`
}

// CandidateSummary is the minimal candidate projection joined into
// application responses. Password and role are never part of it.
type CandidateSummary struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

type Application struct {
	ID          int64     `json:"id"`
	JobID       int64     `json:"job_id"`
	CandidateID int64     `json:"candidate_id"`
	ResumeID    int64     `json:"resume_id"`
	Status      string    `json:"status"`
	Evaluation  *float64  `json:"evaluation,omitempty"`
	CoverLetter *string   `json:"cover_letter,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Joined data for list/detail responses
	Candidate *CandidateSummary `json:"candidate,omitempty"`
}

// ApplicationFilter narrows application listings
type ApplicationFilter struct {
	Status string
}

// ApplicationReview is the partial update applied on review
type ApplicationReview struct {
	Status     string
	Evaluation *float64
}

// ResumeUpload carries a validated résumé file into the usecase
type ResumeUpload struct {
	Filename string
	Data     []byte
}

// ResumeStore persists an uploaded résumé binary and returns the stored
// reference path. Failure must abort the enclosing submission.
type ResumeStore interface {
	Save(ctx context.Context, field, originalName string, data []byte) (string, error)
}

type ResumeRepository interface {
	Create(ctx context.Context, resume *Resume) error
}

type ApplicationRepository interface {
	Create(ctx context.Context, app *Application) error
	FetchByJobID(ctx context.Context, jobID int64, filter ApplicationFilter, opts ListOptions) ([]Application, int64, error)
	GetByJobAndID(ctx context.Context, jobID, id int64) (*Application, error)
	Review(ctx context.Context, id int64, review *ApplicationReview) (*Application, error)
}

type ApplicationUsecase interface {
	Apply(ctx context.Context, jobID, candidateID int64, coverLetter string, upload *ResumeUpload) (*Application, error)
	ListByJob(ctx context.Context, jobID int64, filter ApplicationFilter, opts ListOptions) ([]Application, int64, error)
	GetByJob(ctx context.Context, jobID, applicationID int64) (*Application, error)
	Review(ctx context.Context, jobID, applicationID int64, review *ApplicationReview) (*Application, error)
}
