package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// Employment types
const (
	EmploymentFullTime   = "FULL_TIME"
	EmploymentPartTime   = "PART_TIME"
	EmploymentContract   = "CONTRACT"
	EmploymentInternship = "INTERNSHIP"
)

type Job struct {
	ID             int64     `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Location       string    `json:"location"`
	EmploymentType string    `json:"employment_type"`
	Deadline       time.Time `json:"deadline"`
	IsClosed       bool      `json:"is_closed"`
	RecruiterID    int64     `json:"recruiter_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// JobFilter narrows job listings. OpenOnly is set server-side for
// candidates and forces `is_closed = FALSE AND deadline > now()`; it is
// never bound from client input.
type JobFilter struct {
	Title          string
	Location       string
	EmploymentType string
	IsClosed       *bool
	OpenOnly       bool
}

// JobOwnership is the minimal projection loaded for mutation checks
type JobOwnership struct {
	ID          int64
	RecruiterID int64
}

// JobStatus is the minimal projection loaded for application eligibility
type JobStatus struct {
	ID       int64
	IsClosed bool
	Deadline time.Time
}

// JobUpdate is a partial update; nil fields are left unchanged
type JobUpdate struct {
	Title          *string
	Description    *string
	Location       *string
	EmploymentType *string
	Deadline       *time.Time
	IsClosed       *bool
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id int64) (*Job, error)
	GetOwnership(ctx context.Context, id int64) (*JobOwnership, error)
	GetStatus(ctx context.Context, id int64) (*JobStatus, error)
	Fetch(ctx context.Context, filter JobFilter, opts ListOptions) ([]Job, int64, error)
	Update(ctx context.Context, id int64, patch *JobUpdate) (*Job, error)
	Delete(ctx context.Context, id int64) error
}

type JobUsecase interface {
	CreateJob(ctx context.Context, recruiterID int64, job *Job) error
	ListJobs(ctx context.Context, filter JobFilter, actorRole string, opts ListOptions) ([]Job, int64, error)
	GetJobDetails(ctx context.Context, id int64) (*Job, error)
	UpdateJob(ctx context.Context, id int64, patch *JobUpdate, actorID int64) (*Job, error)
	DeleteJob(ctx context.Context, id int64, actorID int64) error
}
