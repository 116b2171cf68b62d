package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"job-board-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// applicationSortFields whitelists order-by targets for application listings
var applicationSortFields = map[string]string{
	"status":     "a.status",
	"evaluation": "a.evaluation",
	"created_at": "a.created_at",
	"updated_at": "a.updated_at",
}

// applicationSelect joins the minimal candidate projection. The candidate's
// password and role are never part of it.
const applicationSelect = `
	SELECT a.id, a.job_id, a.candidate_id, a.resume_id, a.status, a.evaluation, a.cover_letter, a.created_at, a.updated_at,
	       u.id, u.first_name, u.last_name, u.email
	FROM applications a
	JOIN users u ON a.candidate_id = u.id`

type applicationRepo struct {
	db *pgxpool.Pool
}

func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

func scanApplicationWithCandidate(row pgx.Row, app *domain.Application) error {
	var cand domain.CandidateSummary
	err := row.Scan(
		&app.ID, &app.JobID, &app.CandidateID, &app.ResumeID, &app.Status,
		&app.Evaluation, &app.CoverLetter, &app.CreatedAt, &app.UpdatedAt,
		&cand.ID, &cand.FirstName, &cand.LastName, &cand.Email,
	)
	if err != nil {
		return err
	}
	app.Candidate = &cand
	return nil
}

func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	query := `INSERT INTO applications (job_id, candidate_id, resume_id, status, evaluation, cover_letter, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	return r.db.QueryRow(ctx, query,
		app.JobID, app.CandidateID, app.ResumeID, app.Status,
		app.Evaluation, app.CoverLetter, app.CreatedAt, app.UpdatedAt,
	).Scan(&app.ID)
}

func (r *applicationRepo) FetchByJobID(ctx context.Context, jobID int64, filter domain.ApplicationFilter, opts domain.ListOptions) ([]domain.Application, int64, error) {
	opts = opts.Normalize()

	conds := []string{"a.job_id = $1"}
	args := []interface{}{jobID}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conds = append(conds, fmt.Sprintf("a.status = $%d", len(args)))
	}

	where := " WHERE " + strings.Join(conds, " AND ")

	orderBy := "a.created_at"
	if col, ok := applicationSortFields[opts.SortBy]; ok {
		orderBy = col
	}
	direction := "DESC"
	if opts.SortType == domain.SortAsc {
		direction = "ASC"
	}

	query := fmt.Sprintf(`%s%s ORDER BY %s %s LIMIT $%d OFFSET $%d`,
		applicationSelect, where, orderBy, direction, len(args)+1, len(args)+2)

	rows, err := r.db.Query(ctx, query, append(args, opts.Limit, opts.Offset())...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var apps []domain.Application
	for rows.Next() {
		var app domain.Application
		if err := scanApplicationWithCandidate(rows, &app); err != nil {
			return nil, 0, err
		}
		apps = append(apps, app)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	countQuery := "SELECT COUNT(*) FROM applications a" + where
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return apps, total, nil
}

func (r *applicationRepo) GetByJobAndID(ctx context.Context, jobID, id int64) (*domain.Application, error) {
	query := applicationSelect + ` WHERE a.id = $1 AND a.job_id = $2`
	var app domain.Application
	if err := scanApplicationWithCandidate(r.db.QueryRow(ctx, query, id, jobID), &app); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepo) Review(ctx context.Context, id int64, review *domain.ApplicationReview) (*domain.Application, error) {
	sets := []string{"updated_at = now()"}
	args := []interface{}{id}

	if review.Status != "" {
		args = append(args, review.Status)
		sets = append(sets, fmt.Sprintf("status = $%d", len(args)))
	}
	if review.Evaluation != nil {
		args = append(args, *review.Evaluation)
		sets = append(sets, fmt.Sprintf("evaluation = $%d", len(args)))
	}

	query := fmt.Sprintf(`UPDATE applications SET %s WHERE id = $1
		RETURNING id, job_id, candidate_id, resume_id, status, evaluation, cover_letter, created_at, updated_at`,
		strings.Join(sets, ", "))

	var app domain.Application
	err := r.db.QueryRow(ctx, query, args...).Scan(
		&app.ID, &app.JobID, &app.CandidateID, &app.ResumeID, &app.Status,
		&app.Evaluation, &app.CoverLetter, &app.CreatedAt, &app.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &app, nil
}

type resumeRepo struct {
	db *pgxpool.Pool
}

func NewResumeRepository(db *pgxpool.Pool) domain.ResumeRepository {
	return &resumeRepo{db: db}
}

func (r *resumeRepo) Create(ctx context.Context, resume *domain.Resume) error {
	query := `INSERT INTO resumes (candidate_id, filename, created_at)
              VALUES ($1, $2, $3) RETURNING id`
	return r.db.QueryRow(ctx, query,
		resume.CandidateID, resume.Filename, resume.CreatedAt,
	).Scan(&resume.ID)
}
