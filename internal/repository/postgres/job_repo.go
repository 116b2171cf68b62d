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

const jobColumns = `id, title, description, location, employment_type, deadline, is_closed, recruiter_id, created_at, updated_at`

// jobSortFields whitelists order-by targets for job listings
var jobSortFields = map[string]string{
	"title":           "title",
	"location":        "location",
	"employment_type": "employment_type",
	"deadline":        "deadline",
	"created_at":      "created_at",
	"updated_at":      "updated_at",
}

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

func scanJob(row pgx.Row, job *domain.Job) error {
	return row.Scan(
		&job.ID, &job.Title, &job.Description, &job.Location, &job.EmploymentType,
		&job.Deadline, &job.IsClosed, &job.RecruiterID, &job.CreatedAt, &job.UpdatedAt,
	)
}

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	query := `INSERT INTO jobs (title, description, location, employment_type, deadline, is_closed, recruiter_id, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	return r.db.QueryRow(ctx, query,
		job.Title, job.Description, job.Location, job.EmploymentType,
		job.Deadline, job.IsClosed, job.RecruiterID, job.CreatedAt, job.UpdatedAt,
	).Scan(&job.ID)
}

func (r *jobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	query := fmt.Sprintf(`SELECT %s FROM jobs WHERE id = $1`, jobColumns)
	var job domain.Job
	if err := scanJob(r.db.QueryRow(ctx, query, id), &job); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &job, nil
}

// GetOwnership loads only the columns needed for the owner check
func (r *jobRepo) GetOwnership(ctx context.Context, id int64) (*domain.JobOwnership, error) {
	query := `SELECT id, recruiter_id FROM jobs WHERE id = $1`
	var own domain.JobOwnership
	if err := r.db.QueryRow(ctx, query, id).Scan(&own.ID, &own.RecruiterID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &own, nil
}

// GetStatus loads only the columns needed for the application eligibility check
func (r *jobRepo) GetStatus(ctx context.Context, id int64) (*domain.JobStatus, error) {
	query := `SELECT id, is_closed, deadline FROM jobs WHERE id = $1`
	var status domain.JobStatus
	if err := r.db.QueryRow(ctx, query, id).Scan(&status.ID, &status.IsClosed, &status.Deadline); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &status, nil
}

func (r *jobRepo) Fetch(ctx context.Context, filter domain.JobFilter, opts domain.ListOptions) ([]domain.Job, int64, error) {
	opts = opts.Normalize()

	var conds []string
	var args []interface{}
	if filter.Title != "" {
		args = append(args, "%"+filter.Title+"%")
		conds = append(conds, fmt.Sprintf("title ILIKE $%d", len(args)))
	}
	if filter.Location != "" {
		args = append(args, "%"+filter.Location+"%")
		conds = append(conds, fmt.Sprintf("location ILIKE $%d", len(args)))
	}
	if filter.EmploymentType != "" {
		args = append(args, filter.EmploymentType)
		conds = append(conds, fmt.Sprintf("employment_type = $%d", len(args)))
	}
	if filter.IsClosed != nil {
		args = append(args, *filter.IsClosed)
		conds = append(conds, fmt.Sprintf("is_closed = $%d", len(args)))
	}
	// Candidate visibility restriction, hardcoded server-side so client
	// query parameters cannot bypass it.
	if filter.OpenOnly {
		conds = append(conds, "is_closed = FALSE", "deadline > now()")
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	orderBy := "created_at"
	if col, ok := jobSortFields[opts.SortBy]; ok {
		orderBy = col
	}
	direction := "DESC"
	if opts.SortType == domain.SortAsc {
		direction = "ASC"
	}

	query := fmt.Sprintf(`SELECT %s FROM jobs%s ORDER BY %s %s LIMIT $%d OFFSET $%d`,
		jobColumns, where, orderBy, direction, len(args)+1, len(args)+2)

	rows, err := r.db.Query(ctx, query, append(args, opts.Limit, opts.Offset())...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		var job domain.Job
		if err := scanJob(rows, &job); err != nil {
			return nil, 0, err
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	countQuery := "SELECT COUNT(*) FROM jobs" + where
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return jobs, total, nil
}

func (r *jobRepo) Update(ctx context.Context, id int64, patch *domain.JobUpdate) (*domain.Job, error) {
	sets := []string{"updated_at = now()"}
	args := []interface{}{id}

	addSet := func(col string, val interface{}) {
		args = append(args, val)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if patch.Title != nil {
		addSet("title", *patch.Title)
	}
	if patch.Description != nil {
		addSet("description", *patch.Description)
	}
	if patch.Location != nil {
		addSet("location", *patch.Location)
	}
	if patch.EmploymentType != nil {
		addSet("employment_type", *patch.EmploymentType)
	}
	if patch.Deadline != nil {
		addSet("deadline", *patch.Deadline)
	}
	if patch.IsClosed != nil {
		addSet("is_closed", *patch.IsClosed)
	}

	query := fmt.Sprintf(`UPDATE jobs SET %s WHERE id = $1 RETURNING %s`,
		strings.Join(sets, ", "), jobColumns)

	var job domain.Job
	if err := scanJob(r.db.QueryRow(ctx, query, args...), &job); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *jobRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
