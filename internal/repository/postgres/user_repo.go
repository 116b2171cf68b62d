package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"job-board-backend/internal/domain"
	"job-board-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgreSQL error codes
const (
	pgUniqueViolation = "23505"
)

// userColumns is the default projection; the password hash is only selected
// by the credential lookups.
const userColumns = `id, first_name, last_name, username, email, role, is_email_verified, deleted_at, created_at, updated_at`

// userSortFields whitelists order-by targets for user listings
var userSortFields = map[string]string{
	"first_name": "first_name",
	"last_name":  "last_name",
	"username":   "username",
	"email":      "email",
	"role":       "role",
	"created_at": "created_at",
	"updated_at": "updated_at",
}

type userRepo struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &userRepo{db: db}
}

func scanUser(row pgx.Row, user *domain.User) error {
	return row.Scan(
		&user.ID, &user.FirstName, &user.LastName, &user.Username, &user.Email,
		&user.Role, &user.IsEmailVerified, &user.DeletedAt, &user.CreatedAt, &user.UpdatedAt,
	)
}

func (r *userRepo) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (first_name, last_name, username, email, password, role, is_email_verified, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	err := r.db.QueryRow(ctx, query,
		user.FirstName, user.LastName, user.Username, user.Email, user.Password,
		user.Role, user.IsEmailVerified, user.CreatedAt, user.UpdatedAt,
	).Scan(&user.ID)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.Conflict("Email or Username already taken")
		}
		return err
	}
	return nil
}

func (r *userRepo) Fetch(ctx context.Context, filter domain.UserFilter, opts domain.ListOptions) ([]domain.User, int64, error) {
	opts = opts.Normalize()

	var conds []string
	var args []interface{}
	if filter.Role != "" {
		args = append(args, filter.Role)
		conds = append(conds, fmt.Sprintf("role = $%d", len(args)))
	}
	if filter.Name != "" {
		args = append(args, "%"+filter.Name+"%")
		conds = append(conds, fmt.Sprintf("(first_name ILIKE $%d OR last_name ILIKE $%d)", len(args), len(args)))
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	orderBy := "created_at"
	if col, ok := userSortFields[opts.SortBy]; ok {
		orderBy = col
	}
	direction := "DESC"
	if opts.SortType == domain.SortAsc {
		direction = "ASC"
	}

	query := fmt.Sprintf(`SELECT %s FROM users%s ORDER BY %s %s LIMIT $%d OFFSET $%d`,
		userColumns, where, orderBy, direction, len(args)+1, len(args)+2)

	rows, err := r.db.Query(ctx, query, append(args, opts.Limit, opts.Offset())...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var user domain.User
		if err := scanUser(rows, &user); err != nil {
			return nil, 0, err
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	countQuery := "SELECT COUNT(*) FROM users" + where
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1`, userColumns)
	var user domain.User
	if err := scanUser(r.db.QueryRow(ctx, query, id), &user); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT id, first_name, last_name, username, email, password, role, is_email_verified, deleted_at, created_at, updated_at
              FROM users WHERE email = $1 AND deleted_at IS NULL`
	var user domain.User
	err := r.db.QueryRow(ctx, query, email).Scan(
		&user.ID, &user.FirstName, &user.LastName, &user.Username, &user.Email, &user.Password,
		&user.Role, &user.IsEmailVerified, &user.DeletedAt, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `SELECT id, first_name, last_name, username, email, password, role, is_email_verified, deleted_at, created_at, updated_at
              FROM users WHERE username = $1 AND deleted_at IS NULL`
	var user domain.User
	err := r.db.QueryRow(ctx, query, username).Scan(
		&user.ID, &user.FirstName, &user.LastName, &user.Username, &user.Email, &user.Password,
		&user.Role, &user.IsEmailVerified, &user.DeletedAt, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) Update(ctx context.Context, id int64, patch *domain.UserUpdate) (*domain.User, error) {
	sets := []string{"updated_at = now()"}
	args := []interface{}{id}

	addSet := func(col string, val interface{}) {
		args = append(args, val)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if patch.FirstName != nil {
		addSet("first_name", *patch.FirstName)
	}
	if patch.LastName != nil {
		addSet("last_name", *patch.LastName)
	}
	if patch.Username != nil {
		addSet("username", *patch.Username)
	}
	if patch.Email != nil {
		addSet("email", *patch.Email)
	}
	if patch.Password != nil {
		addSet("password", *patch.Password)
	}

	query := fmt.Sprintf(`UPDATE users SET %s WHERE id = $1 RETURNING %s`,
		strings.Join(sets, ", "), userColumns)

	var user domain.User
	if err := scanUser(r.db.QueryRow(ctx, query, args...), &user); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, apperror.Conflict("Email or Username already taken")
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) SoftDelete(ctx context.Context, id int64, identity domain.AnonymizedIdentity) (*domain.User, error) {
	query := fmt.Sprintf(`UPDATE users SET
		deleted_at = now(),
		first_name = $2,
		last_name = $3,
		username = $4,
		email = $5,
		updated_at = now()
	WHERE id = $1 RETURNING %s`, userColumns)

	var user domain.User
	err := scanUser(r.db.QueryRow(ctx, query,
		id, identity.FirstName, identity.LastName, identity.Username, identity.Email,
	), &user)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// HardDelete removes the user together with their resumes and applications
// in a single transaction.
func (r *userRepo) HardDelete(ctx context.Context, id int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM applications WHERE candidate_id = $1`, id); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM resumes WHERE candidate_id = $1`, id); err != nil {
		return err
	}

	result, err := tx.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return tx.Commit(ctx)
}
