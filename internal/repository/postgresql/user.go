package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/atlashr/attendance-backend-go/internal/domain/user"
	"github.com/atlashr/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type userRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepository{db: db}
}

const userColumns = `u.id, u.email, u.password_hash, u.first_name, u.last_name, u.username,
	u.role_id, u.department_id, u.status, u.created_at, u.updated_at`

func scanUser(row pgx.Row, withRoleName bool) (user.User, error) {
	var u user.User
	dest := []interface{}{
		&u.ID, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName, &u.Username,
		&u.RoleID, &u.DepartmentID, &u.Status, &u.CreatedAt, &u.UpdatedAt,
	}
	if withRoleName {
		dest = append(dest, &u.RoleName)
	}
	return u, row.Scan(dest...)
}

// uniqueViolation maps a unique-constraint failure to a domain error.
func uniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case "users_email_key":
			return user.ErrEmailExists
		case "users_username_key":
			return user.ErrUsernameExists
		}
	}
	return nil
}

// Create implements user.UserRepository.
func (r *userRepository) Create(ctx context.Context, u user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	err := q.QueryRow(ctx, `
		INSERT INTO users (id, email, password_hash, first_name, last_name, username,
			role_id, department_id, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at
	`,
		u.ID, u.Email, u.PasswordHash, u.FirstName, u.LastName, u.Username,
		u.RoleID, u.DepartmentID, u.Status,
	).Scan(&u.CreatedAt, &u.UpdatedAt)

	if err != nil {
		if domainErr := uniqueViolation(err); domainErr != nil {
			return user.User{}, domainErr
		}
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return u, nil
}

// GetByID implements user.UserRepository.
func (r *userRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s, rt.name AS role_name
		FROM users u
		LEFT JOIN roles_tbl rt ON rt.id = u.role_id
		WHERE u.id = $1
	`, userColumns)

	u, err := scanUser(q.QueryRow(ctx, query, id), true)
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return u, nil
}

// GetByEmail implements user.UserRepository.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM users u
		WHERE u.email = $1
	`, userColumns)

	u, err := scanUser(q.QueryRow(ctx, query, email), false)
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return u, nil
}

// List implements user.UserRepository.
func (r *userRepository) List(ctx context.Context) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s, rt.name AS role_name
		FROM users u
		LEFT JOIN roles_tbl rt ON rt.id = u.role_id
		ORDER BY u.created_at DESC
	`, userColumns)

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := make([]user.User, 0)
	for rows.Next() {
		u, err := scanUser(rows, true)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read user rows: %w", err)
	}

	return users, nil
}

// Update implements user.UserRepository.
func (r *userRepository) Update(ctx context.Context, u user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	err := q.QueryRow(ctx, `
		UPDATE users
		SET email = $2, first_name = $3, last_name = $4, username = $5,
		    role_id = $6, department_id = $7, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`,
		u.ID, u.Email, u.FirstName, u.LastName, u.Username, u.RoleID, u.DepartmentID,
	).Scan(&u.UpdatedAt)

	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		if domainErr := uniqueViolation(err); domainErr != nil {
			return user.User{}, domainErr
		}
		return user.User{}, fmt.Errorf("failed to update user: %w", err)
	}

	return u, nil
}

// Delete implements user.UserRepository.
func (r *userRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	return nil
}
