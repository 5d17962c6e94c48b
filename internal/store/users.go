package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/shopora/shopora-admin-golang/internal/models"
)

const userColumns = `id, name, email, password_hash, role, is_active, phone, avatar, created_at, updated_at`

func scanUser(row *sql.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.IsActive,
		&user.Phone,
		&user.Avatar,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail looks up a single account by its unique email.
// Returns (nil, nil) when no account exists.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = ?`
	return scanUser(s.DB.QueryRowContext(ctx, query, email))
}

// GetUserByID looks up a single account by id. Returns (nil, nil) when absent.
func (s *Store) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = ?`
	return scanUser(s.DB.QueryRowContext(ctx, query, id))
}

// CreateUser persists a new account. The id and timestamps are assigned
// here; a duplicate email surfaces as ErrDuplicateEmail so the caller can
// report a conflict even when the pre-existence check raced.
func (s *Store) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	now := time.Now()
	user.ID = uuid.NewString()
	user.CreatedAt = now
	user.UpdatedAt = now

	query := `
		INSERT INTO users
		(id, name, email, password_hash, role, is_active, phone, avatar, created_at, updated_at)
		VALUES
		(?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	args := []interface{}{
		user.ID,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.Role,
		user.IsActive,
		user.Phone,
		user.Avatar,
		user.CreatedAt,
		user.UpdatedAt,
	}

	if _, err := s.DB.ExecContext(ctx, query, args...); err != nil {
		if isDuplicateKey(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}

	return user, nil
}

// GetUsersByRole lists accounts holding a given role, newest first.
func (s *Store) GetUsersByRole(ctx context.Context, role models.Role) ([]*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE role = ? ORDER BY created_at DESC`

	rows, err := s.DB.QueryContext(ctx, query, role)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		var user models.User
		if err := rows.Scan(
			&user.ID,
			&user.Name,
			&user.Email,
			&user.PasswordHash,
			&user.Role,
			&user.IsActive,
			&user.Phone,
			&user.Avatar,
			&user.CreatedAt,
			&user.UpdatedAt,
		); err != nil {
			return nil, err
		}
		users = append(users, &user)
	}
	return users, rows.Err()
}
