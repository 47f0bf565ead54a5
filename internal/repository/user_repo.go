package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/SalimElheni1/quran-association-manager-sub001/internal/database"
	"github.com/SalimElheni1/quran-association-manager-sub001/internal/models"
)

// userRepo is the concrete implementation of UserRepository
type userRepo struct {
	db *database.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *database.DB) UserRepository {
	return &userRepo{db: db}
}

// CreateWithRole inserts the user row and its role assignment atomically.
// The role name is resolved inside the same transaction; an unknown role
// returns ErrRoleNotFound and leaves no user row behind.
func (r *userRepo) CreateWithRole(ctx context.Context, u *models.User) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		now := time.Now()
		_, err := tx.ExecContext(ctx, `
			INSERT INTO users (matricule, username, full_name, email, password_hash, status, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, u.Matricule, u.Username, u.FullName, u.Email, u.PasswordHash, u.Status, now, now)
		if err != nil {
			return err
		}

		var roleID int64
		err = tx.QueryRowContext(ctx, "SELECT id FROM roles WHERE name = $1", u.Role).Scan(&roleID)
		if err == sql.ErrNoRows {
			return fmt.Errorf("%w: %s", ErrRoleNotFound, u.Role)
		}
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO user_roles (user_matricule, role_id) VALUES ($1, $2)
		`, u.Matricule, roleID)
		return err
	})
}

// Update overwrites a user identified by matricule, including its role
// assignment, inside one transaction.
func (r *userRepo) Update(ctx context.Context, u *models.User) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			UPDATE users SET username = $2, full_name = $3, email = $4, status = $5, updated_at = $6
			WHERE matricule = $1
		`, u.Matricule, u.Username, u.FullName, u.Email, u.Status, time.Now())
		if err != nil {
			return err
		}

		if u.Role == "" {
			return nil
		}

		var roleID int64
		err = tx.QueryRowContext(ctx, "SELECT id FROM roles WHERE name = $1", u.Role).Scan(&roleID)
		if err == sql.ErrNoRows {
			return fmt.Errorf("%w: %s", ErrRoleNotFound, u.Role)
		}
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, `
			UPDATE user_roles SET role_id = $2 WHERE user_matricule = $1
		`, u.Matricule, roleID)
		return err
	})
}

const userSelect = `
	SELECT u.matricule, u.username, u.full_name, u.email, u.status, r.name,
		u.created_at, u.updated_at
	FROM users u
	JOIN user_roles ur ON ur.user_matricule = u.matricule
	JOIN roles r ON r.id = ur.role_id
`

// GetByMatricule retrieves a user with its role, or nil when absent
func (r *userRepo) GetByMatricule(ctx context.Context, matricule string) (*models.User, error) {
	var u models.User
	err := r.db.QueryRowContext(ctx, userSelect+" WHERE u.matricule = $1", matricule).Scan(
		&u.Matricule, &u.Username, &u.FullName, &u.Email, &u.Status, &u.Role,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// UsernameExists checks whether a username is already taken
func (r *userRepo) UsernameExists(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)", username,
	).Scan(&exists)
	return exists, err
}

// MaxMatriculeSeq returns the highest numeric matricule suffix
func (r *userRepo) MaxMatriculeSeq(ctx context.Context) (int, error) {
	var max int
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(NULLIF(substring(matricule from '([0-9]+)$'), '')::int), 0) FROM users`,
	).Scan(&max)
	return max, err
}

// Count returns the total number of users
func (r *userRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM users").Scan(&count)
	return count, err
}

// StreamAll streams all users for export
func (r *userRepo) StreamAll(ctx context.Context, callback func(*models.User) error) error {
	rows, err := r.db.QueryContext(ctx, userSelect+" ORDER BY u.matricule")
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var u models.User
		err := rows.Scan(
			&u.Matricule, &u.Username, &u.FullName, &u.Email, &u.Status, &u.Role,
			&u.CreatedAt, &u.UpdatedAt,
		)
		if err != nil {
			return err
		}
		if err := callback(&u); err != nil {
			return err
		}
	}
	return rows.Err()
}
