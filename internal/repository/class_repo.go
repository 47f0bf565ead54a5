package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/SalimElheni1/quran-association-manager-sub001/internal/database"
	"github.com/SalimElheni1/quran-association-manager-sub001/internal/models"
)

// classRepo is the concrete implementation of ClassRepository
type classRepo struct {
	db *database.DB
}

// NewClassRepo creates a new class repository
func NewClassRepo(db *database.DB) ClassRepository {
	return &classRepo{db: db}
}

// Create inserts a new class and fills in the generated ID
func (r *classRepo) Create(ctx context.Context, c *models.Class) error {
	query := `
		INSERT INTO classes (name, teacher_matricule, schedule, capacity, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query,
		c.Name, c.TeacherMatricule, c.Schedule, c.Capacity, c.Status, now, now,
	).Scan(&c.ID)
}

// Update overwrites a class identified by ID
func (r *classRepo) Update(ctx context.Context, c *models.Class) error {
	query := `
		UPDATE classes SET name = $2, teacher_matricule = $3, schedule = $4,
			capacity = $5, status = $6, updated_at = $7
		WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, query,
		c.ID, c.Name, c.TeacherMatricule, c.Schedule, c.Capacity, c.Status, time.Now(),
	)
	return err
}

// GetByName retrieves a class by its unique name, or nil when absent
func (r *classRepo) GetByName(ctx context.Context, name string) (*models.Class, error) {
	query := `
		SELECT id, name, teacher_matricule, schedule, capacity, status, created_at, updated_at
		FROM classes WHERE name = $1
	`
	var c models.Class
	err := r.db.QueryRowContext(ctx, query, name).Scan(
		&c.ID, &c.Name, &c.TeacherMatricule, &c.Schedule, &c.Capacity, &c.Status,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Count returns the total number of classes
func (r *classRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM classes").Scan(&count)
	return count, err
}

// StreamAll streams all classes for export
func (r *classRepo) StreamAll(ctx context.Context, callback func(*models.Class) error) error {
	query := `
		SELECT id, name, teacher_matricule, schedule, capacity, status, created_at, updated_at
		FROM classes ORDER BY name
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var c models.Class
		err := rows.Scan(
			&c.ID, &c.Name, &c.TeacherMatricule, &c.Schedule, &c.Capacity, &c.Status,
			&c.CreatedAt, &c.UpdatedAt,
		)
		if err != nil {
			return err
		}
		if err := callback(&c); err != nil {
			return err
		}
	}
	return rows.Err()
}
