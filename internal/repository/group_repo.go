package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/SalimElheni1/quran-association-manager-sub001/internal/database"
	"github.com/SalimElheni1/quran-association-manager-sub001/internal/models"
)

// groupRepo is the concrete implementation of GroupRepository
type groupRepo struct {
	db *database.DB
}

// NewGroupRepo creates a new group repository
func NewGroupRepo(db *database.DB) GroupRepository {
	return &groupRepo{db: db}
}

// Create inserts a new group and fills in the generated ID
func (r *groupRepo) Create(ctx context.Context, g *models.Group) error {
	query := `
		INSERT INTO groups (name, description, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query,
		g.Name, g.Description, g.Status, now, now,
	).Scan(&g.ID)
}

// Update overwrites a group identified by ID
func (r *groupRepo) Update(ctx context.Context, g *models.Group) error {
	query := `
		UPDATE groups SET name = $2, description = $3, status = $4, updated_at = $5
		WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, query, g.ID, g.Name, g.Description, g.Status, time.Now())
	return err
}

// GetByName retrieves a group by its unique name, or nil when absent
func (r *groupRepo) GetByName(ctx context.Context, name string) (*models.Group, error) {
	query := `SELECT id, name, description, status, created_at, updated_at FROM groups WHERE name = $1`

	var g models.Group
	err := r.db.QueryRowContext(ctx, query, name).Scan(
		&g.ID, &g.Name, &g.Description, &g.Status, &g.CreatedAt, &g.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// Count returns the total number of groups
func (r *groupRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM groups").Scan(&count)
	return count, err
}

// StreamAll streams all groups for export
func (r *groupRepo) StreamAll(ctx context.Context, callback func(*models.Group) error) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, description, status, created_at, updated_at FROM groups ORDER BY name`,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var g models.Group
		if err := rows.Scan(&g.ID, &g.Name, &g.Description, &g.Status, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return err
		}
		if err := callback(&g); err != nil {
			return err
		}
	}
	return rows.Err()
}
