package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/SalimElheni1/quran-association-manager-sub001/internal/database"
	"github.com/SalimElheni1/quran-association-manager-sub001/internal/models"
)

// inventoryRepo is the concrete implementation of InventoryRepository
type inventoryRepo struct {
	db *database.DB
}

// NewInventoryRepo creates a new inventory repository
func NewInventoryRepo(db *database.DB) InventoryRepository {
	return &inventoryRepo{db: db}
}

const inventoryColumns = `matricule, name, category, quantity, condition,
	acquisition_date, notes, created_at, updated_at`

// Create inserts a new inventory item
func (r *inventoryRepo) Create(ctx context.Context, item *models.InventoryItem) error {
	query := `
		INSERT INTO inventory_items (matricule, name, category, quantity, condition,
			acquisition_date, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	now := time.Now()
	_, err := r.db.ExecContext(ctx, query,
		item.Matricule, item.Name, item.Category, item.Quantity, item.Condition,
		item.AcquisitionDate, item.Notes, now, now,
	)
	return err
}

// Update overwrites an inventory item identified by matricule
func (r *inventoryRepo) Update(ctx context.Context, item *models.InventoryItem) error {
	query := `
		UPDATE inventory_items SET name = $2, category = $3, quantity = $4,
			condition = $5, acquisition_date = $6, notes = $7, updated_at = $8
		WHERE matricule = $1
	`
	_, err := r.db.ExecContext(ctx, query,
		item.Matricule, item.Name, item.Category, item.Quantity, item.Condition,
		item.AcquisitionDate, item.Notes, time.Now(),
	)
	return err
}

// GetByMatricule retrieves an inventory item, or nil when absent
func (r *inventoryRepo) GetByMatricule(ctx context.Context, matricule string) (*models.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory_items WHERE matricule = $1`

	var item models.InventoryItem
	err := r.db.QueryRowContext(ctx, query, matricule).Scan(
		&item.Matricule, &item.Name, &item.Category, &item.Quantity, &item.Condition,
		&item.AcquisitionDate, &item.Notes, &item.CreatedAt, &item.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// NameExists checks whether an item with this exact name exists. The match
// is case-sensitive: two distinct items may differ only by case.
func (r *inventoryRepo) NameExists(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM inventory_items WHERE name = $1)", name,
	).Scan(&exists)
	return exists, err
}

// MaxMatriculeSeq returns the highest numeric matricule suffix
func (r *inventoryRepo) MaxMatriculeSeq(ctx context.Context) (int, error) {
	var max int
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(NULLIF(substring(matricule from '([0-9]+)$'), '')::int), 0) FROM inventory_items`,
	).Scan(&max)
	return max, err
}

// Count returns the total number of inventory items
func (r *inventoryRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM inventory_items").Scan(&count)
	return count, err
}

// StreamAll streams all inventory items for export
func (r *inventoryRepo) StreamAll(ctx context.Context, callback func(*models.InventoryItem) error) error {
	query := `SELECT ` + inventoryColumns + ` FROM inventory_items ORDER BY matricule`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var item models.InventoryItem
		err := rows.Scan(
			&item.Matricule, &item.Name, &item.Category, &item.Quantity, &item.Condition,
			&item.AcquisitionDate, &item.Notes, &item.CreatedAt, &item.UpdatedAt,
		)
		if err != nil {
			return err
		}
		if err := callback(&item); err != nil {
			return err
		}
	}
	return rows.Err()
}
