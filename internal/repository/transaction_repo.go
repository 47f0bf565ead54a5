package repository

import (
	"context"
	"time"

	"github.com/SalimElheni1/quran-association-manager-sub001/internal/database"
	"github.com/SalimElheni1/quran-association-manager-sub001/internal/models"
)

// transactionRepo is the concrete implementation of TransactionRepository
type transactionRepo struct {
	db *database.DB
}

// NewTransactionRepo creates a new transaction repository
func NewTransactionRepo(db *database.DB) TransactionRepository {
	return &transactionRepo{db: db}
}

// Create inserts a new financial transaction and fills in the generated ID
func (r *transactionRepo) Create(ctx context.Context, t *models.Transaction) error {
	query := `
		INSERT INTO transactions (type, category, amount, date, payment_method, description, reference, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	return r.db.QueryRowContext(ctx, query,
		t.Type, t.Category, t.Amount, t.Date, t.PaymentMethod, t.Description,
		t.Reference, time.Now(),
	).Scan(&t.ID)
}

// Count returns the total number of transactions
func (r *transactionRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM transactions").Scan(&count)
	return count, err
}

// StreamAll streams all transactions for export
func (r *transactionRepo) StreamAll(ctx context.Context, callback func(*models.Transaction) error) error {
	query := `
		SELECT id, type, category, amount, date, payment_method, description, reference, created_at
		FROM transactions ORDER BY date, id
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var t models.Transaction
		err := rows.Scan(
			&t.ID, &t.Type, &t.Category, &t.Amount, &t.Date, &t.PaymentMethod,
			&t.Description, &t.Reference, &t.CreatedAt,
		)
		if err != nil {
			return err
		}
		if err := callback(&t); err != nil {
			return err
		}
	}
	return rows.Err()
}
