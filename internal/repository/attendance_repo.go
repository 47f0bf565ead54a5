package repository

import (
	"context"
	"time"

	"github.com/SalimElheni1/quran-association-manager-sub001/internal/database"
	"github.com/SalimElheni1/quran-association-manager-sub001/internal/models"
)

// attendanceRepo is the concrete implementation of AttendanceRepository
type attendanceRepo struct {
	db *database.DB
}

// NewAttendanceRepo creates a new attendance repository
func NewAttendanceRepo(db *database.DB) AttendanceRepository {
	return &attendanceRepo{db: db}
}

// Upsert records an attendance status, overwriting any previous status for
// the same (student, class, date) triple.
func (r *attendanceRepo) Upsert(ctx context.Context, a *models.AttendanceRecord) error {
	query := `
		INSERT INTO attendance (student_matricule, class_id, date, status, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (student_matricule, class_id, date) DO UPDATE SET
			status = EXCLUDED.status
		RETURNING id
	`
	return r.db.QueryRowContext(ctx, query,
		a.StudentMatricule, a.ClassID, a.Date, a.Status, time.Now(),
	).Scan(&a.ID)
}

// Count returns the total number of attendance records
func (r *attendanceRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM attendance").Scan(&count)
	return count, err
}

// StreamAll streams all attendance records for export
func (r *attendanceRepo) StreamAll(ctx context.Context, callback func(*models.AttendanceRecord) error) error {
	query := `
		SELECT id, student_matricule, class_id, date, status, created_at
		FROM attendance ORDER BY date, student_matricule
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var a models.AttendanceRecord
		if err := rows.Scan(&a.ID, &a.StudentMatricule, &a.ClassID, &a.Date, &a.Status, &a.CreatedAt); err != nil {
			return err
		}
		if err := callback(&a); err != nil {
			return err
		}
	}
	return rows.Err()
}
