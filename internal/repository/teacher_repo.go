package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/SalimElheni1/quran-association-manager-sub001/internal/database"
	"github.com/SalimElheni1/quran-association-manager-sub001/internal/models"
)

// teacherRepo is the concrete implementation of TeacherRepository
type teacherRepo struct {
	db *database.DB
}

// NewTeacherRepo creates a new teacher repository
func NewTeacherRepo(db *database.DB) TeacherRepository {
	return &teacherRepo{db: db}
}

const teacherColumns = `matricule, name, gender, national_id, phone, email,
	specialty, hire_date, status, notes, created_at, updated_at`

// Create inserts a new teacher
func (r *teacherRepo) Create(ctx context.Context, t *models.Teacher) error {
	query := `
		INSERT INTO teachers (matricule, name, gender, national_id, phone, email,
			specialty, hire_date, status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	now := time.Now()
	_, err := r.db.ExecContext(ctx, query,
		t.Matricule, t.Name, t.Gender, nullString(t.NationalID), t.Phone, t.Email,
		t.Specialty, t.HireDate, t.Status, t.Notes, now, now,
	)
	return err
}

// Update overwrites a teacher identified by matricule
func (r *teacherRepo) Update(ctx context.Context, t *models.Teacher) error {
	query := `
		UPDATE teachers SET name = $2, gender = $3, national_id = $4, phone = $5,
			email = $6, specialty = $7, hire_date = $8, status = $9, notes = $10,
			updated_at = $11
		WHERE matricule = $1
	`
	_, err := r.db.ExecContext(ctx, query,
		t.Matricule, t.Name, t.Gender, nullString(t.NationalID), t.Phone,
		t.Email, t.Specialty, t.HireDate, t.Status, t.Notes, time.Now(),
	)
	return err
}

// GetByMatricule retrieves a teacher, or nil when absent
func (r *teacherRepo) GetByMatricule(ctx context.Context, matricule string) (*models.Teacher, error) {
	query := `SELECT ` + teacherColumns + ` FROM teachers WHERE matricule = $1`

	var t models.Teacher
	var nationalID sql.NullString
	err := r.db.QueryRowContext(ctx, query, matricule).Scan(
		&t.Matricule, &t.Name, &t.Gender, &nationalID, &t.Phone, &t.Email,
		&t.Specialty, &t.HireDate, &t.Status, &t.Notes, &t.CreatedAt, &t.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	t.NationalID = nationalID.String
	return &t, nil
}

// NationalIDExists checks whether any teacher carries the given national ID
func (r *teacherRepo) NationalIDExists(ctx context.Context, nationalID string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM teachers WHERE national_id = $1)", nationalID,
	).Scan(&exists)
	return exists, err
}

// MaxMatriculeSeq returns the highest numeric matricule suffix
func (r *teacherRepo) MaxMatriculeSeq(ctx context.Context) (int, error) {
	var max int
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(NULLIF(substring(matricule from '([0-9]+)$'), '')::int), 0) FROM teachers`,
	).Scan(&max)
	return max, err
}

// Count returns the total number of teachers
func (r *teacherRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM teachers").Scan(&count)
	return count, err
}

// StreamAll streams all teachers for export
func (r *teacherRepo) StreamAll(ctx context.Context, callback func(*models.Teacher) error) error {
	query := `SELECT ` + teacherColumns + ` FROM teachers ORDER BY matricule`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var t models.Teacher
		var nationalID sql.NullString
		err := rows.Scan(
			&t.Matricule, &t.Name, &t.Gender, &nationalID, &t.Phone, &t.Email,
			&t.Specialty, &t.HireDate, &t.Status, &t.Notes, &t.CreatedAt, &t.UpdatedAt,
		)
		if err != nil {
			return err
		}
		t.NationalID = nationalID.String
		if err := callback(&t); err != nil {
			return err
		}
	}
	return rows.Err()
}

// nullString maps "" to SQL NULL so unique indexes ignore absent values.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
