package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/SalimElheni1/quran-association-manager-sub001/internal/database"
	"github.com/SalimElheni1/quran-association-manager-sub001/internal/models"
)

// studentRepo is the concrete implementation of StudentRepository
type studentRepo struct {
	db *database.DB
}

// NewStudentRepo creates a new student repository
func NewStudentRepo(db *database.DB) StudentRepository {
	return &studentRepo{db: db}
}

const studentColumns = `matricule, name, gender, date_of_birth, phone, address,
	guardian_name, guardian_phone, enrollment_date, status, notes, created_at, updated_at`

// Create inserts a new student
func (r *studentRepo) Create(ctx context.Context, s *models.Student) error {
	query := `
		INSERT INTO students (matricule, name, gender, date_of_birth, phone, address,
			guardian_name, guardian_phone, enrollment_date, status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	now := time.Now()
	_, err := r.db.ExecContext(ctx, query,
		s.Matricule, s.Name, s.Gender, s.DateOfBirth, s.Phone, s.Address,
		s.GuardianName, s.GuardianPhone, s.EnrollmentDate, s.Status, s.Notes, now, now,
	)
	return err
}

// Update overwrites a student identified by matricule
func (r *studentRepo) Update(ctx context.Context, s *models.Student) error {
	query := `
		UPDATE students SET name = $2, gender = $3, date_of_birth = $4, phone = $5,
			address = $6, guardian_name = $7, guardian_phone = $8,
			enrollment_date = $9, status = $10, notes = $11, updated_at = $12
		WHERE matricule = $1
	`
	_, err := r.db.ExecContext(ctx, query,
		s.Matricule, s.Name, s.Gender, s.DateOfBirth, s.Phone, s.Address,
		s.GuardianName, s.GuardianPhone, s.EnrollmentDate, s.Status, s.Notes, time.Now(),
	)
	return err
}

// GetByMatricule retrieves a student, or nil when absent
func (r *studentRepo) GetByMatricule(ctx context.Context, matricule string) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE matricule = $1`

	var s models.Student
	err := r.db.QueryRowContext(ctx, query, matricule).Scan(
		&s.Matricule, &s.Name, &s.Gender, &s.DateOfBirth, &s.Phone, &s.Address,
		&s.GuardianName, &s.GuardianPhone, &s.EnrollmentDate, &s.Status, &s.Notes,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// MaxMatriculeSeq returns the highest numeric matricule suffix
func (r *studentRepo) MaxMatriculeSeq(ctx context.Context) (int, error) {
	var max int
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(NULLIF(substring(matricule from '([0-9]+)$'), '')::int), 0) FROM students`,
	).Scan(&max)
	return max, err
}

// Count returns the total number of students
func (r *studentRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM students").Scan(&count)
	return count, err
}

// StreamAll streams all students for export (memory efficient)
func (r *studentRepo) StreamAll(ctx context.Context, callback func(*models.Student) error) error {
	query := `SELECT ` + studentColumns + ` FROM students ORDER BY matricule`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var s models.Student
		err := rows.Scan(
			&s.Matricule, &s.Name, &s.Gender, &s.DateOfBirth, &s.Phone, &s.Address,
			&s.GuardianName, &s.GuardianPhone, &s.EnrollmentDate, &s.Status, &s.Notes,
			&s.CreatedAt, &s.UpdatedAt,
		)
		if err != nil {
			return err
		}
		if err := callback(&s); err != nil {
			return err
		}
	}
	return rows.Err()
}
