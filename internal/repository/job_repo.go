package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/SalimElheni1/quran-association-manager-sub001/internal/database"
	"github.com/SalimElheni1/quran-association-manager-sub001/internal/models"
)

// jobRepo is the concrete implementation of JobRepository
type jobRepo struct {
	db *database.DB
}

// NewJobRepo creates a new import job repository
func NewJobRepo(db *database.DB) JobRepository {
	return &jobRepo{db: db}
}

// Create inserts a new import job
func (r *jobRepo) Create(ctx context.Context, job *models.ImportJob) error {
	sheets, err := json.Marshal(job.Sheets)
	if err != nil {
		return fmt.Errorf("failed to encode sheet selection: %w", err)
	}

	query := `
		INSERT INTO import_jobs (id, status, file_path, sheets, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err = r.db.ExecContext(ctx, query,
		job.ID, job.Status, job.FilePath, sheets, job.CreatedAt,
	)
	return err
}

// Update persists the mutable job fields, including the attached report
func (r *jobRepo) Update(ctx context.Context, job *models.ImportJob) error {
	var report []byte
	if job.Report != nil {
		var err error
		report, err = json.Marshal(job.Report)
		if err != nil {
			return fmt.Errorf("failed to encode import report: %w", err)
		}
	}

	query := `
		UPDATE import_jobs SET status = $2, report = $3, error = $4,
			duration_ms = $5, started_at = $6, completed_at = $7
		WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, query,
		job.ID, job.Status, report, job.Error, job.DurationMs,
		job.StartedAt, job.CompletedAt,
	)
	return err
}

const jobColumns = `id, status, file_path, sheets, report, error, duration_ms,
	created_at, started_at, completed_at`

// GetByID retrieves an import job, or nil when absent
func (r *jobRepo) GetByID(ctx context.Context, id string) (*models.ImportJob, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+jobColumns+` FROM import_jobs WHERE id = $1`, id,
	)
	job, err := scanJob(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return job, err
}

// GetPendingJobs retrieves jobs awaiting processing, oldest first
func (r *jobRepo) GetPendingJobs(ctx context.Context) ([]*models.ImportJob, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+jobColumns+` FROM import_jobs WHERE status = $1 ORDER BY created_at`,
		models.JobStatusPending,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []*models.ImportJob
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

// MarkJobAsProcessing atomically claims a pending job. Returns false when
// another worker already claimed it.
func (r *jobRepo) MarkJobAsProcessing(ctx context.Context, jobID string) (bool, error) {
	result, err := r.db.ExecContext(ctx, `
		UPDATE import_jobs SET status = $2, started_at = NOW()
		WHERE id = $1 AND status = $3
	`, jobID, models.JobStatusProcessing, models.JobStatusPending)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	return affected == 1, err
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanJob(row rowScanner) (*models.ImportJob, error) {
	var job models.ImportJob
	var sheets, report []byte
	var jobErr sql.NullString
	err := row.Scan(
		&job.ID, &job.Status, &job.FilePath, &sheets, &report, &jobErr,
		&job.DurationMs, &job.CreatedAt, &job.StartedAt, &job.CompletedAt,
	)
	if err != nil {
		return nil, err
	}
	job.Error = jobErr.String
	if len(sheets) > 0 {
		if err := json.Unmarshal(sheets, &job.Sheets); err != nil {
			return nil, fmt.Errorf("failed to decode sheet selection: %w", err)
		}
	}
	if len(report) > 0 {
		job.Report = &models.ImportReport{}
		if err := json.Unmarshal(report, job.Report); err != nil {
			return nil, fmt.Errorf("failed to decode import report: %w", err)
		}
	}
	return &job, nil
}
