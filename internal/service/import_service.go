package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/SalimElheni1/quran-association-manager-sub001/internal/config"
	"github.com/SalimElheni1/quran-association-manager-sub001/internal/importer"
	"github.com/SalimElheni1/quran-association-manager-sub001/internal/models"
	"github.com/SalimElheni1/quran-association-manager-sub001/internal/repository"
	"github.com/SalimElheni1/quran-association-manager-sub001/internal/workbook"
)

// importService is the concrete implementation of ImportService
type importService struct {
	repos *repository.Repositories
	cfg   *config.Config
	log   zerolog.Logger
}

// newImportService creates a new ImportService
func newImportService(repos *repository.Repositories, cfg *config.Config, log zerolog.Logger) *importService {
	return &importService{
		repos: repos,
		cfg:   cfg,
		log:   log.With().Str("service", "import").Logger(),
	}
}

// CreateImportJob records a pending job for an uploaded workbook. When the
// request names no sheets, every sheet in the file is queued.
func (s *importService) CreateImportJob(ctx context.Context, req *models.ImportRequest, filePath string) (*models.ImportJob, error) {
	sheets := req.Sheets
	if len(sheets) == 0 {
		all, err := s.ListSheets(filePath)
		if err != nil {
			return nil, err
		}
		sheets = all
	}

	job := &models.ImportJob{
		ID:        uuid.New().String(),
		Status:    models.JobStatusPending,
		FilePath:  filePath,
		Sheets:    sheets,
		CreatedAt: time.Now(),
	}

	if err := s.repos.Job.Create(ctx, job); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("job_id", job.ID).
		Strs("sheets", sheets).
		Str("file", filePath).
		Msg("Import job created")

	return job, nil
}

// ListSheets returns the sheet names of a workbook file in document order
func (s *importService) ListSheets(filePath string) ([]string, error) {
	wb, err := workbook.Open(filePath)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(wb.Sheets))
	for _, sheet := range wb.Sheets {
		names = append(names, sheet.Name)
	}
	return names, nil
}

// ProcessImport runs one queued import job to completion and persists the
// resulting report on the job row.
func (s *importService) ProcessImport(ctx context.Context, job *models.ImportJob) error {
	startTime := time.Now()
	now := startTime
	job.Status = models.JobStatusProcessing
	job.StartedAt = &now
	if err := s.repos.Job.Update(ctx, job); err != nil {
		s.log.Error().Err(err).Str("job_id", job.ID).Msg("Failed to mark job as processing")
	}

	s.log.Info().
		Str("job_id", job.ID).
		Strs("sheets", job.Sheets).
		Msg("Starting import processing")

	var report *models.ImportReport
	wb, err := workbook.Open(job.FilePath)
	if err == nil {
		imp := importer.New(s.repos, s.log)
		report, err = imp.ImportWorkbook(ctx, wb, job.Sheets)
	}

	job.DurationMs = time.Since(startTime).Milliseconds()
	completedAt := time.Now()
	job.CompletedAt = &completedAt

	if err != nil {
		job.Status = models.JobStatusFailed
		job.Error = err.Error()
		s.log.Error().Err(err).Str("job_id", job.ID).Msg("Import failed")
	} else {
		job.Status = models.JobStatusCompleted
		job.Report = report
		s.log.Info().
			Str("job_id", job.ID).
			Int("successful", report.SuccessCount).
			Int("failed", report.ErrorCount).
			Int64("duration_ms", job.DurationMs).
			Msg("Import completed")
	}

	if updateErr := s.repos.Job.Update(ctx, job); updateErr != nil {
		s.log.Error().Err(updateErr).Str("job_id", job.ID).Msg("Failed to persist job result")
	}

	return err
}
