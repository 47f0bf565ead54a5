package service

import (
	"context"
	"io"

	"github.com/rs/zerolog"

	"github.com/SalimElheni1/quran-association-manager-sub001/internal/config"
	"github.com/SalimElheni1/quran-association-manager-sub001/internal/models"
	"github.com/SalimElheni1/quran-association-manager-sub001/internal/repository"
)

// ImportService defines the interface for workbook import operations
type ImportService interface {
	CreateImportJob(ctx context.Context, req *models.ImportRequest, filePath string) (*models.ImportJob, error)
	ProcessImport(ctx context.Context, job *models.ImportJob) error
	ListSheets(filePath string) ([]string, error)
}

// ExportService defines the interface for export operations. Writers are
// plain io.Writer so the same streaming code serves HTTP responses and files.
type ExportService interface {
	StreamEntity(ctx context.Context, w io.Writer, entity, format string) error
	WriteWorkbook(ctx context.Context, w io.Writer, entities []string) error
	WriteTemplate(w io.Writer) error
	GetCount(ctx context.Context, entity string) (int, error)
}

// JobService defines the interface for job management
type JobService interface {
	StartProcessor(ctx context.Context)
	StopProcessor()
	GetJob(ctx context.Context, id string) (*models.ImportJob, error)
	SetImportService(importService ImportService)
}

// Services holds all service interfaces
type Services struct {
	Import ImportService
	Export ExportService
	Job    JobService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, cfg *config.Config, log zerolog.Logger) *Services {
	jobSvc := newJobService(repos.Job, log)
	importSvc := newImportService(repos, cfg, log)
	exportSvc := newExportService(repos, log)

	// Wire up job processor to import service
	jobSvc.SetImportService(importSvc)

	return &Services{
		Import: importSvc,
		Export: exportSvc,
		Job:    jobSvc,
	}
}
