package service

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/SalimElheni1/quran-association-manager-sub001/internal/models"
	"github.com/SalimElheni1/quran-association-manager-sub001/internal/repository"
)

// jobService is the concrete implementation of JobService
type jobService struct {
	jobRepo       repository.JobRepository
	importService ImportService
	log           zerolog.Logger
	ctx           context.Context
	cancel        context.CancelFunc
	wg            sync.WaitGroup
	running       bool
	mu            sync.Mutex
	// Single-slot semaphore: imports run one at a time. Matricule issuance
	// reads the current maximum sequence before inserting, so two concurrent
	// imports could mint the same matricule.
	sem chan struct{}
}

// newJobService creates a JobService whose worker pool is sized one
func newJobService(jobRepo repository.JobRepository, log zerolog.Logger) *jobService {
	return &jobService{
		jobRepo: jobRepo,
		log:     log.With().Str("service", "job").Logger(),
		sem:     make(chan struct{}, 1),
	}
}

// SetImportService sets the import service for job processing
func (s *jobService) SetImportService(importService ImportService) {
	s.importService = importService
}

// StartProcessor starts the background job processor
func (s *jobService) StartProcessor(ctx context.Context) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.ctx, s.cancel = context.WithCancel(ctx)
	s.mu.Unlock()

	s.log.Info().Msg("Job processor started")

	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			s.log.Info().Msg("Job processor stopping")
			return
		case <-ticker.C:
			s.processPendingJobs()
		}
	}
}

// StopProcessor stops the background job processor
func (s *jobService) StopProcessor() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	s.cancel()
	s.wg.Wait()
	s.running = false
	s.log.Info().Msg("Job processor stopped")
}

// processPendingJobs processes queued jobs in creation order
func (s *jobService) processPendingJobs() {
	jobs, err := s.jobRepo.GetPendingJobs(s.ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("Failed to get pending jobs")
		return
	}

	for _, job := range jobs {
		// Acquire the slot; blocks while a previous import is still running
		select {
		case s.sem <- struct{}{}:
		case <-s.ctx.Done():
			return
		}

		// Mark as processing atomically
		marked, err := s.jobRepo.MarkJobAsProcessing(s.ctx, job.ID)
		if err != nil || !marked {
			<-s.sem
			continue // another instance already picked it up
		}

		s.wg.Add(1)
		go func(j *models.ImportJob) {
			defer s.wg.Done()
			defer func() { <-s.sem }()

			// Panic recovery keeps one bad workbook from taking the
			// whole process down
			defer func() {
				if r := recover(); r != nil {
					s.log.Error().
						Interface("panic", r).
						Str("job_id", j.ID).
						Msg("Job processing panicked - recovered")
					j.Status = models.JobStatusFailed
					s.jobRepo.Update(s.ctx, j)
				}
			}()
			s.processJob(j)
		}(job)
	}
}

// processJob processes a single job
func (s *jobService) processJob(job *models.ImportJob) {
	select {
	case <-s.ctx.Done():
		s.log.Warn().Str("job_id", job.ID).Msg("Job processing cancelled due to shutdown")
		return
	default:
	}

	s.log.Info().Str("job_id", job.ID).Msg("Processing job")

	if s.importService != nil {
		if err := s.importService.ProcessImport(s.ctx, job); err != nil {
			s.log.Error().Err(err).Str("job_id", job.ID).Msg("Import processing failed")
		}
	}
}

// GetJob retrieves a job by ID
func (s *jobService) GetJob(ctx context.Context, id string) (*models.ImportJob, error) {
	return s.jobRepo.GetByID(ctx, id)
}
