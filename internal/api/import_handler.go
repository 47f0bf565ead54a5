package api

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/SalimElheni1/quran-association-manager-sub001/internal/config"
	"github.com/SalimElheni1/quran-association-manager-sub001/internal/models"
	"github.com/SalimElheni1/quran-association-manager-sub001/internal/service"
)

// ImportHandler handles import endpoints
type ImportHandler struct {
	services *service.Services
	cfg      *config.Config
	log      zerolog.Logger
}

// NewImportHandler creates a new ImportHandler
func NewImportHandler(services *service.Services, cfg *config.Config, log zerolog.Logger) *ImportHandler {
	return &ImportHandler{
		services: services,
		cfg:      cfg,
		log:      log.With().Str("handler", "import").Logger(),
	}
}

// CreateImport handles POST /v1/imports
// Accepts a multipart XLSX upload with an optional sheet selection
func (h *ImportHandler) CreateImport(c *gin.Context) {
	ctx := c.Request.Context()

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file upload is required"})
		return
	}
	defer file.Close()

	// Validate file size
	if header.Size > h.cfg.Import.MaxUploadSize {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("file too large, max size is %d MB", h.cfg.Import.MaxUploadSize/(1024*1024)),
		})
		return
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext != ".xlsx" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "import requires an XLSX workbook"})
		return
	}

	// Sheet selection: repeated form values, or comma-separated
	sheets := c.PostFormArray("sheets")
	if len(sheets) == 1 && strings.Contains(sheets[0], ",") {
		parts := strings.Split(sheets[0], ",")
		sheets = sheets[:0]
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				sheets = append(sheets, p)
			}
		}
	}

	// Save uploaded file
	uploadDir := h.cfg.Import.UploadDir
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		h.log.Error().Err(err).Msg("Failed to create upload directory")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save file"})
		return
	}

	filename := fmt.Sprintf("import_%s%s", uuid.New().String()[:8], ext)
	filePath := filepath.Join(uploadDir, filename)

	dst, err := os.Create(filePath)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to create file")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save file"})
		return
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		h.log.Error().Err(err).Msg("Failed to copy file")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save file"})
		return
	}

	req := &models.ImportRequest{Sheets: sheets}

	job, err := h.services.Import.CreateImportJob(ctx, req, filePath)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to create import job")
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to create import job, is the workbook valid?"})
		return
	}

	h.log.Info().
		Str("job_id", job.ID).
		Str("file", header.Filename).
		Int64("size_bytes", header.Size).
		Msg("Import job created")

	c.JSON(http.StatusAccepted, gin.H{
		"job_id":  job.ID,
		"status":  job.Status,
		"sheets":  job.Sheets,
		"message": "Import job created and queued for processing",
	})
}

// GetImportStatus handles GET /v1/imports/:job_id
func (h *ImportHandler) GetImportStatus(c *gin.Context) {
	ctx := c.Request.Context()
	jobID := c.Param("job_id")
	if jobID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "job_id is required"})
		return
	}

	job, err := h.services.Job.GetJob(ctx, jobID)
	if err != nil {
		h.log.Error().Err(err).Str("job_id", jobID).Msg("Failed to get job")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get job status"})
		return
	}
	if job == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "job not found"})
		return
	}

	c.JSON(http.StatusOK, job)
}

// GetImportReport handles GET /v1/imports/:job_id/report
func (h *ImportHandler) GetImportReport(c *gin.Context) {
	ctx := c.Request.Context()
	jobID := c.Param("job_id")
	if jobID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "job_id is required"})
		return
	}

	job, err := h.services.Job.GetJob(ctx, jobID)
	if err != nil {
		h.log.Error().Err(err).Str("job_id", jobID).Msg("Failed to get job")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get job"})
		return
	}
	if job == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "job not found"})
		return
	}
	if job.Report == nil {
		c.JSON(http.StatusConflict, gin.H{
			"error":  "report not available",
			"status": job.Status,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"job_id": job.ID,
		"report": job.Report,
	})
}
