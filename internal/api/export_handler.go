package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/SalimElheni1/quran-association-manager-sub001/internal/service"
)

// ExportHandler handles export endpoints
type ExportHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewExportHandler creates a new ExportHandler
func NewExportHandler(services *service.Services, log zerolog.Logger) *ExportHandler {
	return &ExportHandler{
		services: services,
		log:      log.With().Str("handler", "export").Logger(),
	}
}

var validEntities = map[string]bool{
	"students": true, "teachers": true, "users": true, "classes": true,
	"groups": true, "attendance": true, "transactions": true, "inventory": true,
}

// StreamExport handles GET /v1/exports?entity=...&format=...
// Streams the export directly to the response
func (h *ExportHandler) StreamExport(c *gin.Context) {
	ctx := c.Request.Context()

	entity := c.Query("entity")
	if entity == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "entity parameter is required"})
		return
	}
	if !validEntities[entity] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown entity: " + entity})
		return
	}

	format := c.Query("format")
	if format == "" {
		format = "csv"
	}
	if format != "csv" && format != "json" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "format must be one of: csv, json"})
		return
	}

	h.log.Info().
		Str("entity", entity).
		Str("format", format).
		Msg("Starting streaming export")

	switch format {
	case "csv":
		c.Header("Content-Type", "text/csv; charset=utf-8")
		c.Header("Content-Disposition", "attachment; filename="+entity+".csv")
	case "json":
		c.Header("Content-Type", "application/json")
		c.Header("Content-Disposition", "attachment; filename="+entity+".json")
	}

	if err := h.services.Export.StreamEntity(ctx, c.Writer, entity, format); err != nil {
		h.log.Error().Err(err).Str("entity", entity).Msg("Export failed")
		// Can't return error JSON after streaming has started
		return
	}
}

// ExportWorkbook handles GET /v1/exports/workbook?entities=students,teachers
// Produces an XLSX workbook whose sheets import back unchanged
func (h *ExportHandler) ExportWorkbook(c *gin.Context) {
	ctx := c.Request.Context()

	var entities []string
	if raw := c.Query("entities"); raw != "" {
		for _, p := range strings.Split(raw, ",") {
			p = strings.TrimSpace(p)
			if p == "" {
				continue
			}
			if !validEntities[p] {
				c.JSON(http.StatusBadRequest, gin.H{"error": "unknown entity: " + p})
				return
			}
			entities = append(entities, p)
		}
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename=export.xlsx")
	if err := h.services.Export.WriteWorkbook(ctx, c.Writer, entities); err != nil {
		h.log.Error().Err(err).Msg("Workbook export failed")
		return
	}
}

// DownloadTemplate handles GET /v1/exports/template
func (h *ExportHandler) DownloadTemplate(c *gin.Context) {
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename=import_template.xlsx")
	if err := h.services.Export.WriteTemplate(c.Writer); err != nil {
		h.log.Error().Err(err).Msg("Template generation failed")
	}
}
