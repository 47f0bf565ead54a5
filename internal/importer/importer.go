package importer

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/SalimElheni1/quran-association-manager-sub001/internal/models"
	"github.com/SalimElheni1/quran-association-manager-sub001/internal/repository"
	"github.com/SalimElheni1/quran-association-manager-sub001/internal/workbook"
)

// Importer turns workbook sheets into persisted domain records. Sheets and
// rows are processed strictly sequentially: a row may reference an entity
// created by an earlier row of the same batch, and matricule issuance
// depends on each row's writes being durable before the next row starts.
type Importer struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

// New creates an Importer over the given repositories
func New(repos *repository.Repositories, log zerolog.Logger) *Importer {
	return &Importer{
		repos: repos,
		log:   log.With().Str("component", "importer").Logger(),
	}
}

// ImportWorkbook processes the selected sheets of a workbook and returns the
// aggregate report. Row-local failures are accumulated and never abort the
// batch; only unexpected store or I/O errors propagate, in which case rows
// already written stay written and the returned report must be discarded.
func (imp *Importer) ImportWorkbook(ctx context.Context, wb *workbook.Workbook, selected []string) (*models.ImportReport, error) {
	report := &models.ImportReport{}

	for _, name := range selected {
		sheet := wb.Sheet(name)
		if sheet == nil {
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("الورقة \"%s\" غير موجودة في الملف", name))
			continue
		}

		cls := workbook.Classify(sheet)
		if !cls.Recognized {
			report.ErrorCount++
			report.Errors = append(report.Errors, cls.Message)
			imp.log.Warn().Str("sheet", name).Str("reason", cls.Message).Msg("Sheet not recognized")
			continue
		}

		if !workbook.HasAnyRequired(cls.Mapping, cls.Type) {
			report.ErrorCount++
			report.Errors = append(report.Errors,
				fmt.Sprintf("الورقة \"%s\" تفتقد الأعمدة المطلوبة", name))
			continue
		}

		for _, w := range cls.Warnings {
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("ورقة \"%s\": %s", name, w))
		}

		imp.log.Info().
			Str("sheet", name).
			Str("entity", string(cls.Type)).
			Int("header_row", cls.HeaderRow+1).
			Msg("Importing sheet")

		for i := cls.DataStart; i < len(sheet.Rows); i++ {
			row := sheet.Rows[i]
			if workbook.RowEmpty(row) {
				continue
			}

			outcome, err := imp.processRow(ctx, cls.Type, row, cls.Mapping)
			if err != nil {
				return nil, fmt.Errorf("sheet %q row %d: %w", name, i+1, err)
			}

			if outcome.Err != nil {
				report.ErrorCount++
				report.Errors = append(report.Errors,
					fmt.Sprintf("ورقة \"%s\"، الصف %d: %s", name, i+1, outcome.Err.Message))
				continue
			}

			report.SuccessCount++
			if outcome.Credential != nil {
				report.NewUsers = append(report.NewUsers, *outcome.Credential)
			}
		}
	}

	imp.log.Info().
		Int("successful", report.SuccessCount).
		Int("failed", report.ErrorCount).
		Int("warnings", len(report.Warnings)).
		Msg("Import completed")

	return report, nil
}

// processRow dispatches a data row to the processor for its entity type.
// The returned error is fatal to the batch; row-local failures travel in
// the outcome.
func (imp *Importer) processRow(ctx context.Context, et workbook.EntityType, row []string, mapping workbook.FieldMapping) (RowOutcome, error) {
	switch et {
	case workbook.EntityStudent:
		return imp.processStudentRow(ctx, row, mapping)
	case workbook.EntityTeacher:
		return imp.processTeacherRow(ctx, row, mapping)
	case workbook.EntityUser:
		return imp.processUserRow(ctx, row, mapping)
	case workbook.EntityClass:
		return imp.processClassRow(ctx, row, mapping)
	case workbook.EntityGroup:
		return imp.processGroupRow(ctx, row, mapping)
	case workbook.EntityTransaction:
		return imp.processTransactionRow(ctx, row, mapping)
	case workbook.EntityAttendance:
		return imp.processAttendanceRow(ctx, row, mapping)
	case workbook.EntityInventory:
		return imp.processInventoryRow(ctx, row, mapping)
	default:
		return RowOutcome{}, fmt.Errorf("no row processor for entity type %s", et)
	}
}
