package importer

import (
	"context"

	"github.com/SalimElheni1/quran-association-manager-sub001/internal/models"
	"github.com/SalimElheni1/quran-association-manager-sub001/internal/workbook"
)

// processGroupRow validates one group row. Groups are keyed by name, like
// classes: existing names update, new names create.
func (imp *Importer) processGroupRow(ctx context.Context, row []string, mapping workbook.FieldMapping) (RowOutcome, error) {
	et := workbook.EntityGroup

	name := mapping.Cell(row, workbook.FieldName)
	if name == "" {
		return failed(missingField(et, workbook.FieldName)), nil
	}

	existing, err := imp.repos.Group.GetByName(ctx, name)
	if err != nil {
		return RowOutcome{}, err
	}

	group := existing
	if group == nil {
		group = &models.Group{Name: name, Status: models.StatusActive}
	}

	if v := mapping.Cell(row, workbook.FieldDescription); v != "" {
		group.Description = v
	}
	if v := mapping.Cell(row, workbook.FieldStatus); v != "" {
		status, ok := NormalizeStatus(v)
		if !ok {
			return failed(invalidValue(et, workbook.FieldStatus, v)), nil
		}
		group.Status = status
	}

	if existing != nil {
		if err := imp.repos.Group.Update(ctx, group); err != nil {
			return RowOutcome{}, err
		}
		return RowOutcome{Matricule: name}, nil
	}

	if err := imp.repos.Group.Create(ctx, group); err != nil {
		return RowOutcome{}, err
	}
	return RowOutcome{Matricule: name, Created: true}, nil
}
