package importer

import (
	"context"

	"github.com/SalimElheni1/quran-association-manager-sub001/internal/models"
	"github.com/SalimElheni1/quran-association-manager-sub001/internal/workbook"
)

// processClassRow validates one class row. Classes are keyed by their unique
// name: an existing name updates the class, a new one creates it. The
// referenced teacher must already exist, possibly created earlier in the
// same batch.
func (imp *Importer) processClassRow(ctx context.Context, row []string, mapping workbook.FieldMapping) (RowOutcome, error) {
	et := workbook.EntityClass

	name := mapping.Cell(row, workbook.FieldName)
	if name == "" {
		return failed(missingField(et, workbook.FieldName)), nil
	}

	existing, err := imp.repos.Class.GetByName(ctx, name)
	if err != nil {
		return RowOutcome{}, err
	}

	class := existing
	if class == nil {
		class = &models.Class{Name: name, Status: models.StatusActive}
	}

	if ref := mapping.Cell(row, workbook.FieldTeacherMatricule); ref != "" {
		teacher, err := imp.repos.Teacher.GetByMatricule(ctx, ref)
		if err != nil {
			return RowOutcome{}, err
		}
		if teacher == nil {
			return failed(notFound(workbook.FieldTeacherMatricule, "المعلم", ref)), nil
		}
		class.TeacherMatricule = teacher.Matricule
	}

	if rowErr := applyClassRow(class, row, mapping); rowErr != nil {
		return failed(rowErr), nil
	}

	if existing != nil {
		if err := imp.repos.Class.Update(ctx, class); err != nil {
			return RowOutcome{}, err
		}
		return RowOutcome{Matricule: name}, nil
	}

	if class.TeacherMatricule == "" {
		return failed(missingField(et, workbook.FieldTeacherMatricule)), nil
	}
	if err := imp.repos.Class.Create(ctx, class); err != nil {
		return RowOutcome{}, err
	}
	return RowOutcome{Matricule: name, Created: true}, nil
}

// applyClassRow overlays the row's mapped, non-empty cells onto the record.
// On updates the untouched fields keep their stored values.
func applyClassRow(c *models.Class, row []string, mapping workbook.FieldMapping) *RowError {
	et := workbook.EntityClass

	if v := mapping.Cell(row, workbook.FieldSchedule); v != "" {
		c.Schedule = v
	}
	if v := mapping.Cell(row, workbook.FieldCapacity); v != "" {
		capacity, ok := parseInt(v)
		if !ok || capacity < 0 {
			return invalidValue(et, workbook.FieldCapacity, v)
		}
		c.Capacity = capacity
	}
	if v := mapping.Cell(row, workbook.FieldStatus); v != "" {
		status, ok := NormalizeStatus(v)
		if !ok {
			return invalidValue(et, workbook.FieldStatus, v)
		}
		c.Status = status
	}
	return nil
}
