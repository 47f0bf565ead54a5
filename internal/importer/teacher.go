package importer

import (
	"context"
	"fmt"

	"github.com/SalimElheni1/quran-association-manager-sub001/internal/models"
	"github.com/SalimElheni1/quran-association-manager-sub001/internal/workbook"
)

// processTeacherRow validates one teacher row and creates or updates the
// matching record. A provided national ID must be unique across teachers.
func (imp *Importer) processTeacherRow(ctx context.Context, row []string, mapping workbook.FieldMapping) (RowOutcome, error) {
	et := workbook.EntityTeacher
	matricule := mapping.Cell(row, workbook.FieldMatricule)

	if matricule != "" {
		existing, err := imp.repos.Teacher.GetByMatricule(ctx, matricule)
		if err != nil {
			return RowOutcome{}, err
		}
		if existing == nil {
			return failed(notFound(workbook.FieldMatricule, "المعلم", matricule)), nil
		}

		previousNID := existing.NationalID
		if rowErr := applyTeacherRow(existing, row, mapping); rowErr != nil {
			return failed(rowErr), nil
		}
		if existing.NationalID != "" && existing.NationalID != previousNID {
			rowErr, err := imp.checkNationalID(ctx, existing.NationalID)
			if err != nil {
				return RowOutcome{}, err
			}
			if rowErr != nil {
				return failed(rowErr), nil
			}
		}
		if err := imp.repos.Teacher.Update(ctx, existing); err != nil {
			return RowOutcome{}, err
		}
		return RowOutcome{Matricule: matricule}, nil
	}

	teacher := &models.Teacher{Status: models.StatusActive}
	if rowErr := applyTeacherRow(teacher, row, mapping); rowErr != nil {
		return failed(rowErr), nil
	}
	if teacher.Name == "" {
		return failed(missingField(et, workbook.FieldName)), nil
	}
	if teacher.NationalID != "" {
		rowErr, err := imp.checkNationalID(ctx, teacher.NationalID)
		if err != nil {
			return RowOutcome{}, err
		}
		if rowErr != nil {
			return failed(rowErr), nil
		}
	}

	var err error
	teacher.Matricule, err = imp.nextMatricule(ctx, et)
	if err != nil {
		return RowOutcome{}, err
	}
	if err := imp.repos.Teacher.Create(ctx, teacher); err != nil {
		return RowOutcome{}, err
	}
	return RowOutcome{Matricule: teacher.Matricule, Created: true}, nil
}

func (imp *Importer) checkNationalID(ctx context.Context, nationalID string) (*RowError, error) {
	exists, err := imp.repos.Teacher.NationalIDExists(ctx, nationalID)
	if err != nil {
		return nil, err
	}
	if exists {
		return &RowError{
			Kind:    KindDuplicate,
			Field:   workbook.FieldNationalID,
			Message: fmt.Sprintf("رقم بطاقة التعريف \"%s\" مستعمل من قبل معلم آخر", nationalID),
		}, nil
	}
	return nil, nil
}

func applyTeacherRow(t *models.Teacher, row []string, mapping workbook.FieldMapping) *RowError {
	et := workbook.EntityTeacher

	if v := mapping.Cell(row, workbook.FieldName); v != "" {
		t.Name = v
	}
	if v := mapping.Cell(row, workbook.FieldGender); v != "" {
		gender, ok := NormalizeGender(v)
		if !ok {
			return invalidValue(et, workbook.FieldGender, v)
		}
		t.Gender = gender
	}
	if v := mapping.Cell(row, workbook.FieldNationalID); v != "" {
		t.NationalID = workbook.NormalizeDigits(v)
	}
	if v := mapping.Cell(row, workbook.FieldPhone); v != "" {
		t.Phone = workbook.NormalizeDigits(v)
	}
	if v := mapping.Cell(row, workbook.FieldEmail); v != "" {
		t.Email = v
	}
	if v := mapping.Cell(row, workbook.FieldSpecialty); v != "" {
		t.Specialty = v
	}
	if v := mapping.Cell(row, workbook.FieldHireDate); v != "" {
		d, ok := parseDate(v)
		if !ok {
			return invalidValue(et, workbook.FieldHireDate, v)
		}
		t.HireDate = &d
	}
	if v := mapping.Cell(row, workbook.FieldStatus); v != "" {
		status, ok := NormalizeStatus(v)
		if !ok {
			return invalidValue(et, workbook.FieldStatus, v)
		}
		t.Status = status
	}
	if v := mapping.Cell(row, workbook.FieldNotes); v != "" {
		t.Notes = v
	}
	return nil
}
