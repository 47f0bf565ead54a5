package importer

import (
	"context"

	"github.com/SalimElheni1/quran-association-manager-sub001/internal/models"
	"github.com/SalimElheni1/quran-association-manager-sub001/internal/workbook"
)

// processStudentRow validates one student row and creates or updates the
// matching record. A present matricule selects the update path and must
// resolve; an absent one triggers generation of a fresh matricule.
func (imp *Importer) processStudentRow(ctx context.Context, row []string, mapping workbook.FieldMapping) (RowOutcome, error) {
	et := workbook.EntityStudent
	matricule := mapping.Cell(row, workbook.FieldMatricule)

	if matricule != "" {
		existing, err := imp.repos.Student.GetByMatricule(ctx, matricule)
		if err != nil {
			return RowOutcome{}, err
		}
		if existing == nil {
			return failed(notFound(workbook.FieldMatricule, "الطالب", matricule)), nil
		}
		if rowErr := applyStudentRow(existing, row, mapping); rowErr != nil {
			return failed(rowErr), nil
		}
		if err := imp.repos.Student.Update(ctx, existing); err != nil {
			return RowOutcome{}, err
		}
		return RowOutcome{Matricule: matricule}, nil
	}

	student := &models.Student{Status: models.StatusActive}
	if rowErr := applyStudentRow(student, row, mapping); rowErr != nil {
		return failed(rowErr), nil
	}
	if student.Name == "" {
		return failed(missingField(et, workbook.FieldName)), nil
	}

	var err error
	student.Matricule, err = imp.nextMatricule(ctx, et)
	if err != nil {
		return RowOutcome{}, err
	}
	if err := imp.repos.Student.Create(ctx, student); err != nil {
		return RowOutcome{}, err
	}
	return RowOutcome{Matricule: student.Matricule, Created: true}, nil
}

// applyStudentRow overlays the row's mapped, non-empty cells onto the
// record. On updates the untouched fields keep their stored values.
func applyStudentRow(s *models.Student, row []string, mapping workbook.FieldMapping) *RowError {
	et := workbook.EntityStudent

	if v := mapping.Cell(row, workbook.FieldName); v != "" {
		s.Name = v
	}
	if v := mapping.Cell(row, workbook.FieldGender); v != "" {
		gender, ok := NormalizeGender(v)
		if !ok {
			return invalidValue(et, workbook.FieldGender, v)
		}
		s.Gender = gender
	}
	if v := mapping.Cell(row, workbook.FieldDateOfBirth); v != "" {
		d, ok := parseDate(v)
		if !ok {
			return invalidValue(et, workbook.FieldDateOfBirth, v)
		}
		s.DateOfBirth = &d
	}
	if v := mapping.Cell(row, workbook.FieldPhone); v != "" {
		s.Phone = workbook.NormalizeDigits(v)
	}
	if v := mapping.Cell(row, workbook.FieldAddress); v != "" {
		s.Address = v
	}
	if v := mapping.Cell(row, workbook.FieldGuardianName); v != "" {
		s.GuardianName = v
	}
	if v := mapping.Cell(row, workbook.FieldGuardianPhone); v != "" {
		s.GuardianPhone = workbook.NormalizeDigits(v)
	}
	if v := mapping.Cell(row, workbook.FieldEnrollmentDate); v != "" {
		d, ok := parseDate(v)
		if !ok {
			return invalidValue(et, workbook.FieldEnrollmentDate, v)
		}
		s.EnrollmentDate = &d
	}
	if v := mapping.Cell(row, workbook.FieldStatus); v != "" {
		status, ok := NormalizeStatus(v)
		if !ok {
			return invalidValue(et, workbook.FieldStatus, v)
		}
		s.Status = status
	}
	if v := mapping.Cell(row, workbook.FieldNotes); v != "" {
		s.Notes = v
	}
	return nil
}
