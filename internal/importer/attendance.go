package importer

import (
	"context"

	"github.com/SalimElheni1/quran-association-manager-sub001/internal/models"
	"github.com/SalimElheni1/quran-association-manager-sub001/internal/workbook"
)

// processAttendanceRow records one attendance mark. The referenced student
// and class must already exist, either from before the batch or created by
// an earlier sheet in the same run.
func (imp *Importer) processAttendanceRow(ctx context.Context, row []string, mapping workbook.FieldMapping) (RowOutcome, error) {
	et := workbook.EntityAttendance

	studentMat := mapping.Cell(row, workbook.FieldStudentMatricule)
	if studentMat == "" {
		return failed(missingField(et, workbook.FieldStudentMatricule)), nil
	}
	student, err := imp.repos.Student.GetByMatricule(ctx, studentMat)
	if err != nil {
		return RowOutcome{}, err
	}
	if student == nil {
		return failed(notFound(workbook.FieldStudentMatricule, "الطالب", studentMat)), nil
	}

	className := mapping.Cell(row, workbook.FieldClassName)
	if className == "" {
		return failed(missingField(et, workbook.FieldClassName)), nil
	}
	class, err := imp.repos.Class.GetByName(ctx, className)
	if err != nil {
		return RowOutcome{}, err
	}
	if class == nil {
		return failed(notFound(workbook.FieldClassName, "الفصل", className)), nil
	}

	dateCell := mapping.Cell(row, workbook.FieldDate)
	if dateCell == "" {
		return failed(missingField(et, workbook.FieldDate)), nil
	}
	date, ok := parseDate(dateCell)
	if !ok {
		return failed(invalidValue(et, workbook.FieldDate, dateCell)), nil
	}

	statusCell := mapping.Cell(row, workbook.FieldStatus)
	if statusCell == "" {
		return failed(missingField(et, workbook.FieldStatus)), nil
	}
	status, ok := NormalizeAttendance(statusCell)
	if !ok {
		return failed(invalidValue(et, workbook.FieldStatus, statusCell)), nil
	}

	record := &models.AttendanceRecord{
		StudentMatricule: student.Matricule,
		ClassID:          class.ID,
		Date:             date,
		Status:           status,
	}
	if err := imp.repos.Attendance.Upsert(ctx, record); err != nil {
		return RowOutcome{}, err
	}
	return RowOutcome{Matricule: student.Matricule, Created: true}, nil
}
