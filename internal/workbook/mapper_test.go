package workbook_test

import (
	"strings"
	"testing"

	"github.com/SalimElheni1/quran-association-manager-sub001/internal/workbook"
)

func TestMapColumns(t *testing.T) {
	header := []string{"الرقم التعريفي", "الاسم واللقب", "الجنس", "الهاتف", "ملاحظات"}

	mapping, warnings := workbook.MapColumns(header, workbook.EntityStudent)
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}

	expected := map[workbook.Field]int{
		workbook.FieldMatricule: 0,
		workbook.FieldName:      1,
		workbook.FieldGender:    2,
		workbook.FieldPhone:     3,
		workbook.FieldNotes:     4,
	}
	for f, idx := range expected {
		got, ok := mapping[f]
		if !ok {
			t.Errorf("field %s not mapped", f)
			continue
		}
		if got != idx {
			t.Errorf("field %s mapped to column %d, want %d", f, got, idx)
		}
	}
	if mapping.Has(workbook.FieldAddress) {
		t.Error("address should not be mapped")
	}
}

func TestMapColumnsAliasVariants(t *testing.T) {
	// Mixed languages and spelling variants in one header
	header := []string{"name", "Sexe", "رقم الهاتف", "تاريخ الميلاد"}

	mapping, _ := workbook.MapColumns(header, workbook.EntityStudent)
	for _, f := range []workbook.Field{
		workbook.FieldName, workbook.FieldGender,
		workbook.FieldPhone, workbook.FieldDateOfBirth,
	} {
		if !mapping.Has(f) {
			t.Errorf("field %s should be mapped", f)
		}
	}
}

func TestMapColumnsMissingRequiredWarns(t *testing.T) {
	// Transaction sheet without an amount column
	header := []string{"النوع", "الفئة", "التاريخ"}

	mapping, warnings := workbook.MapColumns(header, workbook.EntityTransaction)
	if mapping.Has(workbook.FieldAmount) {
		t.Error("amount should not be mapped")
	}
	if len(warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d: %v", len(warnings), warnings)
	}
	if !strings.Contains(warnings[0], "المبلغ") {
		t.Errorf("warning should name the missing column, got %q", warnings[0])
	}
}

func TestMapColumnsFirstMatchWins(t *testing.T) {
	// Duplicate name columns: the leftmost wins, deterministically
	header := []string{"الاسم", "الاسم الكامل"}

	for i := 0; i < 10; i++ {
		mapping, _ := workbook.MapColumns(header, workbook.EntityStudent)
		if got := mapping[workbook.FieldName]; got != 0 {
			t.Fatalf("iteration %d: name mapped to column %d, want 0", i, got)
		}
	}
}

func TestHasAnyRequired(t *testing.T) {
	mapping, _ := workbook.MapColumns([]string{"ملاحظات", "العنوان"}, workbook.EntityStudent)
	if workbook.HasAnyRequired(mapping, workbook.EntityStudent) {
		t.Error("mapping without name should report no required fields")
	}

	mapping, _ = workbook.MapColumns([]string{"الاسم"}, workbook.EntityStudent)
	if !workbook.HasAnyRequired(mapping, workbook.EntityStudent) {
		t.Error("mapping with name should report a required field")
	}
}

func TestCellHandlesShortRows(t *testing.T) {
	mapping, _ := workbook.MapColumns(
		[]string{"الاسم واللقب", "الجنس", "الهاتف"}, workbook.EntityStudent)

	row := []string{"فاطمة"}
	if got := mapping.Cell(row, workbook.FieldName); got != "فاطمة" {
		t.Errorf("Cell(name) = %q", got)
	}
	if got := mapping.Cell(row, workbook.FieldPhone); got != "" {
		t.Errorf("Cell beyond row length should be empty, got %q", got)
	}
	if got := mapping.Cell([]string{"  مريم  "}, workbook.FieldName); got != "مريم" {
		t.Errorf("Cell should trim, got %q", got)
	}
}
