package workbook_test

import (
	"strings"
	"testing"

	"github.com/SalimElheni1/quran-association-manager-sub001/internal/workbook"
)

func TestClassifyBySheetName(t *testing.T) {
	sheet := &workbook.Sheet{
		Name: "الطلاب",
		Rows: [][]string{
			{"الاسم واللقب", "الجنس", "تاريخ الميلاد"},
			{"أحمد بن صالح", "ذكر", "2010-05-01"},
		},
	}

	cls := workbook.Classify(sheet)
	if !cls.Recognized {
		t.Fatalf("sheet should be recognized: %s", cls.Message)
	}
	if cls.Type != workbook.EntityStudent {
		t.Errorf("expected student, got %s", cls.Type)
	}
	if cls.HeaderRow != 0 {
		t.Errorf("expected header at row 0, got %d", cls.HeaderRow)
	}
	if cls.DataStart != 1 {
		t.Errorf("expected data start 1, got %d", cls.DataStart)
	}
}

func TestClassifySkipsTitleRows(t *testing.T) {
	// A title banner and a blank row sit above the real header
	sheet := &workbook.Sheet{
		Name: "المعلمون",
		Rows: [][]string{
			{"سجل المعلمين - فرع تونس"},
			{},
			{"الاسم واللقب", "رقم بطاقة التعريف", "الهاتف"},
			{"سمير العياري", "09876543", "21698765432"},
		},
	}

	cls := workbook.Classify(sheet)
	if !cls.Recognized {
		t.Fatalf("sheet should be recognized: %s", cls.Message)
	}
	if cls.Type != workbook.EntityTeacher {
		t.Errorf("expected teacher, got %s", cls.Type)
	}
	if cls.HeaderRow != 2 {
		t.Errorf("expected header at row 2, got %d", cls.HeaderRow)
	}
}

func TestClassifySingleColumnSheet(t *testing.T) {
	// A recognized sheet name admits a one-column header
	sheet := &workbook.Sheet{
		Name: "المجموعات",
		Rows: [][]string{
			{"اسم المجموعة"},
			{"مجموعة الفجر"},
		},
	}

	cls := workbook.Classify(sheet)
	if !cls.Recognized {
		t.Fatalf("sheet should be recognized: %s", cls.Message)
	}
	if cls.Type != workbook.EntityGroup {
		t.Errorf("expected group, got %s", cls.Type)
	}
	if !cls.Mapping.Has(workbook.FieldName) {
		t.Error("name column should be mapped")
	}
}

func TestClassifyByContentWhenNameUnknown(t *testing.T) {
	sheet := &workbook.Sheet{
		Name: "Feuille1",
		Rows: [][]string{
			{"النوع", "الفئة", "المبلغ", "التاريخ"},
			{"دخل", "التبرعات النقدية", "100", "2024-01-01"},
		},
	}

	cls := workbook.Classify(sheet)
	if !cls.Recognized {
		t.Fatalf("sheet should be recognized by content: %s", cls.Message)
	}
	if cls.Type != workbook.EntityTransaction {
		t.Errorf("expected transaction, got %s", cls.Type)
	}
}

func TestClassifyContentNeedsTwoMatches(t *testing.T) {
	// One alias hit on an unknown sheet name is not enough
	sheet := &workbook.Sheet{
		Name: "Feuille1",
		Rows: [][]string{
			{"الاسم", "عمود غامض", "عمود آخر"},
			{"بيانات", "بيانات", "بيانات"},
		},
	}

	cls := workbook.Classify(sheet)
	if cls.Recognized {
		t.Fatalf("sheet should not be recognized, got %s", cls.Type)
	}
	if !strings.Contains(cls.Message, "غير معروف") {
		t.Errorf("message should say the sheet type is unknown, got %q", cls.Message)
	}
}

func TestClassifyHeaderBeyondScanWindow(t *testing.T) {
	// Header on the sixth row is out of the scan window
	sheet := &workbook.Sheet{
		Name: "الطلاب",
		Rows: [][]string{
			{"عنوان"}, {"عنوان"}, {"عنوان"}, {"عنوان"}, {"عنوان"},
			{"الاسم واللقب", "الجنس"},
			{"أحمد", "ذكر"},
		},
	}

	cls := workbook.Classify(sheet)
	if cls.Recognized {
		t.Fatal("header beyond the scan window should not be found")
	}
	if cls.Type != workbook.EntityStudent {
		t.Errorf("named sheet keeps its type even when unrecognized, got %q", cls.Type)
	}
	if !strings.Contains(cls.Message, "تعذر العثور على صف العناوين") {
		t.Errorf("message should report the missing header row, got %q", cls.Message)
	}
}

func TestClassifyEmptySheet(t *testing.T) {
	cls := workbook.Classify(&workbook.Sheet{Name: "الحضور"})
	if cls.Recognized {
		t.Fatal("empty sheet should not be recognized")
	}
}

func TestClassifyFrenchHeaders(t *testing.T) {
	sheet := &workbook.Sheet{
		Name: "eleves",
		Rows: [][]string{
			{"Nom et prénom", "Sexe", "Téléphone"},
			{"Yassine Trabelsi", "garçon", "21655555555"},
		},
	}

	cls := workbook.Classify(sheet)
	if !cls.Recognized {
		t.Fatalf("french sheet should be recognized: %s", cls.Message)
	}
	if cls.Type != workbook.EntityStudent {
		t.Errorf("expected student, got %s", cls.Type)
	}
	if !cls.Mapping.Has(workbook.FieldPhone) {
		t.Error("téléphone column should map to phone")
	}
}
