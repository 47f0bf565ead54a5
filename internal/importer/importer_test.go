package importer

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/SalimElheni1/quran-association-manager-sub001/internal/mocks"
	"github.com/SalimElheni1/quran-association-manager-sub001/internal/models"
	"github.com/SalimElheni1/quran-association-manager-sub001/internal/repository"
	"github.com/SalimElheni1/quran-association-manager-sub001/internal/workbook"
)

func newTestImporter() (*Importer, *repository.Repositories) {
	repos := mocks.NewRepositories()
	return New(repos, zerolog.Nop()), repos
}

func sheet(name string, rows ...[]string) workbook.Sheet {
	return workbook.Sheet{Name: name, Rows: rows}
}

func testWorkbook(sheets ...workbook.Sheet) *workbook.Workbook {
	return &workbook.Workbook{Sheets: sheets}
}

func TestImportStudentsCreate(t *testing.T) {
	imp, repos := newTestImporter()

	wb := testWorkbook(sheet("الطلاب",
		[]string{"الاسم واللقب", "الجنس", "تاريخ الميلاد", "الهاتف"},
		[]string{"أحمد بن صالح", "ذكر", "2010-05-01", "21655001122"},
		[]string{"مريم الزواوي", "أنثى", "٢٠١٢-٠٣-١٤", "٢١٦٥٥٣٣٤٤٥٥"},
	))

	report, err := imp.ImportWorkbook(context.Background(), wb, []string{"الطلاب"})
	if err != nil {
		t.Fatalf("ImportWorkbook failed: %v", err)
	}
	if report.SuccessCount != 2 {
		t.Errorf("expected 2 successes, got %d (errors: %v)", report.SuccessCount, report.Errors)
	}
	if report.ErrorCount != 0 {
		t.Errorf("expected 0 errors, got %d: %v", report.ErrorCount, report.Errors)
	}

	students := repos.Student.(*mocks.MockStudentRepository)
	first := students.Students["S-0001"]
	if first == nil {
		t.Fatal("first student should get matricule S-0001")
	}
	if first.Name != "أحمد بن صالح" {
		t.Errorf("unexpected name %q", first.Name)
	}
	if first.Gender != models.GenderMale {
		t.Errorf("gender should normalize to male, got %q", first.Gender)
	}
	if first.Status != models.StatusActive {
		t.Errorf("new students default to active, got %q", first.Status)
	}
	if first.DateOfBirth == nil || first.DateOfBirth.Format("2006-01-02") != "2010-05-01" {
		t.Errorf("unexpected date of birth %v", first.DateOfBirth)
	}

	// Second row used Arabic-Indic digits throughout
	second := students.Students["S-0002"]
	if second == nil {
		t.Fatal("second student should get matricule S-0002")
	}
	if second.Phone != "21655334455" {
		t.Errorf("phone digits should be normalized, got %q", second.Phone)
	}
	if second.DateOfBirth == nil || second.DateOfBirth.Format("2006-01-02") != "2012-03-14" {
		t.Errorf("arabic-indic date should parse, got %v", second.DateOfBirth)
	}
}

func TestImportStudentUpdatePreservesUntouchedFields(t *testing.T) {
	imp, repos := newTestImporter()
	students := repos.Student.(*mocks.MockStudentRepository)
	students.Create(context.Background(), &models.Student{
		Matricule: "S-0007",
		Name:      "خالد المنصوري",
		Phone:     "21650000000",
		Address:   "نهج القيروان",
		Status:    models.StatusActive,
	})

	wb := testWorkbook(sheet("الطلاب",
		[]string{"الرقم التعريفي", "الاسم واللقب", "الهاتف"},
		[]string{"S-0007", "", "21651111111"},
	))

	report, err := imp.ImportWorkbook(context.Background(), wb, []string{"الطلاب"})
	if err != nil {
		t.Fatalf("ImportWorkbook failed: %v", err)
	}
	if report.SuccessCount != 1 || report.ErrorCount != 0 {
		t.Fatalf("unexpected report: %+v", report)
	}

	updated := students.Students["S-0007"]
	if updated.Phone != "21651111111" {
		t.Errorf("phone should be updated, got %q", updated.Phone)
	}
	if updated.Name != "خالد المنصوري" {
		t.Errorf("blank name cell must not clear the stored name, got %q", updated.Name)
	}
	if updated.Address != "نهج القيروان" {
		t.Errorf("unmapped address must survive, got %q", updated.Address)
	}
	if len(students.Students) != 1 {
		t.Errorf("update must not create a second record, have %d", len(students.Students))
	}
}

func TestImportStudentUnknownMatricule(t *testing.T) {
	imp, repos := newTestImporter()

	wb := testWorkbook(sheet("الطلاب",
		[]string{"الرقم التعريفي", "الاسم واللقب"},
		[]string{"S-9999", "طالب شبح"},
	))

	report, err := imp.ImportWorkbook(context.Background(), wb, []string{"الطلاب"})
	if err != nil {
		t.Fatalf("ImportWorkbook failed: %v", err)
	}
	if report.ErrorCount != 1 {
		t.Fatalf("expected 1 error, got %d", report.ErrorCount)
	}
	if !strings.Contains(report.Errors[0], "غير موجود") {
		t.Errorf("error should say the student was not found, got %q", report.Errors[0])
	}
	if !strings.Contains(report.Errors[0], "الصف 2") {
		t.Errorf("error should carry the 1-based row number, got %q", report.Errors[0])
	}

	students := repos.Student.(*mocks.MockStudentRepository)
	if len(students.Students) != 0 {
		t.Error("no student should be created from an unknown matricule")
	}
}

func TestImportUserCreatesCredential(t *testing.T) {
	imp, repos := newTestImporter()

	wb := testWorkbook(sheet("المستخدمون",
		[]string{"اسم المستخدم", "الاسم الكامل", "الدور"},
		[]string{"s.ayari", "سعاد العياري", "مدير"},
	))

	report, err := imp.ImportWorkbook(context.Background(), wb, []string{"المستخدمون"})
	if err != nil {
		t.Fatalf("ImportWorkbook failed: %v", err)
	}
	if report.SuccessCount != 1 {
		t.Fatalf("unexpected report: %+v", report)
	}
	if len(report.NewUsers) != 1 {
		t.Fatalf("expected 1 generated credential, got %d", len(report.NewUsers))
	}

	cred := report.NewUsers[0]
	if cred.Username != "s.ayari" {
		t.Errorf("unexpected credential username %q", cred.Username)
	}
	if len(cred.Password) != 12 {
		t.Errorf("expected a 12 character password, got %d", len(cred.Password))
	}

	users := repos.User.(*mocks.MockUserRepository)
	user := users.Users["U-0001"]
	if user == nil {
		t.Fatal("user should be created with matricule U-0001")
	}
	if user.Role != "admin" {
		t.Errorf("role should normalize to admin, got %q", user.Role)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(cred.Password)); err != nil {
		t.Error("stored hash must match the reported password")
	}
}

func TestImportUserDuplicateUsername(t *testing.T) {
	imp, repos := newTestImporter()
	users := repos.User.(*mocks.MockUserRepository)
	users.CreateWithRole(context.Background(), &models.User{
		Matricule: "U-0001", Username: "s.ayari", FullName: "سعاد", Role: "user",
	})

	wb := testWorkbook(sheet("المستخدمون",
		[]string{"اسم المستخدم", "الاسم الكامل", "الدور"},
		[]string{"s.ayari", "شخص آخر", "مستخدم"},
	))

	report, err := imp.ImportWorkbook(context.Background(), wb, []string{"المستخدمون"})
	if err != nil {
		t.Fatalf("ImportWorkbook failed: %v", err)
	}
	if report.ErrorCount != 1 {
		t.Fatalf("expected 1 error, got %+v", report)
	}
	if !strings.Contains(report.Errors[0], "مستعمل مسبقا") {
		t.Errorf("error should report the duplicate username, got %q", report.Errors[0])
	}
	if len(users.Users) != 1 {
		t.Error("duplicate username must not create a second account")
	}
}

func TestImportUserInvalidRole(t *testing.T) {
	imp, repos := newTestImporter()

	wb := testWorkbook(sheet("المستخدمون",
		[]string{"اسم المستخدم", "الاسم الكامل", "الدور"},
		[]string{"k.riahi", "كمال الرياحي", "سباك"},
	))

	report, err := imp.ImportWorkbook(context.Background(), wb, []string{"المستخدمون"})
	if err != nil {
		t.Fatalf("ImportWorkbook failed: %v", err)
	}
	if report.ErrorCount != 1 {
		t.Fatalf("expected 1 error, got %+v", report)
	}

	// Rejected before any write: no account and no credential
	users := repos.User.(*mocks.MockUserRepository)
	if len(users.Users) != 0 {
		t.Error("invalid role must leave no user behind")
	}
	if len(report.NewUsers) != 0 {
		t.Error("no credential should be reported for a failed row")
	}
}

func TestImportTeacherDuplicateNationalID(t *testing.T) {
	imp, repos := newTestImporter()
	teachers := repos.Teacher.(*mocks.MockTeacherRepository)
	teachers.Create(context.Background(), &models.Teacher{
		Matricule: "T-0001", Name: "سمير", NationalID: "09876543",
	})

	wb := testWorkbook(sheet("المعلمون",
		[]string{"الاسم واللقب", "رقم بطاقة التعريف"},
		[]string{"معلم جديد", "09876543"},
	))

	report, err := imp.ImportWorkbook(context.Background(), wb, []string{"المعلمون"})
	if err != nil {
		t.Fatalf("ImportWorkbook failed: %v", err)
	}
	if report.ErrorCount != 1 {
		t.Fatalf("expected 1 error, got %+v", report)
	}
	if !strings.Contains(report.Errors[0], "مستعمل من قبل معلم آخر") {
		t.Errorf("error should report the duplicate national id, got %q", report.Errors[0])
	}
	if len(teachers.Teachers) != 1 {
		t.Error("duplicate national id must not create a teacher")
	}
}

func TestImportClassReferencesTeacherFromSameBatch(t *testing.T) {
	imp, repos := newTestImporter()

	// Teachers sheet precedes classes in the selection; the class row
	// references the matricule issued moments earlier.
	wb := testWorkbook(
		sheet("المعلمون",
			[]string{"الاسم واللقب"},
			[]string{"سمير العياري"},
		),
		sheet("الفصول",
			[]string{"اسم الفصل", "معرف المعلم", "الطاقة الاستيعابية"},
			[]string{"حلقة الفجر", "T-0001", "25"},
		),
	)

	report, err := imp.ImportWorkbook(context.Background(), wb, []string{"المعلمون", "الفصول"})
	if err != nil {
		t.Fatalf("ImportWorkbook failed: %v", err)
	}
	if report.SuccessCount != 2 || report.ErrorCount != 0 {
		t.Fatalf("unexpected report: %+v", report)
	}

	classes := repos.Class.(*mocks.MockClassRepository)
	class := classes.Classes["حلقة الفجر"]
	if class == nil {
		t.Fatal("class should be created")
	}
	if class.TeacherMatricule != "T-0001" {
		t.Errorf("class should reference the batch-created teacher, got %q", class.TeacherMatricule)
	}
	if class.Capacity != 25 {
		t.Errorf("unexpected capacity %d", class.Capacity)
	}
}

func TestImportClassUnknownTeacher(t *testing.T) {
	imp, repos := newTestImporter()

	wb := testWorkbook(sheet("الفصول",
		[]string{"اسم الفصل", "معرف المعلم"},
		[]string{"حلقة العصر", "T-0042"},
	))

	report, err := imp.ImportWorkbook(context.Background(), wb, []string{"الفصول"})
	if err != nil {
		t.Fatalf("ImportWorkbook failed: %v", err)
	}
	if report.ErrorCount != 1 {
		t.Fatalf("expected 1 error, got %+v", report)
	}
	if !strings.Contains(report.Errors[0], "غير موجود") {
		t.Errorf("error should say the teacher was not found, got %q", report.Errors[0])
	}

	classes := repos.Class.(*mocks.MockClassRepository)
	if len(classes.Classes) != 0 {
		t.Error("class with a dangling teacher reference must not be created")
	}
}

func TestImportClassUpdatePreservesUntouchedFields(t *testing.T) {
	imp, repos := newTestImporter()
	classes := repos.Class.(*mocks.MockClassRepository)
	classes.Create(context.Background(), &models.Class{
		Name:             "حلقة الفجر",
		TeacherMatricule: "T-0001",
		Schedule:         "السبت صباحا",
		Capacity:         25,
		Status:           models.StatusInactive,
	})

	wb := testWorkbook(sheet("الفصول",
		[]string{"اسم الفصل", "الطاقة الاستيعابية"},
		[]string{"حلقة الفجر", "30"},
	))

	report, err := imp.ImportWorkbook(context.Background(), wb, []string{"الفصول"})
	if err != nil {
		t.Fatalf("ImportWorkbook failed: %v", err)
	}
	if report.SuccessCount != 1 || report.ErrorCount != 0 {
		t.Fatalf("unexpected report: %+v", report)
	}

	updated := classes.Classes["حلقة الفجر"]
	if updated.Capacity != 30 {
		t.Errorf("capacity should be updated, got %d", updated.Capacity)
	}
	if updated.Schedule != "السبت صباحا" {
		t.Errorf("unmapped schedule must survive, got %q", updated.Schedule)
	}
	if updated.Status != models.StatusInactive {
		t.Errorf("unmapped status must survive, got %q", updated.Status)
	}
	if updated.TeacherMatricule != "T-0001" {
		t.Errorf("unmapped teacher must survive, got %q", updated.TeacherMatricule)
	}
	if len(classes.Classes) != 1 {
		t.Errorf("update must not create a second class, have %d", len(classes.Classes))
	}
}

func TestImportGroupUpdatePreservesUntouchedFields(t *testing.T) {
	imp, repos := newTestImporter()
	groups := repos.Group.(*mocks.MockGroupRepository)
	groups.Create(context.Background(), &models.Group{
		Name:        "مجموعة الحفظ",
		Description: "حفظ الجزء الثلاثين",
		Status:      models.StatusInactive,
	})

	wb := testWorkbook(sheet("المجموعات",
		[]string{"اسم المجموعة"},
		[]string{"مجموعة الحفظ"},
	))

	report, err := imp.ImportWorkbook(context.Background(), wb, []string{"المجموعات"})
	if err != nil {
		t.Fatalf("ImportWorkbook failed: %v", err)
	}
	if report.SuccessCount != 1 || report.ErrorCount != 0 {
		t.Fatalf("unexpected report: %+v", report)
	}

	updated := groups.Groups["مجموعة الحفظ"]
	if updated.Description != "حفظ الجزء الثلاثين" {
		t.Errorf("unmapped description must survive, got %q", updated.Description)
	}
	if updated.Status != models.StatusInactive {
		t.Errorf("unmapped status must survive, got %q", updated.Status)
	}
}

func TestImportTransactionCashLimit(t *testing.T) {
	imp, repos := newTestImporter()

	wb := testWorkbook(sheet("المعاملات المالية",
		[]string{"النوع", "الفئة", "المبلغ", "التاريخ", "طريقة الدفع"},
		[]string{"دخل", "التبرعات النقدية", "750", "2024-01-10", "نقدي"},
		[]string{"دخل", "التبرعات النقدية", "750", "2024-01-10", "شيك"},
		[]string{"دخل", "التبرعات النقدية", "750", "2024-01-10", "تحويل"},
		[]string{"دخل", "التبرعات النقدية", "500", "2024-01-10", "نقدي"},
	))

	report, err := imp.ImportWorkbook(context.Background(), wb, []string{"المعاملات المالية"})
	if err != nil {
		t.Fatalf("ImportWorkbook failed: %v", err)
	}
	if report.SuccessCount != 3 {
		t.Errorf("check, transfer and 500-dinar cash rows should pass, got %d successes", report.SuccessCount)
	}
	if report.ErrorCount != 1 {
		t.Fatalf("only the 750-dinar cash row should fail, got %d errors: %v", report.ErrorCount, report.Errors)
	}
	if !strings.Contains(report.Errors[0], "شيك") {
		t.Errorf("cash-limit message should point at check or transfer, got %q", report.Errors[0])
	}

	transactions := repos.Transaction.(*mocks.MockTransactionRepository)
	if len(transactions.Transactions) != 3 {
		t.Errorf("expected 3 stored transactions, got %d", len(transactions.Transactions))
	}
}

func TestImportTransactionInvalidCategory(t *testing.T) {
	imp, _ := newTestImporter()

	// "رواتب" is an expense category, invalid for income
	wb := testWorkbook(sheet("المعاملات المالية",
		[]string{"النوع", "الفئة", "المبلغ", "التاريخ"},
		[]string{"دخل", "رواتب", "100", "2024-01-10"},
	))

	report, err := imp.ImportWorkbook(context.Background(), wb, []string{"المعاملات المالية"})
	if err != nil {
		t.Fatalf("ImportWorkbook failed: %v", err)
	}
	if report.ErrorCount != 1 {
		t.Fatalf("expected 1 error, got %+v", report)
	}
	if !strings.Contains(report.Errors[0], "غير صالحة لنوع المعاملة") {
		t.Errorf("error should name the type mismatch, got %q", report.Errors[0])
	}
}

func TestImportTransactionDefaultsToCash(t *testing.T) {
	imp, repos := newTestImporter()

	wb := testWorkbook(sheet("المعاملات المالية",
		[]string{"النوع", "الفئة", "المبلغ", "التاريخ"},
		[]string{"مصروف", "إيجار", "300", "2024-02-01"},
	))

	report, err := imp.ImportWorkbook(context.Background(), wb, []string{"المعاملات المالية"})
	if err != nil {
		t.Fatalf("ImportWorkbook failed: %v", err)
	}
	if report.SuccessCount != 1 {
		t.Fatalf("unexpected report: %+v", report)
	}

	transactions := repos.Transaction.(*mocks.MockTransactionRepository)
	tx := transactions.Transactions[0]
	if tx.PaymentMethod != models.PaymentCash {
		t.Errorf("blank payment method should default to cash, got %q", tx.PaymentMethod)
	}
	if tx.Type != models.TransactionExpense {
		t.Errorf("type should normalize to expense, got %q", tx.Type)
	}
}

func TestImportAttendanceUpsert(t *testing.T) {
	imp, repos := newTestImporter()
	ctx := context.Background()

	repos.Student.(*mocks.MockStudentRepository).Create(ctx, &models.Student{
		Matricule: "S-0001", Name: "أحمد", Status: models.StatusActive,
	})
	repos.Class.(*mocks.MockClassRepository).Create(ctx, &models.Class{
		Name: "حلقة الفجر", TeacherMatricule: "T-0001", Status: models.StatusActive,
	})

	rows := sheet("الحضور",
		[]string{"معرف الطالب", "الفصل", "التاريخ", "الحالة"},
		[]string{"S-0001", "حلقة الفجر", "2024-03-01", "حاضر"},
	)
	if _, err := imp.ImportWorkbook(ctx, testWorkbook(rows), []string{"الحضور"}); err != nil {
		t.Fatalf("first import failed: %v", err)
	}

	// Same student, class and day with a corrected status
	corrected := sheet("الحضور",
		[]string{"معرف الطالب", "الفصل", "التاريخ", "الحالة"},
		[]string{"S-0001", "حلقة الفجر", "2024-03-01", "غائب"},
	)
	if _, err := imp.ImportWorkbook(ctx, testWorkbook(corrected), []string{"الحضور"}); err != nil {
		t.Fatalf("second import failed: %v", err)
	}

	attendance := repos.Attendance.(*mocks.MockAttendanceRepository)
	if n, _ := attendance.Count(ctx); n != 1 {
		t.Fatalf("re-import must overwrite, not duplicate; have %d records", n)
	}
	for _, rec := range attendance.Records {
		if rec.Status != models.AttendanceAbsent {
			t.Errorf("status should be overwritten to absent, got %q", rec.Status)
		}
		if !rec.Date.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("unexpected date %v", rec.Date)
		}
	}
}

func TestImportAttendanceUnknownStudent(t *testing.T) {
	imp, _ := newTestImporter()

	wb := testWorkbook(sheet("الحضور",
		[]string{"معرف الطالب", "الفصل", "التاريخ", "الحالة"},
		[]string{"S-0404", "حلقة الفجر", "2024-03-01", "حاضر"},
	))

	report, err := imp.ImportWorkbook(context.Background(), wb, []string{"الحضور"})
	if err != nil {
		t.Fatalf("ImportWorkbook failed: %v", err)
	}
	if report.ErrorCount != 1 {
		t.Fatalf("expected 1 error, got %+v", report)
	}
	if !strings.Contains(report.Errors[0], "غير موجود") {
		t.Errorf("error should say the student was not found, got %q", report.Errors[0])
	}
}

func TestImportInventoryDuplicateName(t *testing.T) {
	imp, repos := newTestImporter()
	items := repos.Inventory.(*mocks.MockInventoryRepository)
	items.Create(context.Background(), &models.InventoryItem{
		Matricule: "INV-0001", Name: "مصحف كبير", Quantity: 10,
	})

	wb := testWorkbook(sheet("المخزون",
		[]string{"اسم العنصر", "الكمية"},
		[]string{"مصحف كبير", "5"},
		[]string{"مصحف صغير", "20"},
	))

	report, err := imp.ImportWorkbook(context.Background(), wb, []string{"المخزون"})
	if err != nil {
		t.Fatalf("ImportWorkbook failed: %v", err)
	}
	if report.SuccessCount != 1 {
		t.Errorf("the new item should import, got %d successes", report.SuccessCount)
	}
	if report.ErrorCount != 1 {
		t.Fatalf("the duplicate name should fail, got %+v", report)
	}
	if !strings.Contains(report.Errors[0], "موجود مسبقا") {
		t.Errorf("error should report the duplicate item, got %q", report.Errors[0])
	}
	if items.Items["INV-0002"] == nil {
		t.Error("the new item should receive the next inventory matricule")
	}
}

func TestImportInventoryNameMatchIsExact(t *testing.T) {
	imp, repos := newTestImporter()
	items := repos.Inventory.(*mocks.MockInventoryRepository)
	items.Create(context.Background(), &models.InventoryItem{
		Matricule: "INV-0001", Name: "كتاب", Quantity: 1,
	})

	// Different letter form: a distinct item, not a duplicate
	wb := testWorkbook(sheet("المخزون",
		[]string{"اسم العنصر"},
		[]string{"كِتاب"},
	))

	report, err := imp.ImportWorkbook(context.Background(), wb, []string{"المخزون"})
	if err != nil {
		t.Fatalf("ImportWorkbook failed: %v", err)
	}
	if report.SuccessCount != 1 || report.ErrorCount != 0 {
		t.Fatalf("variant spelling should import as a new item: %+v", report)
	}
	if len(items.Items) != 2 {
		t.Errorf("expected 2 distinct items, got %d", len(items.Items))
	}
}

func TestImportSkipsBlankRows(t *testing.T) {
	imp, _ := newTestImporter()

	wb := testWorkbook(sheet("الطلاب",
		[]string{"الاسم واللقب"},
		[]string{"أحمد"},
		[]string{},
		[]string{"", "", ""},
		[]string{"مريم"},
	))

	report, err := imp.ImportWorkbook(context.Background(), wb, []string{"الطلاب"})
	if err != nil {
		t.Fatalf("ImportWorkbook failed: %v", err)
	}
	if report.SuccessCount != 2 || report.ErrorCount != 0 {
		t.Fatalf("blank rows must be skipped silently: %+v", report)
	}
}

func TestImportUnrecognizedSheet(t *testing.T) {
	imp, _ := newTestImporter()

	wb := testWorkbook(sheet("ورقة غامضة",
		[]string{"عمود", "عمود آخر"},
		[]string{"بيانات", "بيانات"},
	))

	report, err := imp.ImportWorkbook(context.Background(), wb, []string{"ورقة غامضة"})
	if err != nil {
		t.Fatalf("ImportWorkbook failed: %v", err)
	}
	if report.ErrorCount != 1 {
		t.Fatalf("unrecognized sheet should count as one error: %+v", report)
	}
	if !strings.Contains(report.Errors[0], "غير معروف") {
		t.Errorf("error should say the sheet type is unknown, got %q", report.Errors[0])
	}
}

func TestImportMissingSheetWarns(t *testing.T) {
	imp, _ := newTestImporter()

	wb := testWorkbook(sheet("الطلاب",
		[]string{"الاسم واللقب"},
		[]string{"أحمد"},
	))

	report, err := imp.ImportWorkbook(context.Background(), wb, []string{"الطلاب", "المعلمون"})
	if err != nil {
		t.Fatalf("ImportWorkbook failed: %v", err)
	}
	if report.SuccessCount != 1 {
		t.Errorf("present sheet should still import, got %d", report.SuccessCount)
	}
	if len(report.Warnings) != 1 || !strings.Contains(report.Warnings[0], "غير موجودة في الملف") {
		t.Errorf("absent sheet should produce a warning, got %v", report.Warnings)
	}
}

func TestImportSheetWithoutRequiredColumns(t *testing.T) {
	imp, _ := newTestImporter()

	// Recognized by name, but no required column maps
	wb := testWorkbook(sheet("الفصول",
		[]string{"التوقيت"},
		[]string{"السبت صباحا"},
	))

	report, err := imp.ImportWorkbook(context.Background(), wb, []string{"الفصول"})
	if err != nil {
		t.Fatalf("ImportWorkbook failed: %v", err)
	}
	if report.ErrorCount != 1 {
		t.Fatalf("expected 1 error, got %+v", report)
	}
	if !strings.Contains(report.Errors[0], "تفتقد الأعمدة المطلوبة") {
		t.Errorf("error should report the missing required columns, got %q", report.Errors[0])
	}
}

func TestImportReportsPartialHeaderWarning(t *testing.T) {
	imp, _ := newTestImporter()

	// Users sheet with username but no role column: importable, warned,
	// and the row then fails on the missing role value
	wb := testWorkbook(sheet("المستخدمون",
		[]string{"اسم المستخدم", "الاسم الكامل"},
		[]string{"k.riahi", "كمال الرياحي"},
	))

	report, err := imp.ImportWorkbook(context.Background(), wb, []string{"المستخدمون"})
	if err != nil {
		t.Fatalf("ImportWorkbook failed: %v", err)
	}
	if len(report.Warnings) == 0 {
		t.Error("missing required column should produce a sheet warning")
	}
	if report.ErrorCount != 1 {
		t.Errorf("row without a role should fail, got %+v", report)
	}
}

func TestProcessRowFailureKinds(t *testing.T) {
	ctx := context.Background()

	t.Run("missing field", func(t *testing.T) {
		imp, _ := newTestImporter()
		mapping := workbook.FieldMapping{workbook.FieldName: 0}
		outcome, err := imp.processStudentRow(ctx, []string{""}, mapping)
		if err != nil {
			t.Fatal(err)
		}
		if outcome.Err == nil || outcome.Err.Kind != KindMissingField {
			t.Errorf("expected missing_field, got %+v", outcome.Err)
		}
	})

	t.Run("invalid value", func(t *testing.T) {
		imp, _ := newTestImporter()
		mapping := workbook.FieldMapping{workbook.FieldName: 0, workbook.FieldGender: 1}
		outcome, err := imp.processStudentRow(ctx, []string{"أحمد", "غير معروف"}, mapping)
		if err != nil {
			t.Fatal(err)
		}
		if outcome.Err == nil || outcome.Err.Kind != KindInvalidValue {
			t.Errorf("expected invalid_value, got %+v", outcome.Err)
		}
		if outcome.Err != nil && outcome.Err.Field != workbook.FieldGender {
			t.Errorf("failure should name the gender field, got %s", outcome.Err.Field)
		}
	})

	t.Run("not found", func(t *testing.T) {
		imp, _ := newTestImporter()
		mapping := workbook.FieldMapping{workbook.FieldMatricule: 0}
		outcome, err := imp.processStudentRow(ctx, []string{"S-0404"}, mapping)
		if err != nil {
			t.Fatal(err)
		}
		if outcome.Err == nil || outcome.Err.Kind != KindNotFound {
			t.Errorf("expected not_found, got %+v", outcome.Err)
		}
	})

	t.Run("rule violation", func(t *testing.T) {
		imp, _ := newTestImporter()
		mapping := workbook.FieldMapping{
			workbook.FieldType: 0, workbook.FieldCategory: 1,
			workbook.FieldAmount: 2, workbook.FieldDate: 3,
			workbook.FieldPaymentMethod: 4,
		}
		row := []string{"دخل", "أخرى", "600", "2024-01-01", "نقدي"}
		outcome, err := imp.processTransactionRow(ctx, row, mapping)
		if err != nil {
			t.Fatal(err)
		}
		if outcome.Err == nil || outcome.Err.Kind != KindRuleViolation {
			t.Errorf("expected rule_violation, got %+v", outcome.Err)
		}
	})
}
