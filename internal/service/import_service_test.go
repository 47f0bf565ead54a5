package service_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"github.com/SalimElheni1/quran-association-manager-sub001/internal/config"
	"github.com/SalimElheni1/quran-association-manager-sub001/internal/mocks"
	"github.com/SalimElheni1/quran-association-manager-sub001/internal/models"
	"github.com/SalimElheni1/quran-association-manager-sub001/internal/repository"
	"github.com/SalimElheni1/quran-association-manager-sub001/internal/service"
)

// writeTestWorkbook saves an xlsx file with the given sheets and returns
// its path.
func writeTestWorkbook(t *testing.T, sheets map[string][][]string) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	first := true
	for name, rows := range sheets {
		if first {
			f.SetSheetName("Sheet1", name)
			first = false
		} else {
			if _, err := f.NewSheet(name); err != nil {
				t.Fatalf("NewSheet: %v", err)
			}
		}
		for i, row := range rows {
			cell, _ := excelize.CoordinatesToCellName(1, i+1)
			if err := f.SetSheetRow(name, cell, &row); err != nil {
				t.Fatalf("SetSheetRow: %v", err)
			}
		}
	}

	path := filepath.Join(t.TempDir(), "import.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs: %v", err)
	}
	return path
}

func newTestServices(repos *repository.Repositories) *service.Services {
	return service.NewServices(repos, &config.Config{}, zerolog.Nop())
}

func TestCreateImportJobDefaultsToAllSheets(t *testing.T) {
	repos := mocks.NewRepositories()
	svcs := newTestServices(repos)

	path := writeTestWorkbook(t, map[string][][]string{
		"الطلاب": {
			{"الاسم واللقب"},
			{"أحمد"},
		},
	})

	job, err := svcs.Import.CreateImportJob(context.Background(), &models.ImportRequest{}, path)
	if err != nil {
		t.Fatalf("CreateImportJob failed: %v", err)
	}
	if job.ID == "" {
		t.Error("job should get an id")
	}
	if job.Status != models.JobStatusPending {
		t.Errorf("new jobs start pending, got %s", job.Status)
	}
	if len(job.Sheets) != 1 || job.Sheets[0] != "الطلاب" {
		t.Errorf("empty selection should queue every sheet, got %v", job.Sheets)
	}

	jobs := repos.Job.(*mocks.MockJobRepository)
	if jobs.Jobs[job.ID] == nil {
		t.Error("job should be persisted")
	}
}

func TestProcessImportCompletesJobWithReport(t *testing.T) {
	repos := mocks.NewRepositories()
	svcs := newTestServices(repos)
	ctx := context.Background()

	path := writeTestWorkbook(t, map[string][][]string{
		"الطلاب": {
			{"الاسم واللقب", "الجنس"},
			{"أحمد بن صالح", "ذكر"},
			{"مريم الزواوي", "أنثى"},
		},
	})

	job, err := svcs.Import.CreateImportJob(ctx, &models.ImportRequest{Sheets: []string{"الطلاب"}}, path)
	if err != nil {
		t.Fatalf("CreateImportJob failed: %v", err)
	}
	if err := svcs.Import.ProcessImport(ctx, job); err != nil {
		t.Fatalf("ProcessImport failed: %v", err)
	}

	stored := repos.Job.(*mocks.MockJobRepository).Jobs[job.ID]
	if stored.Status != models.JobStatusCompleted {
		t.Fatalf("expected completed, got %s (error: %s)", stored.Status, stored.Error)
	}
	if stored.Report == nil || stored.Report.SuccessCount != 2 {
		t.Errorf("report should record 2 imported rows, got %+v", stored.Report)
	}
	if stored.StartedAt == nil || stored.CompletedAt == nil {
		t.Error("timestamps should be set on completion")
	}

	students := repos.Student.(*mocks.MockStudentRepository)
	if len(students.Students) != 2 {
		t.Errorf("expected 2 students after processing, got %d", len(students.Students))
	}
}

func TestProcessImportMarksJobFailedOnMissingFile(t *testing.T) {
	repos := mocks.NewRepositories()
	svcs := newTestServices(repos)
	ctx := context.Background()

	job := &models.ImportJob{
		ID:       "job-1",
		Status:   models.JobStatusPending,
		FilePath: filepath.Join(t.TempDir(), "missing.xlsx"),
		Sheets:   []string{"الطلاب"},
	}
	repos.Job.Create(ctx, job)

	if err := svcs.Import.ProcessImport(ctx, job); err == nil {
		t.Fatal("expected an error for a missing file")
	}

	stored := repos.Job.(*mocks.MockJobRepository).Jobs[job.ID]
	if stored.Status != models.JobStatusFailed {
		t.Errorf("expected failed, got %s", stored.Status)
	}
	if stored.Error == "" {
		t.Error("failure reason should be recorded on the job")
	}
}

func TestExportTemplateListsEverySheet(t *testing.T) {
	repos := mocks.NewRepositories()
	svcs := newTestServices(repos)

	var buf bytes.Buffer
	if err := svcs.Export.WriteTemplate(&buf); err != nil {
		t.Fatalf("WriteTemplate failed: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("template is not a readable workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	for _, want := range []string{"الطلاب", "المعلمون", "المستخدمون", "الفصول", "المجموعات", "الحضور", "المعاملات المالية", "المخزون"} {
		found := false
		for _, got := range sheets {
			if got == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("template missing sheet %q (have %v)", want, sheets)
		}
	}
}

func TestExportedStudentsReimportCleanly(t *testing.T) {
	ctx := context.Background()

	source := mocks.NewRepositories()
	source.Student.Create(ctx, &models.Student{
		Matricule: "S-0001",
		Name:      "أحمد بن صالح",
		Gender:    models.GenderMale,
		Phone:     "21655001122",
		Status:    models.StatusActive,
	})

	var buf bytes.Buffer
	if err := newTestServices(source).Export.WriteWorkbook(ctx, &buf, []string{"students"}); err != nil {
		t.Fatalf("WriteWorkbook failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "roundtrip.xlsx")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	// A fresh database already holding the same student accepts the file
	target := mocks.NewRepositories()
	target.Student.Create(ctx, &models.Student{Matricule: "S-0001", Name: "قديم", Status: models.StatusActive})
	svcs := newTestServices(target)

	job, err := svcs.Import.CreateImportJob(ctx, &models.ImportRequest{}, path)
	if err != nil {
		t.Fatalf("CreateImportJob failed: %v", err)
	}
	if err := svcs.Import.ProcessImport(ctx, job); err != nil {
		t.Fatalf("ProcessImport failed: %v", err)
	}

	stored := target.Job.(*mocks.MockJobRepository).Jobs[job.ID]
	if stored.Report == nil || stored.Report.ErrorCount != 0 {
		t.Fatalf("round trip should import without errors: %+v", stored.Report)
	}

	updated := target.Student.(*mocks.MockStudentRepository).Students["S-0001"]
	if updated == nil || updated.Name != "أحمد بن صالح" {
		t.Errorf("round trip should overwrite by matricule, got %+v", updated)
	}
	if len(target.Student.(*mocks.MockStudentRepository).Students) != 1 {
		t.Error("round trip must not duplicate the student")
	}
}

func TestStreamEntityCSV(t *testing.T) {
	ctx := context.Background()
	repos := mocks.NewRepositories()
	repos.Student.Create(ctx, &models.Student{
		Matricule: "S-0001", Name: "أحمد", Status: models.StatusActive,
	})

	var buf bytes.Buffer
	if err := newTestServices(repos).Export.StreamEntity(ctx, &buf, "students", "csv"); err != nil {
		t.Fatalf("StreamEntity failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header plus one data line, got %d: %q", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "الاسم واللقب") {
		t.Errorf("header should use canonical labels, got %q", lines[0])
	}
	if !strings.Contains(lines[1], "S-0001") || !strings.Contains(lines[1], "أحمد") {
		t.Errorf("data line should carry the student, got %q", lines[1])
	}
}
