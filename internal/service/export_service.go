package service

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"github.com/SalimElheni1/quran-association-manager-sub001/internal/models"
	"github.com/SalimElheni1/quran-association-manager-sub001/internal/repository"
	"github.com/SalimElheni1/quran-association-manager-sub001/internal/workbook"
)

// exportService is the concrete implementation of ExportService
type exportService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

// newExportService creates a new ExportService
func newExportService(repos *repository.Repositories, log zerolog.Logger) *exportService {
	return &exportService{
		repos: repos,
		log:   log.With().Str("service", "export").Logger(),
	}
}

// exportEntities maps URL entity names to sheet entity types, in export order
var exportEntities = []struct {
	Name string
	Type workbook.EntityType
}{
	{"students", workbook.EntityStudent},
	{"teachers", workbook.EntityTeacher},
	{"users", workbook.EntityUser},
	{"classes", workbook.EntityClass},
	{"groups", workbook.EntityGroup},
	{"attendance", workbook.EntityAttendance},
	{"transactions", workbook.EntityTransaction},
	{"inventory", workbook.EntityInventory},
}

func entityType(name string) (workbook.EntityType, bool) {
	for _, e := range exportEntities {
		if e.Name == name {
			return e.Type, true
		}
	}
	return "", false
}

const exportDateLayout = "2006-01-02"

func fmtDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(exportDateLayout)
}

// StreamEntity streams one entity collection in the specified format
func (s *exportService) StreamEntity(ctx context.Context, w io.Writer, entity, format string) error {
	s.log.Info().Str("entity", entity).Str("format", format).Msg("Starting export")

	switch format {
	case "csv":
		return s.streamCSV(ctx, w, entity)
	case "json":
		return s.streamJSON(ctx, w, entity)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

func (s *exportService) streamCSV(ctx context.Context, w io.Writer, entity string) error {
	et, ok := entityType(entity)
	if !ok {
		return fmt.Errorf("unknown entity: %s", entity)
	}

	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write(entityHeader(et)); err != nil {
		return err
	}
	count := 0
	err := s.forEachRecord(ctx, et, func(_ interface{}, cells []string) error {
		count++
		return writer.Write(cells)
	})

	s.log.Info().Str("entity", entity).Int("count", count).Msg("Export completed")
	return err
}

func (s *exportService) streamJSON(ctx context.Context, w io.Writer, entity string) error {
	et, ok := entityType(entity)
	if !ok {
		return fmt.Errorf("unknown entity: %s", entity)
	}

	w.Write([]byte("["))
	first := true

	err := s.forEachRecord(ctx, et, func(record interface{}, _ []string) error {
		if !first {
			w.Write([]byte(","))
		}
		first = false

		data, err := json.Marshal(record)
		if err != nil {
			return err
		}
		w.Write(data)
		return nil
	})

	w.Write([]byte("]"))
	return err
}

// WriteWorkbook writes an XLSX file with one localized sheet per requested
// entity. The sheets it produces classify and import back unchanged.
func (s *exportService) WriteWorkbook(ctx context.Context, w io.Writer, entities []string) error {
	if len(entities) == 0 {
		for _, e := range exportEntities {
			entities = append(entities, e.Name)
		}
	}

	f := excelize.NewFile()
	defer f.Close()

	for _, entity := range entities {
		et, ok := entityType(entity)
		if !ok {
			return fmt.Errorf("unknown entity: %s", entity)
		}
		sheetName := workbook.SheetLabel(et)
		if _, err := f.NewSheet(sheetName); err != nil {
			return err
		}
		if err := setRow(f, sheetName, 1, entityHeader(et)); err != nil {
			return err
		}

		rowNum := 1
		err := s.forEachRecord(ctx, et, func(_ interface{}, cells []string) error {
			rowNum++
			return setRow(f, sheetName, rowNum, cells)
		})
		if err != nil {
			return err
		}
		s.log.Info().Str("entity", entity).Int("rows", rowNum-1).Msg("Sheet written")
	}

	// Drop the default sheet excelize creates
	f.DeleteSheet("Sheet1")

	return f.Write(w)
}

// WriteTemplate writes an empty XLSX workbook carrying one sheet per entity
// with the localized header row filled in, ready to be completed and imported.
func (s *exportService) WriteTemplate(w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	for _, e := range exportEntities {
		sheetName := workbook.SheetLabel(e.Type)
		if _, err := f.NewSheet(sheetName); err != nil {
			return err
		}
		if err := setRow(f, sheetName, 1, entityHeader(e.Type)); err != nil {
			return err
		}
	}
	f.DeleteSheet("Sheet1")

	return f.Write(w)
}

func setRow(f *excelize.File, sheet string, rowNum int, cells []string) error {
	addr, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	values := make([]interface{}, len(cells))
	for i, c := range cells {
		values[i] = c
	}
	return f.SetSheetRow(sheet, addr, &values)
}

// entityHeader returns the localized header labels in canonical field order
func entityHeader(et workbook.EntityType) []string {
	fields := workbook.Fields(et)
	header := make([]string, len(fields))
	for i, f := range fields {
		header[i] = workbook.Label(et, f)
	}
	return header
}

// forEachRecord streams every record of one entity, handing the callback the
// raw model and its cells in canonical field order.
func (s *exportService) forEachRecord(ctx context.Context, et workbook.EntityType, fn func(record interface{}, cells []string) error) error {
	switch et {
	case workbook.EntityStudent:
		return s.repos.Student.StreamAll(ctx, func(st *models.Student) error {
			return fn(st, []string{
				st.Matricule, st.Name, st.Gender, fmtDate(st.DateOfBirth),
				st.Phone, st.Address, st.GuardianName, st.GuardianPhone,
				fmtDate(st.EnrollmentDate), st.Status, st.Notes,
			})
		})
	case workbook.EntityTeacher:
		return s.repos.Teacher.StreamAll(ctx, func(t *models.Teacher) error {
			return fn(t, []string{
				t.Matricule, t.Name, t.Gender, t.NationalID, t.Phone,
				t.Email, t.Specialty, fmtDate(t.HireDate), t.Status, t.Notes,
			})
		})
	case workbook.EntityUser:
		return s.repos.User.StreamAll(ctx, func(u *models.User) error {
			return fn(u, []string{
				u.Matricule, u.Username, u.FullName, u.Email, u.Role, u.Status,
			})
		})
	case workbook.EntityClass:
		return s.repos.Class.StreamAll(ctx, func(c *models.Class) error {
			return fn(c, []string{
				c.Name, c.TeacherMatricule, c.Schedule,
				strconv.Itoa(c.Capacity), c.Status,
			})
		})
	case workbook.EntityGroup:
		return s.repos.Group.StreamAll(ctx, func(g *models.Group) error {
			return fn(g, []string{g.Name, g.Description, g.Status})
		})
	case workbook.EntityAttendance:
		// Attendance rows reference classes by name, so resolve IDs up front
		classNames := make(map[int64]string)
		err := s.repos.Class.StreamAll(ctx, func(c *models.Class) error {
			classNames[c.ID] = c.Name
			return nil
		})
		if err != nil {
			return err
		}
		return s.repos.Attendance.StreamAll(ctx, func(a *models.AttendanceRecord) error {
			return fn(a, []string{
				a.StudentMatricule, classNames[a.ClassID],
				a.Date.Format(exportDateLayout), a.Status,
			})
		})
	case workbook.EntityTransaction:
		return s.repos.Transaction.StreamAll(ctx, func(t *models.Transaction) error {
			return fn(t, []string{
				t.Type, t.Category, strconv.FormatFloat(t.Amount, 'f', 2, 64),
				t.Date.Format(exportDateLayout), t.PaymentMethod,
				t.Description, t.Reference,
			})
		})
	case workbook.EntityInventory:
		return s.repos.Inventory.StreamAll(ctx, func(item *models.InventoryItem) error {
			return fn(item, []string{
				item.Matricule, item.Name, item.Category,
				strconv.Itoa(item.Quantity), item.Condition,
				fmtDate(item.AcquisitionDate), item.Notes,
			})
		})
	default:
		return fmt.Errorf("unknown entity type: %s", et)
	}
}

// GetCount returns record count for an entity
func (s *exportService) GetCount(ctx context.Context, entity string) (int, error) {
	switch entity {
	case "students":
		return s.repos.Student.Count(ctx)
	case "teachers":
		return s.repos.Teacher.Count(ctx)
	case "users":
		return s.repos.User.Count(ctx)
	case "classes":
		return s.repos.Class.Count(ctx)
	case "groups":
		return s.repos.Group.Count(ctx)
	case "attendance":
		return s.repos.Attendance.Count(ctx)
	case "transactions":
		return s.repos.Transaction.Count(ctx)
	case "inventory":
		return s.repos.Inventory.Count(ctx)
	default:
		return 0, fmt.Errorf("unknown entity: %s", entity)
	}
}
