package mocks

import (
	"context"
	"strconv"

	"github.com/SalimElheni1/quran-association-manager-sub001/internal/models"
	"github.com/SalimElheni1/quran-association-manager-sub001/internal/repository"
)

// matSeq extracts the numeric suffix of a matricule, 0 when absent
func matSeq(matricule string) int {
	i := len(matricule)
	for i > 0 && matricule[i-1] >= '0' && matricule[i-1] <= '9' {
		i--
	}
	n, _ := strconv.Atoi(matricule[i:])
	return n
}

// MockStudentRepository is an in-memory implementation of StudentRepository
type MockStudentRepository struct {
	Students    map[string]*models.Student
	Order       []string
	CreateError error
	UpdateCalls int
}

func NewMockStudentRepository() *MockStudentRepository {
	return &MockStudentRepository{Students: make(map[string]*models.Student)}
}

func (m *MockStudentRepository) Create(ctx context.Context, s *models.Student) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	m.Students[s.Matricule] = s
	m.Order = append(m.Order, s.Matricule)
	return nil
}

func (m *MockStudentRepository) Update(ctx context.Context, s *models.Student) error {
	m.UpdateCalls++
	m.Students[s.Matricule] = s
	return nil
}

func (m *MockStudentRepository) GetByMatricule(ctx context.Context, matricule string) (*models.Student, error) {
	return m.Students[matricule], nil
}

func (m *MockStudentRepository) MaxMatriculeSeq(ctx context.Context) (int, error) {
	max := 0
	for matricule := range m.Students {
		if n := matSeq(matricule); n > max {
			max = n
		}
	}
	return max, nil
}

func (m *MockStudentRepository) Count(ctx context.Context) (int, error) {
	return len(m.Students), nil
}

func (m *MockStudentRepository) StreamAll(ctx context.Context, callback func(*models.Student) error) error {
	for _, matricule := range m.Order {
		if err := callback(m.Students[matricule]); err != nil {
			return err
		}
	}
	return nil
}

// MockTeacherRepository is an in-memory implementation of TeacherRepository
type MockTeacherRepository struct {
	Teachers    map[string]*models.Teacher
	Order       []string
	CreateError error
}

func NewMockTeacherRepository() *MockTeacherRepository {
	return &MockTeacherRepository{Teachers: make(map[string]*models.Teacher)}
}

func (m *MockTeacherRepository) Create(ctx context.Context, t *models.Teacher) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	m.Teachers[t.Matricule] = t
	m.Order = append(m.Order, t.Matricule)
	return nil
}

func (m *MockTeacherRepository) Update(ctx context.Context, t *models.Teacher) error {
	m.Teachers[t.Matricule] = t
	return nil
}

func (m *MockTeacherRepository) GetByMatricule(ctx context.Context, matricule string) (*models.Teacher, error) {
	return m.Teachers[matricule], nil
}

func (m *MockTeacherRepository) NationalIDExists(ctx context.Context, nationalID string) (bool, error) {
	for _, t := range m.Teachers {
		if t.NationalID == nationalID {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockTeacherRepository) MaxMatriculeSeq(ctx context.Context) (int, error) {
	max := 0
	for matricule := range m.Teachers {
		if n := matSeq(matricule); n > max {
			max = n
		}
	}
	return max, nil
}

func (m *MockTeacherRepository) Count(ctx context.Context) (int, error) {
	return len(m.Teachers), nil
}

func (m *MockTeacherRepository) StreamAll(ctx context.Context, callback func(*models.Teacher) error) error {
	for _, matricule := range m.Order {
		if err := callback(m.Teachers[matricule]); err != nil {
			return err
		}
	}
	return nil
}

// MockUserRepository is an in-memory implementation of UserRepository.
// CreateWithRole mirrors the transactional behavior of the real store: an
// unknown role leaves no trace of the user.
type MockUserRepository struct {
	Users       map[string]*models.User
	Order       []string
	CreateError error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{Users: make(map[string]*models.User)}
}

func (m *MockUserRepository) CreateWithRole(ctx context.Context, u *models.User) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	if !models.ValidRoles[u.Role] {
		return repository.ErrRoleNotFound
	}
	m.Users[u.Matricule] = u
	m.Order = append(m.Order, u.Matricule)
	return nil
}

func (m *MockUserRepository) Update(ctx context.Context, u *models.User) error {
	m.Users[u.Matricule] = u
	return nil
}

func (m *MockUserRepository) GetByMatricule(ctx context.Context, matricule string) (*models.User, error) {
	return m.Users[matricule], nil
}

func (m *MockUserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	for _, u := range m.Users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockUserRepository) MaxMatriculeSeq(ctx context.Context) (int, error) {
	max := 0
	for matricule := range m.Users {
		if n := matSeq(matricule); n > max {
			max = n
		}
	}
	return max, nil
}

func (m *MockUserRepository) Count(ctx context.Context) (int, error) {
	return len(m.Users), nil
}

func (m *MockUserRepository) StreamAll(ctx context.Context, callback func(*models.User) error) error {
	for _, matricule := range m.Order {
		if err := callback(m.Users[matricule]); err != nil {
			return err
		}
	}
	return nil
}

// MockClassRepository is an in-memory implementation of ClassRepository
type MockClassRepository struct {
	Classes map[string]*models.Class
	Order   []string
	nextID  int64
}

func NewMockClassRepository() *MockClassRepository {
	return &MockClassRepository{Classes: make(map[string]*models.Class)}
}

func (m *MockClassRepository) Create(ctx context.Context, c *models.Class) error {
	m.nextID++
	c.ID = m.nextID
	m.Classes[c.Name] = c
	m.Order = append(m.Order, c.Name)
	return nil
}

func (m *MockClassRepository) Update(ctx context.Context, c *models.Class) error {
	m.Classes[c.Name] = c
	return nil
}

func (m *MockClassRepository) GetByName(ctx context.Context, name string) (*models.Class, error) {
	return m.Classes[name], nil
}

func (m *MockClassRepository) Count(ctx context.Context) (int, error) {
	return len(m.Classes), nil
}

func (m *MockClassRepository) StreamAll(ctx context.Context, callback func(*models.Class) error) error {
	for _, name := range m.Order {
		if err := callback(m.Classes[name]); err != nil {
			return err
		}
	}
	return nil
}

// MockGroupRepository is an in-memory implementation of GroupRepository
type MockGroupRepository struct {
	Groups map[string]*models.Group
	Order  []string
	nextID int64
}

func NewMockGroupRepository() *MockGroupRepository {
	return &MockGroupRepository{Groups: make(map[string]*models.Group)}
}

func (m *MockGroupRepository) Create(ctx context.Context, g *models.Group) error {
	m.nextID++
	g.ID = m.nextID
	m.Groups[g.Name] = g
	m.Order = append(m.Order, g.Name)
	return nil
}

func (m *MockGroupRepository) Update(ctx context.Context, g *models.Group) error {
	m.Groups[g.Name] = g
	return nil
}

func (m *MockGroupRepository) GetByName(ctx context.Context, name string) (*models.Group, error) {
	return m.Groups[name], nil
}

func (m *MockGroupRepository) Count(ctx context.Context) (int, error) {
	return len(m.Groups), nil
}

func (m *MockGroupRepository) StreamAll(ctx context.Context, callback func(*models.Group) error) error {
	for _, name := range m.Order {
		if err := callback(m.Groups[name]); err != nil {
			return err
		}
	}
	return nil
}

// MockAttendanceRepository is an in-memory implementation of AttendanceRepository
type MockAttendanceRepository struct {
	Records map[string]*models.AttendanceRecord
	Order   []string
}

func NewMockAttendanceRepository() *MockAttendanceRepository {
	return &MockAttendanceRepository{Records: make(map[string]*models.AttendanceRecord)}
}

func attendanceKey(a *models.AttendanceRecord) string {
	return a.StudentMatricule + "|" + strconv.FormatInt(a.ClassID, 10) + "|" + a.Date.Format("2006-01-02")
}

func (m *MockAttendanceRepository) Upsert(ctx context.Context, a *models.AttendanceRecord) error {
	key := attendanceKey(a)
	if _, exists := m.Records[key]; !exists {
		m.Order = append(m.Order, key)
	}
	m.Records[key] = a
	return nil
}

func (m *MockAttendanceRepository) Count(ctx context.Context) (int, error) {
	return len(m.Records), nil
}

func (m *MockAttendanceRepository) StreamAll(ctx context.Context, callback func(*models.AttendanceRecord) error) error {
	for _, key := range m.Order {
		if err := callback(m.Records[key]); err != nil {
			return err
		}
	}
	return nil
}

// MockTransactionRepository is an in-memory implementation of TransactionRepository
type MockTransactionRepository struct {
	Transactions []*models.Transaction
	nextID       int64
}

func NewMockTransactionRepository() *MockTransactionRepository {
	return &MockTransactionRepository{}
}

func (m *MockTransactionRepository) Create(ctx context.Context, t *models.Transaction) error {
	m.nextID++
	t.ID = m.nextID
	m.Transactions = append(m.Transactions, t)
	return nil
}

func (m *MockTransactionRepository) Count(ctx context.Context) (int, error) {
	return len(m.Transactions), nil
}

func (m *MockTransactionRepository) StreamAll(ctx context.Context, callback func(*models.Transaction) error) error {
	for _, t := range m.Transactions {
		if err := callback(t); err != nil {
			return err
		}
	}
	return nil
}

// MockInventoryRepository is an in-memory implementation of InventoryRepository
type MockInventoryRepository struct {
	Items map[string]*models.InventoryItem
	Order []string
}

func NewMockInventoryRepository() *MockInventoryRepository {
	return &MockInventoryRepository{Items: make(map[string]*models.InventoryItem)}
}

func (m *MockInventoryRepository) Create(ctx context.Context, item *models.InventoryItem) error {
	m.Items[item.Matricule] = item
	m.Order = append(m.Order, item.Matricule)
	return nil
}

func (m *MockInventoryRepository) Update(ctx context.Context, item *models.InventoryItem) error {
	m.Items[item.Matricule] = item
	return nil
}

func (m *MockInventoryRepository) GetByMatricule(ctx context.Context, matricule string) (*models.InventoryItem, error) {
	return m.Items[matricule], nil
}

func (m *MockInventoryRepository) NameExists(ctx context.Context, name string) (bool, error) {
	// Exact, case-sensitive comparison mirrors the real store
	for _, item := range m.Items {
		if item.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockInventoryRepository) MaxMatriculeSeq(ctx context.Context) (int, error) {
	max := 0
	for matricule := range m.Items {
		if n := matSeq(matricule); n > max {
			max = n
		}
	}
	return max, nil
}

func (m *MockInventoryRepository) Count(ctx context.Context) (int, error) {
	return len(m.Items), nil
}

func (m *MockInventoryRepository) StreamAll(ctx context.Context, callback func(*models.InventoryItem) error) error {
	for _, matricule := range m.Order {
		if err := callback(m.Items[matricule]); err != nil {
			return err
		}
	}
	return nil
}

// MockJobRepository is an in-memory implementation of JobRepository
type MockJobRepository struct {
	Jobs  map[string]*models.ImportJob
	Order []string
}

func NewMockJobRepository() *MockJobRepository {
	return &MockJobRepository{Jobs: make(map[string]*models.ImportJob)}
}

func (m *MockJobRepository) Create(ctx context.Context, job *models.ImportJob) error {
	m.Jobs[job.ID] = job
	m.Order = append(m.Order, job.ID)
	return nil
}

func (m *MockJobRepository) Update(ctx context.Context, job *models.ImportJob) error {
	m.Jobs[job.ID] = job
	return nil
}

func (m *MockJobRepository) GetByID(ctx context.Context, id string) (*models.ImportJob, error) {
	return m.Jobs[id], nil
}

func (m *MockJobRepository) GetPendingJobs(ctx context.Context) ([]*models.ImportJob, error) {
	var pending []*models.ImportJob
	for _, id := range m.Order {
		if job := m.Jobs[id]; job.Status == models.JobStatusPending {
			pending = append(pending, job)
		}
	}
	return pending, nil
}

func (m *MockJobRepository) MarkJobAsProcessing(ctx context.Context, jobID string) (bool, error) {
	job, exists := m.Jobs[jobID]
	if !exists || job.Status != models.JobStatusPending {
		return false, nil
	}
	job.Status = models.JobStatusProcessing
	return true, nil
}

// NewRepositories wires every mock into a repository aggregate for tests
func NewRepositories() *repository.Repositories {
	return &repository.Repositories{
		Student:     NewMockStudentRepository(),
		Teacher:     NewMockTeacherRepository(),
		User:        NewMockUserRepository(),
		Class:       NewMockClassRepository(),
		Group:       NewMockGroupRepository(),
		Attendance:  NewMockAttendanceRepository(),
		Transaction: NewMockTransactionRepository(),
		Inventory:   NewMockInventoryRepository(),
		Job:         NewMockJobRepository(),
	}
}
