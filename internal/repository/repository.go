package repository

import (
	"context"
	"errors"

	"github.com/SalimElheni1/quran-association-manager-sub001/internal/database"
	"github.com/SalimElheni1/quran-association-manager-sub001/internal/models"
)

// ErrRoleNotFound is returned when a user's role name does not resolve to an
// existing role. User creation is transactional, so this error guarantees no
// partial user row was left behind.
var ErrRoleNotFound = errors.New("role not found")

// StudentRepository defines the interface for student data operations
type StudentRepository interface {
	Create(ctx context.Context, s *models.Student) error
	Update(ctx context.Context, s *models.Student) error
	GetByMatricule(ctx context.Context, matricule string) (*models.Student, error)
	MaxMatriculeSeq(ctx context.Context) (int, error)
	Count(ctx context.Context) (int, error)
	StreamAll(ctx context.Context, callback func(*models.Student) error) error
}

// TeacherRepository defines the interface for teacher data operations
type TeacherRepository interface {
	Create(ctx context.Context, t *models.Teacher) error
	Update(ctx context.Context, t *models.Teacher) error
	GetByMatricule(ctx context.Context, matricule string) (*models.Teacher, error)
	NationalIDExists(ctx context.Context, nationalID string) (bool, error)
	MaxMatriculeSeq(ctx context.Context) (int, error)
	Count(ctx context.Context) (int, error)
	StreamAll(ctx context.Context, callback func(*models.Teacher) error) error
}

// UserRepository defines the interface for account data operations.
// CreateWithRole inserts the user row and its role assignment in a single
// transaction; on any failure (including an unresolvable role) nothing is
// persisted.
type UserRepository interface {
	CreateWithRole(ctx context.Context, u *models.User) error
	Update(ctx context.Context, u *models.User) error
	GetByMatricule(ctx context.Context, matricule string) (*models.User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	MaxMatriculeSeq(ctx context.Context) (int, error)
	Count(ctx context.Context) (int, error)
	StreamAll(ctx context.Context, callback func(*models.User) error) error
}

// ClassRepository defines the interface for class data operations
type ClassRepository interface {
	Create(ctx context.Context, c *models.Class) error
	Update(ctx context.Context, c *models.Class) error
	GetByName(ctx context.Context, name string) (*models.Class, error)
	Count(ctx context.Context) (int, error)
	StreamAll(ctx context.Context, callback func(*models.Class) error) error
}

// GroupRepository defines the interface for group data operations
type GroupRepository interface {
	Create(ctx context.Context, g *models.Group) error
	Update(ctx context.Context, g *models.Group) error
	GetByName(ctx context.Context, name string) (*models.Group, error)
	Count(ctx context.Context) (int, error)
	StreamAll(ctx context.Context, callback func(*models.Group) error) error
}

// AttendanceRepository defines the interface for attendance data operations.
// Upsert keys on (student, class, date) so re-importing a sheet overwrites
// the recorded status instead of duplicating rows.
type AttendanceRepository interface {
	Upsert(ctx context.Context, a *models.AttendanceRecord) error
	Count(ctx context.Context) (int, error)
	StreamAll(ctx context.Context, callback func(*models.AttendanceRecord) error) error
}

// TransactionRepository defines the interface for financial transaction data
type TransactionRepository interface {
	Create(ctx context.Context, t *models.Transaction) error
	Count(ctx context.Context) (int, error)
	StreamAll(ctx context.Context, callback func(*models.Transaction) error) error
}

// InventoryRepository defines the interface for inventory data operations
type InventoryRepository interface {
	Create(ctx context.Context, item *models.InventoryItem) error
	Update(ctx context.Context, item *models.InventoryItem) error
	GetByMatricule(ctx context.Context, matricule string) (*models.InventoryItem, error)
	NameExists(ctx context.Context, name string) (bool, error)
	MaxMatriculeSeq(ctx context.Context) (int, error)
	Count(ctx context.Context) (int, error)
	StreamAll(ctx context.Context, callback func(*models.InventoryItem) error) error
}

// JobRepository defines the interface for import job data operations
type JobRepository interface {
	Create(ctx context.Context, job *models.ImportJob) error
	Update(ctx context.Context, job *models.ImportJob) error
	GetByID(ctx context.Context, id string) (*models.ImportJob, error)
	GetPendingJobs(ctx context.Context) ([]*models.ImportJob, error)
	MarkJobAsProcessing(ctx context.Context, jobID string) (bool, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	Student     StudentRepository
	Teacher     TeacherRepository
	User        UserRepository
	Class       ClassRepository
	Group       GroupRepository
	Attendance  AttendanceRepository
	Transaction TransactionRepository
	Inventory   InventoryRepository
	Job         JobRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		Student:     NewStudentRepo(db),
		Teacher:     NewTeacherRepo(db),
		User:        NewUserRepo(db),
		Class:       NewClassRepo(db),
		Group:       NewGroupRepo(db),
		Attendance:  NewAttendanceRepo(db),
		Transaction: NewTransactionRepo(db),
		Inventory:   NewInventoryRepo(db),
		Job:         NewJobRepo(db),
	}
}
