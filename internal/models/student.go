package models

import (
	"time"
)

// Student represents an enrolled student of the branch
type Student struct {
	Matricule      string     `json:"matricule" db:"matricule"`
	Name           string     `json:"name" db:"name"`
	Gender         string     `json:"gender,omitempty" db:"gender"`
	DateOfBirth    *time.Time `json:"date_of_birth,omitempty" db:"date_of_birth"`
	Phone          string     `json:"phone,omitempty" db:"phone"`
	Address        string     `json:"address,omitempty" db:"address"`
	GuardianName   string     `json:"guardian_name,omitempty" db:"guardian_name"`
	GuardianPhone  string     `json:"guardian_phone,omitempty" db:"guardian_phone"`
	EnrollmentDate *time.Time `json:"enrollment_date,omitempty" db:"enrollment_date"`
	Status         string     `json:"status" db:"status"`
	Notes          string     `json:"notes,omitempty" db:"notes"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at" db:"updated_at"`
}

// Canonical gender values
const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// Canonical record statuses shared by students, teachers, users, classes and groups
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)
