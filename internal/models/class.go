package models

import (
	"time"
)

// Class represents a teaching circle led by a single teacher
type Class struct {
	ID               int64     `json:"id" db:"id"`
	Name             string    `json:"name" db:"name"`
	TeacherMatricule string    `json:"teacher_matricule" db:"teacher_matricule"`
	Schedule         string    `json:"schedule,omitempty" db:"schedule"`
	Capacity         int       `json:"capacity,omitempty" db:"capacity"`
	Status           string    `json:"status" db:"status"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" db:"updated_at"`
}

// Group represents a student grouping independent of class assignment
type Group struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description,omitempty" db:"description"`
	Status      string    `json:"status" db:"status"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}
