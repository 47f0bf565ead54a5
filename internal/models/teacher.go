package models

import (
	"time"
)

// Teacher represents a Quran teacher of the branch
type Teacher struct {
	Matricule  string     `json:"matricule" db:"matricule"`
	Name       string     `json:"name" db:"name"`
	Gender     string     `json:"gender,omitempty" db:"gender"`
	NationalID string     `json:"national_id,omitempty" db:"national_id"`
	Phone      string     `json:"phone,omitempty" db:"phone"`
	Email      string     `json:"email,omitempty" db:"email"`
	Specialty  string     `json:"specialty,omitempty" db:"specialty"`
	HireDate   *time.Time `json:"hire_date,omitempty" db:"hire_date"`
	Status     string     `json:"status" db:"status"`
	Notes      string     `json:"notes,omitempty" db:"notes"`
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at" db:"updated_at"`
}
