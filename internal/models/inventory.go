package models

import (
	"time"
)

// InventoryItem represents a tracked physical asset of the branch
type InventoryItem struct {
	Matricule       string     `json:"matricule" db:"matricule"`
	Name            string     `json:"name" db:"name"`
	Category        string     `json:"category,omitempty" db:"category"`
	Quantity        int        `json:"quantity" db:"quantity"`
	Condition       string     `json:"condition,omitempty" db:"condition"`
	AcquisitionDate *time.Time `json:"acquisition_date,omitempty" db:"acquisition_date"`
	Notes           string     `json:"notes,omitempty" db:"notes"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at" db:"updated_at"`
}
