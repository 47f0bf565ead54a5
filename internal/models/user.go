package models

import (
	"time"
)

// User represents an application account
type User struct {
	Matricule    string    `json:"matricule" db:"matricule"`
	Username     string    `json:"username" db:"username"`
	FullName     string    `json:"full_name" db:"full_name"`
	Email        string    `json:"email,omitempty" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         string    `json:"role" db:"role"`
	Status       string    `json:"status" db:"status"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// ValidRoles defines allowed account roles
var ValidRoles = map[string]bool{
	"admin":   true,
	"manager": true,
	"user":    true,
}

// Credential carries a generated username/password pair. Passwords are only
// stored hashed, so this is the one place a generated password is visible.
type Credential struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
