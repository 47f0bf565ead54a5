package models

import (
	"time"
)

// AttendanceRecord marks a student's presence in a class session
type AttendanceRecord struct {
	ID               int64     `json:"id" db:"id"`
	StudentMatricule string    `json:"student_matricule" db:"student_matricule"`
	ClassID          int64     `json:"class_id" db:"class_id"`
	Date             time.Time `json:"date" db:"date"`
	Status           string    `json:"status" db:"status"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
}

// Canonical attendance statuses
const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
	AttendanceLate    = "late"
	AttendanceExcused = "excused"
)

// ValidAttendanceStatuses defines allowed attendance statuses
var ValidAttendanceStatuses = map[string]bool{
	AttendancePresent: true,
	AttendanceAbsent:  true,
	AttendanceLate:    true,
	AttendanceExcused: true,
}
