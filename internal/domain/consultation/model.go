package consultation

import (
	"time"

	"github.com/google/uuid"
)

// Status values a consultation can be in.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

var validStatuses = map[string]bool{
	StatusPending:   true,
	StatusConfirmed: true,
	StatusCompleted: true,
	StatusCancelled: true,
}

// ValidStatus reports whether s is a recognized consultation status.
func ValidStatus(s string) bool {
	return validStatuses[s]
}

// Consultation is a booked appointment with a doctor, optionally linked to the
// assessment that prompted it.
type Consultation struct {
	ID              uuid.UUID  `db:"id" json:"id"`
	UserID          string     `db:"user_id" json:"userId"`
	AssessmentID    *uuid.UUID `db:"assessment_id" json:"assessmentId,omitempty"`
	DoctorName      string     `db:"doctor_name" json:"doctorName"`
	DoctorSpecialty string     `db:"doctor_specialty" json:"doctorSpecialty"`
	ScheduledAt     time.Time  `db:"scheduled_at" json:"scheduledAt"`
	Status          string     `db:"status" json:"status"`
	Notes           *string    `db:"notes" json:"notes,omitempty"`
	CreatedAt       time.Time  `db:"created_at" json:"createdAt"`
}

// CreateInput is the request body for booking a consultation.
type CreateInput struct {
	DoctorName      string     `json:"doctorName"`
	DoctorSpecialty string     `json:"doctorSpecialty"`
	ScheduledAt     time.Time  `json:"scheduledAt"`
	AssessmentID    *uuid.UUID `json:"assessmentId"`
	Notes           string     `json:"notes"`
}

// StatusInput is the request body for updating a consultation's status.
type StatusInput struct {
	Status string `json:"status"`
}
