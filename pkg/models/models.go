package models

import "encoding/json"

// Domain models matching the database schema in db/migrations/0001_init.sql.
// Timestamps are Unix milliseconds (UTC).

// User roles.
const (
	RoleEmployer  = "employer"
	RoleJobseeker = "jobseeker"
)

// Job types.
const (
	JobTypeFullTime   = "Full-time"
	JobTypePartTime   = "Part-time"
	JobTypeContract   = "Contract"
	JobTypeInternship = "Internship"
)

// Application statuses.
const (
	ApplicationPending  = "pending"
	ApplicationReviewed = "reviewed"
	ApplicationAccepted = "accepted"
	ApplicationRejected = "rejected"
)

// Interview statuses.
const (
	InterviewScheduled = "scheduled"
	InterviewCompleted = "completed"
	InterviewCancelled = "cancelled"
)

type User struct {
	ID           int64           `json:"id" db:"id"`
	Username     string          `json:"username" db:"username"`
	PasswordHash string          `json:"-" db:"password_hash"`
	Role         string          `json:"role" db:"role"`
	Name         string          `json:"name,omitempty" db:"name"`
	Email        string          `json:"email,omitempty" db:"email"`
	Company      string          `json:"company,omitempty" db:"company"`
	Title        string          `json:"title,omitempty" db:"title"`
	Bio          string          `json:"bio,omitempty" db:"bio"`
	Location     string          `json:"location,omitempty" db:"location"`
	Skills       []string        `json:"skills,omitempty" db:"skills"`
	Experience   json.RawMessage `json:"experience,omitempty" db:"experience"`
	CreatedAt    int64           `json:"created_at" db:"created_at"`
}

type Job struct {
	ID           int64    `json:"id" db:"id"`
	EmployerID   int64    `json:"employer_id" db:"employer_id"`
	Title        string   `json:"title" db:"title"`
	Company      string   `json:"company" db:"company"`
	Location     string   `json:"location" db:"location"`
	Description  string   `json:"description" db:"description"`
	Requirements []string `json:"requirements,omitempty" db:"requirements"`
	Type         string   `json:"type" db:"type"`
	Salary       string   `json:"salary,omitempty" db:"salary"`
	CreatedAt    int64    `json:"created_at" db:"created_at"`
}

type Application struct {
	ID          int64  `json:"id" db:"id"`
	JobID       int64  `json:"job_id" db:"job_id"`
	UserID      int64  `json:"user_id" db:"user_id"`
	Status      string `json:"status" db:"status"`
	CoverLetter string `json:"cover_letter,omitempty" db:"cover_letter"`
	CreatedAt   int64  `json:"created_at" db:"created_at"`
}

type Interview struct {
	ID            int64  `json:"id" db:"id"`
	ApplicationID int64  `json:"application_id" db:"application_id"`
	ScheduledFor  int64  `json:"scheduled_for" db:"scheduled_for"`
	Duration      int    `json:"duration" db:"duration"`
	Status        string `json:"status" db:"status"`
	RoomID        string `json:"room_id" db:"room_id"`
	RecordingURL  string `json:"recording_url,omitempty" db:"recording_url"`
	Notes         string `json:"notes,omitempty" db:"notes"`
	CreatedAt     int64  `json:"created_at" db:"created_at"`
}

// Principal is the authenticated caller as extracted from the JWT.
type Principal struct {
	ID   int64
	Role string
}

// ValidJobType reports whether t is one of the supported job types.
func ValidJobType(t string) bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeInternship:
		return true
	}
	return false
}
