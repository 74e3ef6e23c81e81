package models

import "encoding/json"

// Exact-match filters. A nil field means "no constraint"; listing with a
// zero-value filter returns every entity of that kind in insertion order.

type JobFilter struct {
	EmployerID *int64
	Title      *string
	Company    *string
	Location   *string
	Type       *string
	Salary     *string
}

// Matches reports whether the job satisfies every set filter field.
func (f JobFilter) Matches(j *Job) bool {
	if f.EmployerID != nil && j.EmployerID != *f.EmployerID {
		return false
	}
	if f.Title != nil && j.Title != *f.Title {
		return false
	}
	if f.Company != nil && j.Company != *f.Company {
		return false
	}
	if f.Location != nil && j.Location != *f.Location {
		return false
	}
	if f.Type != nil && j.Type != *f.Type {
		return false
	}
	if f.Salary != nil && j.Salary != *f.Salary {
		return false
	}
	return true
}

// Patch structs for partial updates. Only non-nil fields are applied; the
// store merges them shallowly. Immutable fields (ids, foreign keys,
// created_at) have no patch field, so callers cannot change them.

type UserPatch struct {
	Name       *string         `json:"name,omitempty"`
	Email      *string         `json:"email,omitempty"`
	Company    *string         `json:"company,omitempty"`
	Title      *string         `json:"title,omitempty"`
	Bio        *string         `json:"bio,omitempty"`
	Location   *string         `json:"location,omitempty"`
	Skills     *[]string       `json:"skills,omitempty"`
	Experience json.RawMessage `json:"experience,omitempty"`
}

type JobPatch struct {
	Title        *string   `json:"title,omitempty"`
	Company      *string   `json:"company,omitempty"`
	Location     *string   `json:"location,omitempty"`
	Description  *string   `json:"description,omitempty"`
	Requirements *[]string `json:"requirements,omitempty"`
	Type         *string   `json:"type,omitempty"`
	Salary       *string   `json:"salary,omitempty"`
}

type ApplicationPatch struct {
	Status      *string `json:"status,omitempty"`
	CoverLetter *string `json:"cover_letter,omitempty"`
}

type InterviewPatch struct {
	ScheduledFor *int64  `json:"scheduled_for,omitempty"`
	Duration     *int    `json:"duration,omitempty"`
	Status       *string `json:"status,omitempty"`
	RoomID       *string `json:"room_id,omitempty"`
	RecordingURL *string `json:"recording_url,omitempty"`
	Notes        *string `json:"notes,omitempty"`
}

// Apply merges the patch into u.
func (p UserPatch) Apply(u *User) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Company != nil {
		u.Company = *p.Company
	}
	if p.Title != nil {
		u.Title = *p.Title
	}
	if p.Bio != nil {
		u.Bio = *p.Bio
	}
	if p.Location != nil {
		u.Location = *p.Location
	}
	if p.Skills != nil {
		u.Skills = append([]string(nil), (*p.Skills)...)
	}
	if p.Experience != nil {
		u.Experience = append(json.RawMessage(nil), p.Experience...)
	}
}

// Apply merges the patch into j.
func (p JobPatch) Apply(j *Job) {
	if p.Title != nil {
		j.Title = *p.Title
	}
	if p.Company != nil {
		j.Company = *p.Company
	}
	if p.Location != nil {
		j.Location = *p.Location
	}
	if p.Description != nil {
		j.Description = *p.Description
	}
	if p.Requirements != nil {
		j.Requirements = append([]string(nil), (*p.Requirements)...)
	}
	if p.Type != nil {
		j.Type = *p.Type
	}
	if p.Salary != nil {
		j.Salary = *p.Salary
	}
}

// Apply merges the patch into a.
func (p ApplicationPatch) Apply(a *Application) {
	if p.Status != nil {
		a.Status = *p.Status
	}
	if p.CoverLetter != nil {
		a.CoverLetter = *p.CoverLetter
	}
}

// Apply merges the patch into iv.
func (p InterviewPatch) Apply(iv *Interview) {
	if p.ScheduledFor != nil {
		iv.ScheduledFor = *p.ScheduledFor
	}
	if p.Duration != nil {
		iv.Duration = *p.Duration
	}
	if p.Status != nil {
		iv.Status = *p.Status
	}
	if p.RoomID != nil {
		iv.RoomID = *p.RoomID
	}
	if p.RecordingURL != nil {
		iv.RecordingURL = *p.RecordingURL
	}
	if p.Notes != nil {
		iv.Notes = *p.Notes
	}
}
