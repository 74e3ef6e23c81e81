package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/garnizeh/jobboard/internal/apperror"
	"github.com/garnizeh/jobboard/pkg/models"
)

const interviewColumns = `id, application_id, scheduled_for, duration, status, room_id, recording_url, notes, created_at`

func (s *Store) CreateInterview(ctx context.Context, iv *models.Interview) (*models.Interview, error) {
	if iv == nil {
		return nil, fmt.Errorf("interview is nil")
	}

	status := iv.Status
	if status == "" {
		status = models.InterviewScheduled
	}

	created := now()
	res, err := s.conn.Exec(ctx,
		`INSERT INTO interviews (application_id, scheduled_for, duration, status, room_id, recording_url, notes, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		iv.ApplicationID, iv.ScheduledFor, iv.Duration, status, iv.RoomID,
		nullable(iv.RecordingURL), nullable(iv.Notes), created)
	if err != nil {
		return nil, s.storage("create interview", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, s.storage("create interview", err)
	}

	out := *iv
	out.ID = id
	out.Status = status
	out.CreatedAt = created
	return &out, nil
}

func (s *Store) GetInterview(ctx context.Context, id int64) (*models.Interview, error) {
	row := s.conn.QueryRow(ctx, `SELECT `+interviewColumns+` FROM interviews WHERE id = ?`, id)

	iv, err := scanInterview(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, s.storage("get interview", err)
	}

	return iv, nil
}

func (s *Store) ListInterviewsByApplication(ctx context.Context, applicationID int64) ([]models.Interview, error) {
	rows, err := s.conn.QueryRows(ctx,
		`SELECT `+interviewColumns+` FROM interviews WHERE application_id = ? ORDER BY id`, applicationID)
	if err != nil {
		return nil, s.storage("list interviews", err)
	}
	defer rows.Close()

	var out []models.Interview
	for rows.Next() {
		iv, err := scanInterview(rows.Scan)
		if err != nil {
			return nil, s.storage("list interviews", err)
		}
		out = append(out, *iv)
	}
	if err := rows.Err(); err != nil {
		return nil, s.storage("list interviews", err)
	}

	return out, nil
}

func (s *Store) UpdateInterview(ctx context.Context, id int64, patch models.InterviewPatch) (*models.Interview, error) {
	iv, err := s.GetInterview(ctx, id)
	if err != nil {
		return nil, err
	}
	if iv == nil {
		return nil, apperror.NotFound("interview", id)
	}

	patch.Apply(iv)

	_, err = s.conn.Exec(ctx,
		`UPDATE interviews SET scheduled_for = ?, duration = ?, status = ?, room_id = ?, recording_url = ?, notes = ? WHERE id = ?`,
		iv.ScheduledFor, iv.Duration, iv.Status, iv.RoomID,
		nullable(iv.RecordingURL), nullable(iv.Notes), id)
	if err != nil {
		return nil, s.storage("update interview", err)
	}

	return iv, nil
}

func scanInterview(scan func(dest ...any) error) (*models.Interview, error) {
	var iv models.Interview
	var recordingURL, notes sql.NullString
	err := scan(&iv.ID, &iv.ApplicationID, &iv.ScheduledFor, &iv.Duration,
		&iv.Status, &iv.RoomID, &recordingURL, &notes, &iv.CreatedAt)
	if err != nil {
		return nil, err
	}
	iv.RecordingURL = fromNull(recordingURL)
	iv.Notes = fromNull(notes)
	return &iv, nil
}
