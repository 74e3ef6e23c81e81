package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/garnizeh/jobboard/internal/apperror"
	"github.com/garnizeh/jobboard/pkg/models"
)

const applicationColumns = `id, job_id, user_id, status, cover_letter, created_at`

func (s *Store) CreateApplication(ctx context.Context, a *models.Application) (*models.Application, error) {
	if a == nil {
		return nil, fmt.Errorf("application is nil")
	}

	status := a.Status
	if status == "" {
		status = models.ApplicationPending
	}

	created := now()
	res, err := s.conn.Exec(ctx,
		`INSERT INTO applications (job_id, user_id, status, cover_letter, created_at) VALUES (?, ?, ?, ?, ?)`,
		a.JobID, a.UserID, status, nullable(a.CoverLetter), created)
	if err != nil {
		return nil, s.storage("create application", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, s.storage("create application", err)
	}

	out := *a
	out.ID = id
	out.Status = status
	out.CreatedAt = created
	return &out, nil
}

func (s *Store) GetApplication(ctx context.Context, id int64) (*models.Application, error) {
	row := s.conn.QueryRow(ctx, `SELECT `+applicationColumns+` FROM applications WHERE id = ?`, id)

	a, err := scanApplication(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, s.storage("get application", err)
	}

	return a, nil
}

func (s *Store) ListApplicationsByUser(ctx context.Context, userID int64) ([]models.Application, error) {
	return s.listApplications(ctx, `user_id`, userID)
}

func (s *Store) ListApplicationsByJob(ctx context.Context, jobID int64) ([]models.Application, error) {
	return s.listApplications(ctx, `job_id`, jobID)
}

func (s *Store) listApplications(ctx context.Context, column string, value int64) ([]models.Application, error) {
	rows, err := s.conn.QueryRows(ctx,
		`SELECT `+applicationColumns+` FROM applications WHERE `+column+` = ? ORDER BY id`, value)
	if err != nil {
		return nil, s.storage("list applications", err)
	}
	defer rows.Close()

	var out []models.Application
	for rows.Next() {
		a, err := scanApplication(rows.Scan)
		if err != nil {
			return nil, s.storage("list applications", err)
		}
		out = append(out, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, s.storage("list applications", err)
	}

	return out, nil
}

func (s *Store) UpdateApplication(ctx context.Context, id int64, patch models.ApplicationPatch) (*models.Application, error) {
	a, err := s.GetApplication(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, apperror.NotFound("application", id)
	}

	patch.Apply(a)

	_, err = s.conn.Exec(ctx,
		`UPDATE applications SET status = ?, cover_letter = ? WHERE id = ?`,
		a.Status, nullable(a.CoverLetter), id)
	if err != nil {
		return nil, s.storage("update application", err)
	}

	return a, nil
}

func scanApplication(scan func(dest ...any) error) (*models.Application, error) {
	var a models.Application
	var coverLetter sql.NullString
	if err := scan(&a.ID, &a.JobID, &a.UserID, &a.Status, &coverLetter, &a.CreatedAt); err != nil {
		return nil, err
	}
	a.CoverLetter = fromNull(coverLetter)
	return &a, nil
}
