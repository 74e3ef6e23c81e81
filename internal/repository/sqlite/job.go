package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/garnizeh/jobboard/internal/apperror"
	"github.com/garnizeh/jobboard/pkg/models"
)

const jobColumns = `id, employer_id, title, company, location, description, requirements, type, salary, created_at`

func (s *Store) CreateJob(ctx context.Context, j *models.Job) (*models.Job, error) {
	if j == nil {
		return nil, fmt.Errorf("job is nil")
	}

	requirements, err := encodeJSON(j.Requirements)
	if err != nil {
		return nil, s.storage("create job", err)
	}

	created := now()
	res, err := s.conn.Exec(ctx,
		`INSERT INTO jobs (employer_id, title, company, location, description, requirements, type, salary, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		j.EmployerID, j.Title, j.Company, j.Location, j.Description,
		requirements, j.Type, nullable(j.Salary), created)
	if err != nil {
		return nil, s.storage("create job", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, s.storage("create job", err)
	}

	out := *j
	out.ID = id
	out.CreatedAt = created
	return &out, nil
}

func (s *Store) GetJob(ctx context.Context, id int64) (*models.Job, error) {
	row := s.conn.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = ?`, id)

	j, err := scanJob(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, s.storage("get job", err)
	}

	return j, nil
}

func (s *Store) ListJobs(ctx context.Context, f models.JobFilter) ([]models.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs`
	var clauses []string
	var args []any

	if f.EmployerID != nil {
		clauses = append(clauses, "employer_id = ?")
		args = append(args, *f.EmployerID)
	}
	if f.Title != nil {
		clauses = append(clauses, "title = ?")
		args = append(args, *f.Title)
	}
	if f.Company != nil {
		clauses = append(clauses, "company = ?")
		args = append(args, *f.Company)
	}
	if f.Location != nil {
		clauses = append(clauses, "location = ?")
		args = append(args, *f.Location)
	}
	if f.Type != nil {
		clauses = append(clauses, "type = ?")
		args = append(args, *f.Type)
	}
	if f.Salary != nil {
		clauses = append(clauses, "salary = ?")
		args = append(args, *f.Salary)
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY id"

	rows, err := s.conn.QueryRows(ctx, query, args...)
	if err != nil {
		return nil, s.storage("list jobs", err)
	}
	defer rows.Close()

	out := []models.Job{}
	for rows.Next() {
		j, err := scanJob(rows.Scan)
		if err != nil {
			return nil, s.storage("list jobs", err)
		}
		out = append(out, *j)
	}
	if err := rows.Err(); err != nil {
		return nil, s.storage("list jobs", err)
	}

	return out, nil
}

func (s *Store) UpdateJob(ctx context.Context, id int64, patch models.JobPatch) (*models.Job, error) {
	j, err := s.GetJob(ctx, id)
	if err != nil {
		return nil, err
	}
	if j == nil {
		return nil, apperror.NotFound("job", id)
	}

	patch.Apply(j)

	requirements, err := encodeJSON(j.Requirements)
	if err != nil {
		return nil, s.storage("update job", err)
	}

	_, err = s.conn.Exec(ctx,
		`UPDATE jobs SET title = ?, company = ?, location = ?, description = ?, requirements = ?, type = ?, salary = ? WHERE id = ?`,
		j.Title, j.Company, j.Location, j.Description, requirements, j.Type, nullable(j.Salary), id)
	if err != nil {
		return nil, s.storage("update job", err)
	}

	return j, nil
}

func (s *Store) DeleteJob(ctx context.Context, id int64) error {
	// deleting an absent id is a no-op
	if _, err := s.conn.Exec(ctx, `DELETE FROM jobs WHERE id = ?`, id); err != nil {
		return s.storage("delete job", err)
	}
	return nil
}

func scanJob(scan func(dest ...any) error) (*models.Job, error) {
	var j models.Job
	var requirements, salary sql.NullString
	err := scan(&j.ID, &j.EmployerID, &j.Title, &j.Company, &j.Location,
		&j.Description, &requirements, &j.Type, &salary, &j.CreatedAt)
	if err != nil {
		return nil, err
	}

	if j.Requirements, err = decodeStrings(requirements); err != nil {
		return nil, err
	}
	j.Salary = fromNull(salary)

	return &j, nil
}
