package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/garnizeh/jobboard/internal/apperror"
	"github.com/garnizeh/jobboard/pkg/models"
)

const userColumns = `id, username, password_hash, role, name, email, company, title, bio, location, skills, experience, created_at`

func (s *Store) CreateUser(ctx context.Context, u *models.User) (*models.User, error) {
	if u == nil {
		return nil, fmt.Errorf("user is nil")
	}

	skills, err := encodeJSON(u.Skills)
	if err != nil {
		return nil, s.storage("create user", err)
	}
	experience, err := encodeJSON(u.Experience)
	if err != nil {
		return nil, s.storage("create user", err)
	}

	created := now()
	res, err := s.conn.Exec(ctx,
		`INSERT INTO users (username, password_hash, role, name, email, company, title, bio, location, skills, experience, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.Username, u.PasswordHash, u.Role,
		nullable(u.Name), nullable(u.Email), nullable(u.Company), nullable(u.Title),
		nullable(u.Bio), nullable(u.Location), skills, experience, created)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperror.Conflict("username already taken")
		}
		return nil, s.storage("create user", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, s.storage("create user", err)
	}

	out := *u
	out.ID = id
	out.CreatedAt = created
	return &out, nil
}

func (s *Store) GetUser(ctx context.Context, id int64) (*models.User, error) {
	row := s.conn.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return s.scanUser(row)
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	row := s.conn.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE username = ?`, username)
	return s.scanUser(row)
}

func (s *Store) UpdateUser(ctx context.Context, id int64, patch models.UserPatch) (*models.User, error) {
	u, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperror.NotFound("user", id)
	}

	patch.Apply(u)

	skills, err := encodeJSON(u.Skills)
	if err != nil {
		return nil, s.storage("update user", err)
	}
	experience, err := encodeJSON(u.Experience)
	if err != nil {
		return nil, s.storage("update user", err)
	}

	_, err = s.conn.Exec(ctx,
		`UPDATE users SET name = ?, email = ?, company = ?, title = ?, bio = ?, location = ?, skills = ?, experience = ? WHERE id = ?`,
		nullable(u.Name), nullable(u.Email), nullable(u.Company), nullable(u.Title),
		nullable(u.Bio), nullable(u.Location), skills, experience, id)
	if err != nil {
		return nil, s.storage("update user", err)
	}

	return u, nil
}

func (s *Store) scanUser(row *sql.Row) (*models.User, error) {
	var u models.User
	var name, email, company, title, bio, location, skills, experience sql.NullString
	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role,
		&name, &email, &company, &title, &bio, &location, &skills, &experience, &u.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, s.storage("scan user", err)
	}

	u.Name = fromNull(name)
	u.Email = fromNull(email)
	u.Company = fromNull(company)
	u.Title = fromNull(title)
	u.Bio = fromNull(bio)
	u.Location = fromNull(location)

	if u.Skills, err = decodeStrings(skills); err != nil {
		return nil, s.storage("scan user", err)
	}
	if experience.Valid {
		u.Experience = json.RawMessage(experience.String)
	}

	return &u, nil
}
