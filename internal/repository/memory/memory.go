package memory

import (
	"context"
	"sync"
	"time"

	"github.com/garnizeh/jobboard/internal/apperror"
	"github.com/garnizeh/jobboard/pkg/models"
	"github.com/garnizeh/jobboard/pkg/repository"
)

// Store is the volatile backend: process-lifetime maps guarded by a single
// RWMutex. Every mutation holds the write lock for its whole duration, so
// updates are atomic at record granularity and never interleave.
type Store struct {
	mu sync.RWMutex

	users        map[int64]*models.User
	jobs         map[int64]*models.Job
	applications map[int64]*models.Application
	interviews   map[int64]*models.Interview

	// insertion order per table; ids are monotonic and never reused
	jobOrder         []int64
	applicationOrder []int64
	interviewOrder   []int64

	userID        int64
	jobID         int64
	applicationID int64
	interviewID   int64
}

var _ repository.Store = (*Store)(nil)

func New() *Store {
	return &Store{
		users:        make(map[int64]*models.User),
		jobs:         make(map[int64]*models.Job),
		applications: make(map[int64]*models.Application),
		interviews:   make(map[int64]*models.Interview),
	}
}

func now() int64 {
	return time.Now().UTC().UnixMilli()
}

// User methods

func (s *Store) CreateUser(_ context.Context, u *models.User) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Username == u.Username {
			return nil, apperror.Conflict("username already taken")
		}
	}

	s.userID++
	stored := *u
	stored.ID = s.userID
	stored.CreatedAt = now()
	s.users[stored.ID] = &stored

	out := stored
	return &out, nil
}

func (s *Store) GetUser(_ context.Context, id int64) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}

	out := *u
	return &out, nil
}

func (s *Store) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username {
			out := *u
			return &out, nil
		}
	}

	return nil, nil
}

func (s *Store) UpdateUser(_ context.Context, id int64, patch models.UserPatch) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, apperror.NotFound("user", id)
	}

	patch.Apply(u)
	out := *u
	return &out, nil
}

// Job methods

func (s *Store) CreateJob(_ context.Context, j *models.Job) (*models.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.jobID++
	stored := *j
	stored.ID = s.jobID
	stored.CreatedAt = now()
	s.jobs[stored.ID] = &stored
	s.jobOrder = append(s.jobOrder, stored.ID)

	out := stored
	return &out, nil
}

func (s *Store) GetJob(_ context.Context, id int64) (*models.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	j, ok := s.jobs[id]
	if !ok {
		return nil, nil
	}

	out := *j
	return &out, nil
}

func (s *Store) ListJobs(_ context.Context, f models.JobFilter) ([]models.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Job, 0, len(s.jobOrder))
	for _, id := range s.jobOrder {
		j := s.jobs[id]
		if f.Matches(j) {
			out = append(out, *j)
		}
	}

	return out, nil
}

func (s *Store) UpdateJob(_ context.Context, id int64, patch models.JobPatch) (*models.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	j, ok := s.jobs[id]
	if !ok {
		return nil, apperror.NotFound("job", id)
	}

	patch.Apply(j)
	out := *j
	return &out, nil
}

func (s *Store) DeleteJob(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.jobs[id]; !ok {
		// idempotent: missing id is a no-op
		return nil
	}

	delete(s.jobs, id)
	for i, jid := range s.jobOrder {
		if jid == id {
			s.jobOrder = append(s.jobOrder[:i], s.jobOrder[i+1:]...)
			break
		}
	}

	return nil
}

// Application methods

func (s *Store) CreateApplication(_ context.Context, a *models.Application) (*models.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.applicationID++
	stored := *a
	if stored.Status == "" {
		stored.Status = models.ApplicationPending
	}
	stored.ID = s.applicationID
	stored.CreatedAt = now()
	s.applications[stored.ID] = &stored
	s.applicationOrder = append(s.applicationOrder, stored.ID)

	out := stored
	return &out, nil
}

func (s *Store) GetApplication(_ context.Context, id int64) (*models.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.applications[id]
	if !ok {
		return nil, nil
	}

	out := *a
	return &out, nil
}

func (s *Store) ListApplicationsByUser(_ context.Context, userID int64) ([]models.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Application
	for _, id := range s.applicationOrder {
		if a := s.applications[id]; a.UserID == userID {
			out = append(out, *a)
		}
	}

	return out, nil
}

func (s *Store) ListApplicationsByJob(_ context.Context, jobID int64) ([]models.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Application
	for _, id := range s.applicationOrder {
		if a := s.applications[id]; a.JobID == jobID {
			out = append(out, *a)
		}
	}

	return out, nil
}

func (s *Store) UpdateApplication(_ context.Context, id int64, patch models.ApplicationPatch) (*models.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.applications[id]
	if !ok {
		return nil, apperror.NotFound("application", id)
	}

	patch.Apply(a)
	out := *a
	return &out, nil
}

// Interview methods

func (s *Store) CreateInterview(_ context.Context, iv *models.Interview) (*models.Interview, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.interviewID++
	stored := *iv
	if stored.Status == "" {
		stored.Status = models.InterviewScheduled
	}
	stored.ID = s.interviewID
	stored.CreatedAt = now()
	s.interviews[stored.ID] = &stored
	s.interviewOrder = append(s.interviewOrder, stored.ID)

	out := stored
	return &out, nil
}

func (s *Store) GetInterview(_ context.Context, id int64) (*models.Interview, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	iv, ok := s.interviews[id]
	if !ok {
		return nil, nil
	}

	out := *iv
	return &out, nil
}

func (s *Store) ListInterviewsByApplication(_ context.Context, applicationID int64) ([]models.Interview, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Interview
	for _, id := range s.interviewOrder {
		if iv := s.interviews[id]; iv.ApplicationID == applicationID {
			out = append(out, *iv)
		}
	}

	return out, nil
}

func (s *Store) UpdateInterview(_ context.Context, id int64, patch models.InterviewPatch) (*models.Interview, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	iv, ok := s.interviews[id]
	if !ok {
		return nil, apperror.NotFound("interview", id)
	}

	patch.Apply(iv)
	out := *iv
	return &out, nil
}
