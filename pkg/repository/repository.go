package repository

import (
	"context"

	"github.com/garnizeh/jobboard/pkg/models"
)

// Repository interfaces for domain entities. These are the public contracts
// consumers should depend on; concrete implementations live under internal/.
//
// Conventions shared by all implementations:
//   - reads return (nil, nil) when the entity does not exist;
//   - creates assign id and created_at, never the caller;
//   - updates apply only the non-nil patch fields and fail with
//     apperror.ErrNotFound for absent ids;
//   - backend I/O errors are wrapped with apperror.ErrStorage.

type UserRepo interface {
	// CreateUser fails with apperror.ErrConflict when the username is taken.
	CreateUser(ctx context.Context, u *models.User) (*models.User, error)
	GetUser(ctx context.Context, id int64) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	UpdateUser(ctx context.Context, id int64, patch models.UserPatch) (*models.User, error)
}

type JobRepo interface {
	CreateJob(ctx context.Context, j *models.Job) (*models.Job, error)
	GetJob(ctx context.Context, id int64) (*models.Job, error)
	// ListJobs returns jobs matching every set filter field, in insertion order.
	ListJobs(ctx context.Context, f models.JobFilter) ([]models.Job, error)
	UpdateJob(ctx context.Context, id int64, patch models.JobPatch) (*models.Job, error)
	// DeleteJob is idempotent: deleting an absent id is not an error.
	DeleteJob(ctx context.Context, id int64) error
}

type ApplicationRepo interface {
	CreateApplication(ctx context.Context, a *models.Application) (*models.Application, error)
	GetApplication(ctx context.Context, id int64) (*models.Application, error)
	ListApplicationsByUser(ctx context.Context, userID int64) ([]models.Application, error)
	ListApplicationsByJob(ctx context.Context, jobID int64) ([]models.Application, error)
	UpdateApplication(ctx context.Context, id int64, patch models.ApplicationPatch) (*models.Application, error)
}

type InterviewRepo interface {
	CreateInterview(ctx context.Context, iv *models.Interview) (*models.Interview, error)
	GetInterview(ctx context.Context, id int64) (*models.Interview, error)
	ListInterviewsByApplication(ctx context.Context, applicationID int64) ([]models.Interview, error)
	UpdateInterview(ctx context.Context, id int64, patch models.InterviewPatch) (*models.Interview, error)
}

// Store is the full capability set a backend must provide. Both the volatile
// in-memory backend and the durable sqlite backend satisfy it; callers are
// backend-agnostic.
type Store interface {
	UserRepo
	JobRepo
	ApplicationRepo
	InterviewRepo
}
