// Package policy is the pure access-control decision layer. Decide never
// touches storage: handlers load the referenced entities first (reporting
// NotFound before any authorization question is asked) and pass them in.
package policy

import (
	"github.com/garnizeh/jobboard/internal/apperror"
	"github.com/garnizeh/jobboard/pkg/models"
)

type Action int

const (
	ActionReadJob Action = iota
	ActionCreateJob
	ActionUpdateJob
	ActionDeleteJob
	ActionApplyToJob
	ActionListApplications
	ActionUpdateApplication
	ActionCreateInterview
	ActionUpdateInterview
	ActionListInterviews
	ActionUpdateProfile
	ActionGenerateDocument
)

// Target carries the entities a decision depends on. For interview actions
// Job is the grandparent derived through Application.
type Target struct {
	Job         *models.Job
	Application *models.Application
}

// Decide returns nil to allow, apperror.ErrUnauthenticated when no principal
// is present, or apperror.ErrForbidden when the principal may not perform the
// action. Authentication is always checked before ownership.
func Decide(p *models.Principal, action Action, t Target) error {
	if action == ActionReadJob {
		// job listings are public
		return nil
	}

	if p == nil {
		return apperror.Unauthenticated("authentication required")
	}

	switch action {
	case ActionCreateJob:
		if p.Role != models.RoleEmployer {
			return apperror.Forbidden("only employers can post jobs")
		}

	case ActionUpdateJob, ActionDeleteJob:
		if p.ID != t.Job.EmployerID {
			return apperror.Forbidden("not the owning employer")
		}

	case ActionApplyToJob:
		if p.Role != models.RoleJobseeker {
			return apperror.Forbidden("only job seekers can apply")
		}

	case ActionListApplications:
		// employers query by job id, job seekers see their own; both allowed

	case ActionUpdateApplication:
		if p.Role == models.RoleEmployer && t.Job.EmployerID != p.ID {
			return apperror.Forbidden("not the owning employer")
		}
		if p.Role == models.RoleJobseeker && t.Application.UserID != p.ID {
			return apperror.Forbidden("not the applicant")
		}

	case ActionCreateInterview, ActionUpdateInterview:
		if p.Role != models.RoleEmployer || t.Job.EmployerID != p.ID {
			return apperror.Forbidden("only the owning employer can manage interviews")
		}

	case ActionListInterviews:
		owningEmployer := p.Role == models.RoleEmployer && t.Job.EmployerID == p.ID
		applicant := p.Role == models.RoleJobseeker && t.Application.UserID == p.ID
		if !owningEmployer && !applicant {
			return apperror.Forbidden("no access to this application's interviews")
		}

	case ActionUpdateProfile, ActionGenerateDocument:
		// any authenticated principal, acting on itself
	}

	return nil
}
