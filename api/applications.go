package api

import (
	"net/http"
	"strconv"

	"github.com/garnizeh/jobboard/internal/apperror"
	"github.com/garnizeh/jobboard/internal/policy"
	"github.com/garnizeh/jobboard/pkg/models"
	"github.com/garnizeh/jobboard/pkg/repository"
)

type ApplicationsHandler struct {
	store repository.Store
}

func NewApplicationsHandler(store repository.Store) *ApplicationsHandler {
	return &ApplicationsHandler{store: store}
}

type applyRequest struct {
	CoverLetter string `json:"cover_letter"`
}

// Apply handles POST /v1/jobs/{id}/apply.
func (h *ApplicationsHandler) Apply(w http.ResponseWriter, r *http.Request) {
	jobID, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	job, err := h.store.GetJob(r.Context(), jobID)
	if err != nil {
		writeError(w, err)
		return
	}
	if job == nil {
		writeError(w, apperror.NotFound("job", jobID))
		return
	}

	p := principalFrom(r)
	if err := policy.Decide(p, policy.ActionApplyToJob, policy.Target{Job: job}); err != nil {
		writeError(w, err)
		return
	}

	var req applyRequest
	if err := decodeValid(r.Context(), r, schemaApply, &req); err != nil {
		writeError(w, err)
		return
	}

	// job_id and user_id come from the path and the principal; a duplicate
	// application for the same job is allowed
	application := &models.Application{
		JobID:       job.ID,
		UserID:      p.ID,
		Status:      models.ApplicationPending,
		CoverLetter: req.CoverLetter,
	}

	created, err := h.store.CreateApplication(r.Context(), application)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, created, http.StatusCreated)
}

// List handles GET /v1/applications. Employers query by job_id; job seekers
// always get their own applications. The employer path does not re-verify
// ownership of the queried job.
func (h *ApplicationsHandler) List(w http.ResponseWriter, r *http.Request) {
	p := principalFrom(r)
	if err := policy.Decide(p, policy.ActionListApplications, policy.Target{}); err != nil {
		writeError(w, err)
		return
	}

	var apps []models.Application
	var err error
	if p.Role == models.RoleEmployer {
		jobIDStr := r.URL.Query().Get("job_id")
		jobID, perr := strconv.ParseInt(jobIDStr, 10, 64)
		if perr != nil || jobID <= 0 {
			writeError(w, apperror.Validation(apperror.FieldError{Field: "job_id", Message: "must be a positive integer"}))
			return
		}
		apps, err = h.store.ListApplicationsByJob(r.Context(), jobID)
	} else {
		apps, err = h.store.ListApplicationsByUser(r.Context(), p.ID)
	}
	if err != nil {
		writeError(w, err)
		return
	}

	if apps == nil {
		apps = []models.Application{}
	}

	writeJSON(w, apps, http.StatusOK)
}

// Update handles PUT /v1/applications/{id}.
func (h *ApplicationsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	application, err := h.store.GetApplication(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	if application == nil {
		writeError(w, apperror.NotFound("application", id))
		return
	}

	job, err := h.store.GetJob(r.Context(), application.JobID)
	if err != nil {
		writeError(w, err)
		return
	}
	if job == nil {
		writeError(w, apperror.NotFound("job", application.JobID))
		return
	}

	target := policy.Target{Job: job, Application: application}
	if err := policy.Decide(principalFrom(r), policy.ActionUpdateApplication, target); err != nil {
		writeError(w, err)
		return
	}

	var patch models.ApplicationPatch
	if err := decodeValid(r.Context(), r, schemaApplicationUpdate, &patch); err != nil {
		writeError(w, err)
		return
	}

	updated, err := h.store.UpdateApplication(r.Context(), id, patch)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, updated, http.StatusOK)
}
