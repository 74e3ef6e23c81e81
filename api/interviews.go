package api

import (
	"net/http"

	"github.com/garnizeh/jobboard/internal/apperror"
	"github.com/garnizeh/jobboard/internal/policy"
	"github.com/garnizeh/jobboard/pkg/models"
	"github.com/garnizeh/jobboard/pkg/repository"
)

// InterviewsHandler owns interview scheduling. Authorization is transitive:
// the owning employer is derived through Application -> Job.
type InterviewsHandler struct {
	store repository.Store
}

func NewInterviewsHandler(store repository.Store) *InterviewsHandler {
	return &InterviewsHandler{store: store}
}

// loadApplicationChain loads the application for a path id plus its parent
// job, reporting NotFound for a broken link before any policy question.
func (h *InterviewsHandler) loadApplicationChain(r *http.Request) (*models.Application, *models.Job, error) {
	id, err := pathID(r)
	if err != nil {
		return nil, nil, err
	}

	application, err := h.store.GetApplication(r.Context(), id)
	if err != nil {
		return nil, nil, err
	}
	if application == nil {
		return nil, nil, apperror.NotFound("application", id)
	}

	job, err := h.store.GetJob(r.Context(), application.JobID)
	if err != nil {
		return nil, nil, err
	}
	if job == nil {
		return nil, nil, apperror.NotFound("job", application.JobID)
	}

	return application, job, nil
}

type interviewCreateRequest struct {
	ScheduledFor int64  `json:"scheduled_for"`
	Duration     int    `json:"duration"`
	RoomID       string `json:"room_id"`
	Notes        string `json:"notes"`
}

// Create handles POST /v1/applications/{id}/interview.
func (h *InterviewsHandler) Create(w http.ResponseWriter, r *http.Request) {
	application, job, err := h.loadApplicationChain(r)
	if err != nil {
		writeError(w, err)
		return
	}

	target := policy.Target{Job: job, Application: application}
	if err := policy.Decide(principalFrom(r), policy.ActionCreateInterview, target); err != nil {
		writeError(w, err)
		return
	}

	var req interviewCreateRequest
	if err := decodeValid(r.Context(), r, schemaInterviewCreate, &req); err != nil {
		writeError(w, err)
		return
	}

	interview := &models.Interview{
		ApplicationID: application.ID,
		ScheduledFor:  req.ScheduledFor,
		Duration:      req.Duration,
		Status:        models.InterviewScheduled,
		RoomID:        req.RoomID,
		Notes:         req.Notes,
	}

	created, err := h.store.CreateInterview(r.Context(), interview)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, created, http.StatusCreated)
}

// ListForApplication handles GET /v1/applications/{id}/interviews.
func (h *InterviewsHandler) ListForApplication(w http.ResponseWriter, r *http.Request) {
	application, job, err := h.loadApplicationChain(r)
	if err != nil {
		writeError(w, err)
		return
	}

	target := policy.Target{Job: job, Application: application}
	if err := policy.Decide(principalFrom(r), policy.ActionListInterviews, target); err != nil {
		writeError(w, err)
		return
	}

	interviews, err := h.store.ListInterviewsByApplication(r.Context(), application.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	if interviews == nil {
		interviews = []models.Interview{}
	}

	writeJSON(w, interviews, http.StatusOK)
}

// Update handles PUT /v1/interviews/{id}.
func (h *InterviewsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	interview, err := h.store.GetInterview(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	if interview == nil {
		writeError(w, apperror.NotFound("interview", id))
		return
	}

	application, err := h.store.GetApplication(r.Context(), interview.ApplicationID)
	if err != nil {
		writeError(w, err)
		return
	}
	if application == nil {
		writeError(w, apperror.NotFound("application", interview.ApplicationID))
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
	if err := policy.Decide(principalFrom(r), policy.ActionUpdateInterview, target); err != nil {
		writeError(w, err)
		return
	}

	var patch models.InterviewPatch
	if err := decodeValid(r.Context(), r, schemaInterviewUpdate, &patch); err != nil {
		writeError(w, err)
		return
	}

	updated, err := h.store.UpdateInterview(r.Context(), id, patch)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, updated, http.StatusOK)
}
