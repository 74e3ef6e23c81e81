package api

import (
	"net/http"
	"strconv"

	"github.com/garnizeh/jobboard/internal/apperror"
	"github.com/garnizeh/jobboard/internal/policy"
	"github.com/garnizeh/jobboard/pkg/models"
	"github.com/garnizeh/jobboard/pkg/repository"
	"github.com/gorilla/mux"
)

type JobsHandler struct {
	store repository.Store
}

func NewJobsHandler(store repository.Store) *JobsHandler {
	return &JobsHandler{store: store}
}

// pathID parses the numeric {id} path variable.
func pathID(r *http.Request) (int64, error) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperror.Validation(apperror.FieldError{Field: "id", Message: "invalid id"})
	}
	return id, nil
}

// jobFilterFromQuery builds an exact-match filter from the query string.
// Unknown parameters are rejected so callers cannot probe arbitrary fields.
func jobFilterFromQuery(r *http.Request) (models.JobFilter, error) {
	var f models.JobFilter
	var bad []apperror.FieldError

	for key, values := range r.URL.Query() {
		v := values[0]
		switch key {
		case "employer_id":
			id, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				bad = append(bad, apperror.FieldError{Field: key, Message: "must be an integer"})
				continue
			}
			f.EmployerID = &id
		case "title":
			f.Title = &v
		case "company":
			f.Company = &v
		case "location":
			f.Location = &v
		case "type":
			f.Type = &v
		case "salary":
			f.Salary = &v
		default:
			bad = append(bad, apperror.FieldError{Field: key, Message: "unknown filter field"})
		}
	}

	if len(bad) > 0 {
		return models.JobFilter{}, apperror.Validation(bad...)
	}
	return f, nil
}

func (h *JobsHandler) List(w http.ResponseWriter, r *http.Request) {
	f, err := jobFilterFromQuery(r)
	if err != nil {
		writeError(w, err)
		return
	}

	jobs, err := h.store.ListJobs(r.Context(), f)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, jobs, http.StatusOK)
}

func (h *JobsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	job, err := h.store.GetJob(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	if job == nil {
		writeError(w, apperror.NotFound("job", id))
		return
	}

	writeJSON(w, job, http.StatusOK)
}

type jobCreateRequest struct {
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Location     string   `json:"location"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
	Type         string   `json:"type"`
	Salary       string   `json:"salary"`
}

func (h *JobsHandler) Create(w http.ResponseWriter, r *http.Request) {
	p := principalFrom(r)
	if err := policy.Decide(p, policy.ActionCreateJob, policy.Target{}); err != nil {
		writeError(w, err)
		return
	}

	var req jobCreateRequest
	if err := decodeValid(r.Context(), r, schemaJobCreate, &req); err != nil {
		writeError(w, err)
		return
	}

	// employer_id always comes from the principal, never the payload
	job := &models.Job{
		EmployerID:   p.ID,
		Title:        req.Title,
		Company:      req.Company,
		Location:     req.Location,
		Description:  req.Description,
		Requirements: req.Requirements,
		Type:         req.Type,
		Salary:       req.Salary,
	}

	created, err := h.store.CreateJob(r.Context(), job)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, created, http.StatusCreated)
}

func (h *JobsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	// existence before authentication before authorization
	job, err := h.store.GetJob(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	if job == nil {
		writeError(w, apperror.NotFound("job", id))
		return
	}

	if err := policy.Decide(principalFrom(r), policy.ActionUpdateJob, policy.Target{Job: job}); err != nil {
		writeError(w, err)
		return
	}

	var patch models.JobPatch
	if err := decodeValid(r.Context(), r, schemaJobUpdate, &patch); err != nil {
		writeError(w, err)
		return
	}

	updated, err := h.store.UpdateJob(r.Context(), id, patch)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, updated, http.StatusOK)
}

func (h *JobsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	job, err := h.store.GetJob(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	if job == nil {
		writeError(w, apperror.NotFound("job", id))
		return
	}

	if err := policy.Decide(principalFrom(r), policy.ActionDeleteJob, policy.Target{Job: job}); err != nil {
		writeError(w, err)
		return
	}

	if err := h.store.DeleteJob(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
