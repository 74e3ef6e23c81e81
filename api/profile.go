package api

import (
	"net/http"

	"github.com/garnizeh/jobboard/internal/policy"
	"github.com/garnizeh/jobboard/pkg/models"
	"github.com/garnizeh/jobboard/pkg/repository"
)

type ProfileHandler struct {
	users repository.UserRepo
}

func NewProfileHandler(users repository.UserRepo) *ProfileHandler {
	return &ProfileHandler{users: users}
}

// Update handles PUT /v1/profile. The principal always acts on itself, so no
// cross-user edit is possible; role and username are not part of the patch.
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	p := principalFrom(r)
	if err := policy.Decide(p, policy.ActionUpdateProfile, policy.Target{}); err != nil {
		writeError(w, err)
		return
	}

	var patch models.UserPatch
	if err := decodeValid(r.Context(), r, schemaProfileUpdate, &patch); err != nil {
		writeError(w, err)
		return
	}

	updated, err := h.users.UpdateUser(r.Context(), p.ID, patch)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, updated, http.StatusOK)
}
