package api

import (
	"context"
	"net/http"

	"github.com/garnizeh/jobboard/internal/apperror"
	"github.com/garnizeh/jobboard/internal/generator"
	"github.com/garnizeh/jobboard/internal/policy"
)

type GenerateHandler struct {
	engine *generator.Engine
}

func NewGenerateHandler(engine *generator.Engine) *GenerateHandler {
	return &GenerateHandler{engine: engine}
}

type generateResponse struct {
	Content string `json:"content"`
}

// CV handles POST /v1/generate/cv.
func (h *GenerateHandler) CV(w http.ResponseWriter, r *http.Request) {
	h.generate(w, r, h.engine.GenerateCV)
}

// CoverLetter handles POST /v1/generate/cover-letter.
func (h *GenerateHandler) CoverLetter(w http.ResponseWriter, r *http.Request) {
	h.generate(w, r, h.engine.GenerateCoverLetter)
}

func (h *GenerateHandler) generate(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, in generator.Input) (string, error)) {
	if err := policy.Decide(principalFrom(r), policy.ActionGenerateDocument, policy.Target{}); err != nil {
		writeError(w, err)
		return
	}

	var in generator.Input
	if err := decodeValid(r.Context(), r, schemaGenerate, &in); err != nil {
		writeError(w, err)
		return
	}

	content, err := fn(r.Context(), in)
	if err != nil {
		// the original error stays in the log only; callers get a generic message
		writeError(w, apperror.Generator(err))
		return
	}

	writeJSON(w, generateResponse{Content: content}, http.StatusOK)
}
