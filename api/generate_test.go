package api_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/garnizeh/jobboard/internal/generator"
	"github.com/garnizeh/jobboard/pkg/models"
)

func TestGenerateCVEndpoint(t *testing.T) {
	e := newEnv(t)
	user := e.signup(t, "jane", "pw", models.RoleJobseeker)

	status, body := e.do(t, http.MethodPost, "/v1/generate/cv", "", map[string]string{"full_name": "Jane"})
	if status != http.StatusUnauthorized {
		t.Fatalf("anonymous generate: expected 401, got %d: %s", status, body)
	}

	status, body = e.do(t, http.MethodPost, "/v1/generate/cv", user.Token, map[string]string{})
	if status != http.StatusBadRequest {
		t.Fatalf("missing full_name: expected 400, got %d: %s", status, body)
	}

	status, body = e.do(t, http.MethodPost, "/v1/generate/cv", user.Token, map[string]any{
		"full_name": "Jane Doe",
		"skills":    []string{"Go"},
	})
	if status != http.StatusOK {
		t.Fatalf("generate cv: status %d: %s", status, body)
	}
	var out struct {
		Content string `json:"content"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.Content != "generated document" {
		t.Fatalf("unexpected content: %q", out.Content)
	}
}

func TestGenerateCoverLetterGuidanceEndpoint(t *testing.T) {
	e := newEnv(t)
	user := e.signup(t, "jane", "pw", models.RoleJobseeker)

	// without target position and company the endpoint answers with guidance
	status, body := e.do(t, http.MethodPost, "/v1/generate/cover-letter", user.Token, map[string]string{
		"full_name": "Jane Doe",
	})
	if status != http.StatusOK {
		t.Fatalf("guidance: status %d: %s", status, body)
	}
	var out struct {
		Content string `json:"content"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.Content != generator.CoverLetterGuidance {
		t.Fatalf("expected guidance message, got %q", out.Content)
	}

	status, body = e.do(t, http.MethodPost, "/v1/generate/cover-letter", user.Token, map[string]string{
		"full_name":       "Jane Doe",
		"target_position": "Backend Engineer",
		"company_name":    "acme",
	})
	if status != http.StatusOK {
		t.Fatalf("cover letter: status %d: %s", status, body)
	}
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.Content != "generated document" {
		t.Fatalf("unexpected content: %q", out.Content)
	}
}

func TestGenerateModelFailureIsBadGateway(t *testing.T) {
	e := newEnvWithModel(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model offline", http.StatusInternalServerError)
	})
	user := e.signup(t, "jane", "pw", models.RoleJobseeker)

	status, body := e.do(t, http.MethodPost, "/v1/generate/cv", user.Token, map[string]string{
		"full_name": "Jane Doe",
	})
	if status != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d: %s", status, body)
	}
	var errResp struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &errResp); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if errResp.Error != "generator_failure" {
		t.Fatalf("unexpected error kind: %q", errResp.Error)
	}
	// backend details never reach the caller
	if errResp.Message == "" || errResp.Message == "model offline" {
		t.Fatalf("message leaks or missing: %q", errResp.Message)
	}
}
