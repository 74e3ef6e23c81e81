package api_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/garnizeh/jobboard/api"
	"github.com/garnizeh/jobboard/pkg/models"
	"github.com/golang-jwt/jwt/v5"
)

func TestInvalidTokenRejected(t *testing.T) {
	e := newEnv(t)

	for name, header := range map[string]string{
		"garbage token": "Bearer not-a-jwt",
		"bad scheme":    "Basic dXNlcjpwdw==",
	} {
		req, err := http.NewRequest(http.MethodGet, e.srv.URL+"/v1/applications", nil)
		if err != nil {
			t.Fatalf("new request: %v", err)
		}
		req.Header.Set("Authorization", header)
		resp, err := e.srv.Client().Do(req)
		if err != nil {
			t.Fatalf("do request: %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %d", name, resp.StatusCode)
		}
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	e := newEnv(t)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": 1,
		"role":    models.RoleJobseeker,
		"exp":     time.Now().Add(-time.Hour).Unix(),
	})
	tok, err := expired.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	status, body := e.do(t, http.MethodGet, "/v1/applications", tok, nil)
	if status != http.StatusUnauthorized {
		t.Fatalf("expected 401 for expired token, got %d: %s", status, body)
	}
}

func TestWrongSecretRejected(t *testing.T) {
	e := newEnv(t)

	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": 1,
		"role":    models.RoleEmployer,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	tok, err := forged.SignedString([]byte("attacker-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	status, body := e.do(t, http.MethodPost, "/v1/jobs", tok, map[string]any{
		"title": "t", "company": "c", "location": "l", "description": "d", "type": models.JobTypeFullTime,
	})
	if status != http.StatusUnauthorized {
		t.Fatalf("expected 401 for forged token, got %d: %s", status, body)
	}
}

func TestBodyLimit(t *testing.T) {
	e := newEnv(t)
	user := e.signup(t, "jane", "pw", models.RoleJobseeker)

	// the env caps bodies at 1 MiB; send a bit more
	huge := `{"full_name":"` + strings.Repeat("x", 1<<20+100) + `"}`
	req, err := http.NewRequest(http.MethodPost, e.srv.URL+"/v1/generate/cv", bytes.NewReader([]byte(huge)))
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+user.Token)

	resp, err := e.srv.Client().Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %d", resp.StatusCode)
	}
}

func TestCORSMiddleware(t *testing.T) {
	var nextCalled bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		w.WriteHeader(http.StatusOK)
	})
	handler := api.CORSMiddleware(next)

	// OPTIONS should return 204 and not call next
	reqOpt := httptest.NewRequest(http.MethodOptions, "/v1/jobs", nil)
	recOpt := httptest.NewRecorder()
	handler.ServeHTTP(recOpt, reqOpt)
	if recOpt.Code != http.StatusNoContent {
		t.Fatalf("expected 204 for OPTIONS, got %d", recOpt.Code)
	}
	if nextCalled {
		t.Fatal("next handler called for preflight")
	}
	if got := recOpt.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected CORS header set, got %q", got)
	}

	// a normal request passes through with the headers added
	req := httptest.NewRequest(http.MethodGet, "/v1/jobs", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if !nextCalled || rec.Code != http.StatusOK {
		t.Fatalf("expected pass-through, got %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected CORS header set, got %q", got)
	}
}

func TestHealthAndVersion(t *testing.T) {
	e := newEnv(t)

	status, body := e.do(t, http.MethodGet, "/health", "", nil)
	if status != http.StatusOK {
		t.Fatalf("health: status %d: %s", status, body)
	}
	if !strings.Contains(string(body), `"status":"ok"`) {
		t.Fatalf("unexpected health body: %s", body)
	}

	status, body = e.do(t, http.MethodGet, "/version", "", nil)
	if status != http.StatusOK {
		t.Fatalf("version: status %d: %s", status, body)
	}
	if !strings.Contains(string(body), `"version":"test"`) {
		t.Fatalf("unexpected version body: %s", body)
	}
}
