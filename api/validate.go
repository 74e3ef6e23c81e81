package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/garnizeh/jobboard/internal/apperror"
	"github.com/qri-io/jsonschema"
)

// Request-payload schemas. Unknown keys are ignored (immutable fields like
// employer_id in an update payload simply have no effect); violations are
// collected per field so the response lists every problem, not just the first.

const jobCreateSchema = `{
	"type": "object",
	"required": ["title", "company", "location", "description", "type"],
	"properties": {
		"title": {"type": "string", "minLength": 1},
		"company": {"type": "string", "minLength": 1},
		"location": {"type": "string", "minLength": 1},
		"description": {"type": "string", "minLength": 1},
		"requirements": {"type": "array", "items": {"type": "string"}},
		"type": {"type": "string", "enum": ["Full-time", "Part-time", "Contract", "Internship"]},
		"salary": {"type": "string"}
	}
}`

const jobUpdateSchema = `{
	"type": "object",
	"properties": {
		"title": {"type": "string", "minLength": 1},
		"company": {"type": "string", "minLength": 1},
		"location": {"type": "string", "minLength": 1},
		"description": {"type": "string", "minLength": 1},
		"requirements": {"type": "array", "items": {"type": "string"}},
		"type": {"type": "string", "enum": ["Full-time", "Part-time", "Contract", "Internship"]},
		"salary": {"type": "string"}
	}
}`

const applySchema = `{
	"type": "object",
	"properties": {
		"cover_letter": {"type": "string"}
	}
}`

const applicationUpdateSchema = `{
	"type": "object",
	"properties": {
		"status": {"type": "string", "enum": ["pending", "reviewed", "accepted", "rejected"]},
		"cover_letter": {"type": "string"}
	}
}`

const interviewCreateSchema = `{
	"type": "object",
	"required": ["scheduled_for", "duration", "room_id"],
	"properties": {
		"scheduled_for": {"type": "integer", "minimum": 1},
		"duration": {"type": "integer", "minimum": 1},
		"room_id": {"type": "string", "minLength": 1},
		"notes": {"type": "string"}
	}
}`

const interviewUpdateSchema = `{
	"type": "object",
	"properties": {
		"scheduled_for": {"type": "integer", "minimum": 1},
		"duration": {"type": "integer", "minimum": 1},
		"status": {"type": "string", "enum": ["scheduled", "completed", "cancelled"]},
		"room_id": {"type": "string", "minLength": 1},
		"recording_url": {"type": "string"},
		"notes": {"type": "string"}
	}
}`

const profileUpdateSchema = `{
	"type": "object",
	"properties": {
		"name": {"type": "string"},
		"email": {"type": "string"},
		"company": {"type": "string"},
		"title": {"type": "string"},
		"bio": {"type": "string"},
		"location": {"type": "string"},
		"skills": {"type": "array", "items": {"type": "string"}},
		"experience": {"type": "object"}
	}
}`

const signupSchema = `{
	"type": "object",
	"required": ["username", "password"],
	"properties": {
		"username": {"type": "string", "minLength": 1},
		"password": {"type": "string", "minLength": 1},
		"role": {"type": "string", "enum": ["employer", "jobseeker"]},
		"name": {"type": "string"},
		"email": {"type": "string"},
		"company": {"type": "string"}
	}
}`

const signinSchema = `{
	"type": "object",
	"required": ["username", "password"],
	"properties": {
		"username": {"type": "string", "minLength": 1},
		"password": {"type": "string", "minLength": 1}
	}
}`

const generateSchema = `{
	"type": "object",
	"required": ["full_name"],
	"properties": {
		"full_name": {"type": "string", "minLength": 1},
		"experience": {"type": "array", "items": {"type": "string"}},
		"education": {"type": "array", "items": {"type": "string"}},
		"skills": {"type": "array", "items": {"type": "string"}},
		"target_position": {"type": "string"},
		"company_name": {"type": "string"},
		"additional_info": {"type": "string"},
		"photo_base64": {"type": "string"}
	}
}`

var (
	schemaJobCreate         = mustSchema(jobCreateSchema)
	schemaJobUpdate         = mustSchema(jobUpdateSchema)
	schemaApply             = mustSchema(applySchema)
	schemaApplicationUpdate = mustSchema(applicationUpdateSchema)
	schemaInterviewCreate   = mustSchema(interviewCreateSchema)
	schemaInterviewUpdate   = mustSchema(interviewUpdateSchema)
	schemaProfileUpdate     = mustSchema(profileUpdateSchema)
	schemaSignup            = mustSchema(signupSchema)
	schemaSignin            = mustSchema(signinSchema)
	schemaGenerate          = mustSchema(generateSchema)
)

func mustSchema(raw string) *jsonschema.Schema {
	rs := &jsonschema.Schema{}
	if err := json.Unmarshal([]byte(raw), rs); err != nil {
		panic(fmt.Sprintf("invalid embedded schema: %v", err))
	}
	return rs
}

// decodeValid reads the body, validates it against the schema reporting every
// violated field, then unmarshals into dst.
func decodeValid(ctx context.Context, r *http.Request, rs *jsonschema.Schema, dst any) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		// a MaxBytesError must map to 413, not a validation failure
		return err
	}

	if len(body) == 0 {
		return apperror.Validation(apperror.FieldError{Field: "", Message: "request body is required"})
	}

	if !json.Valid(body) {
		return apperror.Validation(apperror.FieldError{Field: "", Message: "invalid json"})
	}

	verrs, err := rs.ValidateBytes(ctx, body)
	if err != nil {
		return apperror.Validation(apperror.FieldError{Field: "", Message: err.Error()})
	}
	if len(verrs) > 0 {
		fields := make([]apperror.FieldError, 0, len(verrs))
		for _, v := range verrs {
			fields = append(fields, apperror.FieldError{Field: v.PropertyPath, Message: v.Message})
		}
		return apperror.Validation(fields...)
	}

	if err := json.Unmarshal(body, dst); err != nil {
		return apperror.Validation(apperror.FieldError{Field: "", Message: err.Error()})
	}

	return nil
}
