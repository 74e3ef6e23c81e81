// Package generator produces CVs and cover letters from user-supplied fields
// by rendering a prompt template and sending it to the model. It is stateless:
// nothing is persisted and failures surface to the caller untouched.
package generator

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/garnizeh/jobboard/internal/config"
	"github.com/garnizeh/jobboard/pkg/ollama"
)

// Input is the free-form material the caller supplies for generation.
type Input struct {
	FullName       string   `json:"full_name"`
	Experience     []string `json:"experience,omitempty"`
	Education      []string `json:"education,omitempty"`
	Skills         []string `json:"skills,omitempty"`
	TargetPosition string   `json:"target_position,omitempty"`
	CompanyName    string   `json:"company_name,omitempty"`
	AdditionalInfo string   `json:"additional_info,omitempty"`
	PhotoBase64    string   `json:"photo_base64,omitempty"`
}

// CoverLetterGuidance is returned instead of calling the model when the
// input lacks a target position or company name.
const CoverLetterGuidance = "Please provide a target position and company name to generate a cover letter."

const cvTemplate = `You are a professional CV writer. Create a well-structured, professional CV.

Create a professional CV for the following person:
Full Name: {{.FullName}}
{{- if .PhotoBase64}}

A professional photo is included and should be mentioned in the layout.
{{- end}}

Professional Experience:
{{- range .Experience}}
- {{.}}
{{- end}}

Education:
{{- range .Education}}
- {{.}}
{{- end}}

Skills:
{{- range .Skills}}
- {{.}}
{{- end}}

Additional Information:
{{.AdditionalInfo}}

Format the CV in a clear, professional structure with sections for Experience, Education, and Skills.
Use bullet points for achievements and responsibilities.
{{- if .PhotoBase64}}
Include a professional photo section at the top of the CV.
{{- end}}`

const coverLetterTemplate = `You are a professional cover letter writer. Create a compelling, well-structured cover letter.

Write a professional cover letter for the following:
Candidate: {{.FullName}}
Position: {{.TargetPosition}}
Company: {{.CompanyName}}

Candidate Background:
Experience:
{{- range .Experience}}
- {{.}}
{{- end}}

Skills:
{{- range .Skills}}
- {{.}}
{{- end}}

Additional Information:
{{.AdditionalInfo}}

Write a compelling cover letter that highlights the candidate's relevant experience and skills for the position.
Keep it professional, concise, and engaging.`

// Engine renders prompts and delegates to the Ollama client.
type Engine struct {
	client *ollama.Client
	cfg    config.GeneratorConfig
	logger *slog.Logger
}

func NewEngine(client *ollama.Client, cfg config.GeneratorConfig, logger *slog.Logger) *Engine {
	if cfg.Timeout == 0 {
		cfg.Timeout = 60 * time.Second
	}
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &Engine{client: client, cfg: cfg, logger: logger}
}

// GenerateCV produces a CV document from the input fields.
func (e *Engine) GenerateCV(ctx context.Context, in Input) (string, error) {
	return e.generate(ctx, cvTemplate, in)
}

// GenerateCoverLetter produces a cover letter, or the guidance message when
// the target position or company name is missing.
func (e *Engine) GenerateCoverLetter(ctx context.Context, in Input) (string, error) {
	if in.TargetPosition == "" || in.CompanyName == "" {
		return CoverLetterGuidance, nil
	}
	return e.generate(ctx, coverLetterTemplate, in)
}

func (e *Engine) generate(ctx context.Context, tmpl string, in Input) (string, error) {
	prompt, err := ollama.RenderTemplate(tmpl, in)
	if err != nil {
		return "", fmt.Errorf("render template: %w", err)
	}

	ctxReq, cancel := context.WithTimeout(ctx, e.cfg.Timeout)
	defer cancel()

	res, err := e.client.Generate(ctxReq, e.cfg.Model, prompt)
	if err != nil {
		e.logger.Error("generate failed", slog.String("model", e.cfg.Model), slog.Any("err", err))
		return "", fmt.Errorf("generate: %w", err)
	}

	return res.Text, nil
}
