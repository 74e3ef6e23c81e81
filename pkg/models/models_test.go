package models_test

import (
	"encoding/json"
	"testing"

	"github.com/garnizeh/jobboard/pkg/models"
)

func TestValidJobType(t *testing.T) {
	for _, typ := range []string{
		models.JobTypeFullTime, models.JobTypePartTime, models.JobTypeContract, models.JobTypeInternship,
	} {
		if !models.ValidJobType(typ) {
			t.Fatalf("expected %q to be valid", typ)
		}
	}
	for _, typ := range []string{"", "full-time", "Freelance"} {
		if models.ValidJobType(typ) {
			t.Fatalf("expected %q to be invalid", typ)
		}
	}
}

func TestPasswordHashNeverMarshals(t *testing.T) {
	u := models.User{ID: 1, Username: "alice", PasswordHash: "bcrypt-material"}
	b, err := json.Marshal(u)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out map[string]any
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := out["password_hash"]; ok {
		t.Fatalf("password hash serialized: %s", b)
	}
}

func TestJobPatchApplyOnlySetFields(t *testing.T) {
	j := models.Job{
		ID: 1, EmployerID: 2, Title: "orig", Company: "acme",
		Location: "Berlin", Description: "d", Type: models.JobTypeFullTime,
		Salary: "90k", CreatedAt: 123,
	}

	title := "new"
	reqs := []string{"go"}
	patch := models.JobPatch{Title: &title, Requirements: &reqs}
	patch.Apply(&j)

	if j.Title != "new" || len(j.Requirements) != 1 {
		t.Fatalf("set fields not applied: %#v", j)
	}
	if j.Company != "acme" || j.Salary != "90k" || j.EmployerID != 2 || j.CreatedAt != 123 {
		t.Fatalf("unset fields changed: %#v", j)
	}
}

func TestJobFilterZeroValueMatchesAll(t *testing.T) {
	j := models.Job{Title: "anything", Type: models.JobTypeContract}
	if !(models.JobFilter{}).Matches(&j) {
		t.Fatal("zero-value filter must match every job")
	}

	salary := "100k"
	if (models.JobFilter{Salary: &salary}).Matches(&j) {
		t.Fatal("set field must constrain the match")
	}
}

func TestUserPatchDeepCopiesSlices(t *testing.T) {
	u := models.User{Username: "alice"}
	skills := []string{"go"}
	patch := models.UserPatch{Skills: &skills}
	patch.Apply(&u)

	skills[0] = "mutated"
	if u.Skills[0] != "go" {
		t.Fatalf("patch aliased the caller's slice: %#v", u.Skills)
	}
}
