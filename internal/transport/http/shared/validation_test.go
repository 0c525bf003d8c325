package shared

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestValidatorSortsIssuesAndRejects(t *testing.T) {
	v := NewValidator()
	v.Check("receiveAdvance", nil, "ignored")
	v.Check("grossSalary", errors.New("bad"), "must be greater than zero")
	v.Add("", "  ")
	v.Add("body", "unexpected field")

	issues := v.Issues()
	if len(issues) != 2 {
		t.Fatalf("expected 2 issues, got %d", len(issues))
	}
	if issues[0].Field != "body" || issues[1].Field != "grossSalary" {
		t.Fatalf("expected sorted issues, got %+v", issues)
	}

	rec := httptest.NewRecorder()
	if !v.Reject(rec, "req-1") {
		t.Fatal("expected reject to write a response")
	}
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	var payload struct {
		Success bool `json:"success"`
		Error   struct {
			Code    string `json:"code"`
			Details struct {
				Fields []ValidationIssue `json:"fields"`
			} `json:"details"`
		} `json:"error"`
		RequestID string `json:"requestId"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if payload.Success || payload.Error.Code != "validation_failed" || len(payload.Error.Details.Fields) != 2 {
		t.Fatalf("unexpected payload %+v", payload)
	}
	if payload.RequestID != "req-1" {
		t.Fatalf("expected request id, got %q", payload.RequestID)
	}
}

func TestValidatorWithoutIssuesDoesNotReject(t *testing.T) {
	rec := httptest.NewRecorder()
	if NewValidator().Reject(rec, "") {
		t.Fatal("expected no rejection")
	}
	var nilValidator *Validator
	if nilValidator.HasIssues() || nilValidator.Issues() != nil {
		t.Fatal("expected nil validator to be empty")
	}
}
