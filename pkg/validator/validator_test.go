package validator_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	pkgvalidator "github.com/ghuser/scoreboard/pkg/validator"
)

func init() {
	if err := pkgvalidator.RegisterRule("rfc3339", "must be an RFC 3339 time", func(s string) bool {
		_, err := time.Parse(time.RFC3339, s)
		return err == nil
	}); err != nil {
		panic(err)
	}
}

type sampleStruct struct {
	ID    string `validate:"required,uuid"`
	Name  string `validate:"required,notblank,max=10"`
	Score *int64 `validate:"required,gt=0,lte=100"`
	At    string `validate:"omitempty,rfc3339"`
}

func int64Ptr(v int64) *int64 { return &v }

func validSample() sampleStruct {
	return sampleStruct{
		ID:    "550e8400-e29b-41d4-a716-446655440000",
		Name:  "hello",
		Score: int64Ptr(10),
	}
}

func TestValidate_valid(t *testing.T) {
	s := validSample()
	if err := pkgvalidator.Validate(&s); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestValidate_missingRequired(t *testing.T) {
	s := sampleStruct{}
	if err := pkgvalidator.Validate(&s); err == nil {
		t.Fatal("expected validation error for empty struct")
	}
}

func TestFormatValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*sampleStruct)
		field  string
		want   string
	}{
		{"required", func(s *sampleStruct) { s.ID = "" }, "ID", "can't be blank"},
		{"uuid", func(s *sampleStruct) { s.ID = "not-a-uuid" }, "ID", "must be a valid UUID"},
		{"blank", func(s *sampleStruct) { s.Name = "   " }, "Name", "can't be blank"},
		{"max", func(s *sampleStruct) { s.Name = "12345678901" }, "Name", "must not exceed 10 characters"},
		{"nil pointer", func(s *sampleStruct) { s.Score = nil }, "Score", "can't be blank"},
		{"zero", func(s *sampleStruct) { s.Score = int64Ptr(0) }, "Score", "must be greater than zero"},
		{"lte", func(s *sampleStruct) { s.Score = int64Ptr(101) }, "Score", "must not exceed 100"},
		{"registered rule", func(s *sampleStruct) { s.At = "yesterday" }, "At", "must be an RFC 3339 time"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSample()
			tt.mutate(&s)
			m := pkgvalidator.FormatValidationErrors(pkgvalidator.Validate(&s))
			if len(m[tt.field]) != 1 || m[tt.field][0] != tt.want {
				t.Errorf("%s: got %v, want [%q]", tt.field, m[tt.field], tt.want)
			}
		})
	}
}

func TestFormatValidationErrors_reportsEveryField(t *testing.T) {
	s := sampleStruct{}
	m := pkgvalidator.FormatValidationErrors(pkgvalidator.Validate(&s))
	for _, f := range []string{"ID", "Name", "Score"} {
		if _, ok := m[f]; !ok {
			t.Errorf("expected %s in %v", f, m)
		}
	}
}

func TestFormatValidationErrors_nonValidationError(t *testing.T) {
	m := pkgvalidator.FormatValidationErrors(http.ErrNoCookie)
	if len(m) != 0 {
		t.Errorf("expected empty map for non-validation error, got %v", m)
	}
}

// --- ValidateRequest ---

type scoreReq struct {
	Name  string `json:"name"  validate:"required,notblank,max=255"`
	Score *int64 `json:"score" validate:"required,gt=0"`
}

func TestValidateRequest_valid(t *testing.T) {
	body := `{"name":"Edo","score":1300}`
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	req, ok := pkgvalidator.ValidateRequest[scoreReq](w, r)
	if !ok {
		t.Fatalf("expected ok=true, got false. Response: %s", w.Body.String())
	}
	if req.Name != "Edo" || *req.Score != 1300 {
		t.Errorf("unexpected request: %+v", req)
	}
}

func TestValidateRequest_invalidJSON(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{bad json"))
	w := httptest.NewRecorder()

	_, ok := pkgvalidator.ValidateRequest[scoreReq](w, r)
	if ok {
		t.Fatal("expected ok=false for malformed JSON")
	}
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Invalid JSON") {
		t.Errorf("expected 'Invalid JSON' in body, got: %s", w.Body.String())
	}
}

func TestValidateRequest_bodyTooLarge(t *testing.T) {
	body := `{"name":"` + strings.Repeat("a", 64) + `","score":1}`
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	w := httptest.NewRecorder()
	r.Body = http.MaxBytesReader(w, r.Body, 16)

	if _, ok := pkgvalidator.ValidateRequest[scoreReq](w, r); ok {
		t.Fatal("expected ok=false for oversized body")
	}
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("expected 413, got %d", w.Code)
	}
}

func TestValidateRequest_fieldErrors(t *testing.T) {
	body := `{"name":"  ","score":0}`
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	w := httptest.NewRecorder()

	_, ok := pkgvalidator.ValidateRequest[scoreReq](w, r)
	if ok {
		t.Fatal("expected ok=false")
	}
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", w.Code)
	}

	var resp struct {
		Error  string              `json:"error"`
		Fields map[string][]string `json:"fields"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Error != "Validation failed" {
		t.Errorf("error: got %q", resp.Error)
	}
	if got := resp.Fields["name"]; len(got) != 1 || got[0] != "can't be blank" {
		t.Errorf("name: got %v", got)
	}
	if got := resp.Fields["score"]; len(got) != 1 || got[0] != "must be greater than zero" {
		t.Errorf("score: got %v", got)
	}
}
