package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
)

// Validation runs before any write: these requests must be rejected with
// the database left untouched (config.DB is nil in this package's tests,
// so reaching the store would panic).
func TestSubmitOnboardingRejectsBeforeWrite(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed email", `{"dealershipName":"Test Auto","primaryContactEmail":"not-an-email"}`},
		{"email missing domain", `{"primaryContactEmail":"john@"}`},
		{"invalid JSON", `{"dealershipName":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/api/v1/onboarding", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			SubmitOnboarding(w, r)

			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, expected 400", w.Code)
			}
		})
	}
}

func TestUpdateSubmissionStatusRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		id   string
		body string
	}{
		{"non-numeric id", "abc", `{"status":"completed"}`},
		{"unknown status", "1", `{"status":"archived"}`},
		{"empty status", "1", `{"notes":"hello"}`},
		{"invalid JSON", "1", `{"status":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPut, "/api/v1/admin/onboarding/"+tt.id, strings.NewReader(tt.body))
			r = mux.SetURLVars(r, map[string]string{"id": tt.id})
			w := httptest.NewRecorder()

			UpdateSubmissionStatus(w, r)

			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, expected 400", w.Code)
			}
		})
	}
}

func TestSubmitRequestCoercesFlags(t *testing.T) {
	req := submitRequest{
		DealershipName:       "Test Auto Group",
		CRMName:              "stale text",
		CRMNotApplicable:     true,
		DMSName:              "CDK",
		DMSNotApplicable:     false,
		WebsiteNotApplicable: true,
	}

	item := req.toModel()
	item.Normalize()

	if item.CRMNotApplicable != 1 {
		t.Errorf("CRMNotApplicable = %d, expected 1", item.CRMNotApplicable)
	}
	if item.DMSNotApplicable != 0 {
		t.Errorf("DMSNotApplicable = %d, expected 0", item.DMSNotApplicable)
	}
	if item.CRMName != nil {
		t.Errorf("CRMName = %q, expected nil for a voided topic", *item.CRMName)
	}
	if item.DMSName == nil || *item.DMSName != "CDK" {
		t.Error("applicable DMS answer must survive")
	}
	if item.DealershipName == nil || *item.DealershipName != "Test Auto Group" {
		t.Error("dealership name must survive")
	}
}

func TestSubmitRequestEmptyStringsStoreNull(t *testing.T) {
	item := (&submitRequest{}).toModel()
	if item.DealershipName != nil {
		t.Error("empty dealership name must store NULL")
	}
	if item.PrimaryContactEmail != nil {
		t.Error("empty contact email must store NULL")
	}
}

func TestGenerateNamesAlwaysSucceeds(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	tests := []struct {
		name string
		body string
	}{
		{"normal request", `{"dealershipName":"Test Dealership"}`},
		{"empty body", ``},
		{"empty name", `{"dealershipName":"","keywords":"subprime, credit"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/api/v1/onboarding/names", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			GenerateNames(w, r)

			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, expected 200", w.Code)
			}

			var resp generateNamesResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if len(resp.Suggestions) < 1 || len(resp.Suggestions) > 5 {
				t.Fatalf("got %d suggestions, expected 1..5", len(resp.Suggestions))
			}
			for i, s := range resp.Suggestions {
				if s == "" {
					t.Errorf("suggestion[%d] is empty", i)
				}
			}
		})
	}
}

func TestGenerateNamesFallbackContent(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	body := `{"dealershipName":"Test Dealership"}`
	r := httptest.NewRequest(http.MethodPost, "/api/v1/onboarding/names", strings.NewReader(body))
	w := httptest.NewRecorder()

	GenerateNames(w, r)

	var resp generateNamesResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	expected := []string{
		"Test Dealership Pro",
		"Test Dealership Connect",
		"Test Dealership Hub",
		"Test Dealership Platform",
		"Test Dealership Direct",
	}
	if len(resp.Suggestions) != len(expected) {
		t.Fatalf("got %d suggestions, expected %d", len(resp.Suggestions), len(expected))
	}
	for i := range expected {
		if resp.Suggestions[i] != expected[i] {
			t.Errorf("suggestion[%d] = %q, expected %q", i, resp.Suggestions[i], expected[i])
		}
	}
}
