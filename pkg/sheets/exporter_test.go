package sheets

import (
	"context"
	"testing"
)

func TestAppendWithoutConfiguration(t *testing.T) {
	tests := []struct {
		name          string
		credentials   string
		spreadsheetID string
	}{
		{"both missing", "", ""},
		{"credentials only", `{"type":"service_account"}`, ""},
		{"spreadsheet id only", "", "1abc"},
	}

	row := []string{"Test Dealership", "123 Test St", "555-1234"}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New([]byte(tt.credentials), tt.spreadsheetID)
			res := e.Append(context.Background(), row)
			if res.Success {
				t.Error("expected Success=false without configuration")
			}
			if res.Message != "Google Sheets not configured" {
				t.Errorf("Message = %q, expected %q", res.Message, "Google Sheets not configured")
			}
		})
	}
}

func TestInitializeWithoutConfiguration(t *testing.T) {
	e := New(nil, "")
	res := e.Initialize(context.Background())
	if res.Success {
		t.Error("expected Success=false without configuration")
	}
	if res.Message != "Google Sheets not configured" {
		t.Errorf("Message = %q, expected %q", res.Message, "Google Sheets not configured")
	}
}

func TestHeadersMatchRowLayout(t *testing.T) {
	h := Headers()
	if len(h) != 22 {
		t.Fatalf("Headers length = %d, expected 22 (timestamp + 21 fields)", len(h))
	}
	if h[0] != "Timestamp" {
		t.Errorf("first header = %q, expected Timestamp", h[0])
	}
	seen := make(map[string]bool, len(h))
	for _, name := range h {
		if name == "" {
			t.Error("empty header name")
		}
		if seen[name] {
			t.Errorf("duplicate header %q", name)
		}
		seen[name] = true
	}
}
