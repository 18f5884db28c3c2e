package namegen

import (
	"context"
	"strings"
	"testing"
)

func TestFallbackExactSuggestions(t *testing.T) {
	got := Fallback("Test Dealership")
	expected := []string{
		"Test Dealership Pro",
		"Test Dealership Connect",
		"Test Dealership Hub",
		"Test Dealership Platform",
		"Test Dealership Direct",
	}

	if len(got) != len(expected) {
		t.Fatalf("Fallback returned %d suggestions, expected %d", len(got), len(expected))
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("suggestion[%d] = %q, expected %q", i, got[i], expected[i])
		}
	}
}

func TestFallbackNeverEmpty(t *testing.T) {
	tests := []struct {
		name           string
		dealershipName string
	}{
		{"empty dealership name", ""},
		{"single word", "AutoMax"},
		{"very long name", strings.Repeat("A", 500)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Fallback(tt.dealershipName)
			if len(got) != 5 {
				t.Fatalf("Fallback returned %d suggestions, expected 5", len(got))
			}
			for i, s := range got {
				if s == "" {
					t.Errorf("suggestion[%d] is empty", i)
				}
			}
		})
	}
}

func TestFallbackDiffersPerDealership(t *testing.T) {
	a := Fallback("Sunset Motors")
	b := Fallback("City Auto")
	if a[0] == b[0] {
		t.Errorf("expected distinct suggestions, both were %q", a[0])
	}
	if !strings.Contains(a[0], "Sunset Motors") {
		t.Errorf("suggestion %q does not contain the dealership name", a[0])
	}
}

// With no API key configured the generator must take the fallback path
// without making any network call.
func TestGenerateFallsBackWithoutUpstream(t *testing.T) {
	gen := New("", "")

	tests := []struct {
		name           string
		dealershipName string
		keywords       string
	}{
		{"normal name", "AutoMax Motors", ""},
		{"with keywords", "Credit Solutions Auto", "approval, credit, financing"},
		{"empty name", "", "subprime, credit"},
		{"500 char name", strings.Repeat("A", 500), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := gen.Generate(context.Background(), tt.dealershipName, tt.keywords)
			if len(got) < 1 || len(got) > 5 {
				t.Fatalf("Generate returned %d suggestions, expected 1..5", len(got))
			}
			for i, s := range got {
				if s == "" {
					t.Errorf("suggestion[%d] is empty", i)
				}
			}

			expected := Fallback(tt.dealershipName)
			for i := range expected {
				if got[i] != expected[i] {
					t.Errorf("suggestion[%d] = %q, expected fallback %q", i, got[i], expected[i])
				}
			}
		})
	}
}
