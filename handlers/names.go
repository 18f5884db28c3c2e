package handlers

import (
	"encoding/json"
	"net/http"

	"deallane.io/onboarding/pkg/namegen"
)

type generateNamesRequest struct {
	DealershipName string `json:"dealershipName"`
	Keywords       string `json:"keywords"`
}

type generateNamesResponse struct {
	Suggestions []string `json:"suggestions"`
}

// GenerateNames suggests platform names. Public, and always succeeds:
// a bad body is treated as empty input and an unreachable model yields
// the deterministic fallback list.
func GenerateNames(w http.ResponseWriter, r *http.Request) {
	var req generateNamesRequest
	json.NewDecoder(r.Body).Decode(&req)

	suggestions := namegen.NewFromEnv().Generate(r.Context(), req.DealershipName, req.Keywords)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(generateNamesResponse{Suggestions: suggestions})
}
