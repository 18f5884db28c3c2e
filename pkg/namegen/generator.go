// Package namegen suggests platform names for a dealership. The primary
// strategy asks Gemini; any failure falls through to a deterministic
// suffix list so the operation can never fail outright.
package namegen

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"google.golang.org/genai"
)

const defaultModel = "gemini-2.5-flash"

const systemPrompt = "You are a branding expert naming customer-facing sales platforms " +
	"for subprime auto dealerships. Names must be short (one to three words), professional, " +
	"and convey trust and financial accessibility. Respond with a JSON array of exactly " +
	"five name strings and nothing else."

var fallbackSuffixes = []string{"Pro", "Connect", "Hub", "Platform", "Direct"}

// Fallback builds the deterministic suggestion list used whenever the
// model call fails. Always five non-empty strings.
func Fallback(dealershipName string) []string {
	out := make([]string, 0, len(fallbackSuffixes))
	for _, suffix := range fallbackSuffixes {
		out = append(out, strings.TrimSpace(dealershipName+" "+suffix))
	}
	return out
}

type Generator struct {
	apiKey string
	model  string
}

func New(apiKey, model string) *Generator {
	if model == "" {
		model = defaultModel
	}
	return &Generator{apiKey: apiKey, model: model}
}

func NewFromEnv() *Generator {
	return New(os.Getenv("GEMINI_API_KEY"), os.Getenv("GEMINI_MODEL"))
}

// Generate returns 1..5 non-empty suggestions. It never returns an error:
// an unreachable or misbehaving upstream yields the fallback list.
func (g *Generator) Generate(ctx context.Context, dealershipName, keywords string) []string {
	names, err := g.generate(ctx, dealershipName, keywords)
	if err != nil {
		log.Printf("Name generation falling back: %v", err)
		return Fallback(dealershipName)
	}
	if len(names) > 5 {
		names = names[:5]
	}
	return names
}

func (g *Generator) generate(ctx context.Context, dealershipName, keywords string) ([]string, error) {
	if g.apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: g.apiKey})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	prompt := fmt.Sprintf("Dealership name: %q.", dealershipName)
	if keywords != "" {
		prompt += fmt.Sprintf(" Keywords to steer the suggestions: %s.", keywords)
	}
	prompt += " Suggest exactly five platform names."

	resp, err := client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		Temperature:       genai.Ptr[float32](0.8),
		ResponseMIMEType:  "application/json",
		ResponseSchema: &genai.Schema{
			Type:  genai.TypeArray,
			Items: &genai.Schema{Type: genai.TypeString},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}

	var raw []string
	if err := json.Unmarshal([]byte(resp.Text()), &raw); err != nil {
		return nil, fmt.Errorf("parse suggestions: %w", err)
	}

	names := make([]string, 0, len(raw))
	for _, n := range raw {
		if n = strings.TrimSpace(n); n != "" {
			names = append(names, n)
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("model returned no usable names")
	}
	return names, nil
}
