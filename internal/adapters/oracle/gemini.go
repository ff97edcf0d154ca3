package oracle

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"smart_travel/internal/adapters/observability"
)

var DefaultGeminiModels = []string{
	"gemini-2.0-flash",
	"gemini-1.5-flash-8b",
	"gemini-1.5-flash",
	"gemini-1.5-pro",
}

// Gemini is one named model on a shared client.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini opens one client and returns a Model per name, in order. Close
// the returned client on shutdown. Extra options (endpoint, HTTP client) are
// passed through to the SDK.
func NewGemini(ctx context.Context, apiKey string, names []string, opts ...option.ClientOption) ([]Model, *genai.Client, error) {
	if len(names) == 0 {
		names = DefaultGeminiModels
	}
	client, err := genai.NewClient(ctx, append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)...)
	if err != nil {
		return nil, nil, fmt.Errorf("gemini client: %w", err)
	}
	out := make([]Model, 0, len(names))
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			out = append(out, &Gemini{client: client, model: n})
		}
	}
	return out, client, nil
}

func (g *Gemini) Name() string { return g.model }

func (g *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	m := g.client.GenerativeModel(g.model)
	m.SetTemperature(0.4)

	start := time.Now()
	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	status := 200
	if err != nil {
		status = 0
	}
	observability.ObserveExternal("gemini", g.model, status, time.Since(start))
	if err != nil {
		return "", fmt.Errorf("gemini %s: %w", g.model, err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", ErrEmpty
	}
	var b strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		if t, ok := p.(genai.Text); ok {
			b.WriteString(string(t))
		}
	}
	return b.String(), nil
}
