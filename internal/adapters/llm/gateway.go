package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/IgorKammerGrahl/MoodTrack/internal/observability"
)

// generateFunc matches genai's GenerateContent; a field to allow test injection.
type generateFunc func(ctx context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)

// Gateway wraps a single Gemini text-completion call with a bounded
// wait and a fallback. It implements domain.Completer: Complete never
// fails outward. Running without a credential is a supported
// configuration, not an error — every call then returns its fallback.
type Gateway struct {
	modelName string
	timeout   time.Duration
	generate  generateFunc
}

// NewGateway creates a Gateway. An empty apiKey yields a disabled
// gateway that always answers with the fallback.
func NewGateway(ctx context.Context, apiKey, modelName string, timeout time.Duration) (*Gateway, error) {
	g := &Gateway{
		modelName: modelName,
		timeout:   timeout,
	}

	if apiKey == "" {
		return g, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating genai client: %w", err)
	}

	g.generate = client.Models.GenerateContent
	return g, nil
}

// Complete implements domain.Completer. Exactly one attempt per
// invocation; timeout, transport error and empty response all
// degrade to fallback.
func (g *Gateway) Complete(ctx context.Context, system, user, fallback string) string {
	if g.generate == nil {
		return fallback
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	temp := float32(0.7)
	topP := float32(0.9)

	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
		Temperature:       &temp,
		TopP:              &topP,
		MaxOutputTokens:   512,
	}

	contents := []*genai.Content{
		genai.NewContentFromText(user, genai.RoleUser),
	}

	res, err := g.generate(ctx, g.modelName, contents, cfg)
	if err != nil {
		observability.Logger().Warn("model call failed, using fallback", "model", g.modelName, "error", err)
		return fallback
	}

	text := strings.TrimSpace(res.Text())
	if text == "" {
		observability.Logger().Warn("model returned empty text, using fallback", "model", g.modelName)
		return fallback
	}

	return text
}
