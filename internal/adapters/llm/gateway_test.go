package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"google.golang.org/genai"
)

func TestCompleteWithoutCredential(t *testing.T) {
	g, err := NewGateway(context.Background(), "", "gemini-2.5-flash-lite", time.Second)
	if err != nil {
		t.Fatalf("NewGateway: %v", err)
	}

	got := g.Complete(context.Background(), "system", "user", "fallback text")
	if got != "fallback text" {
		t.Fatalf("expected fallback, got %q", got)
	}
}

func TestCompleteTransportError(t *testing.T) {
	g := &Gateway{
		modelName: "test-model",
		timeout:   time.Second,
		generate: func(ctx context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
			return nil, errors.New("503 service unavailable")
		},
	}

	got := g.Complete(context.Background(), "system", "user", "fallback text")
	if got != "fallback text" {
		t.Fatalf("expected fallback on transport error, got %q", got)
	}
}

func TestCompleteEmptyResponse(t *testing.T) {
	g := &Gateway{
		modelName: "test-model",
		timeout:   time.Second,
		generate: func(ctx context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
			return &genai.GenerateContentResponse{}, nil
		},
	}

	got := g.Complete(context.Background(), "system", "user", "fallback text")
	if got != "fallback text" {
		t.Fatalf("expected fallback on empty response, got %q", got)
	}
}

func TestCompleteTrimsText(t *testing.T) {
	g := &Gateway{
		modelName: "test-model",
		timeout:   time.Second,
		generate: func(ctx context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
			return &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{
					{Content: &genai.Content{Parts: []*genai.Part{{Text: "  texto gerado \n"}}}},
				},
			}, nil
		},
	}

	got := g.Complete(context.Background(), "system", "user", "fallback text")
	if got != "texto gerado" {
		t.Fatalf("expected trimmed model text, got %q", got)
	}
}

func TestCompleteSingleAttempt(t *testing.T) {
	calls := 0
	g := &Gateway{
		modelName: "test-model",
		timeout:   time.Second,
		generate: func(ctx context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
			calls++
			return nil, errors.New("timeout")
		},
	}

	g.Complete(context.Background(), "system", "user", "fallback")
	if calls != 1 {
		t.Fatalf("expected exactly one attempt, got %d", calls)
	}
}
