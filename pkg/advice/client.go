package advice

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"google.golang.org/genai"
)

// Generator is the text-generation surface the advice service depends on.
type Generator interface {
	GenerateText(ctx context.Context, model, prompt string) (string, error)
}

// GeminiGenerator talks to the Gemini API. Credentials come from the
// environment (GEMINI_API_KEY, or the Vertex variables when
// GOOGLE_GENAI_USE_VERTEXAI is set).
type GeminiGenerator struct {
	client *genai.Client
}

func NewGeminiGenerator(ctx context.Context) (*GeminiGenerator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &GeminiGenerator{client: client}, nil
}

// NewGenerator returns the Gemini generator, or a permanently failing one
// when the client cannot be constructed. The advice service already degrades
// model failures to fallbacks, so a missing API key only disables advice.
func NewGenerator(ctx context.Context) Generator {
	generator, err := NewGeminiGenerator(ctx)
	if err != nil {
		log.Warnf("advice generation unavailable: %v", err)
		return unavailableGenerator{err: err}
	}
	return generator
}

type unavailableGenerator struct {
	err error
}

func (u unavailableGenerator) GenerateText(ctx context.Context, model, prompt string) (string, error) {
	return "", u.err
}

func (g *GeminiGenerator) GenerateText(ctx context.Context, model, prompt string) (string, error) {
	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: prompt},
			},
		},
	}

	resp, err := g.client.Models.GenerateContent(ctx, model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	return resp.Text(), nil
}
