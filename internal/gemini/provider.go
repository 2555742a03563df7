package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/saulo-duarte/dissertai-lambda/internal/config"
	"google.golang.org/genai"
)

const DefaultModel = "gemini-2.0-flash"

var (
	ErrMissingAPIKey = errors.New("GEMINI_API_KEY not found in environment variables")
	ErrEmptyResponse = errors.New("resposta vazia do modelo")
)

// Generator is a single-prompt text completion call.
type Generator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

type geminiProvider struct {
	client *genai.Client
	model  string
}

// NewGeminiProvider fails when no API key is configured.
func NewGeminiProvider(ctx context.Context, apiKey, model string) (Generator, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao criar cliente Gemini: %w", err)
	}
	return &geminiProvider{client: client, model: model}, nil
}

func (p *geminiProvider) GenerateText(ctx context.Context, prompt string) (string, error) {
	log := config.WithContext(ctx)

	result, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(prompt), nil)
	if err != nil {
		log.WithError(err).Error("falha ao gerar conteúdo do Gemini")
		return "", fmt.Errorf("falha ao gerar conteúdo: %w", err)
	}

	raw := result.Text()
	log.Debugf("[GEMINI] Resposta bruta:\n%s", raw)

	if strings.TrimSpace(raw) == "" {
		return "", ErrEmptyResponse
	}
	return raw, nil
}

// StripCodeFence removes markdown code fences around a JSON answer.
func StripCodeFence(raw string) string {
	clean := strings.ReplaceAll(raw, "```json", "")
	clean = strings.ReplaceAll(clean, "```", "")
	return strings.TrimSpace(clean)
}
