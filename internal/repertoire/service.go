package repertoire

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/saulo-duarte/dissertai-lambda/internal/config"
	"github.com/saulo-duarte/dissertai-lambda/internal/gemini"
)

var ErrEmptyBatch = errors.New("model returned no repertoires")

type Service interface {
	GenerateBatch(ctx context.Context, query string, filters Filters, batchSize int) Batch
	Search(ctx context.Context, req SearchRequest) SearchResponse
}

type service struct {
	generator gemini.Generator
}

func NewService(generator gemini.Generator) Service {
	return &service{generator: generator}
}

// GenerateBatch makes one model call and falls back to the templates on any
// failure. The primary path honors batchSize; the fallback always has
// FallbackSize items.
func (s *service) GenerateBatch(ctx context.Context, query string, filters Filters, batchSize int) Batch {
	log := config.WithContext(ctx).WithField("query", query)

	prompt := BuildBatchPrompt(query, filters, clampBatchSize(batchSize))
	raw, err := s.generator.GenerateText(ctx, prompt)
	if err == nil {
		var items []Repertoire
		items, err = ParseBatch(raw)
		if err == nil {
			log.Infof("[REPERTOIRE] %d repertórios gerados pela IA", len(items))
			return Batch{Items: items, Source: SourceAI}
		}
	}

	log.WithError(err).Warn("[REPERTOIRE] Falha na geração, usando repertórios locais")
	return Batch{Items: Fallback(query, filters), Source: SourceFallback}
}

func (s *service) Search(ctx context.Context, req SearchRequest) SearchResponse {
	analysis := Analyze(req.Query)
	batch := s.GenerateBatch(ctx, req.Query, req.Filters, req.BatchSize)

	return SearchResponse{
		Analysis:    analysis,
		Repertoires: Rank(req.Query, batch.Items),
		Source:      batch.Source,
	}
}

// ParseBatch accepts a bare array or an object with a "repertoires" field.
func ParseBatch(raw string) ([]Repertoire, error) {
	clean := gemini.StripCodeFence(raw)

	var items []Repertoire
	if strings.HasPrefix(clean, "[") {
		if err := json.Unmarshal([]byte(clean), &items); err != nil {
			return nil, fmt.Errorf("falha ao decodificar JSON: %w", err)
		}
	} else {
		var wrapped struct {
			Repertoires []Repertoire `json:"repertoires"`
		}
		if err := json.Unmarshal([]byte(clean), &wrapped); err != nil {
			return nil, fmt.Errorf("falha ao decodificar JSON: %w", err)
		}
		items = wrapped.Repertoires
	}

	if len(items) == 0 {
		return nil, ErrEmptyBatch
	}
	return items, nil
}
