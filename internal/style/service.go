package style

import (
	"context"
	"errors"
	"strings"

	"github.com/saulo-duarte/dissertai-lambda/internal/config"
	"github.com/saulo-duarte/dissertai-lambda/internal/gemini"
)

var (
	ErrEmptyText   = errors.New("text is required")
	ErrUnknownType = errors.New("unknown modification type")
)

type Service interface {
	Modify(ctx context.Context, req Request) (Response, error)
}

type service struct {
	generator gemini.Generator
	cache     Cache
}

func NewService(generator gemini.Generator, cache Cache) Service {
	return &service{generator: generator, cache: cache}
}

// Modify checks the cache, then the model, then the local tables. Only model
// output is cached so a recovered model replaces earlier fallbacks.
func (s *service) Modify(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.Text) == "" {
		return Response{}, ErrEmptyText
	}
	if !req.Type.IsValid() {
		return Response{}, ErrUnknownType
	}

	log := config.WithContext(ctx).WithField("type", req.Type)
	key := CacheKey(req)

	cached, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		log.WithError(err).Warn("[STYLE] Falha ao ler cache")
	}
	if ok {
		log.Debug("[STYLE] Resultado servido do cache")
		return Response{ModifiedText: cached, Source: SourceCache}, nil
	}

	raw, err := s.generator.GenerateText(ctx, BuildPrompt(req))
	text := cleanOutput(raw)
	if err != nil || text == "" {
		log.WithError(err).Warn("[STYLE] Falha na IA, usando reescrita local")
		return Response{ModifiedText: Rewrite(req.Text, req.Type, req.Config), Source: SourceFallback}, nil
	}

	if err := s.cache.Set(ctx, key, text); err != nil {
		log.WithError(err).Warn("[STYLE] Falha ao gravar cache")
	}
	log.Info("[STYLE] Texto reescrito pela IA")
	return Response{ModifiedText: text, Source: SourceAI}, nil
}

func cleanOutput(raw string) string {
	text := gemini.StripCodeFence(raw)
	if len(text) >= 2 && strings.HasPrefix(text, `"`) && strings.HasSuffix(text, `"`) {
		text = strings.TrimSpace(text[1 : len(text)-1])
	}
	return text
}
