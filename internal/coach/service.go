package coach

import (
	"context"
	"strings"

	"github.com/saulo-duarte/dissertai-lambda/internal/config"
	"github.com/saulo-duarte/dissertai-lambda/internal/essay"
	"github.com/saulo-duarte/dissertai-lambda/internal/gemini"
)

type Service interface {
	Suggest(ctx context.Context, req SuggestionRequest) SuggestionResponse
}

type service struct {
	generator gemini.Generator
}

func NewService(generator gemini.Generator) Service {
	return &service{generator: generator}
}

func (s *service) Suggest(ctx context.Context, req SuggestionRequest) SuggestionResponse {
	log := config.WithContext(ctx).WithField("section", req.Section)

	level := essay.DetectLevel(req.Context)
	resp := SuggestionResponse{Level: level, Section: req.Section, Source: SourceFallback}

	if !req.Section.IsValid() {
		log.Warn("[COACH] Seção desconhecida, retornando orientação genérica")
		resp.Response = genericFallback
		return resp
	}

	prompt := BuildPrompt(req.Message, req.Section, req.Context, level)
	text, err := s.generator.GenerateText(ctx, prompt)
	if err != nil || strings.TrimSpace(text) == "" {
		log.WithError(err).Warn("[COACH] Falha na IA, usando sugestão local")
		resp.Response = FallbackSuggestion(req.Section, level)
		return resp
	}

	log.WithField("level", level).Info("[COACH] Sugestão gerada pela IA")
	resp.Response = text
	resp.Source = SourceAI
	return resp
}
