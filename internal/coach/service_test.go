package coach_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/saulo-duarte/dissertai-lambda/internal/coach"
	"github.com/saulo-duarte/dissertai-lambda/internal/essay"
	"github.com/saulo-duarte/dissertai-lambda/internal/gemini/geminitest"
	"github.com/stretchr/testify/assert"
)

func TestSuggestUsesModel(t *testing.T) {
	gen := &geminitest.StubGenerator{Response: "🎯 INTRODUÇÃO\n..."}
	svc := coach.NewService(gen)

	resp := svc.Suggest(context.Background(), coach.SuggestionRequest{
		Message: "como começo?",
		Section: essay.SectionIntroducao,
	})

	assert.Equal(t, coach.SourceAI, resp.Source)
	assert.Equal(t, "🎯 INTRODUÇÃO\n...", resp.Response)
	assert.Equal(t, essay.LevelBeginner, resp.Level)
	assert.Equal(t, 1, gen.Calls())
}

func TestSuggestFallsBackOnError(t *testing.T) {
	gen := &geminitest.StubGenerator{Err: errors.New("quota exceeded")}
	svc := coach.NewService(gen)

	resp := svc.Suggest(context.Background(), coach.SuggestionRequest{
		Message: "e a conclusão?",
		Section: essay.SectionConclusao,
	})

	assert.Equal(t, coach.SourceFallback, resp.Source)
	assert.Equal(t, coach.FallbackSuggestion(essay.SectionConclusao, essay.LevelBeginner), resp.Response)
	assert.Equal(t, 1, gen.Calls(), "no retry")
}

func TestSuggestFallsBackOnBlankText(t *testing.T) {
	gen := &geminitest.StubGenerator{Response: "   "}
	resp := coach.NewService(gen).Suggest(context.Background(), coach.SuggestionRequest{
		Message: "tema?",
		Section: essay.SectionTema,
	})

	assert.Equal(t, coach.SourceFallback, resp.Source)
	assert.NotEmpty(t, resp.Response)
}

func TestSuggestUnknownSectionSkipsModel(t *testing.T) {
	gen := &geminitest.StubGenerator{Response: "nunca usado"}
	resp := coach.NewService(gen).Suggest(context.Background(), coach.SuggestionRequest{
		Message: "oi",
		Section: "rascunho",
	})

	assert.Equal(t, coach.SourceFallback, resp.Source)
	assert.True(t, strings.HasPrefix(resp.Response, "🎯 Continue desenvolvendo"))
	assert.Zero(t, gen.Calls())
}

func TestSuggestReportsDetectedLevel(t *testing.T) {
	long := strings.Repeat("a", 160) + " portanto "
	ctx := essay.Context{
		Paragrafos: essay.Paragraphs{Introducao: long, Desenvolvimento1: long},
	}
	gen := &geminitest.StubGenerator{Response: "ok"}

	resp := coach.NewService(gen).Suggest(context.Background(), coach.SuggestionRequest{
		Message: "revise",
		Section: essay.SectionDesenvolvimento2,
		Context: ctx,
	})

	assert.Equal(t, essay.LevelAdvanced, resp.Level)
	assert.Contains(t, gen.LastPrompt(), "máximo 180 palavras")
}
