package coach

import "github.com/saulo-duarte/dissertai-lambda/internal/essay"

type Source string

const (
	SourceAI       Source = "ai"
	SourceFallback Source = "fallback"
)

type SuggestionRequest struct {
	Message string        `json:"message" validate:"required,max=4000"`
	Section essay.Section `json:"section" validate:"required"`
	Context essay.Context `json:"context"`
}

type SuggestionResponse struct {
	Response string        `json:"response"`
	Source   Source        `json:"source"`
	Level    essay.Level   `json:"level"`
	Section  essay.Section `json:"section"`
}
