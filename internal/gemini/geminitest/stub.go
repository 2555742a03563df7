// Package geminitest provides a scripted gemini.Generator for tests.
package geminitest

import (
	"context"
	"sync"

	"github.com/saulo-duarte/dissertai-lambda/internal/gemini"
)

var _ gemini.Generator = (*StubGenerator)(nil)

// StubGenerator is a Generator that returns canned output and records prompts.
type StubGenerator struct {
	Response string
	Err      error

	mu      sync.Mutex
	Prompts []string
}

func (s *StubGenerator) GenerateText(_ context.Context, prompt string) (string, error) {
	s.mu.Lock()
	s.Prompts = append(s.Prompts, prompt)
	s.mu.Unlock()

	if s.Err != nil {
		return "", s.Err
	}
	return s.Response, nil
}

func (s *StubGenerator) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Prompts)
}

func (s *StubGenerator) LastPrompt() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.Prompts) == 0 {
		return ""
	}
	return s.Prompts[len(s.Prompts)-1]
}
