package coach

import "github.com/saulo-duarte/dissertai-lambda/internal/gemini"

type CoachContainer struct {
	Handler *Handler
	Service Service
}

func NewCoachContainer(generator gemini.Generator) *CoachContainer {
	service := NewService(generator)
	handler := NewHandler(service)

	return &CoachContainer{
		Handler: handler,
		Service: service,
	}
}
