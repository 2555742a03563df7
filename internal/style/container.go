package style

import "github.com/saulo-duarte/dissertai-lambda/internal/gemini"

type StyleContainer struct {
	Handler *Handler
	Service Service
}

func NewStyleContainer(generator gemini.Generator, cache Cache) *StyleContainer {
	service := NewService(generator, cache)
	handler := NewHandler(service)

	return &StyleContainer{
		Handler: handler,
		Service: service,
	}
}
