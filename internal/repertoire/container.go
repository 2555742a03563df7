package repertoire

import "github.com/saulo-duarte/dissertai-lambda/internal/gemini"

type RepertoireContainer struct {
	Handler *Handler
	Service Service
}

func NewRepertoireContainer(generator gemini.Generator) *RepertoireContainer {
	service := NewService(generator)
	handler := NewHandler(service)

	return &RepertoireContainer{
		Handler: handler,
		Service: service,
	}
}
