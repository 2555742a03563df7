package conversation

import "gorm.io/gorm"

type ConversationContainer struct {
	Handler *Handler
	Service Service
	Repo    Repository
}

func NewConversationContainer(db *gorm.DB) *ConversationContainer {
	repo := NewRepository(db)
	service := NewService(repo)
	handler := NewHandler(service)

	return &ConversationContainer{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
