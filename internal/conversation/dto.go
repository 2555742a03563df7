package conversation

import (
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/dissertai-lambda/internal/essay"
)

type CreateConversationDTO struct {
	Title          string        `json:"title" validate:"max=200"`
	CurrentSection essay.Section `json:"currentSection" validate:"omitempty,oneof=optimization tema tese introducao desenvolvimento1 desenvolvimento2 conclusao"`
	Context        essay.Context `json:"context"`
	Messages       []Message     `json:"messages" validate:"dive"`
}

// UpdateConversationDTO replaces the whole snapshot. Version must be the one
// the client last read.
type UpdateConversationDTO struct {
	Version        int           `json:"version" validate:"required,gte=1"`
	Title          string        `json:"title" validate:"max=200"`
	CurrentSection essay.Section `json:"currentSection" validate:"omitempty,oneof=optimization tema tese introducao desenvolvimento1 desenvolvimento2 conclusao"`
	Context        essay.Context `json:"context"`
	Messages       []Message     `json:"messages" validate:"dive"`
}

type ConversationResponse struct {
	ID             uuid.UUID     `json:"id"`
	Title          string        `json:"title"`
	Version        int           `json:"version"`
	CurrentSection essay.Section `json:"currentSection"`
	Context        essay.Context `json:"context"`
	Messages       []Message     `json:"messages"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
}

type ConversationSummary struct {
	ID             uuid.UUID     `json:"id"`
	Title          string        `json:"title"`
	Version        int           `json:"version"`
	CurrentSection essay.Section `json:"currentSection"`
	Level          essay.Level   `json:"level"`
	MessageCount   int           `json:"messageCount"`
	UpdatedAt      time.Time     `json:"updatedAt"`
}

type DashboardStats struct {
	Conversations int `json:"conversations"`
	Messages      int `json:"messages"`
	UserMessages  int `json:"userMessages"`
	AIMessages    int `json:"aiMessages"`
}

type LevelDistribution struct {
	Beginner     int `json:"beginner"`
	Intermediate int `json:"intermediate"`
	Advanced     int `json:"advanced"`
}

type DashboardResponse struct {
	Stats  DashboardStats        `json:"stats"`
	Levels LevelDistribution     `json:"levels"`
	Recent []ConversationSummary `json:"recent"`
}
