package conversation

import (
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/dissertai-lambda/internal/essay"
	"gorm.io/datatypes"
)

type MessageType string

const (
	MessageTypeUser MessageType = "user"
	MessageTypeAI   MessageType = "ai"
)

// Conversation is one saved coaching session. Messages are kept encrypted and
// only decoded at the service boundary.
type Conversation struct {
	ID             uuid.UUID                         `gorm:"type:uuid;primaryKey" json:"id"`
	UserID         uuid.UUID                         `gorm:"type:uuid;column:user_id;not null;index" json:"user_id"`
	Title          string                            `json:"title"`
	Version        int                               `gorm:"not null;default:1" json:"version"`
	CurrentSection essay.Section                     `gorm:"column:current_section" json:"current_section"`
	Context        datatypes.JSONType[essay.Context] `gorm:"column:essay_context" json:"-"`
	Messages       string                            `gorm:"column:messages;type:text" json:"-"`
	CreatedAt      time.Time                         `json:"created_at"`
	UpdatedAt      time.Time                         `json:"updated_at"`
}

type Message struct {
	ID        string        `json:"id"`
	Type      MessageType   `json:"type" validate:"required,oneof=user ai"`
	Content   string        `json:"content" validate:"required"`
	Section   essay.Section `json:"section,omitempty" validate:"omitempty,oneof=optimization tema tese introducao desenvolvimento1 desenvolvimento2 conclusao"`
	Timestamp time.Time     `json:"timestamp"`
}
