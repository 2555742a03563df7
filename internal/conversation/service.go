package conversation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/saulo-duarte/dissertai-lambda/internal/config"
	"github.com/saulo-duarte/dissertai-lambda/internal/essay"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrConversationNotFound = errors.New("conversation not found")
	ErrVersionConflict      = errors.New("conversation was modified by another request")
)

const (
	defaultTitle   = "Nova conversa"
	maxTitleLength = 60
	recentLimit    = 5
)

type Service interface {
	Create(ctx context.Context, userID uuid.UUID, dto CreateConversationDTO) (*ConversationResponse, error)
	Get(ctx context.Context, id, userID uuid.UUID) (*ConversationResponse, error)
	List(ctx context.Context, userID uuid.UUID) ([]ConversationSummary, error)
	Replace(ctx context.Context, id, userID uuid.UUID, dto UpdateConversationDTO) (*ConversationResponse, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
	Dashboard(ctx context.Context, userID uuid.UUID) (*DashboardResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, userID uuid.UUID, dto CreateConversationDTO) (*ConversationResponse, error) {
	messages := normalizeMessages(dto.Messages)
	blob, err := encryptMessages(messages)
	if err != nil {
		return nil, err
	}

	c := Conversation{
		ID:             uuid.New(),
		UserID:         userID,
		Title:          resolveTitle(dto.Title, dto.Context, messages),
		Version:        1,
		CurrentSection: dto.CurrentSection,
		Context:        datatypes.NewJSONType(dto.Context),
		Messages:       blob,
	}
	if err := s.repo.Create(ctx, &c); err != nil {
		return nil, fmt.Errorf("failed to create conversation: %w", err)
	}

	config.WithContext(ctx).WithField("conversation_id", c.ID).Info("Conversation created")
	return toResponse(&c, messages), nil
}

func (s *service) Get(ctx context.Context, id, userID uuid.UUID) (*ConversationResponse, error) {
	c, err := s.findOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	messages, err := decryptMessages(c.Messages)
	if err != nil {
		return nil, err
	}
	return toResponse(c, messages), nil
}

func (s *service) List(ctx context.Context, userID uuid.UUID) ([]ConversationSummary, error) {
	list, err := s.repo.FindAllByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}

	summaries := make([]ConversationSummary, 0, len(list))
	for i := range list {
		messages, err := decryptMessages(list[i].Messages)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, toSummary(&list[i], len(messages)))
	}
	return summaries, nil
}

func (s *service) Replace(ctx context.Context, id, userID uuid.UUID, dto UpdateConversationDTO) (*ConversationResponse, error) {
	c, err := s.findOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if c.Version != dto.Version {
		return nil, ErrVersionConflict
	}

	messages := normalizeMessages(dto.Messages)
	blob, err := encryptMessages(messages)
	if err != nil {
		return nil, err
	}

	c.Title = resolveTitle(dto.Title, dto.Context, messages)
	c.CurrentSection = dto.CurrentSection
	c.Context = datatypes.NewJSONType(dto.Context)
	c.Messages = blob

	if err := s.repo.UpdateVersioned(ctx, c, dto.Version); err != nil {
		if errors.Is(err, ErrVersionConflict) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update conversation: %w", err)
	}
	return toResponse(c, messages), nil
}

func (s *service) Delete(ctx context.Context, id, userID uuid.UUID) error {
	if _, err := s.findOwned(ctx, id, userID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// findOwned hides other users' conversations behind ErrConversationNotFound.
func (s *service) findOwned(ctx context.Context, id, userID uuid.UUID) (*Conversation, error) {
	c, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrConversationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load conversation: %w", err)
	}
	if c.UserID != userID {
		return nil, ErrConversationNotFound
	}
	return c, nil
}

func normalizeMessages(in []Message) []Message {
	out := make([]Message, len(in))
	now := time.Now()
	for i, m := range in {
		if m.ID == "" {
			m.ID = uuid.NewString()
		}
		if m.Timestamp.IsZero() {
			m.Timestamp = now
		}
		out[i] = m
	}
	return out
}

func encryptMessages(messages []Message) (string, error) {
	raw, err := json.Marshal(messages)
	if err != nil {
		return "", err
	}
	blob, err := config.Encrypt(string(raw))
	if err != nil {
		return "", fmt.Errorf("failed to encrypt messages: %w", err)
	}
	return blob, nil
}

func decryptMessages(blob string) ([]Message, error) {
	if blob == "" {
		return []Message{}, nil
	}
	raw, err := config.Decrypt(blob)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt messages: %w", err)
	}
	messages := []Message{}
	if err := json.Unmarshal([]byte(raw), &messages); err != nil {
		return nil, fmt.Errorf("failed to decode messages: %w", err)
	}
	return messages, nil
}

// resolveTitle prefers an explicit title, then the essay proposal, then the
// first user message.
func resolveTitle(title string, ctx essay.Context, messages []Message) string {
	if t := strings.TrimSpace(title); t != "" {
		return t
	}
	if p := strings.TrimSpace(ctx.Proposta); p != "" {
		return truncate(p, maxTitleLength)
	}
	for _, m := range messages {
		if m.Type == MessageTypeUser {
			if t := strings.TrimSpace(m.Content); t != "" {
				return truncate(t, maxTitleLength)
			}
		}
	}
	return defaultTitle
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return strings.TrimSpace(string([]rune(s)[:n])) + "..."
}

func toResponse(c *Conversation, messages []Message) *ConversationResponse {
	return &ConversationResponse{
		ID:             c.ID,
		Title:          c.Title,
		Version:        c.Version,
		CurrentSection: c.CurrentSection,
		Context:        c.Context.Data(),
		Messages:       messages,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

func toSummary(c *Conversation, messageCount int) ConversationSummary {
	return ConversationSummary{
		ID:             c.ID,
		Title:          c.Title,
		Version:        c.Version,
		CurrentSection: c.CurrentSection,
		Level:          essay.DetectLevel(c.Context.Data()),
		MessageCount:   messageCount,
		UpdatedAt:      c.UpdatedAt,
	}
}
