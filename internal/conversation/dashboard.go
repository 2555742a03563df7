package conversation

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/saulo-duarte/dissertai-lambda/internal/essay"
)

func (s *service) Dashboard(ctx context.Context, userID uuid.UUID) (*DashboardResponse, error) {
	list, err := s.repo.FindAllByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load dashboard: %w", err)
	}

	resp := &DashboardResponse{Recent: []ConversationSummary{}}
	resp.Stats.Conversations = len(list)

	for i := range list {
		messages, err := decryptMessages(list[i].Messages)
		if err != nil {
			return nil, err
		}

		for _, m := range messages {
			resp.Stats.Messages++
			switch m.Type {
			case MessageTypeUser:
				resp.Stats.UserMessages++
			case MessageTypeAI:
				resp.Stats.AIMessages++
			}
		}

		summary := toSummary(&list[i], len(messages))
		switch summary.Level {
		case essay.LevelAdvanced:
			resp.Levels.Advanced++
		case essay.LevelIntermediate:
			resp.Levels.Intermediate++
		default:
			resp.Levels.Beginner++
		}

		if len(resp.Recent) < recentLimit {
			resp.Recent = append(resp.Recent, summary)
		}
	}

	return resp, nil
}
