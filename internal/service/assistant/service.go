package assistant

import (
	"context"

	"github.com/sebenza-hr/staffdesk-bff/internal/domain/assistant"
)

type AssistantServiceImpl struct {
	repo assistant.AssistantRepository
}

func NewAssistantService(repo assistant.AssistantRepository) assistant.AssistantService {
	return &AssistantServiceImpl{repo: repo}
}

func (s *AssistantServiceImpl) History(ctx context.Context, userID string) ([]assistant.ChatMessage, error) {
	return s.repo.History(ctx, userID)
}

func (s *AssistantServiceImpl) Send(ctx context.Context, userID string, req assistant.ChatRequest) (assistant.ChatMessage, error) {
	if err := req.Validate(); err != nil {
		return assistant.ChatMessage{}, err
	}
	return s.repo.Send(ctx, userID, req.Message)
}
