package assistant

import "context"

type AssistantService interface {
	History(ctx context.Context, userID string) ([]ChatMessage, error)
	Send(ctx context.Context, userID string, req ChatRequest) (ChatMessage, error)
}
