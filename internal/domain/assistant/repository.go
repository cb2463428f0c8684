package assistant

import "context"

// AssistantRepository relays chat traffic to the upstream assistant endpoint.
type AssistantRepository interface {
	History(ctx context.Context, userID string) ([]ChatMessage, error)
	Send(ctx context.Context, userID, message string) (ChatMessage, error)
}
