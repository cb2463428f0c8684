package staffapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/sebenza-hr/staffdesk-bff/internal/domain/assistant"
)

type chatMessageWire struct {
	ID        *string `json:"id"`
	Role      *string `json:"role"`
	Content   *string `json:"content"`
	CreatedAt *string `json:"createdAt"`
}

func decodeChatMessage(w chatMessageWire) assistant.ChatMessage {
	return assistant.ChatMessage{
		ID:        derefString(w.ID),
		Role:      derefString(w.Role),
		Content:   derefString(w.Content),
		CreatedAt: parseTimestamp(derefString(w.CreatedAt)),
	}
}

type AssistantRepository struct {
	client *Client
}

func NewAssistantRepository(client *Client) *AssistantRepository {
	return &AssistantRepository{client: client}
}

func (r *AssistantRepository) History(ctx context.Context, userID string) ([]assistant.ChatMessage, error) {
	query := url.Values{}
	query.Set("userId", userID)

	var payload struct {
		Data []chatMessageWire `json:"data"`
	}
	if err := r.client.get(ctx, "/assistant/messages", query, &payload); err != nil {
		return nil, err
	}

	out := make([]assistant.ChatMessage, 0, len(payload.Data))
	for _, w := range payload.Data {
		out = append(out, decodeChatMessage(w))
	}
	return out, nil
}

func (r *AssistantRepository) Send(ctx context.Context, userID, message string) (assistant.ChatMessage, error) {
	body := map[string]string{
		"userId":  userID,
		"message": message,
	}

	var payload struct {
		Data chatMessageWire `json:"data"`
	}
	if err := r.client.send(ctx, http.MethodPost, "/assistant/messages", body, &payload); err != nil {
		return assistant.ChatMessage{}, err
	}
	return decodeChatMessage(payload.Data), nil
}
