package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/sebenza-hr/staffdesk-bff/internal/domain/assistant"
	"github.com/sebenza-hr/staffdesk-bff/internal/handler/http/response"
	"github.com/sebenza-hr/staffdesk-bff/internal/pkg/jwt"
)

type AssistantHandler interface {
	History(w http.ResponseWriter, r *http.Request)
	Send(w http.ResponseWriter, r *http.Request)
}

type AssistantHandlerImpl struct {
	jwtService       jwt.Service
	assistantService assistant.AssistantService
}

func NewAssistantHandler(jwtService jwt.Service, assistantService assistant.AssistantService) AssistantHandler {
	return &AssistantHandlerImpl{
		jwtService:       jwtService,
		assistantService: assistantService,
	}
}

// History implements AssistantHandler.
func (h *AssistantHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	scope, err := h.jwtService.ScopeFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, "Failed to extract claims from context")
		return
	}

	messages, err := h.assistantService.History(r.Context(), scope.UserID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, messages)
}

// Send implements AssistantHandler.
func (h *AssistantHandlerImpl) Send(w http.ResponseWriter, r *http.Request) {
	scope, err := h.jwtService.ScopeFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, "Failed to extract claims from context")
		return
	}

	var req assistant.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Assistant send decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	message, err := h.assistantService.Send(r.Context(), scope.UserID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, message)
}
