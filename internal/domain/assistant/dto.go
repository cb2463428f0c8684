package assistant

import (
	"time"

	"github.com/sebenza-hr/staffdesk-bff/internal/pkg/validator"
)

type ChatMessage struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"` // "user" or "assistant"
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type ChatRequest struct {
	Message string `json:"message"`
}

func (r ChatRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Message) {
		errs = append(errs, validator.ValidationError{Field: "message", Message: "message is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
