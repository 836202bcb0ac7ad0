package dto

import (
	"time"

	"title-assist-be/pkg/conversation"
)

type StartSessionResponse struct {
	SessionId string                `json:"session_id"`
	Token     string                `json:"token"`
	Effects   []conversation.Effect `json:"effects"`
}

type SendMessageRequest struct {
	Message string `json:"message" validate:"required,max=2000"`
}

type SelectOptionRequest struct {
	OptionId string `json:"option_id" validate:"required,max=64"`
}

type ConversationResponse struct {
	SessionId string                `json:"session_id"`
	Mode      string                `json:"mode"`
	Effects   []conversation.Effect `json:"effects"`
}

type TranscriptMessageResponse struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	OptionId  string    `json:"option_id,omitempty"`
	Mode      string    `json:"mode,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
