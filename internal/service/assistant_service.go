package service

import (
	"context"
	"fmt"
	"strings"

	"title-assist-be/internal/constant"
	"title-assist-be/internal/dto"
	"title-assist-be/pkg/conversation"
	"title-assist-be/pkg/llm"
)

// IAssistantService wraps the LLM behind the Title Tom persona. Ask serves
// the widget's freeform mode; Proxy serves the raw /chat endpoint used by
// older widget builds that manage their own history.
type IAssistantService interface {
	conversation.Assistant
	Proxy(ctx context.Context, request *dto.ChatProxyRequest) (*dto.ChatProxyResponse, error)
}

type assistantService struct {
	provider llm.LLMProvider
}

func NewAssistantService(provider llm.LLMProvider) IAssistantService {
	return &assistantService{provider: provider}
}

func (s *assistantService) Ask(ctx context.Context, question string) (string, error) {
	history := []llm.Message{
		{Role: "system", Content: constant.AssistantSystemPrompt},
		{Role: "user", Content: question},
	}

	reply, err := s.provider.Chat(ctx, history,
		llm.WithTemperature(0.4),
		llm.WithMaxTokens(400),
	)
	if err != nil {
		return "", fmt.Errorf("assistant chat: %w", err)
	}
	return strings.TrimSpace(reply), nil
}

func (s *assistantService) Proxy(ctx context.Context, request *dto.ChatProxyRequest) (*dto.ChatProxyResponse, error) {
	// The persona prompt is always pinned first, replacing any system
	// message the client sent.
	history := make([]llm.Message, 0, len(request.Messages)+1)
	history = append(history, llm.Message{Role: "system", Content: constant.AssistantSystemPrompt})
	for _, m := range request.Messages {
		if m.Role == "system" {
			continue
		}
		history = append(history, llm.Message{Role: m.Role, Content: m.Content})
	}

	reply, err := s.provider.Chat(ctx, history,
		llm.WithTemperature(0.4),
		llm.WithMaxTokens(400),
	)
	if err != nil {
		return nil, fmt.Errorf("chat proxy: %w", err)
	}

	return &dto.ChatProxyResponse{Reply: strings.TrimSpace(reply)}, nil
}
