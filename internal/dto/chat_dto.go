package dto

// ChatProxyMessage mirrors the chat completions wire format so existing
// widget builds can keep posting their full history.
type ChatProxyMessage struct {
	Role    string `json:"role" validate:"required,oneof=system user assistant"`
	Content string `json:"content" validate:"required"`
}

type ChatProxyRequest struct {
	Messages []ChatProxyMessage `json:"messages" validate:"required,min=1,max=50,dive"`
}

type ChatProxyResponse struct {
	Reply string `json:"reply"`
}
