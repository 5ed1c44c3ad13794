package openai

import "fmt"

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type ChatChoice struct {
	Index        int         `json:"index"`
	Message      ChatMessage `json:"message"`
	FinishReason string      `json:"finish_reason"`
}

type ChatResponse struct {
	ID      string       `json:"id"`
	Model   string       `json:"model"`
	Choices []ChatChoice `json:"choices"`
}

type APIError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    any    `json:"code"`
}

type ErrorResponse struct {
	StatusCode int      `json:"-"`
	Detail     APIError `json:"error"`
}

func (e *ErrorResponse) Error() string {
	if e.Detail.Message == "" {
		return fmt.Sprintf("openai retornou status %d", e.StatusCode)
	}
	return e.Detail.Message
}
