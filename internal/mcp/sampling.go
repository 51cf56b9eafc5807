package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	MethodSamplingCreateMessage = "sampling/createMessage"
)

// SamplingMessage is one turn of a sampling conversation.
type SamplingMessage struct {
	Role       string  `json:"role"`
	Content    Content `json:"content"`
	Model      string  `json:"model,omitempty"`
	StopReason string  `json:"stopReason,omitempty"`
}

type CreateMessageRequest struct {
	Messages         []SamplingMessage `json:"messages"`
	ModelPreferences M                 `json:"modelPreferences,omitempty"`
	IncludeContext   string            `json:"includeContext,omitempty"`
	MaxTokens        int               `json:"maxTokens,omitempty"`
}

// Sampler generates an assistant message from a message history. The
// live backend and the deterministic stub both implement it; the choice
// is made once at startup, not per call.
type Sampler interface {
	CreateMessage(ctx context.Context, req CreateMessageRequest) (*SamplingMessage, error)
}

// SamplingAdapter delegates to the configured backend and falls back to
// the deterministic mock when the backend fails, so the protocol server
// stays testable without a live model connection.
type SamplingAdapter struct {
	backend Sampler
}

func NewSamplingAdapter(backend Sampler) *SamplingAdapter {
	return &SamplingAdapter{backend: backend}
}

func (a *SamplingAdapter) CreateMessage(ctx context.Context, req CreateMessageRequest) *SamplingMessage {
	if a.backend != nil {
		msg, err := a.backend.CreateMessage(ctx, req)
		if err == nil {
			return msg
		}
		log.Warn().Err(err).Msg("sampling backend failed, using mock response")
	}
	return MockMessage(req.Messages)
}

// MockSampler is the deterministic stub backend. Side-effect-free,
// never errors.
type MockSampler struct{}

func (MockSampler) CreateMessage(_ context.Context, req CreateMessageRequest) (*SamplingMessage, error) {
	return MockMessage(req.Messages), nil
}

// MockMessage derives a canned assistant reply from the last user
// message by keyword matching against a small fixed vocabulary.
func MockMessage(messages []SamplingMessage) *SamplingMessage {
	var text string
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == "user" {
			text = messages[i].Content.Text
			break
		}
	}

	lower := strings.ToLower(text)
	var reply string
	switch {
	case strings.Contains(lower, "weather"):
		reply = "Based on the available data, the weather in the requested location is currently partly cloudy with moderate temperatures."
	case strings.Contains(lower, "calculate"):
		reply = "I can help you with calculations. Please provide the mathematical expression you'd like me to evaluate."
	case strings.Contains(lower, "code"):
		reply = "I can help you write code. Please specify the programming language and the task you'd like to accomplish."
	default:
		if len(text) > 50 {
			text = text[:50]
		}
		reply = fmt.Sprintf("I received your message: '%s...'. How can I help you with this?", text)
	}

	return &SamplingMessage{
		Role:       "assistant",
		Content:    Content{Type: "text", Text: reply},
		Model:      "modelctx-mock",
		StopReason: "endTurn",
	}
}
