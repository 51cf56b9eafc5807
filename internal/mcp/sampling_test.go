package mcp

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func userMsg(text string) SamplingMessage {
	return SamplingMessage{Role: "user", Content: Content{Type: "text", Text: text}}
}

func TestMockMessageKeywords(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"weather", "What's the WEATHER in Tokyo?", "weather in the requested location"},
		{"calculate", "please calculate this", "help you with calculations"},
		{"code", "write some code for me", "help you write code"},
		{"fallback echoes input", "tell me a story", "I received your message: 'tell me a story"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := MockMessage([]SamplingMessage{userMsg(tt.text)})
			if msg.Role != "assistant" {
				t.Errorf("role = %s", msg.Role)
			}
			if msg.StopReason != "endTurn" {
				t.Errorf("stopReason = %s", msg.StopReason)
			}
			if !strings.Contains(msg.Content.Text, tt.want) {
				t.Errorf("reply %q does not contain %q", msg.Content.Text, tt.want)
			}
		})
	}
}

func TestMockMessageEchoTruncates(t *testing.T) {
	long := strings.Repeat("a", 120)
	msg := MockMessage([]SamplingMessage{userMsg(long)})
	if strings.Contains(msg.Content.Text, strings.Repeat("a", 51)) {
		t.Error("echo must truncate to 50 characters")
	}
}

func TestMockMessageUsesLastUserTurn(t *testing.T) {
	messages := []SamplingMessage{
		userMsg("weather please"),
		{Role: "assistant", Content: Content{Type: "text", Text: "sure"}},
		userMsg("now some code"),
	}
	msg := MockMessage(messages)
	if !strings.Contains(msg.Content.Text, "write code") {
		t.Errorf("expected code reply from last user turn, got %q", msg.Content.Text)
	}
}

type failingSampler struct{}

func (failingSampler) CreateMessage(context.Context, CreateMessageRequest) (*SamplingMessage, error) {
	return nil, errors.New("backend down")
}

func TestAdapterFallsBackToMock(t *testing.T) {
	adapter := NewSamplingAdapter(failingSampler{})

	msg := adapter.CreateMessage(context.Background(), CreateMessageRequest{
		Messages: []SamplingMessage{userMsg("weather?")},
	})
	if msg == nil {
		t.Fatal("adapter must never return nil")
	}
	if msg.Model != "modelctx-mock" {
		t.Errorf("expected mock reply, got model %s", msg.Model)
	}
}

func TestAdapterNilBackend(t *testing.T) {
	adapter := NewSamplingAdapter(nil)

	msg := adapter.CreateMessage(context.Background(), CreateMessageRequest{
		Messages: []SamplingMessage{userMsg("calculate 1+1")},
	})
	if msg == nil || !strings.Contains(msg.Content.Text, "calculations") {
		t.Errorf("expected mock calculation reply, got %+v", msg)
	}
}

type cannedSampler struct{ reply string }

func (s cannedSampler) CreateMessage(context.Context, CreateMessageRequest) (*SamplingMessage, error) {
	return &SamplingMessage{
		Role:       "assistant",
		Content:    Content{Type: "text", Text: s.reply},
		Model:      "live-model",
		StopReason: "endTurn",
	}, nil
}

func TestAdapterPrefersBackend(t *testing.T) {
	adapter := NewSamplingAdapter(cannedSampler{reply: "live answer"})

	msg := adapter.CreateMessage(context.Background(), CreateMessageRequest{
		Messages: []SamplingMessage{userMsg("anything")},
	})
	if msg.Model != "live-model" || msg.Content.Text != "live answer" {
		t.Errorf("expected backend reply, got %+v", msg)
	}
}
