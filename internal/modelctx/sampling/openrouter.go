package sampling

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/modelctx/modelctx/internal/errors"
	"github.com/modelctx/modelctx/internal/mcp"
)

const defaultMaxTokens = 1000

// OpenRouterSampler generates assistant messages through an
// OpenAI-compatible chat completion endpoint. Tool calls emitted by the
// model are executed locally and folded into the reply text.
type OpenRouterSampler struct {
	client *openai.Client
	model  string
	exec   mcp.ToolExecutor
}

// NewOpenRouter builds a sampler for the given endpoint. Returns nil
// when no API key is configured; callers treat nil as "use the mock".
func NewOpenRouter(apiKey, baseURL, model string, exec mcp.ToolExecutor) *OpenRouterSampler {
	if apiKey == "" {
		return nil
	}
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &OpenRouterSampler{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
		exec:   exec,
	}
}

func (s *OpenRouterSampler) CreateMessage(ctx context.Context, req mcp.CreateMessageRequest) (*mcp.SamplingMessage, error) {
	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}

	chatReq := openai.ChatCompletionRequest{
		Model:     s.model,
		Messages:  toChatMessages(req.Messages),
		MaxTokens: maxTokens,
	}
	if s.exec != nil {
		chatReq.Tools = toChatTools(s.exec.Tools())
	}

	resp, err := s.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return nil, errors.Sampling("chat completion failed", err)
	}
	if len(resp.Choices) == 0 {
		return nil, errors.Sampling("no response from model", nil)
	}

	message := resp.Choices[0].Message
	text := message.Content
	if len(message.ToolCalls) > 0 {
		text = s.runToolCalls(ctx, message.ToolCalls)
	}

	return &mcp.SamplingMessage{
		Role:       "assistant",
		Content:    mcp.Content{Type: "text", Text: text},
		Model:      s.model,
		StopReason: "endTurn",
	}, nil
}

// runToolCalls executes each requested tool and joins the results into
// a single text block. Individual failures render as error lines rather
// than aborting the reply.
func (s *OpenRouterSampler) runToolCalls(ctx context.Context, calls []openai.ToolCall) string {
	parts := make([]string, 0, len(calls))
	for _, call := range calls {
		var args mcp.M
		if err := json.Unmarshal([]byte(call.Function.Arguments), &args); err != nil {
			parts = append(parts, fmt.Sprintf("Error: invalid arguments for %s", call.Function.Name))
			continue
		}
		result, err := s.exec.Execute(ctx, call.Function.Name, args)
		if err != nil {
			parts = append(parts, fmt.Sprintf("Error: %s", err.Error()))
			continue
		}
		if b, err := json.MarshalIndent(result, "", "  "); err == nil {
			parts = append(parts, string(b))
		} else {
			parts = append(parts, fmt.Sprintf("%v", result))
		}
	}
	return strings.Join(parts, "\n\n")
}

func toChatMessages(messages []mcp.SamplingMessage) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, msg := range messages {
		role := msg.Role
		if role == "" {
			role = openai.ChatMessageRoleUser
		}
		out = append(out, openai.ChatCompletionMessage{
			Role:    role,
			Content: msg.Content.Text,
		})
	}
	return out
}

func toChatTools(tools []mcp.Tool) []openai.Tool {
	out := make([]openai.Tool, 0, len(tools))
	for _, tool := range tools {
		out = append(out, openai.Tool{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        tool.Name,
				Description: tool.Description,
				Parameters:  tool.InputSchema,
			},
		})
	}
	return out
}
