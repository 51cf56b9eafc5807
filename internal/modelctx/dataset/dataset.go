package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/modelctx/modelctx/internal/errors"
	"github.com/modelctx/modelctx/internal/mcp"
)

const (
	TrainingDataFile   = "training_data.jsonl"
	PromptTemplateFile = "prompt_template.txt"
	ConfigFile         = "config.json"
)

// ToolCall is one function invocation inside a training example,
// serialized in OpenAI chat format.
type ToolCall struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Function struct {
		Name      string `json:"name"`
		Arguments string `json:"arguments"`
	} `json:"function"`
}

func NewToolCall(id, name string, args mcp.M) ToolCall {
	call := ToolCall{ID: id, Type: "function"}
	call.Function.Name = name
	b, _ := json.Marshal(args)
	call.Function.Arguments = string(b)
	return call
}

// Builder assembles a fine-tuning dataset from tool definitions and
// conversation examples.
type Builder struct {
	tools    []mcp.Tool
	examples []mcp.M
}

func NewBuilder(tools []mcp.Tool) *Builder {
	return &Builder{tools: tools}
}

// openAIFormat renders a tool definition in OpenAI function-calling
// format.
func openAIFormat(tool mcp.Tool) mcp.M {
	return mcp.M{
		"type": "function",
		"function": mcp.M{
			"name":        tool.Name,
			"description": tool.Description,
			"parameters":  tool.InputSchema,
		},
	}
}

func (b *Builder) toolDefinitions() []mcp.M {
	defs := make([]mcp.M, 0, len(b.tools))
	for _, tool := range b.tools {
		defs = append(defs, openAIFormat(tool))
	}
	return defs
}

// AddExample appends a training example. When tool calls and results
// are present, the conversation carries the full call-result-reply
// cycle; otherwise it is a plain user/assistant exchange.
func (b *Builder) AddExample(userMessage, assistantMessage string, toolCalls []ToolCall, toolResults []mcp.M) {
	messages := []mcp.M{
		{"role": "user", "content": userMessage},
	}

	if len(toolCalls) > 0 && len(toolCalls) == len(toolResults) {
		messages = append(messages, mcp.M{
			"role":       "assistant",
			"content":    assistantMessage,
			"tool_calls": toolCalls,
		})
		for i, result := range toolResults {
			content, _ := json.Marshal(result)
			messages = append(messages, mcp.M{
				"role":         "tool",
				"tool_call_id": toolCalls[i].ID,
				"content":      string(content),
			})
		}
		messages = append(messages, mcp.M{
			"role":    "assistant",
			"content": assistantMessage,
		})
	} else {
		messages = append(messages, mcp.M{
			"role":    "assistant",
			"content": assistantMessage,
		})
	}

	example := mcp.M{"messages": messages}
	if len(b.tools) > 0 {
		example["tools"] = b.toolDefinitions()
	}
	b.examples = append(b.examples, example)
}

func (b *Builder) Count() int {
	return len(b.examples)
}

// SaveTrainingData writes the examples as JSONL, one example per line.
func (b *Builder) SaveTrainingData(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Config(fmt.Sprintf("create %s failed", path), err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	for _, example := range b.examples {
		if err := enc.Encode(example); err != nil {
			return errors.Config("encode training example failed", err)
		}
	}
	log.Info().Int("examples", len(b.examples)).Str("path", path).Msg("training data saved")
	return nil
}

// PromptTemplate renders the fine-tuning prompt template with the
// system prompt and the tool definitions embedded.
func (b *Builder) PromptTemplate(systemPrompt string) string {
	tools, _ := json.MarshalIndent(b.toolDefinitions(), "", "  ")
	return fmt.Sprintf(`<|system|>
%s

Available tools:
%s
<|end|>

<|user|>
{user_input}
<|end|>

<|assistant|>
`, systemPrompt, string(tools))
}

// WriteArtifacts writes the three dataset files into dir.
func (b *Builder) WriteArtifacts(dir, systemPrompt, model, baseURL string) error {
	if err := b.SaveTrainingData(filepath.Join(dir, TrainingDataFile)); err != nil {
		return err
	}

	template := b.PromptTemplate(systemPrompt)
	if err := os.WriteFile(filepath.Join(dir, PromptTemplateFile), []byte(template), 0644); err != nil {
		return errors.Config("write prompt template failed", err)
	}

	toolNames := make([]string, 0, len(b.tools))
	for _, tool := range b.tools {
		toolNames = append(toolNames, tool.Name)
	}
	config := mcp.M{
		"model":             model,
		"base_url":          baseURL,
		"tools":             toolNames,
		"training_examples": len(b.examples),
	}
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return errors.Config("encode config failed", err)
	}
	if err := os.WriteFile(filepath.Join(dir, ConfigFile), data, 0644); err != nil {
		return errors.Config("write config failed", err)
	}

	log.Info().Str("dir", dir).Msg("dataset artifacts written")
	return nil
}
