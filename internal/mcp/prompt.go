package mcp

import "fmt"

// Document: https://modelcontextprotocol.io/docs/concepts/prompts

const (
	// Client => Server
	MethodPromptsList = "prompts/list"
	MethodPromptsGet  = "prompts/get"
)

// Prompt
//
//	{
//		name: string;              // Unique identifier for the prompt
//		description?: string;      // Human-readable description
//		arguments?: {              // name => schema
//			name: { type, description, required }
//		}
//	}
type Prompt struct {
	Name        string                    `json:"name"`
	Description string                    `json:"description,omitempty"`
	Arguments   map[string]PromptArgument `json:"arguments,omitempty"`
}

type PromptArgument struct {
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
	Required    bool   `json:"required,omitempty"`
}

type PromptsListResponse struct {
	Prompts []Prompt `json:"prompts"`
	Meta    M        `json:"_meta,omitempty"`
}

type PromptsGetRequest struct {
	Name      string `json:"name"`
	Arguments M      `json:"arguments"`
}

type PromptsGetResponse struct {
	Description string          `json:"description"`
	Messages    []PromptMessage `json:"messages"`
}

type PromptMessage struct {
	Role    string  `json:"role"`
	Content Content `json:"content"`
}

type Content struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// UserMessage builds the single interpolated user message every render
// rule produces.
func UserMessage(text string) []PromptMessage {
	return []PromptMessage{
		{Role: "user", Content: Content{Type: "text", Text: text}},
	}
}

// RenderFunc substitutes supplied arguments into a fixed per-prompt
// template. Missing optional arguments render as a documented
// placeholder rather than failing.
type RenderFunc func(args M) []PromptMessage

type promptEntry struct {
	desc   Prompt
	render RenderFunc
}

// PromptCatalog is the closed set of named prompt templates. The set is
// populated once at startup; rendering is name-keyed dispatch.
type PromptCatalog struct {
	order   []string
	entries map[string]promptEntry
}

func NewPromptCatalog() *PromptCatalog {
	return &PromptCatalog{
		entries: make(map[string]promptEntry),
	}
}

// Register adds a prompt and its render rule. Startup only; the catalog
// is not safe for registration after serving begins.
func (c *PromptCatalog) Register(desc Prompt, render RenderFunc) {
	if _, ok := c.entries[desc.Name]; !ok {
		c.order = append(c.order, desc.Name)
	}
	c.entries[desc.Name] = promptEntry{desc: desc, render: render}
}

// List returns descriptors in registration order.
func (c *PromptCatalog) List() []Prompt {
	prompts := make([]Prompt, 0, len(c.order))
	for _, name := range c.order {
		prompts = append(prompts, c.entries[name].desc)
	}
	return prompts
}

// Render produces the message sequence for a named prompt.
func (c *PromptCatalog) Render(name string, args M) (*PromptsGetResponse, error) {
	entry, ok := c.entries[name]
	if !ok {
		return nil, fmt.Errorf("prompt '%s' not found", name)
	}
	if args == nil {
		args = M{}
	}
	return &PromptsGetResponse{
		Description: entry.desc.Description,
		Messages:    entry.render(args),
	}, nil
}
