package mcp

import "context"

// Document: https://modelcontextprotocol.io/docs/concepts/tools

const (
	// Client => Server
	MethodToolsList = "tools/list"
	MethodToolsCall = "tools/call"
)

// Tool
//
//	{
//		name: string;          // Unique identifier for the tool
//		description?: string;  // Human-readable description
//		inputSchema: {         // JSON Schema for the tool's parameters
//			type: "object",
//			properties: { ... }  // Tool-specific parameters
//		}
//	}
type Tool struct {
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	InputSchema ToolSchema `json:"inputSchema"`
}

type ToolSchema struct {
	Type       string   `json:"type"`
	Properties M        `json:"properties"`
	Required   []string `json:"required,omitempty"`
}

type ToolsCallRequest struct {
	Name      string `json:"name"`
	Arguments M      `json:"arguments"`
}

// ToolsCallResponse is always a successful protocol result: a failed
// tool run is application data, reported through IsError, never as a
// JSON-RPC error.
type ToolsCallResponse struct {
	ToolResult interface{} `json:"toolResult"`
	IsError    bool        `json:"isError"`
}

type ToolsListResponse struct {
	Tools []Tool `json:"tools"`
	Meta  M      `json:"_meta,omitempty"`
}

// ToolExecutor is the external collaborator that owns tool semantics.
// The gateway exposes its catalog verbatim and performs no argument
// validation; that is the executor's business.
type ToolExecutor interface {
	// Tools returns the static catalog in a fixed order.
	Tools() []Tool

	// Execute runs the named tool. A returned error describes a tool
	// failure (unknown tool, bad expression, timeout), not a server
	// fault.
	Execute(ctx context.Context, name string, args M) (interface{}, error)
}

// ToolGateway delegates invocation to the executor and translates its
// result into the protocol's {toolResult, isError} shape.
type ToolGateway struct {
	exec ToolExecutor
}

func NewToolGateway(exec ToolExecutor) *ToolGateway {
	return &ToolGateway{exec: exec}
}

func (g *ToolGateway) List() []Tool {
	return g.exec.Tools()
}

func (g *ToolGateway) Call(ctx context.Context, name string, args M) ToolsCallResponse {
	result, err := g.exec.Execute(ctx, name, args)
	if err != nil {
		return ToolsCallResponse{ToolResult: err.Error(), IsError: true}
	}
	return ToolsCallResponse{ToolResult: result, IsError: false}
}
