package commander

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/modelctx/modelctx/internal/errors"
	"github.com/modelctx/modelctx/internal/mcp"
)

const DefaultTimeout = 30 * time.Second

// Client speaks JSON-RPC 2.0 over HTTP to a desktop commander service.
// Every bridge tool call becomes one POST to <url>/rpc.
type Client struct {
	url    string
	client *http.Client
}

func New(url string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

func (c *Client) URL() string {
	return c.url
}

// Execute maps a bridge tool call to the remote JSON-RPC method and
// returns the raw result payload.
func (c *Client) Execute(ctx context.Context, tool string, args mcp.M) (interface{}, error) {
	method, ok := bridgeMethods[tool]
	if !ok {
		return nil, errors.Commander(fmt.Sprintf("unknown bridge tool: %s", tool), nil)
	}
	return c.call(ctx, method, args)
}

func (c *Client) call(ctx context.Context, method string, params mcp.M) (interface{}, error) {
	payload := mcp.Request{
		JsonRPC: mcp.JsonRPCVersion,
		ID:      uuid.New().String(),
		Method:  method,
		Params:  params,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Commander("encode request failed", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url+"/rpc", bytes.NewReader(body))
	if err != nil {
		return nil, errors.Commander("build request failed", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.Commander("commander unreachable", err)
	}
	defer resp.Body.Close()

	var rpcResp mcp.Response
	if err := json.NewDecoder(resp.Body).Decode(&rpcResp); err != nil {
		return nil, errors.Commander("decode response failed", err)
	}

	if rpcResp.Error != nil {
		log.Debug().Int("code", rpcResp.Error.Code).Str("method", method).Msg("commander returned error")
		return nil, errors.Commander(rpcResp.Error.Message, nil)
	}

	return rpcResp.Result, nil
}

// bridgeMethods maps exposed tool names to remote RPC methods.
var bridgeMethods = map[string]string{
	"execute_terminal_command": "execute_command",
	"search_code":              "search_code",
	"advanced_file_edit":       "edit_files",
	"execute_code_in_memory":   "execute_code",
}

// BridgeTools lists the tools exposed when a commander endpoint is
// configured.
func BridgeTools() []mcp.Tool {
	return []mcp.Tool{
		{
			Name:        "execute_terminal_command",
			Description: "Execute terminal commands with enhanced capabilities (streaming, timeout, background)",
			InputSchema: mcp.ToolSchema{
				Type: "object",
				Properties: mcp.M{
					"command": mcp.M{
						"type":        "string",
						"description": "The terminal command to execute",
					},
					"timeout": mcp.M{
						"type":        "integer",
						"description": "Command timeout in seconds",
						"default":     30,
					},
					"background": mcp.M{
						"type":        "boolean",
						"description": "Run command in background",
						"default":     false,
					},
				},
				Required: []string{"command"},
			},
		},
		{
			Name:        "search_code",
			Description: "Search for code or text in files using ripgrep",
			InputSchema: mcp.ToolSchema{
				Type: "object",
				Properties: mcp.M{
					"query": mcp.M{
						"type":        "string",
						"description": "Search query (regex supported)",
					},
					"path": mcp.M{
						"type":        "string",
						"description": "Directory path to search in",
						"default":     ".",
					},
					"file_pattern": mcp.M{
						"type":        "string",
						"description": "File pattern to filter (e.g., '*.go')",
					},
					"case_sensitive": mcp.M{
						"type":        "boolean",
						"description": "Case sensitive search",
						"default":     false,
					},
				},
				Required: []string{"query"},
			},
		},
		{
			Name:        "advanced_file_edit",
			Description: "Edit files with surgical precision using block replacements",
			InputSchema: mcp.ToolSchema{
				Type: "object",
				Properties: mcp.M{
					"file_path": mcp.M{
						"type":        "string",
						"description": "Path to the file to edit",
					},
					"edits": mcp.M{
						"type":        "array",
						"description": "List of edit operations",
					},
				},
				Required: []string{"file_path", "edits"},
			},
		},
		{
			Name:        "execute_code_in_memory",
			Description: "Execute code in memory without saving files (Python, Node.js, R)",
			InputSchema: mcp.ToolSchema{
				Type: "object",
				Properties: mcp.M{
					"code": mcp.M{
						"type":        "string",
						"description": "Code to execute",
					},
					"language": mcp.M{
						"type":        "string",
						"enum":        []string{"python", "javascript", "node", "r"},
						"description": "Programming language",
					},
					"timeout": mcp.M{
						"type":        "integer",
						"description": "Execution timeout in seconds",
						"default":     30,
					},
				},
				Required: []string{"code", "language"},
			},
		},
	}
}
