package tools

import "github.com/modelctx/modelctx/internal/mcp"

var weatherTool = mcp.Tool{
	Name:        "get_weather",
	Description: "Get the current weather in a given location",
	InputSchema: mcp.ToolSchema{
		Type: "object",
		Properties: mcp.M{
			"location": mcp.M{
				"type":        "string",
				"description": "The city and state, e.g. San Francisco, CA",
			},
			"unit": mcp.M{
				"type":        "string",
				"enum":        []string{"celsius", "fahrenheit"},
				"description": "The unit of temperature",
			},
		},
		Required: []string{"location"},
	},
}

var calculateTool = mcp.Tool{
	Name:        "calculate",
	Description: "Perform mathematical calculations",
	InputSchema: mcp.ToolSchema{
		Type: "object",
		Properties: mcp.M{
			"expression": mcp.M{
				"type":        "string",
				"description": "The mathematical expression to evaluate",
			},
		},
		Required: []string{"expression"},
	},
}

var searchWebTool = mcp.Tool{
	Name:        "search_web",
	Description: "Search the web for information",
	InputSchema: mcp.ToolSchema{
		Type: "object",
		Properties: mcp.M{
			"query": mcp.M{
				"type":        "string",
				"description": "The search query",
			},
			"num_results": mcp.M{
				"type":        "integer",
				"description": "Number of results to return",
				"default":     5,
			},
		},
		Required: []string{"query"},
	},
}

var datetimeTool = mcp.Tool{
	Name:        "get_datetime",
	Description: "Get current date and time",
	InputSchema: mcp.ToolSchema{
		Type: "object",
		Properties: mcp.M{
			"timezone": mcp.M{
				"type":        "string",
				"description": "Timezone (e.g., 'America/New_York')",
			},
			"format": mcp.M{
				"type":        "string",
				"description": "Go reference time layout (e.g., '2006-01-02 15:04:05')",
			},
		},
	},
}

var fileOperationsTool = mcp.Tool{
	Name:        "file_operations",
	Description: "Perform file operations (read, write, list)",
	InputSchema: mcp.ToolSchema{
		Type: "object",
		Properties: mcp.M{
			"operation": mcp.M{
				"type":        "string",
				"enum":        []string{"read", "write", "list"},
				"description": "The operation to perform",
			},
			"path": mcp.M{
				"type":        "string",
				"description": "The file or directory path",
			},
			"content": mcp.M{
				"type":        "string",
				"description": "Content to write (required for write operation)",
			},
		},
		Required: []string{"operation", "path"},
	},
}

var processesTool = mcp.Tool{
	Name:        "manage_processes",
	Description: "List and manage running processes",
	InputSchema: mcp.ToolSchema{
		Type: "object",
		Properties: mcp.M{
			"action": mcp.M{
				"type":        "string",
				"enum":        []string{"list", "kill", "info"},
				"description": "Action to perform",
			},
			"process_id": mcp.M{
				"type":        "integer",
				"description": "Process ID (for kill/info actions)",
			},
		},
		Required: []string{"action"},
	},
}
