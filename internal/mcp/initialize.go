package mcp

const (
	MethodInitialize = "initialize"
	MethodPing       = "ping"
	MethodShutdown   = "shutdown"
)

//	{
//		"method": "initialize",
//		"params": {
//		  "protocolVersion": "2025-06-18",
//		  "clientInfo": {
//			"name": "mcp-inspector",
//			"version": "0.0.1"
//		  }
//		},
//		"jsonrpc": "2.0",
//		"id": 0
//	  }
type InitializeRequest struct {
	ProtocolVersion string      `json:"protocolVersion,omitempty"`
	Capabilities    M           `json:"capabilities,omitempty"`
	ClientInfo      *ClientInfo `json:"clientInfo"`
}

type ClientInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// ServerInfo is returned verbatim inside every initialize result.
type ServerInfo struct {
	Name            string `json:"name"`
	Version         string `json:"version"`
	ProtocolVersion string `json:"protocolVersion"`
	Capabilities    M      `json:"capabilities"`
}

//	{
//		"jsonrpc": "2.0",
//		"id": 0,
//		"result": {
//		  "serverInfo": { ... },
//		  "sessionId": "285d67ee-1c17-40d9-ab03-173d5ff48419",
//		  "instructions": "..."
//		}
//	  }
type InitializeResponse struct {
	ServerInfo   ServerInfo `json:"serverInfo"`
	SessionID    string     `json:"sessionId"`
	Instructions string     `json:"instructions,omitempty"`
}

var DefaultCapabilities = M{
	"tools":     M{"supported": true},
	"prompts":   M{"supported": true},
	"resources": M{"supported": true, "subscriptions": true},
	"sampling":  M{"supported": true},
}
