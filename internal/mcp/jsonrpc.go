package mcp

const (
	JsonRPCVersion = "2.0"

	// ProtocolVersion is the MCP revision this server speaks.
	ProtocolVersion = "2025-06-18"
)

// Request
//
//	{
//		jsonrpc: "2.0",
//		id: number | string,
//		method: string,
//		params?: object
//	}
//
// A request without an id is a notification: no response is written for
// it, not even on failure.
type Request struct {
	JsonRPC string      `json:"jsonrpc"`
	ID      interface{} `json:"id,omitempty"`
	Method  string      `json:"method"`
	Params  interface{} `json:"params,omitempty"`
}

// IsNotification reports whether the request carries no id.
func (r *Request) IsNotification() bool {
	return r.ID == nil
}

// Response
//
//	{
//		jsonrpc: "2.0",
//		id: number | string,
//		result?: object,
//		error?: {
//			code: number,
//			message: string,
//			data?: unknown
//		}
//	}
//
// Exactly one of Result/Error is set.
type Response struct {
	JsonRPC string      `json:"jsonrpc"`
	ID      interface{} `json:"id"`
	Result  interface{} `json:"result,omitempty"`
	Error   *Error      `json:"error,omitempty"`
}

func NewResponse(id interface{}, result interface{}) *Response {
	return &Response{
		JsonRPC: JsonRPCVersion,
		ID:      id,
		Result:  result,
	}
}

// Notification
//
//	{
//		jsonrpc: "2.0",
//		method: string,
//		params?: object
//	}
type Notification struct {
	JsonRPC string      `json:"jsonrpc"`
	Method  string      `json:"method"`
	Params  interface{} `json:"params,omitempty"`
}

func NewNotification(method string, params interface{}) *Notification {
	return &Notification{
		JsonRPC: JsonRPCVersion,
		Method:  method,
		Params:  params,
	}
}

// M is a generic JSON object.
type M map[string]interface{}

// Conn is the transport side of one logical connection. Implementations
// marshal the message and flush it on their channel (WebSocket frame,
// SSE event). Send must be safe for concurrent use; a failed send is
// the transport's problem, the caller treats delivery as best-effort.
type Conn interface {
	Send(msg interface{}) error
}
