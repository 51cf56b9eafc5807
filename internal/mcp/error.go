package mcp

import (
	"fmt"
)

// Standard JSON-RPC error codes. The set is closed and never renumbered.
const (
	CodeParseError     = -32700
	CodeInvalidRequest = -32600
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeInternalError  = -32603
)

// Error is the JSON-RPC error object.
type Error struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

var (
	ErrParseError     = &Error{Code: CodeParseError, Message: "Parse error"}
	ErrInvalidRequest = &Error{Code: CodeInvalidRequest, Message: "Invalid Request"}
	ErrMethodNotFound = &Error{Code: CodeMethodNotFound, Message: "Method not found"}
	ErrInvalidParams  = &Error{Code: CodeInvalidParams, Message: "Invalid params"}
	ErrInternalError  = &Error{Code: CodeInternalError, Message: "Internal error"}
)

func (e *Error) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

// WithData returns a copy of the error carrying extra context in data.
func (e *Error) WithData(data interface{}) *Error {
	return &Error{Code: e.Code, Message: e.Message, Data: data}
}

// Response wraps the error into a response envelope echoing the given id.
// The id is null when it could not be extracted from the request at all.
func (e *Error) Response(id interface{}) *Response {
	return &Response{
		JsonRPC: JsonRPCVersion,
		ID:      id,
		Error:   e,
	}
}

// NewErrorResponse builds an error envelope with a custom message.
func NewErrorResponse(id interface{}, code int, err error) *Response {
	return &Response{
		JsonRPC: JsonRPCVersion,
		ID:      id,
		Error: &Error{
			Code:    code,
			Message: err.Error(),
		},
	}
}
