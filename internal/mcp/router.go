package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"
)

// HandlerFunc handles one method. params is never nil; a request
// without params gets an empty mapping. Returned errors never reach the
// wire raw: the router wraps them into an error envelope.
type HandlerFunc func(ctx context.Context, conn Conn, params M) (interface{}, error)

// Router parses raw request text, validates the envelope and dispatches
// to the handler owning the method. The method table is fixed at
// construction; there is no runtime registration.
type Router struct {
	handlers map[string]HandlerFunc
}

func NewRouter(handlers map[string]HandlerFunc) *Router {
	table := make(map[string]HandlerFunc, len(handlers))
	for method, h := range handlers {
		table[method] = h
	}
	return &Router{handlers: table}
}

// Handle processes one raw message and returns the response envelope,
// or nil when the message is a notification. Every failure yields a
// structured error envelope; the router never panics outward, so one
// bad request cannot take the server down.
func (r *Router) Handle(ctx context.Context, conn Conn, raw []byte) *Response {
	var req Request
	if err := json.Unmarshal(raw, &req); err != nil {
		return ErrParseError.WithData(err.Error()).Response(extractID(raw))
	}
	return r.HandleRequest(ctx, conn, &req)
}

// HandleRequest processes an already-decoded envelope. Used by
// transports that decode before queueing.
func (r *Router) HandleRequest(ctx context.Context, conn Conn, req *Request) *Response {
	if req.JsonRPC != JsonRPCVersion {
		if req.IsNotification() {
			return nil
		}
		return ErrInvalidRequest.WithData("invalid JSON-RPC version").Response(req.ID)
	}

	handler, ok := r.handlers[req.Method]
	if !ok {
		if req.IsNotification() {
			log.Debug().Str("method", req.Method).Msg("drop unknown notification")
			return nil
		}
		return NewErrorResponse(req.ID, CodeMethodNotFound,
			fmt.Errorf("method '%s' not found", req.Method))
	}

	params, perr := requestParams(req)
	if perr != nil {
		if req.IsNotification() {
			return nil
		}
		return perr.Response(req.ID)
	}

	result, err := r.invoke(ctx, conn, handler, params)
	if req.IsNotification() {
		if err != nil {
			log.Debug().Err(err).Str("method", req.Method).Msg("notification handler failed")
		}
		return nil
	}
	if err != nil {
		if rpcErr, ok := err.(*Error); ok {
			return rpcErr.Response(req.ID)
		}
		return ErrInternalError.WithData(err.Error()).Response(req.ID)
	}
	return NewResponse(req.ID, result)
}

// invoke runs the handler with panic isolation: a panicking handler
// fails its own request and nothing else.
func (r *Router) invoke(ctx context.Context, conn Conn, handler HandlerFunc, params M) (result interface{}, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Error().Interface("panic", rec).Msg("handler panic recovered")
			err = fmt.Errorf("handler panic: %v", rec)
		}
	}()
	return handler(ctx, conn, params)
}

func requestParams(req *Request) (M, *Error) {
	switch p := req.Params.(type) {
	case nil:
		return M{}, nil
	case map[string]interface{}:
		return M(p), nil
	default:
		return nil, ErrInvalidRequest.WithData("params must be an object")
	}
}

// extractID pulls the id out of text that failed to decode as a full
// envelope. When even that fails the response id stays null.
func extractID(raw []byte) interface{} {
	var partial struct {
		ID interface{} `json:"id"`
	}
	if err := json.Unmarshal(raw, &partial); err != nil {
		return nil
	}
	return partial.ID
}

// ParseParams re-encodes a decoded params mapping into a typed request
// struct.
func ParseParams[T any](params M) (*T, error) {
	b, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("encode params: %w", err)
	}
	var result T
	if err := json.Unmarshal(b, &result); err != nil {
		return nil, fmt.Errorf("decode params: %w", err)
	}
	return &result, nil
}
