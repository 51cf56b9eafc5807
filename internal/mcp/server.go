package mcp

import (
	"context"
	"errors"
)

// Server owns the protocol components and the method table binding them
// together. Construct it once at process start, register resources,
// prompts and completions, then serve; the table never changes after
// that.
type Server struct {
	info         ServerInfo
	instructions string

	sessions    *SessionStore
	resources   *ResourceRegistry
	prompts     *PromptCatalog
	tools       *ToolGateway
	sampling    *SamplingAdapter
	completions *CompletionProvider

	router *Router
}

// NewServer wires the protocol core around its two external
// collaborators: the tool executor and the sampling backend. backend
// may be nil, in which case sampling always answers with the
// deterministic mock.
func NewServer(info ServerInfo, instructions string, exec ToolExecutor, backend Sampler) *Server {
	s := &Server{
		info:         info,
		instructions: instructions,
		sessions:     NewSessionStore(),
		tools:        NewToolGateway(exec),
		sampling:     NewSamplingAdapter(backend),
		prompts:      NewPromptCatalog(),
		completions:  NewCompletionProvider(),
	}
	s.resources = NewResourceRegistry(s.sessions)

	s.router = NewRouter(map[string]HandlerFunc{
		// Base protocol methods
		MethodInitialize: s.handleInitialize,
		MethodPing:       s.handlePing,
		MethodShutdown:   s.handleShutdown,

		// Tool methods
		MethodToolsList: s.handleToolsList,
		MethodToolsCall: s.handleToolsCall,

		// Prompt methods
		MethodPromptsList: s.handlePromptsList,
		MethodPromptsGet:  s.handlePromptsGet,

		// Resource methods
		MethodResourcesList:        s.handleResourcesList,
		MethodResourcesRead:        s.handleResourcesRead,
		MethodResourcesSubscribe:   s.handleResourcesSubscribe,
		MethodResourcesUnsubscribe: s.handleResourcesUnsubscribe,

		// Sampling methods
		MethodSamplingCreateMessage: s.handleSamplingCreateMessage,

		// Completion methods
		MethodCompletionComplete: s.handleCompletionComplete,
	})
	return s
}

func (s *Server) Sessions() *SessionStore          { return s.sessions }
func (s *Server) Resources() *ResourceRegistry     { return s.resources }
func (s *Server) Prompts() *PromptCatalog          { return s.prompts }
func (s *Server) Completions() *CompletionProvider { return s.completions }
func (s *Server) Info() ServerInfo                 { return s.info }
func (s *Server) Sampling() *SamplingAdapter       { return s.sampling }
func (s *Server) Tools() *ToolGateway              { return s.tools }

// Handle processes one raw message from a transport. conn is the
// connection's push channel, nil for one-shot transports. The returned
// response is nil for notifications.
func (s *Server) Handle(ctx context.Context, conn Conn, raw []byte) *Response {
	return s.router.Handle(ctx, conn, raw)
}

// HandleRequest processes an already-decoded envelope.
func (s *Server) HandleRequest(ctx context.Context, conn Conn, req *Request) *Response {
	return s.router.HandleRequest(ctx, conn, req)
}

func (s *Server) handleInitialize(_ context.Context, conn Conn, params M) (interface{}, error) {
	initReq, err := ParseParams[InitializeRequest](params)
	if err != nil {
		return nil, err
	}
	session := s.sessions.Create(initReq.ClientInfo, conn)
	return InitializeResponse{
		ServerInfo:   s.info,
		SessionID:    session.ID,
		Instructions: s.instructions,
	}, nil
}

func (s *Server) handlePing(context.Context, Conn, M) (interface{}, error) {
	return M{"pong": true}, nil
}

// handleShutdown tears down every session in one batch.
func (s *Server) handleShutdown(context.Context, Conn, M) (interface{}, error) {
	s.sessions.Clear()
	return M{"success": true}, nil
}

func (s *Server) handleToolsList(context.Context, Conn, M) (interface{}, error) {
	tools := s.tools.List()
	return ToolsListResponse{
		Tools: tools,
		Meta:  M{"total": len(tools)},
	}, nil
}

func (s *Server) handleToolsCall(ctx context.Context, _ Conn, params M) (interface{}, error) {
	callReq, err := ParseParams[ToolsCallRequest](params)
	if err != nil {
		return nil, err
	}
	if callReq.Name == "" {
		return nil, errors.New("tool name is required")
	}
	return s.tools.Call(ctx, callReq.Name, callReq.Arguments), nil
}

func (s *Server) handlePromptsList(context.Context, Conn, M) (interface{}, error) {
	prompts := s.prompts.List()
	return PromptsListResponse{
		Prompts: prompts,
		Meta:    M{"total": len(prompts)},
	}, nil
}

func (s *Server) handlePromptsGet(_ context.Context, _ Conn, params M) (interface{}, error) {
	getReq, err := ParseParams[PromptsGetRequest](params)
	if err != nil {
		return nil, err
	}
	return s.prompts.Render(getReq.Name, getReq.Arguments)
}

func (s *Server) handleResourcesList(context.Context, Conn, M) (interface{}, error) {
	resources := s.resources.List()
	return ResourcesListResponse{
		Resources: resources,
		Meta:      M{"total": len(resources)},
	}, nil
}

func (s *Server) handleResourcesRead(_ context.Context, _ Conn, params M) (interface{}, error) {
	readReq, err := ParseParams[ResourcesReadRequest](params)
	if err != nil {
		return nil, err
	}
	return s.resources.Read(readReq.URI)
}

func (s *Server) handleResourcesSubscribe(_ context.Context, _ Conn, params M) (interface{}, error) {
	subReq, err := ParseParams[ResourcesSubscribeRequest](params)
	if err != nil {
		return nil, err
	}
	s.resources.Subscribe(subReq.SessionID, subReq.URI)
	return M{"success": true}, nil
}

func (s *Server) handleResourcesUnsubscribe(_ context.Context, _ Conn, params M) (interface{}, error) {
	subReq, err := ParseParams[ResourcesSubscribeRequest](params)
	if err != nil {
		return nil, err
	}
	s.resources.Unsubscribe(subReq.SessionID, subReq.URI)
	return M{"success": true}, nil
}

func (s *Server) handleSamplingCreateMessage(ctx context.Context, _ Conn, params M) (interface{}, error) {
	createReq, err := ParseParams[CreateMessageRequest](params)
	if err != nil {
		return nil, err
	}
	return s.sampling.CreateMessage(ctx, *createReq), nil
}

func (s *Server) handleCompletionComplete(_ context.Context, _ Conn, params M) (interface{}, error) {
	completeReq, err := ParseParams[CompleteRequest](params)
	if err != nil {
		return nil, err
	}
	return s.completions.Complete(completeReq.Argument.Name), nil
}
