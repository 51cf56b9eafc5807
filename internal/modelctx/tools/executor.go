package tools

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/modelctx/modelctx/internal/errors"
	"github.com/modelctx/modelctx/internal/mcp"
	"github.com/modelctx/modelctx/internal/modelctx/commander"
)

// Handler executes a single tool call.
type Handler func(ctx context.Context, args mcp.M) (interface{}, error)

// Executor is the local tool catalog, optionally extended with the
// desktop commander bridge tools when a bridge client is configured.
type Executor struct {
	bridge   *commander.Client
	handlers map[string]Handler
	catalog  []mcp.Tool
}

func NewExecutor(bridge *commander.Client) *Executor {
	e := &Executor{
		bridge:   bridge,
		handlers: make(map[string]Handler),
	}

	e.register(weatherTool, e.getWeather)
	e.register(calculateTool, e.calculate)
	e.register(searchWebTool, e.searchWeb)
	e.register(datetimeTool, e.getDatetime)
	e.register(fileOperationsTool, e.fileOperations)
	e.register(processesTool, e.manageProcesses)

	if bridge != nil {
		for _, tool := range commander.BridgeTools() {
			tool := tool
			e.register(tool, func(ctx context.Context, args mcp.M) (interface{}, error) {
				return e.bridge.Execute(ctx, tool.Name, args)
			})
		}
		log.Info().Str("url", bridge.URL()).Msg("desktop commander bridge tools enabled")
	}

	return e
}

func (e *Executor) register(tool mcp.Tool, handler Handler) {
	e.handlers[tool.Name] = handler
	e.catalog = append(e.catalog, tool)
}

// Tools returns the catalog in registration order.
func (e *Executor) Tools() []mcp.Tool {
	out := make([]mcp.Tool, len(e.catalog))
	copy(out, e.catalog)
	return out
}

// Execute runs a tool by name. Unknown names and handler failures are
// returned as errors; the gateway turns them into isError results.
func (e *Executor) Execute(ctx context.Context, name string, args mcp.M) (interface{}, error) {
	handler, ok := e.handlers[name]
	if !ok {
		return nil, errors.Tool(fmt.Sprintf("unknown tool: %s", name), nil)
	}
	if args == nil {
		args = mcp.M{}
	}
	result, err := handler(ctx, args)
	if err != nil {
		log.Debug().Err(err).Str("tool", name).Msg("tool execution failed")
		return nil, err
	}
	return result, nil
}
