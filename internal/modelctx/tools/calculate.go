package tools

import (
	"context"
	"sync"

	"github.com/google/cel-go/cel"

	"github.com/modelctx/modelctx/internal/errors"
	"github.com/modelctx/modelctx/internal/mcp"
	"github.com/modelctx/modelctx/pkg/util"
)

var (
	calcEnvOnce sync.Once
	calcEnv     *cel.Env
	calcEnvErr  error
)

// calcActivation exposes the two math constants expressions may use.
var calcActivation = map[string]interface{}{
	"pi": 3.14159265359,
	"e":  2.71828182846,
}

func calculatorEnv() (*cel.Env, error) {
	calcEnvOnce.Do(func() {
		calcEnv, calcEnvErr = cel.NewEnv(
			cel.Variable("pi", cel.DoubleType),
			cel.Variable("e", cel.DoubleType),
		)
	})
	return calcEnv, calcEnvErr
}

// calculate evaluates an arithmetic expression in a sandboxed CEL
// environment. Expression failures come back as tool errors, never as
// protocol errors.
func (e *Executor) calculate(ctx context.Context, args mcp.M) (interface{}, error) {
	expression := util.AnyToString(args["expression"])
	if expression == "" {
		return nil, errors.InvalidArg("expression")
	}

	env, err := calculatorEnv()
	if err != nil {
		return nil, errors.Tool("calculator env init failed", err)
	}

	ast, iss := env.Compile(expression)
	if iss != nil && iss.Err() != nil {
		return nil, errors.Tool("invalid expression", iss.Err())
	}

	prg, err := env.Program(ast)
	if err != nil {
		return nil, errors.Tool("invalid expression", err)
	}

	out, _, err := prg.ContextEval(ctx, calcActivation)
	if err != nil {
		return nil, errors.Tool("evaluation failed", err)
	}

	return mcp.M{
		"expression": expression,
		"result":     out.Value(),
	}, nil
}
