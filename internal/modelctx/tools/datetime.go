package tools

import (
	"context"
	"fmt"
	"time"

	"github.com/modelctx/modelctx/internal/errors"
	"github.com/modelctx/modelctx/internal/mcp"
	"github.com/modelctx/modelctx/pkg/util"
)

func (e *Executor) getDatetime(ctx context.Context, args mcp.M) (interface{}, error) {
	timezone := util.AnyToString(args["timezone"])
	format := util.AnyToString(args["format"])

	now := time.Now()
	zone := "local"
	if timezone != "" {
		loc, err := time.LoadLocation(timezone)
		if err != nil {
			return nil, errors.Tool(fmt.Sprintf("invalid timezone: %s", timezone), err)
		}
		now = now.In(loc)
		zone = timezone
	}

	if format == "" {
		format = time.RFC3339
	}

	return mcp.M{
		"datetime":  now.Format(format),
		"timezone":  zone,
		"timestamp": now.Unix(),
	}, nil
}
