package tools

import (
	"context"
	"fmt"
	"os"

	"github.com/modelctx/modelctx/internal/errors"
	"github.com/modelctx/modelctx/internal/mcp"
	"github.com/modelctx/modelctx/pkg/util"
)

func (e *Executor) fileOperations(ctx context.Context, args mcp.M) (interface{}, error) {
	operation := util.AnyToString(args["operation"])
	path := util.AnyToString(args["path"])
	if operation == "" {
		return nil, errors.InvalidArg("operation")
	}
	if path == "" {
		return nil, errors.InvalidArg("path")
	}

	switch operation {
	case "read":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Tool(fmt.Sprintf("read %s failed", path), err)
		}
		return mcp.M{
			"path":    path,
			"content": string(data),
			"size":    len(data),
		}, nil

	case "write":
		content, ok := args["content"].(string)
		if !ok {
			return nil, errors.Tool("content is required for write operation", nil)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return nil, errors.Tool(fmt.Sprintf("write %s failed", path), err)
		}
		return mcp.M{
			"path":          path,
			"status":        "success",
			"bytes_written": len(content),
		}, nil

	case "list":
		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, errors.Tool(fmt.Sprintf("%s is not a directory", path), err)
		}
		files := make([]string, 0, len(entries))
		for _, entry := range entries {
			files = append(files, entry.Name())
		}
		return mcp.M{
			"path":  path,
			"files": files,
			"count": len(files),
		}, nil

	default:
		return nil, errors.Tool(fmt.Sprintf("unknown operation: %s", operation), nil)
	}
}
