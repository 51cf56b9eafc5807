package tools

import (
	"context"
	"fmt"

	"github.com/modelctx/modelctx/internal/errors"
	"github.com/modelctx/modelctx/internal/mcp"
	"github.com/modelctx/modelctx/pkg/util"
)

const maxSearchResults = 5

// searchWeb returns canned results shaped like a search API response.
func (e *Executor) searchWeb(ctx context.Context, args mcp.M) (interface{}, error) {
	query := util.AnyToString(args["query"])
	if query == "" {
		return nil, errors.InvalidArg("query")
	}

	count := util.MustAnyToInt(args["num_results"])
	if count <= 0 || count > maxSearchResults {
		count = maxSearchResults
	}

	results := make([]mcp.M, 0, count)
	for i := 1; i <= count; i++ {
		results = append(results, mcp.M{
			"title":   fmt.Sprintf("Result %d for: %s", i, query),
			"url":     fmt.Sprintf("https://example.com/result%d", i),
			"snippet": fmt.Sprintf("This is a sample snippet for search result %d related to %s", i, query),
		})
	}

	return mcp.M{
		"query":         query,
		"results":       results,
		"total_results": len(results),
	}, nil
}
