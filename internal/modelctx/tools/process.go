package tools

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v4/process"

	"github.com/modelctx/modelctx/internal/errors"
	"github.com/modelctx/modelctx/internal/mcp"
	"github.com/modelctx/modelctx/pkg/util"
)

const maxProcessList = 100

func (e *Executor) manageProcesses(ctx context.Context, args mcp.M) (interface{}, error) {
	action := util.AnyToString(args["action"])

	switch action {
	case "list":
		procs, err := process.ProcessesWithContext(ctx)
		if err != nil {
			return nil, errors.Tool("list processes failed", err)
		}
		list := make([]mcp.M, 0, len(procs))
		for _, p := range procs {
			if len(list) >= maxProcessList {
				break
			}
			name, err := p.NameWithContext(ctx)
			if err != nil {
				continue
			}
			list = append(list, mcp.M{"pid": p.Pid, "name": name})
		}
		return mcp.M{
			"processes": list,
			"count":     len(list),
		}, nil

	case "info":
		pid := util.MustAnyToInt(args["process_id"])
		if pid <= 0 {
			return nil, errors.InvalidArg("process_id")
		}
		p, err := process.NewProcessWithContext(ctx, int32(pid))
		if err != nil {
			return nil, errors.Tool(fmt.Sprintf("process %d not found", pid), err)
		}
		name, _ := p.NameWithContext(ctx)
		cmdline, _ := p.CmdlineWithContext(ctx)
		status, _ := p.StatusWithContext(ctx)
		created, _ := p.CreateTimeWithContext(ctx)
		return mcp.M{
			"pid":         p.Pid,
			"name":        name,
			"cmdline":     cmdline,
			"status":      status,
			"create_time": created,
		}, nil

	case "kill":
		pid := util.MustAnyToInt(args["process_id"])
		if pid <= 0 {
			return nil, errors.InvalidArg("process_id")
		}
		p, err := process.NewProcessWithContext(ctx, int32(pid))
		if err != nil {
			return nil, errors.Tool(fmt.Sprintf("process %d not found", pid), err)
		}
		if err := p.KillWithContext(ctx); err != nil {
			return nil, errors.Tool(fmt.Sprintf("kill process %d failed", pid), err)
		}
		return mcp.M{
			"pid":    pid,
			"status": "killed",
		}, nil

	default:
		return nil, errors.Tool(fmt.Sprintf("unknown action: %s", action), nil)
	}
}
