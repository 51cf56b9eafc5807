package tools

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/modelctx/modelctx/internal/mcp"
)

func TestFileOperations(t *testing.T) {
	e := NewExecutor(nil)
	dir := t.TempDir()
	path := filepath.Join(dir, "note.txt")

	// write
	result, err := e.Execute(context.Background(), "file_operations", mcp.M{
		"operation": "write",
		"path":      path,
		"content":   "hello",
	})
	if err != nil {
		t.Fatal(err)
	}
	if m := result.(mcp.M); m["bytes_written"] != 5 {
		t.Errorf("bytes_written = %v, want 5", m["bytes_written"])
	}

	// read
	result, err = e.Execute(context.Background(), "file_operations", mcp.M{
		"operation": "read",
		"path":      path,
	})
	if err != nil {
		t.Fatal(err)
	}
	if m := result.(mcp.M); m["content"] != "hello" || m["size"] != 5 {
		t.Errorf("unexpected read result: %v", m)
	}

	// list
	result, err = e.Execute(context.Background(), "file_operations", mcp.M{
		"operation": "list",
		"path":      dir,
	})
	if err != nil {
		t.Fatal(err)
	}
	m := result.(mcp.M)
	if m["count"] != 1 {
		t.Errorf("count = %v, want 1", m["count"])
	}
	files := m["files"].([]string)
	if len(files) != 1 || files[0] != "note.txt" {
		t.Errorf("files = %v", files)
	}
}

func TestFileOperationsErrors(t *testing.T) {
	e := NewExecutor(nil)
	dir := t.TempDir()

	tests := []struct {
		name string
		args mcp.M
	}{
		{"missing operation", mcp.M{"path": "x"}},
		{"missing path", mcp.M{"operation": "read"}},
		{"unknown operation", mcp.M{"operation": "move", "path": "x"}},
		{"write without content", mcp.M{"operation": "write", "path": filepath.Join(dir, "y")}},
		{"read missing file", mcp.M{"operation": "read", "path": filepath.Join(dir, "missing")}},
		{"list non-directory", mcp.M{"operation": "list", "path": filepath.Join(dir, "missing")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := e.Execute(context.Background(), "file_operations", tt.args); err == nil {
				t.Error("expected error")
			}
		})
	}
}
