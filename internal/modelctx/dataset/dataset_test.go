package dataset

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/modelctx/modelctx/internal/mcp"
)

func testTools() []mcp.Tool {
	return []mcp.Tool{
		{Name: "get_weather", Description: "Get the current weather in a given location", InputSchema: mcp.ToolSchema{Type: "object", Properties: mcp.M{}}},
		{Name: "calculate", Description: "Perform mathematical calculations", InputSchema: mcp.ToolSchema{Type: "object", Properties: mcp.M{}}},
	}
}

func TestSeedExamples(t *testing.T) {
	b := NewBuilder(testTools())
	Seed(b)

	if b.Count() != 3 {
		t.Errorf("Count = %d, want 3", b.Count())
	}
}

func TestExampleShape(t *testing.T) {
	b := NewBuilder(testTools())

	call := NewToolCall("call_001", "get_weather", mcp.M{"location": "New York, NY"})
	b.AddExample("What's the weather?", "Checking.",
		[]ToolCall{call},
		[]mcp.M{{"temperature": 72}},
	)

	example := b.examples[0]
	messages := example["messages"].([]mcp.M)
	// user, assistant+tool_calls, tool, final assistant
	if len(messages) != 4 {
		t.Fatalf("expected 4 messages, got %d", len(messages))
	}
	if messages[0]["role"] != "user" || messages[1]["role"] != "assistant" {
		t.Errorf("unexpected roles: %v %v", messages[0]["role"], messages[1]["role"])
	}
	if messages[2]["role"] != "tool" || messages[2]["tool_call_id"] != "call_001" {
		t.Errorf("unexpected tool message: %v", messages[2])
	}
	if messages[3]["role"] != "assistant" {
		t.Errorf("unexpected final message: %v", messages[3])
	}
	if _, ok := example["tools"]; !ok {
		t.Error("example must carry tool definitions")
	}
}

func TestExampleWithoutTools(t *testing.T) {
	b := NewBuilder(nil)
	b.AddExample("What is Go?", "A programming language.", nil, nil)

	example := b.examples[0]
	messages := example["messages"].([]mcp.M)
	if len(messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(messages))
	}
	if _, ok := example["tools"]; ok {
		t.Error("example without a catalog must not carry tools")
	}
}

func TestWriteArtifacts(t *testing.T) {
	dir := t.TempDir()
	b := NewBuilder(testTools())
	Seed(b)

	if err := b.WriteArtifacts(dir, DefaultSystemPrompt, "test-model", "https://example.com/api/v1"); err != nil {
		t.Fatal(err)
	}

	// training data is one JSON object per line
	f, err := os.Open(filepath.Join(dir, TrainingDataFile))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	lines := 0
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		var example map[string]interface{}
		if err := json.Unmarshal(scanner.Bytes(), &example); err != nil {
			t.Fatalf("line %d is not valid JSON: %v", lines+1, err)
		}
		lines++
	}
	if lines != 3 {
		t.Errorf("expected 3 JSONL lines, got %d", lines)
	}

	// template embeds the system prompt and the tool definitions
	template, err := os.ReadFile(filepath.Join(dir, PromptTemplateFile))
	if err != nil {
		t.Fatal(err)
	}
	text := string(template)
	for _, want := range []string{"<|system|>", "{user_input}", "get_weather", "Always be concise"} {
		if !strings.Contains(text, want) {
			t.Errorf("template missing %q", want)
		}
	}

	// config names the model and the tools
	data, err := os.ReadFile(filepath.Join(dir, ConfigFile))
	if err != nil {
		t.Fatal(err)
	}
	var config map[string]interface{}
	if err := json.Unmarshal(data, &config); err != nil {
		t.Fatal(err)
	}
	if config["model"] != "test-model" {
		t.Errorf("model = %v", config["model"])
	}
	if config["training_examples"] != float64(3) {
		t.Errorf("training_examples = %v", config["training_examples"])
	}
}
