package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/modelctx/modelctx/internal/mcp"
	"github.com/modelctx/modelctx/internal/modelctx/conf"
	mcpservice "github.com/modelctx/modelctx/internal/modelctx/mcp"
)

type stubExecutor struct{}

func (stubExecutor) Tools() []mcp.Tool {
	return []mcp.Tool{{Name: "echo", InputSchema: mcp.ToolSchema{Type: "object", Properties: mcp.M{}}}}
}

func (stubExecutor) Execute(_ context.Context, _ string, args mcp.M) (interface{}, error) {
	return args, nil
}

func newTestHTTPService(t *testing.T) *Service {
	t.Helper()
	sc := &conf.ServerConfig{
		HTTPAddr: "127.0.0.1:0",
		DataDir:  t.TempDir(),
		Model:    "test-model",
	}
	return NewService(sc, mcpservice.NewService(sc, stubExecutor{}, nil))
}

func doRequest(t *testing.T, s *Service, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.GetRouter().ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	s := newTestHTTPService(t)

	w := doRequest(t, s, http.MethodGet, "/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	w = doRequest(t, s, http.MethodGet, "/api/v1/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["status"] != "healthy" || body["initialized"] != false {
		t.Errorf("unexpected body: %v", body)
	}
}

func TestInfo(t *testing.T) {
	s := newTestHTTPService(t)

	w := doRequest(t, s, http.MethodGet, "/api/v1/info", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	tools, ok := body["tools"].([]interface{})
	if !ok || len(tools) != 1 || tools[0] != "echo" {
		t.Errorf("tools = %v", body["tools"])
	}
	model, ok := body["model"].(map[string]interface{})
	if !ok || model["name"] != "test-model" {
		t.Errorf("model = %v", body["model"])
	}
}

func TestRPCRoundTrip(t *testing.T) {
	s := newTestHTTPService(t)

	w := doRequest(t, s, http.MethodPost, "/rpc", `{"jsonrpc":"2.0","id":1,"method":"ping"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp["jsonrpc"] != "2.0" || resp["id"] != float64(1) {
		t.Errorf("unexpected envelope: %v", resp)
	}
	result, ok := resp["result"].(map[string]interface{})
	if !ok || result["pong"] != true {
		t.Errorf("result = %v", resp["result"])
	}
}

func TestRPCNotificationAccepted(t *testing.T) {
	s := newTestHTTPService(t)

	w := doRequest(t, s, http.MethodPost, "/rpc", `{"jsonrpc":"2.0","method":"ping"}`)
	if w.Code != http.StatusAccepted {
		t.Errorf("status = %d, want 202", w.Code)
	}
}

func TestRPCParseError(t *testing.T) {
	s := newTestHTTPService(t)

	w := doRequest(t, s, http.MethodPost, "/rpc", `{broken`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	errObj, ok := resp["error"].(map[string]interface{})
	if !ok || errObj["code"] != float64(-32700) {
		t.Errorf("expected parse error, got %v", resp)
	}
}

func TestMessagesEndpoint(t *testing.T) {
	s := newTestHTTPService(t)

	w := doRequest(t, s, http.MethodPost, "/api/v1/messages",
		`{"messages":[{"role":"user","content":{"type":"text","text":"weather please"}}]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["success"] != true {
		t.Errorf("success = %v", body["success"])
	}
	message, ok := body["message"].(map[string]interface{})
	if !ok || message["role"] != "assistant" {
		t.Errorf("message = %v", body["message"])
	}
}

func TestMessageUnknownChannel(t *testing.T) {
	s := newTestHTTPService(t)

	w := doRequest(t, s, http.MethodPost, "/message?sessionId=nope", `{"jsonrpc":"2.0","id":1,"method":"ping"}`)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}

	w = doRequest(t, s, http.MethodPost, "/message", `{"jsonrpc":"2.0","id":1,"method":"ping"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}
