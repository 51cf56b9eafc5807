package errors

import (
	"fmt"
	"net/http"
	"testing"
)

func TestErrorCreation(t *testing.T) {
	err := New("test", "test message", nil, http.StatusBadRequest)
	if err.Type != "test" || err.Message != "test message" || err.Code != http.StatusBadRequest {
		t.Errorf("New() created incorrect error: %v", err)
	}

	cause := fmt.Errorf("original error")
	err = New("test", "test with cause", cause, http.StatusInternalServerError)
	if err.Cause != cause {
		t.Errorf("New() did not set cause correctly: %v", err)
	}

	expected := "test: test with cause: original error"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
}

func TestErrorWrapping(t *testing.T) {
	original := fmt.Errorf("original error")
	wrapped := Wrap(original, "wrapped", "wrapped message", http.StatusBadRequest)

	if wrapped.Type != "wrapped" || wrapped.Message != "wrapped message" {
		t.Errorf("Wrap() created incorrect error: %v", wrapped)
	}

	if wrapped.Cause != original {
		t.Errorf("Wrap() did not set cause correctly")
	}

	appErr := New("app", "app error", nil, http.StatusNotFound)
	rewrapped := Wrap(appErr, "ignored", "new message", http.StatusBadRequest)

	if rewrapped.Type != "app" {
		t.Errorf("Wrap() did not preserve original AppError type: got %s, want %s",
			rewrapped.Type, appErr.Type)
	}

	if rewrapped.Message != "new message" {
		t.Errorf("Wrap() did not update message: got %s, want %s",
			rewrapped.Message, "new message")
	}

	if rewrapped.Code != appErr.Code {
		t.Errorf("Wrap() did not preserve original status code: got %d, want %d",
			rewrapped.Code, appErr.Code)
	}

	if Wrap(nil, "x", "y", http.StatusOK) != nil {
		t.Error("Wrap(nil) must return nil")
	}
}

func TestErrorTypeChecking(t *testing.T) {
	toolErr := Tool("tool error", nil)
	httpErr := HTTP("http error", nil)

	if !Is(toolErr, ErrTypeTool) {
		t.Errorf("Is() failed to identify tool error")
	}

	if Is(toolErr, ErrTypeHTTP) {
		t.Errorf("Is() incorrectly identified tool error as HTTP error")
	}

	if !Is(httpErr, ErrTypeHTTP) {
		t.Errorf("Is() failed to identify HTTP error")
	}

	if Is(nil, ErrTypeTool) {
		t.Errorf("Is(nil) must be false")
	}

	if Is(fmt.Errorf("plain"), ErrTypeTool) {
		t.Errorf("Is() must be false for non-AppError")
	}
}

func TestGetTypeAndCode(t *testing.T) {
	err := ResourceNotFound("mcp://test/missing")

	if GetType(err) != ErrTypeResource {
		t.Errorf("GetType() = %s, want %s", GetType(err), ErrTypeResource)
	}
	if GetCode(err) != http.StatusNotFound {
		t.Errorf("GetCode() = %d, want %d", GetCode(err), http.StatusNotFound)
	}

	if GetType(nil) != "" {
		t.Errorf("GetType(nil) = %s, want empty", GetType(nil))
	}
	if GetCode(nil) != http.StatusOK {
		t.Errorf("GetCode(nil) = %d, want %d", GetCode(nil), http.StatusOK)
	}

	plain := fmt.Errorf("plain")
	if GetType(plain) != "unknown" {
		t.Errorf("GetType(plain) = %s, want unknown", GetType(plain))
	}
	if GetCode(plain) != http.StatusInternalServerError {
		t.Errorf("GetCode(plain) = %d", GetCode(plain))
	}
}

func TestDomainConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		wantType string
		wantCode int
	}{
		{"tool", Tool("boom", nil), ErrTypeTool, http.StatusInternalServerError},
		{"sampling", Sampling("boom", nil), ErrTypeSampling, http.StatusInternalServerError},
		{"resource not found", ResourceNotFound("mcp://x"), ErrTypeResource, http.StatusNotFound},
		{"resource unavailable", ResourceUnavailable("Training data", nil), ErrTypeStore, http.StatusInternalServerError},
		{"commander", Commander("boom", nil), ErrTypeCommander, http.StatusBadGateway},
		{"invalid arg", InvalidArg("location"), ErrTypeInvalidArg, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Type != tt.wantType {
				t.Errorf("Type = %s, want %s", tt.err.Type, tt.wantType)
			}
			if tt.err.Code != tt.wantCode {
				t.Errorf("Code = %d, want %d", tt.err.Code, tt.wantCode)
			}
			if len(tt.err.Stack) == 0 {
				t.Error("expected a recorded stack")
			}
		})
	}
}

func TestRootCause(t *testing.T) {
	origin := fmt.Errorf("origin")
	wrapped := Tool("middle", origin)

	if RootCause(wrapped) != origin {
		t.Errorf("RootCause() = %v, want %v", RootCause(wrapped), origin)
	}
	if RootCause(nil) != nil {
		t.Error("RootCause(nil) must be nil")
	}
}
