package errors

import (
	"fmt"
	"net/http"
)

func InvalidArg(param string) *AppError {
	return New(ErrTypeInvalidArg, fmt.Sprintf("invalid arg: %s", param), nil, http.StatusBadRequest).WithStack()
}

// Tool marks a tool-execution failure. These become isError tool
// results on the protocol side, never JSON-RPC errors.
func Tool(message string, cause error) *AppError {
	return New(ErrTypeTool, message, cause, http.StatusInternalServerError).WithStack()
}

// Sampling marks a model-backend failure; the sampling adapter falls
// back to the mock on these.
func Sampling(message string, cause error) *AppError {
	return New(ErrTypeSampling, message, cause, http.StatusInternalServerError).WithStack()
}

// ResourceNotFound marks an unrecognized resource URI.
func ResourceNotFound(uri string) *AppError {
	return New(ErrTypeResource, fmt.Sprintf("resource '%s' not found", uri), nil, http.StatusNotFound).WithStack()
}

// ResourceUnavailable marks a backing store that cannot produce
// content. Kept distinct from ResourceNotFound in logs even though the
// protocol maps both to the same error class.
func ResourceUnavailable(name string, cause error) *AppError {
	return New(ErrTypeStore, fmt.Sprintf("%s not found", name), cause, http.StatusInternalServerError).WithStack()
}

// Commander marks a failure talking to the external command-execution
// service.
func Commander(message string, cause error) *AppError {
	return New(ErrTypeCommander, message, cause, http.StatusBadGateway).WithStack()
}

func HTTP(message string, cause error) *AppError {
	return New(ErrTypeHTTP, message, cause, http.StatusInternalServerError).WithStack()
}

func Config(message string, cause error) *AppError {
	return New(ErrTypeConfig, message, cause, http.StatusInternalServerError).WithStack()
}

func NotFound(resource string, cause error) *AppError {
	message := fmt.Sprintf("resource not found: %s", resource)
	return New(ErrTypeNotFound, message, cause, http.StatusNotFound).WithStack()
}

func Internal(message string, cause error) *AppError {
	return New(ErrTypeInternal, message, cause, http.StatusInternalServerError).WithStack()
}
