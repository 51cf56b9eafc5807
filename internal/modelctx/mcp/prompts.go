package mcp

import (
	"fmt"

	"github.com/modelctx/modelctx/internal/mcp"
	"github.com/modelctx/modelctx/pkg/util"
)

func (s *Service) registerPrompts() {
	catalog := s.server.Prompts()

	catalog.Register(mcp.Prompt{
		Name:        "weather_check",
		Description: "Check weather for a location",
		Arguments: map[string]mcp.PromptArgument{
			"location": {Type: "string", Description: "City and state/country", Required: true},
		},
	}, func(args mcp.M) []mcp.PromptMessage {
		location := util.AnyToString(args["location"])
		if location == "" {
			location = "Unknown"
		}
		return mcp.UserMessage(fmt.Sprintf("What's the weather like in %s?", location))
	})

	catalog.Register(mcp.Prompt{
		Name:        "code_generation",
		Description: "Generate code based on requirements",
		Arguments: map[string]mcp.PromptArgument{
			"language": {Type: "string", Description: "Programming language", Required: true},
			"task":     {Type: "string", Description: "Task description", Required: true},
		},
	}, func(args mcp.M) []mcp.PromptMessage {
		language := util.AnyToString(args["language"])
		if language == "" {
			language = "Python"
		}
		task := util.AnyToString(args["task"])
		return mcp.UserMessage(fmt.Sprintf("Write %s code to %s", language, task))
	})

	catalog.Register(mcp.Prompt{
		Name:        "calculation",
		Description: "Perform mathematical calculations",
		Arguments: map[string]mcp.PromptArgument{
			"expression": {Type: "string", Description: "Mathematical expression", Required: true},
		},
	}, func(args mcp.M) []mcp.PromptMessage {
		expression := util.AnyToString(args["expression"])
		return mcp.UserMessage(fmt.Sprintf("Calculate: %s", expression))
	})
}

func (s *Service) registerCompletions() {
	completions := s.server.Completions()

	completions.Register("location",
		"San Francisco, CA",
		"New York, NY",
		"London, UK",
		"Tokyo, Japan",
	)
	completions.Register("language",
		"Python",
		"JavaScript",
		"Go",
		"Rust",
	)
}
