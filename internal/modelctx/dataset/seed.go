package dataset

import "github.com/modelctx/modelctx/internal/mcp"

// DefaultSystemPrompt is embedded into the generated prompt template.
const DefaultSystemPrompt = `You are a helpful AI assistant with access to various tools.
When a user asks a question that requires using a tool, you should:
1. Identify the appropriate tool
2. Extract the necessary parameters
3. Call the tool with proper arguments
4. Provide a helpful response based on the tool's output

Always be concise and accurate in your responses.`

// Seed adds the three baseline training examples.
func Seed(b *Builder) {
	b.AddExample(
		"What's the weather like in New York?",
		"I'll check the weather in New York for you.",
		[]ToolCall{NewToolCall("call_001", "get_weather", mcp.M{"location": "New York, NY"})},
		[]mcp.M{{"temperature": 72, "condition": "Partly cloudy", "humidity": 65}},
	)

	b.AddExample(
		"Calculate the square root of 144",
		"I'll calculate that for you.",
		[]ToolCall{NewToolCall("call_002", "calculate", mcp.M{"expression": "144 ** 0.5"})},
		[]mcp.M{{"result": 12.0}},
	)

	b.AddExample(
		"What is machine learning?",
		"Machine learning is a subset of artificial intelligence that enables systems to learn and improve from experience without being explicitly programmed. It focuses on developing algorithms that can analyze data, identify patterns, and make decisions with minimal human intervention.",
		nil, nil,
	)
}
