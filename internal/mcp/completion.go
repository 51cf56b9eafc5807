package mcp

const (
	MethodCompletionComplete = "completion/complete"
)

type CompleteRequest struct {
	Ref      interface{}        `json:"ref,omitempty"`
	Argument CompletionArgument `json:"argument"`
}

type CompletionArgument struct {
	Name  string `json:"name"`
	Value string `json:"value,omitempty"`
}

type CompleteResponse struct {
	Completion Completion `json:"completion"`
}

type Completion struct {
	Values  []CompletionValue `json:"values"`
	HasMore bool              `json:"hasMore"`
}

type CompletionValue struct {
	Value string `json:"value"`
}

// CompletionProvider maps argument names to their suggestion lists. The
// mapping is fixed at startup; unknown arguments complete to nothing.
type CompletionProvider struct {
	values map[string][]CompletionValue
}

func NewCompletionProvider() *CompletionProvider {
	return &CompletionProvider{
		values: make(map[string][]CompletionValue),
	}
}

// Register sets the suggestions for an argument name. Startup only.
func (p *CompletionProvider) Register(argument string, values ...string) {
	list := make([]CompletionValue, 0, len(values))
	for _, v := range values {
		list = append(list, CompletionValue{Value: v})
	}
	p.values[argument] = list
}

func (p *CompletionProvider) Complete(argument string) *CompleteResponse {
	values := p.values[argument]
	if values == nil {
		values = []CompletionValue{}
	}
	return &CompleteResponse{
		Completion: Completion{Values: values, HasMore: false},
	}
}
