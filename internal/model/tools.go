package model

// ToolRequest is the envelope an agent runtime or function gateway sends.
type ToolRequest struct {
	ToolName   string         `json:"tool_name"`
	Parameters map[string]any `json:"parameters"`
}

type ToolResponse struct {
	StatusCode   int    `json:"statusCode"`
	InvocationID string `json:"invocation_id"`
	Body         any    `json:"body"`
}

type ToolError struct {
	Error     string    `json:"error"`
	ErrorCode ErrorCode `json:"error_code"`
	Details   string    `json:"details,omitempty"`
}

// Caller is the token info carried by gateway bearer tokens. An empty Tools
// list allows every tool.
type Caller struct {
	Name  string   `json:"name"`
	Tools []string `json:"tools,omitempty"`
}

func (c *Caller) Allows(tool string) bool {
	if c == nil || len(c.Tools) == 0 {
		return true
	}
	for _, t := range c.Tools {
		if t == tool {
			return true
		}
	}
	return false
}
