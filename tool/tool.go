// Package tool implements the function calling subsystem: the Tool interface,
// a schema-validating function adapter, the static catalog (Registry) and the
// Dispatcher that turns model-issued calls into uniform results.
package tool

import "fmt"

// Error codes used across the tool subsystem. Every failure that reaches the
// orchestration loop carries exactly one of these.
const (
	// CodeNotFound marks calls to a name absent from the catalog.
	CodeNotFound = "NOT_FOUND"
	// CodeArgument marks argument payloads that could not be decoded as JSON.
	CodeArgument = "ARGUMENT_ERROR"
	// CodeValidation marks arguments that decoded but failed schema validation.
	CodeValidation = "VALIDATION_ERROR"
	// CodeExecution marks failures raised by the tool implementation itself.
	CodeExecution = "EXECUTION_ERROR"
)

// Tool defines a named, pure capability the model can invoke by name.
//
// Implementations should:
//   - Provide clear snake_case names and concise descriptions
//   - Declare a JSON schema for their parameters
//   - Return JSON-serializable results
//   - Be safe for concurrent use
type Tool interface {
	// Name returns the unique identifier for this tool.
	Name() string

	// Description returns the human-readable description shown to the model.
	Description() string

	// Parameters returns a JSON schema describing the expected arguments.
	Parameters() map[string]any

	// Call executes the tool with decoded, schema-validated arguments.
	Call(args map[string]any) (any, error)
}

// ToolError represents errors that occur during tool lookup or execution.
type ToolError struct {
	Tool    string `json:"tool"`              // Name of the tool that failed
	Message string `json:"message"`           // Error message
	Code    string `json:"code"`              // Error code for categorization
	Details any    `json:"details,omitempty"` // Additional error details
}

func (e *ToolError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("tool error [%s] in %s: %s", e.Code, e.Tool, e.Message)
	}
	return fmt.Sprintf("tool error in %s: %s", e.Tool, e.Message)
}

// NewToolError creates a new ToolError with the specified details.
func NewToolError(tool, message, code string) *ToolError {
	return &ToolError{
		Tool:    tool,
		Message: message,
		Code:    code,
	}
}
