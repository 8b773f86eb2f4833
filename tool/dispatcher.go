package tool

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/eliciahq/elicia/core"
	"github.com/eliciahq/elicia/logging"
)

// Status classifies the outcome of a dispatched call.
type Status string

const (
	// StatusOK marks a successful invocation.
	StatusOK Status = "ok"
	// StatusNotFound marks a call naming a tool absent from the catalog.
	StatusNotFound Status = "not_found"
	// StatusFailed marks a call that reached a tool but did not produce a result.
	StatusFailed Status = "failed"
)

// Result is the uniform outcome of one dispatch attempt. Failures are data,
// not errors: the caller folds them into the conversation for the model to
// explain, exactly like a successful result.
type Result struct {
	Status Status
	Tool   string
	Value  any
	Err    *ToolError
}

// OK reports whether the invocation succeeded.
func (r Result) OK() bool { return r.Status == StatusOK }

// Payload returns the single JSON-compatible shape fed back to the model: the
// tool's value on success, an error object on any failure.
func (r Result) Payload() any {
	if r.OK() {
		return r.Value
	}
	return map[string]any{"error": r.Err.Message}
}

// Response converts the result into the tool message answering call.
func (r Result) Response(call core.FunctionCall) core.FunctionResponse {
	fr := core.FunctionResponse{ID: call.ID, Name: call.Name, Response: r.Payload()}
	if !r.OK() {
		fr.Error = r.Err.Message
	}
	return fr
}

// Dispatcher resolves model-issued function calls against a Registry and
// invokes them. Exactly one attempt per call, no retries; every outcome is
// reported as a Result so nothing propagates as a Go error.
type Dispatcher struct {
	registry *Registry
	logger   logging.Logger
}

// NewDispatcher constructs a Dispatcher over the given catalog.
func NewDispatcher(registry *Registry, logger logging.Logger) *Dispatcher {
	if logger == nil {
		logger = logging.NoOpLogger{}
	}
	return &Dispatcher{registry: registry, logger: logger}
}

// Dispatch looks up and invokes the tool named by call.
//
// Outcome mapping:
//
//	unknown name                 -> StatusNotFound, code NOT_FOUND
//	argument JSON undecodable    -> StatusFailed, code ARGUMENT_ERROR
//	schema validation failure    -> StatusFailed, code VALIDATION_ERROR
//	tool returned an error       -> StatusFailed, code EXECUTION_ERROR
//	tool panicked                -> StatusFailed, code EXECUTION_ERROR
//	success                      -> StatusOK with the tool's value
func (d *Dispatcher) Dispatch(call core.FunctionCall) Result {
	impl, ok := d.registry.Get(call.Name)
	if !ok {
		d.logger.Warn("tool.dispatch.not_found", "tool", call.Name, "fc_id", call.ID)
		return Result{
			Status: StatusNotFound,
			Tool:   call.Name,
			Err:    NewToolError(call.Name, fmt.Sprintf("tool '%s' not found", call.Name), CodeNotFound),
		}
	}

	args, err := decodeArguments(call.Arguments)
	if err != nil {
		d.logger.Warn("tool.dispatch.bad_arguments", "tool", call.Name, "fc_id", call.ID, "error", err.Error())
		return Result{
			Status: StatusFailed,
			Tool:   call.Name,
			Err:    NewToolError(call.Name, fmt.Sprintf("failed to decode arguments: %v", err), CodeArgument),
		}
	}

	start := time.Now()
	value, err := d.invoke(impl, args)
	d.logger.Info("tool.dispatch.executed",
		"tool", call.Name,
		"fc_id", call.ID,
		"duration_ms", time.Since(start).Milliseconds(),
		"error", err != nil,
	)

	if err != nil {
		toolErr, ok := err.(*ToolError)
		if !ok {
			toolErr = NewToolError(call.Name, err.Error(), CodeExecution)
		}
		return Result{Status: StatusFailed, Tool: call.Name, Err: toolErr}
	}
	return Result{Status: StatusOK, Tool: call.Name, Value: value}
}

// invoke shields the dispatcher from panicking tool implementations.
func (d *Dispatcher) invoke(impl Tool, args map[string]any) (value any, err error) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("tool.dispatch.panic", "tool", impl.Name(), "recover", r)
			err = NewToolError(impl.Name(), fmt.Sprintf("panic: %v", r), CodeExecution)
		}
	}()
	return impl.Call(args)
}

func decodeArguments(raw string) (map[string]any, error) {
	if raw == "" {
		return map[string]any{}, nil
	}
	var args map[string]any
	if err := json.Unmarshal([]byte(raw), &args); err != nil {
		return nil, err
	}
	return args, nil
}
