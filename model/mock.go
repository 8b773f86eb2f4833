package model

import (
	"context"
	"fmt"
	"sync"

	"github.com/eliciahq/elicia/core"
)

// MockModel is a deterministic in-memory Model for tests and examples. Replies
// are scripted in order: each Generate call consumes the next step. With an
// empty script it echoes the last user message, which keeps simple examples
// working without setup.
type MockModel struct {
	info Info

	mu       sync.Mutex
	steps    []scriptStep
	requests []Request
}

type scriptStep struct {
	content core.Content
	err     error
}

// NewMockModel constructs a MockModel with tool support enabled.
func NewMockModel(name string) *MockModel {
	return &MockModel{
		info: Info{Name: name, Provider: "mock", SupportsTools: true},
	}
}

// AddTextReply scripts a plain assistant text reply.
func (m *MockModel) AddTextReply(text string) {
	m.addStep(scriptStep{content: core.NewAssistantContent(text)})
}

// AddToolCallReply scripts an assistant reply requesting the given tool calls.
func (m *MockModel) AddToolCallReply(calls ...core.FunctionCall) {
	parts := make([]core.Part, 0, len(calls))
	for _, c := range calls {
		parts = append(parts, core.FunctionCallPart{FunctionCall: c})
	}
	m.addStep(scriptStep{content: core.Content{Role: core.RoleAssistant, Parts: parts}})
}

// AddError scripts a failed generation.
func (m *MockModel) AddError(err error) {
	m.addStep(scriptStep{err: err})
}

// Requests returns a copy of every request seen so far, in order.
func (m *MockModel) Requests() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	reqs := make([]Request, len(m.requests))
	copy(reqs, m.requests)
	return reqs
}

func (m *MockModel) addStep(s scriptStep) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.steps = append(m.steps, s)
}

func (m *MockModel) nextStep(req Request) scriptStep {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = append(m.requests, req)
	if len(m.steps) == 0 {
		var lastText string
		if len(req.Messages) > 0 {
			lastText = req.Messages[len(req.Messages)-1].Text()
		}
		return scriptStep{content: core.NewAssistantContent(fmt.Sprintf("Mock response to: %s", lastText))}
	}
	s := m.steps[0]
	m.steps = m.steps[1:]
	return s
}

// Generate implements Model; streams rune-sized partial chunks when requested.
func (m *MockModel) Generate(ctx context.Context, req Request) (<-chan Response, <-chan error) {
	respCh := make(chan Response, 16)
	errCh := make(chan error, 1)

	go func() {
		defer close(respCh)
		defer close(errCh)

		step := m.nextStep(req)
		if step.err != nil {
			errCh <- step.err
			return
		}

		finishReason := "stop"
		if len(step.content.FunctionCalls()) > 0 {
			finishReason = "tool_calls"
		}

		if req.Stream && finishReason == "stop" {
			for _, r := range step.content.Text() {
				select {
				case <-ctx.Done():
					errCh <- ctx.Err()
					return
				case respCh <- Response{
					Partial: true,
					Content: core.NewAssistantContent(string(r)),
				}:
				}
			}
		}

		respCh <- Response{
			Partial:      false,
			Content:      step.content,
			FinishReason: finishReason,
		}
	}()

	return respCh, errCh
}

// Info implements the Model interface.
func (m *MockModel) Info() Info { return m.info }
