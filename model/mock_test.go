package model

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/eliciahq/elicia/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drain consumes both channels and returns the final response plus any error.
func drain(respCh <-chan Response, errCh <-chan error) (final *Response, partials []Response, err error) {
	for respCh != nil || errCh != nil {
		select {
		case resp, ok := <-respCh:
			if !ok {
				respCh = nil
				continue
			}
			if resp.Partial {
				partials = append(partials, resp)
			} else {
				r := resp
				final = &r
			}
		case e, ok := <-errCh:
			if !ok {
				errCh = nil
				continue
			}
			if e != nil {
				err = e
			}
		}
	}
	return final, partials, err
}

func TestMockModel_ScriptedTextReply(t *testing.T) {
	m := NewMockModel("mock")
	m.AddTextReply("scripted")

	final, partials, err := drain(m.Generate(context.Background(), Request{
		Messages: []core.Content{core.NewUserContent("hi")},
	}))
	require.NoError(t, err)
	require.NotNil(t, final)
	assert.Empty(t, partials)
	assert.Equal(t, "scripted", final.Content.Text())
	assert.Equal(t, "stop", final.FinishReason)
}

func TestMockModel_EchoWithoutScript(t *testing.T) {
	m := NewMockModel("mock")

	final, _, err := drain(m.Generate(context.Background(), Request{
		Messages: []core.Content{core.NewUserContent("ping")},
	}))
	require.NoError(t, err)
	assert.Contains(t, final.Content.Text(), "ping")
}

func TestMockModel_ToolCallReply(t *testing.T) {
	m := NewMockModel("mock")
	m.AddToolCallReply(core.FunctionCall{ID: "fc-1", Name: "calculate_bmi"})

	final, _, err := drain(m.Generate(context.Background(), Request{}))
	require.NoError(t, err)
	assert.Equal(t, "tool_calls", final.FinishReason)
	require.Len(t, final.Content.FunctionCalls(), 1)
}

func TestMockModel_StreamingEmitsPartials(t *testing.T) {
	m := NewMockModel("mock")
	m.AddTextReply("abc")

	final, partials, err := drain(m.Generate(context.Background(), Request{Stream: true}))
	require.NoError(t, err)
	require.Len(t, partials, 3)

	var b strings.Builder
	for _, p := range partials {
		b.WriteString(p.Content.Text())
	}
	assert.Equal(t, "abc", b.String())
	assert.Equal(t, "abc", final.Content.Text())
}

func TestMockModel_ScriptedError(t *testing.T) {
	m := NewMockModel("mock")
	m.AddError(errors.New("boom"))

	final, _, err := drain(m.Generate(context.Background(), Request{}))
	assert.Nil(t, final)
	assert.EqualError(t, err, "boom")
}

func TestMockModel_RecordsRequests(t *testing.T) {
	m := NewMockModel("mock")
	m.AddTextReply("one")
	m.AddTextReply("two")

	_, _, _ = drain(m.Generate(context.Background(), Request{Stream: false}))
	_, _, _ = drain(m.Generate(context.Background(), Request{Stream: true}))

	reqs := m.Requests()
	require.Len(t, reqs, 2)
	assert.False(t, reqs[0].Stream)
	assert.True(t, reqs[1].Stream)
}
