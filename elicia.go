// Package elicia provides a high-level façade over the coaching loop and its
// services (tool catalog, sessions & logging) for building conversational
// health & fitness assistants. Most applications interact with this package by:
//  1. Creating an Elicia via New() with a model adapter (openai, anthropic or a mock)
//  2. Starting a session (StartSession) to seed the system prompt
//  3. Sending user turns asynchronously (Send) or synchronously (SendSync)
//
// The façade delegates orchestration to coach.Coach while keeping setup and
// usage ergonomics concise. All defaults are safe for local development and
// testing; production deployments typically supply a durable session store
// and a structured logger.
package elicia

import (
	"context"
	"strings"

	"github.com/eliciahq/elicia/coach"
	"github.com/eliciahq/elicia/core"
	"github.com/eliciahq/elicia/logging"
	"github.com/eliciahq/elicia/model"
	"github.com/eliciahq/elicia/session"
	"github.com/eliciahq/elicia/tool"
	"github.com/eliciahq/elicia/tools"
)

// Options configures the Elicia instance.
type Options struct {
	// Registry holds the callable tool catalog. Defaults to the built-in
	// health & fitness tools.
	Registry *tool.Registry

	// SystemPrompt seeds every new session. Defaults to the coaching prompt.
	SystemPrompt string

	// Welcome is the greeting returned by StartSession.
	Welcome string

	// MaxToolRounds bounds tool-call rounds per turn (default 5).
	MaxToolRounds int

	// SessionStore persists conversations (defaults to in-memory).
	SessionStore core.SessionStore

	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger
}

// Elicia is the high-level façade aggregating the coach and its services.
type Elicia struct {
	opts  Options
	coach *coach.Coach
}

// New creates an Elicia instance backed by the given model with optional
// overrides. Any unset service is initialized with a default implementation.
func New(m model.Model, optFns ...func(o *Options)) *Elicia {
	opts := Options{
		Registry:     tools.NewRegistry(),
		SessionStore: session.NewInMemoryStore(),
		Logger:       logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	c := coach.New(m, opts.Registry, func(o *coach.Options) {
		if opts.SystemPrompt != "" {
			o.SystemPrompt = opts.SystemPrompt
		}
		if opts.Welcome != "" {
			o.Welcome = opts.Welcome
		}
		if opts.MaxToolRounds > 0 {
			o.MaxToolRounds = opts.MaxToolRounds
		}
		o.Store = opts.SessionStore
		o.Logger = opts.Logger
	})

	return &Elicia{opts: opts, coach: c}
}

// StartSession creates a session seeded with the system prompt and returns
// the welcome message.
func (e *Elicia) StartSession(sessionID string) (string, error) {
	return e.coach.StartSession(sessionID)
}

// Send starts an asynchronous turn returning answer-fragment & error channels.
func (e *Elicia) Send(ctx context.Context, sessionID, text string) (<-chan string, <-chan error) {
	return e.coach.Send(ctx, sessionID, text)
}

// SendSync is a synchronous helper that drains the async channels and returns
// the assembled answer.
func (e *Elicia) SendSync(ctx context.Context, sessionID, text string) (string, error) {
	fragments, errs := e.coach.Send(ctx, sessionID, text)

	var b strings.Builder
	for {
		select {
		case <-ctx.Done():
			return b.String(), ctx.Err()

		case fragment, ok := <-fragments:
			if !ok {
				// Fragments closed - check for terminal error
				select {
				case err := <-errs:
					return b.String(), err
				default:
					return b.String(), nil
				}
			}
			b.WriteString(fragment)

		case err := <-errs:
			if err != nil {
				return b.String(), err
			}
		}
	}
}
