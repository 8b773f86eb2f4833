package coach

import (
	"context"
	"fmt"
	"time"

	"github.com/eliciahq/elicia/core"
	"github.com/eliciahq/elicia/logging"
	"github.com/eliciahq/elicia/model"
	"github.com/eliciahq/elicia/session"
	"github.com/eliciahq/elicia/tool"
)

// Options configure a Coach. All fields have safe defaults.
type Options struct {
	// SystemPrompt is inserted once as the first message of every session.
	SystemPrompt string
	// Welcome is returned by StartSession.
	Welcome string
	// MaxToolRounds bounds how many tool-call rounds one turn may execute.
	// Exceeding the bound aborts the turn with ErrToolRoundsExceeded.
	MaxToolRounds int
	// CallTimeout caps each outbound model call. Timeouts are terminal for
	// the turn, never retried.
	CallTimeout time.Duration
	// Store persists sessions. Defaults to an in-memory store.
	Store core.SessionStore
	// Logger receives structured progress events. Defaults to NoOp.
	Logger logging.Logger
}

// Coach coordinates one user turn at a time: model call, tool dispatch,
// conversation bookkeeping and the final streamed answer. Methods are safe
// for concurrent use across distinct sessions.
type Coach struct {
	model      model.Model
	registry   *tool.Registry
	dispatcher *tool.Dispatcher
	store      core.SessionStore
	logger     logging.Logger

	systemPrompt  string
	welcome       string
	maxToolRounds int
	callTimeout   time.Duration
}

// New constructs a Coach for the given model and tool catalog.
func New(m model.Model, registry *tool.Registry, optFns ...func(o *Options)) *Coach {
	opts := Options{
		SystemPrompt:  DefaultSystemPrompt,
		Welcome:       DefaultWelcome,
		MaxToolRounds: 5,
		CallTimeout:   60 * time.Second,
		Logger:        logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Store == nil {
		opts.Store = session.NewInMemoryStore()
	}

	return &Coach{
		model:         m,
		registry:      registry,
		dispatcher:    tool.NewDispatcher(registry, opts.Logger),
		store:         opts.Store,
		logger:        opts.Logger,
		systemPrompt:  opts.SystemPrompt,
		welcome:       opts.Welcome,
		maxToolRounds: opts.MaxToolRounds,
		callTimeout:   opts.CallTimeout,
	}
}

// StartSession creates the session, seeds it with the system prompt and
// returns the welcome message. The system prompt is inserted exactly once;
// it is never re-inserted on later turns.
func (c *Coach) StartSession(id string) (string, error) {
	sess, err := c.store.Create(id)
	if err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}
	sess.Append(core.NewSystemContent(c.systemPrompt))
	if err := c.store.Save(sess); err != nil {
		return "", fmt.Errorf("save session: %w", err)
	}
	c.logger.Info("coach.session.started", "session_id", id)
	return c.welcome, nil
}

// Send runs one user turn. The returned fragments channel is a finite,
// single-pass stream of answer text; the error channel delivers at most one
// terminal error. Both close when the turn ends. On error the session keeps
// its pre-turn state, so the next turn starts clean.
func (c *Coach) Send(ctx context.Context, sessionID, text string) (<-chan string, <-chan error) {
	fragments := make(chan string, 32)
	errs := make(chan error, 1)

	go func() {
		defer close(fragments)
		defer close(errs)
		if err := c.runTurn(ctx, sessionID, text, fragments); err != nil {
			c.logger.Error("coach.turn.failed", "session_id", sessionID, "error", err.Error())
			errs <- err
		}
	}()

	return fragments, errs
}

// runTurn drives the turn state machine on a private snapshot of the session
// and commits the snapshot only after the final answer is complete. Partial
// appends from a failed turn are therefore never persisted.
func (c *Coach) runTurn(ctx context.Context, sessionID, text string, fragments chan<- string) error {
	sess, err := c.store.Get(sessionID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSessionNotStarted, err)
	}
	if sess.Len() == 0 {
		return ErrSessionNotStarted
	}

	start := time.Now()
	sess.Append(core.NewUserContent(text))

	rounds := 0
	for {
		stage, stream, toolsOn := StageInitial, false, true
		if rounds > 0 {
			// The answer after a tool round is streamed and finalizing:
			// tools are withheld so the model must respond in text.
			stage, stream, toolsOn = StagePostTool, true, false
		}

		reply, err := c.callModel(ctx, sess, toolsOn, stream, fragments)
		if err != nil {
			return &ModelCallError{Stage: stage, Err: err}
		}

		calls := reply.FunctionCalls()
		if len(calls) == 0 {
			final := reply.Text()
			if !stream && final != "" {
				fragments <- final
			}
			sess.Append(core.NewAssistantContent(final))
			break
		}

		if rounds >= c.maxToolRounds {
			return ErrToolRoundsExceeded
		}

		// The assistant message carrying the tool calls must precede the
		// results so the model's next context includes what it asked for.
		sess.Append(reply)
		for _, call := range calls {
			result := c.dispatcher.Dispatch(call)
			sess.Append(core.NewToolContent(result.Response(call)))
		}
		rounds++
	}

	if err := c.store.Save(sess); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	c.logger.Info("coach.turn.complete",
		"session_id", sessionID,
		"tool_rounds", rounds,
		"messages", sess.Len(),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// callModel performs one model call under the configured timeout, forwarding
// partial text to fragments when streaming, and returns the final content.
func (c *Coach) callModel(
	ctx context.Context,
	sess *core.Session,
	toolsOn, stream bool,
	fragments chan<- string,
) (core.Content, error) {
	callCtx := ctx
	if c.callTimeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, c.callTimeout)
		defer cancel()
	}

	req := model.Request{Messages: sess.Messages(), Stream: stream}
	if toolsOn {
		req.Tools = c.registry.Definitions()
	}

	respCh, errCh := c.model.Generate(callCtx, req)

	var final *core.Content
	for respCh != nil || errCh != nil {
		select {
		case resp, ok := <-respCh:
			if !ok {
				respCh = nil
				continue
			}
			if resp.Partial {
				if stream {
					if text := resp.Content.Text(); text != "" {
						fragments <- text
					}
				}
				continue
			}
			content := resp.Content
			final = &content
		case err, ok := <-errCh:
			if !ok {
				errCh = nil
				continue
			}
			if err != nil {
				return core.Content{}, err
			}
		}
	}

	if final == nil {
		return core.Content{}, fmt.Errorf("model returned no response")
	}
	return *final, nil
}
