package coach

import (
	"errors"
	"fmt"
)

// Model call stages, recorded on ModelCallError so operators can tell which
// request of a turn failed.
const (
	StageInitial  = "initial"
	StagePostTool = "post-tool"
)

// ModelCallError reports a failed outbound model call. It is fatal to the
// turn: the session reverts to its pre-turn state and the caller sees a
// single error.
type ModelCallError struct {
	Stage string
	Err   error
}

func (e *ModelCallError) Error() string {
	return fmt.Sprintf("model call failed (%s): %v", e.Stage, e.Err)
}

// Unwrap exposes the underlying cause for errors.Is / errors.As.
func (e *ModelCallError) Unwrap() error { return e.Err }

// ErrToolRoundsExceeded is returned when the model keeps requesting tool
// calls past the configured round limit. Treated like a fatal model failure
// rather than guessing which round to honor.
var ErrToolRoundsExceeded = errors.New("coach: tool call rounds exceeded")

// ErrSessionNotStarted is returned when a turn targets a session that was
// never initialized with StartSession.
var ErrSessionNotStarted = errors.New("coach: session not started")
