// Package coach implements the per-turn orchestration loop: submit the
// conversation and tool catalog to the model, execute any requested tool
// calls, fold the results back into the conversation, and stream the final
// answer. One turn per session runs at a time; independent sessions are
// independent.
package coach
