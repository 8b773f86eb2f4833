// Package core defines the shared conversation primitives used across the
// coaching assistant: the closed Part union (text, function call, function
// response), role-tagged Content messages, and the append-only Session that
// holds one conversation's ordered history.
//
// Design goals:
//   - Keep message shapes minimal and provider independent
//   - Model tool calls / results as typed parts instead of loose maps
//   - Make conversation state an explicit value owned by exactly one session
package core
