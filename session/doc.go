// Package session provides SessionStore implementations. The in-memory store
// covers tests, the CLI and ephemeral demo servers; durable deployments can
// supply their own core.SessionStore.
package session
