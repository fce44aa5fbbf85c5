// Package session provides the conversation container: the ordered history
// of sent messages and the artifact IDs they dispatched. Conversations are
// volatile, scoped to the process lifetime and never persisted, matching the
// workspace's in-memory design. Durable backends can implement the same
// store shape without touching calling code.
package session
