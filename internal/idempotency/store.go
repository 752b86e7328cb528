// Package idempotency deduplicates retried mutating calls. A caller-supplied
// opaque token maps to the outcome of the first successful execution; replays
// with the same token get the recorded snapshot back instead of a second
// state transition. The cache is advisory: if it is unavailable or an entry
// was evicted, the underlying state machine re-derives the correct terminal
// error on its own.
package idempotency

import (
	"context"
	"encoding/json"
	"time"
)

type Action string

const (
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
)

// Entry is what a token resolves to: the request it belonged to plus the
// response snapshot to replay verbatim.
type Entry struct {
	ApplicationID string          `json:"application_id"`
	Action        Action          `json:"action"`
	Snapshot      json.RawMessage `json:"snapshot"`
}

// Matches reports whether a replayed request is the same request the token
// was first used for.
func (e *Entry) Matches(applicationID string, action Action) bool {
	return e.ApplicationID == applicationID && e.Action == action
}

// Store is a key-value cache with TTL, keyed by the opaque token.
// Get returns (nil, nil) on a miss.
type Store interface {
	Get(ctx context.Context, token string) (*Entry, error)
	Set(ctx context.Context, token string, e *Entry, ttl time.Duration) error
}
