// Package reqid threads a per-request identifier through contexts so event
// subscribers can correlate start and finish events.
package reqid

import (
	"context"
	"sync/atomic"
)

type key struct{}

var counter atomic.Int64

// NewContext returns a copy of parent carrying a fresh request ID, and the
// ID itself.
func NewContext(parent context.Context) (context.Context, int64) {
	id := counter.Add(1)
	return context.WithValue(parent, key{}, id), id
}

// FromContext extracts the request ID from ctx, reporting whether one was
// present.
func FromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(key{}).(int64)
	return id, ok
}
