package events

import (
	"net/http"
	"time"
)

// HTTPStart is emitted just before an outgoing HTTP request is sent.
// Context carries the request context.
type HTTPStart struct {
	Request *http.Request
}

// HTTPFinish is emitted once the response arrived or the request failed.
type HTTPFinish struct {
	Request  *http.Request
	Status   int
	Duration time.Duration
	Err      error
}
