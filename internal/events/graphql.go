package events

import "time"

// GraphQLStart is emitted before executing a GraphQL operation against the
// remote endpoint.
type GraphQLStart struct {
	Query         string
	OperationType string
}

// GraphQLFinish is emitted after the response has been interpreted.
type GraphQLFinish struct {
	Query         string
	OperationType string
	Errors        []error
	Duration      time.Duration
}
