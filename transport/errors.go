package transport

import (
	"encoding/json"
	"fmt"
)

// ResponseError is one error entry of a GraphQL response.
type ResponseError struct {
	Message   string `json:"message"`
	Locations []struct {
		Line   int `json:"line"`
		Column int `json:"column"`
	} `json:"locations,omitempty"`
	Path []any `json:"path,omitempty"`
}

func (e ResponseError) Error() string { return e.Message }

// ErrorResponse indicates a response carrying GraphQL errors. Partial data,
// if the server returned any, is preserved.
type ErrorResponse struct {
	Data   json.RawMessage
	Errors []ResponseError
}

func (e *ErrorResponse) Error() string {
	if len(e.Errors) == 1 {
		return "transport: response error: " + e.Errors[0].Message
	}
	return fmt.Sprintf("transport: response with %d errors: %s", len(e.Errors), e.Errors[0].Message)
}

// HTTPError indicates a response with a non-2xx status code.
type HTTPError struct {
	StatusCode int
	Status     string
	Body       []byte
	URL        string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("transport: %s returned %s", e.URL, e.Status)
}
