// Package transport sends serialized GraphQL text to an endpoint and hands
// back the raw response data. It is a thin collaborator around the pure
// core: everything here is I/O, auth headers, and response unwrapping;
// validation and decoding live elsewhere.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/pauldx/quiz/decode"
	"github.com/pauldx/quiz/internal/eventbus"
	"github.com/pauldx/quiz/internal/events"
	"github.com/pauldx/quiz/internal/reqid"
	"github.com/pauldx/quiz/introspection"
	"github.com/pauldx/quiz/query"
	"github.com/pauldx/quiz/typegraph"
	"github.com/pauldx/quiz/validation"
)

var codec = jsoniter.ConfigCompatibleWithStandardLibrary

// Options configures a Client.
type Options struct {
	// HTTPClient performs the requests. Defaults to http.DefaultClient.
	HTTPClient *http.Client

	// Headers are added to every request, e.g. authorization.
	Headers http.Header

	// Timeout sets a default per-request timeout when the caller's context
	// has no deadline. 0 means none.
	Timeout time.Duration
}

// Option mutates Options.
type Option func(*Options)

func WithHTTPClient(hc *http.Client) Option { return func(o *Options) { o.HTTPClient = hc } }
func WithTimeout(d time.Duration) Option    { return func(o *Options) { o.Timeout = d } }

// WithHeader adds a header to every request.
func WithHeader(name, value string) Option {
	return func(o *Options) { o.Headers.Add(name, value) }
}

// WithBearerToken sets an Authorization: Bearer header.
func WithBearerToken(token string) Option {
	return func(o *Options) { o.Headers.Set("Authorization", "Bearer "+token) }
}

// Client executes GraphQL operations against one endpoint.
type Client struct {
	endpoint string
	opt      Options
}

// New creates a Client for the given endpoint URL.
func New(endpoint string, opts ...Option) *Client {
	op := Options{HTTPClient: http.DefaultClient, Headers: http.Header{}}
	for _, f := range opts {
		f(&op)
	}
	if op.HTTPClient == nil {
		op.HTTPClient = http.DefaultClient
	}
	return &Client{endpoint: endpoint, opt: op}
}

// Result is the data object of a successful response.
type Result struct {
	Data json.RawMessage
}

// request is the GraphQL-over-HTTP request body.
type request struct {
	Query string `json:"query"`
}

// response is the GraphQL-over-HTTP response body.
type response struct {
	Data   json.RawMessage `json:"data"`
	Errors []ResponseError `json:"errors"`
}

// Do serializes the node and executes it. The node is typically a validated
// Operation; any serialization error (including a sticky builder error)
// surfaces here before a request is made.
func (c *Client) Do(ctx context.Context, n query.Node) (*Result, error) {
	text, err := query.Serialize(n)
	if err != nil {
		return nil, err
	}
	opType := ""
	if op, ok := n.(query.Operation); ok {
		opType = string(op.Type)
	}
	return c.do(ctx, text, opType)
}

// DoRaw executes a raw query string as-is.
func (c *Client) DoRaw(ctx context.Context, text string) (*Result, error) {
	return c.do(ctx, text, "")
}

func (c *Client) do(ctx context.Context, text, opType string) (*Result, error) {
	if _, ok := ctx.Deadline(); !ok && c.opt.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.opt.Timeout)
		defer cancel()
	}
	ctx, _ = reqid.NewContext(ctx)

	start := time.Now()
	eventbus.Publish(ctx, events.GraphQLStart{Query: text, OperationType: opType})
	res, err := c.post(ctx, text)
	finish := events.GraphQLFinish{Query: text, OperationType: opType, Duration: time.Since(start)}
	if err != nil {
		finish.Errors = []error{err}
	}
	eventbus.Publish(ctx, finish)
	return res, err
}

func (c *Client) post(ctx context.Context, text string) (*Result, error) {
	body, err := codec.Marshal(request{Query: text})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	for name, values := range c.opt.Headers {
		for _, v := range values {
			req.Header.Add(name, v)
		}
	}

	start := time.Now()
	eventbus.Publish(ctx, events.HTTPStart{Request: req})
	resp, err := c.opt.HTTPClient.Do(req)
	if err != nil {
		eventbus.Publish(ctx, events.HTTPFinish{Request: req, Duration: time.Since(start), Err: err})
		return nil, err
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	eventbus.Publish(ctx, events.HTTPFinish{Request: req, Status: resp.StatusCode, Duration: time.Since(start), Err: err})
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &HTTPError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       raw,
			URL:        c.endpoint,
		}
	}

	var parsed response
	if err := codec.Unmarshal(raw, &parsed); err != nil {
		return nil, err
	}
	if len(parsed.Errors) > 0 {
		return nil, &ErrorResponse{Data: parsed.Data, Errors: parsed.Errors}
	}
	return &Result{Data: parsed.Data}, nil
}

// Introspect fetches the schema from the endpoint and parses it into an
// introspection document.
func (c *Client) Introspect(ctx context.Context) (*introspection.Document, error) {
	res, err := c.DoRaw(ctx, introspection.Query)
	if err != nil {
		return nil, err
	}
	return introspection.Parse(res.Data)
}

// Execute runs the full pipeline for a query operation: validate sel against
// the root type, serialize, post, and decode the response data back into
// host values.
func Execute(ctx context.Context, c *Client, root *typegraph.Type, sel query.SelectionSet) (any, error) {
	return ExecuteOperation(ctx, c, query.Query, root, sel)
}

// ExecuteOperation is Execute for an arbitrary operation kind.
func ExecuteOperation(ctx context.Context, c *Client, opType query.OperationType, root *typegraph.Type, sel query.SelectionSet) (any, error) {
	op, err := validation.Operation(opType, root, sel)
	if err != nil {
		return nil, err
	}
	res, err := c.Do(ctx, op)
	if err != nil {
		return nil, err
	}
	return decode.Decode(root, sel, res.Data)
}
