package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	gqlast "github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"

	"github.com/pauldx/quiz/internal/eventbus"
	"github.com/pauldx/quiz/internal/otel"
	"github.com/pauldx/quiz/introspection"
	"github.com/pauldx/quiz/transport"
)

const rootUsage = `quiz - GraphQL schema introspection & query tools

USAGE:
  quiz <command> [flags]

COMMANDS:
  introspect       Fetch a schema from an endpoint as introspection JSON
  sdl              Render an introspected schema as SDL
  exec             Execute a raw GraphQL query against an endpoint
  help             Show help for any command
`

const introspectUsage = `introspect FLAGS:
  -endpoint <url>          GraphQL endpoint URL (required)
  -header <name:value>     Extra HTTP header. Repeatable
  -timeout <duration>      Request timeout, e.g. 10s (default: 10s)
  -out <file>              Write introspection JSON to file (default: stdout)
  -otel.endpoint <addr>    OTLP collector endpoint
  -otel.service <name>     OpenTelemetry service name (default: quiz)
`

const sdlUsage = `sdl FLAGS:
  -schema <file>           Introspection JSON file to render
  -endpoint <url>          Introspect this endpoint instead of reading a file
  -header <name:value>     Extra HTTP header. Repeatable
  -timeout <duration>      Request timeout, e.g. 10s (default: 10s)
  -out <file>              Write SDL to file (default: stdout)
  (exactly one of -schema and -endpoint is required)
`

const execUsage = `exec FLAGS:
  -endpoint <url>          GraphQL endpoint URL (required)
  -query <text>            Query text to execute
  -file <file>             Read query text from file
  -header <name:value>     Extra HTTP header. Repeatable
  -timeout <duration>      Request timeout, e.g. 10s (default: 10s)
  -otel.endpoint <addr>    OTLP collector endpoint
  -otel.service <name>     OpenTelemetry service name (default: quiz)
  (exactly one of -query and -file is required)
`

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "quiz:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, rootUsage)
		return fmt.Errorf("missing command")
	}
	cmd, cmdArgs := args[0], args[1:]
	switch cmd {
	case "introspect":
		return cmdIntrospect(cmdArgs)
	case "sdl":
		return cmdSDL(cmdArgs)
	case "exec":
		return cmdExec(cmdArgs)
	case "help":
		return cmdHelp(cmdArgs)
	default:
		fmt.Fprint(os.Stderr, rootUsage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func cmdHelp(args []string) error {
	if len(args) == 0 {
		fmt.Print(rootUsage)
		return nil
	}
	switch args[0] {
	case "introspect":
		fmt.Print(introspectUsage)
	case "sdl":
		fmt.Print(sdlUsage)
	case "exec":
		fmt.Print(execUsage)
	default:
		return fmt.Errorf("unknown help topic %q", args[0])
	}
	return nil
}

type headerFlag []string

func (h *headerFlag) String() string { return "" }

func (h *headerFlag) Set(v string) error {
	if !strings.Contains(v, ":") {
		return fmt.Errorf("invalid header %q, want name:value", v)
	}
	*h = append(*h, v)
	return nil
}

func (h headerFlag) options() ([]transport.Option, error) {
	var opts []transport.Option
	for _, entry := range h {
		parts := strings.SplitN(entry, ":", 2)
		name := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		if name == "" {
			return nil, fmt.Errorf("invalid header %q", entry)
		}
		opts = append(opts, transport.WithHeader(name, value))
	}
	return opts, nil
}

func cmdIntrospect(args []string) error {
	endpoint := ""
	outFile := ""
	timeout := 10 * time.Second
	otelEndpoint := ""
	otelService := "quiz"
	var headers headerFlag

	fs := flag.NewFlagSet("introspect", flag.ContinueOnError)
	fs.SetOutput(new(bytes.Buffer))
	fs.StringVar(&endpoint, "endpoint", endpoint, "GraphQL endpoint URL")
	fs.Var(&headers, "header", "Extra HTTP header")
	fs.DurationVar(&timeout, "timeout", timeout, "Request timeout")
	fs.StringVar(&outFile, "out", outFile, "Write introspection JSON to file")
	fs.StringVar(&otelEndpoint, "otel.endpoint", otelEndpoint, "OTLP collector endpoint")
	fs.StringVar(&otelService, "otel.service", otelService, "OpenTelemetry service name")
	if err := fs.Parse(args); err != nil {
		fmt.Fprint(os.Stderr, introspectUsage)
		return err
	}
	if endpoint == "" {
		fmt.Fprint(os.Stderr, introspectUsage)
		return fmt.Errorf("-endpoint is required")
	}

	shutdown, err := setupTelemetry(otelEndpoint, otelService)
	if err != nil {
		return err
	}
	defer func() { _ = shutdown(context.Background()) }()

	client, err := newClient(endpoint, timeout, headers)
	if err != nil {
		return err
	}
	doc, err := client.Introspect(context.Background())
	if err != nil {
		return fmt.Errorf("introspect: %w", err)
	}
	out, err := json.MarshalIndent(introspectionJSON(doc), "", "  ")
	if err != nil {
		return err
	}
	return writeOutput(outFile, append(out, '\n'))
}

func cmdSDL(args []string) error {
	schemaFile := ""
	endpoint := ""
	outFile := ""
	timeout := 10 * time.Second
	var headers headerFlag

	fs := flag.NewFlagSet("sdl", flag.ContinueOnError)
	fs.SetOutput(new(bytes.Buffer))
	fs.StringVar(&schemaFile, "schema", schemaFile, "Introspection JSON file")
	fs.StringVar(&endpoint, "endpoint", endpoint, "GraphQL endpoint URL")
	fs.Var(&headers, "header", "Extra HTTP header")
	fs.DurationVar(&timeout, "timeout", timeout, "Request timeout")
	fs.StringVar(&outFile, "out", outFile, "Write SDL to file")
	if err := fs.Parse(args); err != nil {
		fmt.Fprint(os.Stderr, sdlUsage)
		return err
	}
	if (schemaFile == "") == (endpoint == "") {
		fmt.Fprint(os.Stderr, sdlUsage)
		return fmt.Errorf("exactly one of -schema and -endpoint is required")
	}

	var doc *introspection.Document
	if schemaFile != "" {
		data, err := os.ReadFile(schemaFile)
		if err != nil {
			return err
		}
		doc, err = introspection.Parse(data)
		if err != nil {
			return err
		}
	} else {
		client, err := newClient(endpoint, timeout, headers)
		if err != nil {
			return err
		}
		doc, err = client.Introspect(context.Background())
		if err != nil {
			return fmt.Errorf("introspect: %w", err)
		}
	}
	return writeOutput(outFile, []byte(introspection.RenderSDL(doc)))
}

func cmdExec(args []string) error {
	endpoint := ""
	queryText := ""
	queryFile := ""
	timeout := 10 * time.Second
	otelEndpoint := ""
	otelService := "quiz"
	var headers headerFlag

	fs := flag.NewFlagSet("exec", flag.ContinueOnError)
	fs.SetOutput(new(bytes.Buffer))
	fs.StringVar(&endpoint, "endpoint", endpoint, "GraphQL endpoint URL")
	fs.StringVar(&queryText, "query", queryText, "Query text to execute")
	fs.StringVar(&queryFile, "file", queryFile, "Read query text from file")
	fs.Var(&headers, "header", "Extra HTTP header")
	fs.DurationVar(&timeout, "timeout", timeout, "Request timeout")
	fs.StringVar(&otelEndpoint, "otel.endpoint", otelEndpoint, "OTLP collector endpoint")
	fs.StringVar(&otelService, "otel.service", otelService, "OpenTelemetry service name")
	if err := fs.Parse(args); err != nil {
		fmt.Fprint(os.Stderr, execUsage)
		return err
	}
	if endpoint == "" {
		fmt.Fprint(os.Stderr, execUsage)
		return fmt.Errorf("-endpoint is required")
	}
	if (queryText == "") == (queryFile == "") {
		fmt.Fprint(os.Stderr, execUsage)
		return fmt.Errorf("exactly one of -query and -file is required")
	}
	if queryFile != "" {
		data, err := os.ReadFile(queryFile)
		if err != nil {
			return err
		}
		queryText = string(data)
	}

	// Syntax check before the round trip, for a friendlier failure mode.
	if _, err := parser.ParseQuery(&gqlast.Source{Name: "query", Input: queryText}); err != nil {
		return fmt.Errorf("invalid query: %w", err)
	}

	shutdown, err := setupTelemetry(otelEndpoint, otelService)
	if err != nil {
		return err
	}
	defer func() { _ = shutdown(context.Background()) }()

	client, err := newClient(endpoint, timeout, headers)
	if err != nil {
		return err
	}
	res, err := client.DoRaw(context.Background(), queryText)
	if err != nil {
		return err
	}
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, res.Data, "", "  "); err != nil {
		return err
	}
	pretty.WriteByte('\n')
	return writeOutput("", pretty.Bytes())
}

func newClient(endpoint string, timeout time.Duration, headers headerFlag) (*transport.Client, error) {
	opts, err := headers.options()
	if err != nil {
		return nil, err
	}
	if timeout > 0 {
		opts = append(opts, transport.WithTimeout(timeout))
	}
	return transport.New(endpoint, opts...), nil
}

func setupTelemetry(endpoint, service string) (func(context.Context) error, error) {
	if endpoint != "" {
		eventbus.Use(eventbus.New())
	}
	shutdown, err := otel.Setup(endpoint, service)
	if err != nil {
		return nil, fmt.Errorf("otel setup: %w", err)
	}
	return shutdown, nil
}

func writeOutput(outFile string, data []byte) error {
	if outFile == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(outFile, data, 0644)
}

// introspectionJSON reshapes a Document back into the wire form of the
// standard introspection result, so the output can be consumed by other
// GraphQL tooling.
func introspectionJSON(doc *introspection.Document) map[string]any {
	named := func(name string) any {
		if name == "" {
			return nil
		}
		return map[string]string{"name": name}
	}
	types := make([]*introspection.Type, 0, len(doc.Types))
	for _, t := range doc.Types {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i].Name < types[j].Name })
	return map[string]any{
		"__schema": map[string]any{
			"queryType":        named(doc.QueryType),
			"mutationType":     named(doc.MutationType),
			"subscriptionType": named(doc.SubscriptionType),
			"types":            types,
		},
	}
}
