// Package registry holds the declarative tool table and the stateless
// dispatcher that turns a tool invocation into exactly one HTTP request.
package registry

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/seoscope/gsc-mcp/internal/common"
)

// Location says where a parameter is placed on the wire.
type Location string

const (
	InPath  Location = "path"
	InQuery Location = "query"
	InBody  Location = "body"
)

// Type is the declared argument type for validation and coercion.
type Type string

const (
	TypeString  Type = "string"
	TypeInteger Type = "integer"
	TypeNumber  Type = "number"
	TypeBoolean Type = "boolean"
	TypeArray   Type = "array"
	TypeObject  Type = "object"
)

// ResponseKind says what a successful upstream response looks like.
type ResponseKind int

const (
	// ResponseJSON is a 2xx with a JSON body.
	ResponseJSON ResponseKind = iota
	// ResponseEmpty is a 204 (or empty-body 2xx) success.
	ResponseEmpty
)

// Param declares one tool parameter.
type Param struct {
	Type     Type
	Required bool
	Location Location
}

// Descriptor maps a tool name to its HTTP semantics. Params use the
// upstream API's wire names; Path placeholders are {name} and must each be
// backed by a required path param.
type Descriptor struct {
	Name     string
	Method   string
	Path     string
	Params   map[string]Param
	Response ResponseKind
}

// Result is the outcome of a successful invocation. A nil Payload is an
// explicit empty success (HTTP 204).
type Result struct {
	Payload json.RawMessage
}

// Empty reports whether the result carries no payload.
func (r *Result) Empty() bool { return len(r.Payload) == 0 }

// Doer is the transport collaborator. It executes exactly the request it is
// given; credential injection and rate limiting live behind it.
type Doer interface {
	Do(*http.Request) (*http.Response, error)
}

// Registry holds the tool table. It is immutable after load: Register all
// descriptors at startup, then Invoke concurrently without coordination.
type Registry struct {
	baseURL string
	client  Doer
	logger  *common.Logger
	tools   map[string]Descriptor
}

// New creates a Registry dispatching against baseURL via client.
func New(baseURL string, client Doer, logger *common.Logger) *Registry {
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	return &Registry{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		logger:  logger,
		tools:   make(map[string]Descriptor),
	}
}

// Register adds a descriptor. It fails with DuplicateToolError if the name is
// taken, and rejects descriptors whose path placeholders are not backed by a
// required path parameter.
func (r *Registry) Register(d Descriptor) error {
	if d.Name == "" {
		return fmt.Errorf("descriptor has no name")
	}
	switch d.Method {
	case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete:
	default:
		return fmt.Errorf("tool %q: unsupported method %q", d.Name, d.Method)
	}
	if _, exists := r.tools[d.Name]; exists {
		return &DuplicateToolError{Name: d.Name}
	}
	for _, ph := range placeholders(d.Path) {
		p, ok := d.Params[ph]
		if !ok {
			return fmt.Errorf("tool %q: placeholder {%s} has no parameter", d.Name, ph)
		}
		if p.Location != InPath || !p.Required {
			return fmt.Errorf("tool %q: placeholder {%s} must be a required path parameter", d.Name, ph)
		}
	}
	r.tools[d.Name] = d
	return nil
}

// MustRegister registers a descriptor and panics on error. Used for the
// static catalog at startup.
func (r *Registry) MustRegister(d Descriptor) {
	if err := r.Register(d); err != nil {
		panic(err)
	}
}

// Descriptor returns the descriptor for a tool name.
func (r *Registry) Descriptor(name string) (Descriptor, bool) {
	d, ok := r.tools[name]
	return d, ok
}

// Names returns the registered tool names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Invoke validates args against the tool's schema, renders the HTTP request,
// executes it, and maps the response. Validation failures surface before any
// network call; upstream and transport failures propagate verbatim with no
// retry. Each invocation issues exactly one outbound request.
func (r *Registry) Invoke(ctx context.Context, name string, args map[string]any) (*Result, error) {
	d, ok := r.tools[name]
	if !ok {
		return nil, &ValidationError{Tool: name, Reason: "unknown tool"}
	}

	coerced, err := d.validateArgs(args)
	if err != nil {
		return nil, err
	}

	req, err := d.render(ctx, r.baseURL, coerced)
	if err != nil {
		return nil, err
	}

	log := r.logger.WithCorrelationId(uuid.NewString())
	log.Debug().
		Str("tool", name).
		Str("method", req.Method).
		Str("url", req.URL.String()).
		Msg("tool dispatch")

	start := time.Now()
	resp, err := r.client.Do(req)
	duration := time.Since(start)
	if err != nil {
		log.Error().Err(err).Str("tool", name).Dur("duration", duration).Msg("tool dispatch failed")
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("reading response: %w", err)}
	}

	log.Debug().
		Str("tool", name).
		Int("status_code", resp.StatusCode).
		Dur("duration", duration).
		Msg("tool response")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &UpstreamError{
			StatusCode: resp.StatusCode,
			Message:    upstreamMessage(body, resp.StatusCode),
		}
	}

	trimmed := bytes.TrimSpace(body)
	if resp.StatusCode == http.StatusNoContent || len(trimmed) == 0 {
		return &Result{}, nil
	}
	if !json.Valid(trimmed) {
		return nil, fmt.Errorf("%s: upstream returned invalid JSON (%d)", name, resp.StatusCode)
	}
	return &Result{Payload: json.RawMessage(trimmed)}, nil
}

// validateArgs checks required parameters, rejects undeclared ones, and
// coerces values to their declared types.
func (d Descriptor) validateArgs(args map[string]any) (map[string]any, error) {
	coerced := make(map[string]any, len(args))

	for name, spec := range d.Params {
		val, present := args[name]
		if !present || val == nil {
			if spec.Required {
				return nil, &ValidationError{Tool: d.Name, Param: name, Reason: "required"}
			}
			continue
		}
		cv, err := coerce(spec.Type, val)
		if err != nil {
			return nil, &ValidationError{Tool: d.Name, Param: name, Reason: err.Error()}
		}
		coerced[name] = cv
	}

	for name := range args {
		if _, declared := d.Params[name]; !declared {
			return nil, &ValidationError{Tool: d.Name, Param: name, Reason: "not declared"}
		}
	}

	return coerced, nil
}

// render builds the outbound request: path placeholders substituted and
// escaped, query parameters appended, body parameters marshalled as a JSON
// object for POST/PUT.
func (d Descriptor) render(ctx context.Context, baseURL string, args map[string]any) (*http.Request, error) {
	path := d.Path
	query := url.Values{}
	bodyFields := make(map[string]any)

	for name, spec := range d.Params {
		val, present := args[name]
		if !present {
			continue
		}
		switch spec.Location {
		case InPath:
			path = strings.ReplaceAll(path, "{"+name+"}", url.PathEscape(stringify(val)))
		case InQuery:
			query.Set(name, stringify(val))
		case InBody:
			bodyFields[name] = val
		}
	}

	fullURL := baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	var bodyReader io.Reader
	hasBody := len(bodyFields) > 0 && (d.Method == http.MethodPost || d.Method == http.MethodPut)
	if hasBody {
		data, err := json.Marshal(bodyFields)
		if err != nil {
			return nil, fmt.Errorf("tool %q: marshalling body: %w", d.Name, err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, d.Method, fullURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("tool %q: building request: %w", d.Name, err)
	}
	if hasBody {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

// coerce converts an argument to its declared type. JSON-decoded arguments
// arrive as float64/bool/string/[]any/map[string]any.
func coerce(t Type, val any) (any, error) {
	switch t {
	case TypeString:
		s, ok := val.(string)
		if !ok {
			return nil, fmt.Errorf("expected string, got %T", val)
		}
		return s, nil
	case TypeInteger:
		switch v := val.(type) {
		case int:
			return int64(v), nil
		case int64:
			return v, nil
		case float64:
			if v != float64(int64(v)) {
				return nil, fmt.Errorf("expected integer, got %v", v)
			}
			return int64(v), nil
		case json.Number:
			return v.Int64()
		default:
			return nil, fmt.Errorf("expected integer, got %T", val)
		}
	case TypeNumber:
		switch v := val.(type) {
		case int:
			return float64(v), nil
		case int64:
			return float64(v), nil
		case float64:
			return v, nil
		case json.Number:
			return v.Float64()
		default:
			return nil, fmt.Errorf("expected number, got %T", val)
		}
	case TypeBoolean:
		b, ok := val.(bool)
		if !ok {
			return nil, fmt.Errorf("expected boolean, got %T", val)
		}
		return b, nil
	case TypeArray:
		switch v := val.(type) {
		case []any:
			return v, nil
		case []string:
			out := make([]any, len(v))
			for i, s := range v {
				out[i] = s
			}
			return out, nil
		default:
			return nil, fmt.Errorf("expected array, got %T", val)
		}
	case TypeObject:
		switch v := val.(type) {
		case map[string]any:
			return v, nil
		case json.RawMessage:
			return v, nil
		default:
			return nil, fmt.Errorf("expected object, got %T", val)
		}
	default:
		return nil, fmt.Errorf("unknown type %q", t)
	}
}

// stringify renders a coerced scalar for use in a path or query position.
func stringify(val any) string {
	switch v := val.(type) {
	case string:
		return v
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// placeholders returns the {name} placeholders in a path template.
func placeholders(path string) []string {
	var out []string
	for {
		open := strings.Index(path, "{")
		if open < 0 {
			return out
		}
		end := strings.Index(path[open:], "}")
		if end < 0 {
			return out
		}
		out = append(out, path[open+1:open+end])
		path = path[open+end+1:]
	}
}

// upstreamMessage extracts the message from Google's error envelope,
// falling back to the raw body.
func upstreamMessage(body []byte, statusCode int) string {
	var envelope struct {
		Error struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
			Status  string `json:"status"`
		} `json:"error"`
	}
	if json.Unmarshal(body, &envelope) == nil && envelope.Error.Message != "" {
		return envelope.Error.Message
	}
	msg := strings.TrimSpace(string(body))
	if msg == "" {
		return http.StatusText(statusCode)
	}
	return msg
}
