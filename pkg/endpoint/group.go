package endpoint

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-querystring/query"
	"go.uber.org/zap"

	"github.com/hashgraph-online/hedera-rest-sdk-go/pkg/logging"
	"github.com/hashgraph-online/hedera-rest-sdk-go/pkg/transport"
)

// JSONObject is an undecoded JSON object returned verbatim.
type JSONObject map[string]any

// Call holds the per-invocation inputs of one operation. Query is either a
// struct with `url` tags, url.Values, or map[string]string; fields tagged
// omitempty that are left unset never reach the query string.
type Call struct {
	Args  []string
	Query any
	Body  any
}

// Args is shorthand for a Call carrying only path values.
func Args(values ...string) Call {
	return Call{Args: values}
}

// Group is the shared half of every endpoint group: a base path segment,
// the transport it calls and the logger failures are recorded on. It holds
// no mutable state and is safe for concurrent use.
type Group struct {
	base      string
	transport transport.Transport
	logger    *zap.Logger
}

// NewGroup creates a new Group. A nil logger discards output.
func NewGroup(base string, t transport.Transport, logger *zap.Logger) *Group {
	base = strings.Trim(base, "/")
	return &Group{
		base:      base,
		transport: t,
		logger:    logging.OrNop(logger).With(zap.String(logging.FieldGroup, base)),
	}
}

// Base returns the group's base path segment.
func (g *Group) Base() string {
	return g.base
}

// Do executes d once and decodes the response body into out. A transport
// failure is logged and returned as the same error value.
func (g *Group) Do(ctx context.Context, d Descriptor, call Call, out any) error {
	path, err := d.Path(g.base, call.Args...)
	if err != nil {
		return err
	}
	options, err := requestOptions(d, call)
	if err != nil {
		return err
	}

	response, err := g.send(ctx, d.Method, path, options)
	if err != nil {
		g.logFailure(d, path, err)
		return err
	}
	if out == nil {
		return nil
	}
	if err := response.Decode(out); err != nil {
		decodeErr := &DecodeError{Operation: d.Operation, Path: path, Cause: err}
		g.logFailure(d, path, decodeErr)
		return decodeErr
	}
	return nil
}

// Invoke is Do with the response type as a type parameter.
func Invoke[T any](ctx context.Context, g *Group, d Descriptor, call Call) (T, error) {
	var out T
	if err := g.Do(ctx, d, call, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

func (g *Group) send(
	ctx context.Context,
	method string,
	path string,
	options *transport.RequestOptions,
) (*transport.Response, error) {
	if g.transport == nil {
		return nil, errors.New("endpoint group has no transport")
	}
	switch method {
	case http.MethodGet:
		return g.transport.Get(ctx, path, options)
	case http.MethodPost:
		return g.transport.Post(ctx, path, options)
	case http.MethodPut:
		return g.transport.Put(ctx, path, options)
	case http.MethodPatch:
		return g.transport.Patch(ctx, path, options)
	case http.MethodDelete:
		return g.transport.Delete(ctx, path, options)
	default:
		return nil, fmt.Errorf("unsupported method %q", method)
	}
}

func (g *Group) logFailure(d Descriptor, path string, err error) {
	fields := []zap.Field{
		zap.String(logging.FieldOperation, d.Operation),
		zap.String(logging.FieldMethod, d.Method),
		zap.String(logging.FieldAPI, d.API.String()),
		zap.String(logging.FieldPath, path),
		zap.Error(err),
	}
	var transportErr *transport.Error
	if errors.As(err, &transportErr) {
		fields = append(fields,
			zap.Int(logging.FieldStatus, transportErr.Status),
			zap.String(logging.FieldRequestID, transportErr.RequestID),
		)
	}
	g.logger.Error("ledger api call failed", fields...)
}

func requestOptions(d Descriptor, call Call) (*transport.RequestOptions, error) {
	if call.Query != nil && d.Params != QueryParams {
		return nil, fmt.Errorf("%s does not accept query parameters", d.Operation)
	}
	if call.Body != nil && d.Params != BodyParams {
		return nil, fmt.Errorf("%s does not accept a request body", d.Operation)
	}

	params, err := EncodeQuery(call.Query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", d.Operation, err)
	}
	if len(params) == 0 && call.Body == nil {
		return nil, nil
	}
	if len(params) == 0 {
		params = nil
	}
	return &transport.RequestOptions{Params: params, Data: call.Body}, nil
}

// EncodeQuery turns a query value into url.Values.
func EncodeQuery(value any) (url.Values, error) {
	switch typed := value.(type) {
	case nil:
		return url.Values{}, nil
	case url.Values:
		return typed, nil
	case map[string]string:
		values := url.Values{}
		for key, item := range typed {
			values.Set(key, item)
		}
		return values, nil
	default:
		values, err := query.Values(value)
		if err != nil {
			return nil, fmt.Errorf("failed to encode query: %w", err)
		}
		return values, nil
	}
}

// DecodeError reports a 2xx response whose body did not decode.
type DecodeError struct {
	Operation string
	Path      string
	Cause     error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s response from %s: %v", e.Operation, e.Path, e.Cause)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}
