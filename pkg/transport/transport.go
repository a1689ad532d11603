package transport

//go:generate mockgen -source=transport.go -destination=mocks/transport_mock.go -package=mocks

import (
	"bytes"
	"context"
	"net/http"
	"net/url"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Transport performs one HTTP exchange per call against a base URL it owns.
// Paths are relative to that base. Implementations return an error for
// network failures and non-2xx responses.
type Transport interface {
	Get(ctx context.Context, path string, options *RequestOptions) (*Response, error)
	Post(ctx context.Context, path string, options *RequestOptions) (*Response, error)
	Put(ctx context.Context, path string, options *RequestOptions) (*Response, error)
	Patch(ctx context.Context, path string, options *RequestOptions) (*Response, error)
	Delete(ctx context.Context, path string, options *RequestOptions) (*Response, error)
}

// RequestOptions carries the query parameters and JSON body of one request.
// A nil *RequestOptions sends neither.
type RequestOptions struct {
	Params url.Values
	Data   any
}

type Response struct {
	StatusCode int
	Header     http.Header
	Data       []byte
}

// Decode unmarshals the response body into target. An empty body leaves
// target untouched.
func (r *Response) Decode(target any) error {
	if r == nil || target == nil {
		return nil
	}
	payload := bytes.TrimSpace(r.Data)
	if len(payload) == 0 {
		return nil
	}
	return json.Unmarshal(payload, target)
}
