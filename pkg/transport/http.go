package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/google/uuid"
	"github.com/klauspost/compress/gzip"
)

const (
	DefaultTimeout   = 30 * time.Second
	DefaultUserAgent = "hedera-rest-sdk-go"
	RequestIDHeader  = "x-request-id"
)

type Config struct {
	BaseURL    string
	APIKey     string
	Headers    map[string]string
	HTTPClient *http.Client
	Timeout    time.Duration
	UserAgent  string
}

// HTTPClient is the default Transport. It is safe for concurrent use; its
// fields are never written after NewHTTPClient returns.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	headers    map[string]string
}

var _ Transport = (*HTTPClient)(nil)

// NewHTTPClient creates a new HTTPClient.
func NewHTTPClient(config Config) (*HTTPClient, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(config.BaseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	parsedBaseURL, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if parsedBaseURL.Scheme != "http" && parsedBaseURL.Scheme != "https" {
		return nil, fmt.Errorf("invalid base URL: scheme must be http or https")
	}
	if strings.TrimSpace(parsedBaseURL.Host) == "" {
		return nil, fmt.Errorf("invalid base URL: host is required")
	}
	if parsedBaseURL.RawQuery != "" {
		return nil, fmt.Errorf("invalid base URL: query is not allowed")
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		timeout := config.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	headers := map[string]string{}
	for key, value := range config.Headers {
		normalizedKey := normalizeHeaderName(key)
		trimmedValue := strings.TrimSpace(value)
		if normalizedKey != "" && trimmedValue != "" {
			headers[normalizedKey] = trimmedValue
		}
	}
	if apiKey := strings.TrimSpace(config.APIKey); apiKey != "" {
		headers["x-api-key"] = apiKey
	}
	if _, exists := headers["user-agent"]; !exists {
		userAgent := strings.TrimSpace(config.UserAgent)
		if userAgent == "" {
			userAgent = DefaultUserAgent
		}
		headers["user-agent"] = userAgent
	}

	return &HTTPClient{
		baseURL:    strings.TrimRight(parsedBaseURL.String(), "/"),
		httpClient: httpClient,
		headers:    headers,
	}, nil
}

// BaseURL returns the normalized base URL every path is resolved against.
func (c *HTTPClient) BaseURL() string {
	return c.baseURL
}

// BuildURL resolves path and params against the base URL. The path is
// appended as-is.
func (c *HTTPClient) BuildURL(path string, params url.Values) string {
	requestURL := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if encoded := params.Encode(); encoded != "" {
		requestURL += "?" + encoded
	}
	return requestURL
}

func (c *HTTPClient) Get(ctx context.Context, path string, options *RequestOptions) (*Response, error) {
	return c.do(ctx, http.MethodGet, path, options)
}

func (c *HTTPClient) Post(ctx context.Context, path string, options *RequestOptions) (*Response, error) {
	return c.do(ctx, http.MethodPost, path, options)
}

func (c *HTTPClient) Put(ctx context.Context, path string, options *RequestOptions) (*Response, error) {
	return c.do(ctx, http.MethodPut, path, options)
}

func (c *HTTPClient) Patch(ctx context.Context, path string, options *RequestOptions) (*Response, error) {
	return c.do(ctx, http.MethodPatch, path, options)
}

func (c *HTTPClient) Delete(ctx context.Context, path string, options *RequestOptions) (*Response, error) {
	return c.do(ctx, http.MethodDelete, path, options)
}

func (c *HTTPClient) do(
	ctx context.Context,
	method string,
	path string,
	options *RequestOptions,
) (*Response, error) {
	var params url.Values
	var data any
	if options != nil {
		params = options.Params
		data = options.Data
	}

	var requestBody io.Reader
	if data != nil {
		payload, err := json.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		requestBody = bytes.NewReader(payload)
	}

	request, err := http.NewRequestWithContext(ctx, method, c.BuildURL(path, params), requestBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	requestID := uuid.NewString()
	for key, value := range c.headers {
		request.Header.Set(key, value)
	}
	request.Header.Set("accept", "application/json")
	request.Header.Set("accept-encoding", "br, gzip")
	request.Header.Set(RequestIDHeader, requestID)
	if data != nil {
		request.Header.Set("content-type", "application/json")
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("ledger api request %s %s failed: %w", method, path, err)
	}
	defer response.Body.Close()

	responseBody, err := readBody(response)
	if err != nil {
		return nil, fmt.Errorf("failed to read ledger api response: %w", err)
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return nil, &Error{
			Method:     method,
			Path:       path,
			Status:     response.StatusCode,
			StatusText: http.StatusText(response.StatusCode),
			Body:       parseErrorBody(response.Header, responseBody),
			RequestID:  requestID,
		}
	}

	return &Response{
		StatusCode: response.StatusCode,
		Header:     response.Header,
		Data:       responseBody,
	}, nil
}

// readBody reads the whole body, undoing the content encodings advertised in
// accept-encoding.
func readBody(response *http.Response) ([]byte, error) {
	encoding := strings.ToLower(strings.TrimSpace(response.Header.Get("content-encoding")))
	switch encoding {
	case "", "identity":
		return io.ReadAll(response.Body)
	case "br":
		return io.ReadAll(brotli.NewReader(response.Body))
	case "gzip":
		reader, err := gzip.NewReader(response.Body)
		if err != nil {
			return nil, err
		}
		defer reader.Close()
		return io.ReadAll(reader)
	default:
		return nil, fmt.Errorf("unsupported content encoding %q", encoding)
	}
}

func parseErrorBody(headers http.Header, body []byte) any {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return ""
	}
	if strings.Contains(strings.ToLower(headers.Get("content-type")), "application/json") {
		var parsed any
		if err := json.Unmarshal(body, &parsed); err == nil {
			return parsed
		}
	}
	return trimmed
}

func normalizeHeaderName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
