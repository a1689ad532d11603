// Package transport defines the HTTP collaborator the endpoint groups call
// and provides the default implementation backed by net/http.
//
// HTTPClient resolves every path against one base URL, sends JSON bodies,
// attaches an x-request-id header to each request and decodes brotli or gzip
// encoded responses. Non-2xx responses are returned as *Error:
//
//	_, err := transport.Get(ctx, "accounts/0.0.1001", nil)
//	if transport.IsNotFound(err) {
//		// the account does not exist
//	}
//
// Nothing here retries, caches or rate limits. Timeouts come from the
// configured *http.Client and the request context.
package transport
