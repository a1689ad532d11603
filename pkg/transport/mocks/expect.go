package mocks

import (
	"fmt"
	"net/http"

	"go.uber.org/mock/gomock"
)

// ExpectRequest registers an expectation for one call to the verb method on
// path. options is matched like any other gomock argument.
func (m *MockTransport) ExpectRequest(method string, path string, options any) *gomock.Call {
	recorder := m.EXPECT()
	switch method {
	case http.MethodGet:
		return recorder.Get(gomock.Any(), path, options)
	case http.MethodPost:
		return recorder.Post(gomock.Any(), path, options)
	case http.MethodPut:
		return recorder.Put(gomock.Any(), path, options)
	case http.MethodPatch:
		return recorder.Patch(gomock.Any(), path, options)
	case http.MethodDelete:
		return recorder.Delete(gomock.Any(), path, options)
	default:
		panic(fmt.Sprintf("mocks: unsupported method %q", method))
	}
}
