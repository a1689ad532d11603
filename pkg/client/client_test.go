package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/hashgraph-online/hedera-rest-sdk-go/pkg/endpoint"
	"github.com/hashgraph-online/hedera-rest-sdk-go/pkg/hts"
	"github.com/hashgraph-online/hedera-rest-sdk-go/pkg/status"
	"github.com/hashgraph-online/hedera-rest-sdk-go/pkg/transport"
	"github.com/hashgraph-online/hedera-rest-sdk-go/pkg/transport/mocks"
)

func TestNewRequiresBaseURLWithoutTransport(t *testing.T) {
	_, err := New(Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create transport")
}

func TestNewUsesInjectedTransport(t *testing.T) {
	mockTransport := mocks.NewMockTransport(gomock.NewController(t))
	c, err := New(Config{Transport: mockTransport})
	require.NoError(t, err)
	assert.Same(t, mockTransport, c.Transport())
	assert.NotNil(t, c.Logger())

	mockTransport.EXPECT().
		Get(gomock.Any(), "status", nil).
		Return(&transport.Response{StatusCode: http.StatusOK, Data: []byte(`{"status":"ok"}`)}, nil).
		Times(1)

	health, err := c.Status.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, endpoint.JSONObject{"status": "ok"}, health)
}

func TestGroupsShareOneTransport(t *testing.T) {
	var requests atomic.Int32
	var mu sync.Mutex
	seen := map[string]string{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		mu.Lock()
		seen[r.URL.Path] = r.Header.Get("x-api-key")
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	c, err := New(Config{BaseURL: server.URL + "/api/v1/", APIKey: "secret", Timeout: time.Second})
	require.NoError(t, err)

	ctx := context.Background()
	_, err = c.Accounts.GetInfo(ctx, "0.0.1001")
	require.NoError(t, err)
	_, err = c.HTS.GetTokenInfo(ctx, "0.0.500")
	require.NoError(t, err)
	_, err = c.Validators.GetNetworkStake(ctx)
	require.NoError(t, err)
	_, err = c.Transactions.GetReceipt(ctx, "0.0.1001-1700000000-000000001")
	require.NoError(t, err)
	_, err = c.HCS.GetTopic(ctx, "0.0.2000")
	require.NoError(t, err)

	assert.Equal(t, int32(5), requests.Load())
	assert.Equal(t, map[string]string{
		"/api/v1/accounts/0.0.1001":                                  "secret",
		"/api/v1/hts/tokens/0.0.500":                                 "secret",
		"/api/v1/mirrors/validators/stake":                           "secret",
		"/api/v1/transactions/0.0.1001-1700000000-000000001/receipt": "secret",
		"/api/v1/mirrors/hcs/topics/0.0.2000":                        "secret",
	}, seen)
}

func TestConcurrentCallsAreIndependent(t *testing.T) {
	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"tokens":[],"links":{"next":null}}`))
	}))
	defer server.Close()

	c, err := New(Config{BaseURL: server.URL})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, callErr := c.HTS.ListTokens(context.Background(), hts.ListTokensQuery{Limit: 1})
			assert.NoError(t, callErr)
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(8), requests.Load())
}

func TestFailuresAreLoggedThroughConfiguredLogger(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	mockTransport := mocks.NewMockTransport(gomock.NewController(t))
	failure := errors.New("dial tcp: connection refused")
	mockTransport.EXPECT().Get(gomock.Any(), "mirrors/status/supply", nil).Return(nil, failure).Times(1)

	c, err := New(Config{Transport: mockTransport, Logger: zap.New(core)})
	require.NoError(t, err)

	_, err = c.Status.Supply(context.Background(), status.SupplyQuery{})
	assert.Same(t, failure, err)
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "status", logs.All()[0].ContextMap()["group"])
}

func TestCatalogue(t *testing.T) {
	require.NoError(t, ValidateCatalogue())

	entries := Catalogue()
	assert.Len(t, entries, 7+6+16+10+9+28)

	paths := map[string]string{}
	for _, entry := range entries {
		key := entry.Group + "." + entry.Descriptor.Operation
		_, duplicate := paths[key]
		require.False(t, duplicate, key)
		paths[key] = entry.Descriptor.Method + " " + entry.PathTemplate()
	}

	assert.Equal(t, "GET status", paths["status.health"])
	assert.Equal(t, "GET mirrors/status/blocks/{hashOrNumber}", paths["status.getBlock"])
	assert.Equal(t, "GET accounts/{accountId}", paths["accounts.getInfo"])
	assert.Equal(t, "GET mirrors/hts/tokens/{tokenId}/balances", paths["hts.getTokenBalances"])
	assert.Equal(t, "POST hcs/{topicId}/message", paths["hcs.submitMessage"])
	assert.Equal(t, "PATCH hts/pause/{tokenId}", paths["hts.pause"])
	assert.Equal(t, "GET mirrors/transactions/{transactionId}", paths["transactions.get"])
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("HEDERA_REST_URL", "https://ledger.example.com/api/v1")
	t.Setenv("HEDERA_REST_API_KEY", "secret")

	config, err := ConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "https://ledger.example.com/api/v1", config.BaseURL)
	assert.Equal(t, "secret", config.APIKey)

	t.Setenv("HEDERA_REST_URL", "")
	_, err = ConfigFromEnv()
	assert.Error(t, err)
}
