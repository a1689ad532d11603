package cmd

import (
	"bytes"
	"context"
	"net/http"
	"net/url"
	"strings"
	"testing"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hashgraph-online/hedera-rest-sdk-go/pkg/accounts"
	"github.com/hashgraph-online/hedera-rest-sdk-go/pkg/hcs"
	"github.com/hashgraph-online/hedera-rest-sdk-go/pkg/transport"
	"github.com/hashgraph-online/hedera-rest-sdk-go/pkg/transport/mocks"
)

func run(t *testing.T, mockTransport transport.Transport, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	out := &bytes.Buffer{}
	root := newRootCommand(&app{out: out, transport: mockTransport}, "test")
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func ok(body string) *transport.Response {
	return &transport.Response{StatusCode: http.StatusOK, Data: []byte(body)}
}

func TestEndpointsTable(t *testing.T) {
	out, err := run(t, nil, "endpoints", "--group", "hts", "-o", "table")
	require.NoError(t, err)
	assert.Contains(t, strings.ToUpper(out), "OPERATION")
	assert.Contains(t, out, "mirrors/hts/tokens/{tokenId}/balances")
	assert.NotContains(t, out, "accounts/{accountId}")
}

func TestEndpointsYAML(t *testing.T) {
	out, err := run(t, nil, "endpoints", "--group", "status", "-o", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "operation: health")
	assert.Contains(t, out, "mirrors/status/blocks/")
}

func TestEndpointsUnknownGroup(t *testing.T) {
	_, err := run(t, nil, "endpoints", "--group", "nope")
	assert.Error(t, err)
}

func TestAccountsInfo(t *testing.T) {
	mockTransport := mocks.NewMockTransport(gomock.NewController(t))
	mockTransport.EXPECT().
		Get(gomock.Any(), "accounts/0.0.1001", nil).
		Return(ok(`{"accountId":"0.0.1001"}`), nil).
		Times(1)

	out, err := run(t, mockTransport, "accounts", "info", "0.0.1001")
	require.NoError(t, err)
	assert.JSONEq(t, `{"accountId":"0.0.1001"}`, out)
}

func TestAccountsInfoTable(t *testing.T) {
	mockTransport := mocks.NewMockTransport(gomock.NewController(t))
	mockTransport.EXPECT().
		Get(gomock.Any(), "accounts/0.0.1001", nil).
		Return(ok(`{"accountId":"0.0.1001","balance":1700000000}`), nil).
		Times(1)

	out, err := run(t, mockTransport, "accounts", "info", "0.0.1001", "-o", "table")
	require.NoError(t, err)
	assert.Contains(t, out, "0.0.1001")
	assert.Contains(t, out, "1700000000")
	assert.NotContains(t, out, `"accountId":`)
	assert.NotContains(t, out, "{")
}

func TestHTSBalancesTable(t *testing.T) {
	mockTransport := mocks.NewMockTransport(gomock.NewController(t))
	mockTransport.EXPECT().
		Get(gomock.Any(), "mirrors/hts/tokens/0.0.500/balances", nil).
		Return(ok(`{"balances":[{"account":"0.0.1001","balance":7},{"account":"0.0.1002","balance":9}],
			"links":{"next":"/api/v1/tokens/0.0.500/balances?limit=2"}}`), nil).
		Times(1)

	out, err := run(t, mockTransport, "hts", "balances", "0.0.500", "-o", "table")
	require.NoError(t, err)
	assert.Contains(t, out, "0.0.1001")
	assert.Contains(t, out, "0.0.1002")
	assert.NotContains(t, out, "limit=2")
}

func TestAccountsInfoRejectsBadChecksumBeforeCalling(t *testing.T) {
	mockTransport := mocks.NewMockTransport(gomock.NewController(t))
	_, err := run(t, mockTransport, "accounts", "info", "0.0.1001-zzzzz")
	assert.Error(t, err)
}

func TestAccountsTransfer(t *testing.T) {
	mockTransport := mocks.NewMockTransport(gomock.NewController(t))
	mockTransport.EXPECT().
		Post(gomock.Any(), "accounts/transfer", &transport.RequestOptions{Data: accounts.TransferHbarRequest{
			Transfers: []accounts.HbarTransfer{
				{AccountID: "0.0.1001", Amount: -25},
				{AccountID: "0.0.1002", Amount: 25},
			},
		}}).
		Return(ok(`{"status":"SUCCESS"}`), nil).
		Times(1)

	out, err := run(t, mockTransport, "accounts", "transfer", "--from", "0.0.1001", "--to", "0.0.1002", "--amount", "25")
	require.NoError(t, err)
	assert.Contains(t, out, "SUCCESS")
}

func TestAccountsCreateDerivesECDSAPublicKey(t *testing.T) {
	generated, err := hedera.PrivateKeyGenerateEcdsa()
	require.NoError(t, err)

	mockTransport := mocks.NewMockTransport(gomock.NewController(t))
	mockTransport.EXPECT().
		Post(gomock.Any(), "accounts", &transport.RequestOptions{Data: accounts.CreateAccountRequest{
			PublicKey: generated.PublicKey().StringDer(),
		}}).
		Return(ok(`{"accountId":"0.0.4242"}`), nil).
		Times(1)

	out, err := run(t, mockTransport,
		"accounts", "create", "--private-key", generated.StringRaw(), "--key-type", "ecdsa")
	require.NoError(t, err)
	assert.Contains(t, out, "0.0.4242")

	_, err = run(t, mocks.NewMockTransport(gomock.NewController(t)),
		"accounts", "create", "--private-key", generated.StringRaw(), "--key-type", "rsa")
	assert.Error(t, err)
}

func TestTransactionsGetNonce(t *testing.T) {
	mockTransport := mocks.NewMockTransport(gomock.NewController(t))
	mockTransport.EXPECT().
		Get(gomock.Any(), "mirrors/transactions/0.0.1001-1700000000-000000001",
			&transport.RequestOptions{Params: url.Values{"nonce": {"0"}}}).
		Return(ok(`{"transactions":[]}`), nil).
		Times(1)

	_, err := run(t, mockTransport, "transactions", "get", "0.0.1001@1700000000.000000001", "--nonce", "0")
	require.NoError(t, err)
}

func TestHTSBalancesYAML(t *testing.T) {
	mockTransport := mocks.NewMockTransport(gomock.NewController(t))
	mockTransport.EXPECT().
		Get(gomock.Any(), "mirrors/hts/tokens/0.0.500/balances", &transport.RequestOptions{Params: url.Values{
			"accountId": {"0.0.1001"},
			"limit":     {"10"},
			"order":     {"desc"},
		}}).
		Return(ok(`{"balances":[{"account":"0.0.1001","balance":7,"decimals":0}],"links":{"next":null}}`), nil).
		Times(1)

	out, err := run(t, mockTransport,
		"hts", "balances", "0.0.500", "--account", "0.0.1001", "--limit", "10", "--order", "desc", "-o", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "balances:")
	assert.Contains(t, out, "0.0.1001")
	assert.NotContains(t, out, "{")
}

func TestHCSSubmit(t *testing.T) {
	mockTransport := mocks.NewMockTransport(gomock.NewController(t))
	mockTransport.EXPECT().
		Post(gomock.Any(), "hcs/0.0.2000/message", &transport.RequestOptions{Data: hcs.SubmitMessageRequest{Message: "hi"}}).
		Return(ok(`{"sequenceNumber":1}`), nil).
		Times(1)

	_, err := run(t, mockTransport, "hcs", "submit", "0.0.2000", "hi")
	require.NoError(t, err)
}

func TestHCSMessagesDecode(t *testing.T) {
	mockTransport := mocks.NewMockTransport(gomock.NewController(t))
	mockTransport.EXPECT().
		Get(gomock.Any(), "mirrors/hcs/topics/0.0.2000/messages", nil).
		Return(ok(`{"messages":[{"sequence_number":1,"message":"aGVsbG8="}]}`), nil).
		Times(1)

	out, err := run(t, mockTransport, "hcs", "messages", "0.0.2000", "--decode")
	require.NoError(t, err)
	assert.Contains(t, out, `"text": "hello"`)
}

func TestTransportFailureIsReturned(t *testing.T) {
	mockTransport := mocks.NewMockTransport(gomock.NewController(t))
	mockTransport.EXPECT().
		Get(gomock.Any(), "mirrors/validators/stake", nil).
		Return(nil, &transport.Error{Method: http.MethodGet, Path: "mirrors/validators/stake", Status: http.StatusServiceUnavailable}).
		Times(1)

	_, err := run(t, mockTransport, "validators", "network-stake", "--log-level", "error")
	require.Error(t, err)
	status, found := transport.StatusCode(err)
	assert.True(t, found)
	assert.Equal(t, http.StatusServiceUnavailable, status)
}

func TestMissingBaseURL(t *testing.T) {
	t.Setenv("HEDERA_REST_URL", "")
	_, err := run(t, nil, "status", "health")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base URL is required")
}

func TestRejectsUnknownOutputFormat(t *testing.T) {
	_, err := run(t, nil, "endpoints", "-o", "xml")
	assert.Error(t, err)
}
