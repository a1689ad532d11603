package transactions

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hashgraph-online/hedera-rest-sdk-go/pkg/endpoint"
	"github.com/hashgraph-online/hedera-rest-sdk-go/pkg/transport"
	"github.com/hashgraph-online/hedera-rest-sdk-go/pkg/transport/mocks"
)

const transactionID = "0.0.1001-1700000000-000000001"

func TestCatalogueIsValid(t *testing.T) {
	require.NoError(t, Endpoints().Validate())
}

func TestOperationMapping(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		name    string
		method  string
		path    string
		options *transport.RequestOptions
		call    func(*Client) error
	}{
		{
			name:    "Submit",
			method:  http.MethodPost,
			path:    "transactions",
			options: &transport.RequestOptions{Data: SubmitRequest{TransactionBytes: "CgQQBxgLEgQQBxgD"}},
			call: func(c *Client) error {
				_, err := c.Submit(ctx, SubmitRequest{TransactionBytes: "CgQQBxgLEgQQBxgD"})
				return err
			},
		},
		{
			name:   "GetReceipt",
			method: http.MethodGet,
			path:   "transactions/" + transactionID + "/receipt",
			call: func(c *Client) error {
				_, err := c.GetReceipt(ctx, transactionID)
				return err
			},
		},
		{
			name:   "GetRecord",
			method: http.MethodGet,
			path:   "transactions/" + transactionID + "/record",
			call: func(c *Client) error {
				_, err := c.GetRecord(ctx, transactionID)
				return err
			},
		},
		{
			name:    "CreateSchedule",
			method:  http.MethodPost,
			path:    "transactions/schedules",
			options: &transport.RequestOptions{Data: CreateScheduleRequest{TransactionBytes: "AA==", Memo: "payroll"}},
			call: func(c *Client) error {
				_, err := c.CreateSchedule(ctx, CreateScheduleRequest{TransactionBytes: "AA==", Memo: "payroll"})
				return err
			},
		},
		{
			name:    "SignSchedule",
			method:  http.MethodPost,
			path:    "transactions/schedules/0.0.7000/sign",
			options: &transport.RequestOptions{Data: SignScheduleRequest{Signatures: []string{"sig"}}},
			call: func(c *Client) error {
				_, err := c.SignSchedule(ctx, "0.0.7000", SignScheduleRequest{Signatures: []string{"sig"}})
				return err
			},
		},
		{
			name:   "DeleteSchedule",
			method: http.MethodDelete,
			path:   "transactions/schedules/0.0.7000",
			call: func(c *Client) error {
				_, err := c.DeleteSchedule(ctx, "0.0.7000")
				return err
			},
		},
		{
			name:   "List",
			method: http.MethodGet,
			path:   "mirrors/transactions",
			options: &transport.RequestOptions{Params: url.Values{
				"accountId":       {"0.0.1001"},
				"transactionType": {"CRYPTOTRANSFER"},
				"result":          {"success"},
				"type":            {"debit"},
				"limit":           {"25"},
				"order":           {"desc"},
			}},
			call: func(c *Client) error {
				_, err := c.List(ctx, ListQuery{
					AccountID:       "0.0.1001",
					TransactionType: "CRYPTOTRANSFER",
					Result:          "success",
					Type:            "debit",
					Limit:           25,
					Order:           endpoint.OrderDesc,
				})
				return err
			},
		},
		{
			name:   "Get",
			method: http.MethodGet,
			path:   "mirrors/transactions/" + transactionID,
			call: func(c *Client) error {
				_, err := c.Get(ctx, transactionID, GetQuery{})
				return err
			},
		},
		{
			name:    "ListSchedules",
			method:  http.MethodGet,
			path:    "mirrors/transactions/schedules",
			options: &transport.RequestOptions{Params: url.Values{"scheduleId": {"0.0.7000"}}},
			call: func(c *Client) error {
				_, err := c.ListSchedules(ctx, SchedulesQuery{ScheduleID: "0.0.7000"})
				return err
			},
		},
		{
			name:   "GetSchedule",
			method: http.MethodGet,
			path:   "mirrors/transactions/schedules/0.0.7000",
			call: func(c *Client) error {
				_, err := c.GetSchedule(ctx, "0.0.7000")
				return err
			},
		},
	}

	require.Len(t, cases, len(catalogue))
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mockTransport := mocks.NewMockTransport(gomock.NewController(t))
			mockTransport.ExpectRequest(tc.method, tc.path, tc.options).
				Return(&transport.Response{StatusCode: http.StatusOK, Data: []byte(`{}`)}, nil).
				Times(1)
			require.NoError(t, tc.call(NewClient(mockTransport, nil)))
		})
	}
}

func TestGetAttachesNonceAndScheduledOnlyWhenSet(t *testing.T) {
	cases := []struct {
		name  string
		query GetQuery
		want  url.Values
	}{
		{name: "unset", query: GetQuery{}, want: nil},
		{name: "zero nonce", query: GetQuery{Nonce: endpoint.Int64(0)}, want: url.Values{"nonce": {"0"}}},
		{name: "scheduled false", query: GetQuery{Scheduled: endpoint.Bool(false)}, want: url.Values{"scheduled": {"false"}}},
		{
			name:  "both",
			query: GetQuery{Nonce: endpoint.Int64(2), Scheduled: endpoint.Bool(true)},
			want:  url.Values{"nonce": {"2"}, "scheduled": {"true"}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var gotQuery url.Values
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/mirrors/transactions/"+transactionID, r.URL.Path)
				gotQuery = r.URL.Query()
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"transactions":[{"transaction_id":"` + transactionID + `","nonce":0}]}`))
			}))
			defer server.Close()

			httpClient, err := transport.NewHTTPClient(transport.Config{BaseURL: server.URL})
			require.NoError(t, err)

			details, err := NewClient(httpClient, nil).Get(context.Background(), transactionID, tc.query)
			require.NoError(t, err)
			require.Len(t, details.Transactions, 1)
			if tc.want == nil {
				assert.Empty(t, gotQuery)
				return
			}
			assert.Equal(t, tc.want, gotQuery)
		})
	}
}

func TestGetScheduleDecodesSignatures(t *testing.T) {
	mockTransport := mocks.NewMockTransport(gomock.NewController(t))
	mockTransport.EXPECT().
		Get(gomock.Any(), "mirrors/transactions/schedules/0.0.7000", nil).
		Return(&transport.Response{StatusCode: http.StatusOK, Data: []byte(`{
			"schedule_id":"0.0.7000","creator_account_id":"0.0.1001","executed_timestamp":null,
			"signatures":[{"public_key_prefix":"AAE=","signature":"c2ln","type":"ED25519"}]
		}`)}, nil)

	schedule, err := NewClient(mockTransport, nil).GetSchedule(context.Background(), "0.0.7000")
	require.NoError(t, err)
	assert.Equal(t, "0.0.1001", schedule.CreatorAccountID)
	assert.Nil(t, schedule.ExecutedTimestamp)
	require.Len(t, schedule.Signatures, 1)
	assert.Equal(t, "ED25519", schedule.Signatures[0].Type)
}
