package transactions

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/hashgraph-online/hedera-rest-sdk-go/pkg/endpoint"
	"github.com/hashgraph-online/hedera-rest-sdk-go/pkg/mirror"
	"github.com/hashgraph-online/hedera-rest-sdk-go/pkg/transport"
)

// BasePath is the path segment every transactions operation lives under.
const BasePath = "transactions"

var (
	submit = endpoint.Descriptor{
		Operation: "submit",
		Method:    http.MethodPost,
		API:       endpoint.Primary,
		Params:    endpoint.BodyParams,
		Shape:     endpoint.ShapeObject,
	}
	getReceipt = endpoint.Descriptor{
		Operation: "getReceipt",
		Method:    http.MethodGet,
		API:       endpoint.Primary,
		Template:  "{transactionId}/receipt",
		Shape:     endpoint.ShapeObject,
	}
	getRecord = endpoint.Descriptor{
		Operation: "getRecord",
		Method:    http.MethodGet,
		API:       endpoint.Primary,
		Template:  "{transactionId}/record",
		Shape:     endpoint.ShapeObject,
	}
	createSchedule = endpoint.Descriptor{
		Operation: "createSchedule",
		Method:    http.MethodPost,
		API:       endpoint.Primary,
		Template:  "schedules",
		Params:    endpoint.BodyParams,
		Shape:     endpoint.ShapeObject,
	}
	signSchedule = endpoint.Descriptor{
		Operation: "signSchedule",
		Method:    http.MethodPost,
		API:       endpoint.Primary,
		Template:  "schedules/{scheduleId}/sign",
		Params:    endpoint.BodyParams,
		Shape:     endpoint.ShapeObject,
	}
	deleteSchedule = endpoint.Descriptor{
		Operation: "deleteSchedule",
		Method:    http.MethodDelete,
		API:       endpoint.Primary,
		Template:  "schedules/{scheduleId}",
		Shape:     endpoint.ShapeObject,
	}
	list = endpoint.Descriptor{
		Operation: "list",
		Method:    http.MethodGet,
		API:       endpoint.Mirror,
		Params:    endpoint.QueryParams,
		Shape:     endpoint.ShapePage,
	}
	get = endpoint.Descriptor{
		Operation: "get",
		Method:    http.MethodGet,
		API:       endpoint.Mirror,
		Template:  "{transactionId}",
		Params:    endpoint.QueryParams,
		Shape:     endpoint.ShapeObject,
	}
	listSchedules = endpoint.Descriptor{
		Operation: "listSchedules",
		Method:    http.MethodGet,
		API:       endpoint.Mirror,
		Template:  "schedules",
		Params:    endpoint.QueryParams,
		Shape:     endpoint.ShapePage,
	}
	getSchedule = endpoint.Descriptor{
		Operation: "getSchedule",
		Method:    http.MethodGet,
		API:       endpoint.Mirror,
		Template:  "schedules/{scheduleId}",
		Shape:     endpoint.ShapeObject,
	}
)

var catalogue = endpoint.Catalogue{
	submit,
	getReceipt,
	getRecord,
	createSchedule,
	signSchedule,
	deleteSchedule,
	list,
	get,
	listSchedules,
	getSchedule,
}

// Endpoints returns a copy of the transactions operation catalogue.
func Endpoints() endpoint.Catalogue {
	return catalogue.Clone()
}

type Client struct {
	group *endpoint.Group
}

// NewClient creates a new Client.
func NewClient(t transport.Transport, logger *zap.Logger) *Client {
	return &Client{group: endpoint.NewGroup(BasePath, t, logger)}
}

// Submit sends a signed transaction to the network.
func (c *Client) Submit(ctx context.Context, request SubmitRequest) (endpoint.JSONObject, error) {
	return endpoint.Invoke[endpoint.JSONObject](ctx, c.group, submit, endpoint.Call{Body: request})
}

func (c *Client) GetReceipt(ctx context.Context, transactionID string) (endpoint.JSONObject, error) {
	return endpoint.Invoke[endpoint.JSONObject](ctx, c.group, getReceipt, endpoint.Args(transactionID))
}

func (c *Client) GetRecord(ctx context.Context, transactionID string) (endpoint.JSONObject, error) {
	return endpoint.Invoke[endpoint.JSONObject](ctx, c.group, getRecord, endpoint.Args(transactionID))
}

// CreateSchedule wraps request.TransactionBytes in a schedule entity.
func (c *Client) CreateSchedule(ctx context.Context, request CreateScheduleRequest) (endpoint.JSONObject, error) {
	return endpoint.Invoke[endpoint.JSONObject](ctx, c.group, createSchedule, endpoint.Call{Body: request})
}

// SignSchedule adds signatures to a pending schedule.
func (c *Client) SignSchedule(
	ctx context.Context,
	scheduleID string,
	request SignScheduleRequest,
) (endpoint.JSONObject, error) {
	return endpoint.Invoke[endpoint.JSONObject](ctx, c.group, signSchedule, endpoint.Call{
		Args: []string{scheduleID},
		Body: request,
	})
}

func (c *Client) DeleteSchedule(ctx context.Context, scheduleID string) (endpoint.JSONObject, error) {
	return endpoint.Invoke[endpoint.JSONObject](ctx, c.group, deleteSchedule, endpoint.Args(scheduleID))
}

// List returns a page of transactions from the mirror API.
func (c *Client) List(ctx context.Context, query ListQuery) (mirror.TransactionsPage, error) {
	return endpoint.Invoke[mirror.TransactionsPage](ctx, c.group, list, endpoint.Call{Query: query})
}

// Get returns the transactions recorded under transactionID. Nonce and
// Scheduled are sent only when set.
func (c *Client) Get(ctx context.Context, transactionID string, query GetQuery) (TransactionDetails, error) {
	return endpoint.Invoke[TransactionDetails](ctx, c.group, get, endpoint.Call{
		Args:  []string{transactionID},
		Query: query,
	})
}

func (c *Client) ListSchedules(ctx context.Context, query SchedulesQuery) (SchedulesPage, error) {
	return endpoint.Invoke[SchedulesPage](ctx, c.group, listSchedules, endpoint.Call{Query: query})
}

func (c *Client) GetSchedule(ctx context.Context, scheduleID string) (Schedule, error) {
	return endpoint.Invoke[Schedule](ctx, c.group, getSchedule, endpoint.Args(scheduleID))
}
