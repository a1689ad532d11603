package status

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/hashgraph-online/hedera-rest-sdk-go/pkg/endpoint"
	"github.com/hashgraph-online/hedera-rest-sdk-go/pkg/transport"
)

// BasePath is the path segment every status operation lives under.
const BasePath = "status"

var (
	health = endpoint.Descriptor{
		Operation: "health",
		Method:    http.MethodGet,
		API:       endpoint.Primary,
		Shape:     endpoint.ShapeObject,
	}
	version = endpoint.Descriptor{
		Operation: "version",
		Method:    http.MethodGet,
		API:       endpoint.Primary,
		Template:  "version",
		Shape:     endpoint.ShapeObject,
	}
	supply = endpoint.Descriptor{
		Operation: "supply",
		Method:    http.MethodGet,
		API:       endpoint.Mirror,
		Template:  "supply",
		Params:    endpoint.QueryParams,
		Shape:     endpoint.ShapeObject,
	}
	exchangeRate = endpoint.Descriptor{
		Operation: "exchangeRate",
		Method:    http.MethodGet,
		API:       endpoint.Mirror,
		Template:  "exchangerate",
		Params:    endpoint.QueryParams,
		Shape:     endpoint.ShapeObject,
	}
	fees = endpoint.Descriptor{
		Operation: "fees",
		Method:    http.MethodGet,
		API:       endpoint.Mirror,
		Template:  "fees",
		Params:    endpoint.QueryParams,
		Shape:     endpoint.ShapeObject,
	}
	listBlocks = endpoint.Descriptor{
		Operation: "listBlocks",
		Method:    http.MethodGet,
		API:       endpoint.Mirror,
		Template:  "blocks",
		Params:    endpoint.QueryParams,
		Shape:     endpoint.ShapePage,
	}
	getBlock = endpoint.Descriptor{
		Operation: "getBlock",
		Method:    http.MethodGet,
		API:       endpoint.Mirror,
		Template:  "blocks/{hashOrNumber}",
		Shape:     endpoint.ShapeObject,
	}
)

var catalogue = endpoint.Catalogue{
	health,
	version,
	supply,
	exchangeRate,
	fees,
	listBlocks,
	getBlock,
}

// Endpoints returns a copy of the status operation catalogue.
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

// Health reports whether the primary API is serving requests.
func (c *Client) Health(ctx context.Context) (endpoint.JSONObject, error) {
	return endpoint.Invoke[endpoint.JSONObject](ctx, c.group, health, endpoint.Call{})
}

func (c *Client) Version(ctx context.Context) (endpoint.JSONObject, error) {
	return endpoint.Invoke[endpoint.JSONObject](ctx, c.group, version, endpoint.Call{})
}

// Supply returns the released and total hbar supply, optionally as of a
// past consensus timestamp.
func (c *Client) Supply(ctx context.Context, query SupplyQuery) (Supply, error) {
	return endpoint.Invoke[Supply](ctx, c.group, supply, endpoint.Call{Query: query})
}

func (c *Client) ExchangeRate(ctx context.Context, query ExchangeRateQuery) (ExchangeRateSet, error) {
	return endpoint.Invoke[ExchangeRateSet](ctx, c.group, exchangeRate, endpoint.Call{Query: query})
}

func (c *Client) Fees(ctx context.Context, query FeesQuery) (FeeSchedule, error) {
	return endpoint.Invoke[FeeSchedule](ctx, c.group, fees, endpoint.Call{Query: query})
}

func (c *Client) ListBlocks(ctx context.Context, query BlocksQuery) (BlocksPage, error) {
	return endpoint.Invoke[BlocksPage](ctx, c.group, listBlocks, endpoint.Call{Query: query})
}

// GetBlock returns one block by hash or by number.
func (c *Client) GetBlock(ctx context.Context, hashOrNumber string) (Block, error) {
	return endpoint.Invoke[Block](ctx, c.group, getBlock, endpoint.Args(hashOrNumber))
}
