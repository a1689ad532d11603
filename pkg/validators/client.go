package validators

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/hashgraph-online/hedera-rest-sdk-go/pkg/endpoint"
	"github.com/hashgraph-online/hedera-rest-sdk-go/pkg/transport"
)

// BasePath is the path segment every validators operation lives under.
const BasePath = "validators"

var (
	stake = endpoint.Descriptor{
		Operation: "stake",
		Method:    http.MethodPost,
		API:       endpoint.Primary,
		Template:  "stake",
		Params:    endpoint.BodyParams,
		Shape:     endpoint.ShapeObject,
	}
	unstake = endpoint.Descriptor{
		Operation: "unstake",
		Method:    http.MethodPost,
		API:       endpoint.Primary,
		Template:  "unstake",
		Params:    endpoint.BodyParams,
		Shape:     endpoint.ShapeObject,
	}
	getStakingInfo = endpoint.Descriptor{
		Operation: "getStakingInfo",
		Method:    http.MethodGet,
		API:       endpoint.Primary,
		Template:  "{accountId}/staking",
		Shape:     endpoint.ShapeObject,
	}
	listNodes = endpoint.Descriptor{
		Operation: "listNodes",
		Method:    http.MethodGet,
		API:       endpoint.Mirror,
		Template:  "nodes",
		Params:    endpoint.QueryParams,
		Shape:     endpoint.ShapePage,
	}
	getNode = endpoint.Descriptor{
		Operation: "getNode",
		Method:    http.MethodGet,
		API:       endpoint.Mirror,
		Template:  "nodes/{nodeId}",
		Shape:     endpoint.ShapeObject,
	}
	getNetworkStake = endpoint.Descriptor{
		Operation: "getNetworkStake",
		Method:    http.MethodGet,
		API:       endpoint.Mirror,
		Template:  "stake",
		Shape:     endpoint.ShapeObject,
	}
)

var catalogue = endpoint.Catalogue{
	stake,
	unstake,
	getStakingInfo,
	listNodes,
	getNode,
	getNetworkStake,
}

// Endpoints returns a copy of the validators operation catalogue.
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

// Stake sets the staking election of request.AccountID.
func (c *Client) Stake(ctx context.Context, request StakeRequest) (endpoint.JSONObject, error) {
	return endpoint.Invoke[endpoint.JSONObject](ctx, c.group, stake, endpoint.Call{Body: request})
}

// Unstake clears the staking election of request.AccountID.
func (c *Client) Unstake(ctx context.Context, request UnstakeRequest) (endpoint.JSONObject, error) {
	return endpoint.Invoke[endpoint.JSONObject](ctx, c.group, unstake, endpoint.Call{Body: request})
}

func (c *Client) GetStakingInfo(ctx context.Context, accountID string) (endpoint.JSONObject, error) {
	return endpoint.Invoke[endpoint.JSONObject](ctx, c.group, getStakingInfo, endpoint.Args(accountID))
}

// ListNodes returns a page of consensus nodes from the address book.
func (c *Client) ListNodes(ctx context.Context, query NodesQuery) (NodesPage, error) {
	return endpoint.Invoke[NodesPage](ctx, c.group, listNodes, endpoint.Call{Query: query})
}

func (c *Client) GetNode(ctx context.Context, nodeID string) (Node, error) {
	return endpoint.Invoke[Node](ctx, c.group, getNode, endpoint.Args(nodeID))
}

func (c *Client) GetNetworkStake(ctx context.Context) (NetworkStake, error) {
	return endpoint.Invoke[NetworkStake](ctx, c.group, getNetworkStake, endpoint.Call{})
}
