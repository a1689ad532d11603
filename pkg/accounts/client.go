package accounts

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/hashgraph-online/hedera-rest-sdk-go/pkg/endpoint"
	"github.com/hashgraph-online/hedera-rest-sdk-go/pkg/mirror"
	"github.com/hashgraph-online/hedera-rest-sdk-go/pkg/transport"
)

// BasePath is the path segment every accounts operation lives under.
const BasePath = "accounts"

var (
	create = endpoint.Descriptor{
		Operation: "create",
		Method:    http.MethodPost,
		API:       endpoint.Primary,
		Params:    endpoint.BodyParams,
		Shape:     endpoint.ShapeObject,
	}
	getInfo = endpoint.Descriptor{
		Operation: "getInfo",
		Method:    http.MethodGet,
		API:       endpoint.Primary,
		Template:  "{accountId}",
		Shape:     endpoint.ShapeObject,
	}
	getBalance = endpoint.Descriptor{
		Operation: "getBalance",
		Method:    http.MethodGet,
		API:       endpoint.Primary,
		Template:  "{accountId}/balance",
		Shape:     endpoint.ShapeObject,
	}
	update = endpoint.Descriptor{
		Operation: "update",
		Method:    http.MethodPut,
		API:       endpoint.Primary,
		Template:  "{accountId}",
		Params:    endpoint.BodyParams,
		Shape:     endpoint.ShapeObject,
	}
	remove = endpoint.Descriptor{
		Operation: "delete",
		Method:    http.MethodDelete,
		API:       endpoint.Primary,
		Template:  "{accountId}",
		Params:    endpoint.BodyParams,
		Shape:     endpoint.ShapeObject,
	}
	transferHbar = endpoint.Descriptor{
		Operation: "transferHbar",
		Method:    http.MethodPost,
		API:       endpoint.Primary,
		Template:  "transfer",
		Params:    endpoint.BodyParams,
		Shape:     endpoint.ShapeObject,
	}
	approveHbarAllowance = endpoint.Descriptor{
		Operation: "approveHbarAllowance",
		Method:    http.MethodPost,
		API:       endpoint.Primary,
		Template:  "{accountId}/allowances/approve",
		Params:    endpoint.BodyParams,
		Shape:     endpoint.ShapeObject,
	}
	deleteNFTAllowances = endpoint.Descriptor{
		Operation: "deleteNftAllowances",
		Method:    http.MethodDelete,
		API:       endpoint.Primary,
		Template:  "{accountId}/allowances/nfts",
		Params:    endpoint.BodyParams,
		Shape:     endpoint.ShapeObject,
	}
	list = endpoint.Descriptor{
		Operation: "list",
		Method:    http.MethodGet,
		API:       endpoint.Mirror,
		Params:    endpoint.QueryParams,
		Shape:     endpoint.ShapePage,
	}
	getDetails = endpoint.Descriptor{
		Operation: "getDetails",
		Method:    http.MethodGet,
		API:       endpoint.Mirror,
		Template:  "{accountId}",
		Params:    endpoint.QueryParams,
		Shape:     endpoint.ShapePage,
	}
	listNFTs = endpoint.Descriptor{
		Operation: "listNfts",
		Method:    http.MethodGet,
		API:       endpoint.Mirror,
		Template:  "{accountId}/nfts",
		Params:    endpoint.QueryParams,
		Shape:     endpoint.ShapePage,
	}
	listTokens = endpoint.Descriptor{
		Operation: "listTokens",
		Method:    http.MethodGet,
		API:       endpoint.Mirror,
		Template:  "{accountId}/tokens",
		Params:    endpoint.QueryParams,
		Shape:     endpoint.ShapePage,
	}
	listRewards = endpoint.Descriptor{
		Operation: "listRewards",
		Method:    http.MethodGet,
		API:       endpoint.Mirror,
		Template:  "{accountId}/rewards",
		Params:    endpoint.QueryParams,
		Shape:     endpoint.ShapePage,
	}
	listCryptoAllowances = endpoint.Descriptor{
		Operation: "listCryptoAllowances",
		Method:    http.MethodGet,
		API:       endpoint.Mirror,
		Template:  "{accountId}/allowances/crypto",
		Params:    endpoint.QueryParams,
		Shape:     endpoint.ShapePage,
	}
	listTokenAllowances = endpoint.Descriptor{
		Operation: "listTokenAllowances",
		Method:    http.MethodGet,
		API:       endpoint.Mirror,
		Template:  "{accountId}/allowances/tokens",
		Params:    endpoint.QueryParams,
		Shape:     endpoint.ShapePage,
	}
	listNFTAllowances = endpoint.Descriptor{
		Operation: "listNftAllowances",
		Method:    http.MethodGet,
		API:       endpoint.Mirror,
		Template:  "{accountId}/allowances/nfts",
		Params:    endpoint.QueryParams,
		Shape:     endpoint.ShapePage,
	}
)

var catalogue = endpoint.Catalogue{
	create,
	getInfo,
	getBalance,
	update,
	remove,
	transferHbar,
	approveHbarAllowance,
	deleteNFTAllowances,
	list,
	getDetails,
	listNFTs,
	listTokens,
	listRewards,
	listCryptoAllowances,
	listTokenAllowances,
	listNFTAllowances,
}

// Endpoints returns a copy of the accounts operation catalogue.
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

// Create creates a new account.
func (c *Client) Create(ctx context.Context, request CreateAccountRequest) (endpoint.JSONObject, error) {
	return endpoint.Invoke[endpoint.JSONObject](ctx, c.group, create, endpoint.Call{Body: request})
}

// GetInfo returns the current account info from the network.
func (c *Client) GetInfo(ctx context.Context, accountID string) (endpoint.JSONObject, error) {
	return endpoint.Invoke[endpoint.JSONObject](ctx, c.group, getInfo, endpoint.Args(accountID))
}

// GetBalance returns the current hbar and token balance from the network.
func (c *Client) GetBalance(ctx context.Context, accountID string) (endpoint.JSONObject, error) {
	return endpoint.Invoke[endpoint.JSONObject](ctx, c.group, getBalance, endpoint.Args(accountID))
}

// Update updates the requested account.
func (c *Client) Update(ctx context.Context, accountID string, request UpdateAccountRequest) (endpoint.JSONObject, error) {
	return endpoint.Invoke[endpoint.JSONObject](ctx, c.group, update, endpoint.Call{
		Args: []string{accountID},
		Body: request,
	})
}

// Delete deletes the account, sweeping its balance to
// request.TransferAccountID.
func (c *Client) Delete(ctx context.Context, accountID string, request DeleteAccountRequest) (endpoint.JSONObject, error) {
	return endpoint.Invoke[endpoint.JSONObject](ctx, c.group, remove, endpoint.Call{
		Args: []string{accountID},
		Body: request,
	})
}

func (c *Client) TransferHbar(ctx context.Context, request TransferHbarRequest) (endpoint.JSONObject, error) {
	return endpoint.Invoke[endpoint.JSONObject](ctx, c.group, transferHbar, endpoint.Call{Body: request})
}

func (c *Client) ApproveHbarAllowance(
	ctx context.Context,
	ownerAccountID string,
	request ApproveHbarAllowanceRequest,
) (endpoint.JSONObject, error) {
	return endpoint.Invoke[endpoint.JSONObject](ctx, c.group, approveHbarAllowance, endpoint.Call{
		Args: []string{ownerAccountID},
		Body: request,
	})
}

func (c *Client) DeleteNFTAllowances(
	ctx context.Context,
	ownerAccountID string,
	request DeleteNFTAllowancesRequest,
) (endpoint.JSONObject, error) {
	return endpoint.Invoke[endpoint.JSONObject](ctx, c.group, deleteNFTAllowances, endpoint.Call{
		Args: []string{ownerAccountID},
		Body: request,
	})
}

// List returns a page of accounts from the mirror API.
func (c *Client) List(ctx context.Context, query ListQuery) (AccountsPage, error) {
	return endpoint.Invoke[AccountsPage](ctx, c.group, list, endpoint.Call{Query: query})
}

// GetDetails returns the account together with its recent transactions.
func (c *Client) GetDetails(ctx context.Context, accountID string, query DetailsQuery) (AccountDetails, error) {
	return endpoint.Invoke[AccountDetails](ctx, c.group, getDetails, endpoint.Call{
		Args:  []string{accountID},
		Query: query,
	})
}

func (c *Client) ListNFTs(ctx context.Context, accountID string, query NFTsQuery) (mirror.NFTsPage, error) {
	return endpoint.Invoke[mirror.NFTsPage](ctx, c.group, listNFTs, endpoint.Call{
		Args:  []string{accountID},
		Query: query,
	})
}

func (c *Client) ListTokens(ctx context.Context, accountID string, query TokensQuery) (TokenRelationshipsPage, error) {
	return endpoint.Invoke[TokenRelationshipsPage](ctx, c.group, listTokens, endpoint.Call{
		Args:  []string{accountID},
		Query: query,
	})
}

func (c *Client) ListRewards(ctx context.Context, accountID string, query RewardsQuery) (RewardsPage, error) {
	return endpoint.Invoke[RewardsPage](ctx, c.group, listRewards, endpoint.Call{
		Args:  []string{accountID},
		Query: query,
	})
}

func (c *Client) ListCryptoAllowances(
	ctx context.Context,
	accountID string,
	query CryptoAllowancesQuery,
) (CryptoAllowancesPage, error) {
	return endpoint.Invoke[CryptoAllowancesPage](ctx, c.group, listCryptoAllowances, endpoint.Call{
		Args:  []string{accountID},
		Query: query,
	})
}

func (c *Client) ListTokenAllowances(
	ctx context.Context,
	accountID string,
	query TokenAllowancesQuery,
) (TokenAllowancesPage, error) {
	return endpoint.Invoke[TokenAllowancesPage](ctx, c.group, listTokenAllowances, endpoint.Call{
		Args:  []string{accountID},
		Query: query,
	})
}

func (c *Client) ListNFTAllowances(
	ctx context.Context,
	accountID string,
	query NFTAllowancesQuery,
) (NFTAllowancesPage, error) {
	return endpoint.Invoke[NFTAllowancesPage](ctx, c.group, listNFTAllowances, endpoint.Call{
		Args:  []string{accountID},
		Query: query,
	})
}
