package hts

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/hashgraph-online/hedera-rest-sdk-go/pkg/endpoint"
	"github.com/hashgraph-online/hedera-rest-sdk-go/pkg/mirror"
	"github.com/hashgraph-online/hedera-rest-sdk-go/pkg/transport"
)

// BasePath is the path segment every token operation lives under.
const BasePath = "hts"

var (
	createToken = endpoint.Descriptor{
		Operation: "createToken",
		Method:    http.MethodPost,
		API:       endpoint.Primary,
		Template:  "create/token",
		Params:    endpoint.BodyParams,
		Shape:     endpoint.ShapeObject,
	}
	createNFT = endpoint.Descriptor{
		Operation: "createNft",
		Method:    http.MethodPost,
		API:       endpoint.Primary,
		Template:  "create/nft",
		Params:    endpoint.BodyParams,
		Shape:     endpoint.ShapeObject,
	}
	mintToken = endpoint.Descriptor{
		Operation: "mintToken",
		Method:    http.MethodPost,
		API:       endpoint.Primary,
		Template:  "mint/token",
		Params:    endpoint.BodyParams,
		Shape:     endpoint.ShapeObject,
	}
	mintNFT = endpoint.Descriptor{
		Operation: "mintNft",
		Method:    http.MethodPost,
		API:       endpoint.Primary,
		Template:  "mint/nft",
		Params:    endpoint.BodyParams,
		Shape:     endpoint.ShapeObject,
	}
	burnToken = endpoint.Descriptor{
		Operation: "burnToken",
		Method:    http.MethodPost,
		API:       endpoint.Primary,
		Template:  "burn/token",
		Params:    endpoint.BodyParams,
		Shape:     endpoint.ShapeObject,
	}
	burnNFT = endpoint.Descriptor{
		Operation: "burnNft",
		Method:    http.MethodPost,
		API:       endpoint.Primary,
		Template:  "burn/nft",
		Params:    endpoint.BodyParams,
		Shape:     endpoint.ShapeObject,
	}
	transferToken = endpoint.Descriptor{
		Operation: "transferToken",
		Method:    http.MethodPost,
		API:       endpoint.Primary,
		Template:  "transfer/token",
		Params:    endpoint.BodyParams,
		Shape:     endpoint.ShapeObject,
	}
	transferNFT = endpoint.Descriptor{
		Operation: "transferNft",
		Method:    http.MethodPost,
		API:       endpoint.Primary,
		Template:  "transfer/nft",
		Params:    endpoint.BodyParams,
		Shape:     endpoint.ShapeObject,
	}
	associate = endpoint.Descriptor{
		Operation: "associate",
		Method:    http.MethodPost,
		API:       endpoint.Primary,
		Template:  "associate",
		Params:    endpoint.BodyParams,
		Shape:     endpoint.ShapeObject,
	}
	dissociate = endpoint.Descriptor{
		Operation: "dissociate",
		Method:    http.MethodPost,
		API:       endpoint.Primary,
		Template:  "dissociate",
		Params:    endpoint.BodyParams,
		Shape:     endpoint.ShapeObject,
	}
	freeze = endpoint.Descriptor{
		Operation: "freeze",
		Method:    http.MethodPatch,
		API:       endpoint.Primary,
		Template:  "freeze",
		Params:    endpoint.BodyParams,
		Shape:     endpoint.ShapeObject,
	}
	unfreeze = endpoint.Descriptor{
		Operation: "unfreeze",
		Method:    http.MethodPatch,
		API:       endpoint.Primary,
		Template:  "unfreeze",
		Params:    endpoint.BodyParams,
		Shape:     endpoint.ShapeObject,
	}
	grantKYC = endpoint.Descriptor{
		Operation: "grantKyc",
		Method:    http.MethodPatch,
		API:       endpoint.Primary,
		Template:  "kyc/grant",
		Params:    endpoint.BodyParams,
		Shape:     endpoint.ShapeObject,
	}
	revokeKYC = endpoint.Descriptor{
		Operation: "revokeKyc",
		Method:    http.MethodPatch,
		API:       endpoint.Primary,
		Template:  "kyc/revoke",
		Params:    endpoint.BodyParams,
		Shape:     endpoint.ShapeObject,
	}
	pause = endpoint.Descriptor{
		Operation: "pause",
		Method:    http.MethodPatch,
		API:       endpoint.Primary,
		Template:  "pause/{tokenId}",
		Shape:     endpoint.ShapeObject,
	}
	unpause = endpoint.Descriptor{
		Operation: "unpause",
		Method:    http.MethodPatch,
		API:       endpoint.Primary,
		Template:  "unpause/{tokenId}",
		Shape:     endpoint.ShapeObject,
	}
	wipe = endpoint.Descriptor{
		Operation: "wipe",
		Method:    http.MethodPost,
		API:       endpoint.Primary,
		Template:  "wipe/token",
		Params:    endpoint.BodyParams,
		Shape:     endpoint.ShapeObject,
	}
	approveTokenAllowance = endpoint.Descriptor{
		Operation: "approveTokenAllowance",
		Method:    http.MethodPost,
		API:       endpoint.Primary,
		Template:  "approve/token",
		Params:    endpoint.BodyParams,
		Shape:     endpoint.ShapeObject,
	}
	approveNFTAllowance = endpoint.Descriptor{
		Operation: "approveNftAllowance",
		Method:    http.MethodPost,
		API:       endpoint.Primary,
		Template:  "approve/nft",
		Params:    endpoint.BodyParams,
		Shape:     endpoint.ShapeObject,
	}
	updateToken = endpoint.Descriptor{
		Operation: "updateToken",
		Method:    http.MethodPut,
		API:       endpoint.Primary,
		Template:  "tokens/{tokenId}",
		Params:    endpoint.BodyParams,
		Shape:     endpoint.ShapeObject,
	}
	deleteToken = endpoint.Descriptor{
		Operation: "deleteToken",
		Method:    http.MethodDelete,
		API:       endpoint.Primary,
		Template:  "tokens/{tokenId}",
		Shape:     endpoint.ShapeObject,
	}
	getTokenInfo = endpoint.Descriptor{
		Operation: "getTokenInfo",
		Method:    http.MethodGet,
		API:       endpoint.Primary,
		Template:  "tokens/{tokenId}",
		Shape:     endpoint.ShapeObject,
	}
	listTokens = endpoint.Descriptor{
		Operation: "listTokens",
		Method:    http.MethodGet,
		API:       endpoint.Mirror,
		Template:  "tokens",
		Params:    endpoint.QueryParams,
		Shape:     endpoint.ShapePage,
	}
	getToken = endpoint.Descriptor{
		Operation: "getToken",
		Method:    http.MethodGet,
		API:       endpoint.Mirror,
		Template:  "tokens/{tokenId}",
		Params:    endpoint.QueryParams,
		Shape:     endpoint.ShapeObject,
	}
	getTokenBalances = endpoint.Descriptor{
		Operation: "getTokenBalances",
		Method:    http.MethodGet,
		API:       endpoint.Mirror,
		Template:  "tokens/{tokenId}/balances",
		Params:    endpoint.QueryParams,
		Shape:     endpoint.ShapePage,
	}
	listNFTs = endpoint.Descriptor{
		Operation: "listNfts",
		Method:    http.MethodGet,
		API:       endpoint.Mirror,
		Template:  "tokens/{tokenId}/nfts",
		Params:    endpoint.QueryParams,
		Shape:     endpoint.ShapePage,
	}
	getNFT = endpoint.Descriptor{
		Operation: "getNft",
		Method:    http.MethodGet,
		API:       endpoint.Mirror,
		Template:  "tokens/{tokenId}/nfts/{serialNumber}",
		Shape:     endpoint.ShapeObject,
	}
	listNFTTransactions = endpoint.Descriptor{
		Operation: "listNftTransactions",
		Method:    http.MethodGet,
		API:       endpoint.Mirror,
		Template:  "tokens/{tokenId}/nfts/{serialNumber}/transactions",
		Params:    endpoint.QueryParams,
		Shape:     endpoint.ShapePage,
	}
)

var catalogue = endpoint.Catalogue{
	createToken,
	createNFT,
	mintToken,
	mintNFT,
	burnToken,
	burnNFT,
	transferToken,
	transferNFT,
	associate,
	dissociate,
	freeze,
	unfreeze,
	grantKYC,
	revokeKYC,
	pause,
	unpause,
	wipe,
	approveTokenAllowance,
	approveNFTAllowance,
	updateToken,
	deleteToken,
	getTokenInfo,
	listTokens,
	getToken,
	getTokenBalances,
	listNFTs,
	getNFT,
	listNFTTransactions,
}

// Endpoints returns a copy of the token operation catalogue.
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

func (c *Client) submit(ctx context.Context, d endpoint.Descriptor, request any) (endpoint.JSONObject, error) {
	return endpoint.Invoke[endpoint.JSONObject](ctx, c.group, d, endpoint.Call{Body: request})
}

// CreateToken creates a fungible token.
func (c *Client) CreateToken(ctx context.Context, request CreateTokenRequest) (endpoint.JSONObject, error) {
	return c.submit(ctx, createToken, request)
}

// CreateNFT creates a non-fungible token class.
func (c *Client) CreateNFT(ctx context.Context, request CreateNFTRequest) (endpoint.JSONObject, error) {
	return c.submit(ctx, createNFT, request)
}

func (c *Client) MintToken(ctx context.Context, request MintTokenRequest) (endpoint.JSONObject, error) {
	return c.submit(ctx, mintToken, request)
}

func (c *Client) MintNFT(ctx context.Context, request MintNFTRequest) (endpoint.JSONObject, error) {
	return c.submit(ctx, mintNFT, request)
}

func (c *Client) BurnToken(ctx context.Context, request BurnTokenRequest) (endpoint.JSONObject, error) {
	return c.submit(ctx, burnToken, request)
}

func (c *Client) BurnNFT(ctx context.Context, request BurnNFTRequest) (endpoint.JSONObject, error) {
	return c.submit(ctx, burnNFT, request)
}

func (c *Client) TransferToken(ctx context.Context, request TransferTokenRequest) (endpoint.JSONObject, error) {
	return c.submit(ctx, transferToken, request)
}

func (c *Client) TransferNFT(ctx context.Context, request TransferNFTRequest) (endpoint.JSONObject, error) {
	return c.submit(ctx, transferNFT, request)
}

// Associate lets request.AccountID hold the listed tokens.
func (c *Client) Associate(ctx context.Context, request AssociationRequest) (endpoint.JSONObject, error) {
	return c.submit(ctx, associate, request)
}

func (c *Client) Dissociate(ctx context.Context, request AssociationRequest) (endpoint.JSONObject, error) {
	return c.submit(ctx, dissociate, request)
}

func (c *Client) Freeze(ctx context.Context, request AccountTokenRequest) (endpoint.JSONObject, error) {
	return c.submit(ctx, freeze, request)
}

func (c *Client) Unfreeze(ctx context.Context, request AccountTokenRequest) (endpoint.JSONObject, error) {
	return c.submit(ctx, unfreeze, request)
}

func (c *Client) GrantKYC(ctx context.Context, request AccountTokenRequest) (endpoint.JSONObject, error) {
	return c.submit(ctx, grantKYC, request)
}

func (c *Client) RevokeKYC(ctx context.Context, request AccountTokenRequest) (endpoint.JSONObject, error) {
	return c.submit(ctx, revokeKYC, request)
}

// Pause suspends every operation on tokenID until Unpause.
func (c *Client) Pause(ctx context.Context, tokenID string) (endpoint.JSONObject, error) {
	return endpoint.Invoke[endpoint.JSONObject](ctx, c.group, pause, endpoint.Args(tokenID))
}

func (c *Client) Unpause(ctx context.Context, tokenID string) (endpoint.JSONObject, error) {
	return endpoint.Invoke[endpoint.JSONObject](ctx, c.group, unpause, endpoint.Args(tokenID))
}

// Wipe removes request.Amount units from the account and the total supply.
func (c *Client) Wipe(ctx context.Context, request WipeRequest) (endpoint.JSONObject, error) {
	return c.submit(ctx, wipe, request)
}

func (c *Client) ApproveTokenAllowance(
	ctx context.Context,
	request ApproveTokenAllowanceRequest,
) (endpoint.JSONObject, error) {
	return c.submit(ctx, approveTokenAllowance, request)
}

func (c *Client) ApproveNFTAllowance(
	ctx context.Context,
	request ApproveNFTAllowanceRequest,
) (endpoint.JSONObject, error) {
	return c.submit(ctx, approveNFTAllowance, request)
}

func (c *Client) UpdateToken(ctx context.Context, tokenID string, request UpdateTokenRequest) (endpoint.JSONObject, error) {
	return endpoint.Invoke[endpoint.JSONObject](ctx, c.group, updateToken, endpoint.Call{
		Args: []string{tokenID},
		Body: request,
	})
}

func (c *Client) DeleteToken(ctx context.Context, tokenID string) (endpoint.JSONObject, error) {
	return endpoint.Invoke[endpoint.JSONObject](ctx, c.group, deleteToken, endpoint.Args(tokenID))
}

// GetTokenInfo returns the token as the network currently reports it.
func (c *Client) GetTokenInfo(ctx context.Context, tokenID string) (endpoint.JSONObject, error) {
	return endpoint.Invoke[endpoint.JSONObject](ctx, c.group, getTokenInfo, endpoint.Args(tokenID))
}

// ListTokens returns a page of tokens from the mirror API.
func (c *Client) ListTokens(ctx context.Context, query ListTokensQuery) (TokensPage, error) {
	return endpoint.Invoke[TokensPage](ctx, c.group, listTokens, endpoint.Call{Query: query})
}

func (c *Client) GetToken(ctx context.Context, tokenID string, query TokenQuery) (Token, error) {
	return endpoint.Invoke[Token](ctx, c.group, getToken, endpoint.Call{
		Args:  []string{tokenID},
		Query: query,
	})
}

// GetTokenBalances returns holder balances of tokenID. Unset filters are
// left off the request.
func (c *Client) GetTokenBalances(ctx context.Context, tokenID string, query BalancesQuery) (BalancesPage, error) {
	return endpoint.Invoke[BalancesPage](ctx, c.group, getTokenBalances, endpoint.Call{
		Args:  []string{tokenID},
		Query: query,
	})
}

func (c *Client) ListNFTs(ctx context.Context, tokenID string, query NFTsQuery) (mirror.NFTsPage, error) {
	return endpoint.Invoke[mirror.NFTsPage](ctx, c.group, listNFTs, endpoint.Call{
		Args:  []string{tokenID},
		Query: query,
	})
}

func (c *Client) GetNFT(ctx context.Context, tokenID string, serialNumber string) (mirror.NFT, error) {
	return endpoint.Invoke[mirror.NFT](ctx, c.group, getNFT, endpoint.Args(tokenID, serialNumber))
}

// ListNFTTransactions returns the transfer history of one serial.
func (c *Client) ListNFTTransactions(
	ctx context.Context,
	tokenID string,
	serialNumber string,
	query NFTTransactionsQuery,
) (NFTTransactionsPage, error) {
	return endpoint.Invoke[NFTTransactionsPage](ctx, c.group, listNFTTransactions, endpoint.Call{
		Args:  []string{tokenID, serialNumber},
		Query: query,
	})
}
