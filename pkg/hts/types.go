package hts

import (
	"github.com/hashgraph-online/hedera-rest-sdk-go/pkg/endpoint"
	"github.com/hashgraph-online/hedera-rest-sdk-go/pkg/mirror"
)

// TokenKeys holds the optional role keys of a token as DER hex strings.
type TokenKeys struct {
	AdminKey       string `json:"adminKey,omitempty"`
	SupplyKey      string `json:"supplyKey,omitempty"`
	FreezeKey      string `json:"freezeKey,omitempty"`
	KYCKey         string `json:"kycKey,omitempty"`
	WipeKey        string `json:"wipeKey,omitempty"`
	PauseKey       string `json:"pauseKey,omitempty"`
	FeeScheduleKey string `json:"feeScheduleKey,omitempty"`
	MetadataKey    string `json:"metadataKey,omitempty"`
}

type CreateTokenRequest struct {
	TokenKeys
	Name              string `json:"name"`
	Symbol            string `json:"symbol"`
	Decimals          int    `json:"decimals"`
	InitialSupply     int64  `json:"initialSupply"`
	TreasuryAccountID string `json:"treasuryAccountId"`
	SupplyType        string `json:"supplyType,omitempty"`
	MaxSupply         int64  `json:"maxSupply,omitempty"`
	FreezeDefault     bool   `json:"freezeDefault,omitempty"`
	Memo              string `json:"memo,omitempty"`
}

type CreateNFTRequest struct {
	TokenKeys
	Name              string `json:"name"`
	Symbol            string `json:"symbol"`
	TreasuryAccountID string `json:"treasuryAccountId"`
	SupplyType        string `json:"supplyType,omitempty"`
	MaxSupply         int64  `json:"maxSupply,omitempty"`
	Memo              string `json:"memo,omitempty"`
}

type MintTokenRequest struct {
	TokenID string `json:"tokenId"`
	Amount  int64  `json:"amount"`
}

// MintNFTRequest mints one serial per metadata entry.
type MintNFTRequest struct {
	TokenID  string   `json:"tokenId"`
	Metadata []string `json:"metadata"`
}

type BurnTokenRequest struct {
	TokenID string `json:"tokenId"`
	Amount  int64  `json:"amount"`
}

type BurnNFTRequest struct {
	TokenID       string  `json:"tokenId"`
	SerialNumbers []int64 `json:"serialNumbers"`
}

type TransferTokenRequest struct {
	TokenID       string `json:"tokenId"`
	FromAccountID string `json:"fromAccountId"`
	ToAccountID   string `json:"toAccountId"`
	Amount        int64  `json:"amount"`
	Memo          string `json:"memo,omitempty"`
}

type TransferNFTRequest struct {
	TokenID       string `json:"tokenId"`
	SerialNumber  int64  `json:"serialNumber"`
	FromAccountID string `json:"fromAccountId"`
	ToAccountID   string `json:"toAccountId"`
	Memo          string `json:"memo,omitempty"`
}

// AssociationRequest associates or dissociates AccountID with TokenIDs.
type AssociationRequest struct {
	AccountID string   `json:"accountId"`
	TokenIDs  []string `json:"tokenIds"`
}

// AccountTokenRequest addresses one account's relationship with one token.
// Freeze, unfreeze and both KYC operations take it.
type AccountTokenRequest struct {
	TokenID   string `json:"tokenId"`
	AccountID string `json:"accountId"`
}

type WipeRequest struct {
	TokenID   string `json:"tokenId"`
	AccountID string `json:"accountId"`
	Amount    int64  `json:"amount"`
}

type ApproveTokenAllowanceRequest struct {
	TokenID          string `json:"tokenId"`
	OwnerAccountID   string `json:"ownerAccountId"`
	SpenderAccountID string `json:"spenderAccountId"`
	Amount           int64  `json:"amount"`
}

// ApproveNFTAllowanceRequest approves either the listed serials or, with
// ApprovedForAll, every serial the owner holds.
type ApproveNFTAllowanceRequest struct {
	TokenID          string  `json:"tokenId"`
	OwnerAccountID   string  `json:"ownerAccountId"`
	SpenderAccountID string  `json:"spenderAccountId"`
	SerialNumbers    []int64 `json:"serialNumbers,omitempty"`
	ApprovedForAll   bool    `json:"approvedForAll,omitempty"`
}

// UpdateTokenRequest leaves every empty field unchanged on the network.
type UpdateTokenRequest struct {
	TokenKeys
	Name              string  `json:"name,omitempty"`
	Symbol            string  `json:"symbol,omitempty"`
	TreasuryAccountID string  `json:"treasuryAccountId,omitempty"`
	Memo              *string `json:"memo,omitempty"`
	Metadata          string  `json:"metadata,omitempty"`
}

type ListTokensQuery struct {
	AccountID string         `url:"accountId,omitempty"`
	Name      string         `url:"name,omitempty"`
	PublicKey string         `url:"publicKey,omitempty"`
	TokenID   string         `url:"tokenId,omitempty"`
	Type      string         `url:"type,omitempty"`
	Limit     int            `url:"limit,omitempty"`
	Order     endpoint.Order `url:"order,omitempty"`
}

type TokenQuery struct {
	Timestamp string `url:"timestamp,omitempty"`
}

// BalancesQuery filters a token's holder balances. AccountBalance accepts
// the mirror operator syntax ("gte:100").
type BalancesQuery struct {
	AccountBalance   string         `url:"accountBalance,omitempty"`
	AccountID        string         `url:"accountId,omitempty"`
	AccountPublicKey string         `url:"accountPublicKey,omitempty"`
	Limit            int            `url:"limit,omitempty"`
	Order            endpoint.Order `url:"order,omitempty"`
	Timestamp        string         `url:"timestamp,omitempty"`
}

type NFTsQuery struct {
	AccountID    string         `url:"accountId,omitempty"`
	SerialNumber string         `url:"serialNumber,omitempty"`
	Limit        int            `url:"limit,omitempty"`
	Order        endpoint.Order `url:"order,omitempty"`
}

type NFTTransactionsQuery struct {
	Timestamp string         `url:"timestamp,omitempty"`
	Limit     int            `url:"limit,omitempty"`
	Order     endpoint.Order `url:"order,omitempty"`
}

type TokenSummary struct {
	AdminKey *mirror.Key `json:"admin_key"`
	Decimals string      `json:"decimals"`
	Metadata string      `json:"metadata"`
	Name     string      `json:"name"`
	Symbol   string      `json:"symbol"`
	TokenID  string      `json:"token_id"`
	Type     string      `json:"type"`
}

type TokensPage struct {
	Tokens []TokenSummary `json:"tokens"`
	Links  endpoint.Links `json:"links"`
}

type CustomFees struct {
	CreatedTimestamp string `json:"created_timestamp"`
	FixedFees        []any  `json:"fixed_fees"`
	FractionalFees   []any  `json:"fractional_fees"`
	RoyaltyFees      []any  `json:"royalty_fees"`
}

// Token is the full mirror view of a token. Supply figures are decimal
// strings in the token's smallest unit.
type Token struct {
	AdminKey          *mirror.Key `json:"admin_key"`
	AutoRenewAccount  *string     `json:"auto_renew_account"`
	AutoRenewPeriod   *int64      `json:"auto_renew_period"`
	CreatedTimestamp  string      `json:"created_timestamp"`
	CustomFees        *CustomFees `json:"custom_fees"`
	Decimals          string      `json:"decimals"`
	Deleted           bool        `json:"deleted"`
	ExpiryTimestamp   *int64      `json:"expiry_timestamp"`
	FeeScheduleKey    *mirror.Key `json:"fee_schedule_key"`
	FreezeDefault     bool        `json:"freeze_default"`
	FreezeKey         *mirror.Key `json:"freeze_key"`
	InitialSupply     string      `json:"initial_supply"`
	KYCKey            *mirror.Key `json:"kyc_key"`
	MaxSupply         string      `json:"max_supply"`
	Memo              string      `json:"memo"`
	Metadata          string      `json:"metadata"`
	MetadataKey       *mirror.Key `json:"metadata_key"`
	ModifiedTimestamp string      `json:"modified_timestamp"`
	Name              string      `json:"name"`
	PauseKey          *mirror.Key `json:"pause_key"`
	PauseStatus       string      `json:"pause_status"`
	SupplyKey         *mirror.Key `json:"supply_key"`
	SupplyType        string      `json:"supply_type"`
	Symbol            string      `json:"symbol"`
	TokenID           string      `json:"token_id"`
	TotalSupply       string      `json:"total_supply"`
	TreasuryAccountID string      `json:"treasury_account_id"`
	Type              string      `json:"type"`
	WipeKey           *mirror.Key `json:"wipe_key"`
}

type AccountBalance struct {
	Account  string `json:"account"`
	Balance  int64  `json:"balance"`
	Decimals int64  `json:"decimals"`
}

type BalancesPage struct {
	Timestamp string           `json:"timestamp"`
	Balances  []AccountBalance `json:"balances"`
	Links     endpoint.Links   `json:"links"`
}

// NFTTransaction is one entry of an NFT's transfer history.
type NFTTransaction struct {
	ConsensusTimestamp string  `json:"consensus_timestamp"`
	IsApproval         bool    `json:"is_approval"`
	Nonce              int64   `json:"nonce"`
	ReceiverAccountID  *string `json:"receiver_account_id"`
	SenderAccountID    *string `json:"sender_account_id"`
	TransactionID      string  `json:"transaction_id"`
	Type               string  `json:"type"`
}

type NFTTransactionsPage struct {
	Transactions []NFTTransaction `json:"transactions"`
	Links        endpoint.Links   `json:"links"`
}
