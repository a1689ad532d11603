package accounts

import (
	"github.com/hashgraph-online/hedera-rest-sdk-go/pkg/endpoint"
	"github.com/hashgraph-online/hedera-rest-sdk-go/pkg/mirror"
)

type CreateAccountRequest struct {
	PublicKey                     string `json:"publicKey,omitempty"`
	InitialBalance                int64  `json:"initialBalance,omitempty"`
	Memo                          string `json:"memo,omitempty"`
	MaxAutomaticTokenAssociations *int32 `json:"maxAutomaticTokenAssociations,omitempty"`
	ReceiverSignatureRequired     bool   `json:"receiverSignatureRequired,omitempty"`
	StakedNodeID                  *int64 `json:"stakedNodeId,omitempty"`
	StakedAccountID               string `json:"stakedAccountId,omitempty"`
	DeclineStakingReward          bool   `json:"declineStakingReward,omitempty"`
}

// UpdateAccountRequest leaves every nil field unchanged on the network.
type UpdateAccountRequest struct {
	PublicKey                     string  `json:"publicKey,omitempty"`
	Memo                          *string `json:"memo,omitempty"`
	MaxAutomaticTokenAssociations *int32  `json:"maxAutomaticTokenAssociations,omitempty"`
	ReceiverSignatureRequired     *bool   `json:"receiverSignatureRequired,omitempty"`
	StakedNodeID                  *int64  `json:"stakedNodeId,omitempty"`
	StakedAccountID               string  `json:"stakedAccountId,omitempty"`
	DeclineStakingReward          *bool   `json:"declineStakingReward,omitempty"`
}

type DeleteAccountRequest struct {
	TransferAccountID string `json:"transferAccountId"`
}

// HbarTransfer moves Amount tinybars; negative amounts debit.
type HbarTransfer struct {
	AccountID string `json:"accountId"`
	Amount    int64  `json:"amount"`
}

type TransferHbarRequest struct {
	Transfers []HbarTransfer `json:"transfers"`
	Memo      string         `json:"memo,omitempty"`
}

type ApproveHbarAllowanceRequest struct {
	SpenderAccountID string `json:"spenderAccountId"`
	Amount           int64  `json:"amount"`
}

type DeleteNFTAllowancesRequest struct {
	TokenID       string  `json:"tokenId"`
	SerialNumbers []int64 `json:"serialNumbers"`
}

// ListQuery filters mirror account listings. Filter values accept the
// mirror operator syntax, e.g. Balance: "gt:1000".
type ListQuery struct {
	AccountID string         `url:"accountId,omitempty"`
	Balance   string         `url:"balance,omitempty"`
	PublicKey string         `url:"publicKey,omitempty"`
	Limit     int            `url:"limit,omitempty"`
	Order     endpoint.Order `url:"order,omitempty"`
}

type DetailsQuery struct {
	Timestamp       string         `url:"timestamp,omitempty"`
	TransactionType string         `url:"transactionType,omitempty"`
	Limit           int            `url:"limit,omitempty"`
	Order           endpoint.Order `url:"order,omitempty"`
}

type NFTsQuery struct {
	Token        string         `url:"token,omitempty"`
	SerialNumber string         `url:"serialNumber,omitempty"`
	SpenderID    string         `url:"spenderId,omitempty"`
	Limit        int            `url:"limit,omitempty"`
	Order        endpoint.Order `url:"order,omitempty"`
}

type TokensQuery struct {
	Token string         `url:"token,omitempty"`
	Limit int            `url:"limit,omitempty"`
	Order endpoint.Order `url:"order,omitempty"`
}

type RewardsQuery struct {
	Timestamp string         `url:"timestamp,omitempty"`
	Limit     int            `url:"limit,omitempty"`
	Order     endpoint.Order `url:"order,omitempty"`
}

type CryptoAllowancesQuery struct {
	SpenderID string         `url:"spenderId,omitempty"`
	Limit     int            `url:"limit,omitempty"`
	Order     endpoint.Order `url:"order,omitempty"`
}

type TokenAllowancesQuery struct {
	SpenderID string         `url:"spenderId,omitempty"`
	Token     string         `url:"token,omitempty"`
	Limit     int            `url:"limit,omitempty"`
	Order     endpoint.Order `url:"order,omitempty"`
}

// NFTAllowancesQuery lists allowances granted by the account when Owner is
// true (the mirror default) and allowances granted to it when false.
type NFTAllowancesQuery struct {
	AccountID string         `url:"accountId,omitempty"`
	Owner     *bool          `url:"owner,omitempty"`
	Token     string         `url:"token,omitempty"`
	Limit     int            `url:"limit,omitempty"`
	Order     endpoint.Order `url:"order,omitempty"`
}

type TokenBalance struct {
	TokenID string `json:"token_id"`
	Balance int64  `json:"balance"`
}

type Balance struct {
	Balance   int64          `json:"balance"`
	Timestamp string         `json:"timestamp"`
	Tokens    []TokenBalance `json:"tokens"`
}

type Account struct {
	Account                       string      `json:"account"`
	Alias                         *string     `json:"alias"`
	AutoRenewPeriod               int64       `json:"auto_renew_period"`
	Balance                       *Balance    `json:"balance"`
	CreatedTimestamp              string      `json:"created_timestamp"`
	DeclineReward                 bool        `json:"decline_reward"`
	Deleted                       bool        `json:"deleted"`
	EthereumNonce                 int64       `json:"ethereum_nonce"`
	EvmAddress                    string      `json:"evm_address"`
	ExpiryTimestamp               string      `json:"expiry_timestamp"`
	Key                           *mirror.Key `json:"key"`
	MaxAutomaticTokenAssociations int32       `json:"max_automatic_token_associations"`
	Memo                          string      `json:"memo"`
	PendingReward                 int64       `json:"pending_reward"`
	ReceiverSigRequired           bool        `json:"receiver_sig_required"`
	StakedAccountID               *string     `json:"staked_account_id"`
	StakedNodeID                  *int64      `json:"staked_node_id"`
	StakePeriodStart              *string     `json:"stake_period_start"`
}

type AccountsPage struct {
	Accounts []Account      `json:"accounts"`
	Links    endpoint.Links `json:"links"`
}

// AccountDetails is an account plus a page of its transactions.
type AccountDetails struct {
	Account
	Transactions []mirror.Transaction `json:"transactions"`
	Links        endpoint.Links       `json:"links"`
}

type TokenRelationship struct {
	AutomaticAssociation bool   `json:"automatic_association"`
	Balance              int64  `json:"balance"`
	CreatedTimestamp     string `json:"created_timestamp"`
	Decimals             int64  `json:"decimals"`
	FreezeStatus         string `json:"freeze_status"`
	KYCStatus            string `json:"kyc_status"`
	TokenID              string `json:"token_id"`
}

type TokenRelationshipsPage struct {
	Tokens []TokenRelationship `json:"tokens"`
	Links  endpoint.Links      `json:"links"`
}

type StakingReward struct {
	AccountID string `json:"account_id"`
	Amount    int64  `json:"amount"`
	Timestamp string `json:"timestamp"`
}

type RewardsPage struct {
	Rewards []StakingReward `json:"rewards"`
	Links   endpoint.Links  `json:"links"`
}

type CryptoAllowance struct {
	AmountGranted int64                 `json:"amount_granted"`
	Amount        int64                 `json:"amount"`
	Owner         string                `json:"owner"`
	Spender       string                `json:"spender"`
	Timestamp     mirror.TimestampRange `json:"timestamp"`
}

type CryptoAllowancesPage struct {
	Allowances []CryptoAllowance `json:"allowances"`
	Links      endpoint.Links    `json:"links"`
}

type TokenAllowance struct {
	CryptoAllowance
	TokenID string `json:"token_id"`
}

type TokenAllowancesPage struct {
	Allowances []TokenAllowance `json:"allowances"`
	Links      endpoint.Links   `json:"links"`
}

type NFTAllowance struct {
	ApprovedForAll bool                  `json:"approved_for_all"`
	Owner          string                `json:"owner"`
	Spender        string                `json:"spender"`
	TokenID        string                `json:"token_id"`
	Timestamp      mirror.TimestampRange `json:"timestamp"`
}

type NFTAllowancesPage struct {
	Allowances []NFTAllowance `json:"allowances"`
	Links      endpoint.Links `json:"links"`
}
