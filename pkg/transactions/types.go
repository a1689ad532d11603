package transactions

import (
	"github.com/hashgraph-online/hedera-rest-sdk-go/pkg/endpoint"
	"github.com/hashgraph-online/hedera-rest-sdk-go/pkg/mirror"
)

// SubmitRequest carries a signed, protobuf-serialized transaction.
type SubmitRequest struct {
	TransactionBytes string `json:"transactionBytes"`
}

type CreateScheduleRequest struct {
	TransactionBytes string `json:"transactionBytes"`
	PayerAccountID   string `json:"payerAccountId,omitempty"`
	AdminKey         string `json:"adminKey,omitempty"`
	Memo             string `json:"memo,omitempty"`
	ExpirationTime   string `json:"expirationTime,omitempty"`
	WaitForExpiry    bool   `json:"waitForExpiry,omitempty"`
}

type SignScheduleRequest struct {
	Signatures []string `json:"signatures,omitempty"`
}

// ListQuery filters transaction history. Type selects "credit" or "debit"
// relative to AccountID.
type ListQuery struct {
	AccountID       string         `url:"accountId,omitempty"`
	Timestamp       string         `url:"timestamp,omitempty"`
	TransactionType string         `url:"transactionType,omitempty"`
	Result          string         `url:"result,omitempty"`
	Type            string         `url:"type,omitempty"`
	Limit           int            `url:"limit,omitempty"`
	Order           endpoint.Order `url:"order,omitempty"`
}

// GetQuery narrows a transaction ID lookup. Both fields are attached only
// when set; a zero nonce selects the parent transaction explicitly.
type GetQuery struct {
	Nonce     *int64 `url:"nonce,omitempty"`
	Scheduled *bool  `url:"scheduled,omitempty"`
}

type SchedulesQuery struct {
	AccountID  string         `url:"accountId,omitempty"`
	ScheduleID string         `url:"scheduleId,omitempty"`
	Limit      int            `url:"limit,omitempty"`
	Order      endpoint.Order `url:"order,omitempty"`
}

// TransactionDetails holds every transaction sharing one transaction ID:
// the parent plus any child or scheduled transactions.
type TransactionDetails struct {
	Transactions []mirror.Transaction `json:"transactions"`
}

type ScheduleSignature struct {
	ConsensusTimestamp string `json:"consensus_timestamp"`
	PublicKeyPrefix    string `json:"public_key_prefix"`
	Signature          string `json:"signature"`
	Type               string `json:"type"`
}

type Schedule struct {
	AdminKey           *mirror.Key         `json:"admin_key"`
	ConsensusTimestamp string              `json:"consensus_timestamp"`
	CreatorAccountID   string              `json:"creator_account_id"`
	Deleted            bool                `json:"deleted"`
	ExecutedTimestamp  *string             `json:"executed_timestamp"`
	ExpirationTime     *string             `json:"expiration_time"`
	Memo               string              `json:"memo"`
	PayerAccountID     string              `json:"payer_account_id"`
	ScheduleID         string              `json:"schedule_id"`
	Signatures         []ScheduleSignature `json:"signatures"`
	TransactionBody    string              `json:"transaction_body"`
	WaitForExpiry      bool                `json:"wait_for_expiry"`
}

type SchedulesPage struct {
	Schedules []Schedule     `json:"schedules"`
	Links     endpoint.Links `json:"links"`
}
