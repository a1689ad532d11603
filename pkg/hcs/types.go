package hcs

import (
	"github.com/hashgraph-online/hedera-rest-sdk-go/pkg/endpoint"
	"github.com/hashgraph-online/hedera-rest-sdk-go/pkg/mirror"
)

// CreateTopicRequest creates a topic. Keys are DER-encoded public keys in
// hex; an empty SubmitKey leaves the topic open to any submitter.
type CreateTopicRequest struct {
	Memo               string `json:"memo,omitempty"`
	AdminKey           string `json:"adminKey,omitempty"`
	SubmitKey          string `json:"submitKey,omitempty"`
	AutoRenewAccountID string `json:"autoRenewAccountId,omitempty"`
	AutoRenewPeriod    int64  `json:"autoRenewPeriod,omitempty"`
}

type UpdateTopicRequest struct {
	Memo               *string `json:"memo,omitempty"`
	AdminKey           string  `json:"adminKey,omitempty"`
	SubmitKey          string  `json:"submitKey,omitempty"`
	AutoRenewAccountID string  `json:"autoRenewAccountId,omitempty"`
	AutoRenewPeriod    int64   `json:"autoRenewPeriod,omitempty"`
	ExpirationTime     string  `json:"expirationTime,omitempty"`
}

// SubmitMessageRequest carries one message. Messages above the network's
// chunk size are split by the service; MaxChunks caps that split.
type SubmitMessageRequest struct {
	Message   string `json:"message"`
	MaxChunks int    `json:"maxChunks,omitempty"`
}

// MessagesQuery filters topic messages. Encoding is "base64" (default) or
// "utf-8".
type MessagesQuery struct {
	SequenceNumber string         `url:"sequenceNumber,omitempty"`
	Timestamp      string         `url:"timestamp,omitempty"`
	Encoding       string         `url:"encoding,omitempty"`
	Limit          int            `url:"limit,omitempty"`
	Order          endpoint.Order `url:"order,omitempty"`
}

type Topic struct {
	AdminKey         *mirror.Key           `json:"admin_key"`
	AutoRenewAccount *string               `json:"auto_renew_account"`
	AutoRenewPeriod  int64                 `json:"auto_renew_period"`
	CreatedTimestamp string                `json:"created_timestamp"`
	Deleted          bool                  `json:"deleted"`
	Memo             string                `json:"memo"`
	SubmitKey        *mirror.Key           `json:"submit_key"`
	Timestamp        mirror.TimestampRange `json:"timestamp"`
	TopicID          string                `json:"topic_id"`
}
