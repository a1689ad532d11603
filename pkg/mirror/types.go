package mirror

import "github.com/hashgraph-online/hedera-rest-sdk-go/pkg/endpoint"

// Key is a protobuf-encoded public key as rendered by the mirror API.
type Key struct {
	Type string `json:"_type"`
	Key  string `json:"key"`
}

type TimestampRange struct {
	From string  `json:"from"`
	To   *string `json:"to"`
}

type Transfer struct {
	Account    string `json:"account"`
	Amount     int64  `json:"amount"`
	IsApproval bool   `json:"is_approval"`
}

type TokenTransfer struct {
	TokenID    string `json:"token_id"`
	Account    string `json:"account"`
	Amount     int64  `json:"amount"`
	IsApproval bool   `json:"is_approval"`
}

type NFTTransfer struct {
	TokenID           string  `json:"token_id"`
	SerialNumber      int64   `json:"serial_number"`
	SenderAccountID   *string `json:"sender_account_id"`
	ReceiverAccountID *string `json:"receiver_account_id"`
	IsApproval        bool    `json:"is_approval"`
}

type Transaction struct {
	ChargedTxFee             int64           `json:"charged_tx_fee"`
	ConsensusTimestamp       string          `json:"consensus_timestamp"`
	EntityID                 *string         `json:"entity_id"`
	MaxFee                   string          `json:"max_fee"`
	MemoBase64               string          `json:"memo_base64"`
	Name                     string          `json:"name"`
	NFTTransfers             []NFTTransfer   `json:"nft_transfers"`
	Node                     *string         `json:"node"`
	Nonce                    int64           `json:"nonce"`
	ParentConsensusTimestamp *string         `json:"parent_consensus_timestamp"`
	Result                   string          `json:"result"`
	Scheduled                bool            `json:"scheduled"`
	TokenTransfers           []TokenTransfer `json:"token_transfers"`
	TransactionHash          string          `json:"transaction_hash"`
	TransactionID            string          `json:"transaction_id"`
	Transfers                []Transfer      `json:"transfers"`
	ValidDurationSeconds     string          `json:"valid_duration_seconds"`
	ValidStartTimestamp      string          `json:"valid_start_timestamp"`
}

type TransactionsPage struct {
	Transactions []Transaction  `json:"transactions"`
	Links        endpoint.Links `json:"links"`
}

type NFT struct {
	AccountID         string  `json:"account_id"`
	CreatedTimestamp  string  `json:"created_timestamp"`
	DelegatingSpender *string `json:"delegating_spender"`
	Deleted           bool    `json:"deleted"`
	Metadata          string  `json:"metadata"`
	ModifiedTimestamp string  `json:"modified_timestamp"`
	SerialNumber      int64   `json:"serial_number"`
	Spender           *string `json:"spender"`
	TokenID           string  `json:"token_id"`
}

type NFTsPage struct {
	NFTs  []NFT          `json:"nfts"`
	Links endpoint.Links `json:"links"`
}

type TopicMessage struct {
	ConsensusTimestamp string     `json:"consensus_timestamp"`
	ChunkInfo          *ChunkInfo `json:"chunk_info,omitempty"`
	Message            string     `json:"message"`
	PayerAccountID     string     `json:"payer_account_id"`
	RunningHash        string     `json:"running_hash"`
	RunningHashVersion int64      `json:"running_hash_version"`
	SequenceNumber     int64      `json:"sequence_number"`
	TopicID            string     `json:"topic_id"`
}

type ChunkInfo struct {
	InitialTransactionID any `json:"initial_transaction_id,omitempty"`
	Number               int `json:"number,omitempty"`
	Total                int `json:"total,omitempty"`
}

type TopicMessagesPage struct {
	Messages []TopicMessage `json:"messages"`
	Links    endpoint.Links `json:"links"`
}
