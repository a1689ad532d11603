package status

import (
	"github.com/hashgraph-online/hedera-rest-sdk-go/pkg/endpoint"
	"github.com/hashgraph-online/hedera-rest-sdk-go/pkg/mirror"
)

type SupplyQuery struct {
	Timestamp string `url:"timestamp,omitempty"`
}

type ExchangeRateQuery struct {
	Timestamp string `url:"timestamp,omitempty"`
}

type FeesQuery struct {
	Order     endpoint.Order `url:"order,omitempty"`
	Timestamp string         `url:"timestamp,omitempty"`
}

// BlocksQuery filters block listings. BlockNumber and Timestamp accept the
// mirror operator syntax ("gte:100").
type BlocksQuery struct {
	BlockNumber string         `url:"blockNumber,omitempty"`
	Timestamp   string         `url:"timestamp,omitempty"`
	Limit       int            `url:"limit,omitempty"`
	Order       endpoint.Order `url:"order,omitempty"`
}

// Supply amounts are tinybars rendered as decimal strings.
type Supply struct {
	ReleasedSupply string `json:"released_supply"`
	Timestamp      string `json:"timestamp"`
	TotalSupply    string `json:"total_supply"`
}

type ExchangeRate struct {
	CentEquivalent int64 `json:"cent_equivalent"`
	ExpirationTime int64 `json:"expiration_time"`
	HbarEquivalent int64 `json:"hbar_equivalent"`
}

type ExchangeRateSet struct {
	CurrentRate ExchangeRate `json:"current_rate"`
	NextRate    ExchangeRate `json:"next_rate"`
	Timestamp   string       `json:"timestamp"`
}

type Fee struct {
	Gas             int64  `json:"gas"`
	TransactionType string `json:"transaction_type"`
}

type FeeSchedule struct {
	CurrentRatio int64  `json:"current_ratio"`
	Fees         []Fee  `json:"fees"`
	Timestamp    string `json:"timestamp"`
}

type Block struct {
	Count        int64                 `json:"count"`
	GasUsed      int64                 `json:"gas_used"`
	HapiVersion  string                `json:"hapi_version"`
	Hash         string                `json:"hash"`
	LogsBloom    string                `json:"logs_bloom"`
	Name         string                `json:"name"`
	Number       int64                 `json:"number"`
	PreviousHash string                `json:"previous_hash"`
	Size         int64                 `json:"size"`
	Timestamp    mirror.TimestampRange `json:"timestamp"`
}

type BlocksPage struct {
	Blocks []Block        `json:"blocks"`
	Links  endpoint.Links `json:"links"`
}
