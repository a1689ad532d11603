package validators

import (
	"github.com/hashgraph-online/hedera-rest-sdk-go/pkg/endpoint"
	"github.com/hashgraph-online/hedera-rest-sdk-go/pkg/mirror"
)

// StakeRequest elects either a node or an account to stake to. Exactly one of
// NodeID and StakedAccountID should be set.
type StakeRequest struct {
	AccountID            string `json:"accountId"`
	NodeID               *int64 `json:"nodeId,omitempty"`
	StakedAccountID      string `json:"stakedAccountId,omitempty"`
	DeclineStakingReward bool   `json:"declineStakingReward,omitempty"`
}

type UnstakeRequest struct {
	AccountID string `json:"accountId"`
}

type NodesQuery struct {
	NodeID string         `url:"nodeId,omitempty"`
	FileID string         `url:"fileId,omitempty"`
	Limit  int            `url:"limit,omitempty"`
	Order  endpoint.Order `url:"order,omitempty"`
}

type ServiceEndpoint struct {
	DomainName  string `json:"domain_name"`
	IPAddressV4 string `json:"ip_address_v4"`
	Port        int    `json:"port"`
}

type Node struct {
	AdminKey         *mirror.Key           `json:"admin_key"`
	DeclineReward    bool                  `json:"decline_reward"`
	Description      string                `json:"description"`
	FileID           string                `json:"file_id"`
	MaxStake         int64                 `json:"max_stake"`
	Memo             string                `json:"memo"`
	MinStake         int64                 `json:"min_stake"`
	NodeAccountID    string                `json:"node_account_id"`
	NodeCertHash     string                `json:"node_cert_hash"`
	NodeID           int64                 `json:"node_id"`
	PublicKey        string                `json:"public_key"`
	RewardRateStart  int64                 `json:"reward_rate_start"`
	ServiceEndpoints []ServiceEndpoint     `json:"service_endpoints"`
	Stake            int64                 `json:"stake"`
	StakeNotRewarded int64                 `json:"stake_not_rewarded"`
	StakeRewarded    int64                 `json:"stake_rewarded"`
	StakingPeriod    mirror.TimestampRange `json:"staking_period"`
	Timestamp        mirror.TimestampRange `json:"timestamp"`
}

type NodesPage struct {
	Nodes []Node         `json:"nodes"`
	Links endpoint.Links `json:"links"`
}

// NetworkStake is the staking snapshot of the last completed staking period.
type NetworkStake struct {
	MaxStakeRewarded               int64                 `json:"max_stake_rewarded"`
	MaxStakingRewardRatePerHbar    int64                 `json:"max_staking_reward_rate_per_hbar"`
	MaxTotalReward                 int64                 `json:"max_total_reward"`
	NodeRewardFeeFraction          float64               `json:"node_reward_fee_fraction"`
	ReservedStakingRewards         int64                 `json:"reserved_staking_rewards"`
	RewardBalanceThreshold         int64                 `json:"reward_balance_threshold"`
	StakeTotal                     int64                 `json:"stake_total"`
	StakingPeriod                  mirror.TimestampRange `json:"staking_period"`
	StakingPeriodDuration          int64                 `json:"staking_period_duration"`
	StakingPeriodsStored           int64                 `json:"staking_periods_stored"`
	StakingRewardFeeFraction       float64               `json:"staking_reward_fee_fraction"`
	StakingRewardRate              int64                 `json:"staking_reward_rate"`
	StakingStartThreshold          int64                 `json:"staking_start_threshold"`
	UnreservedStakingRewardBalance int64                 `json:"unreserved_staking_reward_balance"`
}
