package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/hashgraph-online/hedera-rest-sdk-go/pkg/client"
	"github.com/hashgraph-online/hedera-rest-sdk-go/pkg/endpoint"
	"github.com/hashgraph-online/hedera-rest-sdk-go/pkg/shared"
	"github.com/hashgraph-online/hedera-rest-sdk-go/pkg/validators"
)

func newValidatorsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validators",
		Short: "Consensus nodes and staking",
	}

	var nodesQuery validators.NodesQuery
	var nodesOrder string
	nodes := &cobra.Command{
		Use:   "nodes",
		Short: "List consensus nodes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			nodesQuery.Order = endpoint.Order(nodesOrder)
			return call(a, cmd, func(ctx context.Context, c *client.Client) (validators.NodesPage, error) {
				return c.Validators.ListNodes(ctx, nodesQuery)
			})
		},
	}
	nodes.Flags().StringVar(&nodesQuery.NodeID, "node-id", "", "node ID filter, e.g. gte:3")
	nodes.Flags().StringVar(&nodesQuery.FileID, "file-id", "", "address book file ID")
	addPageFlags(nodes, &nodesQuery.Limit, &nodesOrder)

	var nodeID int64
	var stakedAccount string
	var declineReward bool
	stake := &cobra.Command{
		Use:   "stake <account-id>",
		Short: "Stake an account to a node or another account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			accountID, err := a.entityID(shared.EntityAccount, args[0])
			if err != nil {
				return err
			}
			request := validators.StakeRequest{AccountID: accountID, DeclineStakingReward: declineReward}
			if cmd.Flags().Changed("node") {
				request.NodeID = endpoint.Int64(nodeID)
			}
			if stakedAccount != "" {
				if request.StakedAccountID, err = a.entityID(shared.EntityAccount, stakedAccount); err != nil {
					return err
				}
			}
			return call(a, cmd, func(ctx context.Context, c *client.Client) (endpoint.JSONObject, error) {
				return c.Validators.Stake(ctx, request)
			})
		},
	}
	stake.Flags().Int64Var(&nodeID, "node", 0, "node ID to stake to")
	stake.Flags().StringVar(&stakedAccount, "to-account", "", "account ID to stake to")
	stake.Flags().BoolVar(&declineReward, "decline-reward", false, "decline staking rewards")
	stake.MarkFlagsMutuallyExclusive("node", "to-account")
	stake.MarkFlagsOneRequired("node", "to-account")

	cmd.AddCommand(
		nodes,
		&cobra.Command{
			Use:   "node <node-id>",
			Short: "Show one consensus node",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return call(a, cmd, func(ctx context.Context, c *client.Client) (validators.Node, error) {
					return c.Validators.GetNode(ctx, args[0])
				})
			},
		},
		&cobra.Command{
			Use:   "network-stake",
			Short: "Show the network staking snapshot",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return call(a, cmd, func(ctx context.Context, c *client.Client) (validators.NetworkStake, error) {
					return c.Validators.GetNetworkStake(ctx)
				})
			},
		},
		&cobra.Command{
			Use:   "staking-info <account-id>",
			Short: "Show an account's staking election",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				accountID, err := a.entityID(shared.EntityAccount, args[0])
				if err != nil {
					return err
				}
				return call(a, cmd, func(ctx context.Context, c *client.Client) (endpoint.JSONObject, error) {
					return c.Validators.GetStakingInfo(ctx, accountID)
				})
			},
		},
		stake,
		&cobra.Command{
			Use:   "unstake <account-id>",
			Short: "Clear an account's staking election",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				accountID, err := a.entityID(shared.EntityAccount, args[0])
				if err != nil {
					return err
				}
				return call(a, cmd, func(ctx context.Context, c *client.Client) (endpoint.JSONObject, error) {
					return c.Validators.Unstake(ctx, validators.UnstakeRequest{AccountID: accountID})
				})
			},
		},
	)
	return cmd
}
