package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/hashgraph-online/hedera-rest-sdk-go/pkg/client"
	"github.com/hashgraph-online/hedera-rest-sdk-go/pkg/endpoint"
	"github.com/hashgraph-online/hedera-rest-sdk-go/pkg/status"
)

func newStatusCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Node health, supply, exchange rate, fees and blocks",
	}

	var timestamp string
	supply := &cobra.Command{
		Use:   "supply",
		Short: "Show released and total hbar supply",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return call(a, cmd, func(ctx context.Context, c *client.Client) (status.Supply, error) {
				return c.Status.Supply(ctx, status.SupplyQuery{Timestamp: timestamp})
			})
		},
	}
	supply.Flags().StringVar(&timestamp, "timestamp", "", "consensus timestamp filter, e.g. lt:1700000000")

	var rateTimestamp string
	exchangeRate := &cobra.Command{
		Use:   "exchange-rate",
		Short: "Show the current and next hbar exchange rate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return call(a, cmd, func(ctx context.Context, c *client.Client) (status.ExchangeRateSet, error) {
				return c.Status.ExchangeRate(ctx, status.ExchangeRateQuery{Timestamp: rateTimestamp})
			})
		},
	}
	exchangeRate.Flags().StringVar(&rateTimestamp, "timestamp", "", "consensus timestamp filter")

	var blocksQuery status.BlocksQuery
	var blocksOrder string
	blocks := &cobra.Command{
		Use:   "blocks",
		Short: "List blocks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			blocksQuery.Order = endpoint.Order(blocksOrder)
			return call(a, cmd, func(ctx context.Context, c *client.Client) (status.BlocksPage, error) {
				return c.Status.ListBlocks(ctx, blocksQuery)
			})
		},
	}
	blocks.Flags().StringVar(&blocksQuery.BlockNumber, "number", "", "block number filter, e.g. gte:100")
	blocks.Flags().StringVar(&blocksQuery.Timestamp, "timestamp", "", "timestamp filter")
	addPageFlags(blocks, &blocksQuery.Limit, &blocksOrder)

	cmd.AddCommand(
		&cobra.Command{
			Use:   "health",
			Short: "Check that the primary API is serving",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return call(a, cmd, func(ctx context.Context, c *client.Client) (endpoint.JSONObject, error) {
					return c.Status.Health(ctx)
				})
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Show the primary API version",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return call(a, cmd, func(ctx context.Context, c *client.Client) (endpoint.JSONObject, error) {
					return c.Status.Version(ctx)
				})
			},
		},
		supply,
		exchangeRate,
		&cobra.Command{
			Use:   "fees",
			Short: "Show the current fee schedule",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return call(a, cmd, func(ctx context.Context, c *client.Client) (status.FeeSchedule, error) {
					return c.Status.Fees(ctx, status.FeesQuery{})
				})
			},
		},
		blocks,
		&cobra.Command{
			Use:   "block <hash-or-number>",
			Short: "Show one block",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return call(a, cmd, func(ctx context.Context, c *client.Client) (status.Block, error) {
					return c.Status.GetBlock(ctx, args[0])
				})
			},
		},
	)
	return cmd
}

// addPageFlags registers the --limit and --order flags of mirror listings.
func addPageFlags(cmd *cobra.Command, limit *int, order *string) {
	cmd.Flags().IntVar(limit, "limit", 0, "maximum number of results (server default when 0)")
	cmd.Flags().StringVar(order, "order", "", "sort order: asc or desc")
}
