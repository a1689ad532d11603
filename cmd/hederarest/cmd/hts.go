package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/hashgraph-online/hedera-rest-sdk-go/pkg/client"
	"github.com/hashgraph-online/hedera-rest-sdk-go/pkg/endpoint"
	"github.com/hashgraph-online/hedera-rest-sdk-go/pkg/hts"
	"github.com/hashgraph-online/hedera-rest-sdk-go/pkg/mirror"
	"github.com/hashgraph-online/hedera-rest-sdk-go/pkg/shared"
)

func newHTSCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hts",
		Short: "Tokens, balances and NFTs",
	}

	var listQuery hts.ListTokensQuery
	var listOrder string
	list := &cobra.Command{
		Use:   "list",
		Short: "List tokens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			listQuery.Order = endpoint.Order(listOrder)
			return call(a, cmd, func(ctx context.Context, c *client.Client) (hts.TokensPage, error) {
				return c.HTS.ListTokens(ctx, listQuery)
			})
		},
	}
	list.Flags().StringVar(&listQuery.Name, "name", "", "token name filter")
	list.Flags().StringVar(&listQuery.Type, "type", "", "FUNGIBLE_COMMON or NON_FUNGIBLE_UNIQUE")
	list.Flags().StringVar(&listQuery.AccountID, "account", "", "tokens associated with this account")
	addPageFlags(list, &listQuery.Limit, &listOrder)

	var tokenTimestamp string
	token := &cobra.Command{
		Use:   "token <token-id>",
		Short: "Show a token from the mirror API",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tokenID, err := a.entityID(shared.EntityToken, args[0])
			if err != nil {
				return err
			}
			return call(a, cmd, func(ctx context.Context, c *client.Client) (hts.Token, error) {
				return c.HTS.GetToken(ctx, tokenID, hts.TokenQuery{Timestamp: tokenTimestamp})
			})
		},
	}
	token.Flags().StringVar(&tokenTimestamp, "timestamp", "", "show the token as of this timestamp")

	var balancesQuery hts.BalancesQuery
	var balancesOrder, balancesAccount string
	balances := &cobra.Command{
		Use:   "balances <token-id>",
		Short: "List holder balances of a token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tokenID, err := a.entityID(shared.EntityToken, args[0])
			if err != nil {
				return err
			}
			if balancesAccount != "" {
				if balancesQuery.AccountID, err = a.entityID(shared.EntityAccount, balancesAccount); err != nil {
					return err
				}
			}
			balancesQuery.Order = endpoint.Order(balancesOrder)
			return call(a, cmd, func(ctx context.Context, c *client.Client) (hts.BalancesPage, error) {
				return c.HTS.GetTokenBalances(ctx, tokenID, balancesQuery)
			})
		},
	}
	balances.Flags().StringVar(&balancesAccount, "account", "", "only this account")
	balances.Flags().StringVar(&balancesQuery.AccountBalance, "balance", "", "balance filter, e.g. gt:0")
	balances.Flags().StringVar(&balancesQuery.Timestamp, "timestamp", "", "balances as of this timestamp")
	addPageFlags(balances, &balancesQuery.Limit, &balancesOrder)

	var nftsQuery hts.NFTsQuery
	var nftsOrder string
	nfts := &cobra.Command{
		Use:   "nfts <token-id>",
		Short: "List serials of an NFT token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tokenID, err := a.entityID(shared.EntityToken, args[0])
			if err != nil {
				return err
			}
			nftsQuery.Order = endpoint.Order(nftsOrder)
			return call(a, cmd, func(ctx context.Context, c *client.Client) (mirror.NFTsPage, error) {
				return c.HTS.ListNFTs(ctx, tokenID, nftsQuery)
			})
		},
	}
	nfts.Flags().StringVar(&nftsQuery.AccountID, "account", "", "only serials held by this account")
	addPageFlags(nfts, &nftsQuery.Limit, &nftsOrder)

	var historyQuery hts.NFTTransactionsQuery
	var historyOrder string
	history := &cobra.Command{
		Use:   "nft-history <token-id> <serial-number>",
		Short: "List the transfer history of one serial",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tokenID, err := a.entityID(shared.EntityToken, args[0])
			if err != nil {
				return err
			}
			historyQuery.Order = endpoint.Order(historyOrder)
			return call(a, cmd, func(ctx context.Context, c *client.Client) (hts.NFTTransactionsPage, error) {
				return c.HTS.ListNFTTransactions(ctx, tokenID, args[1], historyQuery)
			})
		},
	}
	addPageFlags(history, &historyQuery.Limit, &historyOrder)

	var associateAccount string
	var associateTokens []string
	associate := &cobra.Command{
		Use:   "associate",
		Short: "Associate an account with tokens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			accountID, err := a.entityID(shared.EntityAccount, associateAccount)
			if err != nil {
				return err
			}
			request := hts.AssociationRequest{AccountID: accountID}
			for _, raw := range associateTokens {
				tokenID, err := a.entityID(shared.EntityToken, raw)
				if err != nil {
					return err
				}
				request.TokenIDs = append(request.TokenIDs, tokenID)
			}
			return call(a, cmd, func(ctx context.Context, c *client.Client) (endpoint.JSONObject, error) {
				return c.HTS.Associate(ctx, request)
			})
		},
	}
	associate.Flags().StringVar(&associateAccount, "account", "", "account ID")
	associate.Flags().StringSliceVar(&associateTokens, "token", nil, "token ID, repeatable")
	_ = associate.MarkFlagRequired("account")
	_ = associate.MarkFlagRequired("token")

	cmd.AddCommand(
		list,
		token,
		balances,
		nfts,
		&cobra.Command{
			Use:   "nft <token-id> <serial-number>",
			Short: "Show one NFT serial",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				tokenID, err := a.entityID(shared.EntityToken, args[0])
				if err != nil {
					return err
				}
				return call(a, cmd, func(ctx context.Context, c *client.Client) (mirror.NFT, error) {
					return c.HTS.GetNFT(ctx, tokenID, args[1])
				})
			},
		},
		history,
		associate,
		&cobra.Command{
			Use:   "info <token-id>",
			Short: "Show a token as the network reports it",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				tokenID, err := a.entityID(shared.EntityToken, args[0])
				if err != nil {
					return err
				}
				return call(a, cmd, func(ctx context.Context, c *client.Client) (endpoint.JSONObject, error) {
					return c.HTS.GetTokenInfo(ctx, tokenID)
				})
			},
		},
	)
	return cmd
}
