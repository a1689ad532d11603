package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hashgraph-online/hedera-rest-sdk-go/pkg/accounts"
	"github.com/hashgraph-online/hedera-rest-sdk-go/pkg/client"
	"github.com/hashgraph-online/hedera-rest-sdk-go/pkg/endpoint"
	"github.com/hashgraph-online/hedera-rest-sdk-go/pkg/mirror"
	"github.com/hashgraph-online/hedera-rest-sdk-go/pkg/shared"
)

func newAccountsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Create, fund and inspect accounts",
	}

	// accountCommand builds a command taking one account ID argument.
	accountCommand := func(use string, short string, run func(*cobra.Command, string) error) *cobra.Command {
		return &cobra.Command{
			Use:   use + " <account-id>",
			Short: short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				accountID, err := a.entityID(shared.EntityAccount, args[0])
				if err != nil {
					return err
				}
				return run(cmd, accountID)
			},
		}
	}

	info := accountCommand("info", "Show account info from the network", func(cmd *cobra.Command, accountID string) error {
		return call(a, cmd, func(ctx context.Context, c *client.Client) (endpoint.JSONObject, error) {
			return c.Accounts.GetInfo(ctx, accountID)
		})
	})
	balance := accountCommand("balance", "Show hbar and token balances", func(cmd *cobra.Command, accountID string) error {
		return call(a, cmd, func(ctx context.Context, c *client.Client) (endpoint.JSONObject, error) {
			return c.Accounts.GetBalance(ctx, accountID)
		})
	})

	var detailsQuery accounts.DetailsQuery
	var detailsOrder string
	details := accountCommand("details", "Show the mirror view of an account with recent transactions",
		func(cmd *cobra.Command, accountID string) error {
			detailsQuery.Order = endpoint.Order(detailsOrder)
			return call(a, cmd, func(ctx context.Context, c *client.Client) (accounts.AccountDetails, error) {
				return c.Accounts.GetDetails(ctx, accountID, detailsQuery)
			})
		})
	details.Flags().StringVar(&detailsQuery.TransactionType, "transaction-type", "", "transaction type filter")
	details.Flags().StringVar(&detailsQuery.Timestamp, "timestamp", "", "timestamp filter")
	addPageFlags(details, &detailsQuery.Limit, &detailsOrder)

	var nftsQuery accounts.NFTsQuery
	var nftsOrder string
	nfts := accountCommand("nfts", "List NFTs held by an account", func(cmd *cobra.Command, accountID string) error {
		nftsQuery.Order = endpoint.Order(nftsOrder)
		return call(a, cmd, func(ctx context.Context, c *client.Client) (mirror.NFTsPage, error) {
			return c.Accounts.ListNFTs(ctx, accountID, nftsQuery)
		})
	})
	nfts.Flags().StringVar(&nftsQuery.Token, "token", "", "token ID filter")
	addPageFlags(nfts, &nftsQuery.Limit, &nftsOrder)

	var tokensQuery accounts.TokensQuery
	var tokensOrder string
	tokens := accountCommand("tokens", "List token relationships of an account", func(cmd *cobra.Command, accountID string) error {
		tokensQuery.Order = endpoint.Order(tokensOrder)
		return call(a, cmd, func(ctx context.Context, c *client.Client) (accounts.TokenRelationshipsPage, error) {
			return c.Accounts.ListTokens(ctx, accountID, tokensQuery)
		})
	})
	tokens.Flags().StringVar(&tokensQuery.Token, "token", "", "token ID filter")
	addPageFlags(tokens, &tokensQuery.Limit, &tokensOrder)

	var listQuery accounts.ListQuery
	var listOrder string
	list := &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			listQuery.Order = endpoint.Order(listOrder)
			return call(a, cmd, func(ctx context.Context, c *client.Client) (accounts.AccountsPage, error) {
				return c.Accounts.List(ctx, listQuery)
			})
		},
	}
	list.Flags().StringVar(&listQuery.Balance, "balance", "", "balance filter, e.g. gt:1000")
	list.Flags().StringVar(&listQuery.PublicKey, "public-key", "", "public key filter")
	addPageFlags(list, &listQuery.Limit, &listOrder)

	var createRequest accounts.CreateAccountRequest
	var privateKey, keyType string
	create := &cobra.Command{
		Use:   "create",
		Short: "Create an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if privateKey != "" {
				parsedType, err := shared.ParseKeyType(keyType)
				if err != nil {
					return err
				}
				publicKey, err := shared.PublicKeyFromPrivate(privateKey, parsedType)
				if err != nil {
					return err
				}
				createRequest.PublicKey = publicKey
			}
			if createRequest.PublicKey == "" {
				return fmt.Errorf("one of --public-key or --private-key is required")
			}
			return call(a, cmd, func(ctx context.Context, c *client.Client) (endpoint.JSONObject, error) {
				return c.Accounts.Create(ctx, createRequest)
			})
		},
	}
	create.Flags().StringVar(&createRequest.PublicKey, "public-key", "", "DER hex public key of the new account")
	create.Flags().StringVar(&privateKey, "private-key", "", "derive the public key from this private key")
	create.Flags().StringVar(&keyType, "key-type", "auto", "algorithm of a raw --private-key: auto, ed25519 or ecdsa")
	create.Flags().Int64Var(&createRequest.InitialBalance, "initial-balance", 0, "initial balance in tinybars")
	create.Flags().StringVar(&createRequest.Memo, "memo", "", "account memo")
	create.MarkFlagsMutuallyExclusive("public-key", "private-key")

	var from, to string
	var amount int64
	var memo string
	transfer := &cobra.Command{
		Use:   "transfer",
		Short: "Transfer hbar between two accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if amount <= 0 {
				return fmt.Errorf("--amount must be positive")
			}
			fromID, err := a.entityID(shared.EntityAccount, from)
			if err != nil {
				return err
			}
			toID, err := a.entityID(shared.EntityAccount, to)
			if err != nil {
				return err
			}
			request := accounts.TransferHbarRequest{
				Transfers: []accounts.HbarTransfer{
					{AccountID: fromID, Amount: -amount},
					{AccountID: toID, Amount: amount},
				},
				Memo: memo,
			}
			return call(a, cmd, func(ctx context.Context, c *client.Client) (endpoint.JSONObject, error) {
				return c.Accounts.TransferHbar(ctx, request)
			})
		},
	}
	transfer.Flags().StringVar(&from, "from", "", "sending account ID")
	transfer.Flags().StringVar(&to, "to", "", "receiving account ID")
	transfer.Flags().Int64Var(&amount, "amount", 0, "amount in tinybars")
	transfer.Flags().StringVar(&memo, "memo", "", "transaction memo")
	_ = transfer.MarkFlagRequired("from")
	_ = transfer.MarkFlagRequired("to")
	_ = transfer.MarkFlagRequired("amount")

	cmd.AddCommand(info, balance, details, nfts, tokens, list, create, transfer)
	return cmd
}
