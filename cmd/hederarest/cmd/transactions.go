package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/hashgraph-online/hedera-rest-sdk-go/pkg/client"
	"github.com/hashgraph-online/hedera-rest-sdk-go/pkg/endpoint"
	"github.com/hashgraph-online/hedera-rest-sdk-go/pkg/mirror"
	"github.com/hashgraph-online/hedera-rest-sdk-go/pkg/shared"
	"github.com/hashgraph-online/hedera-rest-sdk-go/pkg/transactions"
)

func newTransactionsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transactions",
		Short: "Submit and inspect transactions",
	}

	var nonce int64
	var scheduled bool
	get := &cobra.Command{
		Use:   "get <transaction-id>",
		Short: "Show the transactions recorded under one transaction ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			transactionID, err := shared.MirrorTransactionID(args[0])
			if err != nil {
				return err
			}
			query := transactions.GetQuery{}
			if cmd.Flags().Changed("nonce") {
				query.Nonce = endpoint.Int64(nonce)
			}
			if cmd.Flags().Changed("scheduled") {
				query.Scheduled = endpoint.Bool(scheduled)
			}
			return call(a, cmd, func(ctx context.Context, c *client.Client) (transactions.TransactionDetails, error) {
				return c.Transactions.Get(ctx, transactionID, query)
			})
		},
	}
	get.Flags().Int64Var(&nonce, "nonce", 0, "select the child transaction with this nonce")
	get.Flags().BoolVar(&scheduled, "scheduled", false, "select the scheduled or the scheduling transaction")

	var listQuery transactions.ListQuery
	var listOrder, account string
	list := &cobra.Command{
		Use:   "list",
		Short: "List transactions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if account != "" {
				accountID, err := a.entityID(shared.EntityAccount, account)
				if err != nil {
					return err
				}
				listQuery.AccountID = accountID
			}
			listQuery.Order = endpoint.Order(listOrder)
			return call(a, cmd, func(ctx context.Context, c *client.Client) (mirror.TransactionsPage, error) {
				return c.Transactions.List(ctx, listQuery)
			})
		},
	}
	list.Flags().StringVar(&account, "account", "", "account ID filter")
	list.Flags().StringVar(&listQuery.TransactionType, "transaction-type", "", "transaction type, e.g. CRYPTOTRANSFER")
	list.Flags().StringVar(&listQuery.Result, "result", "", "success or fail")
	list.Flags().StringVar(&listQuery.Type, "type", "", "credit or debit")
	list.Flags().StringVar(&listQuery.Timestamp, "timestamp", "", "timestamp filter")
	addPageFlags(list, &listQuery.Limit, &listOrder)

	var transactionBytes string
	submit := &cobra.Command{
		Use:   "submit",
		Short: "Submit a signed, base64 encoded transaction",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return call(a, cmd, func(ctx context.Context, c *client.Client) (endpoint.JSONObject, error) {
				return c.Transactions.Submit(ctx, transactions.SubmitRequest{TransactionBytes: transactionBytes})
			})
		},
	}
	submit.Flags().StringVar(&transactionBytes, "bytes", "", "base64 encoded signed transaction")
	_ = submit.MarkFlagRequired("bytes")

	primaryLookup := func(use string, short string, fetch func(context.Context, *client.Client, string) (endpoint.JSONObject, error)) *cobra.Command {
		return &cobra.Command{
			Use:   use + " <transaction-id>",
			Short: short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return call(a, cmd, func(ctx context.Context, c *client.Client) (endpoint.JSONObject, error) {
					return fetch(ctx, c, args[0])
				})
			},
		}
	}

	cmd.AddCommand(
		get,
		list,
		submit,
		primaryLookup("receipt", "Show a transaction receipt", func(ctx context.Context, c *client.Client, id string) (endpoint.JSONObject, error) {
			return c.Transactions.GetReceipt(ctx, id)
		}),
		primaryLookup("record", "Show a transaction record", func(ctx context.Context, c *client.Client, id string) (endpoint.JSONObject, error) {
			return c.Transactions.GetRecord(ctx, id)
		}),
		&cobra.Command{
			Use:   "schedule <schedule-id>",
			Short: "Show a scheduled transaction",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				scheduleID, err := a.entityID(shared.EntitySchedule, args[0])
				if err != nil {
					return err
				}
				return call(a, cmd, func(ctx context.Context, c *client.Client) (transactions.Schedule, error) {
					return c.Transactions.GetSchedule(ctx, scheduleID)
				})
			},
		},
	)
	return cmd
}
