// Package transactions submits signed transactions, manages scheduled
// transactions and queries transaction history.
//
// Receipts and records for a transaction the caller just submitted come from
// the primary API. Historical lookups, including child transactions selected
// by nonce and the scheduled variant of a transaction ID, come from the
// mirror API:
//
//	tx, err := client.Transactions.Get(ctx, "0.0.1001-1700000000-000000001", transactions.GetQuery{
//		Nonce:     endpoint.Int64(0),
//		Scheduled: endpoint.Bool(true),
//	})
package transactions
