// Package accounts wraps the account endpoints of the ledger REST API.
//
// Creating, updating, deleting and funding accounts goes through the
// primary API ("accounts/..."). Listings and history (NFTs, token
// relationships, staking rewards, allowances) come from the mirror API
// ("mirrors/accounts/...").
//
//	info, err := client.Accounts.GetInfo(ctx, "0.0.1001")
//
//	nfts, err := client.Accounts.ListNFTs(ctx, "0.0.1001", accounts.NFTsQuery{
//		Token: "0.0.500",
//		Limit: 25,
//	})
package accounts
