// Package hts wraps the token service endpoints.
//
// Every token mutation (create, mint, burn, transfer, associate, freeze,
// KYC, pause, wipe, allowances, update, delete) goes through the primary
// API under "hts/...". Token listings, balances, NFTs and NFT history come
// from the mirror API under "mirrors/hts/...".
//
//	balances, err := client.HTS.GetTokenBalances(ctx, "0.0.500", hts.BalancesQuery{
//		AccountID: "0.0.1001",
//		Limit:     10,
//		Order:     endpoint.OrderDesc,
//	})
package hts
