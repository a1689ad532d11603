// The Hedera REST SDK for Go is a typed client for a Hedera ledger REST
// gateway. The gateway exposes two families of endpoints: the primary API,
// which talks to the live network and performs mutations, and the mirror
// API under "mirrors/", which serves historical and list data from a
// mirror node.
//
// # Packages
//
//   - client: the facade. One shared transport, six endpoint groups.
//   - status: network health, supply, exchange rates, fees and blocks.
//   - validators: node listings and staking.
//   - accounts: account lifecycle, transfers, allowances and balances.
//   - transactions: submission, receipts, records and schedules.
//   - hcs: consensus topics and messages.
//   - hts: fungible tokens and NFTs.
//   - transport: the HTTP transport and its error type.
//   - endpoint: operation descriptors and the request pipeline they share.
//   - mirror: response models shared by the mirror endpoints.
//   - shared: entity ID parsing, network names and environment config.
//   - logging: zap logger construction.
//
// The hederarest command in cmd/hederarest wraps the read side of every
// group for use from a shell.
//
// # Documentation
//
// Hedera documentation: https://docs.hedera.com
//
// Mirror node REST API: https://docs.hedera.com/hedera/sdks-and-apis/rest-api
//
// # Installation
//
//	go get github.com/hashgraph-online/hedera-rest-sdk-go@latest
package hedera_rest_sdk_go
