// Package shared provides the helpers that sit around the REST client rather
// than inside it: network normalization, entity and transaction ID parsing
// with checksum validation, key parsing, and loading client settings from
// the environment or a .env file.
//
// The endpoint groups never call into this package; the CLI and the
// examples use it to turn user input into the literal identifiers the REST
// paths expect.
//
// # Environment Variables
//
//	HEDERA_REST_URL      base URL of the REST API (required)
//	HEDERA_REST_API_KEY  sent as the x-api-key header
//	HEDERA_NETWORK       mainnet, testnet or previewnet (default testnet)
//
// Learn more about Hedera: https://docs.hedera.com
package shared
