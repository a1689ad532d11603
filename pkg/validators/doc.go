// Package validators covers staking and consensus node information.
//
// Stake and Unstake change an account's staking election and go through the
// primary API. Node listings and the network-wide stake snapshot come from
// the mirror API.
package validators
