// Package status wraps the node status endpoints: liveness and version from
// the primary API, and supply, exchange rate, fee schedule and block
// history from the mirror API.
package status
