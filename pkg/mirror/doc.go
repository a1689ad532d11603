// Package mirror holds the response models shared by the mirror side of the
// ledger REST API ("mirrors/..." paths): transactions and transfers, NFTs
// and consensus topic messages, plus helpers that decode their base64
// payloads.
//
// The mirror API is the read-only, historical view of the Hedera public
// ledger. The endpoint groups return these types verbatim; nothing here
// talks to the network.
//
// # Hedera Mirror Node
//
// Learn more about Hedera: https://docs.hedera.com
package mirror
