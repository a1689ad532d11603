package shared

import (
	"errors"
	"fmt"
	"strings"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
)

// KeyType selects how a raw 32 byte private key is read. DER encoded keys
// carry their algorithm and ignore it.
type KeyType string

const (
	KeyTypeAuto    KeyType = ""
	KeyTypeED25519 KeyType = "ed25519"
	KeyTypeECDSA   KeyType = "ecdsa"
)

const rawKeyHexLength = 64

// ParseKeyType normalizes a user supplied key type name.
func ParseKeyType(raw string) (KeyType, error) {
	switch KeyType(strings.ToLower(strings.TrimSpace(raw))) {
	case KeyTypeAuto, "auto":
		return KeyTypeAuto, nil
	case KeyTypeED25519:
		return KeyTypeED25519, nil
	case KeyTypeECDSA, "secp256k1":
		return KeyTypeECDSA, nil
	default:
		return "", fmt.Errorf("unsupported key type %q", raw)
	}
}

// ParsePrivateKey reads a hex private key, with or without a 0x prefix.
// DER encoded keys are recognised by length. A raw key is read as keyType;
// KeyTypeAuto tries ED25519 before ECDSA.
func ParsePrivateKey(raw string, keyType KeyType) (hedera.PrivateKey, error) {
	candidate := strings.TrimPrefix(strings.TrimSpace(raw), "0x")
	if candidate == "" {
		return hedera.PrivateKey{}, fmt.Errorf("private key cannot be empty")
	}

	if len(candidate) > rawKeyHexLength {
		key, err := hedera.PrivateKeyFromStringDer(candidate)
		if err != nil {
			return hedera.PrivateKey{}, fmt.Errorf("failed to parse DER private key: %w", err)
		}
		return key, nil
	}

	switch keyType {
	case KeyTypeED25519:
		return parseRaw(candidate, keyType, hedera.PrivateKeyFromStringEd25519)
	case KeyTypeECDSA:
		return parseRaw(candidate, keyType, hedera.PrivateKeyFromStringECDSA)
	case KeyTypeAuto:
		key, edErr := parseRaw(candidate, KeyTypeED25519, hedera.PrivateKeyFromStringEd25519)
		if edErr == nil {
			return key, nil
		}
		key, ecdsaErr := parseRaw(candidate, KeyTypeECDSA, hedera.PrivateKeyFromStringECDSA)
		if ecdsaErr == nil {
			return key, nil
		}
		return hedera.PrivateKey{}, errors.Join(edErr, ecdsaErr)
	default:
		return hedera.PrivateKey{}, fmt.Errorf("unsupported key type %q", keyType)
	}
}

func parseRaw(candidate string, keyType KeyType, parse func(string) (hedera.PrivateKey, error)) (hedera.PrivateKey, error) {
	key, err := parse(candidate)
	if err != nil {
		return hedera.PrivateKey{}, fmt.Errorf("failed to parse %s private key: %w", keyType, err)
	}
	return key, nil
}

// PublicKeyFromPrivate returns the DER hex public key for a private key, the
// form account and topic create requests expect.
func PublicKeyFromPrivate(raw string, keyType KeyType) (string, error) {
	privateKey, err := ParsePrivateKey(raw, keyType)
	if err != nil {
		return "", err
	}
	return privateKey.PublicKey().StringDer(), nil
}
