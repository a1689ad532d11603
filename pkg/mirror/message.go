package mirror

import (
	"encoding/base64"
	"fmt"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

// DecodeMessageData returns the raw bytes of a base64 topic message.
func DecodeMessageData(message TopicMessage) ([]byte, error) {
	if strings.TrimSpace(message.Message) == "" {
		return nil, fmt.Errorf("message payload is empty")
	}
	return base64.StdEncoding.DecodeString(message.Message)
}

// DecodeMessageJSON decodes a base64 topic message holding JSON into target.
func DecodeMessageJSON[T any](message TopicMessage, target *T) error {
	payload, err := DecodeMessageData(message)
	if err != nil {
		return err
	}

	if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(payload, target); err != nil {
		return fmt.Errorf("failed to decode topic message JSON: %w", err)
	}

	return nil
}

// DecodeMemo returns the plain text of a transaction's base64 memo.
func DecodeMemo(transaction Transaction) (string, error) {
	if transaction.MemoBase64 == "" {
		return "", nil
	}
	decoded, err := base64.StdEncoding.DecodeString(transaction.MemoBase64)
	if err != nil {
		return "", fmt.Errorf("failed to decode transaction memo: %w", err)
	}
	return string(decoded), nil
}
