package shared

import (
	"fmt"
	"strings"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
)

// EntityKind names the entity types whose IDs appear in REST paths.
type EntityKind string

const (
	EntityAccount  EntityKind = "account"
	EntityToken    EntityKind = "token"
	EntityTopic    EntityKind = "topic"
	EntitySchedule EntityKind = "schedule"
)

type checksummed interface {
	ValidateChecksum(client *hedera.Client) error
	String() string
}

// ParseEntityID parses raw as a shard.realm.num ID of the given kind. An ID
// carrying a checksum ("0.0.123-vfmkw") is validated against network and
// returned without it.
func ParseEntityID(kind EntityKind, raw string, network string) (string, error) {
	candidate := strings.TrimSpace(raw)
	if candidate == "" {
		return "", fmt.Errorf("%s ID cannot be empty", kind)
	}

	id, err := parseEntity(kind, candidate)
	if err != nil {
		return "", fmt.Errorf("invalid %s ID %q: %w", kind, raw, err)
	}

	if strings.Contains(candidate, "-") {
		client, err := NewHederaClient(network)
		if err != nil {
			return "", err
		}
		defer client.Close()
		if err := id.ValidateChecksum(client); err != nil {
			return "", fmt.Errorf("invalid %s ID %q: %w", kind, raw, err)
		}
	}

	return id.String(), nil
}

func parseEntity(kind EntityKind, candidate string) (checksummed, error) {
	switch kind {
	case EntityAccount:
		id, err := hedera.AccountIDFromString(candidate)
		return &id, err
	case EntityToken:
		id, err := hedera.TokenIDFromString(candidate)
		return &id, err
	case EntityTopic:
		id, err := hedera.TopicIDFromString(candidate)
		return &id, err
	case EntitySchedule:
		id, err := hedera.ScheduleIDFromString(candidate)
		return &id, err
	default:
		return nil, fmt.Errorf("unknown entity kind %q", kind)
	}
}

// MirrorTransactionID converts a transaction ID from the SDK form
// ("0.0.1001@1700000000.000000001") to the form used in mirror paths
// ("0.0.1001-1700000000-000000001"). IDs already in mirror form are returned
// unchanged.
func MirrorTransactionID(raw string) (string, error) {
	candidate := strings.TrimSpace(raw)
	if candidate == "" {
		return "", fmt.Errorf("transaction ID cannot be empty")
	}
	if !strings.Contains(candidate, "@") {
		return candidate, nil
	}

	transactionID, err := hedera.TransactionIdFromString(candidate)
	if err != nil {
		return "", fmt.Errorf("invalid transaction ID %q: %w", raw, err)
	}
	if transactionID.AccountID == nil || transactionID.ValidStart == nil {
		return "", fmt.Errorf("transaction ID %q has no payer or valid start", raw)
	}

	start := *transactionID.ValidStart
	return fmt.Sprintf("%s-%d-%09d", transactionID.AccountID.String(), start.Unix(), start.Nanosecond()), nil
}
