package shared

import (
	"strings"
	"testing"
)

func TestParseEntityIDPlain(t *testing.T) {
	cases := []struct {
		kind EntityKind
		raw  string
		want string
	}{
		{EntityAccount, "0.0.1001", "0.0.1001"},
		{EntityAccount, " 0.0.2 ", "0.0.2"},
		{EntityToken, "0.0.500", "0.0.500"},
		{EntityTopic, "0.0.2000", "0.0.2000"},
		{EntitySchedule, "0.0.7000", "0.0.7000"},
	}

	for _, tc := range cases {
		got, err := ParseEntityID(tc.kind, tc.raw, NetworkTestnet)
		if err != nil {
			t.Fatalf("unexpected error for %s %q: %v", tc.kind, tc.raw, err)
		}
		if got != tc.want {
			t.Fatalf("expected %q for %q, got %q", tc.want, tc.raw, got)
		}
	}
}

func TestParseEntityIDRejectsMalformed(t *testing.T) {
	for _, raw := range []string{"", "   ", "abc", "0.0", "0.0.x"} {
		if _, err := ParseEntityID(EntityAccount, raw, NetworkTestnet); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
}

func TestParseEntityIDRejectsWrongChecksum(t *testing.T) {
	_, err := ParseEntityID(EntityAccount, "0.0.123-zzzzz", NetworkTestnet)
	if err == nil {
		t.Fatal("expected checksum error")
	}
	if !strings.Contains(err.Error(), "0.0.123-zzzzz") {
		t.Fatalf("expected raw ID in error, got %v", err)
	}
}

func TestParseEntityIDUnknownKind(t *testing.T) {
	if _, err := ParseEntityID(EntityKind("contract"), "0.0.1", NetworkTestnet); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}

func TestParseEntityIDUnsupportedNetwork(t *testing.T) {
	if _, err := ParseEntityID(EntityToken, "0.0.500-abcde", "devnet"); err == nil {
		t.Fatal("expected error for unsupported network")
	}
}

func TestMirrorTransactionID(t *testing.T) {
	got, err := MirrorTransactionID("0.0.1001@1700000000.000000001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "0.0.1001-1700000000-000000001" {
		t.Fatalf("unexpected mirror ID %q", got)
	}

	got, err = MirrorTransactionID("0.0.1001-1700000000-000000001")
	if err != nil || got != "0.0.1001-1700000000-000000001" {
		t.Fatalf("expected mirror form unchanged, got %q (%v)", got, err)
	}

	if _, err := MirrorTransactionID(""); err == nil {
		t.Fatal("expected error for empty ID")
	}
	if _, err := MirrorTransactionID("bad@id"); err == nil {
		t.Fatal("expected error for malformed ID")
	}
}
