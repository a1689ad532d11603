package shared

import (
	"strings"
	"testing"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
)

func TestParsePrivateKeyEdge(t *testing.T) {
	if _, err := ParsePrivateKey("", KeyTypeAuto); err == nil {
		t.Fatal("expected error for empty key")
	}
	if _, err := ParsePrivateKey("0xinvalidhex", KeyTypeAuto); err == nil {
		t.Fatal("expected error for invalid hex")
	}
	if _, err := ParsePrivateKey(strings.Repeat("ab", 32), KeyType("rsa")); err == nil {
		t.Fatal("expected error for unknown key type")
	}
}

func TestParsePrivateKeyDER(t *testing.T) {
	for name, generate := range map[string]func() (hedera.PrivateKey, error){
		"ed25519": hedera.PrivateKeyGenerateEd25519,
		"ecdsa":   hedera.PrivateKeyGenerateEcdsa,
	} {
		t.Run(name, func(t *testing.T) {
			generated, err := generate()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			parsed, err := ParsePrivateKey("  "+generated.StringDer()+"  ", KeyTypeAuto)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if parsed.PublicKey().String() != generated.PublicKey().String() {
				t.Fatal("parsed key does not match generated key")
			}
		})
	}
}

func TestParsePrivateKeyRawUsesKeyType(t *testing.T) {
	generated, err := hedera.PrivateKeyGenerateEcdsa()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	raw := "0x" + generated.StringRaw()

	parsed, err := ParsePrivateKey(raw, KeyTypeECDSA)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parsed.PublicKey().String() != generated.PublicKey().String() {
		t.Fatal("ecdsa key parsed with the wrong algorithm")
	}

	auto, err := ParsePrivateKey(raw, KeyTypeAuto)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if auto.PublicKey().String() == generated.PublicKey().String() {
		t.Fatal("expected auto to read a raw key as ed25519")
	}
}

func TestParseKeyType(t *testing.T) {
	cases := map[string]KeyType{
		"":          KeyTypeAuto,
		"auto":      KeyTypeAuto,
		"ED25519":   KeyTypeED25519,
		" ecdsa ":   KeyTypeECDSA,
		"secp256k1": KeyTypeECDSA,
	}
	for raw, want := range cases {
		got, err := ParseKeyType(raw)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", raw, err)
		}
		if got != want {
			t.Fatalf("%q: expected %q, got %q", raw, want, got)
		}
	}
	if _, err := ParseKeyType("rsa"); err == nil {
		t.Fatal("expected error for unknown key type")
	}
}

func TestPublicKeyFromPrivate(t *testing.T) {
	generated, err := hedera.PrivateKeyGenerateEd25519()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	publicKey, err := PublicKeyFromPrivate(generated.String(), KeyTypeAuto)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if publicKey != generated.PublicKey().StringDer() {
		t.Fatalf("unexpected public key %q", publicKey)
	}
	if !strings.HasPrefix(publicKey, "302a") {
		t.Fatalf("expected DER encoded ED25519 key, got %q", publicKey)
	}

	if _, err := PublicKeyFromPrivate("", KeyTypeAuto); err == nil {
		t.Fatal("expected error for empty key")
	}
}
