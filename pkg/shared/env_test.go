package shared

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigFromEnv(t *testing.T) {
	t.Setenv(EnvRESTURL, " https://ledger.example.com/api ")
	t.Setenv(EnvAPIKey, "secret")
	t.Setenv(EnvNetwork, "MAINNET")

	config, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if config.BaseURL != "https://ledger.example.com/api" {
		t.Fatalf("unexpected base URL %q", config.BaseURL)
	}
	if config.APIKey != "secret" {
		t.Fatalf("unexpected API key %q", config.APIKey)
	}
	if config.Network != NetworkMainnet {
		t.Fatalf("unexpected network %q", config.Network)
	}
}

func TestConfigFromEnvDefaultsNetwork(t *testing.T) {
	t.Setenv(EnvRESTURL, "https://ledger.example.com")
	t.Setenv(EnvNetwork, "")
	t.Setenv("NETWORK", "")

	config, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if config.Network != NetworkTestnet {
		t.Fatalf("expected testnet, got %q", config.Network)
	}
}

func TestConfigFromEnvRequiresBaseURL(t *testing.T) {
	t.Setenv(EnvRESTURL, "")
	if _, err := ConfigFromEnv(); err == nil {
		t.Fatal("expected error without base URL")
	}
}

func TestConfigFromEnvRejectsUnknownNetwork(t *testing.T) {
	t.Setenv(EnvRESTURL, "https://ledger.example.com")
	t.Setenv(EnvNetwork, "devnet")
	if _, err := ConfigFromEnv(); err == nil {
		t.Fatal("expected error for unsupported network")
	}
}

func TestLoadEnvFileKeepsExistingValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "HEDERA_REST_SDK_TEST_NEW=from-file\nexport HEDERA_REST_SDK_TEST_SET=\"from-file\"\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Setenv("HEDERA_REST_SDK_TEST_SET", "from-process")
	t.Setenv("HEDERA_REST_SDK_TEST_NEW", "")
	if err := os.Unsetenv("HEDERA_REST_SDK_TEST_NEW"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := LoadEnvFile(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := os.Getenv("HEDERA_REST_SDK_TEST_NEW"); got != "from-file" {
		t.Fatalf("expected value from file, got %q", got)
	}
	if got := os.Getenv("HEDERA_REST_SDK_TEST_SET"); got != "from-process" {
		t.Fatalf("expected process value to win, got %q", got)
	}
}

func TestLoadEnvFileMissing(t *testing.T) {
	if err := LoadEnvFile(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestFindDotEnvWalksUp(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, ".env"), []byte("X=1\n"), 0o600); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Chdir(nested)

	path, ok := findDotEnv()
	if !ok {
		t.Fatal("expected .env to be found")
	}
	resolvedRoot, _ := filepath.EvalSymlinks(root)
	resolvedPath, _ := filepath.EvalSymlinks(filepath.Dir(path))
	if resolvedPath != resolvedRoot {
		t.Fatalf("expected .env in %q, got %q", resolvedRoot, path)
	}
}
