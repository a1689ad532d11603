package shared

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

const (
	EnvRESTURL = "HEDERA_REST_URL"
	EnvAPIKey  = "HEDERA_REST_API_KEY"
	EnvNetwork = "HEDERA_NETWORK"
)

// EnvConfig is the client configuration read from the environment.
type EnvConfig struct {
	BaseURL string
	APIKey  string
	Network string
}

var dotenvLoadOnce sync.Once

// ConfigFromEnv loads the nearest .env file, if any, then reads the client
// settings. Variables already set in the process win over the file.
func ConfigFromEnv() (EnvConfig, error) {
	loadDotEnvIfPresent()

	network, err := NormalizeNetwork(firstNonEmptyEnv(EnvNetwork, "NETWORK"))
	if err != nil {
		return EnvConfig{}, err
	}

	baseURL := firstNonEmptyEnv(EnvRESTURL)
	if baseURL == "" {
		return EnvConfig{}, fmt.Errorf("%s is required", EnvRESTURL)
	}

	return EnvConfig{
		BaseURL: baseURL,
		APIKey:  firstNonEmptyEnv(EnvAPIKey),
		Network: network,
	}, nil
}

// LoadEnvFile loads path into the process environment without overriding
// variables that are already set.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// loadDotEnvIfPresent walks up from the working directory and loads the
// first .env it finds.
func loadDotEnvIfPresent() {
	dotenvLoadOnce.Do(func() {
		if path, ok := findDotEnv(); ok {
			_ = godotenv.Load(path)
		}
	})
}

func findDotEnv() (string, bool) {
	current, err := os.Getwd()
	if err != nil {
		return "", false
	}
	for {
		candidate := filepath.Join(current, ".env")
		if info, statErr := os.Stat(candidate); statErr == nil && !info.IsDir() {
			return candidate, true
		}
		parent := filepath.Dir(current)
		if parent == current {
			return "", false
		}
		current = parent
	}
}

func firstNonEmptyEnv(keys ...string) string {
	for _, key := range keys {
		value := strings.TrimSpace(os.Getenv(key))
		if value != "" {
			return value
		}
	}
	return ""
}
