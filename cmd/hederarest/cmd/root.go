package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/hashgraph-online/hedera-rest-sdk-go/pkg/client"
	"github.com/hashgraph-online/hedera-rest-sdk-go/pkg/logging"
	"github.com/hashgraph-online/hedera-rest-sdk-go/pkg/shared"
	"github.com/hashgraph-online/hedera-rest-sdk-go/pkg/transport"
)

const (
	keyConfig    = "config"
	keyBaseURL   = "base-url"
	keyAPIKey    = "api-key"
	keyNetwork   = "network"
	keyOutput    = "output"
	keyLogLevel  = "log-level"
	keyLogFormat = "log-format"
	keyTimeout   = "timeout"
)

// app carries the state shared by every command of one invocation.
type app struct {
	viper  *viper.Viper
	out    io.Writer
	logger *zap.Logger
	client *client.Client

	// transport replaces the HTTP transport when set.
	transport transport.Transport
}

// Execute runs the CLI with os.Args.
func Execute(ctx context.Context, version string) error {
	root := newRootCommand(&app{out: os.Stdout}, version)
	return root.ExecuteContext(ctx)
}

func newRootCommand(a *app, version string) *cobra.Command {
	if a.viper == nil {
		a.viper = viper.New()
	}
	if a.out == nil {
		a.out = os.Stdout
	}

	root := &cobra.Command{
		Use:   "hederarest",
		Short: "Ledger REST API client",
		Long: `hederarest calls the ledger REST API: node status, validators, accounts,
transactions, consensus topics and tokens.

Mutations go to the primary API. Listings and history come from the mirror
API. Settings are read from flags, HEDERA_* environment variables, a .env
file and an optional config file, in that order of precedence.`,
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(a.out)

	flags := root.PersistentFlags()
	flags.String(keyConfig, "", "config file (default is $HOME/.hederarest.yaml)")
	flags.String(keyBaseURL, "", "REST API base URL ($"+shared.EnvRESTURL+")")
	flags.String(keyAPIKey, "", "API key sent as x-api-key ($"+shared.EnvAPIKey+")")
	flags.String(keyNetwork, shared.NetworkTestnet, "network used for ID checksums ($"+shared.EnvNetwork+")")
	flags.StringP(keyOutput, "o", formatJSON, "output format: json, yaml or table")
	flags.String(keyLogLevel, "warn", "log level: debug, info, warn, error")
	flags.String(keyLogFormat, logging.FormatConsole, "log format: json or console")
	flags.Duration(keyTimeout, transport.DefaultTimeout, "request timeout")

	if err := a.viper.BindPFlags(flags); err != nil {
		panic(fmt.Sprintf("failed to bind flags: %v", err))
	}

	root.AddCommand(
		newEndpointsCommand(a),
		newStatusCommand(a),
		newValidatorsCommand(a),
		newAccountsCommand(a),
		newTransactionsCommand(a),
		newHCSCommand(a),
		newHTSCommand(a),
	)
	return root
}

// setup loads configuration and builds the logger. The client itself is
// built on first use so commands that never call the API need no base URL.
func (a *app) setup(_ *cobra.Command, _ []string) error {
	loadEnvFiles()

	v := a.viper
	v.SetEnvPrefix("HEDERAREST")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	for key, env := range map[string]string{
		keyBaseURL: shared.EnvRESTURL,
		keyAPIKey:  shared.EnvAPIKey,
		keyNetwork: shared.EnvNetwork,
	} {
		if err := v.BindEnv(key, env); err != nil {
			return fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	if configFile := v.GetString(keyConfig); configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config %s: %w", configFile, err)
		}
	} else if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
		v.SetConfigType("yaml")
		v.SetConfigName(".hederarest")
		_ = v.ReadInConfig()
	}

	if _, err := parseFormat(v.GetString(keyOutput)); err != nil {
		return err
	}
	if _, err := shared.NormalizeNetwork(v.GetString(keyNetwork)); err != nil {
		return err
	}

	logger, err := logging.New(v.GetString(keyLogLevel), v.GetString(keyLogFormat))
	if err != nil {
		return err
	}
	a.logger = logger
	return nil
}

func loadEnvFiles() {
	for _, name := range []string{".env", ".env.local"} {
		_ = shared.LoadEnvFile(name)
	}
}

// api returns the client, creating it on first use.
func (a *app) api() (*client.Client, error) {
	if a.client != nil {
		return a.client, nil
	}

	c, err := client.New(client.Config{
		BaseURL:   a.viper.GetString(keyBaseURL),
		APIKey:    a.viper.GetString(keyAPIKey),
		Timeout:   a.viper.GetDuration(keyTimeout),
		Transport: a.transport,
		Logger:    a.logger,
	})
	if err != nil {
		return nil, err
	}
	a.client = c
	return c, nil
}

func (a *app) network() string {
	network, _ := shared.NormalizeNetwork(a.viper.GetString(keyNetwork))
	return network
}

// entityID normalizes a user supplied ID, validating its checksum if any.
func (a *app) entityID(kind shared.EntityKind, raw string) (string, error) {
	return shared.ParseEntityID(kind, raw, a.network())
}

// print writes value in the configured output format.
func (a *app) print(value any) error {
	f, err := parseFormat(a.viper.GetString(keyOutput))
	if err != nil {
		return err
	}
	return render(a.out, f, value)
}

// call runs fn against the client and prints its result.
func call[T any](a *app, cmd *cobra.Command, fn func(context.Context, *client.Client) (T, error)) error {
	c, err := a.api()
	if err != nil {
		return err
	}
	result, err := fn(cmd.Context(), c)
	if err != nil {
		return err
	}
	return a.print(result)
}
