package client

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/hashgraph-online/hedera-rest-sdk-go/pkg/accounts"
	"github.com/hashgraph-online/hedera-rest-sdk-go/pkg/endpoint"
	"github.com/hashgraph-online/hedera-rest-sdk-go/pkg/hcs"
	"github.com/hashgraph-online/hedera-rest-sdk-go/pkg/hts"
	"github.com/hashgraph-online/hedera-rest-sdk-go/pkg/logging"
	"github.com/hashgraph-online/hedera-rest-sdk-go/pkg/shared"
	"github.com/hashgraph-online/hedera-rest-sdk-go/pkg/status"
	"github.com/hashgraph-online/hedera-rest-sdk-go/pkg/transactions"
	"github.com/hashgraph-online/hedera-rest-sdk-go/pkg/transport"
	"github.com/hashgraph-online/hedera-rest-sdk-go/pkg/validators"
)

// Config is read once by New. When Transport is set the HTTP settings are
// ignored and every call goes through it.
type Config struct {
	BaseURL    string
	APIKey     string
	Headers    map[string]string
	HTTPClient *http.Client
	Timeout    time.Duration
	Transport  transport.Transport
	Logger     *zap.Logger
}

type Client struct {
	Status       *status.Client
	Validators   *validators.Client
	Accounts     *accounts.Client
	Transactions *transactions.Client
	HCS          *hcs.Client
	HTS          *hts.Client

	transport transport.Transport
	logger    *zap.Logger
}

// New creates a new Client.
func New(config Config) (*Client, error) {
	logger := logging.OrNop(config.Logger)

	t := config.Transport
	if t == nil {
		httpClient, err := transport.NewHTTPClient(transport.Config{
			BaseURL:    config.BaseURL,
			APIKey:     config.APIKey,
			Headers:    config.Headers,
			HTTPClient: config.HTTPClient,
			Timeout:    config.Timeout,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create transport: %w", err)
		}
		t = httpClient
	}

	return &Client{
		Status:       status.NewClient(t, logger),
		Validators:   validators.NewClient(t, logger),
		Accounts:     accounts.NewClient(t, logger),
		Transactions: transactions.NewClient(t, logger),
		HCS:          hcs.NewClient(t, logger),
		HTS:          hts.NewClient(t, logger),
		transport:    t,
		logger:       logger,
	}, nil
}

// ConfigFromEnv returns a Config populated from HEDERA_REST_URL and
// HEDERA_REST_API_KEY, after loading the nearest .env file.
func ConfigFromEnv() (Config, error) {
	env, err := shared.ConfigFromEnv()
	if err != nil {
		return Config{}, err
	}
	return Config{BaseURL: env.BaseURL, APIKey: env.APIKey}, nil
}

// Transport returns the transport shared by every group.
func (c *Client) Transport() transport.Transport {
	return c.transport
}

func (c *Client) Logger() *zap.Logger {
	return c.logger
}

// Endpoint is one catalogue entry tagged with its group.
type Endpoint struct {
	Group      string
	Descriptor endpoint.Descriptor
}

// PathTemplate renders the full path with placeholders left in place, e.g.
// "mirrors/hts/tokens/{tokenId}/balances".
func (e Endpoint) PathTemplate() string {
	segments := []string{}
	if e.Descriptor.API == endpoint.Mirror {
		segments = append(segments, endpoint.MirrorPrefix)
	}
	segments = append(segments, e.Group)
	if e.Descriptor.Template != "" {
		segments = append(segments, e.Descriptor.Template)
	}
	return strings.Join(segments, "/")
}

type groupCatalogue struct {
	base      string
	endpoints func() endpoint.Catalogue
}

var groups = []groupCatalogue{
	{status.BasePath, status.Endpoints},
	{validators.BasePath, validators.Endpoints},
	{accounts.BasePath, accounts.Endpoints},
	{transactions.BasePath, transactions.Endpoints},
	{hcs.BasePath, hcs.Endpoints},
	{hts.BasePath, hts.Endpoints},
}

// Catalogue lists every operation the client exposes, group by group.
func Catalogue() []Endpoint {
	entries := []Endpoint{}
	for _, group := range groups {
		for _, descriptor := range group.endpoints() {
			entries = append(entries, Endpoint{Group: group.base, Descriptor: descriptor})
		}
	}
	return entries
}

// ValidateCatalogue checks every group's catalogue.
func ValidateCatalogue() error {
	for _, group := range groups {
		if err := group.endpoints().Validate(); err != nil {
			return fmt.Errorf("%s: %w", group.base, err)
		}
	}
	return nil
}
