package mixvel

import (
	"net/http"
	"sync"
	"time"

	"bitbucket.org/crgw/mixvel-client/internal/schema"
	"bitbucket.org/crgw/mixvel-client/internal/tools/requesting"
	"github.com/rs/zerolog"
)

type Credentials struct {
	Login           string `validate:"required"`
	Password        string `validate:"required"`
	StructureUnitID string `validate:"required"`
}

// Client talks to one MixVel gateway with one set of credentials. The bearer
// token is acquired on first use and kept for the lifetime of the client.
type Client struct {
	credentials Credentials
	options     *Options
	logger      *zerolog.Logger
	httpClient  *http.Client
	history     *schema.ExchangesBucket

	token       string
	tokenExpiry time.Time
	tokenLock   sync.Mutex
}

func New(credentials Credentials, logger *zerolog.Logger, optionFuncs ...OptionFunc) (*Client, error) {
	if err := schema.Validate(credentials); err != nil {
		return nil, err
	}

	options, err := NewOptions(optionFuncs...)
	if err != nil {
		return nil, err
	}

	loggerContext := logger.With().Str("gateway", options.Gateway())
	if options.Name() != "" {
		loggerContext = loggerContext.Str("client", options.Name())
	}
	clientLogger := loggerContext.Logger()
	history := schema.NewExchangesBucket()

	return &Client{
		credentials: credentials,
		options:     options,
		logger:      &clientLogger,
		history:     history,
		httpClient: &http.Client{
			Timeout: options.Timeout(),
			Transport: &requesting.InterceptorTransport{
				Transport: options.Transport(),
				Middlewares: []requesting.TransportMiddleware{
					requesting.NewLoggingTransportMiddleware(&clientLogger),
					requesting.NewBucketTransportMiddleware(history),
				},
			},
		},
	}, nil
}

// History returns every exchange of the client, oldest first.
func (c *Client) History() []schema.Exchange {
	return c.history.Exchanges()
}

func (c *Client) LastExchange() (schema.Exchange, bool) {
	return c.history.Last()
}

// Close releases idle connections. The client stays usable.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}
