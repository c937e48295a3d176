package mixvel

import (
	"crypto/tls"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	ProdGateway = "https://api.mixvel.com"
	TestGateway = "https://api-test.mixvel.com"

	DefaultTimeout = 30 * time.Second
)

type OptionFunc func(o *Options)

type Options struct {
	// Name of the caller, sent in the user agent
	name string

	// Gateway - defaults to ProdGateway
	gateway string

	// VerifySSL - defaults to true
	verifySSL bool

	// Timeout - if not set, then default timeout is used
	timeout time.Duration

	// Transport - overrides the default transport, mostly for tests
	transport http.RoundTripper
}

func WithName(name string) OptionFunc {
	return func(o *Options) {
		o.name = name
	}
}

func WithGateway(gateway string) OptionFunc {
	return func(o *Options) {
		o.gateway = gateway
	}
}

func WithVerifySSL(verifySSL bool) OptionFunc {
	return func(o *Options) {
		o.verifySSL = verifySSL
	}
}

func WithTimeout(timeout time.Duration) OptionFunc {
	return func(o *Options) {
		o.timeout = timeout
	}
}

func WithTransport(transport http.RoundTripper) OptionFunc {
	return func(o *Options) {
		o.transport = transport
	}
}

func NewOptions(optionFuncs ...OptionFunc) (*Options, error) {
	options := &Options{
		gateway:   ProdGateway,
		verifySSL: true,
	}

	for _, optionFunc := range optionFuncs {
		optionFunc(options)
	}

	gateway, err := url.Parse(options.gateway)
	if err != nil {
		return nil, fmt.Errorf("invalid gateway %q: %w", options.gateway, err)
	}
	if gateway.Scheme != "http" && gateway.Scheme != "https" {
		return nil, fmt.Errorf("invalid gateway %q: scheme must be http or https", options.gateway)
	}

	return options, nil
}

func (o *Options) Name() string {
	return o.name
}

func (o *Options) UserAgent() string {
	if o.name == "" {
		return "mixvel-client"
	}
	return fmt.Sprintf("mixvel-client via %s", o.name)
}

func (o *Options) Gateway() string {
	return strings.TrimRight(o.gateway, "/")
}

func (o *Options) VerifySSL() bool {
	return o.verifySSL
}

func (o *Options) Timeout() time.Duration {
	if o.timeout != 0 {
		return o.timeout
	}
	return DefaultTimeout
}

func (o *Options) Transport() http.RoundTripper {
	if o.transport != nil {
		return o.transport
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if !o.verifySSL {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec
	}

	return transport
}
