package k8s

import (
	"fmt"
	"net/http"

	"k8s.io/client-go/dynamic"
	"k8s.io/client-go/rest"

	"github.com/giantswarm/namespace-pods/internal/instrumentation"
	"github.com/giantswarm/namespace-pods/internal/logging"
)

// ConnectionConfig describes how to reach and authenticate to the API server.
// It is a plain value: build it once and pass it around.
type ConnectionConfig struct {
	// Host is the API server base URL, e.g. https://api.example:6443.
	Host string

	// AuthorizationHeader is sent verbatim as the Authorization header.
	AuthorizationHeader string

	// CAFile optionally pins the CA bundle used to verify the server.
	// Empty means the system roots.
	CAFile string
}

// NewConnectionConfig returns a ConnectionConfig authenticating with a bearer token.
// Neither value is validated.
func NewConnectionConfig(host, token string) ConnectionConfig {
	return ConnectionConfig{
		Host:                host,
		AuthorizationHeader: "Bearer " + token,
	}
}

// WithCAFile returns a copy of c verifying the server against caFile.
func (c ConnectionConfig) WithCAFile(caFile string) ConnectionConfig {
	c.CAFile = caFile
	return c
}

// RESTConfig converts the descriptor into a client-go REST config.
func (c ConnectionConfig) RESTConfig() *rest.Config {
	header := c.AuthorizationHeader
	return &rest.Config{
		Host:      c.Host,
		UserAgent: UserAgent,
		TLSClientConfig: rest.TLSClientConfig{
			CAFile: c.CAFile,
		},
		WrapTransport: func(rt http.RoundTripper) http.RoundTripper {
			return &authorizationRoundTripper{header: header, next: rt}
		},
	}
}

// authorizationRoundTripper sets the Authorization header on every request.
type authorizationRoundTripper struct {
	header string
	next   http.RoundTripper
}

func (rt *authorizationRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	if rt.header == "" || req.Header.Get("Authorization") != "" {
		return rt.next.RoundTrip(req)
	}
	req = req.Clone(req.Context())
	req.Header.Set("Authorization", rt.header)
	return rt.next.RoundTrip(req)
}

// Client performs the namespace check and the pod listing.
type Client struct {
	dynamic dynamic.Interface
	logger  logging.Logger
	metrics *instrumentation.Metrics
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used by the client.
func WithLogger(logger logging.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMetrics sets the metrics recorder used by the client.
func WithMetrics(metrics *instrumentation.Metrics) Option {
	return func(c *Client) {
		c.metrics = metrics
	}
}

// Authenticate builds a Client for cfg. No request is sent.
func Authenticate(cfg ConnectionConfig, opts ...Option) (*Client, error) {
	dyn, err := dynamic.NewForConfig(cfg.RESTConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to create dynamic client for %s: %w", logging.SanitizeHost(cfg.Host), err)
	}
	return NewClientFromDynamic(dyn, opts...), nil
}

// NewClientFromDynamic wraps an existing dynamic client.
func NewClientFromDynamic(dyn dynamic.Interface, opts ...Option) *Client {
	c := &Client{
		dynamic: dyn,
		logger:  logging.DefaultLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
