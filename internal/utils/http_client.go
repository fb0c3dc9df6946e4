package utils

import (
	"net"
	"net/http"
	"time"

	"github.com/Chakshu1409/fnp-integrations/internal/config"
	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// One HTTPClient is created at startup and shared by every outbound call.
// resty.Client is safe for concurrent use once configured.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a resty client backed by a pooled http.Transport
// configured from cfg.
//
//   - ConnectTimeout bounds TCP dial and TLS handshake
//   - RequestTimeout bounds one attempt including reading the body
//   - MaxIdleConns, MaxIdleConnsPerHost and IdleConnTimeout size the pool
//
// Zero values fall back to the net/http defaults.
//
// Example usage:
//
//	client := utils.NewHTTPClient(cfg.Dispatcher)
//	resp, err := client.R().Get("https://example.com")
func NewHTTPClient(cfg config.Dispatcher) *HTTPClient {
	transport := NewTransport(cfg)

	client := resty.New().
		SetTransport(transport).
		SetTimeout(cfg.RequestTimeout)

	return &HTTPClient{Client: client}
}

// NewTransport clones http.DefaultTransport and applies the pool and
// connect-timeout settings of cfg.
func NewTransport(cfg config.Dispatcher) *http.Transport {
	transport := http.DefaultTransport.(*http.Transport).Clone()

	if cfg.ConnectTimeout > 0 {
		dialer := &net.Dialer{Timeout: cfg.ConnectTimeout, KeepAlive: 30 * time.Second}
		transport.DialContext = dialer.DialContext
		transport.TLSHandshakeTimeout = cfg.ConnectTimeout
	}
	if cfg.MaxIdleConns > 0 {
		transport.MaxIdleConns = cfg.MaxIdleConns
	}
	if cfg.MaxIdleConnsPerHost > 0 {
		transport.MaxIdleConnsPerHost = cfg.MaxIdleConnsPerHost
	}
	if cfg.IdleConnTimeout > 0 {
		transport.IdleConnTimeout = cfg.IdleConnTimeout
	}

	return transport
}
