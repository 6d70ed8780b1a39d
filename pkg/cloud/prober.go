package cloud

import (
	"context"
	"net/http"
	"time"
)

// DefaultIMDSHost is the link-local metadata address shared by AWS and Azure.
const DefaultIMDSHost = "169.254.169.254"

// DefaultConnectTimeout bounds each individual metadata probe.
const DefaultConnectTimeout = 2 * time.Second

// MatchPolicy controls what counts as a successful Azure metadata response.
type MatchPolicy int

const (
	// MatchBodySubstring requires the response body to contain "azure"
	// (case-insensitive). This is the stricter policy: a metadata service
	// that merely accepts the request is not assumed to be Azure.
	MatchBodySubstring MatchPolicy = iota
	// MatchAnyStatusOK accepts any 2xx response as proof. Weaker, but the
	// endpoint is only reachable at all inside Azure's network fabric.
	MatchAnyStatusOK
)

// Config holds the detector settings. Callers construct one explicitly;
// there is no process-wide state.
type Config struct {
	// Host is the metadata endpoint, without scheme. Overridable for tests.
	Host string

	// ConnectTimeout applies independently to each probe. A hang on one
	// provider's endpoint cannot delay another probe beyond its own budget.
	ConnectTimeout time.Duration

	// Order lists the platforms to probe, first match wins.
	Order []Platform

	// AzureMatch selects the Azure success policy.
	AzureMatch MatchPolicy
}

// DefaultConfig returns the detector configuration used by the provisioner:
// AWS probed before Azure, two-second per-probe timeout, substring matching.
func DefaultConfig() Config {
	return Config{
		Host:           DefaultIMDSHost,
		ConnectTimeout: DefaultConnectTimeout,
		Order:          []Platform{AWS, Azure},
		AzureMatch:     MatchBodySubstring,
	}
}

// normalize fills zero-valued fields with defaults.
func (c Config) normalize() Config {
	if c.Host == "" {
		c.Host = DefaultIMDSHost
	}
	if c.ConnectTimeout <= 0 {
		c.ConnectTimeout = DefaultConnectTimeout
	}
	if len(c.Order) == 0 {
		c.Order = []Platform{AWS, Azure}
	}
	return c
}

// baseURL returns the http endpoint for the configured host.
func (c Config) baseURL() string {
	return "http://" + c.Host
}

// httpClient returns a client whose total request budget equals the
// per-probe timeout.
func (c Config) httpClient() *http.Client {
	return &http.Client{Timeout: c.ConnectTimeout}
}

// Prober probes the metadata service for one provider. Implementations
// report (platform, true) on a positive identification and (Unknown, false)
// otherwise; they never return errors, since any failure simply means the
// host is not on that provider.
type Prober interface {
	// Name returns the provider name for logging.
	Name() string

	// Probe performs the provider-specific metadata exchange.
	Probe(ctx context.Context, cfg Config) (Platform, bool)
}
