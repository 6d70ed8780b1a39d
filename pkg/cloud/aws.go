package cloud

import (
	"context"
	"io"
	"net/http"
	"strings"
)

// IMDS paths and headers for EC2. IMDSv2 requires a short-lived token
// obtained via PUT before metadata can be read; IMDSv1 allows
// unauthenticated reads and remains enabled on most instances.
const (
	awsTokenPath    = "/latest/api/token"
	awsMetadataPath = "/latest/meta-data/"

	awsTokenTTLHeader = "X-aws-ec2-metadata-token-ttl-seconds"
	awsTokenHeader    = "X-aws-ec2-metadata-token"
	awsTokenTTL       = "60"
)

// AWSProber identifies EC2 instances via the instance metadata service.
// It attempts the IMDSv2 token handshake first and falls back to an
// unauthenticated IMDSv1 read if the token request is rejected.
type AWSProber struct{}

// Name returns the provider name.
func (p *AWSProber) Name() string {
	return "aws"
}

// Probe performs the IMDSv2 handshake with IMDSv1 fallback. Any network
// error, timeout, or non-2xx response means "not AWS"; nothing propagates.
func (p *AWSProber) Probe(ctx context.Context, cfg Config) (Platform, bool) {
	client := cfg.httpClient()

	token := p.fetchToken(ctx, client, cfg)
	if token != "" && p.verifyMetadata(ctx, client, cfg, token) {
		return AWS, true
	}

	// IMDSv1 fallback: unauthenticated GET against the same path.
	if p.verifyMetadata(ctx, client, cfg, "") {
		return AWS, true
	}

	return Unknown, false
}

// fetchToken requests an IMDSv2 session token. Returns "" on any failure.
func (p *AWSProber) fetchToken(ctx context.Context, client *http.Client, cfg Config) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, cfg.baseURL()+awsTokenPath, nil)
	if err != nil {
		return ""
	}
	req.Header.Set(awsTokenTTLHeader, awsTokenTTL)

	resp, err := client.Do(req)
	if err != nil {
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return ""
	}

	// Tokens are short opaque strings; 4KB is far beyond any real token.
	body, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil {
		return ""
	}

	return strings.TrimSpace(string(body))
}

// verifyMetadata issues a GET against /latest/meta-data/. With a token it
// is an IMDSv2 read, without one an IMDSv1 read. A 2xx response classifies
// the host as EC2.
func (p *AWSProber) verifyMetadata(ctx context.Context, client *http.Client, cfg Config, token string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, cfg.baseURL()+awsMetadataPath, nil)
	if err != nil {
		return false
	}
	if token != "" {
		req.Header.Set(awsTokenHeader, token)
	}

	resp, err := client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	// Drain so the connection can be reused for the next probe.
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64*1024))

	return resp.StatusCode >= 200 && resp.StatusCode <= 299
}
