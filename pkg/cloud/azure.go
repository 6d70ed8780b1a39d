package cloud

import (
	"context"
	"io"
	"net/http"
	"strings"
)

// Azure's IMDS requires the Metadata header on every request; without it
// the service responds 400 to discourage SSRF relays.
const (
	azureInstancePath = "/metadata/instance?api-version=2021-02-01"

	azureMetadataHeader = "Metadata"
)

// AzureProber identifies Azure VMs via the instance metadata service.
type AzureProber struct{}

// Name returns the provider name.
func (p *AzureProber) Name() string {
	return "azure"
}

// Probe issues a single GET against the instance endpoint. Success is
// judged by the configured match policy: either the body must contain
// "azure" (case-insensitive) or any 2xx status is accepted.
func (p *AzureProber) Probe(ctx context.Context, cfg Config) (Platform, bool) {
	client := cfg.httpClient()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, cfg.baseURL()+azureInstancePath, nil)
	if err != nil {
		return Unknown, false
	}
	req.Header.Set(azureMetadataHeader, "true")

	resp, err := client.Do(req)
	if err != nil {
		return Unknown, false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Unknown, false
	}

	if cfg.AzureMatch == MatchAnyStatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64*1024))
		return Azure, true
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return Unknown, false
	}
	if strings.Contains(strings.ToLower(string(body)), "azure") {
		return Azure, true
	}

	// The service answered but said nothing recognizably Azure. Treat as
	// unknown rather than assuming the attempted provider.
	return Unknown, false
}
