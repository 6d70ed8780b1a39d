// Package config loads the vm-setup configuration file.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jaspreet-dot-casa/vm-setup/pkg/cloud"
)

// Azure match policy names accepted in the config file.
const (
	AzureMatchSubstring = "substring"
	AzureMatchStatus    = "status"
)

// Config holds all provisioning settings. It is passed explicitly to every
// component; there are no process-wide settings.
type Config struct {
	// ConnectTimeoutMs bounds each metadata probe independently.
	ConnectTimeoutMs int `yaml:"connect_timeout_ms"`

	// IMDSHost overrides the metadata endpoint (testing only).
	IMDSHost string `yaml:"imds_host,omitempty"`

	// ProbeOrder lists providers to probe, first match wins.
	// Recognized values: "aws", "azure".
	ProbeOrder []string `yaml:"probe_order"`

	// AzureMatch selects the Azure success policy: "substring" requires
	// the response body to mention azure, "status" accepts any 2xx.
	AzureMatch string `yaml:"azure_match"`

	// ExtraPackages are installed in addition to the baseline manifest.
	ExtraPackages []string `yaml:"extra_packages,omitempty"`

	// SkipPackages disables baseline packages without removing them from
	// listings.
	SkipPackages []string `yaml:"skip_packages,omitempty"`

	// LogDir overrides the log directory.
	LogDir string `yaml:"log_dir,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		ConnectTimeoutMs: 2000,
		ProbeOrder:       []string{"aws", "azure"},
		AzureMatch:       AzureMatchSubstring,
	}
}

// Load reads a config file, layering it over the defaults. A missing file
// is not an error; the defaults are returned.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the configuration for recognized values.
func (c *Config) Validate() error {
	if c.ConnectTimeoutMs <= 0 {
		return fmt.Errorf("connect_timeout_ms must be positive, got %d", c.ConnectTimeoutMs)
	}

	if len(c.ProbeOrder) == 0 {
		return fmt.Errorf("probe_order must name at least one provider")
	}
	for _, name := range c.ProbeOrder {
		if cloud.ParsePlatform(name) == cloud.Unknown {
			return fmt.Errorf("unrecognized provider %q in probe_order", name)
		}
	}

	switch c.AzureMatch {
	case AzureMatchSubstring, AzureMatchStatus:
	default:
		return fmt.Errorf("azure_match must be %q or %q, got %q",
			AzureMatchSubstring, AzureMatchStatus, c.AzureMatch)
	}

	return nil
}

// DetectorConfig translates the file settings into the detector's config.
func (c *Config) DetectorConfig() cloud.Config {
	dc := cloud.DefaultConfig()
	dc.ConnectTimeout = time.Duration(c.ConnectTimeoutMs) * time.Millisecond
	if c.IMDSHost != "" {
		dc.Host = c.IMDSHost
	}

	order := make([]cloud.Platform, 0, len(c.ProbeOrder))
	for _, name := range c.ProbeOrder {
		order = append(order, cloud.ParsePlatform(name))
	}
	dc.Order = order

	if c.AzureMatch == AzureMatchStatus {
		dc.AzureMatch = cloud.MatchAnyStatusOK
	} else {
		dc.AzureMatch = cloud.MatchBodySubstring
	}

	return dc
}
