package cloud

import (
	"context"
	"log/slog"
)

// Detector classifies the current host's cloud provider by running an
// ordered sequence of metadata probes. Probes run strictly sequentially;
// total worst-case latency is the sum of the per-probe timeouts, which is
// acceptable for a one-shot provisioning step.
type Detector struct {
	cfg     Config
	logger  *slog.Logger
	probers map[Platform]Prober
}

// NewDetector creates a detector with the given configuration. A nil
// logger is replaced with a discarding one.
func NewDetector(cfg Config, logger *slog.Logger) *Detector {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Detector{
		cfg:    cfg.normalize(),
		logger: logger,
		probers: map[Platform]Prober{
			AWS:   &AWSProber{},
			Azure: &AzureProber{},
		},
	}
}

// SetProber replaces the prober for a platform. Used by tests and by
// callers extending detection to additional providers.
func (d *Detector) SetProber(p Platform, prober Prober) {
	d.probers[p] = prober
}

// Detect runs the configured probes in order and returns the first
// positive classification, or Unknown if every probe fails. It never
// returns an error: misdetection must not abort provisioning, so network
// failures, timeouts, and malformed responses all fold into Unknown.
func (d *Detector) Detect(ctx context.Context) Platform {
	for _, platform := range d.cfg.Order {
		prober, ok := d.probers[platform]
		if !ok || prober == nil {
			d.logger.Warn("no prober for platform, skipping", "platform", platform)
			continue
		}

		d.logger.Debug("probing metadata service", "provider", prober.Name(), "host", d.cfg.Host)

		if result, ok := prober.Probe(ctx, d.cfg); ok {
			d.logger.Info("cloud platform detected", "platform", result)
			return result
		}
	}

	d.logger.Info("no cloud platform detected")
	return Unknown
}
