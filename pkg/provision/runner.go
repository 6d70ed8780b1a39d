// Package provision runs the end-to-end setup sequence for a fresh
// Debian/Ubuntu VM: refresh apt, install the baseline packages, detect the
// cloud platform, and install that platform's CLI.
package provision

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/jaspreet-dot-casa/vm-setup/pkg/cloud"
	"github.com/jaspreet-dot-casa/vm-setup/pkg/installer"
)

// Detector classifies the host's cloud platform.
type Detector interface {
	Detect(ctx context.Context) cloud.Platform
}

// PackageManager is the subset of the apt manager the runner needs.
type PackageManager interface {
	Available() bool
	Update(ctx context.Context) error
	Install(ctx context.Context, packages ...string) error
}

// InstallerFactory returns the CLI installer for a platform, or nil when
// the platform has none.
type InstallerFactory func(cloud.Platform) installer.CliInstaller

// Options configures a provisioning run.
type Options struct {
	// RunID identifies this run in logs and reports. Empty means a fresh
	// UUID.
	RunID string

	// Packages are the apt package names to install.
	Packages []string

	// SkipCloudCLI disables the detection and CLI install stages.
	SkipCloudCLI bool

	// DryRun reports what would happen without executing anything.
	DryRun bool

	// OnProgress receives stage updates. May be nil.
	OnProgress ProgressFunc
}

// Result summarizes a provisioning run.
type Result struct {
	RunID             string
	Platform          cloud.Platform
	InstalledPackages []string
	CloudCLI          string // binary name, "" if none installed
	CloudCLISkipped   bool   // true when already present or disabled
	DryRun            bool
}

// Runner executes the provisioning sequence. All stages run strictly
// sequentially; a one-shot setup gains nothing from concurrency.
type Runner struct {
	apt        PackageManager
	detector   Detector
	installers InstallerFactory
	logger     *slog.Logger
}

// NewRunner creates a runner. A nil logger is replaced with a discarding
// one; a nil installer factory means no cloud CLI is ever installed.
func NewRunner(apt PackageManager, detector Detector, installers InstallerFactory, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Runner{
		apt:        apt,
		detector:   detector,
		installers: installers,
		logger:     logger,
	}
}

// Run executes the provisioning sequence. Package failures abort the run.
// Detection failures never do: the cloud CLI stage is skipped and the
// machine still ends up with its baseline packages, which is the right
// outcome on bare metal and on unsupported clouds.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	if opts.RunID == "" {
		opts.RunID = uuid.NewString()
	}

	result := &Result{
		RunID:    opts.RunID,
		Platform: cloud.Unknown,
		DryRun:   opts.DryRun,
	}

	r.logger.Info("provisioning started", "run_id", opts.RunID,
		"packages", len(opts.Packages), "dry_run", opts.DryRun)

	if err := r.installPackages(ctx, opts, result); err != nil {
		opts.OnProgress.emit(StageError, "Package installation failed", err.Error(), true)
		return result, err
	}

	if opts.SkipCloudCLI {
		r.logger.Info("cloud CLI stage disabled")
		result.CloudCLISkipped = true
	} else {
		r.detectAndInstallCLI(ctx, opts, result)
	}

	opts.OnProgress.emit(StageComplete, "Provisioning complete", "", false)
	r.logger.Info("provisioning finished", "platform", result.Platform, "cloud_cli", result.CloudCLI)

	return result, nil
}

// installPackages runs the apt update and install stages.
func (r *Runner) installPackages(ctx context.Context, opts Options, result *Result) error {
	if len(opts.Packages) == 0 {
		r.logger.Info("no packages requested")
		return nil
	}

	opts.OnProgress.emit(StageAptUpdate, "Updating package index", "", false)
	if opts.DryRun {
		opts.OnProgress.emit(StagePackages, "Would install packages",
			strings.Join(opts.Packages, " "), false)
		result.InstalledPackages = opts.Packages
		return nil
	}

	if !r.apt.Available() {
		return fmt.Errorf("apt-get not found; vm-setup supports Debian/Ubuntu systems only")
	}

	if err := r.apt.Update(ctx); err != nil {
		return err
	}

	opts.OnProgress.emit(StagePackages, "Installing packages",
		strings.Join(opts.Packages, " "), false)
	if err := r.apt.Install(ctx, opts.Packages...); err != nil {
		return err
	}

	result.InstalledPackages = opts.Packages
	r.logger.Info("packages installed", "count", len(opts.Packages))
	return nil
}

// detectAndInstallCLI classifies the platform and installs its CLI.
func (r *Runner) detectAndInstallCLI(ctx context.Context, opts Options, result *Result) {
	opts.OnProgress.emit(StageDetect, "Detecting cloud platform", "", false)

	result.Platform = r.detector.Detect(ctx)
	if result.Platform == cloud.Unknown {
		opts.OnProgress.emit(StageDetect, "No cloud platform detected, skipping cloud CLI", "", false)
		result.CloudCLISkipped = true
		return
	}

	opts.OnProgress.emit(StageDetect,
		fmt.Sprintf("Detected %s", result.Platform.DisplayName()), "", false)

	if r.installers == nil {
		result.CloudCLISkipped = true
		return
	}
	inst := r.installers(result.Platform)
	if inst == nil {
		result.CloudCLISkipped = true
		return
	}

	if inst.Installed() {
		opts.OnProgress.emit(StageCloudCLI,
			fmt.Sprintf("%s already installed", inst.Name()), "", false)
		result.CloudCLI = inst.Name()
		result.CloudCLISkipped = true
		return
	}

	if opts.DryRun {
		opts.OnProgress.emit(StageCloudCLI,
			fmt.Sprintf("Would install %s CLI", result.Platform), "", false)
		result.CloudCLI = inst.Name()
		return
	}

	opts.OnProgress.emit(StageCloudCLI,
		fmt.Sprintf("Installing %s CLI", result.Platform), "", false)

	if err := inst.Install(ctx); err != nil {
		// A missing cloud CLI is not worth failing the whole run over.
		r.logger.Error("cloud CLI install failed", "platform", result.Platform, "error", err)
		opts.OnProgress.emit(StageCloudCLI, "Cloud CLI install failed", err.Error(), true)
		result.CloudCLISkipped = true
		return
	}

	result.CloudCLI = inst.Name()
	r.logger.Info("cloud CLI installed", "cli", inst.Name())
}
