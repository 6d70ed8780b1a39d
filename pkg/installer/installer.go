// Package installer installs the vendor-provided cloud CLI for the
// detected platform. Installers shell out to the vendor bootstrap, so the
// detector stays pure and each installer is independently testable.
package installer

import (
	"context"

	"github.com/jaspreet-dot-casa/vm-setup/pkg/cloud"
	"github.com/jaspreet-dot-casa/vm-setup/pkg/download"
	"github.com/jaspreet-dot-casa/vm-setup/pkg/sysexec"
)

// CliInstaller installs a provider's command-line tool.
type CliInstaller interface {
	// Platform returns the platform this installer serves.
	Platform() cloud.Platform

	// Name returns the installed binary name (e.g., "aws", "az").
	Name() string

	// Installed reports whether the CLI is already on the PATH.
	Installed() bool

	// Install downloads and runs the vendor installer.
	Install(ctx context.Context) error
}

// Options holds the collaborators shared by all installers.
type Options struct {
	Executor   sysexec.Executor
	Downloader *download.Downloader

	// Sudo prepends sudo to privileged install steps.
	Sudo bool

	// WorkDir is where installer artifacts are downloaded. Empty means a
	// fresh temp directory per install.
	WorkDir string
}

// normalize fills nil collaborators with real implementations.
func (o Options) normalize() Options {
	if o.Executor == nil {
		o.Executor = &sysexec.Real{}
	}
	if o.Downloader == nil {
		o.Downloader = download.NewDownloader()
	}
	return o
}

// ForPlatform returns the installer for a platform, or nil if the platform
// has no CLI (Unknown).
func ForPlatform(p cloud.Platform, opts Options) CliInstaller {
	opts = opts.normalize()
	switch p {
	case cloud.AWS:
		return NewAWSInstaller(opts)
	case cloud.Azure:
		return NewAzureInstaller(opts)
	default:
		return nil
	}
}

// sudoCommand prepends sudo when configured.
func sudoCommand(sudo bool, name string, args ...string) (string, []string) {
	if sudo {
		return "sudo", append([]string{name}, args...)
	}
	return name, args
}
