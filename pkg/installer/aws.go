package installer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jaspreet-dot-casa/vm-setup/pkg/cloud"
	"github.com/jaspreet-dot-casa/vm-setup/pkg/download"
)

// AWSInstallerURL is the vendor-provided AWS CLI v2 bundle for x86_64 Linux.
const AWSInstallerURL = "https://awscli.amazonaws.com/awscli-exe-linux-x86_64.zip"

// AWSInstaller installs the AWS CLI v2 by downloading the vendor zip
// bundle, extracting it, and running the bundled install script.
type AWSInstaller struct {
	opts Options
	url  string
}

// NewAWSInstaller creates an AWS CLI installer.
func NewAWSInstaller(opts Options) *AWSInstaller {
	return &AWSInstaller{opts: opts.normalize(), url: AWSInstallerURL}
}

// SetURL overrides the installer download URL (for testing).
func (i *AWSInstaller) SetURL(url string) {
	i.url = url
}

// Platform returns cloud.AWS.
func (i *AWSInstaller) Platform() cloud.Platform {
	return cloud.AWS
}

// Name returns the installed binary name.
func (i *AWSInstaller) Name() string {
	return "aws"
}

// Installed reports whether the aws binary is on the PATH.
func (i *AWSInstaller) Installed() bool {
	_, err := i.opts.Executor.LookPath("aws")
	return err == nil
}

// Install downloads the vendor bundle, unzips it, and runs ./aws/install.
func (i *AWSInstaller) Install(ctx context.Context) error {
	workDir := i.opts.WorkDir
	if workDir == "" {
		dir, err := os.MkdirTemp("", "awscli-install-")
		if err != nil {
			return fmt.Errorf("failed to create work directory: %w", err)
		}
		defer os.RemoveAll(dir)
		workDir = dir
	}

	zipPath := filepath.Join(workDir, "awscliv2.zip")
	err := i.opts.Downloader.Download(ctx, download.Options{
		URL:      i.url,
		DestPath: zipPath,
	})
	if err != nil {
		return fmt.Errorf("failed to download AWS CLI installer: %w", err)
	}

	if _, err := i.opts.Executor.RunContext(ctx, nil, "unzip", "-q", "-o", zipPath, "-d", workDir); err != nil {
		return fmt.Errorf("failed to extract AWS CLI installer: %w", err)
	}

	installScript := filepath.Join(workDir, "aws", "install")
	name, args := sudoCommand(i.opts.Sudo, installScript)
	if out, err := i.opts.Executor.RunContext(ctx, nil, name, args...); err != nil {
		return fmt.Errorf("AWS CLI install script failed: %s: %w", out, err)
	}

	return nil
}
