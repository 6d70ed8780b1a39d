package installer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jaspreet-dot-casa/vm-setup/pkg/cloud"
	"github.com/jaspreet-dot-casa/vm-setup/pkg/download"
)

// AzureBootstrapURL is Microsoft's shell bootstrap for Debian-based
// systems (the documented `curl -sL ... | sudo bash` install path).
const AzureBootstrapURL = "https://aka.ms/InstallAzureCLIDeb"

// AzureInstaller installs the Azure CLI by downloading the vendor shell
// bootstrap and running it through bash.
type AzureInstaller struct {
	opts Options
	url  string
}

// NewAzureInstaller creates an Azure CLI installer.
func NewAzureInstaller(opts Options) *AzureInstaller {
	return &AzureInstaller{opts: opts.normalize(), url: AzureBootstrapURL}
}

// SetURL overrides the bootstrap download URL (for testing).
func (i *AzureInstaller) SetURL(url string) {
	i.url = url
}

// Platform returns cloud.Azure.
func (i *AzureInstaller) Platform() cloud.Platform {
	return cloud.Azure
}

// Name returns the installed binary name.
func (i *AzureInstaller) Name() string {
	return "az"
}

// Installed reports whether the az binary is on the PATH.
func (i *AzureInstaller) Installed() bool {
	_, err := i.opts.Executor.LookPath("az")
	return err == nil
}

// Install downloads the vendor bootstrap script and executes it with bash.
// Downloading to a file rather than piping keeps the executed script
// inspectable in the work directory on failure.
func (i *AzureInstaller) Install(ctx context.Context) error {
	workDir := i.opts.WorkDir
	if workDir == "" {
		dir, err := os.MkdirTemp("", "azurecli-install-")
		if err != nil {
			return fmt.Errorf("failed to create work directory: %w", err)
		}
		defer os.RemoveAll(dir)
		workDir = dir
	}

	scriptPath := filepath.Join(workDir, "install-azure-cli.sh")
	err := i.opts.Downloader.Download(ctx, download.Options{
		URL:      i.url,
		DestPath: scriptPath,
	})
	if err != nil {
		return fmt.Errorf("failed to download Azure CLI bootstrap: %w", err)
	}

	name, args := sudoCommand(i.opts.Sudo, "bash", scriptPath)
	if out, err := i.opts.Executor.RunContext(ctx, nil, name, args...); err != nil {
		return fmt.Errorf("Azure CLI bootstrap failed: %s: %w", out, err)
	}

	return nil
}
