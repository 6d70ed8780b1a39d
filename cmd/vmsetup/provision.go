package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jaspreet-dot-casa/vm-setup/pkg/apt"
	"github.com/jaspreet-dot-casa/vm-setup/pkg/cloud"
	"github.com/jaspreet-dot-casa/vm-setup/pkg/config"
	"github.com/jaspreet-dot-casa/vm-setup/pkg/console"
	"github.com/jaspreet-dot-casa/vm-setup/pkg/installer"
	"github.com/jaspreet-dot-casa/vm-setup/pkg/logging"
	"github.com/jaspreet-dot-casa/vm-setup/pkg/packages"
	"github.com/jaspreet-dot-casa/vm-setup/pkg/provision"
	"github.com/jaspreet-dot-casa/vm-setup/pkg/tui"
)

// newProvisionCmd creates the provision subcommand
func newProvisionCmd() *cobra.Command {
	var configPath string
	var dryRun, skipCloudCLI, interactive, noSudo, verbose bool

	cmd := &cobra.Command{
		Use:   "provision",
		Short: "Provision this machine",
		Long: `Run the full provisioning sequence: refresh the apt index, install the
baseline packages, detect the cloud platform via the instance metadata
service, and install the matching cloud CLI.

Detection failures never abort the run; on bare metal or an unsupported
cloud the CLI step is simply skipped.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runProvision(configPath, dryRun, skipCloudCLI, interactive, noSudo, verbose)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath(), "Path to the config file")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would happen without changing anything")
	cmd.Flags().BoolVar(&skipCloudCLI, "skip-cloud-cli", false, "Skip cloud detection and CLI installation")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Pick packages interactively")
	cmd.Flags().BoolVar(&noSudo, "no-sudo", false, "Run apt and installers without sudo (already root)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Echo log lines to stderr")

	return cmd
}

// runProvision executes the provisioning sequence.
func runProvision(configPath string, dryRun, skipCloudCLI, interactive, noSudo, verbose bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	registry, err := packages.LoadBaseline()
	if err != nil {
		return fmt.Errorf("failed to load package manifest: %w", err)
	}
	packages.Apply(registry, cfg.ExtraPackages, cfg.SkipPackages)

	selection := registry.DefaultNames()
	if interactive {
		picked, confirmed, err := tui.RunPicker(registry)
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Cancelled.")
			return nil
		}
		selection = picked
	}

	runID := uuid.NewString()

	logOpts := logging.Options{
		Dir:   cfg.LogDir,
		RunID: runID,
	}
	if verbose {
		logOpts.Echo = os.Stderr
	}
	logger, closeLog, logPath, err := logging.New(logOpts)
	if err != nil {
		return err
	}
	defer closeLog()

	out := console.New(os.Stdout)
	out.Title("Provisioning " + hostnameOr("this machine"))
	out.Detail("run %s, log %s", runID, logPath)

	sudo := !noSudo && os.Geteuid() != 0
	aptMgr := apt.NewManager(sudo)
	detector := cloud.NewDetector(cfg.DetectorConfig(), logger)
	installers := func(p cloud.Platform) installer.CliInstaller {
		return installer.ForPlatform(p, installer.Options{Sudo: sudo})
	}

	runner := provision.NewRunner(aptMgr, detector, installers, logger)

	result, err := runner.Run(cmdContext(), provision.Options{
		RunID:        runID,
		Packages:     selection,
		SkipCloudCLI: skipCloudCLI,
		DryRun:       dryRun,
		OnProgress:   progressPrinter(out),
	})
	if err != nil {
		out.Error("Provisioning failed: %v", err)
		return err
	}

	printSummary(out, result)
	return nil
}

// progressPrinter turns progress events into console notes.
func progressPrinter(out *console.Console) provision.ProgressFunc {
	return func(e provision.ProgressEvent) {
		switch {
		case e.IsError:
			out.Warn("%s", e.Message)
			if e.Detail != "" {
				out.Detail("%s", e.Detail)
			}
		case e.Stage == provision.StageComplete:
			out.Success("%s", e.Message)
		default:
			out.Info("%s", e.Message)
			if e.Detail != "" {
				out.Detail("%s", e.Detail)
			}
		}
	}
}

// printSummary prints the run result.
func printSummary(out *console.Console, result *provision.Result) {
	fmt.Println()
	if result.DryRun {
		out.Info("Dry run: no changes were made")
	}
	out.Info("Packages: %d", len(result.InstalledPackages))
	out.Info("Platform: %s", result.Platform.DisplayName())
	switch {
	case result.CloudCLI != "":
		out.Info("Cloud CLI: %s", result.CloudCLI)
	case result.CloudCLISkipped:
		out.Info("Cloud CLI: skipped")
	}
}
