package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jaspreet-dot-casa/vm-setup/pkg/cloud"
	"github.com/jaspreet-dot-casa/vm-setup/pkg/config"
)

// newDetectCmd creates the detect subcommand
func newDetectCmd() *cobra.Command {
	var configPath string
	var strict, verbose bool

	cmd := &cobra.Command{
		Use:   "detect",
		Short: "Detect the cloud platform",
		Long: `Probe the instance metadata service and print the detected cloud
platform (aws, azure, or unknown).

Detection never errors: an unreachable metadata endpoint simply prints
"unknown". With --strict the exit code is 1 when no platform is detected,
for use in scripts that must branch on the result.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runDetect(configPath, strict, verbose)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath(), "Path to the config file")
	cmd.Flags().BoolVar(&strict, "strict", false, "Exit non-zero when no platform is detected")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log probe details to stderr")

	return cmd
}

// runDetect runs the detector once and prints the result.
func runDetect(configPath string, strict, verbose bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := slog.New(slog.DiscardHandler)
	if verbose {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}

	detector := cloud.NewDetector(cfg.DetectorConfig(), logger)
	platform := detector.Detect(cmdContext())

	fmt.Println(platform)

	if strict && platform == cloud.Unknown {
		return fmt.Errorf("no cloud platform detected")
	}
	return nil
}
