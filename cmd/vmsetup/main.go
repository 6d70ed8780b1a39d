// Package main provides the vmsetup CLI for provisioning fresh
// Debian/Ubuntu virtual machines.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// version is set via -ldflags during build
var version = "dev"

func main() {
	rootCmd := newRootCmd()

	// Cobra handles error printing
	rootCmd.SilenceUsage = true

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd creates the root command for vmsetup
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "vmsetup",
		Short: "Debian/Ubuntu VM Provisioning Tool",
		Long: `vmsetup provisions a fresh Debian/Ubuntu virtual machine: it installs a
baseline set of common packages, detects which public cloud the VM runs
on by probing the instance metadata service, and installs that cloud's
CLI tool.

It supports:
  - Baseline package installation via apt with a configurable manifest
  - Cloud platform detection (AWS, Azure) with configurable probe order
  - Automatic AWS CLI / Azure CLI installation for the detected platform
  - Prerequisite checks via the doctor subcommand`,
		Version: version,
	}

	rootCmd.AddCommand(
		newProvisionCmd(),
		newDetectCmd(),
		newPackagesCmd(),
		newDoctorCmd(),
	)

	return rootCmd
}
