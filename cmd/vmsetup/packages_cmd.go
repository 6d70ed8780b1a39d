package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jaspreet-dot-casa/vm-setup/pkg/config"
	"github.com/jaspreet-dot-casa/vm-setup/pkg/packages"
)

// newPackagesCmd creates the packages subcommand
func newPackagesCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "packages",
		Short: "List the baseline packages",
		Long: `List the packages a provisioning run would install, grouped by
category. Entries disabled via skip_packages are shown but marked.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runPackages(configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath(), "Path to the config file")

	return cmd
}

// runPackages lists the effective package manifest.
func runPackages(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	registry, err := packages.LoadBaseline()
	if err != nil {
		return fmt.Errorf("failed to load package manifest: %w", err)
	}
	packages.Apply(registry, cfg.ExtraPackages, cfg.SkipPackages)

	fmt.Printf("Found %d packages (%d enabled):\n\n",
		len(registry.Packages), len(registry.DefaultNames()))

	for _, category := range registry.Categories() {
		fmt.Printf("%s:\n", category)
		for _, pkg := range registry.ByCategory[category] {
			desc := pkg.Description
			if desc == "" {
				desc = "(no description)"
			}
			marker := ""
			if !pkg.Default {
				marker = " [disabled]"
			}
			fmt.Printf("  - %s: %s%s\n", pkg.Name, desc, marker)
		}
		fmt.Println()
	}

	return nil
}
