package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jaspreet-dot-casa/vm-setup/pkg/console"
	"github.com/jaspreet-dot-casa/vm-setup/pkg/doctor"
)

// newDoctorCmd creates the doctor subcommand
func newDoctorCmd() *cobra.Command {
	var fix bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check provisioning prerequisites",
		Long: `Check that the tools vmsetup depends on are present: apt, sudo,
download tools for the vendor CLI installers, and the cloud CLIs
themselves. Missing prerequisites are reported with a fix command.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runDoctor(fix)
		},
	}

	cmd.Flags().BoolVar(&fix, "fix", false, "Attempt to install missing prerequisites")

	return cmd
}

// runDoctor runs all prerequisite checks and prints the results.
func runDoctor(fix bool) error {
	out := console.New(os.Stdout)
	checker := doctor.NewChecker()

	groups := checker.CheckAll()

	if fix && checker.HasIssues(groups) {
		fixer := doctor.NewFixer()
		fixed, err := fixer.FixAll(groups)
		for _, id := range fixed {
			out.Info("installed %s", id)
		}
		if err != nil {
			return fmt.Errorf("fixing prerequisites: %w", err)
		}
		// Re-check so the report reflects what the fixes changed.
		groups = checker.CheckAll()
	}

	for _, group := range groups {
		out.Title(group.Name)
		for _, check := range group.Checks {
			switch check.Status {
			case doctor.StatusOK:
				out.Success("%s: %s", check.Name, check.Message)
			case doctor.StatusWarning:
				out.Warn("%s: %s", check.Name, check.Message)
			default:
				out.Error("%s: %s", check.Name, check.Message)
				if check.FixCommand != nil {
					out.Detail("fix: %s", check.FixCommand.Command)
				}
			}
		}
		fmt.Println()
	}

	summary := checker.GetSummary(groups)
	if checker.HasIssues(groups) {
		out.Error("%d of %d checks need attention", summary.Missing+summary.Errors, summary.Total)
		return fmt.Errorf("prerequisites missing")
	}

	out.Success("All %d checks passed (%d warnings)", summary.Total, summary.Warnings)
	return nil
}
