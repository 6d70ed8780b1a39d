package doctor

import (
	"fmt"

	"github.com/jaspreet-dot-casa/vm-setup/pkg/sysexec"
)

// Fixer runs fix commands for missing prerequisites.
type Fixer struct {
	executor sysexec.Executor
}

// NewFixer creates a new Fixer.
func NewFixer() *Fixer {
	return &Fixer{executor: &sysexec.Real{}}
}

// NewFixerWithExecutor creates a new Fixer with a custom executor (for testing).
func NewFixerWithExecutor(exec sysexec.Executor) *Fixer {
	return &Fixer{executor: exec}
}

// CanFix returns true if the check has a fix command.
func (f *Fixer) CanFix(check Check) bool {
	return check.FixCommand != nil
}

// Fix runs the fix command for a check.
func (f *Fixer) Fix(check Check) error {
	if check.FixCommand == nil {
		return fmt.Errorf("no fix available for %s", check.Name)
	}

	// Fix commands are shell one-liners (pipes, &&), so run through sh.
	output, err := f.executor.Run("sh", "-c", check.FixCommand.Command)
	if err != nil {
		return fmt.Errorf("fix for %s failed: %s: %w", check.Name, output, err)
	}

	return nil
}

// FixAll runs fix commands for every missing check in the groups.
// Returns the IDs that were fixed and the first error encountered.
func (f *Fixer) FixAll(groups []CheckGroup) ([]string, error) {
	var fixed []string

	for _, group := range groups {
		for _, check := range group.Checks {
			if check.Status != StatusMissing || !f.CanFix(check) {
				continue
			}
			if err := f.Fix(check); err != nil {
				return fixed, err
			}
			fixed = append(fixed, check.ID)
		}
	}

	return fixed, nil
}
