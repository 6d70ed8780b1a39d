// Package apt wraps the Debian/Ubuntu package manager for non-interactive
// provisioning runs.
package apt

import (
	"context"
	"fmt"
	"strings"

	"github.com/jaspreet-dot-casa/vm-setup/pkg/sysexec"
)

// noninteractiveEnv suppresses all apt prompts; a fresh VM has nobody to
// answer them.
var noninteractiveEnv = []string{"DEBIAN_FRONTEND=noninteractive"}

// Manager installs packages via apt-get.
type Manager struct {
	executor sysexec.Executor
	sudo     bool
}

// NewManager creates a Manager with the real executor. Sudo is prepended
// to every command unless the process already runs as root.
func NewManager(sudo bool) *Manager {
	return &Manager{
		executor: &sysexec.Real{},
		sudo:     sudo,
	}
}

// NewManagerWithExecutor creates a Manager with a custom executor (for testing).
func NewManagerWithExecutor(exec sysexec.Executor, sudo bool) *Manager {
	return &Manager{
		executor: exec,
		sudo:     sudo,
	}
}

// Available reports whether apt-get exists on this system.
func (m *Manager) Available() bool {
	_, err := m.executor.LookPath("apt-get")
	return err == nil
}

// Update refreshes the apt package index.
func (m *Manager) Update(ctx context.Context) error {
	name, args := m.command("apt-get", "update", "-y")
	out, err := m.executor.RunContext(ctx, noninteractiveEnv, name, args...)
	if err != nil {
		return fmt.Errorf("apt-get update failed: %s: %w", firstLine(out), err)
	}
	return nil
}

// Install installs the given packages in a single apt-get invocation.
func (m *Manager) Install(ctx context.Context, packages ...string) error {
	if len(packages) == 0 {
		return nil
	}

	name, args := m.command("apt-get", append([]string{"install", "-y", "-q"}, packages...)...)
	out, err := m.executor.RunContext(ctx, noninteractiveEnv, name, args...)
	if err != nil {
		return fmt.Errorf("apt-get install failed for %s: %s: %w",
			strings.Join(packages, " "), firstLine(out), err)
	}
	return nil
}

// IsInstalled reports whether a package is already installed, via dpkg-query.
func (m *Manager) IsInstalled(ctx context.Context, pkg string) bool {
	out, err := m.executor.RunContext(ctx, nil, "dpkg-query", "-W", "-f=${Status}", pkg)
	if err != nil {
		return false
	}
	return strings.Contains(out, "install ok installed")
}

// command prepends sudo when configured.
func (m *Manager) command(name string, args ...string) (string, []string) {
	if m.sudo {
		return "sudo", append([]string{name}, args...)
	}
	return name, args
}

// firstLine trims command output to something fit for an error message.
func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	if s == "" {
		return "(no output)"
	}
	return s
}
