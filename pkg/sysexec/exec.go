// Package sysexec provides a small abstraction over running system
// commands, allowing every caller to be tested without touching the real
// system.
package sysexec

import (
	"bytes"
	"context"
	"os"
	"os/exec"
)

// Executor is an interface for executing commands, allowing for testing.
type Executor interface {
	// LookPath finds the path to an executable.
	LookPath(file string) (string, error)

	// Run executes a command and returns its output.
	Run(name string, args ...string) (string, error)

	// RunContext executes a command with the given context and extra
	// environment variables appended to the current environment.
	RunContext(ctx context.Context, env []string, name string, args ...string) (string, error)

	// FileExists checks if a file exists.
	FileExists(path string) bool
}

// Real is the default executor that uses the real system.
type Real struct{}

// LookPath finds the path to an executable.
func (e *Real) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// Run executes a command and returns its output.
func (e *Real) Run(name string, args ...string) (string, error) {
	return e.RunContext(context.Background(), nil, name, args...)
}

// RunContext executes a command and returns its output.
func (e *Real) RunContext(ctx context.Context, env []string, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	if len(env) > 0 {
		cmd.Env = append(os.Environ(), env...)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		// Some tools write their diagnostics to stderr only
		if stderr.Len() > 0 {
			return stderr.String(), err
		}
		return stdout.String(), err
	}

	output := stdout.String()
	if output == "" {
		output = stderr.String()
	}
	return output, nil
}

// FileExists checks if a file exists.
func (e *Real) FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
