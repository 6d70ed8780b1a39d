package sysexec

import "context"

// Mock is a function-field executor for tests. Unset fields fall back to
// permissive defaults.
type Mock struct {
	LookPathFunc   func(file string) (string, error)
	RunFunc        func(name string, args ...string) (string, error)
	RunContextFunc func(ctx context.Context, env []string, name string, args ...string) (string, error)
	FileExistsFunc func(path string) bool

	// Calls records every command invocation (name followed by args).
	Calls [][]string
}

// LookPath finds the path to an executable.
func (m *Mock) LookPath(file string) (string, error) {
	if m.LookPathFunc != nil {
		return m.LookPathFunc(file)
	}
	return "/usr/bin/" + file, nil
}

// Run executes a command and returns its output.
func (m *Mock) Run(name string, args ...string) (string, error) {
	m.record(name, args)
	if m.RunFunc != nil {
		return m.RunFunc(name, args...)
	}
	return "", nil
}

// RunContext executes a command and returns its output.
func (m *Mock) RunContext(ctx context.Context, env []string, name string, args ...string) (string, error) {
	m.record(name, args)
	if m.RunContextFunc != nil {
		return m.RunContextFunc(ctx, env, name, args...)
	}
	if m.RunFunc != nil {
		return m.RunFunc(name, args...)
	}
	return "", nil
}

// FileExists checks if a file exists.
func (m *Mock) FileExists(path string) bool {
	if m.FileExistsFunc != nil {
		return m.FileExistsFunc(path)
	}
	return true
}

func (m *Mock) record(name string, args []string) {
	call := append([]string{name}, args...)
	m.Calls = append(m.Calls, call)
}
