package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
)

// defaultConfigPath returns the default config file location.
func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "vm-setup.yaml"
	}
	return filepath.Join(home, ".config", "vm-setup", "config.yaml")
}

// hostnameOr returns the hostname, or the fallback if it cannot be read.
func hostnameOr(fallback string) string {
	name, err := os.Hostname()
	if err != nil || name == "" {
		return fallback
	}
	return name
}

// cmdContext returns a context cancelled on SIGINT/SIGTERM, so a stuck
// vendor installer can be interrupted cleanly.
func cmdContext() context.Context {
	ctx, _ := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	return ctx
}
