package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCmd(t *testing.T) {
	rootCmd := newRootCmd()

	assert.Equal(t, "vmsetup", rootCmd.Use)
	assert.Equal(t, "Debian/Ubuntu VM Provisioning Tool", rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
}

func TestRootCmdHelp(t *testing.T) {
	rootCmd := newRootCmd()
	rootCmd.SetArgs([]string{"--help"})

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)

	err := rootCmd.Execute()
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "vmsetup")
	assert.Contains(t, output, "provision")
	assert.Contains(t, output, "detect")
	assert.Contains(t, output, "packages")
	assert.Contains(t, output, "doctor")
}

func TestRootCmdVersion(t *testing.T) {
	rootCmd := newRootCmd()
	rootCmd.SetArgs([]string{"--version"})

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)

	err := rootCmd.Execute()
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "vmsetup version")
}

func TestProvisionCmdFlags(t *testing.T) {
	cmd := newProvisionCmd()

	for _, name := range []string{"config", "dry-run", "skip-cloud-cli", "interactive", "no-sudo", "verbose"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "missing flag %s", name)
	}
}

func TestDetectCmdFlags(t *testing.T) {
	cmd := newDetectCmd()

	assert.NotNil(t, cmd.Flags().Lookup("strict"))
	assert.NotNil(t, cmd.Flags().Lookup("config"))
}

func TestDefaultConfigPath(t *testing.T) {
	assert.NotEmpty(t, defaultConfigPath())
}

func TestHostnameOr(t *testing.T) {
	assert.NotEmpty(t, hostnameOr("fallback"))
}
