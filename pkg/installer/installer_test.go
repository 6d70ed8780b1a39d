package installer

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaspreet-dot-casa/vm-setup/pkg/cloud"
	"github.com/jaspreet-dot-casa/vm-setup/pkg/sysexec"
)

func TestForPlatform(t *testing.T) {
	opts := Options{Executor: &sysexec.Mock{}}

	aws := ForPlatform(cloud.AWS, opts)
	require.NotNil(t, aws)
	assert.Equal(t, "aws", aws.Name())
	assert.Equal(t, cloud.AWS, aws.Platform())

	azure := ForPlatform(cloud.Azure, opts)
	require.NotNil(t, azure)
	assert.Equal(t, "az", azure.Name())
	assert.Equal(t, cloud.Azure, azure.Platform())

	// No CLI exists for an undetected platform.
	assert.Nil(t, ForPlatform(cloud.Unknown, opts))
}

func TestInstalled(t *testing.T) {
	onPath := &sysexec.Mock{}
	assert.True(t, NewAWSInstaller(Options{Executor: onPath}).Installed())

	missing := &sysexec.Mock{
		LookPathFunc: func(string) (string, error) { return "", errors.New("not found") },
	}
	assert.False(t, NewAWSInstaller(Options{Executor: missing}).Installed())
	assert.False(t, NewAzureInstaller(Options{Executor: missing}).Installed())
}

func TestAWSInstall(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("fake zip bundle"))
	}))
	defer ts.Close()

	mock := &sysexec.Mock{}
	i := NewAWSInstaller(Options{
		Executor: mock,
		Sudo:     true,
		WorkDir:  t.TempDir(),
	})
	i.SetURL(ts.URL)

	err := i.Install(context.Background())
	require.NoError(t, err)

	// Expect an unzip followed by the sudo'd vendor install script.
	require.Len(t, mock.Calls, 2)
	assert.Equal(t, "unzip", mock.Calls[0][0])
	assert.Equal(t, "sudo", mock.Calls[1][0])
	assert.Contains(t, mock.Calls[1][1], "aws/install")
}

func TestAWSInstallDownloadFails(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusGone)
	}))
	defer ts.Close()

	mock := &sysexec.Mock{}
	i := NewAWSInstaller(Options{Executor: mock, WorkDir: t.TempDir()})
	i.SetURL(ts.URL)

	err := i.Install(context.Background())
	require.Error(t, err)
	assert.Empty(t, mock.Calls, "nothing should run when the download fails")
}

func TestAzureInstall(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("#!/bin/bash\necho fake bootstrap\n"))
	}))
	defer ts.Close()

	mock := &sysexec.Mock{}
	i := NewAzureInstaller(Options{
		Executor: mock,
		Sudo:     true,
		WorkDir:  t.TempDir(),
	})
	i.SetURL(ts.URL)

	err := i.Install(context.Background())
	require.NoError(t, err)

	require.Len(t, mock.Calls, 1)
	assert.Equal(t, "sudo", mock.Calls[0][0])
	assert.Equal(t, "bash", mock.Calls[0][1])
	assert.Contains(t, mock.Calls[0][2], "install-azure-cli.sh")
}

func TestAzureInstallScriptFails(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("#!/bin/bash\nexit 1\n"))
	}))
	defer ts.Close()

	mock := &sysexec.Mock{
		RunContextFunc: func(_ context.Context, _ []string, _ string, _ ...string) (string, error) {
			return "apt broke", errors.New("exit status 1")
		},
	}
	i := NewAzureInstaller(Options{Executor: mock, WorkDir: t.TempDir()})
	i.SetURL(ts.URL)

	err := i.Install(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "apt broke")
}
