package apt

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaspreet-dot-casa/vm-setup/pkg/sysexec"
)

func TestUpdate(t *testing.T) {
	mock := &sysexec.Mock{}
	m := NewManagerWithExecutor(mock, false)

	err := m.Update(context.Background())
	require.NoError(t, err)

	require.Len(t, mock.Calls, 1)
	assert.Equal(t, []string{"apt-get", "update", "-y"}, mock.Calls[0])
}

func TestUpdateWithSudo(t *testing.T) {
	mock := &sysexec.Mock{}
	m := NewManagerWithExecutor(mock, true)

	err := m.Update(context.Background())
	require.NoError(t, err)

	require.Len(t, mock.Calls, 1)
	assert.Equal(t, []string{"sudo", "apt-get", "update", "-y"}, mock.Calls[0])
}

func TestInstall(t *testing.T) {
	mock := &sysexec.Mock{}
	m := NewManagerWithExecutor(mock, false)

	err := m.Install(context.Background(), "curl", "jq")
	require.NoError(t, err)

	require.Len(t, mock.Calls, 1)
	assert.Equal(t, []string{"apt-get", "install", "-y", "-q", "curl", "jq"}, mock.Calls[0])
}

func TestInstallNothing(t *testing.T) {
	mock := &sysexec.Mock{}
	m := NewManagerWithExecutor(mock, false)

	err := m.Install(context.Background())
	require.NoError(t, err)
	assert.Empty(t, mock.Calls)
}

func TestInstallError(t *testing.T) {
	mock := &sysexec.Mock{
		RunContextFunc: func(_ context.Context, _ []string, _ string, _ ...string) (string, error) {
			return "E: Unable to locate package nosuchthing\nmore output", errors.New("exit status 100")
		},
	}
	m := NewManagerWithExecutor(mock, false)

	err := m.Install(context.Background(), "nosuchthing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nosuchthing")
	assert.Contains(t, err.Error(), "Unable to locate package")
	assert.NotContains(t, err.Error(), "more output")
}

func TestIsInstalled(t *testing.T) {
	mock := &sysexec.Mock{
		RunContextFunc: func(_ context.Context, _ []string, _ string, args ...string) (string, error) {
			if args[len(args)-1] == "curl" {
				return "install ok installed", nil
			}
			return "", errors.New("no packages found")
		},
	}
	m := NewManagerWithExecutor(mock, false)

	assert.True(t, m.IsInstalled(context.Background(), "curl"))
	assert.False(t, m.IsInstalled(context.Background(), "nothere"))
}

func TestAvailable(t *testing.T) {
	m := NewManagerWithExecutor(&sysexec.Mock{}, false)
	assert.True(t, m.Available())

	missing := &sysexec.Mock{
		LookPathFunc: func(string) (string, error) { return "", errors.New("not found") },
	}
	assert.False(t, NewManagerWithExecutor(missing, false).Available())
}
