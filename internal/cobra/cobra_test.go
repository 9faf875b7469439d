package cobra

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) error {
	t.Helper()
	cmd := InitCLI()
	cmd.SetArgs(args)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	return cmd.Execute()
}

func TestCLI_Configure(t *testing.T) {
	err := execute(t, "configure", "--children", "11", "--parity", "1", "--spares", "2", "--data", "8", "--groups", "1", "--ashift", "9")
	require.NoError(t, err)
}

func TestCLI_Configure_RejectsBadGeometry(t *testing.T) {
	err := execute(t, "configure", "--children", "2", "--parity", "1", "--spares", "1", "--data", "8", "--groups", "1", "--ashift", "9")
	assert.Error(t, err)
}

func TestCLI_WriteRequiresPayload(t *testing.T) {
	err := execute(t, "write", "--children", "11", "--parity", "1", "--spares", "1", "--data", "8", "--groups", "1", "--ashift", "9")
	assert.Error(t, err)
}

func TestCLI_WriteThenFailThenHeal(t *testing.T) {
	err := execute(t, "write", "--children", "11", "--parity", "1", "--spares", "2", "--data", "8", "--groups", "1", "--ashift", "9", "--payload", "hello world")
	require.NoError(t, err)

	err = execute(t, "fail", "--children", "11", "--parity", "1", "--spares", "2", "--data", "8", "--groups", "1", "--ashift", "9", "--child", "0")
	require.NoError(t, err)

	err = execute(t, "heal", "--children", "11", "--parity", "1", "--spares", "2", "--data", "8", "--groups", "1", "--ashift", "9", "--child", "0")
	require.NoError(t, err)
}

func TestCLI_Version(t *testing.T) {
	err := execute(t, "version")
	require.NoError(t, err)
}
