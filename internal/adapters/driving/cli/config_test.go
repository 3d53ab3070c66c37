package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigCmd_ShowEmpty(t *testing.T) {
	out, err := execute(t, "config", "show")

	require.NoError(t, err)
	assert.Contains(t, out, "No configuration set.")
}

func TestConfigCmd_SetAndShow(t *testing.T) {
	useConfigDir(t, t.TempDir())

	out, err := execute(t, "config", "set", "solve.word_list", "custom.txt")
	require.NoError(t, err)
	assert.Contains(t, out, "solve.word_list = custom.txt")

	out, err = execute(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "solve.word_list = custom.txt")
}

func TestConfigCmd_SetBool(t *testing.T) {
	useConfigDir(t, t.TempDir())

	out, err := execute(t, "config", "set", "solve.no_filter", "true")
	require.NoError(t, err)
	assert.Contains(t, out, "solve.no_filter = true")
}

func TestConfigCmd_SetBadBool(t *testing.T) {
	_, err := execute(t, "config", "set", "solve.no_filter", "maybe")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "solve.no_filter")
}

func TestConfigCmd_SetUnknownKey(t *testing.T) {
	_, err := execute(t, "config", "set", "solve.typo", "x")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown config key")
}

func TestConfigCmd_Unset(t *testing.T) {
	useConfigDir(t, t.TempDir())

	_, err := execute(t, "config", "set", "solve.word_list", "custom.txt")
	require.NoError(t, err)

	out, err := execute(t, "config", "unset", "solve.word_list")
	require.NoError(t, err)
	assert.Contains(t, out, "unset solve.word_list")

	out, err = execute(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "No configuration set.")
}

func TestConfigCmd_UnsetUnknownKey(t *testing.T) {
	_, err := execute(t, "config", "unset", "solve.typo")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown config key")
}
