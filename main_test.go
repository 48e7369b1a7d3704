package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goKeyTouch/keymaps"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append(args, "--config", filepath.Join(t.TempDir(), "none.toml")))
	err := cmd.Execute()
	return out.String(), err
}

func writeMappings(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "keymap.txt")
	body := "# test\nhold_triggers_continuous_tap=1\n30 400 300 A\n32 99999 10 D\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestListCmd(t *testing.T) {
	path := writeMappings(t)

	out, err := execute(t, "list", "-m", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Hold behavior: Continuous Tap")
	assert.Contains(t, out, "400")
	// clamped to the default screen width
	assert.Contains(t, out, "1080")
}

func TestListCmd_Empty(t *testing.T) {
	out, err := execute(t, "list", "-m", filepath.Join(t.TempDir(), "missing.txt"))
	require.NoError(t, err)
	assert.Contains(t, out, "No mappings.")
}

func TestClearCmd(t *testing.T) {
	path := writeMappings(t)

	out, err := execute(t, "clear", "-m", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Cleared 2 mapping(s)")

	snap, err := keymaps.NewStore(path).Load()
	require.NoError(t, err)
	assert.Empty(t, snap.Entries)
	assert.Equal(t, keymaps.ContinuousTap, snap.Policy)
}

func TestRootCmd_InvalidConfig(t *testing.T) {
	t.Setenv("KEYTOUCH_SCREEN_WIDTH", "0")
	_, err := execute(t, "list")
	assert.ErrorContains(t, err, "invalid configuration")
}
