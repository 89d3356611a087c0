package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"gamjatokki/internal/harness"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestRootListsCommands(t *testing.T) {
	out, err := execute(t, "--help")
	require.NoError(t, err)
	for _, name := range []string{"serve", "prepare-tests", "launch-config"} {
		assert.Contains(t, out, name)
	}
}

func TestLaunchConfigDefaults(t *testing.T) {
	t.Setenv("CI", "true")

	out, err := execute(t, "launch-config")
	require.NoError(t, err)

	var cfg harness.LaunchConfig
	require.NoError(t, yaml.Unmarshal([]byte(out), &cfg))
	assert.Equal(t, harness.DefaultLaunchConfig(true), cfg)
}

func TestLaunchConfigFileOverride(t *testing.T) {
	t.Setenv("CI", "")
	path := filepath.Join(t.TempDir(), "launch.yaml")
	require.NoError(t, os.WriteFile(path, []byte("headless: true\nserver:\n  port: 4100\n"), 0o644))

	out, err := execute(t, "launch-config", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "headless: true")
	assert.Contains(t, out, "port: 4100")
	assert.Contains(t, out, "devtools: true")
}

func TestLaunchConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "launch.yaml")
	require.NoError(t, os.WriteFile(path, []byte("viewport:\n  width: -1\n"), 0o644))

	_, err := execute(t, "launch-config", "--file", path)
	require.ErrorIs(t, err, harness.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "viewport.width")
}

func TestPrepareTests(t *testing.T) {
	root := t.TempDir()

	out, err := execute(t, "prepare-tests", "--root", root)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, len(harness.Directories))
	for _, dir := range harness.Directories {
		assert.DirExists(t, filepath.Join(root, dir))
	}
}
