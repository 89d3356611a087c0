package harness

import (
	"errors"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStopReapsServerWhenGroupKillFails(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses a POSIX command")
	}
	denied := errors.New("operation not permitted")
	orig := killGroup
	killGroup = func(*exec.Cmd) error { return denied }
	t.Cleanup(func() { killGroup = orig })

	proc, err := StartServer(ServerConfig{Command: "sleep 30"}, t.TempDir(), filepath.Join(t.TempDir(), "server.log"))
	require.NoError(t, err)

	err = proc.Stop()
	require.ErrorIs(t, err, denied)
	assert.Contains(t, err.Error(), "kill server")
	// The child was killed directly and waited on.
	require.NotNil(t, proc.cmd.ProcessState)
	assert.False(t, proc.cmd.ProcessState.Success())

	// Once stopped, the outcome is sticky.
	assert.ErrorIs(t, proc.Stop(), denied)
}
