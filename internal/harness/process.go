package harness

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"sync"
)

// killGroup is swapped in tests.
var killGroup = killProcess

// ServerProcess is a server started by StartServer.
type ServerProcess struct {
	cmd     *exec.Cmd
	logFile *os.File
	once    sync.Once
	err     error
}

// StartServer runs cfg.Command in dir with PORT and cfg.Env added to the
// environment. Output goes to logPath.
func StartServer(cfg ServerConfig, dir, logPath string) (*ServerProcess, error) {
	fields := strings.Fields(cfg.Command)
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: empty server command", ErrInvalidConfig)
	}

	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open server log: %w", err)
	}

	cmd := exec.Command(fields[0], fields[1:]...)
	cmd.Dir = dir
	cmd.Stdout = logFile
	cmd.Stderr = logFile
	cmd.Env = append(os.Environ(), "PORT="+strconv.Itoa(cfg.Port))
	for k, v := range cfg.Env {
		cmd.Env = append(cmd.Env, k+"="+v)
	}
	configureProcess(cmd)

	if err := cmd.Start(); err != nil {
		logFile.Close()
		return nil, fmt.Errorf("start %q: %w", cfg.Command, err)
	}
	return &ServerProcess{cmd: cmd, logFile: logFile}, nil
}

// PID returns the process ID of the started command.
func (p *ServerProcess) PID() int {
	return p.cmd.Process.Pid
}

// Stop kills the server and everything it spawned, then reaps it. Safe to
// call more than once.
func (p *ServerProcess) Stop() error {
	p.once.Do(func() {
		defer p.logFile.Close()
		if err := killGroup(p.cmd); err != nil && !errors.Is(err, os.ErrProcessDone) {
			p.err = fmt.Errorf("kill server: %w", err)
			// The group is out of reach; the direct child must still be reaped.
			if p.cmd.Process.Kill() == nil {
				_ = p.cmd.Wait()
			} else {
				_ = p.cmd.Process.Release()
			}
			return
		}
		var exitErr *exec.ExitError
		if err := p.cmd.Wait(); err != nil && !errors.As(err, &exitErr) {
			p.err = fmt.Errorf("wait server: %w", err)
		}
	})
	return p.err
}
