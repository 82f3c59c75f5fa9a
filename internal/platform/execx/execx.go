// Package execx runs external tools (pip, git, python) as blocking subprocesses.
//
// Every acquisition strategy goes through a Runner so that environment
// overrides travel with the command instead of being set on the process,
// and so tests can substitute a recording fake.
package execx

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sort"
	"strings"
	"sync"
	"time"

	"modelfetch/internal/platform/errors"
	"modelfetch/internal/platform/logx"
)

// Command describes a single subprocess invocation.
type Command struct {
	Name string
	Args []string

	// Dir is the working directory; empty means the current one.
	Dir string

	// Env is layered over os.Environ(). Keys set here win.
	Env map[string]string

	// OnLine receives each stdout line as it is produced (optional).
	OnLine func(line string)
}

// String renders the command line for logs and remediation text.
func (c Command) String() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// Result holds what a finished subprocess produced.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
	Duration time.Duration
}

// Runner executes commands and resolves binaries.
type Runner interface {
	Run(ctx context.Context, cmd Command) (Result, error)
	LookPath(name string) (string, error)
}

// ExitError is returned when the process ran but exited non-zero.
type ExitError struct {
	Command  string
	ExitCode int
	Stderr   string
}

func (e *ExitError) Error() string {
	msg := fmt.Sprintf("%s exited with status %d", e.Command, e.ExitCode)
	if tail := lastLines(e.Stderr, 3); tail != "" {
		msg += ": " + tail
	}
	return msg
}

// LocalRunner runs commands on the host with os/exec.
type LocalRunner struct {
	logger logx.Logger

	// GracePeriod is how long a cancelled process gets between SIGINT and SIGKILL.
	GracePeriod time.Duration
}

// NewLocalRunner creates a runner that logs through logger.
func NewLocalRunner(logger logx.Logger) *LocalRunner {
	return &LocalRunner{
		logger:      logger.With("component", "execx"),
		GracePeriod: 5 * time.Second,
	}
}

// LookPath resolves name on PATH. A miss is reported as errors.ErrToolMissing.
func (r *LocalRunner) LookPath(name string) (string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", errors.Wrapf(errors.ErrToolMissing, "%s not found in PATH", name)
	}
	return path, nil
}

// Run starts the command, streams stdout line by line, captures stderr in the
// background and waits for the process to exit.
func (r *LocalRunner) Run(ctx context.Context, c Command) (Result, error) {
	var res Result
	start := time.Now()

	path, err := r.LookPath(c.Name)
	if err != nil {
		return res, err
	}

	r.logger.Debug("executing command", "cmd", c.String(), "dir", c.Dir)

	cmd := exec.CommandContext(ctx, path, c.Args...)
	cmd.Dir = c.Dir
	cmd.Env = Environ(os.Environ(), c.Env)

	// Interrupt first; WaitDelay escalates to SIGKILL.
	cmd.Cancel = func() error {
		if err := cmd.Process.Signal(os.Interrupt); err != nil && err != os.ErrProcessDone {
			return cmd.Process.Kill()
		}
		return nil
	}
	cmd.WaitDelay = r.GracePeriod

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return res, fmt.Errorf("failed to create stdout pipe: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return res, fmt.Errorf("failed to create stderr pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return res, fmt.Errorf("failed to start %s: %w", c.Name, err)
	}

	// Read stderr in background to prevent blocking
	var stderrBuf bytes.Buffer
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if _, err := io.Copy(&stderrBuf, stderr); err != nil {
			r.logger.Debug("error reading stderr", "error", err.Error())
		}
	}()

	var stdoutBuf bytes.Buffer
	scanner := bufio.NewScanner(stdout)
	scanner.Buffer(make([]byte, 0, 64*1024), 10*1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		stdoutBuf.WriteString(line)
		stdoutBuf.WriteByte('\n')
		if c.OnLine != nil {
			c.OnLine(line)
		}
	}
	if err := scanner.Err(); err != nil {
		r.logger.Warn("scanner error", "error", err.Error())
	}

	wg.Wait()
	waitErr := cmd.Wait()

	res.Stdout = stdoutBuf.String()
	res.Stderr = stderrBuf.String()
	res.Duration = time.Since(start)
	if cmd.ProcessState != nil {
		res.ExitCode = cmd.ProcessState.ExitCode()
	}

	if waitErr != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			if ctxErr == context.DeadlineExceeded {
				return res, errors.Wrapf(errors.ErrTimeout, "%s", c.String())
			}
			return res, errors.Wrapf(ctxErr, "%s", c.String())
		}
		r.logger.Debug("command failed", "cmd", c.String(), "exit_code", res.ExitCode, "duration", res.Duration.String())
		return res, &ExitError{Command: c.String(), ExitCode: res.ExitCode, Stderr: res.Stderr}
	}

	r.logger.Debug("command completed", "cmd", c.String(), "duration", res.Duration.String())
	return res, nil
}

// Environ layers overrides over base (KEY=VALUE form). Overridden keys are
// removed from base so the child sees exactly one value.
func Environ(base []string, overrides map[string]string) []string {
	if len(overrides) == 0 {
		return append([]string{}, base...)
	}

	out := make([]string, 0, len(base)+len(overrides))
	for _, kv := range base {
		key, _, _ := strings.Cut(kv, "=")
		if _, ok := overrides[key]; ok {
			continue
		}
		out = append(out, kv)
	}

	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		out = append(out, k+"="+overrides[k])
	}
	return out
}

func lastLines(s string, n int) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.TrimSpace(strings.Join(lines, " | "))
}
