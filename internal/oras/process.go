package oras

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"sync"
	"time"

	"golang.org/x/sys/unix"

	"github.com/uenv-tools/uenvpull/internal/messages"
)

// LaunchError reports that the oras client could not be located or started.
type LaunchError struct {
	// Path is the executable that failed to spawn; empty when resolution
	// itself failed.
	Path string
	Err  error
}

func (e *LaunchError) Error() string {
	if e.Path == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf(messages.OrasLaunchFmt, e.Path, e.Err)
}

func (e *LaunchError) Unwrap() error { return e.Err }

// Process is a handle to a running or finished oras subprocess with captured
// stdout and stderr. Exactly one owner is responsible for terminating or
// awaiting it on every exit path. Process is driven by a single supervising
// goroutine and is not safe for concurrent use.
type Process struct {
	cmd       *exec.Cmd
	stdout    bytes.Buffer
	stderr    bytes.Buffer
	done      chan error
	finished  bool
	code      int
	terminate sync.Once
}

// Launch starts the client with the given arguments and captured output
// streams. It returns without waiting; the caller owns the handle.
func (c *Client) Launch(args ...string) (*Process, error) {
	path, err := c.Resolve()
	if err != nil {
		return nil, err
	}
	p := &Process{done: make(chan error, 1)}
	p.cmd = exec.Command(path, args...)
	p.cmd.Stdout = &p.stdout
	p.cmd.Stderr = &p.stderr
	c.logf(messages.OrasCallingFmt, strings.Join(append([]string{path}, args...), " "))
	if err := p.cmd.Start(); err != nil {
		return nil, &LaunchError{Path: path, Err: err}
	}
	go func() { p.done <- p.cmd.Wait() }()
	return p, nil
}

// Poll reports whether the process has exited, without blocking. It may be
// called repeatedly; once it has reported an exit it keeps doing so.
func (p *Process) Poll() (exited bool, code int) {
	if p.finished {
		return true, p.code
	}
	select {
	case <-p.done:
		p.finish()
		return true, p.code
	default:
		return false, 0
	}
}

// Wait blocks until the process exits and returns its captured output and
// exit code. Calling Wait after Poll has observed the exit is fine; the
// captured output is complete either way.
func (p *Process) Wait() (stdout string, stderr string, code int) {
	if !p.finished {
		<-p.done
		p.finish()
	}
	return p.stdout.String(), p.stderr.String(), p.code
}

func (p *Process) finish() {
	p.finished = true
	p.code = p.cmd.ProcessState.ExitCode()
}

// Terminate sends SIGTERM to the process. It is idempotent and safe to call
// after the process has exited, so owners can defer it unconditionally.
func (p *Process) Terminate() {
	p.terminate.Do(func() {
		if p.cmd.Process != nil {
			_ = p.cmd.Process.Signal(unix.SIGTERM)
		}
	})
}

// Await drives proc to completion with a cooperative poll loop, sleeping
// interval between polls. The single blocking Wait is reserved for final
// output collection. On context cancellation the process is terminated and
// reaped before the context error is returned, so the child is never
// orphaned.
func Await(ctx context.Context, proc *Process, interval time.Duration) (stdout string, stderr string, code int, err error) {
	for {
		if exited, _ := proc.Poll(); exited {
			stdout, stderr, code = proc.Wait()
			return stdout, stderr, code, nil
		}
		select {
		case <-ctx.Done():
			proc.Terminate()
			proc.Wait()
			return "", "", 0, ctx.Err()
		case <-time.After(interval):
		}
	}
}
