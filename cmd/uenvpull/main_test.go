package main

// NOTE: Tests in this file mutate package-level globals (executeFunc,
// Version, Commit, BuildDate). Do not use t.Parallel(). Each test must
// restore globals via t.Cleanup().

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/uenv-tools/uenvpull/internal/pull"
)

func stubExecute(t *testing.T, err error) {
	t.Helper()
	orig := executeFunc
	executeFunc = func([]string, io.Writer, io.Writer) error { return err }
	t.Cleanup(func() { executeFunc = orig })
}

func runMainForTest(t *testing.T, err error) (stderr string, code int) {
	t.Helper()
	stubExecute(t, err)
	var errBuf bytes.Buffer
	code = 0
	runMain([]string{"uenvpull"}, io.Discard, &errBuf, func(c int) { code = c })
	return errBuf.String(), code
}

func TestRunMainSuccess(t *testing.T) {
	stderr, code := runMainForTest(t, nil)
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if stderr != "" {
		t.Fatalf("expected no stderr output, got %q", stderr)
	}
}

func TestRunMainFailure(t *testing.T) {
	stderr, code := runMainForTest(t, errors.New("image pull failed"))
	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if stderr != "image pull failed\n" {
		t.Fatalf("unexpected stderr: %q", stderr)
	}
}

func TestRunMainCancelledUsesInterruptExitCode(t *testing.T) {
	stderr, code := runMainForTest(t, pull.ErrCancelled)
	if code != 130 {
		t.Fatalf("expected exit 130, got %d", code)
	}
	if stderr == "" {
		t.Fatal("expected the cancellation to be reported on stderr")
	}
}

func TestVersionString(t *testing.T) {
	origVersion, origCommit, origDate := Version, Commit, BuildDate
	t.Cleanup(func() { Version, Commit, BuildDate = origVersion, origCommit, origDate })

	Version, Commit, BuildDate = "1.2.0", "unknown", "unknown"
	if got := versionString(); got != "1.2.0" {
		t.Fatalf("unexpected version string: %q", got)
	}

	Version, Commit, BuildDate = "1.2.0", "abcdef0", "2026-08-01"
	if got := versionString(); got != "1.2.0 (commit abcdef0, built 2026-08-01)" {
		t.Fatalf("unexpected version string: %q", got)
	}
}
