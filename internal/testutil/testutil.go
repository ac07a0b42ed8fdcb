// Package testutil provides executable shell stubs that stand in for the
// external oras client in tests.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// WriteStub writes an executable shell stub that exits successfully.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteStub(t *testing.T, dir string, name string) string {
	t.Helper()
	return WriteStubWithExit(t, dir, name, 0)
}

// WriteStubWithExit writes an executable shell stub that exits with the provided code.
func WriteStubWithExit(t *testing.T, dir string, name string, exitCode int) string {
	t.Helper()
	return WriteScript(t, dir, name, fmt.Sprintf("exit %d\n", exitCode))
}

// WriteScript writes an executable shell stub with the provided body and
// returns its path. The body runs under /bin/sh with the stub's arguments.
func WriteScript(t *testing.T, dir string, name string, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	content := []byte("#!/bin/sh\n" + body)
	if err := os.WriteFile(path, content, 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	return path
}

// WriteDiscoverStub writes a stub that prints the given JSON on stdout when
// invoked with the discover sub-operation and fails otherwise.
func WriteDiscoverStub(t *testing.T, dir string, name string, responseJSON string) string {
	t.Helper()
	body := fmt.Sprintf(`case "$1" in
discover) printf '%%s' '%s'; exit 0 ;;
*) echo "unexpected sub-operation $1" >&2; exit 1 ;;
esac
`, responseJSON)
	return WriteScript(t, dir, name, body)
}

// WriteFailStub writes a stub that exits with exitCode after printing
// stderrText on stderr, regardless of arguments.
func WriteFailStub(t *testing.T, dir string, name string, exitCode int, stderrText string) string {
	t.Helper()
	body := fmt.Sprintf("echo '%s' >&2\nexit %d\n", stderrText, exitCode)
	return WriteScript(t, dir, name, body)
}
