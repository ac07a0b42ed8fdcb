package testutil

import (
	"errors"
	"os/exec"
	"strings"
	"testing"
)

func TestWriteStubWithExit(t *testing.T) {
	dir := t.TempDir()
	path := WriteStubWithExit(t, dir, "uenv-oras", 2)

	err := exec.Command(path).Run()
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) || exitErr.ExitCode() != 2 {
		t.Fatalf("expected exit 2, got %v", err)
	}
}

func TestWriteDiscoverStub(t *testing.T) {
	dir := t.TempDir()
	path := WriteDiscoverStub(t, dir, "uenv-oras", `{"manifests":[]}`)

	out, err := exec.Command(path, "discover").Output()
	if err != nil {
		t.Fatalf("discover stub failed: %v", err)
	}
	if string(out) != `{"manifests":[]}` {
		t.Fatalf("unexpected stub output: %q", out)
	}

	if err := exec.Command(path, "pull").Run(); err == nil {
		t.Fatal("expected non-discover sub-operation to fail")
	}
}

func TestWriteFailStub(t *testing.T) {
	dir := t.TempDir()
	path := WriteFailStub(t, dir, "uenv-oras", 1, "permission denied")

	out, err := exec.Command(path).CombinedOutput()
	if err == nil {
		t.Fatal("expected the stub to fail")
	}
	if !strings.Contains(string(out), "permission denied") {
		t.Fatalf("stderr text missing: %q", out)
	}
}
