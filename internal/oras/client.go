// Package oras supervises the external oras client as a subprocess: it
// launches discover and pull sub-operations with captured output streams and
// classifies their results. The registry protocol itself lives entirely in
// the external client.
package oras

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/uenv-tools/uenvpull/internal/messages"
)

// BundledName is the client binary installed next to the uenvpull binary.
const BundledName = "uenv-oras"

var lookPathFn = exec.LookPath
var executableFn = os.Executable

// Client invokes the external oras executable.
type Client struct {
	// Path is the executable to run. Empty means resolve on first use.
	Path string
	// Verbose echoes every invocation and outcome to Log.
	Verbose bool
	// Log receives verbose diagnostics; nil means os.Stderr.
	Log io.Writer
}

// Resolve locates the oras executable and caches the result on the client.
// An explicit Path wins, then a bundled uenv-oras next to the running
// binary, then oras on PATH.
func (c *Client) Resolve() (string, error) {
	if c.Path != "" {
		return c.Path, nil
	}
	if self, err := executableFn(); err == nil {
		bundled := filepath.Join(filepath.Dir(self), BundledName)
		if info, err := os.Stat(bundled); err == nil && info.Mode().IsRegular() {
			c.logf("using bundled client %s", bundled)
			c.Path = bundled
			return bundled, nil
		}
	}
	path, err := lookPathFn("oras")
	if err != nil {
		return "", &LaunchError{Err: fmt.Errorf(messages.OrasNotFoundFmt, BundledName)}
	}
	c.logf("using %s", path)
	c.Path = path
	return path, nil
}

// logf writes a verbose diagnostic line.
func (c *Client) logf(format string, args ...any) {
	if !c.Verbose {
		return
	}
	out := c.Log
	if out == nil {
		out = os.Stderr
	}
	_, _ = fmt.Fprintf(out, format+"\n", args...)
}
