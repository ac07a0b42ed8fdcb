// Package pull orchestrates the download of a uenv image: stale-state
// cleanup, digest discovery for the metadata bundle, transfer supervision
// with progress for the squashfs image, and cancellation handling.
package pull

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/uenv-tools/uenvpull/internal/config"
	"github.com/uenv-tools/uenvpull/internal/messages"
	"github.com/uenv-tools/uenvpull/internal/oras"
	"github.com/uenv-tools/uenvpull/internal/progress"
	"github.com/uenv-tools/uenvpull/internal/prompt"
	"github.com/uenv-tools/uenvpull/internal/terminal"
)

const (
	// MetaArtifactType filters discovery to uenv metadata manifests.
	MetaArtifactType = "uenv/meta"
	// MetaDirName is the metadata directory created under the image path,
	// replaced wholesale on each meta pull.
	MetaDirName = "meta"
	// SqfsName is the squashfs file created under the image path, replaced
	// wholesale on each sqfs pull.
	SqfsName = "store.squashfs"

	// cleanupGrace pauses between removing stale state and launching the
	// child that rewrites it. A pragmatic mitigation for filesystem races,
	// not a correctness guarantee.
	cleanupGrace = 50 * time.Millisecond
)

// ErrCancelled reports a user-initiated interrupt. The active child process
// is always terminated and reaped before this is returned.
var ErrCancelled = errors.New(messages.PullCancelled)

// ErrReplaceDeclined reports that the user chose to keep the existing local
// image.
var ErrReplaceDeclined = errors.New(messages.PullReplaceDeclined)

var confirmReplaceFn = prompt.ConfirmReplace
var isInteractiveFn = terminal.IsInteractive
var sleepFn = time.Sleep

// Options select which components of an image to pull and where to put them.
type Options struct {
	// Address is the tag-qualified image address, registry/path/name:tag.
	Address string
	// ImagePath is the destination directory.
	ImagePath string
	// Size is the expected squashfs size in bytes, known a priori from
	// registry metadata. Zero disables the progress display.
	Size int64
	// Meta and Sqfs select the components to pull.
	Meta bool
	Sqfs bool
	// Force replaces existing local state without prompting.
	Force bool
	// PollInterval paces progress sampling; zero means the config default.
	PollInterval time.Duration

	// Out receives progress output; nil means os.Stdout.
	Out io.Writer
	// IsTerminal overrides progress gating; nil means the stdout check.
	IsTerminal func() bool
}

// Run pulls the selected components sequentially, meta before sqfs. Every
// failure is fatal to the whole call: afterwards either the requested
// components are fully present or an error is returned, never a partial
// success.
func Run(ctx context.Context, client *oras.Client, opts Options) error {
	base, tag, err := ParseAddress(opts.Address)
	if err != nil {
		return err
	}
	if opts.Meta {
		if err := pullMeta(ctx, client, base, tag, opts); err != nil {
			return wrap(err, messages.PullMetaFailedFmt)
		}
	}
	if opts.Sqfs {
		if err := pullSqfs(ctx, client, base, tag, opts); err != nil {
			return wrap(err, messages.PullSqfsFailedFmt)
		}
	}
	return nil
}

// wrap maps context cancellation onto ErrCancelled, passes a decline
// through, and wraps everything else with the component's failure message.
func wrap(err error, format string) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return ErrCancelled
	}
	if errors.Is(err, ErrReplaceDeclined) {
		return err
	}
	return fmt.Errorf(format, err)
}

// pullMeta resolves the metadata digest and transfers the bundle, awaiting
// it synchronously. Metadata is small, so no progress is rendered.
func pullMeta(ctx context.Context, client *oras.Client, base string, tag string, opts Options) error {
	if err := cleanup(filepath.Join(opts.ImagePath, MetaDirName), opts.Force, os.RemoveAll); err != nil {
		return err
	}

	d, err := client.Discover(ctx, base, tag, MetaArtifactType)
	if err != nil {
		return err
	}

	// Pin the transfer to the discovered manifest instead of the mutable tag.
	proc, err := client.Pull(base+"@"+d.String(), opts.ImagePath)
	if err != nil {
		return err
	}
	defer proc.Terminate()

	_, stderr, code, err := oras.Await(ctx, proc, pollInterval(opts))
	if err != nil {
		return err
	}
	return oras.Classify(code, stderr)
}

// pullSqfs transfers the squashfs image while the progress monitor samples
// the growing file against the expected size.
func pullSqfs(ctx context.Context, client *oras.Client, base string, tag string, opts Options) error {
	sqfsPath := filepath.Join(opts.ImagePath, SqfsName)
	if err := cleanup(sqfsPath, opts.Force, os.Remove); err != nil {
		return err
	}

	proc, err := client.Pull(base+":"+tag, opts.ImagePath)
	if err != nil {
		return err
	}
	defer proc.Terminate()

	monitor := &progress.Monitor{
		Out:        opts.Out,
		Interval:   pollInterval(opts),
		IsTerminal: opts.IsTerminal,
	}
	if opts.Size > 0 {
		if err := monitor.Watch(ctx, proc, sqfsPath, opts.Size); err != nil {
			// Watch already closed the progress line; terminate and reap
			// before reporting so the child is never orphaned.
			proc.Terminate()
			proc.Wait()
			return err
		}
	}

	_, stderr, code, err := oras.Await(ctx, proc, pollInterval(opts))
	if err != nil {
		return err
	}
	if err := oras.Classify(code, stderr); err != nil {
		monitor.CloseLine()
		return err
	}
	if opts.Size > 0 {
		monitor.Finish(opts.Size)
	}
	return nil
}

// cleanup removes stale local state at path, prompting first on interactive
// sessions unless force is set. Missing state is fine.
func cleanup(path string, force bool, remove func(string) error) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	if !force && isInteractiveFn() {
		ok, err := confirmReplaceFn(path)
		if err != nil {
			return err
		}
		if !ok {
			return ErrReplaceDeclined
		}
	}
	if err := remove(path); err != nil {
		return fmt.Errorf(messages.PullCleanupFmt, path, err)
	}
	sleepFn(cleanupGrace)
	return nil
}

func pollInterval(opts Options) time.Duration {
	if opts.PollInterval > 0 {
		return opts.PollInterval
	}
	return config.DefaultPollInterval
}
