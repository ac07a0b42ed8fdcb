package progress

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/uenv-tools/uenvpull/internal/messages"
	"github.com/uenv-tools/uenvpull/internal/terminal"
)

const mib = 1024 * 1024

var statFn = os.Stat

// Handle is the subset of the process handle the monitor polls.
type Handle interface {
	Poll() (exited bool, code int)
}

// Monitor watches the output file of an external transfer and renders
// progress against a known expected size. The file is written by an opaque
// external process, so the monitor polls at a fixed interval rather than
// using filesystem notification, and every observed size is a best-effort
// snapshot: it may lag buffered writes or shrink if the child rewrites the
// file.
type Monitor struct {
	// Out receives progress lines; nil means os.Stdout.
	Out io.Writer
	// Interval is the poll interval between samples.
	Interval time.Duration
	// IsTerminal gates rendering; nil means terminal.StdoutIsTerminal.
	// Non-interactive output must never receive partial progress lines.
	IsTerminal func() bool
	// Width is the bar width; zero means DefaultWidth.
	Width int

	rendered bool
}

// Fraction reports the raw completion fraction for size bytes observed
// against the expected total. It is intentionally unclamped; Bar clamps for
// display.
func Fraction(size int64, total int64) float64 {
	return float64(size) / float64(total)
}

// Watch polls until handle reports an exit or ctx is cancelled. On each tick
// it samples the watched file and renders one progress line when the file
// exists and output is an interactive terminal. On cancellation any open
// progress line is closed with a newline before the context error is
// returned; the caller still owns terminating the child.
func (m *Monitor) Watch(ctx context.Context, handle Handle, path string, expectedTotal int64) error {
	for {
		if exited, _ := handle.Poll(); exited {
			return nil
		}
		select {
		case <-ctx.Done():
			m.CloseLine()
			return ctx.Err()
		case <-time.After(m.interval()):
		}
		if !m.isTerminal() {
			continue
		}
		info, err := statFn(path)
		if err != nil {
			continue
		}
		size := info.Size()
		m.render(Fraction(size, expectedTotal), size, expectedTotal)
	}
}

// Finish renders one final complete bar and a trailing newline to close the
// progress display. Call it only after the transfer was classified as
// successful.
func (m *Monitor) Finish(expectedTotal int64) {
	if !m.isTerminal() {
		return
	}
	m.render(1.0, expectedTotal, expectedTotal)
	_, _ = fmt.Fprintln(m.out())
	m.rendered = false
}

// CloseLine terminates a partially rendered progress line with a newline so
// subsequent output starts on a fresh line. No-op when nothing was rendered.
func (m *Monitor) CloseLine() {
	if !m.rendered {
		return
	}
	_, _ = fmt.Fprintln(m.out())
	m.rendered = false
}

func (m *Monitor) render(fraction float64, current int64, total int64) {
	label := fmt.Sprintf(messages.ProgressLabelFmt, current/mib, total/mib)
	Bar(m.out(), fraction, m.width(), label)
	m.rendered = true
}

func (m *Monitor) out() io.Writer {
	if m.Out == nil {
		return os.Stdout
	}
	return m.Out
}

func (m *Monitor) interval() time.Duration {
	if m.Interval <= 0 {
		return 250 * time.Millisecond
	}
	return m.Interval
}

func (m *Monitor) width() int {
	if m.Width <= 0 {
		return DefaultWidth
	}
	return m.Width
}

func (m *Monitor) isTerminal() bool {
	if m.IsTerminal == nil {
		return terminal.StdoutIsTerminal()
	}
	return m.IsTerminal()
}
