// Package progress renders a single-line progress bar and supervises a
// running transfer by sampling its growing output file.
package progress

import (
	"fmt"
	"io"
	"strings"
)

// DefaultWidth is the bar width in characters.
const DefaultWidth = 50

// Bar renders one progress line to w: a carriage return, a bar of the given
// width, and a label. The fraction is clamped to [0,1] for display only;
// callers may pass values above 1.0 when the expected size was stale.
func Bar(w io.Writer, fraction float64, width int, label string) {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	filled := int(fraction * float64(width))
	bar := strings.Repeat("#", filled) + strings.Repeat("-", width-filled)
	_, _ = fmt.Fprintf(w, "\r[%s] %s", bar, label)
}
