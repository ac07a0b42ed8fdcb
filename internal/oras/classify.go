package oras

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/uenv-tools/uenvpull/internal/messages"
)

// CommandError is a nonzero exit from the oras client. The raw stderr text
// is always part of the message, never summarized; Hint carries a
// remediation when the stderr matches a known failure signature.
type CommandError struct {
	ExitCode int
	Stderr   string
	Hint     string
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf(messages.OrasCommandFailedFmt, strings.TrimSpace(e.Stderr))
	if e.Hint != "" {
		msg += "\n" + color.YellowString(messages.OrasHintLabel) + " " + e.Hint
	}
	return msg
}

// hints maps stderr signatures to remediation hints. Rules are evaluated in
// order and the first match wins; unknown failures get no hint. New
// diagnoses are rows here, not changes at call sites.
var hints = []struct {
	pattern string
	hint    string
}{
	{"client does not have permission for manifest", messages.HintRegistryPermission},
}

// Classify turns an exit code and captured stderr into a result. Exit code 0
// is success no matter what the client wrote to stderr; the oras client uses
// stderr for informational output too.
func Classify(exitCode int, stderr string) error {
	if exitCode == 0 {
		return nil
	}
	return &CommandError{ExitCode: exitCode, Stderr: stderr, Hint: hintFor(stderr)}
}

func hintFor(stderr string) string {
	for _, h := range hints {
		if strings.Contains(stderr, h.pattern) {
			return h.hint
		}
	}
	return ""
}
