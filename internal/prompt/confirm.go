// Package prompt asks interactive confirmation questions.
package prompt

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/uenv-tools/uenvpull/internal/messages"
)

var runFormFunc = func(form *huh.Form) error { return form.Run() }

// ConfirmReplace asks whether existing local files at path should be
// replaced. Callers must only invoke it on an interactive session.
func ConfirmReplace(path string) (bool, error) {
	confirmed := true
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(fmt.Sprintf(messages.PullReplacePromptFmt, path)).
			Affirmative("Replace").
			Negative("Keep").
			Value(&confirmed),
	))
	if err := runFormFunc(form); err != nil {
		return false, err
	}
	return confirmed, nil
}
