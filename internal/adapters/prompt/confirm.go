// Package prompt asks the operator questions on the terminal
package prompt

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"ticket/internal/logging"
	"ticket/internal/ports"
)

// ErrNotInteractive is returned when a question needs a terminal and stdin is not one
var ErrNotInteractive = errors.New("stdin is not a terminal; pass --yes to skip confirmation")

// HuhConfirmer implements ports.Confirmer with a huh confirm form
type HuhConfirmer struct {
	isTerminal func() bool
	run        func(form *huh.Form) error
}

// Verify interface compliance at compile time
var _ ports.Confirmer = (*HuhConfirmer)(nil)

// NewHuhConfirmer creates a confirmer reading from the process's stdin
func NewHuhConfirmer() *HuhConfirmer {
	return &HuhConfirmer{
		isTerminal: func() bool { return term.IsTerminal(int(os.Stdin.Fd())) },
		run:        func(form *huh.Form) error { return form.Run() },
	}
}

// Confirm shows a yes/no question and returns the answer.
// Aborting the form (ctrl+c) counts as "no".
func (c *HuhConfirmer) Confirm(title, description string) (bool, error) {
	if !c.isTerminal() {
		return false, ErrNotInteractive
	}

	confirmed := false
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Value(&confirmed).
				Affirmative("Yes").
				Negative("No"),
		),
	)

	if err := c.run(form); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			logging.Logger.Info("Confirmation aborted", "title", title)
			return false, nil
		}
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}

	logging.Logger.Debug("Confirmation answered", "title", title, "confirmed", confirmed)
	return confirmed, nil
}
