package service

import (
	"fmt"
	"io"
	"os"

	"github.com/manifoldco/promptui"
	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
)

// Dialog presents progress and messages to the user and collects input.
// ProgressStop is idempotent and safe without a prior ProgressStart.
type Dialog interface {
	ProgressStart()
	// ProgressReport updates the indicator; percent < 0 keeps the current
	// value, an empty text keeps the current label.
	ProgressReport(percent int, text string)
	ProgressStop()
	Info(text string)
	Error(text string)
	// Ask prompts for one value. A dismissed prompt yields a PermanentError.
	Ask(prompt string, secret bool) (string, error)
}

// selectDialog picks the dialog backend: desktop dialogs when kdialog can
// run, terminal prompts otherwise or when forced.
func selectDialog(forceTerminal bool, preference string) Dialog {
	if !forceTerminal && preference != "terminal" && kdialogAvailable() {
		return newKDialogDialog()
	}
	return newTerminalDialog(nil)
}

type terminalDialog struct {
	out io.Writer
	bar *progressbar.ProgressBar
}

func newTerminalDialog(out io.Writer) Dialog {
	if out == nil {
		out = os.Stderr
	}
	return &terminalDialog{out: out}
}

func (d *terminalDialog) ProgressStart() {
	if d.bar != nil {
		return
	}
	d.bar = progressbar.NewOptions(100,
		progressbar.OptionSetWriter(d.out),
		progressbar.OptionSetDescription("sharing"),
	)
}

func (d *terminalDialog) ProgressReport(percent int, text string) {
	if d.bar == nil {
		return
	}
	if text != "" {
		d.bar.Describe(text)
	}
	if percent >= 0 {
		_ = d.bar.Set(percent)
	}
}

func (d *terminalDialog) ProgressStop() {
	if d.bar == nil {
		return
	}
	_ = d.bar.Set(100)
	_ = d.bar.Finish()
	fmt.Fprintln(d.out)
	d.bar = nil
}

func (d *terminalDialog) Info(text string) {
	logrus.Info(text)
}

func (d *terminalDialog) Error(text string) {
	logrus.Error(text)
}

func (d *terminalDialog) Ask(prompt string, secret bool) (string, error) {
	p := promptui.Prompt{
		Label: prompt,
		Validate: func(s string) error {
			if s == "" {
				return fmt.Errorf("value must not be empty")
			}
			return nil
		},
	}
	if secret {
		p.Mask = '*'
	}
	value, err := p.Run()
	if err != nil {
		return "", &PermanentError{Message: "prompt cancelled", Err: err}
	}
	return value, nil
}
