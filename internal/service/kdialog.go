package service

import (
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

const dialogTitle = "Seafile Link"

// commandRunner runs one external command and returns its trimmed stdout.
// Split out so tests can record command lines instead of spawning processes.
type commandRunner interface {
	Run(name string, args ...string) (string, error)
}

type execRunner struct{}

func (execRunner) Run(name string, args ...string) (string, error) {
	out, err := exec.Command(name, args...).Output()
	return strings.TrimSpace(string(out)), err
}

// kdialogDialog drives KDE desktop dialogs. The progress bar is remote
// controlled over DBus: kdialog --progressbar prints a "service path" pair
// on stdout and qdbus sets the value until the dialog is closed. kdialog
// dismisses the dialog on its own once the value reaches the maximum, which
// is why ProgressStop reports 100 before closing.
type kdialogDialog struct {
	runner commandRunner
	// DBus service + object path of the open progress dialog, nil when
	// no bar is up.
	progressRef []string
}

func newKDialogDialog() Dialog {
	return &kdialogDialog{runner: execRunner{}}
}

// kdialogAvailable reports whether desktop dialogs can be shown at all.
func kdialogAvailable() bool {
	if os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "" {
		return false
	}
	_, err := exec.LookPath("kdialog")
	return err == nil
}

func (d *kdialogDialog) ProgressStart() {
	if d.progressRef != nil {
		return
	}
	out, err := d.runner.Run("kdialog", "--title", dialogTitle, "--progressbar", "Creating share link...", "100")
	if err != nil {
		logrus.Debugf("kdialog progressbar failed: %v", err)
		return
	}
	ref := strings.Fields(out)
	if len(ref) != 2 {
		logrus.Debugf("unexpected kdialog progressbar reference %q", out)
		return
	}
	d.progressRef = ref
}

func (d *kdialogDialog) ProgressReport(percent int, text string) {
	if d.progressRef == nil {
		return
	}
	if text != "" {
		_, _ = d.runner.Run("qdbus", d.progressRef[0], d.progressRef[1], "setLabelText", text)
	}
	if percent >= 0 {
		_, _ = d.runner.Run("qdbus", d.progressRef[0], d.progressRef[1], "Set", "", "value", strconv.Itoa(percent))
	}
}

func (d *kdialogDialog) ProgressStop() {
	if d.progressRef == nil {
		return
	}
	d.ProgressReport(100, "")
	_, _ = d.runner.Run("qdbus", d.progressRef[0], d.progressRef[1], "close")
	d.progressRef = nil
}

func (d *kdialogDialog) Info(text string) {
	_, _ = d.runner.Run("kdialog", "--title", dialogTitle, "--msgbox", text)
}

func (d *kdialogDialog) Error(text string) {
	_, _ = d.runner.Run("kdialog", "--title", dialogTitle, "--error", text)
}

func (d *kdialogDialog) Ask(prompt string, secret bool) (string, error) {
	kind := "--inputbox"
	if secret {
		kind = "--password"
	}
	value, err := d.runner.Run("kdialog", "--title", dialogTitle, kind, prompt)
	if err != nil {
		return "", &PermanentError{Message: "prompt cancelled", Err: err}
	}
	return value, nil
}
