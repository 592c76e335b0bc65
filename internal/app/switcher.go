package app

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"appswitch/internal/models"
	"appswitch/internal/wm"
	"appswitch/pkg/notify"
)

// SwitchTo finds the first on-screen window whose owner name contains
// fragment (case-insensitive) and asks the window server to bring that
// process to the foreground. Exactly one window is ever activated; the first
// match in the order the window server returned wins.
func (a *AppSwitch) SwitchTo(fragment string) error {
	a.log.Debug("Switching to application", "fragment", fragment, "backend", a.server.Name())

	windows, err := a.server.ListWindows()
	if err != nil {
		a.log.Error("Window enumeration failed", err)
		fmt.Fprintln(a.output(), "Failed to get running applications list")
		return err
	}

	match, found := findMatch(windows, fragment)
	if !found {
		a.log.Info("No window owner matched", "fragment", fragment, "window_count", len(windows))
		fmt.Fprintf(a.output(), "Application '%s' not found or not running\n", fragment)
		return ErrNotFound
	}

	if match.OwnerPID <= 0 {
		a.log.Warn("Matched window has no usable pid",
			"fragment", fragment,
			"owner_name", match.OwnerName,
			"pid", match.OwnerPID)
		fmt.Fprintf(a.output(), "Application '%s' not found or not running\n", fragment)
		return ErrInvalidProcess
	}

	if err := a.server.ActivateProcess(match.OwnerPID); err != nil {
		a.log.Error("Activation failed", err, "owner_name", match.OwnerName, "pid", match.OwnerPID)
		a.reportActivationError(err)
		return err
	}

	fmt.Fprintf(a.output(), "Switched to: %s (PID: %d)\n", fragment, match.OwnerPID)
	a.log.Info("Application activated",
		"fragment", fragment,
		"owner_name", match.OwnerName,
		"pid", match.OwnerPID)

	a.recordSwitch(fragment, match)

	if a.notifier != nil {
		msg := fmt.Sprintf("Switched to %s (PID: %d)", match.OwnerName, match.OwnerPID)
		if err := a.notifier.Show("appswitch", msg, notify.Info); err != nil {
			a.log.Debug("Notification failed", "error", err)
		}
	}

	return nil
}

// findMatch scans the snapshot in order and stops at the first owner name
// containing the fragment. Entries without an owner name are skipped.
func findMatch(windows []wm.Window, fragment string) (wm.Window, bool) {
	needle := strings.ToLower(fragment)
	for _, w := range windows {
		if w.OwnerName == "" {
			continue
		}
		if strings.Contains(strings.ToLower(w.OwnerName), needle) {
			return w, true
		}
	}
	return wm.Window{}, false
}

// reportActivationError prints the user-facing failure line for an
// activation error, keyed by the stage that failed.
func (a *AppSwitch) reportActivationError(err error) {
	var actErr *wm.ActivationError
	if errors.As(err, &actErr) {
		if actErr.Stage == wm.StageLookup {
			fmt.Fprintf(a.output(), "Failed to get process serial number (error: %d)\n", actErr.Code)
		} else {
			fmt.Fprintf(a.output(), "Failed to bring application to front (error: %d)\n", actErr.Code)
		}
		return
	}
	fmt.Fprintf(a.output(), "Failed to bring application to front (error: %d)\n", -1)
}

// recordSwitch appends the activation to the history store, best-effort.
func (a *AppSwitch) recordSwitch(fragment string, match wm.Window) {
	if a.store == nil {
		return
	}
	entry := models.SwitchEntry{
		Timestamp: time.Now(),
		Fragment:  fragment,
		OwnerName: match.OwnerName,
		PID:       match.OwnerPID,
	}
	if err := a.store.AddSwitch(entry); err != nil {
		a.log.Warn("Failed to record switch", "error", err)
	}
}
