package wm

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"appswitch/pkg/global"
	"appswitch/pkg/logger"
)

type X11 struct {
	log *logger.Logger
}

func NewX11() (*X11, error) {
	// Check if xdotool is available
	if _, err := exec.LookPath("xdotool"); err != nil {
		return nil, fmt.Errorf("xdotool is required for X11 support but was not found: %w", err)
	}
	return &X11{log: global.GetLogger()}, nil
}

func (x *X11) Name() string {
	return "X11"
}

func (x *X11) ListWindows() ([]Window, error) {
	// An empty --name pattern matches every visible window
	out, err := exec.Command("xdotool", "search", "--onlyvisible", "--name", "").Output()
	if err != nil {
		x.log.Error("Failed to enumerate X11 windows", err)
		return nil, &EnumerationError{Err: fmt.Errorf("xdotool search error: %w", err)}
	}

	var windows []Window
	for _, line := range strings.Split(strings.TrimSpace(string(out)), "\n") {
		windowID := strings.TrimSpace(line)
		if windowID == "" {
			continue
		}

		classOut, err := exec.Command("xdotool", "getwindowclassname", windowID).Output()
		if err != nil {
			// Some windows (docks, override-redirect) have no class; skip them
			continue
		}
		pidOut, err := exec.Command("xdotool", "getwindowpid", windowID).Output()
		if err != nil {
			continue
		}
		pid, err := strconv.Atoi(strings.TrimSpace(string(pidOut)))
		if err != nil {
			continue
		}

		windows = append(windows, Window{
			OwnerName: strings.TrimSpace(string(classOut)),
			OwnerPID:  pid,
		})
	}
	return windows, nil
}

func (x *X11) ActivateProcess(pid int) error {
	// Resolve the pid back to a concrete window first
	out, err := exec.Command("xdotool", "search", "--onlyvisible", "--pid", strconv.Itoa(pid)).Output()
	if err != nil || len(strings.TrimSpace(string(out))) == 0 {
		if err == nil {
			err = fmt.Errorf("no window found for pid %d", pid)
		}
		x.log.Error("Failed to resolve pid to a window", err, "pid", pid)
		return &ActivationError{
			Stage: StageLookup,
			Code:  commandExitCode(err),
			Err:   fmt.Errorf("failed to resolve pid %d: %w", pid, err),
		}
	}

	windowID := strings.Split(strings.TrimSpace(string(out)), "\n")[0]
	if err := exec.Command("xdotool", "windowactivate", "--sync", windowID).Run(); err != nil {
		x.log.Error("Failed to activate window", err, "window_id", windowID)
		return &ActivationError{
			Stage: StageRaise,
			Code:  commandExitCode(err),
			Err:   fmt.Errorf("failed to activate window %s: %w", windowID, err),
		}
	}
	return nil
}
