package wm

import (
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"

	"appswitch/pkg/global"
	"appswitch/pkg/logger"
)

type Hyprland struct {
	log *logger.Logger
}

func NewHyprland() (*Hyprland, error) {
	log := global.GetLogger()

	// Check if hyprctl is available
	path, err := exec.LookPath("hyprctl")
	if err != nil {
		log.Error("hyprctl not found in PATH", err)
		return nil, fmt.Errorf("hyprctl not found in PATH: %w", err)
	}
	log.Debug("Found hyprctl", "path", path)

	return &Hyprland{log: log}, nil
}

func (h *Hyprland) Name() string {
	return "Hyprland"
}

// hyprClient is one entry of `hyprctl clients -j`.
type hyprClient struct {
	Address string `json:"address"`
	Class   string `json:"class"`
	Title   string `json:"title"`
	PID     int    `json:"pid"`
	Mapped  bool   `json:"mapped"`
	Hidden  bool   `json:"hidden"`
}

func (h *Hyprland) ListWindows() ([]Window, error) {
	cmd := exec.Command("hyprctl", "clients", "-j")
	output, err := cmd.CombinedOutput()
	if err != nil {
		h.log.Error("Failed to execute hyprctl", err, "output", string(output))
		return nil, &EnumerationError{Err: fmt.Errorf("hyprctl error: %w", err)}
	}

	windows, err := parseHyprClients(output)
	if err != nil {
		h.log.Error("Failed to parse hyprctl output", err, "output", string(output))
		return nil, &EnumerationError{Err: err}
	}
	return windows, nil
}

// parseHyprClients keeps only mapped, non-hidden clients. The window class
// serves as the owner name; title is the fallback for class-less clients.
func parseHyprClients(output []byte) ([]Window, error) {
	if len(output) == 0 {
		return nil, nil
	}

	var clients []hyprClient
	if err := json.Unmarshal(output, &clients); err != nil {
		return nil, fmt.Errorf("failed to parse hyprctl output: %w", err)
	}

	windows := make([]Window, 0, len(clients))
	for _, c := range clients {
		if !c.Mapped || c.Hidden {
			continue
		}
		name := c.Class
		if name == "" {
			name = c.Title
		}
		windows = append(windows, Window{OwnerName: name, OwnerPID: c.PID})
	}
	return windows, nil
}

func (h *Hyprland) ActivateProcess(pid int) error {
	h.log.Debug("Focusing window", "pid", pid)

	cmd := exec.Command("hyprctl", "dispatch", "focuswindow", "pid:"+strconv.Itoa(pid))
	if output, err := cmd.CombinedOutput(); err != nil {
		h.log.Error("Failed to focus window", err, "output", string(output))
		return &ActivationError{
			Stage: StageRaise,
			Code:  commandExitCode(err),
			Err:   fmt.Errorf("failed to focus window: %w", err),
		}
	}
	return nil
}
