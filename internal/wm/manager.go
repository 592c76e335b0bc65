package wm

import (
	"fmt"
	"os"
	"runtime"

	"appswitch/pkg/config"
	"appswitch/pkg/global"
)

// Manager handles window management operations based on the session type
type Manager struct {
	wm WindowServer
}

// NewManager creates a new window manager for the configured or detected
// backend
func NewManager(backend string) (*Manager, error) {
	log := global.GetLogger()

	var wm WindowServer
	var err error

	switch backend {
	case config.BackendHyprland:
		wm, err = NewHyprland()
	case config.BackendX11:
		wm, err = NewX11()
	case config.BackendCocoa:
		wm, err = newCocoa()
	case config.BackendAuto, "":
		wm, err = detectWindowServer()
	default:
		return nil, fmt.Errorf("unknown window manager backend: %s", backend)
	}
	if err != nil {
		return nil, err
	}

	log.Info("Window manager initialized", "name", wm.Name())
	return &Manager{wm: wm}, nil
}

// detectWindowServer picks a backend from the host environment.
func detectWindowServer() (WindowServer, error) {
	log := global.GetLogger()

	if runtime.GOOS == "darwin" {
		log.Debug("Initializing window server support", "type", "Cocoa")
		return newCocoa()
	}

	sessionType := os.Getenv("XDG_SESSION_TYPE")
	log.Debug("Session type detected", "session", sessionType)

	switch sessionType {
	case "wayland":
		if sig := os.Getenv("HYPRLAND_INSTANCE_SIGNATURE"); sig != "" {
			log.Debug("Initializing window server support", "type", "Hyprland")
			return NewHyprland()
		}
		return nil, fmt.Errorf("unsupported Wayland compositor: only Hyprland is supported")
	case "x11":
		log.Debug("Initializing window server support", "type", "X11")
		return NewX11()
	default:
		return nil, fmt.Errorf("unsupported session type: %s", sessionType)
	}
}

// ListWindows wraps the underlying window server's ListWindows method
func (m *Manager) ListWindows() ([]Window, error) {
	return m.wm.ListWindows()
}

// ActivateProcess wraps the underlying window server's ActivateProcess method
func (m *Manager) ActivateProcess(pid int) error {
	return m.wm.ActivateProcess(pid)
}

// Name returns the name of the current window server backend
func (m *Manager) Name() string {
	return m.wm.Name()
}
