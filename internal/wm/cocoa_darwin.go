//go:build darwin

package wm

import (
	"fmt"

	"github.com/progrium/darwinkit/macos/appkit"

	"appswitch/pkg/global"
	"appswitch/pkg/logger"
)

// procNotFound is the Carbon status for an unresolvable pid.
const procNotFound = -600

// Cocoa talks to the macOS window server through NSWorkspace.
type Cocoa struct {
	log       *logger.Logger
	workspace appkit.Workspace
}

func newCocoa() (WindowServer, error) {
	return &Cocoa{
		log:       global.GetLogger(),
		workspace: appkit.Workspace_SharedWorkspace(),
	}, nil
}

func (c *Cocoa) Name() string {
	return "Cocoa"
}

// ListWindows reports one entry per windowed (regular activation policy)
// application. Agents and background-only processes never own on-screen
// windows, so they are filtered out.
func (c *Cocoa) ListWindows() ([]Window, error) {
	apps := c.workspace.RunningApplications()
	if apps == nil {
		return nil, &EnumerationError{Err: fmt.Errorf("NSWorkspace returned no application list")}
	}

	windows := make([]Window, 0, len(apps))
	for _, app := range apps {
		if app.Ptr() == nil {
			continue
		}
		if app.ActivationPolicy() != appkit.ApplicationActivationPolicyRegular {
			continue
		}
		if app.IsHidden() {
			continue
		}

		windows = append(windows, Window{
			OwnerName: app.LocalizedName(),
			OwnerPID:  int(app.ProcessIdentifier()),
		})
	}
	return windows, nil
}

func (c *Cocoa) ActivateProcess(pid int) error {
	app := appkit.RunningApplication_RunningApplicationWithProcessIdentifier(pid)
	if app.Ptr() == nil {
		c.log.Error("No running application for pid", nil, "pid", pid)
		return &ActivationError{
			Stage: StageLookup,
			Code:  procNotFound,
			Err:   fmt.Errorf("no running application with pid %d", pid),
		}
	}

	ok := app.ActivateWithOptions(appkit.ApplicationActivateAllWindows | appkit.ApplicationActivateIgnoringOtherApps)
	if !ok {
		c.log.Error("Window server rejected activation", nil, "pid", pid)
		return &ActivationError{
			Stage: StageRaise,
			Code:  -1,
			Err:   fmt.Errorf("window server rejected activation of pid %d", pid),
		}
	}

	c.log.Debug("Application activated", "pid", pid, "name", app.LocalizedName())
	return nil
}
