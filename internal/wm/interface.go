package wm

// WindowServer is the narrow capability needed to locate and raise an
// application: list on-screen windows with owner metadata, and bring one
// owner's windows to the foreground.
type WindowServer interface {
	// ListWindows returns a snapshot of the currently on-screen windows
	ListWindows() ([]Window, error)
	// ActivateProcess raises the given process's windows above all others
	ActivateProcess(pid int) error
	// Name returns the backend name for logging/display
	Name() string
}

// Window is one entry of the window-list snapshot. Only the owning
// process's display name and identifier are carried.
type Window struct {
	OwnerName string
	OwnerPID  int
}
