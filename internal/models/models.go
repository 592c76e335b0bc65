package models

import "time"

// SwitchEntry records one successful foreground switch.
type SwitchEntry struct {
	Timestamp time.Time
	Fragment  string
	OwnerName string
	PID       int
}
