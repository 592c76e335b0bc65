package app

import (
	"fmt"
)

const historyDisplayLimit = 20

// ShowHistory prints the most recent successful switches, newest first.
func (a *AppSwitch) ShowHistory() error {
	if a.store == nil {
		fmt.Fprintln(a.output(), "Switch history is disabled")
		return nil
	}

	entries, err := a.store.RecentSwitches(historyDisplayLimit)
	if err != nil {
		return fmt.Errorf("failed to load switch history: %w", err)
	}

	if len(entries) == 0 {
		fmt.Fprintln(a.output(), "No switches recorded yet")
		return nil
	}

	for _, entry := range entries {
		fmt.Fprintf(a.output(), "%s  %s (PID: %d)  [%s]\n",
			entry.Timestamp.Format("2006-01-02 15:04:05"),
			entry.OwnerName,
			entry.PID,
			entry.Fragment)
	}
	return nil
}
