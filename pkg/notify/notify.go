package notify

import (
	"fmt"
	"os/exec"

	"appswitch/pkg/logger"
)

// NotificationType represents the type of notification
type NotificationType int

const (
	Error NotificationType = iota
	Info
)

// NotifyService handles system notifications
type NotifyService struct {
	log           *logger.Logger
	notifyCommand string
}

// NewNotifyService creates a new notification service
func NewNotifyService(notifyCommand string, log *logger.Logger) *NotifyService {
	return &NotifyService{
		log:           log,
		notifyCommand: notifyCommand,
	}
}

// Show displays a notification of the specified type
func (n *NotifyService) Show(title string, message string, nType NotificationType) error {
	// First try configured notification command if available
	if n.notifyCommand != "" {
		if err := n.executeNotifyCommand(message, nType); err == nil {
			return nil
		}
		n.log.Warn("Custom notification command failed", "command", n.notifyCommand)
	}

	// Try system notification tools
	if err := n.trySystemNotification(title, message, nType); err == nil {
		return nil
	}

	// If running in terminal, print directly
	if isRunningInTerminal() {
		return n.printToTerminal(title, message, nType)
	}

	// Last resort: log file
	return n.writeToLogFile(title, message, nType)
}

func (n *NotifyService) executeNotifyCommand(message string, nType NotificationType) error {
	n.log.Debug("Executing notify command", "command", n.notifyCommand, "type", nType)
	typeStr := "ERROR"
	if nType == Info {
		typeStr = "INFO"
	}

	cmd := exec.Command("sh", "-c", fmt.Sprintf("%s '%s' '%s'", n.notifyCommand, typeStr, message))
	return cmd.Run()
}
