package app

import (
	"fmt"
	"io"
	"os"
	"time"

	"appswitch/internal/storage"
	"appswitch/internal/wm"
	"appswitch/pkg/config"
	"appswitch/pkg/global"
	"appswitch/pkg/logger"
	"appswitch/pkg/notify"
)

// AppSwitch wires the window server, switch history and notifications
// together behind the single SwitchTo operation.
type AppSwitch struct {
	config   *config.Config
	log      *logger.Logger
	notifier *notify.NotifyService
	server   wm.WindowServer
	store    *storage.DB

	// User-facing output target; stdout in production
	out io.Writer
}

// NewAppSwitch builds the application from the global config and logger.
func NewAppSwitch() (*AppSwitch, error) {
	cfg := global.GetConfig()
	log := global.GetLogger()
	notifier := global.GetNotifier()

	log.Debug("Initializing AppSwitch", "backend", cfg.GetWindowManager())

	manager, err := wm.NewManager(cfg.GetWindowManager())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize window manager: %w", err)
	}

	// History is best-effort: a missing database never blocks switching
	var store *storage.DB
	if cfg.HistoryEnabled() {
		store, err = storage.New()
		if err != nil {
			log.Warn("Switch history unavailable", "error", err)
		} else if days := cfg.HistoryRetentionDays(); days > 0 {
			retention := time.Duration(days) * 24 * time.Hour
			if err := store.Cleanup(retention); err != nil {
				log.Warn("Failed to prune switch history", "error", err)
			}
		}
	}

	return &AppSwitch{
		config:   cfg,
		log:      log,
		notifier: notifier,
		server:   manager,
		store:    store,
	}, nil
}

// NewHistoryViewer builds just enough of the application to read the switch
// history; no window server is touched.
func NewHistoryViewer() (*AppSwitch, error) {
	cfg := global.GetConfig()
	log := global.GetLogger()

	a := &AppSwitch{config: cfg, log: log}
	if !cfg.HistoryEnabled() {
		return a, nil
	}

	store, err := storage.New()
	if err != nil {
		return nil, fmt.Errorf("failed to open switch history: %w", err)
	}
	a.store = store
	return a, nil
}

// Close releases the history store, if open.
func (a *AppSwitch) Close() error {
	if a.store != nil {
		return a.store.Close()
	}
	return nil
}

// output returns the user-facing writer.
func (a *AppSwitch) output() io.Writer {
	if a.out != nil {
		return a.out
	}
	return os.Stdout
}
