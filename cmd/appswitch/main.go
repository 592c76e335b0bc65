package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"

	"appswitch/internal/app"
	"appswitch/pkg/config"
	"appswitch/pkg/global"
	"appswitch/pkg/logger"
)

func printUsage() {
	prog := filepath.Base(os.Args[0])
	fmt.Printf("Usage: %s <app_name_fragment>\n", prog)
	fmt.Printf("Example: %s Safari\n", prog)
	fmt.Printf("Example: %s \"Visual Studio Code\"\n", prog)
}

func main() {
	os.Exit(run())
}

// run carries the whole invocation so deferred cleanups fire before the
// process exits.
func run() int {
	// Parse command line flags
	configPath := flag.String("config", "", "path to config file")
	debug := flag.Bool("debug", false, "enable debug logging")
	history := flag.Bool("history", false, "show recent switches and exit")
	flag.Usage = func() {
		printUsage()
		flag.PrintDefaults()
	}
	flag.Parse()

	// Exactly one name fragment is required (none in history mode), and it
	// must be non-empty: an empty fragment would match every window owner.
	// Checked before anything else so a usage error never touches the OS.
	if !*history {
		if flag.NArg() != 1 || flag.Arg(0) == "" {
			printUsage()
			return 1
		}
	} else if flag.NArg() != 0 {
		printUsage()
		return 1
	}

	// Setup logging level. Warn keeps stdout/stderr quiet for normal runs.
	logLevel := zerolog.WarnLevel
	if *debug {
		logLevel = zerolog.DebugLevel
	}

	log, err := logger.NewLogger(
		logger.WithConsole(),
		logger.WithLevel(logLevel),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		return 1
	}
	defer log.Close()

	log.Debug("Starting appswitch",
		"pid", os.Getpid(),
		"os", runtime.GOOS,
		"arch", runtime.GOARCH,
		"debug", *debug)

	// Load configuration
	cfg, err := config.FindConfig(*configPath, log)
	if err != nil {
		log.Error("Failed to load configuration", err, "provided_path", *configPath)
		return 1
	}

	global.InitGlobals(cfg, log)

	if *history {
		viewer, err := app.NewHistoryViewer()
		if err != nil {
			log.Error("Failed to open switch history", err)
			return 1
		}
		defer viewer.Close()

		if err := viewer.ShowHistory(); err != nil {
			log.Error("Failed to show switch history", err)
			return 1
		}
		return 0
	}

	switcher, err := app.NewAppSwitch()
	if err != nil {
		log.Error("Failed to initialize", err)
		// Without a window-server backend no list can be obtained, so this
		// surfaces as the enumeration failure
		fmt.Println("Failed to get running applications list")
		return 1
	}
	defer switcher.Close()

	if err := switcher.SwitchTo(flag.Arg(0)); err != nil {
		return 1
	}
	return 0
}
