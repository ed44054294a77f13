package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

const flagSetName = "go-note-client"

// parseFlags parses the client command-line flags from args (typically
// os.Args[1:]). A dedicated FlagSet is used so parsing is repeatable.
//
// Flags:
//
//	-u notes endpoint URL
//	-request-timeout request timeout (e.g., "15s")
//	-storage storage driver: sqlite or file
//	-d SQLite database path
//	-f JSON slot file path
//	-slot key of the notes slot
//	-auto-refresh-interval pause between auto refreshes (e.g., "60s")
//	-auto-refresh enable auto-refresh on start
//	-log-level log level
//	-log-file log file path
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet(flagSetName, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		notesURL            string
		requestTimeout      time.Duration
		driver              string
		databaseDSN         string
		filePath            string
		slotKey             string
		autoRefreshInterval time.Duration
		autoRefreshOnStart  bool
		logLevel            string
		logFile             string
		jsonConfigPath      string
	)

	fs.StringVar(&notesURL, "u", "", "Notes endpoint URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s)")
	fs.StringVar(&driver, "storage", "", "Storage driver: sqlite or file")
	fs.StringVar(&databaseDSN, "d", "", "SQLite database path")
	fs.StringVar(&filePath, "f", "", "JSON slot file path")
	fs.StringVar(&slotKey, "slot", "", "Notes slot key")
	fs.DurationVar(&autoRefreshInterval, "auto-refresh-interval", 0, "Auto refresh interval (e.g., 60s)")
	fs.BoolVar(&autoRefreshOnStart, "auto-refresh", false, "Enable auto refresh on start")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
			LogFile:  logFile,
		},
		Adapter: Adapter{
			NotesURL:       notesURL,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			Driver:  driver,
			SlotKey: slotKey,
			DB:      DB{DSN: databaseDSN},
			Files:   Files{Path: filePath},
		},
		Workers: Workers{
			AutoRefreshInterval: autoRefreshInterval,
			AutoRefreshOnStart:  autoRefreshOnStart,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
