package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// LogLevel is the zerolog level name.
	LogLevel string
	// LogFile is the file the client appends its log to.
	LogFile string
}

// ClientAdapter holds settings used by the notes fetcher.
type ClientAdapter struct {
	// NotesURL is the endpoint answered by GET with the note list.
	NotesURL string
	// RequestTimeout is the timeout of a single fetch.
	RequestTimeout time.Duration
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// Driver is either [DriverSQLite] or [DriverFile].
	Driver string
	// SlotKey is the key of the notes snapshot slot.
	SlotKey string
	// DSN is the SQLite database path.
	DSN string
	// FilePath is the JSON slot file path.
	FilePath string
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// AutoRefreshInterval is the pause between auto refreshes.
	AutoRefreshInterval time.Duration
	// AutoRefreshOnStart enables auto-refresh right after Init.
	AutoRefreshOnStart bool
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// args are the command-line arguments without the program name.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)

	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			LogLevel: cfg.App.LogLevel,
			LogFile:  cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			NotesURL:       cfg.Adapter.NotesURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			Driver:   cfg.Storage.Driver,
			SlotKey:  cfg.Storage.SlotKey,
			DSN:      cfg.Storage.DB.DSN,
			FilePath: cfg.Storage.Files.Path,
		},
		Workers: ClientWorkers{
			AutoRefreshInterval: cfg.Workers.AutoRefreshInterval,
			AutoRefreshOnStart:  cfg.Workers.AutoRefreshOnStart,
		},
	}
}
