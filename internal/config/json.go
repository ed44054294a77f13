package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON shape of the configuration.
type StructuredJSONConfig struct {
	App struct {
		LogLevel string `json:"log_level"`
		LogFile  string `json:"log_file"`
	} `json:"app,omitempty"`

	Adapter struct {
		NotesURL       string   `json:"notes_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Storage struct {
		Driver  string `json:"driver"`
		SlotKey string `json:"slot_key"`

		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Files struct {
			Path string `json:"path"`
		} `json:"files,omitempty"`
	} `json:"storage,omitempty"`

	Workers struct {
		AutoRefreshInterval Duration `json:"auto_refresh_interval"`
		AutoRefreshOnStart  bool     `json:"auto_refresh_on_start"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			LogLevel: jsonCfg.App.LogLevel,
			LogFile:  jsonCfg.App.LogFile,
		},
		Adapter: Adapter{
			NotesURL:       jsonCfg.Adapter.NotesURL,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Storage: Storage{
			Driver:  jsonCfg.Storage.Driver,
			SlotKey: jsonCfg.Storage.SlotKey,
			DB:      DB{DSN: jsonCfg.Storage.DB.DSN},
			Files:   Files{Path: jsonCfg.Storage.Files.Path},
		},
		Workers: Workers{
			AutoRefreshInterval: time.Duration(jsonCfg.Workers.AutoRefreshInterval),
			AutoRefreshOnStart:  jsonCfg.Workers.AutoRefreshOnStart,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
