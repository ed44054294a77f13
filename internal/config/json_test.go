package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_AllFields(t *testing.T) {
	raw := `{
		"app": {"log_level": "debug", "log_file": "x.log"},
		"adapter": {"notes_url": "http://json/notes", "request_timeout": "3s"},
		"storage": {
			"driver": "file",
			"slot_key": "k",
			"db": {"dsn": "j.db"},
			"files": {"path": "j.json"}
		},
		"workers": {"auto_refresh_interval": "2m", "auto_refresh_on_start": true}
	}`
	path := filepath.Join(t.TempDir(), "cfg.json")
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o600))

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, "x.log", cfg.App.LogFile)
	assert.Equal(t, "http://json/notes", cfg.Adapter.NotesURL)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DriverFile, cfg.Storage.Driver)
	assert.Equal(t, "k", cfg.Storage.SlotKey)
	assert.Equal(t, "j.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "j.json", cfg.Storage.Files.Path)
	assert.Equal(t, 2*time.Minute, cfg.Workers.AutoRefreshInterval)
	assert.True(t, cfg.Workers.AutoRefreshOnStart)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_Errors(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"adapter": {"request_timeout": "later"}}`), 0o600))
	_, err = parseJSON(path)
	assert.Error(t, err)
}

func TestDuration_JSON(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`"1m30s"`), &d))
	assert.Equal(t, 90*time.Second, time.Duration(d))

	require.NoError(t, json.Unmarshal([]byte(`1000000000`), &d))
	assert.Equal(t, time.Second, time.Duration(d))

	out, err := json.Marshal(Duration(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, `"1m0s"`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`true`), &d))
}
