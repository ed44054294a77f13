// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// validate checks the client view before it is used at startup. Each failed
// section is reported with its sentinel error so callers can use errors.Is.
func (cfg *ClientConfig) validate() error {
	if err := validation.ValidateStruct(&cfg.Storage,
		validation.Field(&cfg.Storage.Driver, validation.Required, validation.In(DriverSQLite, DriverFile)),
		validation.Field(&cfg.Storage.SlotKey, validation.Required),
		validation.Field(&cfg.Storage.DSN, validation.When(cfg.Storage.Driver == DriverSQLite, validation.Required)),
		validation.Field(&cfg.Storage.FilePath, validation.When(cfg.Storage.Driver == DriverFile, validation.Required)),
	); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidStorageConfigs, err)
	}

	if err := validation.ValidateStruct(&cfg.Adapter,
		validation.Field(&cfg.Adapter.NotesURL, validation.Required, is.URL),
		validation.Field(&cfg.Adapter.RequestTimeout, validation.Required, validation.Min(0).Exclusive()),
	); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAdapterConfigs, err)
	}

	if err := validation.ValidateStruct(&cfg.Workers,
		validation.Field(&cfg.Workers.AutoRefreshInterval, validation.Required, validation.Min(time.Second)),
	); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidWorkerConfigs, err)
	}

	if err := validation.ValidateStruct(&cfg.App,
		validation.Field(&cfg.App.LogLevel, validation.In("trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled")),
	); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAppConfigs, err)
	}

	return nil
}
