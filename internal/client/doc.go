// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires the terminal UI, the notes controller and the local storage into
// a single process lifecycle: load the cached notes, start one refresh, run
// the UI and tear everything down on quit or on SIGINT/SIGTERM.
package client
