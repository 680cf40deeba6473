// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It mounts a fresh directory state for the terminal UI and discards it when
// the UI exits.
package client
