// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"os"
	"time"
)

// ParseFlags parses all configuration flags from os.Args using
// flag.CommandLine.
//
// Flags:
//
//	-a store base URL (e.g. http://localhost:3000)
//	-identity-address random identity generator URL
//	-request-timeout outbound request timeout (e.g. "5s"), 0 disables it
//	-log-file client log file path
//	-log-level zerolog level name
//	-notice-ttl how long notices stay visible (e.g. "3s")
//	-c/-config json file path with configs
func ParseFlags() (*StructuredConfig, error) {
	var storeAddress string
	var identityAddress string
	var requestTimeout time.Duration
	var logFile string
	var logLevel string
	var noticeTTL time.Duration
	var jsonConfigPath string

	fs := flag.CommandLine
	fs.StringVar(&storeAddress, "a", "", "User store base URL")
	fs.StringVar(&identityAddress, "identity-address", "", "Random identity generator URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 5s, 1m)")
	fs.StringVar(&logFile, "log-file", "", "Client log file path")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.DurationVar(&noticeTTL, "notice-ttl", 0, "Notice display time (e.g., 3s)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			NoticeTTL: noticeTTL,
		},
		Adapter: Adapter{
			StoreAddress:    storeAddress,
			IdentityAddress: identityAddress,
			RequestTimeout:  requestTimeout,
		},
		Log: Log{
			File:  logFile,
			Level: logLevel,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
