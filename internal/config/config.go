// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// ProxyPort is the port the Accumulo proxy listens on. It is not
// configurable: every connection targets host:ProxyPort.
const ProxyPort = 42424

// StructuredConfig is the top-level configuration container for the client.
// It aggregates all sub-configurations and is populated by merging values
// from environment variables, command-line arguments and an optional JSON
// file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Proxy holds the proxy target, the login credentials and transport
	// tuning.
	Proxy Proxy `envPrefix:"PROXY_"`

	// Log holds logger settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and arguments.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Proxy holds the connection target and transport settings.
type Proxy struct {
	// Host, Principal and Password come only from the positional
	// command-line arguments; they carry no env tag on purpose.
	Host      string
	Principal string
	Password  string

	// ConnectTimeout bounds the TCP connect. Zero means no timeout.
	// Env: PROXY_CONNECT_TIMEOUT
	ConnectTimeout time.Duration `env:"CONNECT_TIMEOUT"`

	// SocketTimeout bounds each read/write on the open connection.
	// Zero means no timeout.
	// Env: PROXY_SOCKET_TIMEOUT
	SocketTimeout time.Duration `env:"SOCKET_TIMEOUT"`

	// MaxFrameSize caps the size of a single framed message in bytes.
	// Zero selects the Thrift library default.
	// Env: PROXY_MAX_FRAME_SIZE
	MaxFrameSize int32 `env:"MAX_FRAME_SIZE"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name ("debug", "info", "warn", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// GetStructuredConfig loads and merges the configuration from all available
// sources in the following priority order (later non-zero values win):
//  1. Environment variables
//  2. Command-line arguments (args excludes the program name)
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withArgs(args).
		withJSON().
		build()
}
