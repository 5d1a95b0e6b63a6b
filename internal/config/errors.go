// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Argument errors returned by [ParseArgs].
var (
	// ErrMissingArguments indicates that one of host, username or password
	// was not given on the command line.
	ErrMissingArguments = errors.New("missing required arguments")
	// ErrUnexpectedArguments indicates positional arguments beyond the
	// three the client accepts.
	ErrUnexpectedArguments = errors.New("unexpected arguments")
	// ErrInvalidArguments indicates a malformed option value or an unknown
	// option.
	ErrInvalidArguments = errors.New("invalid arguments")
	// ErrHelpRequested is returned when -h/--help was given. It is not a
	// failure; see [HelpError] for the help text.
	ErrHelpRequested = errors.New("help requested")
)

// IsUsageError reports whether err comes from a malformed command line, as
// opposed to a configuration or runtime failure.
func IsUsageError(err error) bool {
	return errors.Is(err, ErrMissingArguments) ||
		errors.Is(err, ErrUnexpectedArguments) ||
		errors.Is(err, ErrInvalidArguments)
}

// HelpError carries the generated help text. It matches [ErrHelpRequested]
// with errors.Is.
type HelpError struct {
	Help string
}

func (e *HelpError) Error() string {
	return ErrHelpRequested.Error()
}

func (e *HelpError) Unwrap() error {
	return ErrHelpRequested
}

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrEmptyHost indicates a blank proxy host argument.
	ErrEmptyHost = errors.New("proxy host must not be empty")
	// ErrEmptyPrincipal indicates a blank username argument.
	ErrEmptyPrincipal = errors.New("username must not be empty")
	// ErrInvalidProxyConfigs indicates invalid transport tuning (for
	// example, a negative timeout or frame size).
	ErrInvalidProxyConfigs = errors.New("invalid proxy configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)
