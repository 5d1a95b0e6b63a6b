// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jessevdk/go-flags"
)

// Usage is the one-line synopsis printed with argument errors.
const Usage = "usage: client [options] <host> <username> <password>"

// cliOptions describes the command line accepted by the client.
//
// Options:
//
//	--connect-timeout  TCP connect timeout (e.g. "5s")
//	--socket-timeout   per read/write timeout (e.g. "30s")
//	--max-frame-size   maximum framed message size in bytes
//	--log-level        zerolog level name
//	-c/--config        json file path with configs
//
// Positional arguments (all required):
//
//	host      proxy host; the port is always 42424
//	username  Accumulo principal
//	password  password sent in the login properties
type cliOptions struct {
	ConnectTimeout time.Duration `long:"connect-timeout" description:"TCP connect timeout (e.g. 5s)"`
	SocketTimeout  time.Duration `long:"socket-timeout" description:"Read/write timeout on the proxy connection (e.g. 30s)"`
	MaxFrameSize   int32         `long:"max-frame-size" description:"Maximum framed message size in bytes"`
	LogLevel       string        `long:"log-level" description:"Log level (trace, debug, info, warn, error)"`
	Config         string        `short:"c" long:"config" description:"JSON config file path"`

	Args struct {
		Host     string `positional-arg-name:"host" description:"Accumulo proxy host"`
		Username string `positional-arg-name:"username" description:"Accumulo principal"`
		Password string `positional-arg-name:"password" description:"Password of the principal"`
	} `positional-args:"yes" required:"yes"`
}

// ParseArgs parses the command-line arguments (without the program name).
//
// The three positional arguments are mandatory: when any is missing the
// returned error wraps [ErrMissingArguments]. Surplus positional arguments
// are rejected with [ErrUnexpectedArguments]. A help request yields a
// *[HelpError] carrying the generated help text.
func ParseArgs(args []string) (*StructuredConfig, error) {
	var opts cliOptions
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "client"

	rest, err := parser.ParseArgs(args)
	if err != nil {
		return nil, mapFlagsError(err)
	}
	if len(rest) > 0 {
		return nil, fmt.Errorf("%w: %s\n%s", ErrUnexpectedArguments, strings.Join(rest, " "), Usage)
	}

	return &StructuredConfig{
		Proxy: Proxy{
			Host:           opts.Args.Host,
			Principal:      opts.Args.Username,
			Password:       opts.Args.Password,
			ConnectTimeout: opts.ConnectTimeout,
			SocketTimeout:  opts.SocketTimeout,
			MaxFrameSize:   opts.MaxFrameSize,
		},
		Log: Log{
			Level: opts.LogLevel,
		},
		JSONFilePath: opts.Config,
	}, nil
}

func mapFlagsError(err error) error {
	var flagsErr *flags.Error
	if !errors.As(err, &flagsErr) {
		return fmt.Errorf("error parsing arguments: %w", err)
	}

	switch flagsErr.Type {
	case flags.ErrHelp:
		return &HelpError{Help: flagsErr.Message}
	case flags.ErrRequired:
		return fmt.Errorf("%w: %s\n%s", ErrMissingArguments, flagsErr.Message, Usage)
	default:
		return fmt.Errorf("%w: %s\n%s", ErrInvalidArguments, flagsErr.Message, Usage)
	}
}
