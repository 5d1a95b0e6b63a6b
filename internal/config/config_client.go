// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/MKhiriev/accumulo-proxy-login/models"
)

// ClientProxy holds the network settings used by the proxy transport.
type ClientProxy struct {
	// Host is the proxy host exactly as given on the command line.
	Host string
	// Port is always [ProxyPort] for configs built by [GetClientConfig].
	Port int
	// ConnectTimeout bounds the TCP connect; zero means none.
	ConnectTimeout time.Duration
	// SocketTimeout bounds each read/write; zero means none.
	SocketTimeout time.Duration
	// MaxFrameSize caps a framed message; zero selects the library default.
	MaxFrameSize int32
}

// Address returns the dial address. The host is used verbatim as the host
// component, so a host containing a colon never changes the port.
func (p ClientProxy) Address() string {
	return net.JoinHostPort(p.Host, strconv.Itoa(p.Port))
}

// ClientLog holds logger settings for the client.
type ClientLog struct {
	// Level is a zerolog level name; empty means "info".
	Level string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Proxy contains the proxy address and transport tuning.
	Proxy ClientProxy
	// Credentials identifies the user to log in as.
	Credentials models.Credentials
	// Log contains logger settings.
	Log ClientLog
}

// GetClientConfig builds and validates a client-specific config view from
// the merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps the fields
// relevant to the client runtime, pins the port to [ProxyPort], and
// validates the resulting [ClientConfig].
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	if err = clientCfg.validate(); err != nil {
		return nil, err
	}

	return clientCfg, nil
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		Proxy: ClientProxy{
			Host:           cfg.Proxy.Host,
			Port:           ProxyPort,
			ConnectTimeout: cfg.Proxy.ConnectTimeout,
			SocketTimeout:  cfg.Proxy.SocketTimeout,
			MaxFrameSize:   cfg.Proxy.MaxFrameSize,
		},
		Credentials: models.NewCredentials(cfg.Proxy.Principal, cfg.Proxy.Password),
		Log: ClientLog{
			Level: cfg.Log.Level,
		},
	}
}
