// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] satisfies the
// invariants shared by every consumer: transport tuning must not be negative
// and the log level, when set, must be known to zerolog.
func (cfg *StructuredConfig) validate() error {
	if cfg.Proxy.ConnectTimeout < 0 || cfg.Proxy.SocketTimeout < 0 {
		return fmt.Errorf("%w: timeouts must not be negative", ErrInvalidProxyConfigs)
	}
	if cfg.Proxy.MaxFrameSize < 0 {
		return fmt.Errorf("%w: max frame size must not be negative", ErrInvalidProxyConfigs)
	}

	if cfg.Log.Level != "" {
		if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidLogConfigs, err)
		}
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if strings.TrimSpace(cfg.Proxy.Host) == "" {
		return ErrEmptyHost
	}

	if !cfg.Credentials.Valid() {
		return ErrEmptyPrincipal
	}

	return nil
}
