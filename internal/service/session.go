// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"io"
	"sync"

	"github.com/MKhiriev/accumulo-proxy-login/internal/logger"
	"github.com/MKhiriev/accumulo-proxy-login/internal/proxy"
	"github.com/MKhiriev/accumulo-proxy-login/models"
	"github.com/google/uuid"
)

// Session is an authenticated connection to the proxy. It only exists after
// a successful login.
type Session struct {
	// ID correlates the log lines of one session.
	ID uuid.UUID
	// Principal is the user the session is logged in as.
	Principal string
	// Address is the proxy host:port.
	Address string
	// Client issues calls over the session's connection.
	Client proxy.AccumuloProxy
	// Token is passed to subsequent proxy calls.
	Token models.LoginToken

	closer   io.Closer
	once     sync.Once
	closeErr error
	logger   *logger.Logger
}

// Close releases the connection. Calls after the first return the first
// result.
func (s *Session) Close() error {
	s.once.Do(func() {
		if s.closer != nil {
			s.closeErr = s.closer.Close()
		}
		if s.logger != nil {
			s.logger.Info().Err(s.closeErr).Msg("proxy session closed")
		}
	})
	return s.closeErr
}
