// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/accumulo-proxy-login/internal/adapter"
	"github.com/MKhiriev/accumulo-proxy-login/internal/logger"
	"github.com/MKhiriev/accumulo-proxy-login/models"
	"github.com/google/uuid"
)

type sessionService struct {
	adapter adapter.ProxyAdapter
	logger  *logger.Logger
}

func NewSessionService(proxyAdapter adapter.ProxyAdapter, logger *logger.Logger) SessionService {
	return &sessionService{adapter: proxyAdapter, logger: logger}
}

func (s *sessionService) Bootstrap(ctx context.Context, creds models.Credentials) (_ *Session, err error) {
	if !creds.Valid() {
		return nil, ErrInvalidCredentials
	}

	id := newSessionID()
	log := s.logger.WithSessionID(id.String())
	address := s.adapter.Address()

	log.Info().
		Str("address", address).
		Str("principal", creds.Principal).
		Msg("starting proxy session")

	if err = s.adapter.Open(ctx); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConnectProxy, err)
	}

	// Any failure from here on leaves an open connection behind.
	defer func() {
		if err == nil {
			return
		}
		if closeErr := s.adapter.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("error closing proxy connection after failed login")
		}
	}()

	token, err := s.adapter.Login(ctx, creds)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoginOnProxy, err)
	}
	if token.IsZero() {
		return nil, ErrEmptyLoginToken
	}

	log.Info().
		Str("principal", creds.Principal).
		Int("token_len", token.Len()).
		Msg("logged in on proxy")

	return &Session{
		ID:        id,
		Principal: creds.Principal,
		Address:   address,
		Client:    s.adapter.Client(),
		Token:     token,
		closer:    s.adapter,
		logger:    log,
	}, nil
}

// newSessionID returns a time-ordered v7 UUID so session IDs sort by start
// time in logs, falling back to v4.
func newSessionID() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}
	return id
}
