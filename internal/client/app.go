// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/accumulo-proxy-login/internal/logger"
	"github.com/MKhiriev/accumulo-proxy-login/internal/service"
	"github.com/MKhiriev/accumulo-proxy-login/models"
)

var ErrNoServices = errors.New("client services are not configured")

// SessionHandler works with an authenticated session. The session is closed
// by the App after the last handler returns.
type SessionHandler func(ctx context.Context, session *service.Session) error

type App struct {
	services *service.ClientServices
	creds    models.Credentials
	handlers []SessionHandler

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, creds models.Credentials, logger *logger.Logger, handlers ...SessionHandler) (*App, error) {
	if services == nil || services.SessionService == nil {
		return nil, ErrNoServices
	}

	return &App{
		services: services,
		creds:    creds,
		handlers: handlers,
		logger:   logger,
	}, nil
}

// Run bootstraps one session, passes it to every handler in order and
// releases it. The first handler error stops the run.
func (a *App) Run(ctx context.Context) error {
	session, err := a.services.SessionService.Bootstrap(ctx, a.creds)
	if err != nil {
		return fmt.Errorf("error bootstrapping proxy session: %w", err)
	}
	defer func() {
		if closeErr := session.Close(); closeErr != nil {
			a.logger.Warn().Err(closeErr).Str(logger.SessionIDField, session.ID.String()).Msg("error closing proxy session")
		}
	}()

	for _, handler := range a.handlers {
		if err = handler(ctx, session); err != nil {
			return fmt.Errorf("session handler failed: %w", err)
		}
	}

	return nil
}

// ReportSession writes a one-line summary of the session to w. The token is
// only described by its length.
func ReportSession(w io.Writer) SessionHandler {
	return func(_ context.Context, session *service.Session) error {
		_, err := fmt.Fprintf(w, "logged in to %s as %s (session %s, token %d bytes)\n",
			session.Address, session.Principal, session.ID, session.Token.Len())
		return err
	}
}
