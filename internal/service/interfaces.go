// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/accumulo-proxy-login/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/session_service_mock.go -package=mock

// SessionService turns credentials into an authenticated proxy session.
type SessionService interface {
	// Bootstrap opens the proxy connection and logs in with creds.
	//
	// On success the returned *Session holds a client bound to the open
	// connection and a non-empty login token; the caller owns it and must
	// Close it. On failure no session is returned and any connection opened
	// along the way is already closed. Errors wrap one of
	// [ErrInvalidCredentials], [ErrConnectProxy], [ErrLoginOnProxy] or
	// [ErrEmptyLoginToken].
	Bootstrap(ctx context.Context, creds models.Credentials) (*Session, error)
}
