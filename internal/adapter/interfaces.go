// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the Accumulo proxy.
//
// The primary abstraction is [ProxyAdapter], which decouples the service layer
// from the underlying protocol. The package ships a Thrift implementation
// ([NewThriftProxyAdapter]) using the framed transport and the compact
// protocol.
//
// Error values defined in errors.go are mapped from Thrift exceptions by
// mapThriftError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for a rejected login).
package adapter

import (
	"context"

	"github.com/MKhiriev/accumulo-proxy-login/internal/proxy"
	"github.com/MKhiriev/accumulo-proxy-login/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/proxy_adapter_mock.go -package=mock

// ProxyAdapter owns one connection to an Accumulo proxy. It is used by a
// single session and is not meant to be shared between sessions.
type ProxyAdapter interface {
	// Open dials the proxy and prepares the framed compact-protocol client.
	// Returns [ErrConnection] (wrapped) when the proxy is unreachable and
	// [ErrAlreadyOpen] when called twice.
	Open(ctx context.Context) error

	// Login performs the login RPC with the principal and the password
	// carried as the "password" login property. Returns the opaque token
	// issued by the proxy, [ErrUnauthorized] (wrapped) when the proxy
	// rejects the credentials, or [ErrNotOpen] before Open succeeded.
	// When ctx ends mid-call, Login returns ctx.Err() without waiting for
	// the proxy; the connection is unusable afterwards and must be closed.
	Login(ctx context.Context, creds models.Credentials) (models.LoginToken, error)

	// Client returns the RPC client bound to the open connection, or nil
	// when the adapter is not open.
	Client() proxy.AccumuloProxy

	// Address returns the host:port the adapter dials.
	Address() string

	// Close releases the connection. It is safe to call more than once and
	// before Open. A Login in flight fails with [ErrTransport].
	Close() error
}
