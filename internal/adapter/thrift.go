// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net"
	"sync"

	"github.com/MKhiriev/accumulo-proxy-login/internal/config"
	"github.com/MKhiriev/accumulo-proxy-login/internal/logger"
	"github.com/MKhiriev/accumulo-proxy-login/internal/proxy"
	"github.com/MKhiriev/accumulo-proxy-login/models"
	"github.com/apache/thrift/lib/go/thrift"
)

type thriftProxyAdapter struct {
	address string
	conf    *thrift.TConfiguration
	dialer  net.Dialer

	mu        sync.Mutex
	conn      *interruptibleConn
	transport thrift.TTransport
	client    *proxy.AccumuloProxyClient

	logger *logger.Logger
}

// NewThriftProxyAdapter constructs the Thrift implementation of
// [ProxyAdapter] for cfg.Address(). Nothing is dialed until Open.
//
// Zero timeouts and frame size in cfg select the Thrift library defaults.
func NewThriftProxyAdapter(cfg config.ClientProxy, log *logger.Logger) ProxyAdapter {
	return &thriftProxyAdapter{
		address: cfg.Address(),
		conf: &thrift.TConfiguration{
			ConnectTimeout: cfg.ConnectTimeout,
			SocketTimeout:  cfg.SocketTimeout,
			MaxFrameSize:   cfg.MaxFrameSize,
		},
		dialer: net.Dialer{Timeout: cfg.ConnectTimeout},
		logger: log,
	}
}

func (a *thriftProxyAdapter) Address() string {
	return a.address
}

func (a *thriftProxyAdapter) Open(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.transport != nil {
		return ErrAlreadyOpen
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrConnection, err)
	}

	a.logger.Debug().Str("address", a.address).Msg("connecting to proxy")

	conn, err := a.dialer.DialContext(ctx, "tcp", a.address)
	if err != nil {
		a.logger.Err(err).Str("address", a.address).Msg("proxy is unreachable")
		return fmt.Errorf("%w %s: %w", ErrConnection, a.address, err)
	}

	// The socket wraps an already connected conn, so the framed transport
	// is open as soon as it is built.
	ic := newInterruptibleConn(conn)
	socket := thrift.NewTSocketFromConnConf(ic, a.conf)
	transport := thrift.NewTFramedTransportConf(socket, a.conf)
	protocol := thrift.NewTCompactProtocolConf(transport, a.conf)

	a.conn = ic
	a.transport = transport
	a.client = proxy.NewAccumuloProxyClientProtocol(protocol, protocol)

	a.logger.Debug().Str("address", a.address).Msg("connected to proxy")
	return nil
}

// Login holds the mutex only to read the connection, so Close can interrupt a
// call in flight. Cancelling ctx interrupts the conn, which unblocks a read
// the Thrift transport would otherwise wait on forever.
func (a *thriftProxyAdapter) Login(ctx context.Context, creds models.Credentials) (models.LoginToken, error) {
	a.mu.Lock()
	client, conn := a.client, a.conn
	a.mu.Unlock()

	if client == nil {
		return nil, ErrNotOpen
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	a.logger.Debug().Str("principal", creds.Principal).Msg("login request")

	stop := context.AfterFunc(ctx, conn.interrupt)
	defer stop()

	token, err := client.Login(ctx, creds.Principal, creds.LoginProperties())
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			a.logger.Warn().Err(ctxErr).Str("principal", creds.Principal).Msg("login interrupted")
			return nil, ctxErr
		}
		mapped := mapThriftError(err)
		a.logger.Err(mapped).Str("principal", creds.Principal).Msg("login failed")
		return nil, mapped
	}

	return models.LoginToken(token), nil
}

func (a *thriftProxyAdapter) Client() proxy.AccumuloProxy {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.client == nil {
		return nil
	}
	return a.client
}

func (a *thriftProxyAdapter) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.transport == nil {
		return nil
	}

	err := a.transport.Close()
	a.conn = nil
	a.transport = nil
	a.client = nil

	if err != nil {
		return fmt.Errorf("error closing proxy transport: %w", err)
	}
	a.logger.Debug().Str("address", a.address).Msg("proxy connection closed")
	return nil
}
