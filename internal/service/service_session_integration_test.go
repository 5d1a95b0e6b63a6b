// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service_test

import (
	"context"
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/MKhiriev/accumulo-proxy-login/internal/adapter"
	"github.com/MKhiriev/accumulo-proxy-login/internal/config"
	"github.com/MKhiriev/accumulo-proxy-login/internal/logger"
	"github.com/MKhiriev/accumulo-proxy-login/internal/proxy/proxytest"
	"github.com/MKhiriev/accumulo-proxy-login/internal/service"
	"github.com/MKhiriev/accumulo-proxy-login/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bootstrapAgainst(t *testing.T, host string, port int, c models.Credentials) (*service.Session, error) {
	t.Helper()
	a := adapter.NewThriftProxyAdapter(config.ClientProxy{
		Host:           host,
		Port:           port,
		ConnectTimeout: time.Second,
		SocketTimeout:  5 * time.Second,
	}, logger.Nop())
	return service.NewSessionService(a, logger.Nop()).Bootstrap(context.Background(), c)
}

func startProxy(t *testing.T) *proxytest.Server {
	t.Helper()
	s, err := proxytest.NewServer(proxytest.StaticHandler{Principal: "root", Password: "secret", Token: []byte("opaque-token")})
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s
}

func TestBootstrap_Proxy_Success(t *testing.T) {
	s := startProxy(t)

	session, err := bootstrapAgainst(t, s.Host(), s.Port(), creds)

	require.NoError(t, err)
	require.NotNil(t, session.Client)
	assert.Equal(t, models.LoginToken("opaque-token"), session.Token)
	assert.Equal(t, int64(1), s.Calls())

	// The client stays usable on the session connection.
	token, err := session.Client.Login(context.Background(), "root", creds.LoginProperties())
	require.NoError(t, err)
	assert.Equal(t, []byte("opaque-token"), token)

	assert.NoError(t, session.Close())
	assert.NoError(t, session.Close())
}

func TestBootstrap_Proxy_WrongPassword(t *testing.T) {
	s := startProxy(t)

	session, err := bootstrapAgainst(t, s.Host(), s.Port(), models.NewCredentials("root", "nope"))

	assert.Nil(t, session)
	assert.ErrorIs(t, err, service.ErrLoginOnProxy)
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
	assert.Equal(t, int64(1), s.Calls())
}

func TestBootstrap_Proxy_Unreachable(t *testing.T) {
	s := startProxy(t)

	// A second listener that is closed immediately gives a dead port.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	_, portStr, _ := net.SplitHostPort(ln.Addr().String())
	require.NoError(t, ln.Close())
	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)

	session, err := bootstrapAgainst(t, "127.0.0.1", port, creds)

	assert.Nil(t, session)
	assert.ErrorIs(t, err, service.ErrConnectProxy)
	assert.ErrorIs(t, err, adapter.ErrConnection)
	assert.Zero(t, s.Calls())
}

func TestBootstrap_Proxy_CancelWhileStalled(t *testing.T) {
	// A listener that accepts and never answers.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })
	accepted := make(chan net.Conn, 1)
	go func() {
		if c, err := ln.Accept(); err == nil {
			accepted <- c
		}
	}()
	t.Cleanup(func() {
		select {
		case c := <-accepted:
			_ = c.Close()
		default:
		}
	})

	a := adapter.NewThriftProxyAdapter(config.ClientProxy{
		Host: "127.0.0.1",
		Port: ln.Addr().(*net.TCPAddr).Port,
	}, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(100*time.Millisecond, cancel)

	done := make(chan error, 1)
	go func() {
		_, err := service.NewSessionService(a, logger.Nop()).Bootstrap(ctx, creds)
		done <- err
	}()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, service.ErrLoginOnProxy)
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Bootstrap did not return after ctx was canceled")
	}

	// The failed bootstrap released the connection.
	assert.Nil(t, a.Client())
}
