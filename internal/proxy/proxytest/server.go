// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package proxytest provides an in-process Accumulo proxy speaking the
// framed transport with the compact protocol, for use in tests.
package proxytest

import (
	"context"
	"crypto/subtle"
	"errors"
	"net"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/accumulo-proxy-login/internal/proxy"
	"github.com/apache/thrift/lib/go/thrift"
)

// Server is a loopback proxy serving an [proxy.AccumuloProxy] handler.
type Server struct {
	listener  net.Listener
	processor *proxy.AccumuloProxyProcessor
	conf      *thrift.TConfiguration

	calls atomic.Int64

	mu     sync.Mutex
	conns  map[net.Conn]struct{}
	closed bool
	wg     sync.WaitGroup
}

// NewServer starts a server on 127.0.0.1 with a random port.
func NewServer(handler proxy.AccumuloProxy) (*Server, error) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, err
	}

	s := &Server{
		listener: ln,
		conf:     &thrift.TConfiguration{},
		conns:    make(map[net.Conn]struct{}),
	}
	s.processor = proxy.NewAccumuloProxyProcessor(&countingHandler{next: handler, calls: &s.calls})

	s.wg.Add(1)
	go s.acceptLoop()

	return s, nil
}

// Host returns the address the server listens on, without port.
func (s *Server) Host() string {
	host, _, _ := net.SplitHostPort(s.listener.Addr().String())
	return host
}

// Port returns the port the server listens on.
func (s *Server) Port() int {
	_, port, _ := net.SplitHostPort(s.listener.Addr().String())
	p, _ := strconv.Atoi(port)
	return p
}

// Calls returns the number of login calls that reached the handler.
func (s *Server) Calls() int64 {
	return s.calls.Load()
}

// Close stops accepting, drops open connections and waits for the serving
// goroutines to exit.
func (s *Server) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	_ = s.listener.Close()
	for conn := range s.conns {
		_ = conn.Close()
	}
	s.mu.Unlock()

	s.wg.Wait()
}

func (s *Server) acceptLoop() {
	defer s.wg.Done()

	for {
		conn, err := s.listener.Accept()
		if err != nil {
			return
		}

		s.mu.Lock()
		if s.closed {
			s.mu.Unlock()
			_ = conn.Close()
			return
		}
		s.conns[conn] = struct{}{}
		s.wg.Add(1)
		s.mu.Unlock()

		go s.serve(conn)
	}
}

func (s *Server) serve(conn net.Conn) {
	defer s.wg.Done()
	defer func() {
		s.mu.Lock()
		delete(s.conns, conn)
		s.mu.Unlock()
		_ = conn.Close()
	}()

	socket := thrift.NewTSocketFromConnConf(conn, s.conf)
	transport := thrift.NewTFramedTransportConf(socket, s.conf)
	protocol := thrift.NewTCompactProtocolConf(transport, s.conf)

	ctx := context.Background()
	for {
		ok, err := s.processor.Process(ctx, protocol, protocol)
		if err != nil || !ok {
			return
		}
	}
}

type countingHandler struct {
	next  proxy.AccumuloProxy
	calls *atomic.Int64
}

func (h *countingHandler) Login(ctx context.Context, principal string, loginProperties map[string]string) ([]byte, error) {
	h.calls.Add(1)
	return h.next.Login(ctx, principal, loginProperties)
}

// StaticHandler accepts a single principal/password pair and answers every
// successful login with Token.
type StaticHandler struct {
	Principal string
	Password  string
	Token     []byte
}

// Login implements [proxy.AccumuloProxy].
func (h StaticHandler) Login(_ context.Context, principal string, loginProperties map[string]string) ([]byte, error) {
	password, ok := loginProperties["password"]
	if !ok {
		return nil, &proxy.AccumuloSecurityException{Msg: "no password login property"}
	}

	if principal != h.Principal || subtle.ConstantTimeCompare([]byte(password), []byte(h.Password)) != 1 {
		return nil, &proxy.AccumuloSecurityException{Msg: "Error BAD_CREDENTIALS for user " + principal}
	}

	return h.Token, nil
}

// HandlerFunc adapts a function to [proxy.AccumuloProxy].
type HandlerFunc func(ctx context.Context, principal string, loginProperties map[string]string) ([]byte, error)

// Login implements [proxy.AccumuloProxy].
func (f HandlerFunc) Login(ctx context.Context, principal string, loginProperties map[string]string) ([]byte, error) {
	return f(ctx, principal, loginProperties)
}

// ErrHandler is returned by handlers that want the processor to answer with
// an INTERNAL_ERROR application exception.
var ErrHandler = errors.New("proxytest: handler failure")
