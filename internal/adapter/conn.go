// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"net"
	"sync"
	"time"
)

// interruptibleConn lets a context break blocking I/O on a connection.
//
// TSocket pushes a fresh deadline before every read and write, which would
// undo a single SetDeadline(now). Once interrupted, the conn ignores deadline
// updates so that every later read and write fails at once.
type interruptibleConn struct {
	net.Conn

	mu          sync.Mutex
	interrupted bool
}

func newInterruptibleConn(conn net.Conn) *interruptibleConn {
	return &interruptibleConn{Conn: conn}
}

func (c *interruptibleConn) interrupt() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.interrupted = true
	_ = c.Conn.SetDeadline(time.Now())
}

func (c *interruptibleConn) SetDeadline(t time.Time) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.interrupted {
		return nil
	}
	return c.Conn.SetDeadline(t)
}

func (c *interruptibleConn) SetReadDeadline(t time.Time) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.interrupted {
		return nil
	}
	return c.Conn.SetReadDeadline(t)
}

func (c *interruptibleConn) SetWriteDeadline(t time.Time) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.interrupted {
		return nil
	}
	return c.Conn.SetWriteDeadline(t)
}
