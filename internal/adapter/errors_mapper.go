// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/accumulo-proxy-login/internal/proxy"
	"github.com/apache/thrift/lib/go/thrift"
)

// mapThriftError translates an error returned by the generated client into
// one of the package sentinels. The original error stays in the chain.
//
// The check goes by TExceptionType rather than by interface: a
// TTransportException also satisfies thrift.TProtocolException.
func mapThriftError(err error) error {
	if err == nil {
		return nil
	}

	var secErr *proxy.AccumuloSecurityException
	if errors.As(err, &secErr) {
		return fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	var tErr thrift.TException
	if errors.As(err, &tErr) {
		switch tErr.TExceptionType() {
		case thrift.TExceptionTypeApplication:
			return fmt.Errorf("%w: %w", ErrRemote, err)
		case thrift.TExceptionTypeProtocol:
			return fmt.Errorf("%w: %w", ErrProtocol, err)
		case thrift.TExceptionTypeTransport:
			return fmt.Errorf("%w: %w", ErrTransport, err)
		}
	}

	return fmt.Errorf("%w: %w", ErrTransport, err)
}
