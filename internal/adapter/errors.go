// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrConnection   = errors.New("cannot connect to proxy")
	ErrUnauthorized = errors.New("proxy rejected credentials")
	ErrTransport    = errors.New("proxy transport failure")
	ErrProtocol     = errors.New("proxy protocol failure")
	ErrRemote       = errors.New("proxy application failure")

	ErrNotOpen     = errors.New("proxy adapter is not open")
	ErrAlreadyOpen = errors.New("proxy adapter is already open")
)
