// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials provided")

	ErrConnectProxy    = errors.New("error connecting to proxy")
	ErrLoginOnProxy    = errors.New("error logging in on proxy")
	ErrEmptyLoginToken = errors.New("proxy returned an empty login token")
)
