// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// LoginToken is the opaque credential returned by the proxy's login call.
//
// The proxy treats it as a serialized authentication token; the client never
// inspects its contents and only hands it back on subsequent calls. Because it
// authenticates the holder, String never reveals the raw bytes.
type LoginToken []byte

// IsZero reports whether the token carries no data.
func (t LoginToken) IsZero() bool {
	return len(t) == 0
}

// Len returns the size of the serialized token in bytes.
func (t LoginToken) Len() int {
	return len(t)
}

// String implements [fmt.Stringer] without exposing token material.
func (t LoginToken) String() string {
	if t.IsZero() {
		return "LoginToken(empty)"
	}

	return fmt.Sprintf("LoginToken(%d bytes, redacted)", len(t))
}
