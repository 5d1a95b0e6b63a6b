// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// PasswordProperty is the login property key the proxy reads the password
// from when authenticating with a password token.
const PasswordProperty = "password"

// Credentials identifies the Accumulo user a session is opened for.
type Credentials struct {
	// Principal is the Accumulo user name.
	Principal string `json:"principal"`

	// Password is sent to the proxy in the login properties map.
	// It is never serialized or printed.
	Password string `json:"-"`
}

// NewCredentials constructs [Credentials] for a password login.
func NewCredentials(principal, password string) Credentials {
	return Credentials{Principal: principal, Password: password}
}

// LoginProperties returns the properties map sent with the login call.
// It holds exactly one entry, keyed by [PasswordProperty].
func (c Credentials) LoginProperties() map[string]string {
	return map[string]string{PasswordProperty: c.Password}
}

// Valid reports whether the credentials name a principal.
func (c Credentials) Valid() bool {
	return strings.TrimSpace(c.Principal) != ""
}

// String implements [fmt.Stringer]; the password is always masked.
func (c Credentials) String() string {
	return "Credentials{Principal: " + c.Principal + ", Password: ****}"
}
