// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the client application runtime.
//
// An [App] bootstraps one authenticated proxy session, hands it to the
// configured session handlers and closes it on every exit path.
package client
