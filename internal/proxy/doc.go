// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package proxy is the Thrift binding for the subset of the Accumulo proxy
// service interface used by this module.
//
// The layout follows the Go code emitted by the Thrift compiler for the
// proxy's IDL: a service interface ([AccumuloProxy]), a client over
// [thrift.TClient] ([AccumuloProxyClient]), argument/result structs per
// method, and a server-side [AccumuloProxyProcessor]. Only the login method
// is bound:
//
//	binary login(1: string principal, 2: map<string, string> loginProperties)
//	    throws (1: AccumuloSecurityException ouch2)
//
// The binding is transport-agnostic; callers choose the transport and
// protocol (the proxy itself expects a framed transport with the compact
// protocol).
package proxy
