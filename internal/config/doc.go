// Package config provides configuration loading, merging, and validation
// facilities for the client.
//
// The proxy host and the login credentials are the three required
// positional arguments. Optional tuning is assembled from multiple sources in
// the following priority order (later sources override earlier non-zero
// fields):
//  1. Environment variables
//  2. Command-line options
//  3. JSON config file
//
// The main entry point is [GetClientConfig]. The proxy port is fixed at
// [ProxyPort] and cannot be overridden by any source.
package config
