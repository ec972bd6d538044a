// Package config provides configuration loading, merging, and validation
// facilities for the launcher and the development directory server.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables (including envDefault values)
//  2. Command-line flags
//  3. JSON config file
//
// The main entry points are [GetStructuredConfig] and [GetClientConfig].
package config
