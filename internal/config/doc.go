// Package config provides configuration loading, merging, and validation
// facilities for the messenger server and client.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry points are [GetServerConfig] and [GetClientConfig], which
// project the merged [StructuredConfig] onto the settings each binary needs.
package config
