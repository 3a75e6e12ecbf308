// Package config provides configuration loading, merging, and validation
// facilities for the relay and device binaries.
//
// Configuration is assembled from multiple sources. A field keeps the value
// of the first source that sets it, in this priority order:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file (path from CONFIG, -c or -config)
//  4. Built-in defaults
//
// The entry points are [GetRelayConfig] and [GetDeviceConfig]; each returns a
// validated view holding only what its binary needs.
package config
