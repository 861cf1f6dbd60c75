// Package config provides configuration loading, merging, and validation
// facilities for the anime-verse client.
//
// Configuration is assembled from multiple sources. For every field the first
// source that sets a non-zero value wins, in this order:
//  1. Command-line flags
//  2. Environment variables (optionally seeded from a .env file)
//  3. JSON config file
//  4. Built-in defaults
//
// The entry point is [GetClientConfig].
package config
