// Package config provides configuration loading, merging, and validation
// facilities for the photo album server and client.
//
// Configuration is assembled from multiple sources. For every field the first
// source that sets a non-zero value wins:
//  1. Environment variables (an optional .env file is loaded first)
//  2. Command-line flags
//  3. JSON or YAML config file
//  4. Built-in defaults
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the terminal client.
package config
