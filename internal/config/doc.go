// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the echo server and client binaries.
//
// Configuration is assembled from several sources. The first source that
// provides a non-zero value for a field wins:
//  1. Command-line flags
//  2. Environment variables
//  3. Config file (JSON or TOML, chosen by extension)
//  4. Built-in defaults
//
// The entry points are [GetServerConfig] and [GetClientConfig].
package config
