// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config loads and validates the process configuration for the
// user API service.
//
// Values are merged from four sources in priority order: environment
// variables, command-line flags, an optional JSON file, and built-in
// defaults. Validation is fail-fast: every violated field is collected and
// reported at once, and the process refuses to start while any violation
// exists.
package config
