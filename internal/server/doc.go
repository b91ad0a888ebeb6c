// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server wires and runs the application's HTTP listener.
//
// It handles startup, OS signal handling, and graceful shutdown.
package server
