// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// ErrInvalidConfig wraps the joined list of configuration violations
// produced by validation. The process must not start while it is non-nil.
var ErrInvalidConfig = errors.New("invalid configuration")
