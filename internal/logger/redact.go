// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"encoding/json"
	"strings"

	"github.com/rs/zerolog"
)

// RedactedMarker replaces the value of every sensitive field before a record
// leaves the process. The replacement is irreversible.
const RedactedMarker = "[REDACTED]"

// sensitiveFields lists field names (compared case-insensitively) whose
// values must never appear in any sink: credential headers on requests and
// responses, plus credential-bearing body fields.
var sensitiveFields = map[string]struct{}{
	"authorization": {},
	"cookie":        {},
	"x-api-key":     {},
	"set-cookie":    {},
	"password":      {},
	"token":         {},
	"accesstoken":   {},
	"refreshtoken":  {},
	"apikey":        {},
	"secret":        {},
}

// redactWriter rewrites each JSON log line, censoring sensitive fields at
// any nesting depth, before handing it to the composed sinks. It sits
// directly under the zerolog logger so there is exactly one place every
// record passes through.
type redactWriter struct {
	next zerolog.LevelWriter
}

func (w redactWriter) Write(p []byte) (int, error) {
	return w.WriteLevel(zerolog.NoLevel, p)
}

func (w redactWriter) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	if _, err := w.next.WriteLevel(level, redactLine(p)); err != nil {
		return 0, err
	}
	// Report the original length: zerolog treats short writes as errors.
	return len(p), nil
}

// redactLine censors one JSON-encoded record. Lines that do not parse as a
// JSON object (or contain nothing sensitive) pass through unchanged.
func redactLine(p []byte) []byte {
	var record map[string]any
	if err := json.Unmarshal(p, &record); err != nil {
		return p
	}

	if !censorMap(record) {
		return p
	}

	out, err := json.Marshal(record)
	if err != nil {
		return p
	}

	return append(out, '\n')
}

// censorMap walks the object and replaces the value of every sensitive key,
// recursing into nested objects and arrays. Reports whether anything was
// replaced.
func censorMap(m map[string]any) bool {
	changed := false
	for key, value := range m {
		if _, sensitive := sensitiveFields[strings.ToLower(key)]; sensitive {
			m[key] = RedactedMarker
			changed = true
			continue
		}
		if censorValue(value) {
			changed = true
		}
	}
	return changed
}

func censorValue(v any) bool {
	switch inner := v.(type) {
	case map[string]any:
		return censorMap(inner)
	case []any:
		changed := false
		for _, item := range inner {
			if censorValue(item) {
				changed = true
			}
		}
		return changed
	default:
		return false
	}
}
