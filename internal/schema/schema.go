// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package schema describes request and response bodies as plain data.
//
// A single [Object] declaration drives two consumers: request validation
// (Validate, a pure function producing accepted-or-rejected results) and
// the generated API documentation (BuildOpenAPI). Keeping both on one
// source of truth means the docs can never drift from what the validator
// actually enforces.
package schema

import (
	"fmt"
	"regexp"
)

// Type is the JSON type a field must carry.
type Type string

const (
	TypeString  Type = "string"
	TypeInteger Type = "integer"
	TypeBoolean Type = "boolean"
)

// Formats understood by the validator.
const (
	FormatEmail    = "email"
	FormatDateTime = "date-time"
)

// emailPattern is deliberately loose: one @, no whitespace, a dot in the
// domain. Stricter RFC 5322 matching rejects real addresses.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Field describes one property of an object schema.
type Field struct {
	Name      string
	Type      Type
	Required  bool
	Format    string
	MinLength int
	Nullable  bool
}

// Object is a named JSON object schema.
type Object struct {
	Name        string
	Title       string
	Description string
	Fields      []Field
}

// FieldError reports one violated field with a human-readable reason.
type FieldError struct {
	Field  string
	Reason string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// Validate checks a decoded JSON object against the schema and returns every
// violation found. An empty result means the body is accepted. Fields not
// declared in the schema are ignored.
func (o Object) Validate(data map[string]any) []FieldError {
	var errs []FieldError

	for _, f := range o.Fields {
		value, present := data[f.Name]

		if !present {
			if f.Required {
				errs = append(errs, FieldError{f.Name, "is required"})
			}
			continue
		}

		if value == nil {
			if !f.Nullable {
				errs = append(errs, FieldError{f.Name, "must not be null"})
			}
			continue
		}

		if err := f.check(value); err != nil {
			errs = append(errs, *err)
		}
	}

	return errs
}

// check validates a single present, non-null value.
func (f Field) check(value any) *FieldError {
	switch f.Type {
	case TypeString:
		s, ok := value.(string)
		if !ok {
			return &FieldError{f.Name, "must be a string"}
		}
		if f.MinLength > 0 && len(s) < f.MinLength {
			return &FieldError{f.Name, fmt.Sprintf("must be at least %d characters", f.MinLength)}
		}
		if f.Format == FormatEmail && !emailPattern.MatchString(s) {
			return &FieldError{f.Name, "must be a valid email address"}
		}

	case TypeInteger:
		// encoding/json decodes every number to float64.
		n, ok := value.(float64)
		if !ok {
			return &FieldError{f.Name, "must be an integer"}
		}
		if n != float64(int64(n)) {
			return &FieldError{f.Name, "must be an integer"}
		}

	case TypeBoolean:
		if _, ok := value.(bool); !ok {
			return &FieldError{f.Name, "must be a boolean"}
		}
	}

	return nil
}
