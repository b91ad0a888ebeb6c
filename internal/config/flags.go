// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"io"
	"os"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-host          bind host for the HTTP listener
//	-port          TCP port for the HTTP listener
//	-d             database DSN
//	-jwt-secret    token signing secret
//	-log-level     minimum console log level
//	-log-dir       directory for rotating log files
//	-c/-config     json file path with configs
//
// Flag defaults are intentionally zero values: flags sit below environment
// variables and above the JSON file and built-in defaults in merge priority,
// so a flag must only contribute when explicitly set.
func ParseFlags() *Config {
	cfg := new(Config)

	fs := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.Server.Host, "host", "", "bind host for the HTTP listener")
	fs.IntVar(&cfg.Server.Port, "port", 0, "TCP port for the HTTP listener")
	fs.StringVar(&cfg.Storage.DSN, "d", "", "database DSN")
	fs.StringVar(&cfg.App.JWTSecret, "jwt-secret", "", "token signing secret")
	fs.StringVar(&cfg.Log.Level, "log-level", "", "minimum console log level")
	fs.StringVar(&cfg.Log.Dir, "log-dir", "", "directory for rotating log files")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "json config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "json config file path")

	// ContinueOnError: an unknown flag must not kill the process here,
	// validation reports the final merged state.
	_ = fs.Parse(os.Args[1:])

	return cfg
}
