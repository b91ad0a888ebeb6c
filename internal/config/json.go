// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// jsonConfig mirrors [Config] for file decoding. It exists because
// time.Duration has no native JSON form; the file accepts "24h"-style
// strings via [Duration].
type jsonConfig struct {
	Env string `json:"env"`

	Server struct {
		Host string `json:"host"`
		Port int    `json:"port"`
	} `json:"server"`

	Storage struct {
		DSN        string `json:"database_url"`
		LogQueries bool   `json:"log_queries"`
	} `json:"storage"`

	App struct {
		JWTSecret     string   `json:"jwt_secret"`
		TokenDuration Duration `json:"jwt_expires_in"`
	} `json:"app"`

	Log struct {
		Level      string `json:"level"`
		Dir        string `json:"dir"`
		Pretty     bool   `json:"pretty"`
		MaxSizeMB  int    `json:"max_size_mb"`
		MaxAgeDays int    `json:"max_age_days"`
	} `json:"log"`
}

func parseJSON(jsonFilePath string) (*Config, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg jsonConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &Config{
		Env: jsonCfg.Env,
		Server: Server{
			Host: jsonCfg.Server.Host,
			Port: jsonCfg.Server.Port,
		},
		Storage: Storage{
			DSN:        jsonCfg.Storage.DSN,
			LogQueries: jsonCfg.Storage.LogQueries,
		},
		App: App{
			JWTSecret:     jsonCfg.App.JWTSecret,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
		},
		Log: Log{
			Level:      jsonCfg.Log.Level,
			Dir:        jsonCfg.Log.Dir,
			Pretty:     jsonCfg.Log.Pretty,
			MaxSizeMB:  jsonCfg.Log.MaxSizeMB,
			MaxAgeDays: jsonCfg.Log.MaxAgeDays,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
