// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-user-api/internal/config"
	httphandler "github.com/MKhiriev/go-user-api/internal/handler/http"
	"github.com/MKhiriev/go-user-api/internal/logger"
	"github.com/MKhiriev/go-user-api/internal/server"
	"github.com/MKhiriev/go-user-api/internal/service"
	"github.com/MKhiriev/go-user-api/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	bootLog := logger.Bootstrap()

	cfg, err := config.GetConfig()
	if err != nil {
		bootLog.Fatal().Err(err).Msg("error getting configs")
	}

	logCfg := logger.Config{
		Env:        cfg.Env,
		Level:      cfg.Log.Level,
		Dir:        cfg.Log.Dir,
		Pretty:     cfg.Log.Pretty,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxAgeDays: cfg.Log.MaxAgeDays,
		LogQueries: cfg.Storage.LogQueries,
	}
	log := logger.New("user-api-server", logCfg)
	queryLog := logger.NewQueryLogger(logCfg)

	log.Debug().Str("env", cfg.Env).Msg("configuration loaded")

	db, err := store.NewConnectPostgres(context.Background(), cfg.Storage, log, queryLog)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	userRepository := store.NewUserRepository(db, log)
	services := service.NewServices(userRepository, *cfg, log)
	handler := httphandler.NewHandler(services, cfg.Env, log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	log.Info().
		Str("host", cfg.Server.Host).
		Int("port", cfg.Server.Port).
		Str("environment", cfg.Env).
		Int("pid", os.Getpid()).
		Msg("server started")
	log.Info().Msgf("API documentation: http://localhost:%d/docs", cfg.Server.Port)

	srv.RunServer()

	if err := db.Close(); err != nil {
		log.Err(err).Msg("error closing database connection")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
