package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/kaan/campora/internal/pkg/logger"
	"github.com/kaan/campora/internal/server"
)

func main() {
	// Optional .env for local development; real deployments set env vars.
	if err := godotenv.Load(); err == nil {
		logger.Debug().Msg("Loaded .env file")
	}

	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}
}
