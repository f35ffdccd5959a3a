package main

import (
	"context"
	"log"
	"os"

	"vcenter-healthcheck/internal/config"
	"vcenter-healthcheck/internal/healthcheck"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := healthcheck.BuildLogger(cfg)
	r := healthcheck.New(cfg, logger, os.Stdout)
	if err := r.Run(context.Background()); err != nil {
		logger.Error("health report failed", "error", err)
		os.Exit(1)
	}
}
