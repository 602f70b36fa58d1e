// Package main is the entry point for the scroll scene viewer.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/hnrq/scroll-based-animation-sub001/internal/config"
	"github.com/hnrq/scroll-based-animation-sub001/internal/game"
	"github.com/hnrq/scroll-based-animation-sub001/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Scroll Scene ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	g, err := game.New(cfg)
	if err != nil {
		logger.Error("failed to start", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	defer g.Close()

	if err := g.Run(); err != nil {
		logger.Error("frame loop error", zap.Error(err))
		g.Close()
		logger.Sync()
		os.Exit(1)
	}

	logger.Info("closed normally")
}
