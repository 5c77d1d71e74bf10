package main

import (
	"github.com/slumberlog/sleep-diary/internal/config"
	"github.com/slumberlog/sleep-diary/internal/logging"
	"github.com/slumberlog/sleep-diary/internal/seed"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	db, err := config.NewDatabase(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	if err := seed.Run(db, logger); err != nil {
		logger.Fatal("failed to seed database", zap.Error(err))
	}

	logger.Info("demo accounts ready, password is sleepdiary-demo",
		zap.Strings("emails", []string{
			"dana@sleep-diary.dev",
			"niels@sleep-diary.dev",
			"aiko@sleep-diary.dev",
		}),
	)
}
