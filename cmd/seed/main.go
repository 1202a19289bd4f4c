package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gartstein/obotseed/internal/seed/auth"
	"github.com/gartstein/obotseed/internal/seed/config"
	"github.com/gartstein/obotseed/internal/seed/db"
	"github.com/gartstein/obotseed/internal/seed/events"
	"github.com/gartstein/obotseed/internal/seed/factory"
	"github.com/gartstein/obotseed/internal/seed/seeder"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	cfg, cfgErr := config.Load(config.Path())

	level := "info"
	if cfgErr == nil {
		level = cfg.LogLevel
	}
	logger := initLogger(level)
	defer func(logger *zap.Logger) {
		_ = logger.Sync()
	}(logger)

	if cfgErr != nil {
		logger.Fatal("failed to load config", zap.String("path", config.Path()), zap.Error(cfgErr))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, err := db.NewRepository(initDatabase(cfg))
	if err != nil {
		logger.Fatal("failed to initialize database", zap.Error(err))
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Error("failed to close database", zap.Error(err))
		}
	}()

	notifier := initNotifier(cfg, logger)
	if p, ok := notifier.(*events.Publisher); ok {
		defer p.Close()
	}

	s := seeder.NewSeeder(
		repo,
		factory.New(repo, cfg.RandomSeed, logger),
		auth.NewBcryptHasher(cfg.BcryptCost),
		notifier,
		logger,
	)
	if err := s.Run(ctx); err != nil {
		logger.Error("seed failed", zap.Error(err))
		// Deferred cleanups do not run after os.Exit.
		_ = repo.Close()
		_ = logger.Sync()
		os.Exit(1)
	}
}

// initLogger builds a Zap production logger at level, info when level is unknown.
func initLogger(level string) *zap.Logger {
	zcfg := zap.NewProductionConfig()
	if lvl, err := zapcore.ParseLevel(level); err == nil {
		zcfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	logger, err := zcfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// initDatabase maps the runner config onto the repository config.
func initDatabase(cfg *config.Config) *db.Config {
	return &db.Config{
		Driver:         cfg.DBDriver,
		Host:           cfg.DBHost,
		Port:           cfg.DBPort,
		User:           cfg.DBUser,
		Password:       cfg.DBPassword,
		DBName:         cfg.DBName,
		SSLMode:        cfg.DBSSLMode,
		Path:           cfg.DBPath,
		ConnectTimeout: cfg.DBConnectTimeout,
	}
}

// initNotifier publishes to Kafka when brokers are configured.
func initNotifier(cfg *config.Config, logger *zap.Logger) seeder.Notifier {
	if len(cfg.KafkaBrokers) == 0 {
		return events.Nop{}
	}
	return events.NewPublisher(cfg.KafkaBrokers, cfg.Topic, logger)
}
