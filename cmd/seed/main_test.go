package main

import (
	"testing"
	"time"

	"github.com/gartstein/obotseed/internal/seed/config"
	"github.com/gartstein/obotseed/internal/seed/events"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

func TestInitDatabase(t *testing.T) {
	cfg := &config.Config{
		DBDriver:         "sqlite",
		DBPath:           "seed.db",
		DBHost:           "db",
		DBPort:           5433,
		DBConnectTimeout: 5 * time.Second,
	}

	dbCfg := initDatabase(cfg)
	assert.Equal(t, "sqlite", dbCfg.Driver)
	assert.Equal(t, "seed.db", dbCfg.Path)
	assert.Equal(t, "db", dbCfg.Host)
	assert.Equal(t, 5433, dbCfg.Port)
	assert.Equal(t, 5*time.Second, dbCfg.ConnectTimeout)
}

func TestInitNotifier(t *testing.T) {
	logger := zaptest.NewLogger(t)

	assert.IsType(t, events.Nop{}, initNotifier(&config.Config{}, logger))

	n := initNotifier(&config.Config{KafkaBrokers: []string{"localhost:9092"}, Topic: "seed.events"}, logger)
	p, ok := n.(*events.Publisher)
	assert.True(t, ok)
	p.Close()
}

func TestInitLogger(t *testing.T) {
	assert.True(t, initLogger("debug").Core().Enabled(zap.DebugLevel))
	assert.False(t, initLogger("warn").Core().Enabled(zap.InfoLevel))
	assert.True(t, initLogger("bogus").Core().Enabled(zap.InfoLevel))
}
