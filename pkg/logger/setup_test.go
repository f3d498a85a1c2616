package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/raywall/inventory-quick-service/pkg/config"
)

func TestConfigure_Levels(t *testing.T) {
	Configure(config.LoggingConf{Enabled: true, Level: "debug", Format: "json"})
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())

	Configure(config.LoggingConf{Enabled: true, Level: "warn", Format: "json"})
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
}

func TestConfigure_BadLevelFallsBackToInfo(t *testing.T) {
	Configure(config.LoggingConf{Enabled: true, Level: "loud", Format: "json"})
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}

func TestConfigure_DisabledLoggerStaysSilent(t *testing.T) {
	logger := Configure(config.LoggingConf{Enabled: false})
	// must not panic; output goes to io.Discard
	logger.Info().Msg("dropped")
}
