//go:build !integration

package app

import (
	"testing"

	"github.com/guttosm/truckload-service/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestInitializeLogger(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	tests := []struct {
		name      string
		cfg       config.LogConfig
		wantLevel zerolog.Level
	}{
		{name: "empty level defaults to info", cfg: config.LogConfig{}, wantLevel: zerolog.InfoLevel},
		{name: "debug", cfg: config.LogConfig{Level: "debug"}, wantLevel: zerolog.DebugLevel},
		{name: "pretty output", cfg: config.LogConfig{Level: "info", Pretty: true}, wantLevel: zerolog.InfoLevel},
		{name: "warn", cfg: config.LogConfig{Level: "warn"}, wantLevel: zerolog.WarnLevel},
		{name: "error", cfg: config.LogConfig{Level: "error"}, wantLevel: zerolog.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				InitializeLogger(tt.cfg)
			})
			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())
		})
	}
}
