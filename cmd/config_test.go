package cmd

import (
	"log/slog"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "perfchart", configBaseName)
	assert.Equal(t, "perfchart.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "output", outputFlagName)
	assert.Equal(t, "parallel", parallelFlagName)
	assert.Equal(t, "batch.parallel", batchParallelKey)
	assert.Equal(t, ".perfchart-reports", defaultReportsDir)
	assert.Equal(t, "PERFCHART", envPrefix)
}

func TestConfigDefaults(t *testing.T) {
	resetConfig(t)

	assert.Equal(t, 1, viper.GetInt(configVersionKey))
	assert.Equal(t, defaultCalcFormat, viper.GetString(calcFormatKey))
	assert.Equal(t, defaultBatchParallel, viper.GetInt(batchParallelKey))
	assert.Equal(t, "json", viper.GetString(reportFormatKey))
	assert.Equal(t, 16, viper.GetInt(cacheSizeKey))
	assert.Equal(t, 10*time.Minute, viper.GetDuration(cacheTTLKey))
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  slog.Level
	}{
		{"empty", "", slog.LevelWarn},
		{"debug", "debug", slog.LevelDebug},
		{"info upper", " INFO ", slog.LevelInfo},
		{"warning", "warning", slog.LevelWarn},
		{"error", "error", slog.LevelError},
		{"numeric", "-4", slog.LevelDebug},
		{"garbage", "loud", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelWarn))
		})
	}
}
