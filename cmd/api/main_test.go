package main

import (
	"testing"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIConfigDefaults(t *testing.T) {
	var cfg APIConfig
	require.NoError(t, env.Parse(&cfg))

	assert.True(t, cfg.Debug)
	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "data/skinvision.db", cfg.DatabaseURL)
	assert.Equal(t, int64(10485760), cfg.MaxFileSize)
	assert.Equal(t, "uploads", cfg.UploadDirectory)
	assert.Equal(t, 0.7, cfg.ModelConfidenceThreshold)
	assert.Equal(t, 0.5, cfg.FaceDetectionConfidence)
	assert.Equal(t, 1, cfg.WorkerConcurrency)
}
