package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		errMsg string
	}{
		{"unknown dataset", func(c *Config) { c.Dataset = "cifar" }, "dataset"},
		{"unknown init", func(c *Config) { c.Init = "he" }, "init"},
		{"mnist without dir", func(c *Config) { c.Dataset = datasetMNIST; c.DataDir = "" }, "data dir"},
		{"no xor samples", func(c *Config) { c.Samples = 0 }, "samples"},
		{"negative trim", func(c *Config) { c.Trim = -1 }, "trim"},
		{"zero epochs", func(c *Config) { c.Epochs = 0 }, "epochs"},
		{"zero batch", func(c *Config) { c.BatchSize = 0 }, "batch size"},
		{"zero learning rate", func(c *Config) { c.LearningRate = 0 }, "learning rate"},
		{"zero hidden", func(c *Config) { c.Hidden = 0 }, "hidden"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}

	var nilCfg *Config
	assert.Error(t, nilCfg.Validate())
}

func TestConfig_ValidateDefaults(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ReportEvery = 0
	cfg.Workers = 0
	cfg.Dataset = datasetSynthetic
	cfg.Samples = 0 // only used for xor

	require.NoError(t, cfg.Validate())
	assert.Equal(t, 1, cfg.ReportEvery)
	assert.Positive(t, cfg.Workers)
}
