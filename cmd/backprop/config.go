package main

import (
	"errors"
	"fmt"
	"runtime"
)

// Dataset names accepted by -dataset.
const (
	datasetXOR       = "xor"
	datasetMNIST     = "mnist"
	datasetSynthetic = "synthetic"
)

// Initializer names accepted by -init.
const (
	initNormal = "normal"
	initXavier = "xavier"
)

// Config captures the runtime knobs for a training run.
type Config struct {
	Dataset      string
	DataDir      string
	Samples      int // generated XOR training samples
	Trim         int // keep only the first Trim training samples (0 = all)
	Epochs       int
	BatchSize    int
	LearningRate float64
	Hidden       int
	Init         string
	Seed         uint64 // 0 seeds from the clock
	ReportEvery  int
	Workers      int
}

// DefaultConfig returns the XOR experiment settings.
func DefaultConfig() Config {
	return Config{
		Dataset:      datasetXOR,
		DataDir:      "./data",
		Samples:      1000,
		Epochs:       1000,
		BatchSize:    10,
		LearningRate: 0.1,
		Hidden:       4,
		Init:         initNormal,
		ReportEvery:  100,
		Workers:      runtime.NumCPU(),
	}
}

// Validate verifies the config is runnable.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	switch c.Dataset {
	case datasetXOR, datasetMNIST, datasetSynthetic:
	default:
		return fmt.Errorf("dataset must be one of %s, %s, %s (got %q)", datasetXOR, datasetMNIST, datasetSynthetic, c.Dataset)
	}
	switch c.Init {
	case initNormal, initXavier:
	default:
		return fmt.Errorf("init must be %s or %s (got %q)", initNormal, initXavier, c.Init)
	}
	if c.Dataset == datasetMNIST && c.DataDir == "" {
		return errors.New("data dir must be set for mnist")
	}
	if c.Dataset == datasetXOR && c.Samples <= 0 {
		return fmt.Errorf("samples must be > 0 (got %d)", c.Samples)
	}
	if c.Trim < 0 {
		return fmt.Errorf("trim must be >= 0 (got %d)", c.Trim)
	}
	if c.Epochs <= 0 {
		return fmt.Errorf("epochs must be > 0 (got %d)", c.Epochs)
	}
	if c.BatchSize <= 0 {
		return fmt.Errorf("batch size must be > 0 (got %d)", c.BatchSize)
	}
	if c.LearningRate <= 0 {
		return fmt.Errorf("learning rate must be > 0 (got %g)", c.LearningRate)
	}
	if c.Hidden <= 0 {
		return fmt.Errorf("hidden must be > 0 (got %d)", c.Hidden)
	}
	if c.ReportEvery <= 0 {
		c.ReportEvery = 1
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	return nil
}
