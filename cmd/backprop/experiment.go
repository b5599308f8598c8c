package main

import (
	"fmt"
	"log"
	"time"

	"github.com/born-ml/backprop/internal/data"
	"github.com/born-ml/backprop/internal/matrix"
	"github.com/born-ml/backprop/internal/nn"
	"github.com/born-ml/backprop/internal/parallel"
)

// result is the evaluation after the last epoch.
type result struct {
	Accuracy float64
	Cost     float64
}

// experiment is a network together with the data it is trained and
// evaluated on.
type experiment struct {
	cfg     Config
	sampler *matrix.Sampler
	net     *nn.Network
	train   *data.Dataset
	test    *data.Dataset
	compare nn.CompareFunc
}

func newExperiment(cfg Config) (*experiment, error) {
	e := &experiment{cfg: cfg, sampler: matrix.Default()}
	if cfg.Seed != 0 {
		e.sampler = matrix.NewSampler(cfg.Seed)
	}

	var err error
	switch cfg.Dataset {
	case datasetXOR:
		e.compare = matrix.CompareBool
		if e.train, err = data.XOR(cfg.Samples, e.sampler); err != nil {
			return nil, err
		}
		if e.test, err = data.XOR(max(cfg.Samples/5, 1), e.sampler); err != nil {
			return nil, err
		}
	case datasetMNIST:
		e.compare = matrix.CompareMax
		if e.train, err = data.LoadMNIST(cfg.DataDir, true); err != nil {
			return nil, fmt.Errorf("load training set: %w", err)
		}
		if e.test, err = data.LoadMNIST(cfg.DataDir, false); err != nil {
			return nil, fmt.Errorf("load test set: %w", err)
		}
	case datasetSynthetic:
		// Ten samples, one per class: the run checks the network can fit them.
		e.compare = matrix.CompareMax
		e.train = data.Synthetic()
		e.test = e.train
	default:
		return nil, fmt.Errorf("unknown dataset %q", cfg.Dataset)
	}

	if cfg.Trim > 0 && cfg.Trim < e.train.Len() {
		if e.train, err = e.train.Trim(cfg.Trim); err != nil {
			return nil, err
		}
	}

	if e.net, err = e.buildNetwork(); err != nil {
		return nil, err
	}
	return e, nil
}

// buildNetwork creates a single-hidden-layer sigmoid network sized to the
// training data.
func (e *experiment) buildNetwork() (*nn.Network, error) {
	in := e.train.InputShape().Height
	out := e.train.OutputShape().Height
	hidden := e.cfg.Hidden

	initFor := func(fanIn, fanOut int) nn.Initializer {
		if e.cfg.Init == initXavier {
			return nn.Xavier(e.sampler, fanIn, fanOut)
		}
		return nn.Normal(e.sampler, matrix.DefaultWeightStdDev)
	}

	w1, err := nn.NewWeights(in, hidden, initFor(in, hidden))
	if err != nil {
		return nil, err
	}
	b1, err := nn.NewBiases(hidden, 1)
	if err != nil {
		return nil, err
	}
	a1, err := nn.NewSigmoid(hidden, 1)
	if err != nil {
		return nil, err
	}
	w2, err := nn.NewWeights(hidden, out, initFor(hidden, out))
	if err != nil {
		return nil, err
	}
	b2, err := nn.NewBiases(out, 1)
	if err != nil {
		return nil, err
	}
	a2, err := nn.NewSigmoid(out, 1)
	if err != nil {
		return nil, err
	}
	return nn.NewNetwork(w1, b1, a1, w2, b2, a2)
}

// run trains for cfg.Epochs epochs, reshuffling the training set each
// epoch, and logs test accuracy and cost every cfg.ReportEvery epochs and
// after the last one.
func (e *experiment) run(logger *log.Logger) (result, error) {
	pcfg := parallel.DefaultConfig()
	pcfg.NumWorkers = e.cfg.Workers
	pcfg.Enabled = e.cfg.Workers > 1

	logger.Printf("dataset=%s train=%d test=%d hidden=%d checked=%t",
		e.cfg.Dataset, e.train.Len(), e.test.Len(), e.cfg.Hidden, matrix.Checked())

	var res result
	start := time.Now()
	for epoch := 1; epoch <= e.cfg.Epochs; epoch++ {
		if err := e.net.Train(e.train.Shuffle(e.sampler), e.cfg.LearningRate, e.cfg.BatchSize); err != nil {
			return result{}, fmt.Errorf("epoch %d: %w", epoch, err)
		}
		if epoch%e.cfg.ReportEvery != 0 && epoch != e.cfg.Epochs {
			continue
		}

		correct, err := e.net.TestConcurrent(e.test, e.compare, pcfg)
		if err != nil {
			return result{}, fmt.Errorf("epoch %d: test: %w", epoch, err)
		}
		cost, err := e.net.Cost(e.test, matrix.QuadraticCost)
		if err != nil {
			return result{}, fmt.Errorf("epoch %d: cost: %w", epoch, err)
		}
		res = result{Accuracy: float64(correct) / float64(e.test.Len()), Cost: cost}
		logger.Printf("epoch=%d accuracy=%.4f cost=%.6f elapsed=%s",
			epoch, res.Accuracy, res.Cost, time.Since(start).Round(time.Millisecond))
	}
	return res, nil
}
