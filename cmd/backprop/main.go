// Command backprop trains a sigmoid network with mini-batch gradient
// descent on XOR, MNIST or a synthetic digit set and reports test accuracy.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/born-ml/backprop/internal/data"
)

func main() {
	cfg := DefaultConfig()
	flag.StringVar(&cfg.Dataset, "dataset", cfg.Dataset, "Dataset to train on: xor, mnist or synthetic")
	flag.StringVar(&cfg.DataDir, "data", cfg.DataDir, "Directory containing MNIST IDX files")
	flag.IntVar(&cfg.Samples, "samples", cfg.Samples, "Number of generated XOR training samples")
	flag.IntVar(&cfg.Trim, "trim", cfg.Trim, "Train on the first N samples only (0 = all)")
	flag.IntVar(&cfg.Epochs, "epochs", cfg.Epochs, "Number of training epochs")
	flag.IntVar(&cfg.BatchSize, "batch", cfg.BatchSize, "Mini-batch size")
	flag.Float64Var(&cfg.LearningRate, "lr", cfg.LearningRate, "Learning rate applied to the summed batch gradient")
	flag.IntVar(&cfg.Hidden, "hidden", cfg.Hidden, "Hidden layer size")
	flag.StringVar(&cfg.Init, "init", cfg.Init, "Weight initialization: normal or xavier")
	flag.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed (0 = seed from the clock)")
	flag.IntVar(&cfg.ReportEvery, "report", cfg.ReportEvery, "Evaluate every N epochs")
	flag.IntVar(&cfg.Workers, "workers", cfg.Workers, "Goroutines used for evaluation")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	exp, err := newExperiment(cfg)
	if err != nil {
		if errors.Is(err, data.ErrResource) {
			fmt.Fprintln(os.Stderr, "MNIST data files not found. Download them from http://yann.lecun.com/exdb/mnist/,")
			fmt.Fprintf(os.Stderr, "gunzip them into %s, or run with -dataset synthetic.\n", cfg.DataDir)
		}
		log.Fatalf("setup failed: %v", err)
	}

	if _, err := exp.run(log.Default()); err != nil {
		log.Fatalf("training failed: %v", err)
	}
}
