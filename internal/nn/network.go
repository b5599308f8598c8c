package nn

import (
	"fmt"
	"sync"

	"github.com/born-ml/backprop/internal/matrix"
	"github.com/born-ml/backprop/internal/parallel"
)

// Network is a linear stack of layers trained with mini-batch gradient
// descent.
//
// Each layer's output becomes the next layer's input. The network owns
// clones of the layers it was built from, so the prototypes can be reused.
//
// Example:
//
//	net, err := nn.NewNetwork(hidden, hiddenBias, hiddenAct, output, outputBias, outputAct)
//	err = net.Train(train, 0.1, 10)
//	correct, err := net.Test(test, matrix.CompareMax)
type Network struct {
	layers []Layer
}

// NewNetwork clones layers into a new network.
//
// Returns ErrConfiguration when layers is empty, contains nil, or when the
// output shape of a layer differs from the input shape of the next one.
func NewNetwork(layers ...Layer) (*Network, error) {
	if len(layers) == 0 {
		return nil, ErrEmptyNetwork
	}
	owned := make([]Layer, len(layers))
	for i, l := range layers {
		if l == nil {
			return nil, fmt.Errorf("NewNetwork: %w: layer %d is nil", matrix.ErrConfiguration, i)
		}
		if i > 0 {
			out, in := layers[i-1].OutputShape(), l.InputShape()
			if !out.Equal(in) {
				return nil, fmt.Errorf("NewNetwork: %w: layer %d outputs %v, layer %d expects %v",
					ErrIncompatibleLayers, i-1, out, i, in)
			}
		}
		owned[i] = l.Clone()
	}
	return &Network{layers: owned}, nil
}

// Len returns the number of layers.
func (n *Network) Len() int {
	return len(n.layers)
}

// Layer returns a copy of layer i.
func (n *Network) Layer(i int) (Layer, error) {
	if i < 0 || i >= len(n.layers) {
		return nil, fmt.Errorf("Layer(%d): %w for %d layers", i, matrix.ErrIndexOutOfRange, len(n.layers))
	}
	return n.layers[i].Clone(), nil
}

// InputShape returns the input shape of the first layer.
func (n *Network) InputShape() matrix.Shape {
	return n.layers[0].InputShape()
}

// OutputShape returns the output shape of the last layer.
func (n *Network) OutputShape() matrix.Shape {
	return n.layers[len(n.layers)-1].OutputShape()
}

// Evaluate runs input through every layer and returns the final output.
func (n *Network) Evaluate(input *matrix.Matrix) (*matrix.Matrix, error) {
	if err := checkShape("Network.Evaluate", n.InputShape(), input); err != nil {
		return nil, err
	}
	out := input
	for i, l := range n.layers {
		next, err := l.Evaluate(out)
		if err != nil {
			return nil, fmt.Errorf("Network.Evaluate: layer %d: %w", i, err)
		}
		out = next
	}
	return out, nil
}

// Test returns how many samples of ds the network predicts correctly
// according to cmp.
func (n *Network) Test(ds Dataset, cmp CompareFunc) (int, error) {
	if cmp == nil {
		return 0, fmt.Errorf("Network.Test: %w: nil compare function", matrix.ErrConfiguration)
	}
	if err := n.checkDataset("Network.Test", ds); err != nil {
		return 0, err
	}
	return n.testRange(ds, cmp, 0, ds.Len(), n.newOutputs())
}

// TestConcurrent is Test with the samples split into chunks that are
// evaluated on separate goroutines. Each chunk owns its output buffers.
func (n *Network) TestConcurrent(ds Dataset, cmp CompareFunc, cfg parallel.Config) (int, error) {
	if cmp == nil {
		return 0, fmt.Errorf("Network.TestConcurrent: %w: nil compare function", matrix.ErrConfiguration)
	}
	if err := n.checkDataset("Network.TestConcurrent", ds); err != nil {
		return 0, err
	}

	var (
		mu       sync.Mutex
		total    int
		firstErr error
	)
	parallel.ForChunks(ds.Len(), func(start, end int) {
		correct, err := n.testRange(ds, cmp, start, end, n.newOutputs())
		mu.Lock()
		defer mu.Unlock()
		total += correct
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}, cfg)
	if firstErr != nil {
		return 0, firstErr
	}
	return total, nil
}

// Cost returns the mean of cost(target, predicted) over ds, or 0 for an
// empty dataset.
func (n *Network) Cost(ds Dataset, cost CostFunc) (float64, error) {
	if cost == nil {
		return 0, fmt.Errorf("Network.Cost: %w: nil cost function", matrix.ErrConfiguration)
	}
	if err := n.checkDataset("Network.Cost", ds); err != nil {
		return 0, err
	}
	size := ds.Len()
	if size == 0 {
		return 0, nil
	}
	outputs := n.newOutputs()
	sum := 0.0
	for i := 0; i < size; i++ {
		input, target := ds.Sample(i)
		predicted, err := n.forward(outputs, input)
		if err != nil {
			return 0, err
		}
		c, err := cost(target, predicted)
		if err != nil {
			return 0, fmt.Errorf("Network.Cost: sample %d: %w", i, err)
		}
		sum += c
	}
	return sum / float64(size), nil
}

// Train runs one epoch of mini-batch gradient descent over ds in order.
//
// The dataset is split into ds.Len()/batchSize consecutive batches; the
// remainder is skipped. After each batch every layer is updated with its
// summed gradient scaled by learningRate. Shapes are validated before any
// parameter changes.
func (n *Network) Train(ds Dataset, learningRate float64, batchSize int) error {
	if batchSize <= 0 {
		return fmt.Errorf("Network.Train: %w: batch size %d", matrix.ErrConfiguration, batchSize)
	}
	if err := n.checkDataset("Network.Train", ds); err != nil {
		return err
	}

	buf := n.newTrainBuffers()
	defer releaseAll(buf.batch)

	batches := ds.Len() / batchSize
	for b := 0; b < batches; b++ {
		for i, l := range n.layers {
			buf.iteration[i] = l.NewIterationScratch()
		}
		for s := b * batchSize; s < (b+1)*batchSize; s++ {
			input, target := ds.Sample(s)
			if err := n.step(buf, input, target); err != nil {
				return fmt.Errorf("Network.Train: sample %d: %w", s, err)
			}
		}
		for i, l := range n.layers {
			if err := l.Update(buf.batch[i], learningRate); err != nil {
				return fmt.Errorf("Network.Train: update layer %d: %w", i, err)
			}
		}
		releaseAll(buf.iteration)
	}
	return nil
}

// trainBuffers is everything one training run allocates up front.
type trainBuffers struct {
	outputs   []*matrix.Matrix // outputs[i] is layer i's output
	deltas    []*matrix.Matrix // deltas[i] is the error at layer i's output
	discard   *matrix.Matrix   // error at the network input, never read
	iteration []Scratch
	batch     []Scratch
}

func (n *Network) newTrainBuffers() *trainBuffers {
	buf := &trainBuffers{
		outputs:   n.newOutputs(),
		deltas:    n.newOutputs(),
		discard:   zeros(n.InputShape()),
		iteration: make([]Scratch, len(n.layers)),
		batch:     make([]Scratch, len(n.layers)),
	}
	for i, l := range n.layers {
		buf.batch[i] = l.NewBatchScratch()
	}
	return buf
}

// step feeds one sample forward and its error backward, accumulating
// gradients into buf.batch.
func (n *Network) step(buf *trainBuffers, input, target *matrix.Matrix) error {
	in := input
	for i, l := range n.layers {
		if err := l.Feedforward(buf.outputs[i], in, buf.iteration[i], buf.batch[i]); err != nil {
			return fmt.Errorf("feedforward layer %d: %w", i, err)
		}
		in = buf.outputs[i]
	}

	last := len(n.layers) - 1
	if err := matrix.SubTo(buf.deltas[last], buf.outputs[last], target); err != nil {
		return err
	}
	for i := last; i > 0; i-- {
		if err := n.layers[i].Backprop(buf.deltas[i-1], buf.deltas[i], buf.iteration[i], buf.batch[i]); err != nil {
			return fmt.Errorf("backprop layer %d: %w", i, err)
		}
	}
	if err := n.layers[0].Backprop(buf.discard, buf.deltas[0], buf.iteration[0], buf.batch[0]); err != nil {
		return fmt.Errorf("backprop layer 0: %w", err)
	}
	return nil
}

// testRange counts correct predictions for samples [start, end).
func (n *Network) testRange(ds Dataset, cmp CompareFunc, start, end int, outputs []*matrix.Matrix) (int, error) {
	correct := 0
	for i := start; i < end; i++ {
		input, target := ds.Sample(i)
		predicted, err := n.forward(outputs, input)
		if err != nil {
			return 0, err
		}
		ok, err := cmp(target, predicted)
		if err != nil {
			return 0, fmt.Errorf("sample %d: %w", i, err)
		}
		if ok {
			correct++
		}
	}
	return correct, nil
}

// forward evaluates input into the pre-allocated per-layer outputs and
// returns the last one.
func (n *Network) forward(outputs []*matrix.Matrix, input *matrix.Matrix) (*matrix.Matrix, error) {
	in := input
	for i, l := range n.layers {
		if err := l.EvaluateTo(outputs[i], in); err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
		in = outputs[i]
	}
	return in, nil
}

func (n *Network) newOutputs() []*matrix.Matrix {
	outputs := make([]*matrix.Matrix, len(n.layers))
	for i, l := range n.layers {
		outputs[i] = zeros(l.OutputShape())
	}
	return outputs
}

func (n *Network) checkDataset(op string, ds Dataset) error {
	if ds == nil {
		return fmt.Errorf("%s: %w: nil dataset", op, matrix.ErrConfiguration)
	}
	if in := ds.InputShape(); !in.Equal(n.InputShape()) {
		return fmt.Errorf("%s: input %w: dataset %v, network %v", op, matrix.ErrShapeMismatch, in, n.InputShape())
	}
	if out := ds.OutputShape(); !out.Equal(n.OutputShape()) {
		return fmt.Errorf("%s: target %w: dataset %v, network %v", op, matrix.ErrShapeMismatch, out, n.OutputShape())
	}
	return nil
}
