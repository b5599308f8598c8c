// Package optim implements the parameter update applied after each
// mini-batch.
package optim

import (
	"fmt"

	"github.com/born-ml/backprop/internal/matrix"
)

// SGD performs a single plain gradient-descent step.
//
// Update rule:
//
//	param = param - learningRate * grad
//
// The scaled gradient is computed into buf, which must be shaped like param
// and may be grad itself. grad is reset to zero afterwards so it can
// accumulate the next batch.
//
// Example:
//
//	// grad holds the gradient summed over one mini-batch
//	err := optim.SGD(w, grad, grad, 0.1)
func SGD(param, grad, buf *matrix.Matrix, learningRate float64) error {
	if err := matrix.ScaleTo(buf, grad, learningRate); err != nil {
		return fmt.Errorf("SGD: %w", err)
	}
	if err := matrix.SubTo(param, param, buf); err != nil {
		return fmt.Errorf("SGD: %w", err)
	}
	grad.Zero()
	return nil
}
