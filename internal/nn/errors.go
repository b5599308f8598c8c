package nn

import (
	"fmt"

	"github.com/born-ml/backprop/internal/matrix"
)

// Errors specific to layers and networks. Each wraps matrix.ErrConfiguration.
var (
	// ErrEmptyNetwork is returned when a network is built from no layers.
	ErrEmptyNetwork = fmt.Errorf("%w: network has no layers", matrix.ErrConfiguration)

	// ErrIncompatibleLayers is returned when a layer's output shape differs
	// from the next layer's input shape.
	ErrIncompatibleLayers = fmt.Errorf("%w: adjacent layer shapes differ", matrix.ErrConfiguration)

	// ErrScratchKind is returned when a layer receives scratch it did not
	// allocate.
	ErrScratchKind = fmt.Errorf("%w: wrong scratch variant", matrix.ErrConfiguration)
)
