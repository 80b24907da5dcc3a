package train

import (
	"errors"
	"fmt"
)

// ErrDataset is returned for malformed datasets.
var ErrDataset = errors.New("invalid dataset")

// Dataset is a set of input rows with their target rows.
type Dataset struct {
	Inputs  [][]float64
	Targets [][]float64
}

// Len returns the number of samples.
func (d Dataset) Len() int {
	return len(d.Inputs)
}

// Validate checks that d is non-empty, has one target row per input row and
// that all rows of a kind have the same width.
func (d Dataset) Validate() error {
	if len(d.Inputs) == 0 {
		return fmt.Errorf("%w: no samples", ErrDataset)
	}
	if len(d.Inputs) != len(d.Targets) {
		return fmt.Errorf("%w: %d inputs, %d targets", ErrDataset, len(d.Inputs), len(d.Targets))
	}

	nin, nout := len(d.Inputs[0]), len(d.Targets[0])
	if nout == 0 {
		return fmt.Errorf("%w: empty target row", ErrDataset)
	}
	for i := range d.Inputs {
		if len(d.Inputs[i]) != nin {
			return fmt.Errorf("%w: input %d has width %d, want %d", ErrDataset, i, len(d.Inputs[i]), nin)
		}
		if len(d.Targets[i]) != nout {
			return fmt.Errorf("%w: target %d has width %d, want %d", ErrDataset, i, len(d.Targets[i]), nout)
		}
	}
	return nil
}
