package nn

import (
	"fmt"

	"github.com/born-ml/nodegrad/internal/autodiff"
)

// SquaredError returns (pred - target)².
func SquaredError(pred autodiff.Value, target float64) autodiff.Value {
	return pred.Sub(target).Pow(2)
}

// SumSquaredError returns Σ (preds[i] - targets[i])².
func SumSquaredError(preds []autodiff.Value, targets []float64) (autodiff.Value, error) {
	if len(preds) != len(targets) || len(preds) == 0 {
		return autodiff.Value{}, fmt.Errorf("%w: %d predictions, %d targets", ErrTargetSize, len(preds), len(targets))
	}

	terms := make([]autodiff.Value, len(preds))
	for i, p := range preds {
		terms[i] = SquaredError(p, targets[i])
	}
	loss := autodiff.Sum(terms[0], terms[1:]...)

	if g := loss.Graph(); g != nil && g.Err() != nil {
		return autodiff.Value{}, g.Err()
	}
	if !loss.IsValid() {
		return autodiff.Value{}, autodiff.ErrInvalidValue
	}
	return loss, nil
}
