package train

import (
	"fmt"

	"github.com/born-ml/nodegrad/internal/config"
	"github.com/born-ml/nodegrad/internal/nn"
	"github.com/born-ml/nodegrad/internal/optim"
)

// NewModel builds the MLP described by cfg with Uniform(-1, 1) weights drawn
// from cfg.Seed.
func NewModel(cfg config.ModelConfig) *nn.Sequential {
	return nn.NewMLP(cfg.Inputs, cfg.Layers, nn.Uniform(nn.NewRand(cfg.Seed), -1, 1))
}

// NewOptimizer creates the optimizer named by cfg over params.
func NewOptimizer(cfg config.OptimizerConfig, params []*nn.Parameter) (optim.Optimizer, error) {
	switch cfg.Name {
	case config.OptimizerSGD, "":
		return optim.NewSGD(params, optim.SGDConfig{LR: cfg.LR, Momentum: cfg.Momentum}), nil
	case config.OptimizerAdam:
		return optim.NewAdam(params, optim.AdamConfig{
			LR:    cfg.LR,
			Betas: [2]float64{cfg.Beta1, cfg.Beta2},
			Eps:   cfg.Eps,
		}), nil
	default:
		return nil, fmt.Errorf("unknown optimizer %q", cfg.Name)
	}
}

// FromConfig builds the model, optimizer and trainer for cfg and returns them
// with cfg's dataset.
func FromConfig(cfg config.Config, opts ...Option) (*Trainer, Dataset, error) {
	if err := cfg.Validate(); err != nil {
		return nil, Dataset{}, err
	}

	model := NewModel(cfg.Model)
	opt, err := NewOptimizer(cfg.Optimizer, model.Parameters())
	if err != nil {
		return nil, Dataset{}, err
	}

	base := []Option{WithWorkers(cfg.Train.Workers), WithLogEvery(cfg.Train.LogEvery)}
	t := New(model, opt, append(base, opts...)...)
	return t, Dataset{Inputs: cfg.Data.Inputs, Targets: cfg.Data.Targets}, nil
}
