package optim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/nodegrad/internal/autodiff"
	"github.com/born-ml/nodegrad/internal/nn"
	"github.com/born-ml/nodegrad/internal/optim"
)

// quadraticGrad accumulates d/dx (x - 3)² into p through a fresh graph.
func quadraticGrad(t *testing.T, p *nn.Parameter) float64 {
	t.Helper()

	s := nn.NewScope(autodiff.NewGraph())
	loss := s.Bind(p).Sub(3).Pow(2)
	require.NoError(t, loss.Backward())
	require.NoError(t, s.Accumulate())
	return loss.Data()
}

func TestSGD_SimpleUpdate(t *testing.T) {
	p := nn.NewParameter("x", 2.0)
	opt := optim.NewSGD([]*nn.Parameter{p}, optim.SGDConfig{LR: 0.1})

	p.AddGrad(1.0)
	opt.Step()

	assert.InDelta(t, 1.9, p.Data(), 1e-12)
	assert.Equal(t, 0.1, opt.GetLR())

	opt.ZeroGrad()
	assert.Equal(t, 0.0, p.Grad())
}

func TestSGD_Momentum(t *testing.T) {
	p := nn.NewParameter("x", 0.0)
	opt := optim.NewSGD([]*nn.Parameter{p}, optim.SGDConfig{LR: 1, Momentum: 0.5})

	p.AddGrad(1)
	opt.Step() // v = 1, x = -1
	assert.InDelta(t, -1.0, p.Data(), 1e-12)

	opt.Step() // v = 0.5 + 1 = 1.5, x = -2.5
	assert.InDelta(t, -2.5, p.Data(), 1e-12)
}

func TestSGD_Defaults(t *testing.T) {
	opt := optim.NewSGD(nil, optim.SGDConfig{})
	assert.Equal(t, 0.05, opt.GetLR())

	opt.SetLR(0.2)
	assert.Equal(t, 0.2, opt.GetLR())
}

func TestAdam_FirstStepMovesByLR(t *testing.T) {
	p := nn.NewParameter("x", 1.0)
	opt := optim.NewAdam([]*nn.Parameter{p}, optim.AdamConfig{LR: 0.01})

	p.AddGrad(123)
	opt.Step()

	// With bias correction m_hat/sqrt(v_hat) = sign(grad) on the first step.
	assert.InDelta(t, 0.99, p.Data(), 1e-6)
	assert.Equal(t, 1, opt.StepCount())
}

func TestAdam_Defaults(t *testing.T) {
	opt := optim.NewAdam(nil, optim.AdamConfig{})
	assert.Equal(t, 0.001, opt.GetLR())
}

func TestOptimizers_Converge(t *testing.T) {
	tests := []struct {
		name  string
		build func(p *nn.Parameter) optim.Optimizer
	}{
		{"sgd", func(p *nn.Parameter) optim.Optimizer {
			return optim.NewSGD([]*nn.Parameter{p}, optim.SGDConfig{LR: 0.1})
		}},
		{"sgd momentum", func(p *nn.Parameter) optim.Optimizer {
			return optim.NewSGD([]*nn.Parameter{p}, optim.SGDConfig{LR: 0.05, Momentum: 0.5})
		}},
		{"adam", func(p *nn.Parameter) optim.Optimizer {
			return optim.NewAdam([]*nn.Parameter{p}, optim.AdamConfig{LR: 0.1})
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := nn.NewParameter("x", -2)
			opt := tt.build(p)

			for range 500 {
				opt.ZeroGrad()
				quadraticGrad(t, p)
				opt.Step()
			}

			assert.InDelta(t, 3.0, p.Data(), 1e-2)
		})
	}
}
